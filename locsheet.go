package locsheet

import (
	"bytes"
	"fmt"
	"io"

	"github.com/KimNorgaard/go-locsheet/internal/formatter"
	"github.com/KimNorgaard/go-locsheet/internal/lexer"
	"github.com/KimNorgaard/go-locsheet/internal/parser"
	"github.com/KimNorgaard/go-locsheet/tree"
)

// ParseLiteral parses a translation module such as
//
//	export default { home: { title: 'Welcome' } } as const;
//
// into a tree. The text is parsed, never evaluated. Syntax errors are
// reported as a ParseErrors value that also matches ErrMalformedLiteral.
func ParseLiteral(data []byte, opts ...Option) (*tree.Node, error) {
	return NewDecoder(bytes.NewReader(data), opts...).Decode()
}

// MarshalLiteral returns the translation module text for root.
func MarshalLiteral(root *tree.Node, opts ...Option) ([]byte, error) {
	var buf bytes.Buffer
	if err := NewEncoder(&buf, opts...).Encode(root); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Decoder reads a translation module from an input stream.
type Decoder struct {
	r    io.Reader
	opts []Option
}

// NewDecoder returns a new decoder that reads from r.
//
// Functional options can be provided to configure the parser, such as
// setting a maximum nesting depth with the MaxDepth option.
func NewDecoder(r io.Reader, opts ...Option) *Decoder {
	return &Decoder{r: r, opts: opts}
}

// Decode reads the whole input and parses it into a tree.
//
// Note: This is a non-streaming implementation. It reads the entire
// reader into memory first before parsing.
func (d *Decoder) Decode() (*tree.Node, error) {
	if d.r == nil {
		return nil, fmt.Errorf("locsheet: Decode(nil reader)")
	}
	o, err := newOptions(d.opts)
	if err != nil {
		return nil, err
	}
	data, err := io.ReadAll(d.r)
	if err != nil {
		return nil, err
	}

	p := parser.New(lexer.New(bytes.NewReader(data)), o.parserOptions()...)
	doc := p.Parse()
	if errs := p.Errors(); len(errs) > 0 {
		return nil, errs
	}
	return decodeDocument(doc)
}

// Encoder writes translation modules to an output stream.
type Encoder struct {
	w    io.Writer
	opts []Option
}

// NewEncoder returns a new encoder that writes to w.
func NewEncoder(w io.Writer, opts ...Option) *Encoder {
	return &Encoder{w: w, opts: opts}
}

// Encode writes the module text for root to the stream.
func (e *Encoder) Encode(root *tree.Node) error {
	o, err := newOptions(e.opts)
	if err != nil {
		return err
	}
	return formatter.New(e.w, o.indent).Format(root)
}
