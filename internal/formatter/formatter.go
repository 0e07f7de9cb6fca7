package formatter

import (
	"fmt"
	"io"
	"strings"

	"github.com/KimNorgaard/go-locsheet/internal/lexer"
	"github.com/KimNorgaard/go-locsheet/tree"
)

const (
	defaultIndent = 2

	prologue = "export default "
	epilogue = " as const;\n"
)

// Formatter writes a translation tree as a default-exported const object
// literal.
type Formatter struct {
	w      io.Writer
	indent string
}

// New returns a new formatter that writes to w.
func New(w io.Writer, indentSpaces *int) *Formatter {
	spaces := defaultIndent
	if indentSpaces != nil {
		spaces = *indentSpaces
	}
	return &Formatter{w: w, indent: strings.Repeat(" ", spaces)}
}

// Format writes the module for root:
//
//	export default {
//	  home: {
//	    title: 'Welcome'
//	  },
//	  footer: 'Bye'
//	} as const;
func (f *Formatter) Format(root *tree.Node) error {
	if root == nil {
		return fmt.Errorf("locsheet: cannot format a nil node")
	}
	if err := f.write(prologue); err != nil {
		return err
	}
	if err := f.writeNode(root, 1); err != nil {
		return err
	}
	return f.write(epilogue)
}

func (f *Formatter) write(s string) error {
	_, err := io.WriteString(f.w, s)
	return err
}

func (f *Formatter) writeIndent(depth int) error {
	return f.write(strings.Repeat(f.indent, depth))
}

// writeNode writes n with its entries at depth and its closing brace at
// depth-1.
func (f *Formatter) writeNode(n *tree.Node, depth int) error {
	if err := f.write("{\n"); err != nil {
		return err
	}
	last := n.Len() - 1
	i := 0
	for key, child := range n.All() {
		if err := f.writeIndent(depth); err != nil {
			return err
		}
		if err := f.write(FormatKey(key) + ": "); err != nil {
			return err
		}
		switch c := child.(type) {
		case tree.Leaf:
			if err := f.write(FormatString(string(c))); err != nil {
				return err
			}
		case *tree.Node:
			if c == nil {
				c = tree.NewNode()
			}
			if err := f.writeNode(c, depth+1); err != nil {
				return err
			}
		default:
			return fmt.Errorf("locsheet: unsupported value type for formatting: %T", c)
		}
		sep := ",\n"
		if i == last {
			sep = "\n"
		}
		if err := f.write(sep); err != nil {
			return err
		}
		i++
	}
	if err := f.writeIndent(depth - 1); err != nil {
		return err
	}
	return f.write("}")
}

// FormatKey renders key bare when it is a plain identifier and single-quoted
// otherwise. Quotes inside a key are not escaped.
func FormatKey(key string) string {
	if lexer.IsIdentifier(key) && !strings.Contains(key, "-") {
		return key
	}
	return "'" + key + "'"
}

// FormatString single-quotes s, escaping only single quotes.
func FormatString(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `\'`) + "'"
}
