package locsheet

import (
	"fmt"
	"log/slog"

	"github.com/KimNorgaard/go-locsheet/internal/parser"
	"github.com/KimNorgaard/go-locsheet/internal/workbook"
)

// DefaultSheetName is the name of the sheet written to XLSX workbooks.
const DefaultSheetName = "Translations"

// Option configures parsing, serialization and conversion.
type Option func(*options) error

type options struct {
	maxDepth    int
	loose       bool
	strictPaths bool
	indent      *int
	format      TableFormat
	sheetName   string
	logger      *slog.Logger
}

func newOptions(opts []Option) (*options, error) {
	o := &options{
		maxDepth:  parser.DefaultMaxDepth,
		format:    FormatXLSX,
		sheetName: DefaultSheetName,
		logger:    slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		if err := opt(o); err != nil {
			return nil, err
		}
	}
	return o, nil
}

func (o *options) parserOptions() []parser.Option {
	opts := []parser.Option{parser.MaxDepth(o.maxDepth)}
	if o.loose {
		opts = append(opts, parser.Loose())
	}
	return opts
}

// MaxDepth returns an Option that sets the maximum nesting depth accepted by
// the literal parser. This helps prevent stack overflows when parsing highly
// nested input.
//
// The depth n must be a positive integer.
func MaxDepth(n int) Option {
	return func(o *options) error {
		if n <= 0 {
			return fmt.Errorf("locsheet: max depth must be a positive integer")
		}
		o.maxDepth = n
		return nil
	}
}

// LooseValues makes the literal parser accept double-quoted strings,
// numbers, booleans, null, undefined and arrays. Scalars are stored as their
// string form and arrays as a single comma-joined leaf.
func LooseValues() Option {
	return func(o *options) error {
		o.loose = true
		return nil
	}
}

// StrictPaths makes Unflatten fail with ErrPathConflict when a key is used
// both as a value and as a group, instead of letting the later row win.
func StrictPaths() Option {
	return func(o *options) error {
		o.strictPaths = true
		return nil
	}
}

// Indent sets the number of spaces per nesting level in serialized
// literals. The default is 2.
func Indent(spaces int) Option {
	return func(o *options) error {
		if spaces < 0 {
			return fmt.Errorf("locsheet: indent must not be negative")
		}
		o.indent = &spaces
		return nil
	}
}

// WithTableFormat selects the spreadsheet container used by the Converter.
func WithTableFormat(f TableFormat) Option {
	return func(o *options) error {
		if !workbook.Supported(f) {
			return fmt.Errorf("locsheet: unsupported table format %q", f)
		}
		o.format = f
		return nil
	}
}

// SheetName sets the name of the sheet written to XLSX workbooks.
func SheetName(name string) Option {
	return func(o *options) error {
		if name == "" {
			return fmt.Errorf("locsheet: sheet name must not be empty")
		}
		o.sheetName = name
		return nil
	}
}

// WithLogger sets the logger used for debug output of the conversion
// pipeline. Nothing is logged by default.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) error {
		if l != nil {
			o.logger = l
		}
		return nil
	}
}
