package locsheet

import (
	"fmt"
	"strings"

	"github.com/KimNorgaard/go-locsheet/internal/workbook"
	"github.com/KimNorgaard/go-locsheet/tree"
)

// Direction selects which way Convert transforms its input.
type Direction string

const (
	// LiteralToTable turns a translation module into a spreadsheet.
	LiteralToTable Direction = "literal-to-table"
	// TableToLiteral turns a spreadsheet into a translation module.
	TableToLiteral Direction = "table-to-literal"
)

var directionNames = map[string]Direction{
	string(LiteralToTable): LiteralToTable,
	string(TableToLiteral): TableToLiteral,
	"ts-to-excel":          LiteralToTable,
	"excel-to-ts":          TableToLiteral,
}

// ParseDirection resolves a direction tag. Besides the Direction constants
// it accepts "ts-to-excel" and "excel-to-ts".
func ParseDirection(s string) (Direction, error) {
	if d, ok := directionNames[strings.ToLower(strings.TrimSpace(s))]; ok {
		return d, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidDirection, s)
}

// TableFormat names the spreadsheet container a Converter reads and writes.
type TableFormat = workbook.Format

const (
	FormatXLSX TableFormat = workbook.XLSX
	FormatCSV  TableFormat = workbook.CSV
)

// ParseTableFormat resolves "xlsx" or "csv".
func ParseTableFormat(s string) (TableFormat, error) {
	f, err := workbook.ParseFormat(s)
	if err != nil {
		return "", fmt.Errorf("locsheet: %w", err)
	}
	return f, nil
}

// DetectTableFormat guesses the container format from a file name.
func DetectTableFormat(name string) (TableFormat, bool) {
	return workbook.DetectFormat(name)
}

// TableContentType returns the media type of a table format.
func TableContentType(f TableFormat) string {
	return workbook.ContentType(f)
}

// Converter runs whole conversions between translation modules and
// spreadsheets. It holds no state between calls and is safe for concurrent
// use.
type Converter struct {
	opts    *options
	rawOpts []Option
}

// NewConverter returns a Converter configured by opts.
func NewConverter(opts ...Option) (*Converter, error) {
	o, err := newOptions(opts)
	if err != nil {
		return nil, err
	}
	return &Converter{opts: o, rawOpts: opts}, nil
}

// Convert is a shorthand for NewConverter(opts...).Convert(dir, input).
func Convert(dir Direction, input []byte, opts ...Option) ([]byte, error) {
	c, err := NewConverter(opts...)
	if err != nil {
		return nil, err
	}
	return c.Convert(dir, input)
}

// Format returns the spreadsheet format the converter uses.
func (c *Converter) Format() TableFormat {
	return c.opts.format
}

// Convert transforms input in direction dir. A failing step fails the whole
// call; no partial output is returned.
func (c *Converter) Convert(dir Direction, input []byte) ([]byte, error) {
	switch dir {
	case LiteralToTable:
		entries, err := c.literalEntries(input)
		if err != nil {
			return nil, err
		}
		table := WriteTable(entries)
		widths := Widths(entries)
		out, err := workbook.Encode(c.opts.format, &workbook.Sheet{
			Name:   c.opts.sheetName,
			Rows:   table.Records(),
			Widths: []float64{float64(widths.Key), float64(widths.Value)},
		})
		if err != nil {
			return nil, fmt.Errorf("locsheet: %w", err)
		}
		c.opts.logger.Debug("wrote table", "format", c.opts.format, "rows", len(table.Rows), "bytes", len(out))
		return out, nil

	case TableToLiteral:
		root, err := c.tableTree(input)
		if err != nil {
			return nil, err
		}
		out, err := MarshalLiteral(root, c.rawOpts...)
		if err != nil {
			return nil, err
		}
		c.opts.logger.Debug("wrote literal", "keys", root.Len(), "bytes", len(out))
		return out, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrInvalidDirection, dir)
}

// Inspect returns the flat entries of input, read as the source side of
// dir: a translation module for LiteralToTable, a spreadsheet for
// TableToLiteral.
func (c *Converter) Inspect(dir Direction, input []byte) ([]Entry, error) {
	switch dir {
	case LiteralToTable:
		return c.literalEntries(input)
	case TableToLiteral:
		return c.tableEntries(input)
	}
	return nil, fmt.Errorf("%w: %q", ErrInvalidDirection, dir)
}

func (c *Converter) literalEntries(input []byte) ([]Entry, error) {
	root, err := ParseLiteral(input, c.rawOpts...)
	if err != nil {
		return nil, err
	}
	entries := Flatten(root)
	c.opts.logger.Debug("parsed literal", "depth", tree.Depth(root), "entries", len(entries))
	return entries, nil
}

func (c *Converter) tableEntries(input []byte) ([]Entry, error) {
	sheet, err := workbook.Decode(c.opts.format, input)
	if err != nil {
		return nil, err
	}
	c.opts.logger.Debug("decoded table", "format", c.opts.format, "sheet", sheet.Name, "records", len(sheet.Rows))
	return ReadTable(TableFromRecords(sheet.Rows))
}

func (c *Converter) tableTree(input []byte) (*tree.Node, error) {
	entries, err := c.tableEntries(input)
	if err != nil {
		return nil, err
	}
	return Unflatten(entries, c.rawOpts...)
}
