// Package workbook encodes and decodes the spreadsheet containers that carry
// a translation table: XLSX workbooks and CSV files.
package workbook

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Format names a spreadsheet container.
type Format string

const (
	XLSX Format = "xlsx"
	CSV  Format = "csv"
)

// Sheet is one grid of text cells. Widths holds optional column widths in
// characters, first column first; formats without widths ignore them.
type Sheet struct {
	Name   string
	Rows   [][]string
	Widths []float64
}

// Supported reports whether f is a known format.
func Supported(f Format) bool {
	return f == XLSX || f == CSV
}

// ParseFormat resolves a format name, case-insensitively.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	if !Supported(f) {
		return "", fmt.Errorf("unknown table format %q (want xlsx or csv)", s)
	}
	return f, nil
}

// DetectFormat guesses the format from a file name's extension.
func DetectFormat(name string) (Format, bool) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".xlsx", ".xlsm":
		return XLSX, true
	case ".csv":
		return CSV, true
	}
	return "", false
}

// ContentType returns the media type of f.
func ContentType(f Format) string {
	if f == CSV {
		return "text/csv; charset=utf-8"
	}
	return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
}

// Encode writes sheet in format f.
func Encode(f Format, sheet *Sheet) ([]byte, error) {
	switch f {
	case XLSX:
		return encodeXLSX(sheet)
	case CSV:
		return encodeCSV(sheet)
	}
	return nil, fmt.Errorf("unknown table format %q", f)
}

// Decode reads the first sheet of data in format f.
func Decode(f Format, data []byte) (*Sheet, error) {
	switch f {
	case XLSX:
		return decodeXLSX(data)
	case CSV:
		return decodeCSV(data)
	}
	return nil, fmt.Errorf("unknown table format %q", f)
}
