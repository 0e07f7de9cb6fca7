package workbook

import (
	"bytes"
	"fmt"
	"unicode/utf8"

	"github.com/xuri/excelize/v2"

	"github.com/KimNorgaard/go-locsheet/errors"
)

const defaultSheet = "Sheet1"

func encodeXLSX(sheet *Sheet) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	name := defaultSheet
	if sheet.Name != "" && sheet.Name != defaultSheet {
		if err := f.SetSheetName(defaultSheet, sheet.Name); err != nil {
			return nil, fmt.Errorf("workbook: naming sheet %q: %w", sheet.Name, err)
		}
		name = sheet.Name
	}

	for i, row := range sheet.Rows {
		cellName, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return nil, err
		}
		cells := make([]any, len(row))
		for j, v := range row {
			if problem := cellProblem(v); problem != "" {
				cell, _ := excelize.CoordinatesToCellName(j+1, i+1)
				return nil, fmt.Errorf("%w: cell %s in row %d %s", errors.ErrUnwritableValue, cell, i+1, problem)
			}
			cells[j] = v
		}
		if err := f.SetSheetRow(name, cellName, &cells); err != nil {
			return nil, fmt.Errorf("workbook: writing row %d: %w", i+1, err)
		}
	}

	for i, width := range sheet.Widths {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetColWidth(name, col, col, width); err != nil {
			return nil, fmt.Errorf("workbook: sizing column %s: %w", col, err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("workbook: encoding xlsx: %w", err)
	}
	return buf.Bytes(), nil
}

// cellProblem describes why v cannot be stored in a cell unchanged, or
// returns "" when it can. excelize truncates over-long text and rewrites
// characters outside XML 1.0 instead of failing.
func cellProblem(v string) string {
	if n := utf8.RuneCountInString(v); n > excelize.TotalCellChars {
		return fmt.Sprintf("has %d characters, the limit is %d", n, excelize.TotalCellChars)
	}
	for i, r := range v {
		if r == utf8.RuneError {
			if _, size := utf8.DecodeRuneInString(v[i:]); size == 1 {
				return fmt.Sprintf("has invalid UTF-8 at byte %d", i)
			}
		}
		if !xmlChar(r) {
			return fmt.Sprintf("has character %U at byte %d, which XLSX cannot store", r, i)
		}
	}
	return ""
}

// xmlChar reports whether r is in the XML 1.0 Char production.
func xmlChar(r rune) bool {
	switch {
	case r == '\t', r == '\n', r == '\r':
		return true
	case r >= 0x20 && r <= 0xD7FF:
		return true
	case r >= 0xE000 && r <= 0xFFFD:
		return true
	case r >= 0x10000 && r <= 0x10FFFF:
		return true
	}
	return false
}

func decodeXLSX(data []byte) (*Sheet, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: xlsx: %w", errors.ErrUnreadableTable, err)
	}
	defer func() { _ = f.Close() }()

	names := f.GetSheetList()
	if len(names) == 0 {
		return nil, errors.ErrEmptySheet
	}

	rows, err := f.GetRows(names[0], excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("%w: sheet %q: %w", errors.ErrUnreadableTable, names[0], err)
	}
	return &Sheet{Name: names[0], Rows: rows}, nil
}
