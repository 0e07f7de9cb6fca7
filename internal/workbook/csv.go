package workbook

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/KimNorgaard/go-locsheet/errors"
)

// utf8BOM lets spreadsheet applications recognize the file as UTF-8.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

func encodeCSV(sheet *Sheet) ([]byte, error) {
	var buf bytes.Buffer
	buf.Write(utf8BOM)

	w := csv.NewWriter(&buf)
	if err := w.WriteAll(sheet.Rows); err != nil {
		return nil, fmt.Errorf("workbook: encoding csv: %w", err)
	}
	return buf.Bytes(), nil
}

func decodeCSV(data []byte) (*Sheet, error) {
	// Honour a UTF-8 or UTF-16 byte order mark; assume UTF-8 without one.
	text, _, err := transform.Bytes(unicode.BOMOverride(unicode.UTF8.NewDecoder()), data)
	if err != nil {
		return nil, fmt.Errorf("%w: csv text: %w", errors.ErrUnreadableTable, err)
	}

	r := csv.NewReader(bytes.NewReader(text))
	r.Comma = sniffDelimiter(text)
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: csv: %w", errors.ErrUnreadableTable, err)
	}
	return &Sheet{Rows: rows}, nil
}

// sniffDelimiter picks the separator of the first line: semicolon or tab
// when the line has those but no comma, comma otherwise.
func sniffDelimiter(text []byte) rune {
	line := text
	if i := bytes.IndexByte(text, '\n'); i >= 0 {
		line = text[:i]
	}
	if bytes.IndexByte(line, ',') >= 0 {
		return ','
	}
	switch {
	case bytes.IndexByte(line, ';') >= 0:
		return ';'
	case bytes.IndexByte(line, '\t') >= 0:
		return '\t'
	}
	return ','
}
