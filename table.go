package locsheet

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Header titles written by WriteTable.
const (
	HeaderKey   = "Key"
	HeaderValue = "Value"
)

// Column width bounds, in characters.
const (
	minKeyWidth   = 10
	maxKeyWidth   = 60
	minValueWidth = 50
	maxValueWidth = 80
	widthPadding  = 2
)

// Table is the two-column tabular form of a translation set: a header row
// and the data rows below it.
type Table struct {
	Header []string
	Rows   [][]string
}

type column int

const (
	keyColumn column = iota
	valueColumn
)

// columnNames resolves header titles to columns.
var columnNames = map[string]column{
	"Key":   keyColumn,
	"key":   keyColumn,
	"Value": valueColumn,
	"value": valueColumn,
}

// WriteTable lays entries out under a Key/Value header, one row per entry,
// in order.
func WriteTable(entries []Entry) *Table {
	t := &Table{
		Header: []string{HeaderKey, HeaderValue},
		Rows:   make([][]string, 0, len(entries)),
	}
	for _, e := range entries {
		t.Rows = append(t.Rows, []string{e.Key, e.Value})
	}
	return t
}

// ReadTable turns the rows of t back into entries. The key and value
// columns are found by header title ("Key"/"key", "Value"/"value") and may
// appear in any position; other columns are ignored, and so are rows
// without any content. The first data row must have both a key and a value;
// later rows may leave the value empty. Keys are not deduplicated.
func ReadTable(t *Table) ([]Entry, error) {
	var rows [][]string
	var rowNumbers []int
	if t != nil {
		for i, row := range t.Rows {
			if !isBlank(row) {
				rows = append(rows, row)
				rowNumbers = append(rowNumbers, i+2) // 1-based, below the header
			}
		}
	}
	if len(rows) == 0 {
		return nil, ErrEmptyTable
	}

	keyIdx, valueIdx := -1, -1
	for i, title := range t.Header {
		col, ok := columnNames[strings.TrimSpace(title)]
		switch {
		case !ok:
		case col == keyColumn && keyIdx < 0:
			keyIdx = i
		case col == valueColumn && valueIdx < 0:
			valueIdx = i
		}
	}
	if keyIdx < 0 || valueIdx < 0 {
		return nil, fmt.Errorf("%w (header is %q)", ErrMissingColumns, t.Header)
	}

	entries := make([]Entry, 0, len(rows))
	for i, row := range rows {
		key := cell(row, keyIdx)
		if key == "" {
			if i == 0 {
				return nil, fmt.Errorf("%w (first data row has no key)", ErrMissingColumns)
			}
			return nil, fmt.Errorf("%w (row %d has no key)", ErrMissingColumns, rowNumbers[i])
		}
		if _, ok := splitPath(key); !ok {
			return nil, fmt.Errorf("%w: %q in row %d has an empty path segment", ErrInvalidKey, key, rowNumbers[i])
		}
		value := cell(row, valueIdx)
		if i == 0 && value == "" {
			return nil, fmt.Errorf("%w (first data row has no value)", ErrMissingColumns)
		}
		entries = append(entries, Entry{Key: key, Value: value})
	}
	return entries, nil
}

// Records returns the header followed by the rows.
func (t *Table) Records() [][]string {
	records := make([][]string, 0, len(t.Rows)+1)
	records = append(records, t.Header)
	return append(records, t.Rows...)
}

// TableFromRecords splits decoded spreadsheet records into a header and data
// rows. Blank records before the header are skipped.
func TableFromRecords(records [][]string) *Table {
	for i, rec := range records {
		if !isBlank(rec) {
			return &Table{Header: rec, Rows: records[i+1:]}
		}
	}
	return &Table{}
}

// ColumnWidths are the suggested column widths, in characters, for the key
// and value columns of a written table.
type ColumnWidths struct {
	Key   int
	Value int
}

// Widths sizes the key and value columns to their longest content within
// fixed bounds: keys between 12 and 60 characters, values between 52 and 80.
func Widths(entries []Entry) ColumnWidths {
	maxKey, maxValue := minKeyWidth, minValueWidth
	for _, e := range entries {
		maxKey = max(maxKey, utf8.RuneCountInString(e.Key))
		maxValue = max(maxValue, utf8.RuneCountInString(e.Value))
	}
	return ColumnWidths{
		Key:   min(maxKey+widthPadding, maxKeyWidth),
		Value: min(maxValue+widthPadding, maxValueWidth),
	}
}

func cell(row []string, idx int) string {
	if idx < len(row) {
		return row[idx]
	}
	return ""
}

func isBlank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
