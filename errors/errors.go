// Package errors defines the error kinds reported by locsheet.
//
// Every failure of a conversion matches exactly one of the sentinel errors
// below with the standard library's errors.Is. Syntax errors in a literal are
// additionally available as ParseErrors through errors.As.
package errors

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDirection reports an unrecognized conversion direction.
	ErrInvalidDirection = errors.New("locsheet: invalid conversion direction")
	// ErrMalformedLiteral reports a syntax error in a translation literal.
	ErrMalformedLiteral = errors.New("locsheet: malformed literal")
	// ErrEmptyTable reports a table without data rows.
	ErrEmptyTable = errors.New("locsheet: table is empty or has no data")
	// ErrMissingColumns reports a table whose rows have no resolvable key/value pair.
	ErrMissingColumns = errors.New(`locsheet: table must have "Key" and "Value" columns`)
	// ErrEmptySheet reports a workbook without any sheet.
	ErrEmptySheet = errors.New("locsheet: workbook has no sheets")
	// ErrPathConflict reports a dot-path that is used both as a leaf and as a
	// parent. It is only returned when strict path checking is enabled.
	ErrPathConflict = errors.New("locsheet: conflicting key paths")
	// ErrInvalidKey reports a dot-path with an empty segment.
	ErrInvalidKey = errors.New("locsheet: invalid key")
	// ErrUnreadableTable reports spreadsheet bytes that are not a valid
	// workbook or CSV file.
	ErrUnreadableTable = errors.New("locsheet: unreadable table file")
	// ErrUnwritableValue reports a cell the table format cannot store
	// unchanged, such as an over-long text or a control character in XLSX.
	ErrUnwritableValue = errors.New("locsheet: value cannot be stored in the table")
)

// ParseError represents a single error that occurred during parsing.
// It includes the position of the error.
type ParseError struct {
	Message string
	Line    int
	Column  int
}

func (e ParseError) Error() string {
	return fmt.Sprintf("line %d, column %d: %s", e.Line, e.Column, e.Message)
}

// ParseErrors is a slice of ParseError that implements the error interface.
// This allows returning all syntax errors found during parsing at once.
type ParseErrors []ParseError

func (p ParseErrors) Error() string {
	if len(p) == 0 {
		return ""
	}
	// The collection reports the first error; the rest stay reachable by ranging.
	msg := fmt.Sprintf("locsheet: parsing error at line %d, column %d: %s", p[0].Line, p[0].Column, p[0].Message)
	if len(p) > 1 {
		msg += fmt.Sprintf(" (and %d more)", len(p)-1)
	}
	return msg
}

// Unwrap makes every ParseErrors value match ErrMalformedLiteral.
func (p ParseErrors) Unwrap() error { return ErrMalformedLiteral }
