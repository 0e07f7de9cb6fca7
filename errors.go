package locsheet

import lserrors "github.com/KimNorgaard/go-locsheet/errors"

// Error kinds returned by locsheet. Test for them with errors.Is.
var (
	ErrInvalidDirection = lserrors.ErrInvalidDirection
	ErrMalformedLiteral = lserrors.ErrMalformedLiteral
	ErrEmptyTable       = lserrors.ErrEmptyTable
	ErrMissingColumns   = lserrors.ErrMissingColumns
	ErrEmptySheet       = lserrors.ErrEmptySheet
	ErrPathConflict     = lserrors.ErrPathConflict
	ErrInvalidKey       = lserrors.ErrInvalidKey
	ErrUnreadableTable  = lserrors.ErrUnreadableTable
	ErrUnwritableValue  = lserrors.ErrUnwritableValue
)

// ParseErrors lists every syntax error found in a literal. Use errors.As to
// get at the positions.
type ParseErrors = lserrors.ParseErrors
