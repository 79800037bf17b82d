package parse

import "errors"

var (
	ErrParse            = errors.New("parse error")
	ErrTooDeep          = errors.New("nesting too deep")
	ErrEmptyDocument    = errors.New("empty document")
	ErrMissingValue     = errors.New("missing value")
	ErrMixedIndent      = errors.New("mixed tabs and spaces in indent")
	ErrIndentKind       = errors.New("inconsistent indent kind")
	ErrIndentWidth      = errors.New("indent is not a multiple of the unit width")
	ErrUnexpectedIndent = errors.New("unexpected indentation")
)
