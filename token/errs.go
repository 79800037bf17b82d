package token

import "errors"

var (
	ErrNumber       = errors.New("bad number")
	ErrIntRange     = errors.New("integer overflow")
	ErrDigitSep     = errors.New("misplaced digit separator")
	ErrBadEscape    = errors.New("bad escape")
	ErrBadUnicode   = errors.New("bad unicode escape")
	ErrUnterminated = errors.New("unterminated string")
	ErrBadBase64    = errors.New("bad base64")
	ErrBadHex       = errors.New("bad hex")
	ErrOddHexDigits = errors.New("odd hex digit count")
	ErrBadTimestamp = errors.New("bad timestamp")
)
