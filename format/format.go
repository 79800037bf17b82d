// Package format defines the syntax selector shared by the parse and
// encode packages. JASN is the bracketed, JSON5-like syntax; JAML is the
// indentation-based, YAML-like syntax. Both map onto the same ir.Value
// data model.
package format

import (
	"errors"
	"fmt"
)

type Format int

const (
	JASN Format = iota
	JAML
)

var ErrBadFormat = errors.New("bad format")

func ParseFormat(v string) (Format, error) {
	f, ok := map[string]Format{
		"jasn": JASN,
		"jaml": JAML,
	}[v]
	if ok {
		return f, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrBadFormat, v)
}

func (f Format) String() string {
	d, err := f.MarshalText()
	if err != nil {
		return err.Error()
	}
	return string(d)
}

func (f Format) MarshalText() ([]byte, error) {
	switch f {
	case JASN:
		return []byte("jasn"), nil
	case JAML:
		return []byte("jaml"), nil
	default:
		return nil, fmt.Errorf("<err: %d is not a format>", f)
	}
}

func (f *Format) UnmarshalText(d []byte) error {
	pf, err := ParseFormat(string(d))
	if err != nil {
		return err
	}
	*f = pf
	return nil
}

func (f Format) IsJASN() bool { return f == JASN }
func (f Format) IsJAML() bool { return f == JAML }

// Suffix returns the file extension for this format (including the dot).
func (f Format) Suffix() string {
	switch f {
	case JASN:
		return ".jasn"
	case JAML:
		return ".jaml"
	default:
		return ""
	}
}
