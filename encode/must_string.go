package encode

import "github.com/arakholia/go-jasn/ir"

// MustString renders v with the given options, panicking on writer
// failure, which cannot happen with the in-memory buffer String uses.
func MustString(v *ir.Value, opts ...EncodeOption) string {
	s, err := String(v, opts...)
	if err != nil {
		panic(err)
	}
	return s
}
