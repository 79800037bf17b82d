package parse

import (
	"github.com/arakholia/go-jasn/format"
	"github.com/arakholia/go-jasn/ir"
)

type Option func(*parseOpts)

type parseOpts struct {
	format format.Format
}

// WithFormat selects the input syntax. The default is format.JASN.
func WithFormat(f format.Format) Option {
	return func(o *parseOpts) {
		o.format = f
	}
}

// Parse parses one complete document into a value tree. The whole input
// must be consumed; trailing tokens after the top-level value are an
// error.
func Parse(d []byte, opts ...Option) (*ir.Value, error) {
	pOpts := &parseOpts{format: format.JASN}
	for _, f := range opts {
		f(pOpts)
	}
	if pOpts.format.IsJAML() {
		return parseBlock(d)
	}
	return parseBracketed(d)
}

func ParseString(s string, opts ...Option) (*ir.Value, error) {
	return Parse([]byte(s), opts...)
}
