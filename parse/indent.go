package parse

import "fmt"

// indentTracker measures indentation levels for block documents. The
// first indented line establishes the unit: its character count becomes
// the unit width and its character (space or tab) the unit kind. Every
// later indent must use the same kind and a length that is an exact
// multiple of the unit width.
type indentTracker struct {
	unit int
	kind byte
}

func (t *indentTracker) level(indent string, line int) (int, error) {
	if indent == "" {
		return 0, nil
	}
	kind := indent[0]
	for i := 1; i < len(indent); i++ {
		if indent[i] != kind {
			return 0, fmt.Errorf("%w at line %d", ErrMixedIndent, line)
		}
	}
	if t.unit == 0 {
		t.unit, t.kind = len(indent), kind
		return 1, nil
	}
	if kind != t.kind {
		return 0, fmt.Errorf("%w: line %d indents with %s, document uses %s",
			ErrIndentKind, line, kindName(kind), kindName(t.kind))
	}
	if len(indent)%t.unit != 0 {
		return 0, fmt.Errorf("%w: line %d has %d %ss, unit is %d",
			ErrIndentWidth, line, len(indent), kindName(kind), t.unit)
	}
	return len(indent) / t.unit, nil
}

func kindName(kind byte) string {
	if kind == '\t' {
		return "tab"
	}
	return "space"
}
