package token

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// String decodes the escaped content of a quoted string literal. raw is
// the text between the delimiters; quote is the delimiter character, used
// only for error messages since both \" and \' are always legal escapes.
func String(raw string, quote byte) (string, error) {
	var b strings.Builder
	b.Grow(len(raw))
	i := 0
	for i < len(raw) {
		if raw[i] != '\\' {
			r, sz := utf8.DecodeRuneInString(raw[i:])
			b.WriteRune(r)
			i += sz
			continue
		}
		i++
		if i >= len(raw) {
			return "", fmt.Errorf("%w: %c-quoted string ends in backslash", ErrUnterminated, quote)
		}
		switch raw[i] {
		case '"', '\'', '\\', '/':
			b.WriteByte(raw[i])
			i++
		case 'n':
			b.WriteByte('\n')
			i++
		case 't':
			b.WriteByte('\t')
			i++
		case 'r':
			b.WriteByte('\r')
			i++
		case 'b':
			b.WriteByte('\b')
			i++
		case 'f':
			b.WriteByte('\f')
			i++
		case 'u':
			r, n, err := unicodeEscape(raw[i+1:])
			if err != nil {
				return "", err
			}
			b.WriteRune(r)
			i += 1 + n
		default:
			return "", fmt.Errorf("%w: \\%c", ErrBadEscape, raw[i])
		}
	}
	return b.String(), nil
}

// unicodeEscape decodes the hex digits of a \u escape starting just after
// the 'u'. A high surrogate must be followed by an escaped low surrogate;
// the pair decodes to a single code point. Returns the rune and the
// number of bytes consumed.
func unicodeEscape(d string) (rune, int, error) {
	hi, err := hex4(d)
	if err != nil {
		return 0, 0, err
	}
	r := rune(hi)
	switch {
	case r >= 0xdc00 && r <= 0xdfff:
		return 0, 0, fmt.Errorf("%w: lone low surrogate \\u%04x", ErrBadUnicode, hi)
	case r >= 0xd800 && r <= 0xdbff:
		if len(d) < 10 || d[4] != '\\' || d[5] != 'u' {
			return 0, 0, fmt.Errorf("%w: lone high surrogate \\u%04x", ErrBadUnicode, hi)
		}
		lo, err := hex4(d[6:])
		if err != nil {
			return 0, 0, err
		}
		if lo < 0xdc00 || lo > 0xdfff {
			return 0, 0, fmt.Errorf("%w: bad surrogate pair \\u%04x\\u%04x", ErrBadUnicode, hi, lo)
		}
		r = 0x10000 + (r-0xd800)<<10 + (rune(lo) - 0xdc00)
		return r, 10, nil
	}
	return r, 4, nil
}

func hex4(d string) (uint32, error) {
	if len(d) < 4 {
		return 0, fmt.Errorf("%w: truncated \\u escape", ErrBadUnicode)
	}
	v, err := strconv.ParseUint(d[:4], 16, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: \\u%s", ErrBadUnicode, d[:4])
	}
	return uint32(v), nil
}

// Quote renders s as a quoted literal using the given delimiter. Control
// characters always escape to \uXXXX; with escapeUnicode set, all
// non-ASCII escapes too, splitting non-BMP code points into UTF-16
// surrogate pairs.
func Quote(s string, quote byte, escapeUnicode bool) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte(quote)
	for _, r := range s {
		switch {
		case r == rune(quote):
			b.WriteByte('\\')
			b.WriteByte(quote)
		case r == '\\':
			b.WriteString(`\\`)
		case r == '\n':
			b.WriteString(`\n`)
		case r == '\t':
			b.WriteString(`\t`)
		case r == '\r':
			b.WriteString(`\r`)
		case r == '\b':
			b.WriteString(`\b`)
		case r == '\f':
			b.WriteString(`\f`)
		case unicode.IsControl(r):
			fmt.Fprintf(&b, `\u%04x`, r)
		case escapeUnicode && r > unicode.MaxASCII:
			if r <= 0xffff {
				fmt.Fprintf(&b, `\u%04x`, r)
			} else {
				adj := r - 0x10000
				fmt.Fprintf(&b, `\u%04x\u%04x`, 0xd800+(adj>>10), 0xdc00+(adj&0x3ff))
			}
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte(quote)
	return b.String()
}
