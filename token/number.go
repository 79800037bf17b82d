package token

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Int decodes an integer literal: an optional sign, an optional radix
// prefix (0x, 0b, 0o, case-insensitive), and digits of that radix with _
// separators permitted strictly between digits. Values outside the signed
// 64-bit range are an overflow error, never wrapped or widened.
func Int(s string) (int64, error) {
	rest := s
	sign := ""
	if len(rest) > 0 && (rest[0] == '+' || rest[0] == '-') {
		if rest[0] == '-' {
			sign = "-"
		}
		rest = rest[1:]
	}
	base := 10
	if len(rest) >= 2 && rest[0] == '0' {
		switch rest[1] {
		case 'x', 'X':
			base, rest = 16, rest[2:]
		case 'b', 'B':
			base, rest = 2, rest[2:]
		case 'o', 'O':
			base, rest = 8, rest[2:]
		}
	}
	digits, err := ungroup(rest, base)
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseInt(sign+digits, base, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, fmt.Errorf("%w: %s", ErrIntRange, s)
		}
		return 0, fmt.Errorf("%w: %q", ErrNumber, s)
	}
	return v, nil
}

// ungroup strips _ separators, rejecting any separator that is not
// strictly between two digits of the radix.
func ungroup(s string, base int) (string, error) {
	if s == "" {
		return "", fmt.Errorf("%w: missing digits", ErrNumber)
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '_' {
			if i == 0 || i == len(s)-1 || !digitInBase(s[i-1], base) || !digitInBase(s[i+1], base) {
				return "", fmt.Errorf("%w: %q", ErrDigitSep, s)
			}
			continue
		}
		if !digitInBase(c, base) {
			return "", fmt.Errorf("%w: %q", ErrNumber, s)
		}
		b.WriteByte(c)
	}
	return b.String(), nil
}

func digitInBase(c byte, base int) bool {
	switch base {
	case 2:
		return c == '0' || c == '1'
	case 8:
		return c >= '0' && c <= '7'
	case 16:
		return asciiDigit(c) || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
	default:
		return asciiDigit(c)
	}
}

// Float decodes a float literal: a decimal mantissa with a fraction
// and/or exponent, or one of the case-insensitive specials inf, +inf,
// -inf, nan (a sign on nan is accepted and ignored).
func Float(s string) (float64, error) {
	switch strings.ToLower(s) {
	case "inf", "+inf":
		return math.Inf(1), nil
	case "-inf":
		return math.Inf(-1), nil
	case "nan", "+nan", "-nan":
		return math.NaN(), nil
	}
	if !floatShape(s) {
		return 0, fmt.Errorf("%w: %q", ErrNumber, s)
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrNumber, s)
	}
	return f, nil
}

func floatShape(s string) bool {
	d := []byte(s)
	if len(d) > 0 && (d[0] == '+' || d[0] == '-') {
		d = d[1:]
	}
	n := asciiDigits(d)
	if n == 0 {
		return false
	}
	f := fract(d[n:])
	e := exp(d[n+f:])
	return n+f+e == len(d)
}

func asciiDigits(d []byte) int {
	i := 0
	for i < len(d) && asciiDigit(d[i]) {
		i++
	}
	return i
}

func asciiDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func fract(d []byte) int {
	if len(d) < 2 || d[0] != '.' {
		return 0
	}
	n := asciiDigits(d[1:])
	if n == 0 {
		// . must be followed by one or more digits
		return 0
	}
	return 1 + n
}

func exp(d []byte) int {
	if len(d) < 2 {
		return 0
	}
	switch d[0] {
	case 'e', 'E':
	default:
		return 0
	}
	i := 1
	switch d[1] {
	case '+', '-':
		i++
	}
	n := asciiDigits(d[i:])
	if n == 0 {
		return 0
	}
	return i + n
}
