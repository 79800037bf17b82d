package token

import (
	"errors"
	"math"
	"testing"
)

func TestInt(t *testing.T) {
	for _, tc := range []struct {
		in   string
		want int64
		e    error
	}{
		{in: "42", want: 42},
		{in: "-123", want: -123},
		{in: "+7", want: 7},
		{in: "0xFF", want: 255},
		{in: "0Xff", want: 255},
		{in: "0b1010", want: 10},
		{in: "0o755", want: 493},
		{in: "1_000_000", want: 1000000},
		{in: "0xDE_AD", want: 0xDEAD},
		{in: "-0x10", want: -16},
		{in: "-9223372036854775808", want: math.MinInt64},
		{in: "9223372036854775807", want: math.MaxInt64},
		{in: "9223372036854775808", e: ErrIntRange},
		{in: "-9223372036854775809", e: ErrIntRange},
		{in: "1__000", e: ErrDigitSep},
		{in: "1000_", e: ErrDigitSep},
		{in: "_1000", e: ErrDigitSep},
		{in: "0x_FF", e: ErrDigitSep},
		{in: "0x", e: ErrNumber},
		{in: "0b102", e: ErrNumber},
		{in: "0o8", e: ErrNumber},
		{in: "", e: ErrNumber},
		{in: "12a", e: ErrNumber},
	} {
		got, err := Int(tc.in)
		if tc.e != nil {
			if !errors.Is(err, tc.e) {
				t.Errorf("Int(%q) error = %v, want %v", tc.in, err, tc.e)
			}
			continue
		}
		if err != nil {
			t.Errorf("Int(%q): %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("Int(%q) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestFloat(t *testing.T) {
	for _, tc := range []struct {
		in   string
		want float64
		e    error
	}{
		{in: "3.14", want: 3.14},
		{in: "-0.5", want: -0.5},
		{in: "1e10", want: 1e10},
		{in: "2.5E-3", want: 2.5e-3},
		{in: "+1.0", want: 1},
		{in: "inf", want: math.Inf(1)},
		{in: "INF", want: math.Inf(1)},
		{in: "+inf", want: math.Inf(1)},
		{in: "-inf", want: math.Inf(-1)},
		{in: "1.", e: ErrNumber},
		{in: ".5", e: ErrNumber},
		{in: "1e", e: ErrNumber},
		{in: "1e+", e: ErrNumber},
		{in: "abc", e: ErrNumber},
		{in: "", e: ErrNumber},
	} {
		got, err := Float(tc.in)
		if tc.e != nil {
			if !errors.Is(err, tc.e) {
				t.Errorf("Float(%q) error = %v, want %v", tc.in, err, tc.e)
			}
			continue
		}
		if err != nil {
			t.Errorf("Float(%q): %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("Float(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestFloatNaN(t *testing.T) {
	for _, in := range []string{"nan", "NaN", "+nan", "-nan"} {
		got, err := Float(in)
		if err != nil {
			t.Errorf("Float(%q): %v", in, err)
			continue
		}
		if !math.IsNaN(got) {
			t.Errorf("Float(%q) = %v, want NaN", in, got)
		}
	}
}
