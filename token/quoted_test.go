package token

import (
	"errors"
	"testing"
)

func TestStringDecode(t *testing.T) {
	for _, tc := range []struct {
		raw   string
		quote byte
		want  string
		e     error
	}{
		{raw: `hello`, quote: '"', want: "hello"},
		{raw: `a\"b`, quote: '"', want: `a"b`},
		{raw: `a\'b`, quote: '\'', want: "a'b"},
		{raw: `a\\b`, quote: '"', want: `a\b`},
		{raw: `a\/b`, quote: '"', want: "a/b"},
		{raw: `line\nbreak`, quote: '"', want: "line\nbreak"},
		{raw: `\t\r\b\f`, quote: '"', want: "\t\r\b\f"},
		{raw: `A`, quote: '"', want: "A"},
		{raw: `é`, quote: '"', want: "é"},
		{raw: `😀`, quote: '"', want: "😀"},
		{raw: `café`, quote: '"', want: "café"},
		{raw: `\q`, quote: '"', e: ErrBadEscape},
		{raw: `\u12`, quote: '"', e: ErrBadUnicode},
		{raw: `\uZZZZ`, quote: '"', e: ErrBadUnicode},
		{raw: `\ud83d`, quote: '"', e: ErrBadUnicode},
		{raw: `\ud83dx`, quote: '"', e: ErrBadUnicode},
		{raw: `\ude00`, quote: '"', e: ErrBadUnicode},
		{raw: `\ud83dA`, quote: '"', e: ErrBadUnicode},
		{raw: `trailing\`, quote: '"', e: ErrUnterminated},
	} {
		got, err := String(tc.raw, tc.quote)
		if tc.e != nil {
			if !errors.Is(err, tc.e) {
				t.Errorf("String(%q) error = %v, want %v", tc.raw, err, tc.e)
			}
			continue
		}
		if err != nil {
			t.Errorf("String(%q): %v", tc.raw, err)
			continue
		}
		if got != tc.want {
			t.Errorf("String(%q) = %q, want %q", tc.raw, got, tc.want)
		}
	}
}

func TestQuote(t *testing.T) {
	for _, tc := range []struct {
		in      string
		quote   byte
		unicode bool
		want    string
	}{
		{in: "hello", quote: '"', want: `"hello"`},
		{in: `a"b`, quote: '"', want: `"a\"b"`},
		{in: `a"b`, quote: '\'', want: `'a"b'`},
		{in: "a'b", quote: '\'', want: `'a\'b'`},
		{in: "a\\b", quote: '"', want: `"a\\b"`},
		{in: "a/b", quote: '"', want: `"a/b"`},
		{in: "a\nb\tc", quote: '"', want: `"a\nb\tc"`},
		{in: "\x00", quote: '"', want: `"\u0000"`},
		{in: "café", quote: '"', want: `"café"`},
		{in: "café", quote: '"', unicode: true, want: `"caf\u00e9"`},
		{in: "😀", quote: '"', unicode: true, want: `"\ud83d\ude00"`},
	} {
		got := Quote(tc.in, tc.quote, tc.unicode)
		if got != tc.want {
			t.Errorf("Quote(%q, %c, %v) = %s, want %s", tc.in, tc.quote, tc.unicode, got, tc.want)
		}
	}
}

func TestQuoteRoundTrip(t *testing.T) {
	for _, s := range []string{
		`"`,
		`'`,
		"\t\n\r\b\f",
		"∞∞",
		`"""''`,
		"mixed \"quotes\" and 'apostrophes'",
		"😀 and text",
		"back\\slash",
	} {
		for _, q := range []byte{'"', '\''} {
			for _, unicode := range []bool{false, true} {
				quoted := Quote(s, q, unicode)
				got, err := String(quoted[1:len(quoted)-1], q)
				if err != nil {
					t.Errorf("String(Quote(%q)): %v", s, err)
					continue
				}
				if got != s {
					t.Errorf("round trip %q -> %s -> %q", s, quoted, got)
				}
			}
		}
	}
}

func TestBinary(t *testing.T) {
	for _, tc := range []struct {
		enc, payload string
		want         []byte
		e            error
	}{
		{enc: "b64", payload: "aGk=", want: []byte("hi")},
		{enc: "b64", payload: "", want: []byte{}},
		{enc: "h", payload: "0aff", want: []byte{0x0a, 0xff}},
		{enc: "hex", payload: "0AFF", want: []byte{0x0a, 0xff}},
		{enc: "b64", payload: "Hello!", e: ErrBadBase64},
		{enc: "b64", payload: "aGk", e: ErrBadBase64},
		{enc: "h", payload: "ABC", e: ErrOddHexDigits},
		{enc: "hex", payload: "zz", e: ErrBadHex},
	} {
		got, err := Binary(tc.enc, tc.payload)
		if tc.e != nil {
			if !errors.Is(err, tc.e) {
				t.Errorf("Binary(%s, %q) error = %v, want %v", tc.enc, tc.payload, err, tc.e)
			}
			continue
		}
		if err != nil {
			t.Errorf("Binary(%s, %q): %v", tc.enc, tc.payload, err)
			continue
		}
		if string(got) != string(tc.want) {
			t.Errorf("Binary(%s, %q) = %x, want %x", tc.enc, tc.payload, got, tc.want)
		}
	}
}

func TestTimestamp(t *testing.T) {
	ts, err := Timestamp("2024-01-02T03:04:05.5+05:30")
	if err != nil {
		t.Fatal(err)
	}
	if ts.Nanosecond() != 500000000 {
		t.Errorf("nanos = %d", ts.Nanosecond())
	}
	if _, off := ts.Zone(); off != 5*3600+30*60 {
		t.Errorf("offset = %d", off)
	}
	for _, bad := range []string{"2024-01-02", "2024-01-02T03:04:05", "not a time"} {
		if _, err := Timestamp(bad); !errors.Is(err, ErrBadTimestamp) {
			t.Errorf("Timestamp(%q) error = %v, want ErrBadTimestamp", bad, err)
		}
	}
}
