package encode

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arakholia/go-jasn/format"
	"github.com/arakholia/go-jasn/ir"
)

func kvs(t *testing.T, pairs ...ir.KeyVal) *ir.Value {
	t.Helper()
	v, err := ir.FromKeyVals(pairs)
	require.NoError(t, err)
	return v
}

func TestDefaultBracketed(t *testing.T) {
	v := kvs(t,
		ir.KeyVal{Key: "b", Val: ir.FromInt(2)},
		ir.KeyVal{Key: "a", Val: ir.FromSlice([]*ir.Value{ir.FromInt(1)})},
	)
	got := MustString(v)
	want := `{
  a: [
    1,
  ],
  b: 2,
}`
	assert.Equal(t, want, got)
}

func TestCompact(t *testing.T) {
	v := kvs(t, ir.KeyVal{Key: "test", Val: ir.FromInt(123)})
	assert.Equal(t, `{test:123}`, MustString(v, Compact()))

	list := ir.FromSlice([]*ir.Value{ir.FromInt(1), ir.FromInt(2)})
	assert.Equal(t, `[1,2]`, MustString(list, Compact()))
}

func TestNoTrailingCommas(t *testing.T) {
	list := ir.FromSlice([]*ir.Value{ir.FromInt(1), ir.FromInt(2)})
	got := MustString(list, TrailingCommas(false))
	assert.Equal(t, "[\n  1,\n  2\n]", got)
}

func TestEmptyCollections(t *testing.T) {
	assert.Equal(t, `[]`, MustString(ir.FromSlice(nil)))
	assert.Equal(t, `{}`, MustString(&ir.Value{Type: ir.MapType}))
}

func TestFloats(t *testing.T) {
	for _, tc := range []struct {
		f    float64
		want string
	}{
		{f: 3.0, want: "3.0"},
		{f: -2.0, want: "-2.0"},
		{f: 3.14, want: "3.14"},
		{f: 1e16, want: "1e+16"},
		{f: math.Inf(1), want: "inf"},
		{f: math.Inf(-1), want: "-inf"},
		{f: math.NaN(), want: "nan"},
	} {
		assert.Equal(t, tc.want, MustString(ir.FromFloat(tc.f)), "float %v", tc.f)
	}
}

func TestLeadingPlus(t *testing.T) {
	for _, tc := range []struct {
		v    *ir.Value
		want string
	}{
		{v: ir.FromInt(42), want: "+42"},
		{v: ir.FromInt(0), want: "+0"},
		{v: ir.FromInt(-42), want: "-42"},
		{v: ir.FromFloat(1.5), want: "+1.5"},
		{v: ir.FromFloat(math.Inf(1)), want: "+inf"},
		{v: ir.FromFloat(math.NaN()), want: "nan"},
	} {
		assert.Equal(t, tc.want, MustString(tc.v, LeadingPlus(true)))
	}
}

func TestQuoteStyles(t *testing.T) {
	s := ir.FromString(`say "hi"`)
	assert.Equal(t, `"say \"hi\""`, MustString(s))
	assert.Equal(t, `'say "hi"'`, MustString(s, Quotes(QuoteSingle)))
	assert.Equal(t, `'say "hi"'`, MustString(s, Quotes(QuotePreferDouble)))
	assert.Equal(t, `"it's"`, MustString(ir.FromString("it's"), Quotes(QuotePreferDouble)))
}

func TestEscapeUnicode(t *testing.T) {
	got := MustString(ir.FromString("\U0001F600"), EscapeUnicode(true))
	assert.Equal(t, `"\ud83d\ude00"`, got)
	got = MustString(ir.FromString("café"), EscapeUnicode(true))
	assert.Equal(t, `"caf\u00e9"`, got)
}

func TestBinaryEncodings(t *testing.T) {
	b := ir.FromBinary([]byte{0x0a, 0xff})
	assert.Equal(t, `b64"Cv8="`, MustString(b))
	assert.Equal(t, `h"0aff"`, MustString(b, BinaryAs(Hex)))
	assert.Equal(t, `hex"0aff"`, MustString(b, BinaryAs(Hex), EncodeFormat(format.JAML)))
}

func TestTimestamps(t *testing.T) {
	utc := ir.FromTimestamp(time.Date(2024, 1, 2, 3, 4, 5, 500000000, time.UTC))
	for _, tc := range []struct {
		opts []EncodeOption
		want string
	}{
		{want: `ts"2024-01-02T03:04:05.5Z"`},
		{opts: []EncodeOption{TimePrecision(PrecisionSeconds)}, want: `ts"2024-01-02T03:04:05Z"`},
		{opts: []EncodeOption{TimePrecision(PrecisionMillis)}, want: `ts"2024-01-02T03:04:05.500Z"`},
		{opts: []EncodeOption{TimePrecision(PrecisionMicros)}, want: `ts"2024-01-02T03:04:05.500000Z"`},
		{opts: []EncodeOption{TimePrecision(PrecisionNanos)}, want: `ts"2024-01-02T03:04:05.500000000Z"`},
		{opts: []EncodeOption{Zulu(false)}, want: `ts"2024-01-02T03:04:05.5+00:00"`},
	} {
		assert.Equal(t, tc.want, MustString(utc, tc.opts...))
	}

	ist := ir.FromTimestamp(time.Date(2024, 6, 7, 8, 9, 10, 0, time.FixedZone("", 5*3600+30*60)))
	assert.Equal(t, `ts"2024-06-07T08:09:10+05:30"`, MustString(ist))
}

func TestKeys(t *testing.T) {
	v := kvs(t,
		ir.KeyVal{Key: "plain", Val: ir.FromInt(1)},
		ir.KeyVal{Key: "needs quoting", Val: ir.FromInt(2)},
		ir.KeyVal{Key: "null", Val: ir.FromInt(3)},
		ir.KeyVal{Key: "_ok2", Val: ir.FromInt(4)},
	)
	got := MustString(v, Compact())
	assert.Equal(t, `{_ok2:4,"needs quoting":2,"null":3,plain:1}`, got)

	got = MustString(v, Compact(), UnquotedKeys(false))
	assert.Equal(t, `{"_ok2":4,"needs quoting":2,"null":3,"plain":1}`, got)
}

func TestSortKeys(t *testing.T) {
	v := kvs(t,
		ir.KeyVal{Key: "z", Val: ir.FromInt(1)},
		ir.KeyVal{Key: "a", Val: ir.FromInt(2)},
	)
	assert.Equal(t, `{a:2,z:1}`, MustString(v, Compact()))
	assert.Equal(t, `{z:1,a:2}`, MustString(v, Compact(), SortKeys(false)))
}

func TestBlockOutput(t *testing.T) {
	v := kvs(t,
		ir.KeyVal{Key: "name", Val: ir.FromString("svc")},
		ir.KeyVal{Key: "ports", Val: ir.FromSlice([]*ir.Value{
			ir.FromInt(80), ir.FromInt(443),
		})},
		ir.KeyVal{Key: "labels", Val: kvs(t,
			ir.KeyVal{Key: "env", Val: ir.FromString("prod")},
		)},
		ir.KeyVal{Key: "empty", Val: &ir.Value{Type: ir.MapType}},
	)
	got := MustString(v, EncodeFormat(format.JAML))
	want := `empty: {}
labels:
  env: "prod"
name: "svc"
ports:
  - 80
  - 443`
	assert.Equal(t, want, got)
}

func TestBlockNestedLists(t *testing.T) {
	v := ir.FromSlice([]*ir.Value{
		ir.FromInt(1),
		ir.FromSlice([]*ir.Value{ir.FromInt(2), ir.FromInt(3)}),
	})
	got := MustString(v, EncodeFormat(format.JAML))
	want := `- 1
-
  - 2
  - 3`
	assert.Equal(t, want, got)
}

func TestBlockScalarDocument(t *testing.T) {
	assert.Equal(t, `42`, MustString(ir.FromInt(42), EncodeFormat(format.JAML)))
	assert.Equal(t, `"hi"`, MustString(ir.FromString("hi"), EncodeFormat(format.JAML)))
}

func TestColorsPassThrough(t *testing.T) {
	// NewColors wraps fatih/color; with color globally disabled in tests
	// we only check that colored output still contains the plain text.
	v := kvs(t, ir.KeyVal{Key: "a", Val: ir.FromInt(1)})
	got := MustString(v, Compact(), EncodeColors(NewColors()))
	assert.Contains(t, got, "a")
	assert.Contains(t, got, "1")
}
