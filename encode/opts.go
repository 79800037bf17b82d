package encode

import "github.com/arakholia/go-jasn/format"

// QuoteStyle selects the delimiter for rendered strings.
type QuoteStyle int

const (
	// QuoteDouble always uses ".
	QuoteDouble QuoteStyle = iota
	// QuoteSingle always uses '.
	QuoteSingle
	// QuotePreferDouble uses " unless the string contains more " than '
	// characters, in which case ' needs less escaping.
	QuotePreferDouble
)

// BinaryEncoding selects how binary values render.
type BinaryEncoding int

const (
	Base64 BinaryEncoding = iota
	Hex
)

// Precision selects fractional-second digits on rendered timestamps.
// PrecisionAuto emits exactly the digits present, trimming trailing
// zeros; the fixed settings zero-pad to their digit count.
type Precision int

const (
	PrecisionAuto Precision = iota
	PrecisionSeconds
	PrecisionMillis
	PrecisionMicros
	PrecisionNanos
)

// EncState holds the rendering configuration. Every axis toggles
// independently; the zero state is adjusted to defaults by Encode.
type EncState struct {
	format         format.Format
	indent         string
	trailingCommas bool
	quoteStyle     QuoteStyle
	binary         BinaryEncoding
	unquotedKeys   bool
	leadingPlus    bool
	sortKeys       bool
	escapeUnicode  bool
	precision      Precision
	zulu           bool

	color colorFunc
}

type EncodeOption func(*EncState)

func EncodeFormat(f format.Format) EncodeOption {
	return func(es *EncState) { es.format = f }
}

// Indent sets the indentation unit for bracketed output. The empty
// string selects compact single-line rendering. Block output always
// indents with two spaces so its own parser can re-read it.
func Indent(s string) EncodeOption {
	return func(es *EncState) { es.indent = s }
}

// Compact is shorthand for Indent("").
func Compact() EncodeOption {
	return Indent("")
}

func TrailingCommas(v bool) EncodeOption {
	return func(es *EncState) { es.trailingCommas = v }
}

func Quotes(q QuoteStyle) EncodeOption {
	return func(es *EncState) { es.quoteStyle = q }
}

func BinaryAs(e BinaryEncoding) EncodeOption {
	return func(es *EncState) { es.binary = e }
}

// UnquotedKeys renders identifier-shaped keys bare. Keys that are not
// identifier-shaped, or that collide with a keyword, stay quoted.
func UnquotedKeys(v bool) EncodeOption {
	return func(es *EncState) { es.unquotedKeys = v }
}

// LeadingPlus puts a + on non-negative numbers. nan never takes a sign.
func LeadingPlus(v bool) EncodeOption {
	return func(es *EncState) { es.leadingPlus = v }
}

// SortKeys orders map entries by key byte value; disabled, entries keep
// the value's own order.
func SortKeys(v bool) EncodeOption {
	return func(es *EncState) { es.sortKeys = v }
}

// EscapeUnicode renders non-ASCII characters as \uXXXX escapes, with
// non-BMP code points split into surrogate pairs.
func EscapeUnicode(v bool) EncodeOption {
	return func(es *EncState) { es.escapeUnicode = v }
}

func TimePrecision(p Precision) EncodeOption {
	return func(es *EncState) { es.precision = p }
}

// Zulu renders a UTC offset as Z; disabled, it renders as +00:00.
func Zulu(v bool) EncodeOption {
	return func(es *EncState) { es.zulu = v }
}

func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) { es.color = c.Color }
}

// FormatFromOpts extracts the format an option list selects.
func FormatFromOpts(opts ...EncodeOption) format.Format {
	es := &EncState{}
	for _, opt := range opts {
		opt(es)
	}
	return es.format
}

func newEncState(opts ...EncodeOption) *EncState {
	es := &EncState{
		indent:         "  ",
		trailingCommas: true,
		unquotedKeys:   true,
		sortKeys:       true,
		zulu:           true,
	}
	for _, opt := range opts {
		opt(es)
	}
	return es
}
