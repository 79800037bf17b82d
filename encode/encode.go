package encode

import (
	"bytes"
	"encoding/base64"
	"encoding/hex"
	"io"
	"math"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/arakholia/go-jasn/ir"
	"github.com/arakholia/go-jasn/token"
)

// Encode renders v to w, followed by a trailing newline. Rendering is
// total; the only error source is the writer.
func Encode(v *ir.Value, w io.Writer, opts ...EncodeOption) error {
	es := newEncState(opts...)
	r := &renderer{es: es}
	if es.format.IsJAML() {
		r.blockDoc(v)
	} else {
		r.bracketed(v, 0)
		r.buf.WriteByte('\n')
	}
	_, err := w.Write(r.buf.Bytes())
	return err
}

// String renders v to a string without the trailing newline.
func String(v *ir.Value, opts ...EncodeOption) (string, error) {
	buf := bytes.NewBuffer(nil)
	if err := Encode(v, buf, opts...); err != nil {
		return "", err
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}

type renderer struct {
	es  *EncState
	buf bytes.Buffer
}

// bracketed renders v in JASN syntax at the given nesting depth. With a
// non-empty indent unit each collection child goes on its own line;
// with an empty unit everything is comma-joined on one line and the
// trailing-comma setting is ignored.
func (r *renderer) bracketed(v *ir.Value, depth int) {
	switch v.Type {
	case ir.ListType:
		if len(v.Values) == 0 {
			r.sep("[]")
			return
		}
		r.sep("[")
		for i, el := range v.Values {
			r.childIndent(depth + 1)
			r.bracketed(el, depth+1)
			r.comma(i == len(v.Values)-1)
		}
		r.closeIndent(depth)
		r.sep("]")
	case ir.MapType:
		if len(v.Keys) == 0 {
			r.sep("{}")
			return
		}
		r.sep("{")
		for n, i := range r.es.mapIndices(v) {
			r.childIndent(depth + 1)
			r.key(v.Keys[i])
			r.sep(":")
			if r.es.indent != "" {
				r.buf.WriteByte(' ')
			}
			r.bracketed(v.Values[i], depth+1)
			r.comma(n == len(v.Keys)-1)
		}
		r.closeIndent(depth)
		r.sep("}")
	default:
		r.scalar(v)
	}
}

// blockDoc renders v in JAML syntax. A scalar document is a single
// line; empty collections render as inline flow collections since block
// syntax has no standalone empty form.
func (r *renderer) blockDoc(v *ir.Value) {
	if isBlockInline(v) {
		r.scalar(v)
		r.buf.WriteByte('\n')
		return
	}
	r.block(v, 0)
}

const blockIndent = "  "

func (r *renderer) block(v *ir.Value, depth int) {
	switch v.Type {
	case ir.ListType:
		for _, el := range v.Values {
			r.blockLineIndent(depth)
			if isBlockInline(el) {
				r.sep("- ")
				r.scalar(el)
				r.buf.WriteByte('\n')
				continue
			}
			r.sep("-")
			r.buf.WriteByte('\n')
			r.block(el, depth+1)
		}
	case ir.MapType:
		for _, i := range r.es.mapIndices(v) {
			r.blockLineIndent(depth)
			r.key(v.Keys[i])
			el := v.Values[i]
			if isBlockInline(el) {
				r.sep(":")
				r.buf.WriteByte(' ')
				r.scalar(el)
				r.buf.WriteByte('\n')
				continue
			}
			r.sep(":")
			r.buf.WriteByte('\n')
			r.block(el, depth+1)
		}
	}
}

// isBlockInline reports whether v renders inline after "- " or "key: "
// rather than as a nested block.
func isBlockInline(v *ir.Value) bool {
	switch v.Type {
	case ir.ListType:
		return len(v.Values) == 0
	case ir.MapType:
		return len(v.Keys) == 0
	default:
		return true
	}
}

func (r *renderer) childIndent(depth int) {
	if r.es.indent == "" {
		return
	}
	r.buf.WriteByte('\n')
	for range depth {
		r.buf.WriteString(r.es.indent)
	}
}

func (r *renderer) closeIndent(depth int) {
	r.childIndent(depth)
}

func (r *renderer) blockLineIndent(depth int) {
	for range depth {
		r.buf.WriteString(blockIndent)
	}
}

func (r *renderer) comma(last bool) {
	if !last {
		r.sep(",")
		return
	}
	if r.es.indent != "" && r.es.trailingCommas {
		r.sep(",")
	}
}

func (r *renderer) sep(s string) {
	if r.es.color != nil {
		s = r.es.color(ir.NullType, SepColor, s)
	}
	r.buf.WriteString(s)
}

func (r *renderer) key(key string) {
	s := key
	if !r.es.unquotedKeys || !canBeUnquoted(key) {
		s = r.es.quoteString(key)
	}
	if r.es.color != nil {
		s = r.es.color(ir.MapType, FieldColor, s)
	}
	r.buf.WriteString(s)
}

func (r *renderer) scalar(v *ir.Value) {
	var s string
	switch v.Type {
	case ir.NullType:
		s = "null"
	case ir.BoolType:
		s = strconv.FormatBool(v.Bool)
	case ir.IntType:
		s = r.es.formatInt(v.Int64)
	case ir.FloatType:
		s = r.es.formatFloat(v.Float64)
	case ir.StringType:
		s = r.es.quoteString(v.Str)
	case ir.BinaryType:
		s = r.es.formatBinary(v.Bytes)
	case ir.TimestampType:
		s = r.es.formatTimestamp(v.Time)
	case ir.ListType:
		s = "[]"
	case ir.MapType:
		s = "{}"
	}
	if r.es.color != nil {
		s = r.es.color(v.Type, ValueColor, s)
	}
	r.buf.WriteString(s)
}

func (es *EncState) formatInt(v int64) string {
	s := strconv.FormatInt(v, 10)
	if es.leadingPlus && v >= 0 {
		s = "+" + s
	}
	return s
}

// formatFloat always keeps a decimal point or exponent so the result
// re-reads as a float, not an integer. nan never takes a sign.
func (es *EncState) formatFloat(f float64) string {
	var s string
	switch {
	case math.IsNaN(f):
		return "nan"
	case math.IsInf(f, 1):
		s = "inf"
	case math.IsInf(f, -1):
		return "-inf"
	case f == math.Trunc(f) && math.Abs(f) < 1e15:
		s = strconv.FormatFloat(f, 'f', 1, 64)
	default:
		s = strconv.FormatFloat(f, 'g', -1, 64)
	}
	if es.leadingPlus && !strings.HasPrefix(s, "-") {
		s = "+" + s
	}
	return s
}

func (es *EncState) quoteString(s string) string {
	q := byte('"')
	switch es.quoteStyle {
	case QuoteSingle:
		q = '\''
	case QuotePreferDouble:
		if strings.Count(s, `"`) > strings.Count(s, "'") {
			q = '\''
		}
	}
	return token.Quote(s, q, es.escapeUnicode)
}

// formatBinary renders hex as h"..." in JASN and hex"..." in JAML; both
// parsers accept both spellings.
func (es *EncState) formatBinary(d []byte) string {
	if es.binary == Hex {
		prefix := "h"
		if es.format.IsJAML() {
			prefix = "hex"
		}
		return prefix + `"` + hex.EncodeToString(d) + `"`
	}
	return `b64"` + base64.StdEncoding.EncodeToString(d) + `"`
}

const (
	layoutSeconds = "2006-01-02T15:04:05Z07:00"
	layoutMillis  = "2006-01-02T15:04:05.000Z07:00"
	layoutMicros  = "2006-01-02T15:04:05.000000Z07:00"
	layoutNanos   = "2006-01-02T15:04:05.000000000Z07:00"
)

func (es *EncState) formatTimestamp(t time.Time) string {
	layout := time.RFC3339Nano
	switch es.precision {
	case PrecisionSeconds:
		layout = layoutSeconds
	case PrecisionMillis:
		layout = layoutMillis
	case PrecisionMicros:
		layout = layoutMicros
	case PrecisionNanos:
		layout = layoutNanos
	}
	s := t.Format(layout)
	if !es.zulu && strings.HasSuffix(s, "Z") {
		s = s[:len(s)-1] + "+00:00"
	}
	return `ts"` + s + `"`
}

// mapIndices returns entry indices in rendering order.
func (es *EncState) mapIndices(v *ir.Value) []int {
	idx := make([]int, len(v.Keys))
	for i := range idx {
		idx[i] = i
	}
	if es.sortKeys {
		slices.SortStableFunc(idx, func(a, b int) int {
			return strings.Compare(v.Keys[a], v.Keys[b])
		})
	}
	return idx
}

// canBeUnquoted reports whether key renders bare: identifier-shaped and
// not a keyword the parser would read as a value.
func canBeUnquoted(key string) bool {
	if key == "" {
		return false
	}
	for i := 0; i < len(key); i++ {
		c := key[i]
		ok := c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') ||
			(i > 0 && c >= '0' && c <= '9')
		if !ok {
			return false
		}
	}
	switch key {
	case "null", "true", "false":
		return false
	}
	switch strings.ToLower(key) {
	case "inf", "nan":
		return false
	}
	return true
}
