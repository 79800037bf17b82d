package parse

import (
	"fmt"
	"slices"
	"strings"

	"github.com/arakholia/go-jasn/ir"
	"github.com/arakholia/go-jasn/token"
)

// maxDepth bounds collection nesting so adversarially deep input errors
// out instead of exhausting the call stack.
const maxDepth = 1000

// scanner is the JASN recursive-descent parser state. It also serves
// single-line scalar spans handed over by the block parser, which is why
// it can start at an arbitrary line and column.
type scanner struct {
	data  []byte
	off   int
	line  int
	col   int
	depth int
}

func newScanner(d []byte) *scanner {
	return &scanner{data: d, line: 1, col: 1}
}

func parseBracketed(d []byte) (*ir.Value, error) {
	return newScanner(d).parseDoc()
}

// parseSpan parses a scalar span lifted out of a block line, requiring
// the whole span to be consumed. line and col locate the span in the
// original document for error reporting.
func parseSpan(span string, line, col int) (*ir.Value, error) {
	s := &scanner{data: []byte(span), line: line, col: col}
	return s.parseDoc()
}

func (s *scanner) parseDoc() (*ir.Value, error) {
	v, err := s.parseValue()
	if err != nil {
		return nil, err
	}
	if err := s.skipSpace(); err != nil {
		return nil, err
	}
	if !s.eof() {
		return nil, token.NewErr(fmt.Errorf("%w: trailing tokens", ErrParse), s.pos())
	}
	return v, nil
}

func (s *scanner) pos() token.Pos {
	return token.Pos{Off: s.off, Line: s.line, Col: s.col}
}

func (s *scanner) eof() bool {
	return s.off >= len(s.data)
}

func (s *scanner) peek() byte {
	return s.data[s.off]
}

func (s *scanner) advance(n int) {
	for i := 0; i < n && s.off < len(s.data); i++ {
		if s.data[s.off] == '\n' {
			s.line++
			s.col = 1
		} else {
			s.col++
		}
		s.off++
	}
}

// skipSpace consumes whitespace, // line comments and /* */ block
// comments. An unterminated block comment is an error.
func (s *scanner) skipSpace() error {
	for !s.eof() {
		switch c := s.peek(); {
		case c == ' ' || c == '\t' || c == '\r' || c == '\n':
			s.advance(1)
		case c == '/' && s.off+1 < len(s.data) && s.data[s.off+1] == '/':
			for !s.eof() && s.peek() != '\n' {
				s.advance(1)
			}
		case c == '/' && s.off+1 < len(s.data) && s.data[s.off+1] == '*':
			pos := s.pos()
			s.advance(2)
			for {
				if s.off+1 >= len(s.data) {
					return token.NewErr(fmt.Errorf("%w: unterminated block comment", ErrParse), pos)
				}
				if s.peek() == '*' && s.data[s.off+1] == '/' {
					s.advance(2)
					break
				}
				s.advance(1)
			}
		default:
			return nil
		}
	}
	return nil
}

func (s *scanner) parseValue() (*ir.Value, error) {
	if err := s.skipSpace(); err != nil {
		return nil, err
	}
	if s.eof() {
		return nil, token.NewErr(fmt.Errorf("%w: unexpected end of input", ErrParse), s.pos())
	}
	pos := s.pos()
	switch c := s.peek(); {
	case c == '{':
		return s.parseMap()
	case c == '[':
		return s.parseList()
	case c == '"' || c == '\'':
		raw, err := s.scanQuoted()
		if err != nil {
			return nil, err
		}
		str, err := token.String(raw, c)
		if err != nil {
			return nil, token.NewErr(err, pos)
		}
		return ir.FromString(str), nil
	case isIdentStart(c):
		ident := s.scanIdent()
		if !s.eof() && (s.peek() == '"' || s.peek() == '\'') {
			raw, err := s.scanQuoted()
			if err != nil {
				return nil, err
			}
			return typedLiteral(ident, raw, pos)
		}
		return keywordValue(ident, pos)
	case c == '+' || c == '-' || isDigit(c):
		return s.parseNumber(pos)
	default:
		return nil, token.NewErr(fmt.Errorf("%w: unexpected character %q", ErrParse, c), pos)
	}
}

// typedLiteral decodes an identifier immediately followed by a quoted
// payload: ts"..." timestamps and b64"..."/h"..."/hex"..." binary. Any
// other prefix is an error; a bare ts or hex not touching a quote never
// reaches here and lexes as an ordinary identifier.
func typedLiteral(prefix, raw string, pos token.Pos) (*ir.Value, error) {
	switch prefix {
	case "ts":
		t, err := token.Timestamp(raw)
		if err != nil {
			return nil, token.NewErr(err, pos)
		}
		return ir.FromTimestamp(t), nil
	case "b64", "h", "hex":
		d, err := token.Binary(prefix, raw)
		if err != nil {
			return nil, token.NewErr(err, pos)
		}
		return ir.FromBinary(d), nil
	default:
		return nil, token.NewErr(fmt.Errorf("%w: unexpected identifier %q before quoted string", ErrParse, prefix), pos)
	}
}

func keywordValue(ident string, pos token.Pos) (*ir.Value, error) {
	switch ident {
	case "null":
		return ir.Null(), nil
	case "true":
		return ir.FromBool(true), nil
	case "false":
		return ir.FromBool(false), nil
	}
	switch strings.ToLower(ident) {
	case "inf", "nan":
		f, err := token.Float(ident)
		if err != nil {
			return nil, token.NewErr(err, pos)
		}
		return ir.FromFloat(f), nil
	}
	return nil, token.NewErr(fmt.Errorf("%w: unexpected identifier %q", ErrParse, ident), pos)
}

// parseNumber scans a maximal numeric span and classifies it: a radix
// prefix means integer, a '.' or decimal exponent means float, anything
// else integer. Signed inf/nan specials also land here.
func (s *scanner) parseNumber(pos token.Pos) (*ir.Value, error) {
	start := s.off
	if c := s.peek(); c == '+' || c == '-' {
		s.advance(1)
	}
	if !s.eof() && isIdentStart(s.peek()) {
		ident := s.scanIdent()
		span := string(s.data[start:s.off])
		switch strings.ToLower(ident) {
		case "inf", "nan":
			f, err := token.Float(span)
			if err != nil {
				return nil, token.NewErr(err, pos)
			}
			return ir.FromFloat(f), nil
		}
		return nil, token.NewErr(fmt.Errorf("%w: %q", token.ErrNumber, span), pos)
	}
	for !s.eof() {
		c := s.peek()
		if isDigit(c) || isAlpha(c) || c == '_' || c == '.' {
			s.advance(1)
			continue
		}
		// exponent sign
		if (c == '+' || c == '-') && s.off > start &&
			(s.data[s.off-1] == 'e' || s.data[s.off-1] == 'E') {
			s.advance(1)
			continue
		}
		break
	}
	span := string(s.data[start:s.off])
	body := strings.TrimLeft(span, "+-")
	isRadix := len(body) >= 2 && body[0] == '0' && strings.ContainsRune("xXbBoO", rune(body[1]))
	if !isRadix && strings.ContainsAny(body, ".eE") {
		f, err := token.Float(span)
		if err != nil {
			return nil, token.NewErr(err, pos)
		}
		return ir.FromFloat(f), nil
	}
	v, err := token.Int(span)
	if err != nil {
		return nil, token.NewErr(err, pos)
	}
	return ir.FromInt(v), nil
}

func (s *scanner) parseMap() (*ir.Value, error) {
	openPos := s.pos()
	s.depth++
	defer func() { s.depth-- }()
	if s.depth > maxDepth {
		return nil, token.NewErr(ErrTooDeep, openPos)
	}
	s.advance(1)
	res := &ir.Value{Type: ir.MapType}
	for {
		if err := s.skipSpace(); err != nil {
			return nil, err
		}
		if s.eof() {
			return nil, token.NewErr(fmt.Errorf("%w: unterminated map", ErrParse), openPos)
		}
		if s.peek() == '}' {
			s.advance(1)
			return res, nil
		}
		keyPos := s.pos()
		key, err := s.parseKey()
		if err != nil {
			return nil, err
		}
		if slices.Contains(res.Keys, key) {
			return nil, token.NewErr(fmt.Errorf("%w: %q", ir.ErrDuplicateKey, key), keyPos)
		}
		if err := s.skipSpace(); err != nil {
			return nil, err
		}
		if s.eof() || s.peek() != ':' {
			return nil, token.NewErr(fmt.Errorf("%w: expected ':' after key %q", ErrParse, key), s.pos())
		}
		s.advance(1)
		v, err := s.parseValue()
		if err != nil {
			return nil, err
		}
		res.Keys = append(res.Keys, key)
		res.Values = append(res.Values, v)
		if err := s.skipSpace(); err != nil {
			return nil, err
		}
		if s.eof() {
			return nil, token.NewErr(fmt.Errorf("%w: unterminated map", ErrParse), openPos)
		}
		switch s.peek() {
		case ',':
			s.advance(1)
		case '}':
		default:
			return nil, token.NewErr(fmt.Errorf("%w: expected ',' or '}' in map", ErrParse), s.pos())
		}
	}
}

func (s *scanner) parseList() (*ir.Value, error) {
	openPos := s.pos()
	s.depth++
	defer func() { s.depth-- }()
	if s.depth > maxDepth {
		return nil, token.NewErr(ErrTooDeep, openPos)
	}
	s.advance(1)
	res := &ir.Value{Type: ir.ListType}
	for {
		if err := s.skipSpace(); err != nil {
			return nil, err
		}
		if s.eof() {
			return nil, token.NewErr(fmt.Errorf("%w: unterminated list", ErrParse), openPos)
		}
		if s.peek() == ']' {
			s.advance(1)
			return res, nil
		}
		v, err := s.parseValue()
		if err != nil {
			return nil, err
		}
		res.Values = append(res.Values, v)
		if err := s.skipSpace(); err != nil {
			return nil, err
		}
		if s.eof() {
			return nil, token.NewErr(fmt.Errorf("%w: unterminated list", ErrParse), openPos)
		}
		switch s.peek() {
		case ',':
			s.advance(1)
		case ']':
		default:
			return nil, token.NewErr(fmt.Errorf("%w: expected ',' or ']' in list", ErrParse), s.pos())
		}
	}
}

func (s *scanner) parseKey() (string, error) {
	pos := s.pos()
	switch c := s.peek(); {
	case c == '"' || c == '\'':
		raw, err := s.scanQuoted()
		if err != nil {
			return "", err
		}
		key, err := token.String(raw, c)
		if err != nil {
			return "", token.NewErr(err, pos)
		}
		return key, nil
	case isIdentStart(c):
		ident := s.scanIdent()
		if reservedWord(ident) {
			return "", token.NewErr(fmt.Errorf("%w: reserved word %q must be quoted as a key", ErrParse, ident), pos)
		}
		return ident, nil
	default:
		return "", token.NewErr(fmt.Errorf("%w: expected map key", ErrParse), pos)
	}
}

// scanQuoted consumes a quoted literal starting at the opening delimiter
// and returns the raw (still escaped) content. Quoted literals are
// single-line.
func (s *scanner) scanQuoted() (string, error) {
	pos := s.pos()
	q := s.peek()
	s.advance(1)
	start := s.off
	for !s.eof() {
		switch c := s.peek(); c {
		case '\n':
			return "", token.NewErr(token.ErrUnterminated, pos)
		case '\\':
			s.advance(2)
		case q:
			raw := string(s.data[start:s.off])
			s.advance(1)
			return raw, nil
		default:
			s.advance(1)
		}
	}
	return "", token.NewErr(token.ErrUnterminated, pos)
}

func (s *scanner) scanIdent() string {
	start := s.off
	for !s.eof() && isIdentPart(s.peek()) {
		s.advance(1)
	}
	return string(s.data[start:s.off])
}

func isIdentStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIdentPart(c byte) bool {
	return isIdentStart(c) || isDigit(c)
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// reservedWord reports whether ident may not be used as an unquoted map
// key. null, true and false are exact; inf and nan are reserved in any
// casing since the float lexer accepts them case-insensitively.
func reservedWord(ident string) bool {
	switch ident {
	case "null", "true", "false":
		return true
	}
	switch strings.ToLower(ident) {
	case "inf", "nan":
		return true
	}
	return false
}
