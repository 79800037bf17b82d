package parse

import (
	"fmt"
	"slices"
	"strings"

	"github.com/arakholia/go-jasn/ir"
	"github.com/arakholia/go-jasn/token"
)

// blockLine is one significant line of a JAML document: comments
// stripped, indentation measured and removed.
type blockLine struct {
	num    int // 1-based source line
	level  int
	indent int // indent length in characters, for column reporting
	text   string
}

func parseBlock(d []byte) (*ir.Value, error) {
	lines, err := splitBlockLines(d)
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, ErrEmptyDocument
	}
	if lines[0].level != 0 {
		return nil, fmt.Errorf("%w: line %d at level %d, expected level 0",
			ErrUnexpectedIndent, lines[0].num, lines[0].level)
	}
	p := &blockParser{lines: lines}
	v, err := p.value(0)
	if err != nil {
		return nil, err
	}
	if p.pos < len(p.lines) {
		return nil, fmt.Errorf("%w: trailing content at line %d", ErrParse, p.lines[p.pos].num)
	}
	return v, nil
}

// splitBlockLines strips # comments and blank lines and resolves each
// remaining line's indentation level against the document's indent unit.
func splitBlockLines(d []byte) ([]blockLine, error) {
	tr := &indentTracker{}
	var res []blockLine
	for i, raw := range strings.Split(string(d), "\n") {
		num := i + 1
		line := strings.TrimRight(stripComment(raw), " \t\r")
		n := 0
		for n < len(line) && (line[n] == ' ' || line[n] == '\t') {
			n++
		}
		if n == len(line) {
			continue
		}
		level, err := tr.level(line[:n], num)
		if err != nil {
			return nil, err
		}
		res = append(res, blockLine{num: num, level: level, indent: n, text: line[n:]})
	}
	return res, nil
}

// stripComment removes a # comment, ignoring # characters inside quoted
// strings.
func stripComment(line string) string {
	var quote byte
	for i := 0; i < len(line); i++ {
		switch c := line[i]; {
		case quote != 0:
			if c == '\\' {
				i++
			} else if c == quote {
				quote = 0
			}
		case c == '"' || c == '\'':
			quote = c
		case c == '#':
			return line[:i]
		}
	}
	return line
}

type blockParser struct {
	lines []blockLine
	pos   int
	depth int
}

// value parses the block value starting at the current line, which the
// caller has already verified to be at the given level.
func (p *blockParser) value(level int) (*ir.Value, error) {
	p.depth++
	defer func() { p.depth-- }()
	if p.depth > maxDepth {
		return nil, fmt.Errorf("%w at line %d", ErrTooDeep, p.lines[p.pos].num)
	}
	line := p.lines[p.pos]
	if isListItem(line.text) {
		return p.list(level)
	}
	_, _, _, isEntry, err := entryKey(line.text)
	if err != nil {
		return nil, fmt.Errorf("line %d: %w", line.num, err)
	}
	if isEntry {
		return p.mapValue(level)
	}
	// bare scalar, or an inline bracketed collection
	p.pos++
	return parseSpan(line.text, line.num, line.indent+1)
}

func (p *blockParser) list(level int) (*ir.Value, error) {
	res := &ir.Value{Type: ir.ListType}
	for p.pos < len(p.lines) {
		line := p.lines[p.pos]
		if line.level != level || !isListItem(line.text) {
			break
		}
		p.pos++
		rest := strings.TrimLeft(line.text[1:], " \t")
		var v *ir.Value
		var err error
		if rest == "" {
			if err := p.requireNested(level, line.num, "after '-'"); err != nil {
				return nil, err
			}
			v, err = p.value(level + 1)
		} else {
			col := line.indent + len(line.text) - len(rest) + 1
			v, err = parseSpan(rest, line.num, col)
		}
		if err != nil {
			return nil, err
		}
		res.Values = append(res.Values, v)
	}
	return res, p.checkSiblings(level)
}

func (p *blockParser) mapValue(level int) (*ir.Value, error) {
	res := &ir.Value{Type: ir.MapType}
	for p.pos < len(p.lines) {
		line := p.lines[p.pos]
		if line.level != level {
			break
		}
		key, rest, restOff, isEntry, err := entryKey(line.text)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line.num, err)
		}
		if !isEntry {
			break
		}
		if slices.Contains(res.Keys, key) {
			return nil, fmt.Errorf("%w: %q at line %d", ir.ErrDuplicateKey, key, line.num)
		}
		p.pos++
		var v *ir.Value
		if rest == "" {
			if err := p.requireNested(level, line.num, fmt.Sprintf("for key %q", key)); err != nil {
				return nil, err
			}
			v, err = p.value(level + 1)
		} else {
			v, err = parseSpan(rest, line.num, line.indent+restOff+1)
		}
		if err != nil {
			return nil, err
		}
		res.Keys = append(res.Keys, key)
		res.Values = append(res.Values, v)
	}
	return res, p.checkSiblings(level)
}

// requireNested checks that a dash or key with nothing after it is
// followed by a block exactly one level deeper.
func (p *blockParser) requireNested(level, lineNum int, what string) error {
	if p.pos >= len(p.lines) || p.lines[p.pos].level <= level {
		return fmt.Errorf("%w %s on line %d", ErrMissingValue, what, lineNum)
	}
	if next := p.lines[p.pos]; next.level != level+1 {
		return fmt.Errorf("%w: line %d at level %d, expected level %d",
			ErrUnexpectedIndent, next.num, next.level, level+1)
	}
	return nil
}

// checkSiblings rejects a line deeper than the collection that just
// ended; shallower lines return to an ancestor and are its concern.
func (p *blockParser) checkSiblings(level int) error {
	if p.pos >= len(p.lines) {
		return nil
	}
	if next := p.lines[p.pos]; next.level > level {
		return fmt.Errorf("%w: line %d at level %d under a level %d collection",
			ErrUnexpectedIndent, next.num, next.level, level)
	}
	return nil
}

func isListItem(text string) bool {
	return text == "-" || strings.HasPrefix(text, "- ")
}

// entryKey decides whether a line is a map entry (an identifier or
// quoted string immediately followed by ':') and if so splits it into
// the key and the remainder after the colon, with leading blanks
// trimmed. restOff is the remainder's offset within text. Lines such as
// ts"..." (identifier touching a quote, no colon) are not entries.
func entryKey(text string) (key, rest string, restOff int, isEntry bool, err error) {
	i := 0
	switch {
	case text[0] == '"' || text[0] == '\'':
		q := text[0]
		i = 1
		for i < len(text) && text[i] != q {
			if text[i] == '\\' {
				i++
			}
			i++
		}
		if i >= len(text) || i+1 >= len(text) || text[i+1] != ':' {
			return "", "", 0, false, nil
		}
		key, err = token.String(text[1:i], q)
		if err != nil {
			return "", "", 0, false, err
		}
		i += 2
	case isIdentStart(text[0]):
		for i < len(text) && isIdentPart(text[i]) {
			i++
		}
		if i >= len(text) || text[i] != ':' {
			return "", "", 0, false, nil
		}
		key = text[:i]
		if reservedWord(key) {
			return "", "", 0, false, fmt.Errorf("%w: reserved word %q must be quoted as a key", ErrParse, key)
		}
		i++
	default:
		return "", "", 0, false, nil
	}
	restOff = i
	for restOff < len(text) && (text[restOff] == ' ' || text[restOff] == '\t') {
		restOff++
	}
	return key, text[restOff:], restOff, true, nil
}
