package edn

import (
	"strings"
	"unicode"
)

// Parser reads one value at a time from an input string via a Cursor. It
// holds no other state: the grammar is driven entirely by the current
// cursor position, which is what lets the lexical readers in lex_*.go take a
// *Parser receiver without needing to thread extra context through every
// call.
type Parser struct {
	cur Cursor
}

// NewParser returns a Parser positioned at the start of input.
func NewParser(input string) *Parser {
	return &Parser{cur: NewCursor(input)}
}

// Parse reads exactly one top-level value from input: leading whitespace,
// comments, and discard forms are skipped, and anything after the first
// complete value is left unread.
func Parse(input string) (Value, error) {
	return NewParser(input).Parse()
}

// Parse reads exactly one value starting at the parser's current position.
func (p *Parser) Parse() (Value, error) {
	return p.nextValue()
}

// Offset returns the parser's current byte offset into its input, useful
// after Parse returns to find where a second value (if any) would start.
func (p *Parser) Offset() int {
	return p.cur.Offset()
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isEdnWhitespace(r rune) bool {
	return r == ',' || unicode.IsSpace(r)
}

// skipIgnorable advances past whitespace, commas, and line comments. It does
// not touch discard forms: those only make sense in front of a value, so
// they're handled by the callers that are about to read one.
func (p *Parser) skipIgnorable() {
	for {
		r, w := p.cur.PeekRune()
		if w == 0 {
			return
		}
		switch {
		case isEdnWhitespace(r):
			p.cur.Next()
		case r == ';':
			p.cur.Next()
			p.cur.SkipWhile(func(r rune) bool { return r != '\n' })
		default:
			return
		}
	}
}

// nextValue is the dispatcher shared by the top-level Parse and every
// container reader. It loops rather than recurses on whitespace, comments,
// and discard forms, so a run of any mixture of the three - chained or not -
// collapses to the first following value with no special-casing.
func (p *Parser) nextValue() (Value, error) {
	for {
		p.skipIgnorable()
		off, r, ok := p.cur.Next()
		if !ok {
			// Input containing only whitespace, comments, and/or fully
			// resolved discard forms is well-formed; it just carries no
			// value.
			return Empty{}, nil
		}
		if r == '#' {
			v, discarded, err := p.readHash(off)
			if err != nil {
				return nil, err
			}
			if discarded {
				continue
			}
			return v, nil
		}
		return p.dispatchChar(r, off)
	}
}

// nextValueOrClose is nextValue's counterpart for container bodies: it also
// recognizes the container's closing rune and reports that instead of
// erroring, so readContainerItems can loop until the close rather than
// until EOF.
func (p *Parser) nextValueOrClose(close rune) (v Value, closed bool, err error) {
	for {
		p.skipIgnorable()
		r, w := p.cur.PeekRune()
		if w == 0 {
			return nil, false, parseErrf(p.cur.Offset(), "Unexpected end of input, expected '%c'", close)
		}
		if r == close {
			p.cur.Next()
			return nil, true, nil
		}
		off, rr, _ := p.cur.Next()
		if rr == '#' {
			v2, discarded, err2 := p.readHash(off)
			if err2 != nil {
				return nil, false, err2
			}
			if discarded {
				continue
			}
			return v2, false, nil
		}
		v2, err2 := p.dispatchChar(rr, off)
		return v2, false, err2
	}
}

// dispatchChar classifies a value starting at the already-consumed rune r.
// '#' is handled by the caller (nextValue/nextValueOrClose) since it can
// resolve to zero values (a discard).
func (p *Parser) dispatchChar(r rune, off int) (Value, error) {
	switch {
	case r == '"':
		return p.readString(off)
	case r == '\\':
		return p.readChar(off)
	case r == ':':
		return p.readKeywordOrNamespacedMap()
	case r == '{':
		return p.readMap()
	case r == '[':
		return p.readVector()
	case r == '(':
		return p.readList()
	case r == '}' || r == ']' || r == ')':
		return nil, parseErrf(off, "Unexpected '%c'", r)
	case r == '-' || r == '+':
		if nr, w := p.cur.PeekRune(); w > 0 && isDigit(nr) {
			return p.readNumber(r, off)
		}
		return p.readAtom(r)
	case isDigit(r):
		return p.readNumber(r, off)
	case isSymbolStart(r):
		return p.readAtom(r)
	default:
		return nil, parseErrf(off, "Unexpected character '%c' at char count %d", r, off)
	}
}

// readContainerItems reads values up to (and consuming) the close rune,
// collapsing any discard forms or comments found between them.
func (p *Parser) readContainerItems(close rune) ([]Value, error) {
	var items []Value
	for {
		v, closed, err := p.nextValueOrClose(close)
		if err != nil {
			return nil, err
		}
		if closed {
			return items, nil
		}
		items = append(items, v)
	}
}

func (p *Parser) readVector() (Value, error) {
	items, err := p.readContainerItems(']')
	if err != nil {
		return nil, err
	}
	return Vector(items), nil
}

func (p *Parser) readList() (Value, error) {
	items, err := p.readContainerItems(')')
	if err != nil {
		return nil, err
	}
	return List(items), nil
}

// readMapBody reads a map's key/value forms up to the closing '}' and
// canonicalizes them, assuming the opening '{' has already been consumed.
func (p *Parser) readMapBody() (Map, error) {
	items, err := p.readContainerItems('}')
	if err != nil {
		return nil, err
	}
	if len(items)%2 != 0 {
		return nil, parseErrf(p.cur.Offset(), "Map literal must contain an even number of forms")
	}
	entries := make([]MapEntry, 0, len(items)/2)
	for i := 0; i < len(items); i += 2 {
		entries = append(entries, MapEntry{Key: items[i].String(), Value: items[i+1]})
	}
	return canonicalizeMap(entries), nil
}

func (p *Parser) readMap() (Value, error) {
	return p.readMapBody()
}

// readKeywordOrNamespacedMap handles the ':' dispatch. A keyword name
// immediately followed by '{' - no intervening whitespace - introduces a
// namespaced map rather than a plain keyword.
func (p *Parser) readKeywordOrNamespacedMap() (Value, error) {
	prefix := ":"
	if nr, w := p.cur.PeekRune(); w > 0 && nr == ':' {
		p.cur.Next()
		prefix = "::"
	}
	name := p.readKeywordName()
	if nr, w := p.cur.PeekRune(); w > 0 && nr == '{' {
		p.cur.Next()
		entries, err := p.readMapBody()
		if err != nil {
			return nil, err
		}
		return NamespacedMap{Namespace: name, Entries: entries}, nil
	}
	return Keyword(prefix + name), nil
}

// readHash handles every '#'-prefixed form: discard (#_), sets (#{...}),
// and tagged literals (#tag value), with #inst/#uuid specialized into their
// own Value kinds. discarded reports that the form consumed no value and
// the caller should keep looking (v is nil in that case).
func (p *Parser) readHash(hashOffset int) (v Value, discarded bool, err error) {
	nr, w := p.cur.PeekRune()
	if w == 0 {
		return nil, false, parseErrf(hashOffset, "Unexpected end of input after '#'")
	}
	switch {
	case nr == '_':
		p.cur.Next()
		afterMarker := p.cur.Offset()
		p.skipIgnorable()
		if _, w2 := p.cur.PeekRune(); w2 == 0 {
			return nil, false, parseErrf(afterMarker, "Discard sequence must have a following element at char count %d", afterMarker)
		}
		if _, err := p.nextValue(); err != nil {
			return nil, false, err
		}
		return nil, true, nil
	case nr == '{':
		p.cur.Next()
		items, err := p.readContainerItems('}')
		if err != nil {
			return nil, false, err
		}
		return canonicalizeSet(items), false, nil
	case isSymbolStart(nr):
		_, r, _ := p.cur.Next()
		var sb strings.Builder
		sb.WriteRune(r)
		sb.WriteString(p.cur.TakeWhile(isSymbolContinue))
		tag := sb.String()
		p.skipIgnorable()
		if _, w2 := p.cur.PeekRune(); w2 == 0 {
			return nil, false, parseErrf(p.cur.Offset(), "Tag #%s must have a following element at char count %d", tag, p.cur.Offset())
		}
		child, err := p.nextValue()
		if err != nil {
			return nil, false, err
		}
		return specializeTag(tag, child), false, nil
	default:
		return nil, false, parseErrf(hashOffset, "Unexpected character '%c' after '#'", nr)
	}
}

func specializeTag(tag string, child Value) Value {
	switch tag {
	case "inst":
		return Inst(tagChildText(child))
	case "uuid":
		return Uuid(tagChildText(child))
	default:
		return Tagged{Tag: tag, Child: child}
	}
}

func tagChildText(v Value) string {
	if s, ok := v.(Str); ok {
		return string(s)
	}
	return v.String()
}
