package edn

import "unicode/utf8"

// Cursor is a pull cursor over an input string, yielding (byte offset,
// codepoint) pairs. It is a plain value: cloning it is a cheap copy of two
// fields and preserves position exactly, so a clone can be advanced
// speculatively without disturbing the cursor it came from. The lexical
// readers themselves look ahead one rune at a time with PeekRune on the
// live cursor.
type Cursor struct {
	input string
	pos   int
}

// NewCursor returns a Cursor positioned at the start of input.
func NewCursor(input string) Cursor {
	return Cursor{input: input}
}

// Clone returns an independent cursor at the same position as c. Advancing
// the clone (via Next, TakeWhile, SkipWhile) never affects c.
func (c Cursor) Clone() Cursor {
	return c
}

// Offset returns the current byte offset into the input.
func (c Cursor) Offset() int {
	return c.pos
}

// AtEnd reports whether the cursor has consumed the entire input.
func (c Cursor) AtEnd() bool {
	return c.pos >= len(c.input)
}

// Next consumes and returns the next codepoint. ok is false at end of
// input, in which case offset is the final byte offset and r is zero.
func (c *Cursor) Next() (offset int, r rune, ok bool) {
	if c.pos >= len(c.input) {
		return c.pos, 0, false
	}
	r, w := utf8.DecodeRuneInString(c.input[c.pos:])
	offset = c.pos
	c.pos += w
	return offset, r, true
}

// PeekRune returns the next codepoint without consuming it, and its width in
// bytes (0 at end of input).
func (c Cursor) PeekRune() (rune, int) {
	if c.pos >= len(c.input) {
		return 0, 0
	}
	r, w := utf8.DecodeRuneInString(c.input[c.pos:])
	return r, w
}

// TakeWhile consumes and returns the run of codepoints satisfying pred,
// starting at the cursor's current position. The lexical readers call it on
// the live cursor to consume a token's run; called on a clone, it leaves
// the original cursor where it was.
func (c *Cursor) TakeWhile(pred func(rune) bool) string {
	start := c.pos
	for c.pos < len(c.input) {
		r, w := utf8.DecodeRuneInString(c.input[c.pos:])
		if !pred(r) {
			break
		}
		c.pos += w
	}
	return c.input[start:c.pos]
}

// SkipWhile advances past the run of codepoints satisfying pred and returns
// how many bytes were skipped.
func (c *Cursor) SkipWhile(pred func(rune) bool) int {
	start := c.pos
	for c.pos < len(c.input) {
		r, w := utf8.DecodeRuneInString(c.input[c.pos:])
		if !pred(r) {
			break
		}
		c.pos += w
	}
	return c.pos - start
}
