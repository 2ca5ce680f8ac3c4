package edn

// readChar reads a character literal's single codepoint payload. The caller
// has already consumed the triggering '\'; backslashOffset is its offset,
// used if the input ends immediately after it.
func (p *Parser) readChar(backslashOffset int) (Value, error) {
	_, r, ok := p.cur.Next()
	if !ok {
		return nil, parseErrf(backslashOffset, "Unexpected end of input after '\\'")
	}
	return Char(r), nil
}
