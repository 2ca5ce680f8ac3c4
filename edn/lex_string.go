package edn

import "strings"

// readString reads a string literal's body. The caller has already consumed
// the opening '"'; quoteOffset is its byte offset, used for the
// unterminated-string error.
func (p *Parser) readString(quoteOffset int) (Value, error) {
	var sb strings.Builder
	for {
		_, r, ok := p.cur.Next()
		if !ok {
			return nil, parseErrf(quoteOffset, "Unterminated string")
		}
		switch {
		case r == '\\':
			eoff, e, eok := p.cur.Next()
			if !eok {
				return nil, parseErrf(quoteOffset, "Unterminated string")
			}
			switch e {
			case 't':
				sb.WriteByte('\t')
			case 'r':
				sb.WriteByte('\r')
			case 'n':
				sb.WriteByte('\n')
			case '\\':
				sb.WriteByte('\\')
			case '"':
				sb.WriteByte('"')
			default:
				return nil, parseErrf(eoff, "Invalid escape sequence \\%c", e)
			}
		case r == '"':
			return Str(sb.String()), nil
		default:
			sb.WriteRune(r)
		}
	}
}
