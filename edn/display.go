package edn

import (
	"strconv"
	"strings"
)

// quoteStr renders a string's unescaped content back into EDN string syntax,
// re-escaping exactly the five sequences the reader understands: any
// other byte passes through verbatim, which is safe because those five are
// the only characters the reader requires escaped to round-trip.
func quoteStr(s string) string {
	var sb strings.Builder
	sb.WriteByte('"')
	for _, r := range s {
		switch r {
		case '\t':
			sb.WriteString(`\t`)
		case '\r':
			sb.WriteString(`\r`)
		case '\n':
			sb.WriteString(`\n`)
		case '\\':
			sb.WriteString(`\\`)
		case '"':
			sb.WriteString(`\"`)
		default:
			sb.WriteRune(r)
		}
	}
	sb.WriteByte('"')
	return sb.String()
}

func formatUint(u uint64) string {
	return strconv.FormatUint(u, 10)
}

func formatInt(i int64) string {
	return strconv.FormatInt(i, 10)
}

// formatDouble renders f so that it always re-parses as Double rather than
// as an integer literal: Go's shortest round-trip formatting of e.g. 5.0
// produces "5", which the number grammar in lex_number.go would read back as
// UInt. A ".0" suffix is appended when the text has no '.', no exponent
// marker, and no 'n'/'N' (which leaves NaN and Inf as they are).
func formatDouble(f float64) string {
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eEnN") {
		s += ".0"
	}
	return s
}
