package edn

import (
	"strings"

	"github.com/smasher164/xid"
)

// symbolPunct is the set of punctuation characters, beyond Unicode
// identifier runes, that a symbol or keyword name may contain.
// xid.Start/xid.Continue supply the Unicode letter/digit classes; this
// stays stricter than "anything non-delimiter" so a stray control character
// can't silently end up inside a symbol.
const symbolPunct = "+-.*!?/_'$%&=<>"

func isSymbolPunct(r rune) bool {
	return strings.ContainsRune(symbolPunct, r)
}

func isSymbolStart(r rune) bool {
	return xid.Start(r) || isSymbolPunct(r)
}

func isSymbolContinue(r rune) bool {
	return xid.Continue(r) || isSymbolPunct(r)
}

// maxSymbolLen caps how many characters a symbol may run on past its
// first, bounding runaway tokens in malformed input.
const maxSymbolLen = 200

// readAtom reads the run of symbol-continue runes starting at first (already
// consumed by the dispatcher) and classifies the resulting text as the
// reserved words true/false/nil or, failing that, a Symbol.
func (p *Parser) readAtom(first rune) (Value, error) {
	var sb strings.Builder
	sb.WriteRune(first)
	n := 0
	sb.WriteString(p.cur.TakeWhile(func(r rune) bool {
		if n >= maxSymbolLen || !isSymbolContinue(r) {
			return false
		}
		n++
		return true
	}))
	return readSymbolText(sb.String())
}

// readSymbolText classifies already-collected text as a reserved word or a
// plain Symbol. Used directly by readNumber's fallback path, which has
// already consumed the token's characters under the shared run-boundary
// rules and just needs them classified.
func readSymbolText(text string) (Value, error) {
	switch text {
	case "true":
		return Bool(true), nil
	case "false":
		return Bool(false), nil
	case "nil":
		return Nil{}, nil
	default:
		return Symbol(text), nil
	}
}

// readKeywordName reads a keyword's name text; the caller has already
// consumed the leading ':' and decides separately (by peeking for an
// immediately-following '{') whether this introduces a namespaced map
// instead of a plain keyword.
func (p *Parser) readKeywordName() string {
	return p.cur.TakeWhile(isSymbolContinue)
}
