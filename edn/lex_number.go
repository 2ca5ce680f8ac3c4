package edn

import (
	"math"
	"strconv"
	"strings"
	"unicode"
)

// numberDelimiters are the characters (beyond whitespace) that end a
// number token's run.
const numberDelimiters = ",]});([{"

func isRunBoundary(r rune) bool {
	return unicode.IsSpace(r) || strings.ContainsRune(numberDelimiters, r)
}

// readNumber collects the full numeric token text (first has already been
// consumed by the dispatcher) and classifies it, in priority order: hex,
// radix, exponent-decimal, integer, plain float, rational, or a
// reclassification to symbol/parse-error as a last resort.
func (p *Parser) readNumber(first rune, firstOffset int) (Value, error) {
	var sb strings.Builder
	if first != '+' {
		// The EDN grammar allows a redundant leading '+'; it is dropped.
		sb.WriteRune(first)
	}
	sb.WriteString(p.cur.TakeWhile(func(r rune) bool { return !isRunBoundary(r) }))
	return classifyNumber(sb.String(), firstOffset)
}

func classifyNumber(text string, offset int) (Value, error) {
	negative := strings.HasPrefix(text, "-")
	body := text
	if negative || strings.HasPrefix(text, "+") {
		body = text[1:]
	}
	lower := strings.ToLower(body)

	if strings.HasPrefix(lower, "0x") {
		digits := body[2:]
		u, err := strconv.ParseUint(digits, 16, 64)
		if err != nil {
			return nil, parseErrf(offset, "%s could not be parsed at char count %d with radix %d", text, offset, 16)
		}
		return signedNumber(u, negative, text, offset)
	}

	if idx := strings.IndexByte(lower, 'r'); idx > 0 {
		radixText, digits := body[:idx], body[idx+1:]
		radix, err := strconv.Atoi(radixText)
		if err != nil {
			return nil, parseErrf(offset, "%s while trying to parse radix from %s", err, text)
		}
		if radix < 2 || radix > 36 {
			return nil, parseErrf(offset, "Radix of %d is out of bounds", radix)
		}
		u, err := strconv.ParseUint(digits, radix, 64)
		if err != nil {
			return nil, parseErrf(offset, "%s could not be parsed at char count %d with radix %d", text, offset, radix)
		}
		return signedNumber(u, negative, text, offset)
	}

	if strings.ContainsAny(text, "eE") {
		if f, err := strconv.ParseFloat(text, 64); err == nil {
			return Double(f), nil
		}
	}

	if u, err := strconv.ParseUint(text, 10, 64); err == nil {
		return UInt(u), nil
	}
	if i, err := strconv.ParseInt(text, 10, 64); err == nil {
		return Int(i), nil
	}
	if f, err := strconv.ParseFloat(text, 64); err == nil {
		return Double(f), nil
	}
	if isRational(text) {
		return Rational(text), nil
	}
	if countEOrE(text) > 1 {
		return readSymbolText(text)
	}
	return nil, parseErrf(offset, "%s could not be parsed at char count %d", text, offset)
}

func isRational(text string) bool {
	parts := strings.Split(text, "/")
	if len(parts) != 2 {
		return false
	}
	_, err1 := strconv.ParseFloat(parts[0], 64)
	_, err2 := strconv.ParseFloat(parts[1], 64)
	return err1 == nil && err2 == nil
}

func countEOrE(text string) int {
	n := 0
	for _, r := range text {
		if r == 'e' || r == 'E' {
			n++
		}
	}
	return n
}

// signedNumber narrows an unsigned magnitude, with sign applied, to the
// narrowest fitting variant (UInt when non-negative, Int when negative and
// representable).
func signedNumber(magnitude uint64, negative bool, text string, offset int) (Value, error) {
	if !negative {
		return UInt(magnitude), nil
	}
	const minMagnitude = uint64(1) << 63
	if magnitude > minMagnitude {
		return nil, parseErrf(offset, "%s could not be parsed at char count %d", text, offset)
	}
	if magnitude == minMagnitude {
		return Int(math.MinInt64), nil
	}
	return Int(-int64(magnitude)), nil
}
