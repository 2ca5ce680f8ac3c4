package edn

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// ToBool coerces v to a Go bool. Bool matches directly; a Str also matches
// when its unescaped content is exactly "true" or "false". Everything else,
// including Nil, reports false as its second return.
func ToBool(v Value) (bool, bool) {
	switch t := v.(type) {
	case Bool:
		return bool(t), true
	case Str:
		switch string(t) {
		case "true":
			return true, true
		case "false":
			return false, true
		default:
			return false, false
		}
	default:
		return false, false
	}
}

// ToInt coerces v to an int64. UInt values that overflow int64 fail rather
// than wrap. A Str also matches when it parses as a signed integer.
func ToInt(v Value) (int64, bool) {
	switch t := v.(type) {
	case Int:
		return int64(t), true
	case UInt:
		if uint64(t) > uint64(1<<63-1) {
			return 0, false
		}
		return int64(t), true
	case Str:
		i, err := strconv.ParseInt(string(t), 10, 64)
		if err != nil {
			return 0, false
		}
		return i, true
	default:
		return 0, false
	}
}

// ToUInt coerces v to a uint64. Negative Int values fail rather than wrap.
func ToUInt(v Value) (uint64, bool) {
	switch t := v.(type) {
	case UInt:
		return uint64(t), true
	case Int:
		if t < 0 {
			return 0, false
		}
		return uint64(t), true
	default:
		return 0, false
	}
}

// ToFloat coerces v to a float64. Int and UInt widen directly; Rational is
// narrowed via shopspring/decimal so the division happens at decimal
// precision before the final cast to float64 (an Open Question resolved in
// favor of supporting this conversion; see DESIGN.md).
func ToFloat(v Value) (float64, bool) {
	switch t := v.(type) {
	case Double:
		return float64(t), true
	case Int:
		return float64(t), true
	case UInt:
		return float64(t), true
	case Rational:
		return rationalToFloat(string(t))
	default:
		return 0, false
	}
}

// ToChar coerces v to a rune. Only Char matches.
func ToChar(v Value) (rune, bool) {
	c, ok := v.(Char)
	return rune(c), ok
}

func rationalToFloat(text string) (float64, bool) {
	num, den, found := strings.Cut(text, "/")
	if !found {
		return 0, false
	}
	n, err := decimal.NewFromString(num)
	if err != nil {
		return 0, false
	}
	d, err := decimal.NewFromString(den)
	if err != nil || d.IsZero() {
		return 0, false
	}
	f, _ := n.Div(d).Float64()
	return f, true
}

// ToString renders v the same way String does, except for Str, whose raw
// (unescaped, unquoted) content is returned instead of its quoted Display
// form - the coercion callers usually want the text, not the literal.
func ToString(v Value) (string, bool) {
	if s, ok := v.(Str); ok {
		return string(s), true
	}
	return v.String(), true
}

// ToSymbol coerces v to its bare symbol/keyword text, stripping every
// leading ':' (both of a '::' keyword) so callers can compare keyword and symbol names
// uniformly.
func ToSymbol(v Value) (string, bool) {
	switch t := v.(type) {
	case Symbol:
		return string(t), true
	case Keyword:
		return strings.TrimLeft(string(t), ":"), true
	default:
		return "", false
	}
}
