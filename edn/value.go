// Package edn implements a reader for Extensible Data Notation, the
// Clojure-derived textual data format: symbols, keywords, rationals, sets,
// characters, tagged literals, namespaced maps, instants and UUIDs on top of
// the usual scalars and collections.
package edn

import (
	"fmt"
	"strings"
)

// Kind discriminates the variant held by a Value. It also defines the rank
// used by Compare when two values of different kinds are ordered against
// each other inside a Set or as Map keys.
type Kind int

const (
	KindNil Kind = iota
	KindBool
	KindStr
	KindChar
	KindSymbol
	KindKeyword
	KindUInt
	KindInt
	KindDouble
	KindRational
	KindInst
	KindUuid
	KindTagged
	KindVector
	KindList
	KindSet
	KindMap
	KindNamespacedMap
	KindEmpty
)

func (k Kind) String() string {
	switch k {
	case KindNil:
		return "nil"
	case KindBool:
		return "bool"
	case KindStr:
		return "string"
	case KindChar:
		return "char"
	case KindSymbol:
		return "symbol"
	case KindKeyword:
		return "keyword"
	case KindUInt:
		return "uint"
	case KindInt:
		return "int"
	case KindDouble:
		return "double"
	case KindRational:
		return "rational"
	case KindInst:
		return "inst"
	case KindUuid:
		return "uuid"
	case KindTagged:
		return "tagged"
	case KindVector:
		return "vector"
	case KindList:
		return "list"
	case KindSet:
		return "set"
	case KindMap:
		return "map"
	case KindNamespacedMap:
		return "namespaced-map"
	case KindEmpty:
		return "empty"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Value is the tagged union of every EDN form. It is implemented by a closed
// set of concrete types below; every one of them is structurally immutable
// after construction and is safe to share across goroutines once built.
type Value interface {
	Kind() Kind
	String() string
	Equal(other Value) bool
}

// Nil is EDN's `nil`.
type Nil struct{}

func (Nil) Kind() Kind     { return KindNil }
func (Nil) String() string { return "nil" }
func (Nil) Equal(other Value) bool {
	_, ok := other.(Nil)
	return ok
}

// Bool is EDN's `true`/`false`.
type Bool bool

func (b Bool) Kind() Kind { return KindBool }
func (b Bool) String() string {
	if b {
		return "true"
	}
	return "false"
}
func (b Bool) Equal(other Value) bool {
	o, ok := other.(Bool)
	return ok && o == b
}

// Str is an EDN string. The payload is the unescaped content; no enclosing
// quotes.
type Str string

func (s Str) Kind() Kind     { return KindStr }
func (s Str) String() string { return quoteStr(string(s)) }
func (s Str) Equal(o Value) bool {
	other, ok := o.(Str)
	return ok && other == s
}

// Char is a single EDN character literal, e.g. `\a`.
type Char rune

func (c Char) Kind() Kind     { return KindChar }
func (c Char) String() string { return "\\" + string(rune(c)) }
func (c Char) Equal(o Value) bool {
	other, ok := o.(Char)
	return ok && other == c
}

// Symbol is a bare EDN symbol, e.g. `foo/bar`.
type Symbol string

func (s Symbol) Kind() Kind     { return KindSymbol }
func (s Symbol) String() string { return string(s) }
func (s Symbol) Equal(o Value) bool {
	other, ok := o.(Symbol)
	return ok && other == s
}

// Keyword is an EDN keyword. The payload includes the leading `:` (and a
// second leading `:` for `::ns/name` auto-resolved keywords, preserved
// verbatim).
type Keyword string

func (k Keyword) Kind() Kind     { return KindKeyword }
func (k Keyword) String() string { return string(k) }
func (k Keyword) Equal(o Value) bool {
	other, ok := o.(Keyword)
	return ok && other == k
}

// UInt is an EDN integer literal chosen when the value is non-negative and
// fits in 64 bits unsigned.
type UInt uint64

func (u UInt) Kind() Kind     { return KindUInt }
func (u UInt) String() string { return formatUint(uint64(u)) }
func (u UInt) Equal(o Value) bool {
	other, ok := o.(UInt)
	return ok && other == u
}

// Int is an EDN integer literal chosen when the value is negative and fits
// in 64 bits signed. A non-negative literal too large for UInt is read as a
// Double, not an Int.
type Int int64

func (i Int) Kind() Kind     { return KindInt }
func (i Int) String() string { return formatInt(int64(i)) }
func (i Int) Equal(o Value) bool {
	other, ok := o.(Int)
	return ok && other == i
}

// Double is an EDN floating-point literal. It participates in total ordering
// and hashing via its normalized bit pattern (see order.go): -0.0 and 0.0
// compare equal, and every NaN payload collapses to one equivalence class.
type Double float64

func (d Double) Kind() Kind     { return KindDouble }
func (d Double) String() string { return formatDouble(float64(d)) }
func (d Double) Equal(o Value) bool {
	other, ok := o.(Double)
	return ok && normalizeDoubleBits(float64(other)) == normalizeDoubleBits(float64(d))
}

// Rational is a `num/den` literal preserved verbatim as canonical text; no
// arithmetic is performed on it by the reader.
type Rational string

func (r Rational) Kind() Kind     { return KindRational }
func (r Rational) String() string { return string(r) }
func (r Rational) Equal(o Value) bool {
	other, ok := o.(Rational)
	return ok && other == r
}

// Inst is an `#inst "..."` literal; the payload is the unescaped body
// between the tag's quotes.
type Inst string

func (i Inst) Kind() Kind     { return KindInst }
func (i Inst) String() string { return "#inst " + quoteStr(string(i)) }
func (i Inst) Equal(o Value) bool {
	other, ok := o.(Inst)
	return ok && other == i
}

// Uuid is a `#uuid "..."` literal.
type Uuid string

func (u Uuid) Kind() Kind     { return KindUuid }
func (u Uuid) String() string { return "#uuid " + quoteStr(string(u)) }
func (u Uuid) Equal(o Value) bool {
	other, ok := o.(Uuid)
	return ok && other == u
}

// Tagged is any `#tag value` form not specialized into Inst or Uuid. Tag is
// non-empty and contains no whitespace.
type Tagged struct {
	Tag   string
	Child Value
}

func (t Tagged) Kind() Kind     { return KindTagged }
func (t Tagged) String() string { return "#" + t.Tag + " " + t.Child.String() }
func (t Tagged) Equal(o Value) bool {
	other, ok := o.(Tagged)
	return ok && other.Tag == t.Tag && other.Child.Equal(t.Child)
}

// Vector is an EDN `[...]` form; insertion order is preserved.
type Vector []Value

func (v Vector) Kind() Kind { return KindVector }
func (v Vector) String() string {
	return "[" + joinValues([]Value(v)) + "]"
}
func (v Vector) Equal(o Value) bool {
	other, ok := o.(Vector)
	return ok && equalValueSlices([]Value(v), []Value(other))
}

// List is an EDN `(...)` form; insertion order is preserved.
type List []Value

func (l List) Kind() Kind { return KindList }
func (l List) String() string {
	return "(" + joinValues([]Value(l)) + ")"
}
func (l List) Equal(o Value) bool {
	other, ok := o.(List)
	return ok && equalValueSlices([]Value(l), []Value(other))
}

// Set is an EDN `#{...}` form, stored in the canonical total order of
// Compare (order.go) with duplicates collapsed.
type Set []Value

func (s Set) Kind() Kind { return KindSet }
func (s Set) String() string {
	return "#{" + joinValues([]Value(s)) + "}"
}
func (s Set) Equal(o Value) bool {
	other, ok := o.(Set)
	return ok && equalValueSlices([]Value(s), []Value(other))
}

// MapEntry is one key/value pair of a Map. Key is the canonical Display
// text of the value that was used as the key.
type MapEntry struct {
	Key   string
	Value Value
}

// Map is an EDN `{...}` form, stored sorted by Key text. Because keys are
// kept as the Display text of the keying value, two key values with the
// same Display text land in the same entry: `{0 :a 0 :b}` holds one key
// "0" regardless of how its occurrences were spelled. String keys carry
// their surrounding quotes in the key text (`"0"` and 0 are distinct keys).
type Map []MapEntry

func (m Map) Kind() Kind { return KindMap }
func (m Map) String() string {
	return "{" + joinEntries([]MapEntry(m)) + "}"
}
func (m Map) Equal(o Value) bool {
	other, ok := o.(Map)
	if !ok || len(other) != len(m) {
		return false
	}
	for i := range m {
		if m[i].Key != other[i].Key || !m[i].Value.Equal(other[i].Value) {
			return false
		}
	}
	return true
}

// Get returns the value for a key's display text, or (Nil{}, false) if
// absent.
func (m Map) Get(key string) (Value, bool) {
	for _, e := range m {
		if e.Key == key {
			return e.Value, true
		}
	}
	return Nil{}, false
}

// NamespacedMap is a `:ns{...}` form. Entries' keys are stored without the
// namespace prefix; it is applied lazily on navigation and deserialization.
type NamespacedMap struct {
	Namespace string
	Entries   Map
}

func (n NamespacedMap) Kind() Kind { return KindNamespacedMap }
func (n NamespacedMap) String() string {
	return ":" + n.Namespace + "{" + joinEntries([]MapEntry(n.Entries)) + "}"
}
func (n NamespacedMap) Equal(o Value) bool {
	other, ok := o.(NamespacedMap)
	return ok && other.Namespace == n.Namespace && other.Entries.Equal(n.Entries)
}

// Empty is the sentinel returned by a successful parse of input containing
// only whitespace, comments and/or discard forms.
type Empty struct{}

func (Empty) Kind() Kind     { return KindEmpty }
func (Empty) String() string { return "" }
func (Empty) Equal(o Value) bool {
	_, ok := o.(Empty)
	return ok
}

func joinValues(vs []Value) string {
	var sb strings.Builder
	for i, v := range vs {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(v.String())
	}
	return sb.String()
}

func joinEntries(es []MapEntry) string {
	var sb strings.Builder
	for i, e := range es {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(e.Key)
		sb.WriteByte(' ')
		sb.WriteString(e.Value.String())
	}
	return sb.String()
}

func equalValueSlices(a, b []Value) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}
	return true
}
