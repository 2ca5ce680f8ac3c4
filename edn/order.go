package edn

import (
	"hash/fnv"
	"math"
	"strings"
)

// normalizeDoubleBits maps a float64 to the bit pattern used for ordering,
// equality and hashing: -0.0 and 0.0 collapse to the same bits, and every
// NaN payload collapses to one canonical bit pattern.
func normalizeDoubleBits(f float64) uint64 {
	if f == 0 {
		f = 0
	}
	if math.IsNaN(f) {
		return 0x7ff8000000000001
	}
	return math.Float64bits(f)
}

// Compare defines the total order over heterogeneous values required so
// that Set membership and Map-key canonicalization are well defined. Values
// of different Kind are ordered by Kind; within a Kind, comparison follows
// the variant's natural order (Double by normalized bit pattern, per the
// total-ordering invariant in the value model).
func Compare(a, b Value) int {
	if a.Kind() != b.Kind() {
		if a.Kind() < b.Kind() {
			return -1
		}
		return 1
	}
	switch av := a.(type) {
	case Nil:
		return 0
	case Empty:
		return 0
	case Bool:
		bv := b.(Bool)
		return boolCompare(bool(av), bool(bv))
	case Str:
		return strings.Compare(string(av), string(b.(Str)))
	case Char:
		return runeCompare(rune(av), rune(b.(Char)))
	case Symbol:
		return strings.Compare(string(av), string(b.(Symbol)))
	case Keyword:
		return strings.Compare(string(av), string(b.(Keyword)))
	case UInt:
		return uint64Compare(uint64(av), uint64(b.(UInt)))
	case Int:
		return int64Compare(int64(av), int64(b.(Int)))
	case Double:
		return uint64Compare(normalizeDoubleBits(float64(av)), normalizeDoubleBits(float64(b.(Double))))
	case Rational:
		return strings.Compare(string(av), string(b.(Rational)))
	case Inst:
		return strings.Compare(string(av), string(b.(Inst)))
	case Uuid:
		return strings.Compare(string(av), string(b.(Uuid)))
	case Tagged:
		bv := b.(Tagged)
		if c := strings.Compare(av.Tag, bv.Tag); c != 0 {
			return c
		}
		return Compare(av.Child, bv.Child)
	case Vector:
		return compareValueSlices([]Value(av), []Value(b.(Vector)))
	case List:
		return compareValueSlices([]Value(av), []Value(b.(List)))
	case Set:
		return compareValueSlices([]Value(av), []Value(b.(Set)))
	case Map:
		return compareMapEntries([]MapEntry(av), []MapEntry(b.(Map)))
	case NamespacedMap:
		bv := b.(NamespacedMap)
		if c := strings.Compare(av.Namespace, bv.Namespace); c != 0 {
			return c
		}
		return Compare(av.Entries, bv.Entries)
	default:
		return 0
	}
}

func boolCompare(a, b bool) int {
	if a == b {
		return 0
	}
	if !a {
		return -1
	}
	return 1
}

func runeCompare(a, b rune) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func uint64Compare(a, b uint64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func int64Compare(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func compareValueSlices(a, b []Value) int {
	for i := 0; i < len(a) && i < len(b); i++ {
		if c := Compare(a[i], b[i]); c != 0 {
			return c
		}
	}
	return int64Compare(int64(len(a)), int64(len(b)))
}

func compareMapEntries(a, b []MapEntry) int {
	for i := 0; i < len(a) && i < len(b); i++ {
		if c := strings.Compare(a[i].Key, b[i].Key); c != 0 {
			return c
		}
		if c := Compare(a[i].Value, b[i].Value); c != 0 {
			return c
		}
	}
	return int64Compare(int64(len(a)), int64(len(b)))
}

// canonicalizeSet sorts items in total order and collapses adjacent
// duplicates, giving Set its deterministic iteration order; a set literal
// with duplicated members parses to the same value as one without them.
func canonicalizeSet(items []Value) Set {
	sortValues(items)
	out := items[:0:0]
	for i, v := range items {
		if i > 0 && v.Equal(items[i-1]) {
			continue
		}
		out = append(out, v)
	}
	return Set(out)
}

// canonicalizeMap sorts entries by key text, keeping the last value seen
// for a duplicated key (matching how repeated map keys "overwrite" during a
// single left-to-right read).
func canonicalizeMap(entries []MapEntry) Map {
	sortEntries(entries)
	out := make([]MapEntry, 0, len(entries))
	for i := range entries {
		if i+1 < len(entries) && entries[i+1].Key == entries[i].Key {
			// a later entry (stable sort keeps parse order among ties) with
			// the same key text wins; drop this earlier one.
			continue
		}
		out = append(out, entries[i])
	}
	return Map(out)
}

func sortValues(items []Value) {
	insertionSort(len(items), func(i, j int) bool { return Compare(items[i], items[j]) < 0 }, func(i, j int) { items[i], items[j] = items[j], items[i] })
}

func sortEntries(entries []MapEntry) {
	insertionSort(len(entries), func(i, j int) bool { return entries[i].Key < entries[j].Key }, func(i, j int) { entries[i], entries[j] = entries[j], entries[i] })
}

// insertionSort is a small stable sort shared by canonicalizeSet/Map; the
// trees involved (set/map literals) are small enough that O(n^2) is not a
// concern and it keeps this file dependency-free of sort.Slice's reflection.
func insertionSort(n int, less func(i, j int) bool, swap func(i, j int)) {
	for i := 1; i < n; i++ {
		for j := i; j > 0 && less(j, j-1); j-- {
			swap(j, j-1)
		}
	}
}

// Hash returns a deterministic hash of v consistent with Equal: two values
// that compare Equal always hash equal. Doubles hash by their normalized bit
// pattern rather than their Display text, so that -0.0 and 0.0 (or any two
// NaNs) hash identically even though they are distinct bit patterns in
// general.
func Hash(v Value) uint64 {
	h := fnv.New64a()
	writeKind := func(k Kind) {
		h.Write([]byte{byte(k)})
	}
	writeKind(v.Kind())
	switch vv := v.(type) {
	case Double:
		var buf [8]byte
		bits := normalizeDoubleBits(float64(vv))
		for i := 0; i < 8; i++ {
			buf[i] = byte(bits >> (8 * i))
		}
		h.Write(buf[:])
	case Tagged:
		h.Write([]byte(vv.Tag))
		var buf [8]byte
		hv := Hash(vv.Child)
		for i := 0; i < 8; i++ {
			buf[i] = byte(hv >> (8 * i))
		}
		h.Write(buf[:])
	case Vector:
		hashValueSlice(h, []Value(vv))
	case List:
		hashValueSlice(h, []Value(vv))
	case Set:
		hashValueSlice(h, []Value(vv))
	case Map:
		for _, e := range vv {
			h.Write([]byte(e.Key))
			var buf [8]byte
			hv := Hash(e.Value)
			for i := 0; i < 8; i++ {
				buf[i] = byte(hv >> (8 * i))
			}
			h.Write(buf[:])
		}
	case NamespacedMap:
		h.Write([]byte(vv.Namespace))
		var buf [8]byte
		hv := Hash(vv.Entries)
		for i := 0; i < 8; i++ {
			buf[i] = byte(hv >> (8 * i))
		}
		h.Write(buf[:])
	default:
		h.Write([]byte(v.String()))
	}
	return h.Sum64()
}

func hashValueSlice(h interface{ Write([]byte) (int, error) }, vs []Value) {
	for _, v := range vs {
		hv := Hash(v)
		var buf [8]byte
		for i := 0; i < 8; i++ {
			buf[i] = byte(hv >> (8 * i))
		}
		h.Write(buf[:])
	}
}
