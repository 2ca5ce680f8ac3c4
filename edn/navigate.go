package edn

import (
	"strconv"
	"strings"
)

// Index returns the i-th element of a Vector or List by position, or, for a
// Map or NamespacedMap, the entry whose key text equals the decimal
// representation of i. Any other kind, or a miss, yields (Nil{}, false):
// navigation never errors, it just reports a miss.
func Index(v Value, i int) (Value, bool) {
	switch t := v.(type) {
	case Vector:
		if i < 0 || i >= len(t) {
			return Nil{}, false
		}
		return t[i], true
	case List:
		if i < 0 || i >= len(t) {
			return Nil{}, false
		}
		return t[i], true
	case Map, NamespacedMap:
		return Key(v, strconv.Itoa(i))
	default:
		return Nil{}, false
	}
}

// Key looks up a map entry by the Display text of its key. A NamespacedMap
// stores its keys without the namespace prefix, so both the bare key and
// the namespace-qualified form ("ns/name" or ":ns/name") resolve; callers
// don't need to special-case namespaced maps. Any other kind, or a missing
// key, yields (Nil{}, false).
func Key(v Value, key string) (Value, bool) {
	switch t := v.(type) {
	case Map:
		return t.Get(key)
	case NamespacedMap:
		if val, ok := t.Entries.Get(key); ok {
			return val, true
		}
		if rest, found := strings.CutPrefix(strings.TrimPrefix(key, ":"), t.Namespace+"/"); found {
			if val, ok := t.Entries.Get(rest); ok {
				return val, true
			}
			if val, ok := t.Entries.Get(":" + rest); ok {
				return val, true
			}
		}
		return Nil{}, false
	default:
		return Nil{}, false
	}
}

// Len reports the number of elements/entries a container holds. Scalars and
// Nil report 0.
func Len(v Value) int {
	switch t := v.(type) {
	case Vector:
		return len(t)
	case List:
		return len(t)
	case Set:
		return len(t)
	case Map:
		return len(t)
	case NamespacedMap:
		return len(t.Entries)
	default:
		return 0
	}
}

// Elements returns the member values of a Vector, List, or Set in their
// stored order, or nil for any other kind.
func Elements(v Value) []Value {
	switch t := v.(type) {
	case Vector:
		return []Value(t)
	case List:
		return []Value(t)
	case Set:
		return []Value(t)
	default:
		return nil
	}
}

// Entries returns the key/value pairs of a Map or NamespacedMap in their
// stored (key-sorted) order, or nil for any other kind.
func Entries(v Value) []MapEntry {
	switch t := v.(type) {
	case Map:
		return []MapEntry(t)
	case NamespacedMap:
		return []MapEntry(t.Entries)
	default:
		return nil
	}
}

// Iter returns v's member values, erroring (an Iter-kind Error) rather
// than silently returning nil the way Elements does, for callers that want
// to treat "not a container" as a failure instead of an empty iteration.
func Iter(v Value) ([]Value, error) {
	switch v.(type) {
	case Vector, List, Set:
		return Elements(v), nil
	default:
		return nil, iterErrf("couldn't iterate over a %s value", v.Kind())
	}
}
