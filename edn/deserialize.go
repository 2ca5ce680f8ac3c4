package edn

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/gofrs/uuid"
	"github.com/shopspring/decimal"
)

// Unmarshaler is implemented by types that know how to populate themselves
// from a Value directly, bypassing the reflect-based struct decoder below.
type Unmarshaler interface {
	UnmarshalEDN(v Value) error
}

var unmarshalerType = reflect.TypeOf((*Unmarshaler)(nil)).Elem()

// Unmarshal decodes v into out, which must be a non-nil pointer. Structural
// decoding is reflect-based (C6): primitives widen/narrow the same way the
// To* coercions in coerce.go do, Vector/List decode into slices or arrays,
// Set decodes into a slice (deduplicated, canonical order) or a
// map[T]struct{}, and Map/NamespacedMap decode into a struct or a
// map[string]T. Into a struct, a NamespacedMap's entries are looked up the
// same way a plain Map's are - the namespace is not required in a struct
// tag. Into a map[string]T, each key is flattened to "ns/" followed by the
// entry's key text.
func Unmarshal(v Value, out any) error {
	rv := reflect.ValueOf(out)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		return deserializeErrf("Unmarshal target must be a non-nil pointer, got %T", out)
	}
	return decodeValue(v, rv.Elem())
}

// UnmarshalString chains Parse and Unmarshal: it reads one EDN value from
// input and decodes it into out. A parse failure propagates as-is, so the
// caller can still distinguish Parse from Deserialize errors by Kind.
func UnmarshalString(input string, out any) error {
	v, err := Parse(input)
	if err != nil {
		return err
	}
	return Unmarshal(v, out)
}

func decodeValue(v Value, target reflect.Value) error {
	if target.CanAddr() && target.Addr().Type().Implements(unmarshalerType) {
		return target.Addr().Interface().(Unmarshaler).UnmarshalEDN(v)
	}

	if target.Kind() == reflect.Ptr {
		if _, isNil := v.(Nil); isNil {
			target.Set(reflect.Zero(target.Type()))
			return nil
		}
		if target.IsNil() {
			target.Set(reflect.New(target.Type().Elem()))
		}
		return decodeValue(v, target.Elem())
	}

	switch target.Type() {
	case reflect.TypeOf(uuid.UUID{}):
		u, ok := v.(Uuid)
		if !ok {
			return deserializeErrf("couldn't convert `%s` into uuid.UUID", v.String())
		}
		parsed, err := uuid.FromString(string(u))
		if err != nil {
			return deserializeErrf("invalid uuid %q: %v", string(u), err)
		}
		target.Set(reflect.ValueOf(parsed))
		return nil
	case reflect.TypeOf(decimal.Decimal{}):
		d, ok := rationalOrNumberDecimal(v)
		if !ok {
			return deserializeErrf("couldn't convert `%s` into decimal.Decimal", v.String())
		}
		target.Set(reflect.ValueOf(d))
		return nil
	}

	switch target.Kind() {
	case reflect.Bool:
		b, ok := ToBool(v)
		if !ok {
			return deserializeErrf("couldn't convert `%s` into bool", v.String())
		}
		target.SetBool(b)
		return nil
	case reflect.String:
		// Text targets never fail: a Str passes through unquoted, anything
		// else is rendered via its Display text.
		s, _ := ToString(v)
		target.SetString(s)
		return nil
	case reflect.Int32:
		if c, ok := v.(Char); ok {
			target.SetInt(int64(c))
			return nil
		}
		return decodeInt(v, target)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int64:
		return decodeInt(v, target)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return decodeUint(v, target)
	case reflect.Float32, reflect.Float64:
		f, ok := ToFloat(v)
		if !ok {
			return deserializeErrf("couldn't convert `%s` into float", v.String())
		}
		target.SetFloat(f)
		return nil
	case reflect.Slice, reflect.Array:
		return decodeSequence(v, target)
	case reflect.Map:
		return decodeMap(v, target)
	case reflect.Struct:
		return decodeStruct(v, target)
	case reflect.Interface:
		if target.NumMethod() == 0 {
			target.Set(reflect.ValueOf(v))
			return nil
		}
		return deserializeErrf("couldn't convert `%s` into interface %s", v.String(), target.Type())
	default:
		return deserializeErrf("unsupported decode target kind %s", target.Kind())
	}
}

// rationalOrNumberDecimal resolves v into an arbitrary-precision
// decimal.Decimal: a Rational's "num/den" text is divided at decimal
// precision (the same approach ToFloat in coerce.go takes), and
// Int/UInt/Double parse directly.
func rationalOrNumberDecimal(v Value) (decimal.Decimal, bool) {
	switch t := v.(type) {
	case Rational:
		num, den, found := strings.Cut(string(t), "/")
		if !found {
			return decimal.Decimal{}, false
		}
		n, err := decimal.NewFromString(num)
		if err != nil {
			return decimal.Decimal{}, false
		}
		d, err := decimal.NewFromString(den)
		if err != nil || d.IsZero() {
			return decimal.Decimal{}, false
		}
		return n.Div(d), true
	case Int, UInt, Double:
		d, err := decimal.NewFromString(t.String())
		if err != nil {
			return decimal.Decimal{}, false
		}
		return d, true
	default:
		return decimal.Decimal{}, false
	}
}

func decodeInt(v Value, target reflect.Value) error {
	i, ok := ToInt(v)
	if !ok {
		return deserializeErrf("couldn't convert `%s` into %s", v.String(), target.Type())
	}
	if target.OverflowInt(i) {
		return deserializeErrf("couldn't convert `%s` into %s: value overflows", v.String(), target.Type())
	}
	target.SetInt(i)
	return nil
}

func decodeUint(v Value, target reflect.Value) error {
	u, ok := ToUInt(v)
	if !ok {
		return deserializeErrf("couldn't convert `%s` into %s", v.String(), target.Type())
	}
	if target.OverflowUint(u) {
		return deserializeErrf("couldn't convert `%s` into %s: value overflows", v.String(), target.Type())
	}
	target.SetUint(u)
	return nil
}

func decodeSequence(v Value, target reflect.Value) error {
	switch v.(type) {
	case Vector, List, Set:
	default:
		// Elements can't distinguish an empty container from a non-sequence,
		// so the kind check happens here.
		return deserializeErrf("couldn't convert `%s` into %s", v.String(), target.Type())
	}
	items := Elements(v)
	if target.Kind() == reflect.Array {
		if len(items) != target.Len() {
			return deserializeErrf("array length mismatch: have %d elements, target is [%d]%s", len(items), target.Len(), target.Type().Elem())
		}
	} else {
		target.Set(reflect.MakeSlice(target.Type(), len(items), len(items)))
	}
	for i, item := range items {
		if err := decodeValue(item, target.Index(i)); err != nil {
			return err
		}
	}
	return nil
}

func decodeMap(v Value, target reflect.Value) error {
	elemType := target.Type().Elem()
	if elemType.Kind() == reflect.Struct && elemType.NumField() == 0 {
		// map[T]struct{} models a Set, and only a Set decodes into one -
		// ordered sequences go to slices/arrays instead.
		set, ok := v.(Set)
		if !ok {
			return deserializeErrf("couldn't convert `%s` into %s", v.String(), target.Type())
		}
		items := []Value(set)
		out := reflect.MakeMapWithSize(target.Type(), len(items))
		for _, item := range items {
			key := reflect.New(target.Type().Key()).Elem()
			if err := decodeValue(item, key); err != nil {
				return err
			}
			out.SetMapIndex(key, reflect.Zero(elemType))
		}
		target.Set(out)
		return nil
	}

	entries, namespace, ok := mapEntriesWithNamespace(v)
	if !ok {
		return deserializeErrf("couldn't convert `%s` into %s", v.String(), target.Type())
	}
	out := reflect.MakeMapWithSize(target.Type(), len(entries))
	for _, e := range entries {
		keyText := e.Key
		if namespace != "" {
			keyText = namespace + "/" + keyText
		}
		key := reflect.New(target.Type().Key()).Elem()
		if key.Kind() == reflect.String {
			key.SetString(keyText)
		} else if err := decodeValue(Symbol(keyText), key); err != nil {
			return err
		}
		val := reflect.New(elemType).Elem()
		if err := decodeValue(e.Value, val); err != nil {
			return err
		}
		out.SetMapIndex(key, val)
	}
	target.Set(out)
	return nil
}

func decodeStruct(v Value, target reflect.Value) error {
	entries, ok := asMapEntries(v)
	if !ok {
		return deserializeErrf("couldn't convert `%s` into %s", v.String(), target.Type())
	}
	byKey := make(map[string]MapEntry, len(entries))
	for _, e := range entries {
		byKey[trimKeyText(e.Key)] = e
	}

	t := target.Type()
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if field.PkgPath != "" {
			continue
		}
		name, skip := fieldKeyName(field)
		if skip {
			continue
		}
		entry, found := byKey[name]
		if !found {
			continue
		}
		if err := decodeValue(entry.Value, target.Field(i)); err != nil {
			return fmt.Errorf("field %s: %w", field.Name, err)
		}
	}
	return nil
}

// fieldKeyName resolves the map key name a struct field binds to: an
// `edn:"name"` tag wins, "-" skips the field, and the default is the field
// name lowercased (matching how a Go struct's exported fields conventionally
// mirror keyword-keyed EDN maps).
func fieldKeyName(field reflect.StructField) (name string, skip bool) {
	tag := field.Tag.Get("edn")
	if tag == "-" {
		return "", true
	}
	if tag != "" {
		name = strings.SplitN(tag, ",", 2)[0]
	}
	if name == "" {
		name = strings.ToLower(field.Name)
	}
	return name, false
}

// asMapEntries returns a Map's entries directly, or a NamespacedMap's
// entries with the namespace dropped - the flattening that lets the struct
// decoder handle both without special-casing namespaces (struct field names
// never carry a namespace prefix, matching how Key in navigate.go resolves
// namespaced lookups).
func asMapEntries(v Value) ([]MapEntry, bool) {
	switch t := v.(type) {
	case Map:
		return []MapEntry(t), true
	case NamespacedMap:
		return []MapEntry(t.Entries), true
	default:
		return nil, false
	}
}

// mapEntriesWithNamespace is asMapEntries plus the namespace text (empty for
// a plain Map), used by decodeMap so a mapping target's keys can be
// flattened as "ns/key", rather than silently dropping the namespace the
// way the struct decoder does.
func mapEntriesWithNamespace(v Value) (entries []MapEntry, namespace string, ok bool) {
	switch t := v.(type) {
	case Map:
		return []MapEntry(t), "", true
	case NamespacedMap:
		return []MapEntry(t.Entries), t.Namespace, true
	default:
		return nil, "", false
	}
}

// trimKeyText strips a leading ':' (keyword keys) or surrounding '"'
// (string keys) from a MapEntry's Key text so it can be compared against a
// bare Go identifier or struct tag.
func trimKeyText(key string) string {
	key = strings.TrimPrefix(key, ":")
	if len(key) >= 2 && key[0] == '"' && key[len(key)-1] == '"' {
		return key[1 : len(key)-1]
	}
	return key
}
