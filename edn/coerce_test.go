package edn

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToBool(t *testing.T) {
	tests := []struct {
		name string
		v    Value
		want bool
		ok   bool
	}{
		{"bool true", Bool(true), true, true},
		{"bool false", Bool(false), false, true},
		{"string true", Str("true"), true, true},
		{"string false", Str("false"), false, true},
		{"string garbage", Str("yes"), false, false},
		{"nil", Nil{}, false, false},
		{"int", UInt(1), false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ToBool(tt.v)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestToInt(t *testing.T) {
	tests := []struct {
		name string
		v    Value
		want int64
		ok   bool
	}{
		{"int", Int(-7), -7, true},
		{"uint fits", UInt(7), 7, true},
		{"uint overflows int64", UInt(1 << 63), 0, false},
		{"string", Str("-42"), -42, true},
		{"string garbage", Str("nope"), 0, false},
		{"bool", Bool(true), 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ToInt(tt.v)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestToUInt(t *testing.T) {
	tests := []struct {
		name string
		v    Value
		want uint64
		ok   bool
	}{
		{"uint", UInt(7), 7, true},
		{"non-negative int", Int(7), 7, true},
		{"negative int fails", Int(-7), 0, false},
		{"string does not coerce", Str("7"), 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ToUInt(tt.v)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestToFloat(t *testing.T) {
	tests := []struct {
		name string
		v    Value
		want float64
		ok   bool
	}{
		{"double", Double(1.5), 1.5, true},
		{"int", Int(-2), -2, true},
		{"uint", UInt(2), 2, true},
		{"rational", Rational("1/4"), 0.25, true},
		{"rational div by zero", Rational("1/0"), 0, false},
		{"bogus rational", Rational("x/y"), 0, false},
		{"string does not coerce", Str("1.5"), 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ToFloat(tt.v)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.InDelta(t, tt.want, got, 1e-9)
			}
		})
	}
}

func TestToChar(t *testing.T) {
	got, ok := ToChar(Char('z'))
	assert.True(t, ok)
	assert.Equal(t, 'z', got)

	_, ok = ToChar(Str("z"))
	assert.False(t, ok)
}

func TestToSymbol(t *testing.T) {
	got, ok := ToSymbol(Symbol("foo"))
	assert.True(t, ok)
	assert.Equal(t, "foo", got)

	got, ok = ToSymbol(Keyword(":foo"))
	assert.True(t, ok)
	assert.Equal(t, "foo", got)

	_, ok = ToSymbol(Str("foo"))
	assert.False(t, ok)
}
