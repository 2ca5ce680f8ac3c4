package edn

import (
	"testing"

	"github.com/gofrs/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type person struct {
	Name string `edn:"name"`
	Age  uint64 `edn:"age"`
}

func TestUnmarshal_Primitives(t *testing.T) {
	var b bool
	require.NoError(t, Unmarshal(Bool(true), &b))
	assert.True(t, b)

	var s string
	require.NoError(t, Unmarshal(Str("hi"), &s))
	assert.Equal(t, "hi", s)

	var i int64
	require.NoError(t, Unmarshal(Int(-5), &i))
	assert.Equal(t, int64(-5), i)

	var u uint32
	require.NoError(t, Unmarshal(UInt(5), &u))
	assert.Equal(t, uint32(5), u)

	var f float64
	require.NoError(t, Unmarshal(Double(1.5), &f))
	assert.Equal(t, 1.5, f)

	var c rune
	require.NoError(t, Unmarshal(Char('x'), &c))
	assert.Equal(t, 'x', c)
}

func TestUnmarshal_Slice(t *testing.T) {
	v, err := Parse(`[1 2 3]`)
	require.NoError(t, err)

	var out []uint64
	require.NoError(t, Unmarshal(v, &out))
	assert.Equal(t, []uint64{1, 2, 3}, out)

	empty, err := Parse(`[]`)
	require.NoError(t, err)
	require.NoError(t, Unmarshal(empty, &out))
	assert.Empty(t, out)

	err = Unmarshal(UInt(1), &out)
	require.Error(t, err)
}

func TestUnmarshal_SetIntoSliceAndMapSet(t *testing.T) {
	v, err := Parse(`#{1 2 3}`)
	require.NoError(t, err)

	var asSlice []uint64
	require.NoError(t, Unmarshal(v, &asSlice))
	assert.Equal(t, []uint64{1, 2, 3}, asSlice)

	var asSet map[uint64]struct{}
	require.NoError(t, Unmarshal(v, &asSet))
	assert.Equal(t, map[uint64]struct{}{1: {}, 2: {}, 3: {}}, asSet)
}

func TestUnmarshal_Struct(t *testing.T) {
	v, err := Parse(`{:name "rose" :age 66}`)
	require.NoError(t, err)

	var p person
	require.NoError(t, Unmarshal(v, &p))
	assert.Equal(t, person{Name: "rose", Age: 66}, p)
}

func TestUnmarshal_OptionalPointer(t *testing.T) {
	var p *person
	require.NoError(t, Unmarshal(Nil{}, &p))
	assert.Nil(t, p)

	v, err := Parse(`{:name "rose" :age 66}`)
	require.NoError(t, err)
	require.NoError(t, Unmarshal(v, &p))
	require.NotNil(t, p)
	assert.Equal(t, "rose", p.Name)
}

func TestUnmarshal_MapStringToT(t *testing.T) {
	v, err := Parse(`{:a 1 :b 2}`)
	require.NoError(t, err)

	var out map[string]uint64
	require.NoError(t, Unmarshal(v, &out))
	assert.Equal(t, map[string]uint64{":a": 1, ":b": 2}, out)
}

func TestUnmarshal_NamespacedMapFlattensKeys(t *testing.T) {
	v, err := Parse(`:ns{:a 1 :b 2}`)
	require.NoError(t, err)

	var out map[string]uint64
	require.NoError(t, Unmarshal(v, &out))
	assert.Equal(t, map[string]uint64{"ns/:a": 1, "ns/:b": 2}, out)
}

func TestUnmarshal_NamespacedMapIntoStructIgnoresNamespace(t *testing.T) {
	v, err := Parse(`:ns{:name "rose" :age 66}`)
	require.NoError(t, err)

	var p person
	require.NoError(t, Unmarshal(v, &p))
	assert.Equal(t, person{Name: "rose", Age: 66}, p)
}

func TestUnmarshal_Uuid(t *testing.T) {
	v, err := Parse(`#uuid "f47ac10b-58cc-4372-a567-0e02b2c3d479"`)
	require.NoError(t, err)

	var u uuid.UUID
	require.NoError(t, Unmarshal(v, &u))
	assert.Equal(t, "f47ac10b-58cc-4372-a567-0e02b2c3d479", u.String())
}

func TestUnmarshal_Decimal(t *testing.T) {
	v, err := Parse(`1/4`)
	require.NoError(t, err)

	var d decimal.Decimal
	require.NoError(t, Unmarshal(v, &d))
	assert.True(t, decimal.NewFromFloat(0.25).Equal(d))
}

func TestUnmarshalString_ChainsParseAndDecode(t *testing.T) {
	var p person
	require.NoError(t, UnmarshalString(`{:name "rose" :age 66}`, &p))
	assert.Equal(t, person{Name: "rose", Age: 66}, p)

	err := UnmarshalString(`{:name`, &p)
	require.Error(t, err)
	var ednErr Error
	require.ErrorAs(t, err, &ednErr)
	assert.Equal(t, ParseError, ednErr.Kind)
}

func TestUnmarshal_ErrorMessageFormat(t *testing.T) {
	var i int
	err := Unmarshal(Str("not a number"), &i)
	require.Error(t, err)
	assert.Equal(t, "couldn't convert `\"not a number\"` into int", err.Error())

	var ednErr Error
	require.ErrorAs(t, err, &ednErr)
	assert.Equal(t, DeserializeError, ednErr.Kind)
}

func TestUnmarshal_RequiresNonNilPointer(t *testing.T) {
	err := Unmarshal(Nil{}, person{})
	require.Error(t, err)
}
