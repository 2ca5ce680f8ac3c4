package edn

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMixedContainerMap(t *testing.T) {
	v, err := Parse(`{:a "2" :b [true false] :c #{:A {:a :b} nil}}`)
	require.NoError(t, err)

	m, ok := v.(Map)
	require.True(t, ok)

	a, ok := m.Get(":a")
	require.True(t, ok)
	assert.Equal(t, Str("2"), a)

	b, ok := m.Get(":b")
	require.True(t, ok)
	assert.Equal(t, Vector{Bool(true), Bool(false)}, b)

	c, ok := m.Get(":c")
	require.True(t, ok)
	set, ok := c.(Set)
	require.True(t, ok)

	want := canonicalizeSet([]Value{Keyword(":A"), Map{{Key: ":a", Value: Keyword(":b")}}, Nil{}})
	assert.True(t, want.Equal(set))
}

type idMaybe struct {
	Name string `edn:"name"`
	Age  uint64 `edn:"age"`
	Cool bool   `edn:"cool"`
}

type idRecord struct {
	ID    uint64   `edn:"id"`
	Maybe *idMaybe `edn:"maybe"`
}

func TestUnmarshalNestedOptionalPresent(t *testing.T) {
	v, err := Parse(`{ :id 22 :maybe {:name "rose" :age 66 :cool true} }`)
	require.NoError(t, err)

	var rec idRecord
	require.NoError(t, Unmarshal(v, &rec))

	assert.Equal(t, uint64(22), rec.ID)
	require.NotNil(t, rec.Maybe)
	assert.Equal(t, "rose", rec.Maybe.Name)
	assert.Equal(t, uint64(66), rec.Maybe.Age)
	assert.True(t, rec.Maybe.Cool)
}

func TestUnmarshalNestedOptionalAbsent(t *testing.T) {
	v, err := Parse(`{ :id 1 }`)
	require.NoError(t, err)

	var rec idRecord
	require.NoError(t, Unmarshal(v, &rec))

	assert.Equal(t, uint64(1), rec.ID)
	assert.Nil(t, rec.Maybe)
}

func TestParseChainedDiscards(t *testing.T) {
	v, err := Parse(`#_ ,, #_{discard again} #_ {:and :again} :okay {:a map}`)
	require.NoError(t, err)

	want := Map{{Key: ":a", Value: Symbol("map")}}
	assert.True(t, want.Equal(v), "got %s", Repr(v))
}

func TestNamespacedMapIndexByIntAndString(t *testing.T) {
	v, err := Parse(`:abc{ 0 :val 1 :value}`)
	require.NoError(t, err)

	nsm, ok := v.(NamespacedMap)
	require.True(t, ok)
	assert.Equal(t, "abc", nsm.Namespace)

	byInt, ok := Index(nsm, 0)
	require.True(t, ok)
	assert.Equal(t, Keyword(":val"), byInt)

	byKey, ok := Key(nsm, "0")
	require.True(t, ok)
	assert.Equal(t, Keyword(":val"), byKey)

	byInt, ok = Index(nsm, 1)
	require.True(t, ok)
	assert.Equal(t, Keyword(":value"), byInt)
}

func TestParseExponentDouble(t *testing.T) {
	v, err := Parse(`5.01122771367421e-12`)
	require.NoError(t, err)

	d, ok := v.(Double)
	require.True(t, ok)
	assert.InDelta(t, 5.01122771367421e-12, float64(d), 1e-26)
}

func TestParseNegativeRadix(t *testing.T) {
	v, err := Parse(`-32rFOObar`)
	require.NoError(t, err)
	assert.Equal(t, Int(-529280347), v)
}

func TestParseInvalidEscape(t *testing.T) {
	_, err := Parse(`"hello\n \r \t \"world\" with escaped \\ \g characters"`)
	require.Error(t, err)
	assert.Equal(t, "Invalid escape sequence \\g", err.Error())

	var ednErr Error
	require.ErrorAs(t, err, &ednErr)
	assert.Equal(t, ParseError, ednErr.Kind)
}

func TestParseUnfollowedDiscard(t *testing.T) {
	_, err := Parse(`#_ ,,`)
	require.Error(t, err)
	assert.Equal(t, "Discard sequence must have a following element at char count 2", err.Error())
}

func TestParseQuotedLispForm(t *testing.T) {
	// A quote inside a list is just a one-character symbol; the reader has
	// no quasiquotation.
	v, err := Parse(`(apply + '(1 2 3))`)
	require.NoError(t, err)

	want := List{
		Symbol("apply"),
		Symbol("+"),
		Symbol("'"),
		List{UInt(1), UInt(2), UInt(3)},
	}
	assert.True(t, want.Equal(v), "got %s", Repr(v))
}
