package edn

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompare_DoubleTotalOrder(t *testing.T) {
	assert.True(t, Double(0.0).Equal(Double(math.Copysign(0, -1))), "-0.0 must equal 0.0")
	assert.Equal(t, 0, Compare(Double(0.0), Double(math.Copysign(0, -1))))

	nan1 := Double(math.NaN())
	nan2 := Double(math.Float64frombits(math.Float64bits(math.NaN()) ^ 1))
	assert.True(t, nan1.Equal(nan2), "all NaNs collapse to one equivalence class")
	assert.Equal(t, 0, Compare(nan1, nan2))

	assert.Equal(t, -1, Compare(Double(1.0), Double(2.0)))
	assert.Equal(t, 1, Compare(Double(2.0), Double(1.0)))
}

func TestCompare_KindRanksDifferentKinds(t *testing.T) {
	assert.Equal(t, -1, Compare(Nil{}, Bool(true)))
	assert.Equal(t, 1, Compare(Bool(true), Nil{}))
}

func TestSet_CanonicalizationDedupesAndSorts(t *testing.T) {
	v, err := Parse(`#{3 1 2 1 3}`)
	require.NoError(t, err)
	set, ok := v.(Set)
	require.True(t, ok)
	require.Len(t, set, 3)
	assert.Equal(t, UInt(1), set[0])
	assert.Equal(t, UInt(2), set[1])
	assert.Equal(t, UInt(3), set[2])
}

func TestSet_IdempotentCanonicalization(t *testing.T) {
	withDupes, err := Parse(`#{1 2 2 3}`)
	require.NoError(t, err)
	withoutDupes, err := Parse(`#{1 2 3}`)
	require.NoError(t, err)
	assert.True(t, withDupes.Equal(withoutDupes))
}

func TestMap_DuplicateKeyLastWriteWins(t *testing.T) {
	v, err := Parse(`{:a 1 :a 2}`)
	require.NoError(t, err)
	m, ok := v.(Map)
	require.True(t, ok)
	require.Len(t, m, 1)
	got, found := m.Get(":a")
	require.True(t, found)
	assert.Equal(t, UInt(2), got)
}

func TestHash_ConsistentWithEqual(t *testing.T) {
	a, err := Parse(`{:a 1 :b [1 2 #{3 2 1}]}`)
	require.NoError(t, err)
	b, err := Parse(`{:b [1 2 #{1 2 3}] :a 1}`)
	require.NoError(t, err)
	require.True(t, a.Equal(b))
	assert.Equal(t, Hash(a), Hash(b))

	c, err := Parse(`{:a 1 :b [1 2 #{3 2 4}]}`)
	require.NoError(t, err)
	assert.NotEqual(t, Hash(a), Hash(c))
}
