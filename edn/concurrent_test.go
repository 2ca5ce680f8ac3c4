package edn

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAll_IndependentParsesSameOrder(t *testing.T) {
	inputs := []string{`1`, `[1 2]`, `{:a 1}`, `"hi"`}
	got, err := ParseAll(inputs, 4)
	require.NoError(t, err)
	require.Len(t, got, len(inputs))

	assert.Equal(t, UInt(1), got[0])
	assert.True(t, Vector{UInt(1), UInt(2)}.Equal(got[1]))
	assert.True(t, Map{{Key: ":a", Value: UInt(1)}}.Equal(got[2]))
	assert.Equal(t, Str("hi"), got[3])
}

func TestParseAll_FirstErrorAborts(t *testing.T) {
	inputs := []string{`1`, `"unterminated`, `2`}
	_, err := ParseAll(inputs, 2)
	require.Error(t, err)
	assert.Equal(t, "Unterminated string", err.Error())
}
