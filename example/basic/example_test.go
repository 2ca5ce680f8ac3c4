package example

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadProfile(t *testing.T) {
	p, err := LoadProfile()
	require.NoError(t, err)

	assert.Equal(t, "rose", p.Name)
	assert.Equal(t, uint64(66), p.Age)
	assert.Equal(t, []string{":staff", ":oncall"}, p.Tags)
	assert.True(t, p.Cool)
	assert.Nil(t, p.Manager)
}
