package dmp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBitapScenario(t *testing.T) {
	e := &MatchEngine{Threshold: 0.5, Distance: 100, MaxBits: 32}

	loc, err := e.Bitap("abcdefghijk", "efxhi", 0)
	require.NoError(t, err)
	assert.Equal(t, 4, loc)

	loc, err = e.Bitap("abcdefghijk", "bxy", 1)
	require.NoError(t, err)
	assert.Equal(t, -1, loc)
}

func TestBitapExactMatchCorrectness(t *testing.T) {
	e := &MatchEngine{Threshold: 0.5, Distance: 1000, MaxBits: 32}
	text := "the quick brown fox jumps over the lazy dog"
	pattern := "jumps"

	loc, err := e.Bitap(text, pattern, 20)
	require.NoError(t, err)
	require.NotEqual(t, -1, loc)
	assert.Equal(t, pattern, text[loc:loc+len(pattern)])
}

func TestBitapPatternTooLong(t *testing.T) {
	e := &MatchEngine{Threshold: 0.5, Distance: 1000, MaxBits: 4}
	_, err := e.Bitap("abcdefgh", "abcdefgh", 0)
	assert.ErrorIs(t, err, ErrPatternTooLong)
}
