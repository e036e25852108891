package codename

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate_Format(t *testing.T) {
	name, err := Generate(nil)
	require.NoError(t, err)

	parts := strings.Split(name, " ")
	require.Len(t, parts, 2)
	assert.Contains(t, adjectives, parts[0])
	assert.Contains(t, nouns, parts[1])
}

func TestGenerate_AvoidsExcluded(t *testing.T) {
	// Exclude a decent chunk of the vocabulary and hammer the generator.
	excluded := make(map[string]bool)
	for _, adj := range adjectives[:20] {
		for _, noun := range nouns {
			excluded[adj+" "+noun] = true
		}
	}

	for trial := 0; trial < 10000; trial++ {
		name, err := Generate(excluded)
		require.NoError(t, err)
		assert.False(t, excluded[name], "generated an excluded codename: %s", name)
	}
}

func TestGenerate_ExhaustedVocabulary(t *testing.T) {
	excluded := make(map[string]bool)
	for _, adj := range adjectives {
		for _, noun := range nouns {
			excluded[adj+" "+noun] = true
		}
	}

	name, err := Generate(excluded)
	assert.ErrorIs(t, err, ErrExhaustedVocabulary)
	assert.Empty(t, name)
}

func TestGenerate_BoundedAttempts(t *testing.T) {
	// Pin the entropy to always land on an excluded pair; the generator
	// must give up instead of looping forever.
	excluded := map[string]bool{adjectives[0] + " " + nouns[0]: true}

	name, err := generate(excluded, func(int) int { return 0 })
	assert.ErrorIs(t, err, ErrExhaustedVocabulary)
	assert.Empty(t, name)
}

func TestGenerate_FindsFreeCombination(t *testing.T) {
	// Deterministic picker walking the index space: first pair excluded,
	// second pair free.
	excluded := map[string]bool{adjectives[0] + " " + nouns[0]: true}
	calls := 0
	picker := func(int) int {
		calls++
		if calls <= 2 {
			return 0
		}
		return 1
	}

	name, err := generate(excluded, picker)
	require.NoError(t, err)
	assert.Equal(t, adjectives[1]+" "+nouns[1], name)
}

func TestVocabularySize(t *testing.T) {
	assert.Equal(t, len(adjectives)*len(nouns), VocabularySize())
	assert.Greater(t, VocabularySize(), 2000)
}
