// Package codename generates the two-word aliases shown to moderators in
// place of user identities, e.g. "peaceful bonefish".
package codename

import (
	"errors"
	"math/rand"
)

// ErrExhaustedVocabulary is returned when every adjective/noun combination
// is already excluded. Practically unreachable with the shipped word lists,
// but a defined failure beats an infinite loop.
var ErrExhaustedVocabulary = errors.New("all codename combinations are in use")

// Generate picks a random adjective/noun pair not present in excluded.
// Attempts are bounded; if the vocabulary is fully (or nearly fully) used
// up it fails with ErrExhaustedVocabulary instead of spinning.
func Generate(excluded map[string]bool) (string, error) {
	return generate(excluded, rand.Intn)
}

// generate takes the picker as a parameter so tests can pin the entropy.
func generate(excluded map[string]bool, intN func(int) int) (string, error) {
	total := len(adjectives) * len(nouns)
	if len(excluded) >= total {
		return "", ErrExhaustedVocabulary
	}

	// Random probing is fine while the vocabulary is mostly free, which is
	// the only regime this bot realistically operates in. The bound leaves
	// generous headroom before giving up.
	maxAttempts := 4 * total
	for attempt := 0; attempt < maxAttempts; attempt++ {
		name := adjectives[intN(len(adjectives))] + " " + nouns[intN(len(nouns))]
		if !excluded[name] {
			return name, nil
		}
	}
	return "", ErrExhaustedVocabulary
}

// VocabularySize reports how many distinct codenames can exist at once.
func VocabularySize() int {
	return len(adjectives) * len(nouns)
}
