package quiz

import "math/rand"

// maxShuffleAttempts bounds retries when a shuffle reproduces its input.
const maxShuffleAttempts = 32

// Shuffle returns a permutation of word's runes that differs from word.
// Words shorter than two runes, or made of one repeated rune, have no
// distinct permutation and are returned unchanged.
func Shuffle(rng *rand.Rand, word string) string {
	runes := []rune(word)
	if len(runes) < 2 || allSame(runes) {
		return word
	}

	out := make([]rune, len(runes))
	for attempt := 0; attempt < maxShuffleAttempts; attempt++ {
		copy(out, runes)
		for i := len(out) - 1; i > 0; i-- {
			j := rng.Intn(i + 1)
			out[i], out[j] = out[j], out[i]
		}
		if s := string(out); s != word {
			return s
		}
	}

	// A one-step rotation only equals its input when every rune is the same.
	return string(append(runes[1:], runes[0]))
}

func allSame(runes []rune) bool {
	for _, r := range runes[1:] {
		if r != runes[0] {
			return false
		}
	}
	return true
}
