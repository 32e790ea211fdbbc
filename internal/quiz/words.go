package quiz

import (
	"math/rand"
	"strings"
	"unicode/utf8"
)

// WordConfig controls the stage-scaled minimum word length.
type WordConfig struct {
	BaseMinLength int // minimum length at stage 1
	MaxMinLength  int // the minimum never exceeds this
}

// DefaultWordConfig returns the standard length scaling.
func DefaultWordConfig() WordConfig {
	return WordConfig{BaseMinLength: 4, MaxMinLength: 8}
}

// MinLength returns the minimum word length for a stage.
func (c WordConfig) MinLength(stage int) int {
	return min(c.BaseMinLength+stage/2, c.MaxMinLength)
}

// Words draws words from a pool and scrambles them.
type Words struct {
	rng  *rand.Rand
	pool []string
	cfg  WordConfig
}

// NewWords creates a word generator over pool. The pool is not copied and
// must not be modified afterwards.
func NewWords(rng *rand.Rand, pool []string, cfg WordConfig) *Words {
	return &Words{rng: rng, pool: pool, cfg: cfg}
}

// Generate implements Generator. Drawn words are recorded in used; when every
// candidate is already used the set is cleared and words recycle.
func (w *Words) Generate(stage int, used Used) (Question, error) {
	if len(w.pool) == 0 {
		return Question{}, ErrEmptyPool
	}

	candidates := w.candidates(stage)

	available := make([]string, 0, len(candidates))
	for _, word := range candidates {
		if _, ok := used[strings.ToUpper(word)]; !ok {
			available = append(available, word)
		}
	}
	if len(available) == 0 {
		clear(used)
		available = candidates
	}

	answer := strings.ToUpper(available[w.rng.Intn(len(available))])
	if used != nil {
		used[answer] = struct{}{}
	}

	return Question{
		Prompt: Shuffle(w.rng, answer),
		Answer: answer,
	}, nil
}

// candidates returns pool words meeting the stage's length bar, or the whole
// pool if none do.
func (w *Words) candidates(stage int) []string {
	minLen := w.cfg.MinLength(stage)
	out := make([]string, 0, len(w.pool))
	for _, word := range w.pool {
		if utf8.RuneCountInString(word) >= minLen {
			out = append(out, word)
		}
	}
	if len(out) == 0 {
		return w.pool
	}
	return out
}
