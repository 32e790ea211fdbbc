// Package quiz generates questions for the stage quiz: scrambled words and
// stage-scaled arithmetic problems, assembled into fixed-size batches.
// Generation is pure logic driven by a caller-supplied *rand.Rand so that a
// seed reproduces the same batch.
package quiz

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrGenerationFailure is returned when a batch ends up empty after the
	// attempt cap is exhausted.
	ErrGenerationFailure = errors.New("quiz: batch generation failed")

	// ErrInvalidStage is returned for stages below 1.
	ErrInvalidStage = errors.New("quiz: stage must be >= 1")

	// ErrEmptyPool is returned when word mode has no words to draw from.
	ErrEmptyPool = errors.New("quiz: word pool is empty")

	// ErrUnknownMode is returned for a mode with no registered generator.
	ErrUnknownMode = errors.New("quiz: unknown mode")
)

// Mode selects which kind of question a session plays.
type Mode string

const (
	ModeWord       Mode = "word"
	ModeArithmetic Mode = "arithmetic"
)

// Modes returns all modes in menu order.
func Modes() []Mode {
	return []Mode{ModeWord, ModeArithmetic}
}

// Title returns the menu label for the mode.
func (m Mode) Title() string {
	switch m {
	case ModeWord:
		return "Word: Unscramble"
	case ModeArithmetic:
		return "Math: Solve"
	default:
		return string(m)
	}
}

// ParseMode accepts the canonical names plus a few aliases.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "word", "words", "english":
		return ModeWord, nil
	case "arithmetic", "math", "maths":
		return ModeArithmetic, nil
	}
	return "", fmt.Errorf("%w %q", ErrUnknownMode, s)
}

// Question is a single prompt with its expected answer.
type Question struct {
	Prompt string
	Answer string
}

// Fallback is substituted whenever a generator fails for one question.
var Fallback = Question{Prompt: "1 + 1 = ?", Answer: "2"}

// Normalize prepares a guess or answer for comparison.
func Normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Check reports whether guess matches the question's answer.
func (q Question) Check(guess string) bool {
	return Normalize(guess) == Normalize(q.Answer)
}

// Used tracks words already drawn within one batch.
type Used map[string]struct{}

// Generator produces one question for a stage. Implementations may record
// what they drew in used to avoid repeats within a batch.
type Generator interface {
	Generate(stage int, used Used) (Question, error)
}
