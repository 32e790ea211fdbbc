package config

import "fmt"

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset validates a preset name. The empty string keeps the config
// unchanged and is reported as ok.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard:
		return p, nil
	}
	return "", fmt.Errorf("unknown difficulty %q (want easy, normal or hard)", s)
}

// QuestionSecondsForPreset returns the per-question time for a preset,
// or 0 if the preset does not set one.
func QuestionSecondsForPreset(preset DifficultyPreset) int {
	switch preset {
	case DifficultyEasy:
		return 180
	case DifficultyNormal:
		return 120
	case DifficultyHard:
		return 60
	default:
		return 0
	}
}

// ApplyPreset modifies the config based on a difficulty preset.
func ApplyPreset(cfg *QuizConfig, preset DifficultyPreset) {
	if secs := QuestionSecondsForPreset(preset); secs > 0 {
		cfg.Timer.QuestionSeconds = secs
	}
}
