package config

import (
	_ "embed"
)

//go:embed defaults/quiz.yaml
var defaultQuizYAML []byte

// DefaultQuizConfig returns the built-in rules.
func DefaultQuizConfig() QuizConfig {
	return QuizConfig{
		Timer: TimerConfig{
			QuestionSeconds: 120,
			AdvanceDelayMS:  1500,
		},
		Batch: BatchConfig{
			Size:      10,
			ChunkSize: 5,
			MaxRounds: 3,
		},
		Scoring: ScoringConfig{
			PointsPerCorrect: 10,
		},
		Arithmetic: ArithmeticConfig{
			MaxLevel:     10,
			MultiplyFrom: 3,
			DivideFrom:   6,
		},
		Words: WordsConfig{
			BaseMinLength: 4,
			MaxMinLength:  8,
		},
	}
}

// Normalize fills zero or negative fields from the defaults so a partial
// YAML file only needs the keys it changes.
func Normalize(cfg *QuizConfig) {
	def := DefaultQuizConfig()

	fill := func(v *int, d int) {
		if *v <= 0 {
			*v = d
		}
	}

	fill(&cfg.Timer.QuestionSeconds, def.Timer.QuestionSeconds)
	fill(&cfg.Timer.AdvanceDelayMS, def.Timer.AdvanceDelayMS)
	fill(&cfg.Batch.Size, def.Batch.Size)
	fill(&cfg.Batch.ChunkSize, def.Batch.ChunkSize)
	fill(&cfg.Batch.MaxRounds, def.Batch.MaxRounds)
	fill(&cfg.Scoring.PointsPerCorrect, def.Scoring.PointsPerCorrect)
	fill(&cfg.Arithmetic.MaxLevel, def.Arithmetic.MaxLevel)
	fill(&cfg.Arithmetic.MultiplyFrom, def.Arithmetic.MultiplyFrom)
	fill(&cfg.Arithmetic.DivideFrom, def.Arithmetic.DivideFrom)
	fill(&cfg.Words.BaseMinLength, def.Words.BaseMinLength)
	fill(&cfg.Words.MaxMinLength, def.Words.MaxMinLength)
}
