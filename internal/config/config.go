// Package config provides YAML-based quiz configuration loading and
// difficulty presets.
package config

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/stagequiz/internal/quiz"
	"github.com/vovakirdan/stagequiz/internal/session"
)

// QuizConfig contains all tunable game rules.
type QuizConfig struct {
	Timer      TimerConfig      `yaml:"timer"`
	Batch      BatchConfig      `yaml:"batch"`
	Scoring    ScoringConfig    `yaml:"scoring"`
	Arithmetic ArithmeticConfig `yaml:"arithmetic"`
	Words      WordsConfig      `yaml:"words"`
}

// TimerConfig defines per-question timing.
type TimerConfig struct {
	QuestionSeconds int `yaml:"question_seconds"`
	AdvanceDelayMS  int `yaml:"advance_delay_ms"` // pause after a result
}

// BatchConfig defines batch construction.
type BatchConfig struct {
	Size      int `yaml:"size"`
	ChunkSize int `yaml:"chunk_size"`
	MaxRounds int `yaml:"max_rounds"` // attempt cap multiplier
}

// ScoringConfig defines points.
type ScoringConfig struct {
	PointsPerCorrect int `yaml:"points_per_correct"`
}

// ArithmeticConfig defines how arithmetic problems scale.
type ArithmeticConfig struct {
	MaxLevel     int `yaml:"max_level"`
	MultiplyFrom int `yaml:"multiply_from"`
	DivideFrom   int `yaml:"divide_from"`
}

// WordsConfig defines word selection.
type WordsConfig struct {
	BaseMinLength int      `yaml:"base_min_length"`
	MaxMinLength  int      `yaml:"max_min_length"`
	List          []string `yaml:"list"`
}

// Session converts the config into session rules.
func (c QuizConfig) Session() session.Config {
	return session.Config{
		QuestionTime:     c.Timer.QuestionSeconds,
		AdvanceDelay:     time.Duration(c.Timer.AdvanceDelayMS) * time.Millisecond,
		BatchSize:        c.Batch.Size,
		PointsPerCorrect: c.Scoring.PointsPerCorrect,
	}
}

// QuizBatch converts the config into builder settings.
func (c QuizConfig) QuizBatch() quiz.BatchConfig {
	return quiz.BatchConfig{
		Size:      c.Batch.Size,
		ChunkSize: c.Batch.ChunkSize,
		MaxRounds: c.Batch.MaxRounds,
	}
}

// QuizWords converts the config into word generator settings.
func (c QuizConfig) QuizWords() quiz.WordConfig {
	return quiz.WordConfig{
		BaseMinLength: c.Words.BaseMinLength,
		MaxMinLength:  c.Words.MaxMinLength,
	}
}

// QuizArithmetic converts the config into arithmetic generator settings.
func (c QuizConfig) QuizArithmetic() quiz.ArithmeticConfig {
	return quiz.ArithmeticConfig{
		MaxLevel:     c.Arithmetic.MaxLevel,
		MultiplyFrom: c.Arithmetic.MultiplyFrom,
		DivideFrom:   c.Arithmetic.DivideFrom,
	}
}

// NewBuilder creates a question builder using these rules.
func (c QuizConfig) NewBuilder(rng *rand.Rand, pool []string, opts ...quiz.BuilderOption) *quiz.Builder {
	return quiz.NewBuilder(rng, pool, c.QuizBatch(), c.QuizWords(), c.QuizArithmetic(), opts...)
}
