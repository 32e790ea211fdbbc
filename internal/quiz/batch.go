package quiz

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"sync"

	"github.com/charmbracelet/log"
)

// BatchConfig controls batch construction.
type BatchConfig struct {
	Size      int // questions per batch
	ChunkSize int // questions generated between cancellation checks
	MaxRounds int // attempt cap is MaxRounds * count
}

// DefaultBatchConfig returns the standard batch settings.
func DefaultBatchConfig() BatchConfig {
	return BatchConfig{Size: 10, ChunkSize: 5, MaxRounds: 3}
}

// Builder assembles batches of questions for a mode and stage.
// Build is serialized: a Builder never runs two constructions at once.
type Builder struct {
	mu         sync.Mutex
	cfg        BatchConfig
	generators map[Mode]Generator
	logger     *log.Logger
}

// BuilderOption customizes a Builder.
type BuilderOption func(*Builder)

// WithGenerator replaces the generator for a mode.
func WithGenerator(mode Mode, g Generator) BuilderOption {
	return func(b *Builder) {
		b.generators[mode] = g
	}
}

// WithLogger sets the logger used for fallback and failure reports.
func WithLogger(l *log.Logger) BuilderOption {
	return func(b *Builder) {
		if l != nil {
			b.logger = l
		}
	}
}

// NewBuilder creates a builder with the word and arithmetic generators wired
// to rng. pool is the word list for word mode.
func NewBuilder(rng *rand.Rand, pool []string, cfg BatchConfig, words WordConfig, arith ArithmeticConfig, opts ...BuilderOption) *Builder {
	b := &Builder{
		cfg: cfg,
		generators: map[Mode]Generator{
			ModeWord:       NewWords(rng, pool, words),
			ModeArithmetic: NewArithmetic(rng, arith),
		},
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// BatchSize returns the configured default batch size.
func (b *Builder) BatchSize() int {
	return b.cfg.Size
}

// Build generates count questions for mode at stage. Per-question generator
// errors are replaced with Fallback. The context is checked between chunks;
// a cancelled build returns what it has, or ErrGenerationFailure if nothing.
func (b *Builder) Build(ctx context.Context, mode Mode, stage, count int) ([]Question, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	gen, ok := b.generators[mode]
	if !ok {
		return nil, fmt.Errorf("%w: %w %q", ErrGenerationFailure, ErrUnknownMode, mode)
	}
	if count < 1 {
		return nil, fmt.Errorf("%w: count %d", ErrGenerationFailure, count)
	}

	chunk := max(b.cfg.ChunkSize, 1)
	maxAttempts := max(b.cfg.MaxRounds, 1) * count

	used := make(Used)
	out := make([]Question, 0, count)
	for attempts := 0; len(out) < count && attempts < maxAttempts; attempts++ {
		if attempts%chunk == 0 {
			if err := ctx.Err(); err != nil {
				b.logger.Warn("batch build cancelled", "mode", mode, "stage", stage, "built", len(out), "error", err)
				break
			}
		}

		q, err := gen.Generate(stage, used)
		if err != nil {
			b.logger.Debug("question generation failed, using fallback", "mode", mode, "stage", stage, "error", err)
			q = Fallback
		}
		out = append(out, q)
	}

	if len(out) == 0 {
		return nil, fmt.Errorf("%w: %s stage %d produced no questions", ErrGenerationFailure, mode, stage)
	}

	b.logger.Debug("batch built", "mode", mode, "stage", stage, "count", len(out))
	return out, nil
}
