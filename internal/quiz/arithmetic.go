package quiz

import (
	"fmt"
	"math/rand"
	"strconv"
)

// ArithmeticConfig controls how problems scale with stage.
type ArithmeticConfig struct {
	MaxLevel     int // stages above this play at MaxLevel
	MultiplyFrom int // first level offering '*'
	DivideFrom   int // first level offering '/'
}

// DefaultArithmeticConfig returns the standard scaling.
func DefaultArithmeticConfig() ArithmeticConfig {
	return ArithmeticConfig{
		MaxLevel:     10,
		MultiplyFrom: 3,
		DivideFrom:   6,
	}
}

// Arithmetic generates operator-and-operand problems.
type Arithmetic struct {
	rng *rand.Rand
	cfg ArithmeticConfig
}

// NewArithmetic creates an arithmetic generator.
func NewArithmetic(rng *rand.Rand, cfg ArithmeticConfig) *Arithmetic {
	return &Arithmetic{rng: rng, cfg: cfg}
}

// GenerateProblem builds one problem with the default scaling.
func GenerateProblem(rng *rand.Rand, stage int) (Question, error) {
	return NewArithmetic(rng, DefaultArithmeticConfig()).Generate(stage, nil)
}

// Generate implements Generator. The used set is ignored.
func (a *Arithmetic) Generate(stage int, _ Used) (Question, error) {
	if stage < 1 {
		return Question{}, fmt.Errorf("%w: got %d", ErrInvalidStage, stage)
	}

	level := min(stage, a.cfg.MaxLevel)
	lo, hi := OperandRange(level)
	x := lo + a.rng.Intn(hi-lo)
	y := lo + a.rng.Intn(hi-lo)

	ops := a.Operators(level)
	op := ops[a.rng.Intn(len(ops))]

	var answer int
	switch op {
	case '+':
		answer = x + y
	case '-':
		answer = x - y
	case '*':
		answer = x * y
	case '/':
		// y >= lo >= 1, so the dividend is an exact multiple.
		x, answer = x*y, x
	}

	return Question{
		Prompt: fmt.Sprintf("%d %c %d = ?", x, op, y),
		Answer: strconv.Itoa(answer),
	}, nil
}

// OperandRange returns the half-open operand range [lo, hi) for a level.
// lo is at least 1 for every level >= 0.
func OperandRange(level int) (lo, hi int) {
	return 1 + level/2, 5 + level*3
}

// Operators returns the operator pool unlocked at level.
func (a *Arithmetic) Operators(level int) []rune {
	ops := []rune{'+', '-'}
	if level >= a.cfg.MultiplyFrom {
		ops = append(ops, '*')
	}
	if level >= a.cfg.DivideFrom {
		ops = append(ops, '/')
	}
	return ops
}
