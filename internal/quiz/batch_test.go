package quiz

import (
	"context"
	"errors"
	"math/rand"
	"strings"
	"testing"
	"unicode/utf8"
)

var testPool = []string{
	"cat", "dog", "tree", "house", "planet", "garden", "rocket",
	"library", "elephant", "mountain", "keyboard", "butterfly",
}

func newTestBuilder(seed int64, pool []string, opts ...BuilderOption) *Builder {
	rng := rand.New(rand.NewSource(seed))
	return NewBuilder(rng, pool, DefaultBatchConfig(), DefaultWordConfig(), DefaultArithmeticConfig(), opts...)
}

func TestBuildWordBatch(t *testing.T) {
	b := newTestBuilder(1, testPool)

	qs, err := b.Build(context.Background(), ModeWord, 1, 5)
	if err != nil {
		t.Fatalf("Build() failed: %v", err)
	}
	if len(qs) != 5 {
		t.Fatalf("Build() returned %d questions, want 5", len(qs))
	}

	seen := map[string]bool{}
	for _, q := range qs {
		if q.Answer != strings.ToUpper(q.Answer) {
			t.Errorf("answer %q should be upper-cased", q.Answer)
		}
		if utf8.RuneCountInString(q.Answer) < 4 {
			t.Errorf("answer %q shorter than stage 1 minimum", q.Answer)
		}
		if q.Prompt == q.Answer {
			t.Errorf("prompt %q is not scrambled", q.Prompt)
		}
		if seen[q.Answer] {
			t.Errorf("word %q repeated within batch", q.Answer)
		}
		seen[q.Answer] = true
	}
}

func TestBuildWordMinLengthScalesWithStage(t *testing.T) {
	tests := []struct {
		stage  int
		minLen int
	}{
		{stage: 1, minLen: 4},
		{stage: 2, minLen: 5},
		{stage: 4, minLen: 6},
		{stage: 8, minLen: 8},
		{stage: 20, minLen: 8},
	}

	for _, tt := range tests {
		if got := DefaultWordConfig().MinLength(tt.stage); got != tt.minLen {
			t.Errorf("MinLength(%d) = %d, want %d", tt.stage, got, tt.minLen)
		}

		b := newTestBuilder(int64(tt.stage), testPool)
		qs, err := b.Build(context.Background(), ModeWord, tt.stage, 3)
		if err != nil {
			t.Fatalf("Build(stage %d) failed: %v", tt.stage, err)
		}
		for _, q := range qs {
			if utf8.RuneCountInString(q.Answer) < tt.minLen {
				t.Errorf("stage %d: %q shorter than %d", tt.stage, q.Answer, tt.minLen)
			}
		}
	}
}

func TestBuildWordFallsBackToFullPool(t *testing.T) {
	b := newTestBuilder(5, []string{"ox", "bee", "ant"})

	qs, err := b.Build(context.Background(), ModeWord, 10, 3)
	if err != nil {
		t.Fatalf("Build() failed: %v", err)
	}
	for _, q := range qs {
		if utf8.RuneCountInString(q.Answer) > 3 {
			t.Errorf("unexpected answer %q", q.Answer)
		}
	}
}

func TestBuildWordRecyclesExhaustedPool(t *testing.T) {
	pool := []string{"alpha", "bravo", "delta"}
	b := newTestBuilder(9, pool)

	qs, err := b.Build(context.Background(), ModeWord, 1, 7)
	if err != nil {
		t.Fatalf("Build() failed: %v", err)
	}
	if len(qs) != 7 {
		t.Fatalf("Build() returned %d questions, want 7", len(qs))
	}

	// The first three draws exhaust the pool and must be distinct.
	first := map[string]bool{}
	for _, q := range qs[:3] {
		first[q.Answer] = true
	}
	if len(first) != 3 {
		t.Errorf("first pass repeated a word: %v", qs[:3])
	}
}

func TestBuildArithmeticBatch(t *testing.T) {
	b := newTestBuilder(2, nil)

	qs, err := b.Build(context.Background(), ModeArithmetic, 4, b.BatchSize())
	if err != nil {
		t.Fatalf("Build() failed: %v", err)
	}
	if len(qs) != 10 {
		t.Fatalf("Build() returned %d questions, want 10", len(qs))
	}
	for _, q := range qs {
		if !strings.HasSuffix(q.Prompt, " = ?") {
			t.Errorf("unexpected prompt %q", q.Prompt)
		}
	}
}

// flakyGenerator fails every other call.
type flakyGenerator struct {
	calls int
}

func (g *flakyGenerator) Generate(stage int, _ Used) (Question, error) {
	g.calls++
	if g.calls%2 == 0 {
		return Question{}, errors.New("boom")
	}
	return Question{Prompt: "2 + 2 = ?", Answer: "4"}, nil
}

type failingGenerator struct{}

func (failingGenerator) Generate(int, Used) (Question, error) {
	return Question{}, errors.New("always fails")
}

func TestBuildSubstitutesFallback(t *testing.T) {
	gen := &flakyGenerator{}
	b := newTestBuilder(1, nil, WithGenerator(ModeArithmetic, gen))

	qs, err := b.Build(context.Background(), ModeArithmetic, 1, 10)
	if err != nil {
		t.Fatalf("Build() failed: %v", err)
	}
	if len(qs) != 10 {
		t.Fatalf("Build() returned %d questions, want 10", len(qs))
	}

	fallbacks := 0
	for _, q := range qs {
		if q == Fallback {
			fallbacks++
		}
	}
	if fallbacks != 5 {
		t.Errorf("expected 5 fallback questions, got %d", fallbacks)
	}
}

func TestBuildNeverEmptyWhenGeneratorAlwaysFails(t *testing.T) {
	b := newTestBuilder(1, nil, WithGenerator(ModeWord, failingGenerator{}))

	qs, err := b.Build(context.Background(), ModeWord, 1, 10)
	if err != nil {
		t.Fatalf("Build() failed: %v", err)
	}
	if len(qs) != 10 {
		t.Fatalf("Build() returned %d questions, want 10", len(qs))
	}
	for _, q := range qs {
		if q != Fallback {
			t.Errorf("expected fallback, got %+v", q)
		}
	}
}

func TestBuildEmptyPoolUsesFallback(t *testing.T) {
	b := newTestBuilder(1, nil)

	qs, err := b.Build(context.Background(), ModeWord, 1, 3)
	if err != nil {
		t.Fatalf("Build() failed: %v", err)
	}
	if len(qs) != 3 || qs[0] != Fallback {
		t.Errorf("expected fallback questions, got %v", qs)
	}
}

func TestBuildFailures(t *testing.T) {
	cancelled, cancel := context.WithCancel(context.Background())
	cancel()

	tests := []struct {
		name  string
		ctx   context.Context
		mode  Mode
		count int
	}{
		{name: "cancelled context", ctx: cancelled, mode: ModeArithmetic, count: 10},
		{name: "unknown mode", ctx: context.Background(), mode: Mode("chess"), count: 10},
		{name: "zero count", ctx: context.Background(), mode: ModeArithmetic, count: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newTestBuilder(1, testPool)
			qs, err := b.Build(tt.ctx, tt.mode, 1, tt.count)
			if !errors.Is(err, ErrGenerationFailure) {
				t.Errorf("Build() error = %v, want ErrGenerationFailure", err)
			}
			if len(qs) != 0 {
				t.Errorf("Build() returned %d questions on failure", len(qs))
			}
		})
	}
}

func TestBuildDeterministicForSeed(t *testing.T) {
	b1 := newTestBuilder(42, testPool)
	b2 := newTestBuilder(42, testPool)

	for _, mode := range Modes() {
		q1, err1 := b1.Build(context.Background(), mode, 3, 10)
		q2, err2 := b2.Build(context.Background(), mode, 3, 10)
		if err1 != nil || err2 != nil {
			t.Fatalf("Build() errors: %v, %v", err1, err2)
		}
		for i := range q1 {
			if q1[i] != q2[i] {
				t.Errorf("%s question %d differs: %+v vs %+v", mode, i, q1[i], q2[i])
			}
		}
	}
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		in   string
		want Mode
		ok   bool
	}{
		{"word", ModeWord, true},
		{"English", ModeWord, true},
		{" math ", ModeArithmetic, true},
		{"arithmetic", ModeArithmetic, true},
		{"chess", "", false},
	}
	for _, tt := range tests {
		got, err := ParseMode(tt.in)
		if (err == nil) != tt.ok || got != tt.want {
			t.Errorf("ParseMode(%q) = %q, %v", tt.in, got, err)
		}
		if err != nil && !errors.Is(err, ErrUnknownMode) {
			t.Errorf("ParseMode(%q) error should wrap ErrUnknownMode", tt.in)
		}
	}
}
