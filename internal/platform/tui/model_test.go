package tui

import (
	"context"
	"errors"
	"math/rand"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/stagequiz/internal/core"
	"github.com/vovakirdan/stagequiz/internal/quiz"
	"github.com/vovakirdan/stagequiz/internal/session"
)

func newTestModel(t *testing.T) (Model, *quiz.Builder) {
	t.Helper()

	builder := quiz.NewBuilder(
		rand.New(rand.NewSource(7)),
		[]string{"planet", "rocket", "garden", "bridge", "winter"},
		quiz.DefaultBatchConfig(),
		quiz.DefaultWordConfig(),
		quiz.DefaultArithmeticConfig(),
	)

	cfg := session.DefaultConfig()
	cfg.AdvanceDelay = time.Millisecond

	m := NewModel(builder, Options{Session: cfg, Runtime: core.DefaultConfig()})
	return m, builder
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want Model", next)
	}
	return nm, cmd
}

// startGame selects a mode with a digit key and delivers a freshly built batch.
func startGame(t *testing.T, m Model, builder *quiz.Builder, digit string) (Model, []quiz.Question) {
	t.Helper()

	m, _ = update(t, m, runeKey(digit))
	if m.session.Phase() != session.PhaseLoading {
		t.Fatalf("expected loading after selecting a mode, got %s", m.session.Phase())
	}

	snap := m.Snapshot()
	questions, err := builder.Build(context.Background(), snap.Mode, snap.Stage, 10)
	if err != nil {
		t.Fatalf("Build() failed: %v", err)
	}

	m, _ = update(t, m, BatchMsg{Request: m.session.Request(), Questions: questions})
	if m.session.Phase() != session.PhaseActive {
		t.Fatalf("expected active after batch, got %s", m.session.Phase())
	}
	return m, questions
}

func TestModelCorrectAnswerFlow(t *testing.T) {
	m, builder := newTestModel(t)
	m, questions := startGame(t, m, builder, "2")

	if got := m.Snapshot().Mode; got != quiz.ModeArithmetic {
		t.Fatalf("digit 2 should pick arithmetic, got %s", got)
	}

	m.input.SetValue(" " + questions[0].Answer + " ")
	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("submit should schedule an advance")
	}

	snap := m.Snapshot()
	if snap.Score != 10 || !snap.Pending || !snap.LastCorrect {
		t.Fatalf("unexpected state after correct answer: %+v", snap)
	}

	m, _ = update(t, m, AdvanceMsg{Epoch: m.session.Epoch()})
	snap = m.Snapshot()
	if snap.QuestionIndex != 1 || snap.Pending {
		t.Errorf("expected second question, got index %d pending %v", snap.QuestionIndex, snap.Pending)
	}
	if m.input.Value() != "" {
		t.Errorf("input should be cleared on advance, got %q", m.input.Value())
	}
}

func TestModelTypingGoesToInput(t *testing.T) {
	m, builder := newTestModel(t)
	m, _ = startGame(t, m, builder, "1")

	for _, r := range "qk" {
		m, _ = update(t, m, runeKey(string(r)))
	}

	if m.IsQuitting() {
		t.Fatal("q while answering must not quit")
	}
	if got := m.input.Value(); got != "qk" {
		t.Errorf("input = %q, want %q", got, "qk")
	}
}

func TestModelIgnoresStaleMessages(t *testing.T) {
	m, builder := newTestModel(t)
	m, _ = startGame(t, m, builder, "1")

	before := m.Snapshot()
	m, _ = update(t, m, TickMsg{Epoch: m.session.Epoch() - 1})
	m, _ = update(t, m, AdvanceMsg{Epoch: m.session.Epoch()})
	m, _ = update(t, m, BatchMsg{Request: m.session.Request() - 1, Err: errors.New("late")})

	after := m.Snapshot()
	if after.TimeRemaining != before.TimeRemaining || after.Phase != session.PhaseActive || after.QuestionIndex != 0 {
		t.Errorf("stale messages changed state: before %+v after %+v", before, after)
	}

	m, _ = update(t, m, TickMsg{Epoch: m.session.Epoch()})
	if got := m.Snapshot().TimeRemaining; got != before.TimeRemaining-1 {
		t.Errorf("current tick should count down, got %d", got)
	}
}

func TestModelBatchFailureAndRetry(t *testing.T) {
	m, _ := newTestModel(t)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m, _ = update(t, m, BatchMsg{Request: m.session.Request(), Err: quiz.ErrGenerationFailure})
	if m.session.Phase() != session.PhaseError {
		t.Fatalf("expected error phase, got %s", m.session.Phase())
	}
	if !strings.Contains(m.View(), "Could not prepare questions") {
		t.Error("error screen not rendered")
	}

	request := m.session.Request()
	m, cmd := update(t, m, runeKey("r"))
	if m.session.Phase() != session.PhaseLoading || m.session.Request() == request || cmd == nil {
		t.Errorf("retry should start a new build, phase %s", m.session.Phase())
	}
}

func TestModelBackToMenu(t *testing.T) {
	m, builder := newTestModel(t)
	m, _ = startGame(t, m, builder, "1")

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	snap := m.Snapshot()
	if snap.Phase != session.PhaseModeSelect || snap.Score != 0 || snap.Stage != 0 {
		t.Errorf("expected a clean menu, got %+v", snap)
	}
}

func TestModelMenuNavigation(t *testing.T) {
	m, _ := newTestModel(t)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	if got := m.Snapshot().Mode; got != quiz.ModeArithmetic {
		t.Errorf("cursor should stop on the last mode, got %s", got)
	}
}

func TestModelHint(t *testing.T) {
	m, builder := newTestModel(t)
	m, questions := startGame(t, m, builder, "1")

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	answer := []rune(questions[0].Answer)
	want := string(answer[0]) + "..." + string(answer[len(answer)-1])
	if got := m.Snapshot().Hint; got != want {
		t.Errorf("hint = %q, want %q", got, want)
	}
	if !strings.Contains(m.View(), "Hint: "+want) {
		t.Error("hint not rendered")
	}
}

func TestModelQuit(t *testing.T) {
	m, _ := newTestModel(t)
	m, cmd := update(t, m, runeKey("q"))
	if !m.IsQuitting() || cmd == nil {
		t.Error("q on the menu should quit")
	}
	if m.View() != "" {
		t.Error("view should be empty after quitting")
	}
}

func TestActiveViewShowsQuestion(t *testing.T) {
	m, builder := newTestModel(t)
	m, questions := startGame(t, m, builder, "1")

	view := m.View()
	for _, want := range []string{"Stage 1", "Score 0", "2:00", "Question 1 of 10", questions[0].Prompt} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestBuildCmdCarriesRequest(t *testing.T) {
	_, builder := newTestModel(t)
	msg := buildCmd(builder, session.BuildBatch{Mode: quiz.ModeArithmetic, Stage: 3, Count: 4, Request: 9})()

	batch, ok := msg.(BatchMsg)
	if !ok {
		t.Fatalf("buildCmd produced %T", msg)
	}
	if batch.Request != 9 || batch.Err != nil || len(batch.Questions) != 4 {
		t.Errorf("unexpected batch %+v", batch)
	}
}

func TestFormatClock(t *testing.T) {
	tests := map[int]string{120: "2:00", 61: "1:01", 9: "0:09", 0: "0:00", -3: "0:00"}
	for in, want := range tests {
		if got := formatClock(in); got != want {
			t.Errorf("formatClock(%d) = %q, want %q", in, got, want)
		}
	}
}

func TestWordListSwitchesLength(t *testing.T) {
	m := NewWordListModel([]string{"cat", "dog", "apple"}, 1, 80, 24)
	if !strings.Contains(m.View(), "3 letters (2 words)") {
		t.Fatalf("expected shortest group first:\n%s", m.View())
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(WordListModel)
	if !strings.Contains(m.View(), "5 letters (1 words)") {
		t.Errorf("tab should move to the next length:\n%s", m.View())
	}
}
