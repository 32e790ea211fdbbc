// Package tui provides the Bubble Tea front end for the quiz.
// It maps keys to session operations and turns session effects into commands.
package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/stagequiz/internal/quiz"
	"github.com/vovakirdan/stagequiz/internal/session"
)

// buildTimeout bounds a single batch build.
const buildTimeout = 10 * time.Second

// TickMsg counts down one second of the question started at Epoch.
type TickMsg struct {
	Epoch uint64
}

// AdvanceMsg ends the result pause scheduled at Epoch.
type AdvanceMsg struct {
	Epoch uint64
}

// BatchMsg carries the outcome of a batch build.
type BatchMsg struct {
	Request   uint64
	Questions []quiz.Question
	Err       error
}

// tickCmd returns a command that sends a TickMsg after one second.
func tickCmd(epoch uint64) tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		return TickMsg{Epoch: epoch}
	})
}

// advanceCmd returns a command that sends an AdvanceMsg after delay.
func advanceCmd(epoch uint64, delay time.Duration) tea.Cmd {
	return tea.Tick(delay, func(time.Time) tea.Msg {
		return AdvanceMsg{Epoch: epoch}
	})
}

// buildCmd runs the builder off the UI loop.
func buildCmd(b *quiz.Builder, req session.BuildBatch) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), buildTimeout)
		defer cancel()

		questions, err := b.Build(ctx, req.Mode, req.Stage, req.Count)
		return BatchMsg{Request: req.Request, Questions: questions, Err: err}
	}
}
