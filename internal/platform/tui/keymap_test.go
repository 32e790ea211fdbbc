package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/stagequiz/internal/core"
	"github.com/vovakirdan/stagequiz/internal/session"
)

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name  string
		msg   tea.KeyMsg
		phase session.Phase
		want  core.Action
	}{
		{"menu up", tea.KeyMsg{Type: tea.KeyUp}, session.PhaseModeSelect, core.ActionUp},
		{"menu k", runeKey("k"), session.PhaseModeSelect, core.ActionUp},
		{"menu j", runeKey("j"), session.PhaseModeSelect, core.ActionDown},
		{"menu enter", tea.KeyMsg{Type: tea.KeyEnter}, session.PhaseModeSelect, core.ActionConfirm},
		{"menu q", runeKey("q"), session.PhaseModeSelect, core.ActionQuit},
		{"menu digit", runeKey("1"), session.PhaseModeSelect, core.ActionNone},
		{"loading esc", tea.KeyMsg{Type: tea.KeyEsc}, session.PhaseLoading, core.ActionBack},
		{"loading q", runeKey("q"), session.PhaseLoading, core.ActionNone},
		{"active enter", tea.KeyMsg{Type: tea.KeyEnter}, session.PhaseActive, core.ActionSubmit},
		{"active tab", tea.KeyMsg{Type: tea.KeyTab}, session.PhaseActive, core.ActionHint},
		{"active esc", tea.KeyMsg{Type: tea.KeyEsc}, session.PhaseActive, core.ActionBack},
		{"active letters are typing", runeKey("q"), session.PhaseActive, core.ActionNone},
		{"active k is typing", runeKey("k"), session.PhaseActive, core.ActionNone},
		{"error r", runeKey("r"), session.PhaseError, core.ActionRetry},
		{"error esc", tea.KeyMsg{Type: tea.KeyEsc}, session.PhaseError, core.ActionBack},
		{"error q", runeKey("q"), session.PhaseError, core.ActionQuit},
		{"ctrl+c while active", tea.KeyMsg{Type: tea.KeyCtrlC}, session.PhaseActive, core.ActionQuit},
		{"ctrl+c while loading", tea.KeyMsg{Type: tea.KeyCtrlC}, session.PhaseLoading, core.ActionQuit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := km.MapKey(tt.msg, tt.phase); got != tt.want {
				t.Errorf("MapKey(%q, %s) = %s, want %s", tt.msg.String(), tt.phase, got, tt.want)
			}
		})
	}
}

func TestScreenKeysCoverEveryPhase(t *testing.T) {
	keys := DefaultKeyMap()
	for _, phase := range []session.Phase{
		session.PhaseModeSelect,
		session.PhaseLoading,
		session.PhaseActive,
		session.PhaseError,
	} {
		if len(screenKeys{keys: keys, phase: phase}.ShortHelp()) == 0 {
			t.Errorf("no help bindings for %s", phase)
		}
	}
}
