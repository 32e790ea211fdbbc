package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/stagequiz/internal/core"
	"github.com/vovakirdan/stagequiz/internal/session"
)

// KeyMap defines the key bindings for every quiz screen.
type KeyMap struct {
	Up        key.Binding
	Down      key.Binding
	Select    key.Binding
	Submit    key.Binding
	Hint      key.Binding
	Retry     key.Binding
	Back      key.Binding
	Quit      key.Binding
	ForceQuit key.Binding
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "select"),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "submit"),
		),
		Hint: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "hint"),
		),
		Retry: key.NewBinding(
			key.WithKeys("r", "enter"),
			key.WithHelp("r", "retry"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "menu"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}

// screenKeys narrows a KeyMap to the bindings of one phase for the help view.
type screenKeys struct {
	keys  KeyMap
	phase session.Phase
}

// ShortHelp returns key bindings for the short help view.
func (s screenKeys) ShortHelp() []key.Binding {
	k := s.keys
	switch s.phase {
	case session.PhaseModeSelect:
		return []key.Binding{k.Up, k.Down, k.Select, k.Quit}
	case session.PhaseLoading:
		return []key.Binding{k.Back, k.ForceQuit}
	case session.PhaseActive:
		return []key.Binding{k.Submit, k.Hint, k.Back, k.ForceQuit}
	case session.PhaseError:
		return []key.Binding{k.Retry, k.Back, k.Quit}
	}
	return nil
}

// FullHelp returns key bindings for the full help view.
func (s screenKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{s.ShortHelp()}
}

// KeyMapper translates Bubble Tea key messages to quiz actions.
// Which keys are live depends on the session phase: while answering,
// letters belong to the text input.
type KeyMapper struct {
	keys KeyMap
}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{keys: DefaultKeyMap()}
}

// Keys returns the bindings in use.
func (km *KeyMapper) Keys() KeyMap {
	return km.keys
}

// MapKey translates a key message to an action for the given phase.
func (km *KeyMapper) MapKey(msg tea.KeyMsg, phase session.Phase) core.Action {
	k := km.keys

	// Global quit key
	if key.Matches(msg, k.ForceQuit) {
		return core.ActionQuit
	}

	switch phase {
	case session.PhaseModeSelect:
		switch {
		case key.Matches(msg, k.Quit):
			return core.ActionQuit
		case key.Matches(msg, k.Up):
			return core.ActionUp
		case key.Matches(msg, k.Down):
			return core.ActionDown
		case key.Matches(msg, k.Select):
			return core.ActionConfirm
		}

	case session.PhaseLoading:
		if key.Matches(msg, k.Back) {
			return core.ActionBack
		}

	case session.PhaseActive:
		switch {
		case key.Matches(msg, k.Submit):
			return core.ActionSubmit
		case key.Matches(msg, k.Hint):
			return core.ActionHint
		case key.Matches(msg, k.Back):
			return core.ActionBack
		}

	case session.PhaseError:
		switch {
		case key.Matches(msg, k.Quit):
			return core.ActionQuit
		case key.Matches(msg, k.Retry):
			return core.ActionRetry
		case key.Matches(msg, k.Back):
			return core.ActionBack
		}
	}

	return core.ActionNone
}
