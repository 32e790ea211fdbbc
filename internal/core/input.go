// Package core holds platform-neutral types shared by the CLI and the
// terminal front end.
package core

// Action represents a semantic player action, abstracted from physical key presses.
// This allows screens to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // Up arrow, k - move menu cursor up
	ActionDown           // Down arrow, j - move menu cursor down
	ActionConfirm        // Enter on a menu - select
	ActionSubmit         // Enter while playing - submit the typed answer
	ActionHint           // Tab - reveal a hint
	ActionRetry          // R on the error screen - rebuild the batch
	ActionBack           // Esc - return to the mode menu
	ActionQuit           // Ctrl+C anywhere, Q on menus - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionConfirm:
		return "Confirm"
	case ActionSubmit:
		return "Submit"
	case ActionHint:
		return "Hint"
	case ActionRetry:
		return "Retry"
	case ActionBack:
		return "Back"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}
