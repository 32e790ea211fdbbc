package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/vovakirdan/stagequiz/internal/quiz"
)

// modeMenu is the mode picker shown before a game.
type modeMenu struct {
	modes  []quiz.Mode
	cursor int
}

func newModeMenu() modeMenu {
	return modeMenu{modes: quiz.Modes()}
}

func (m *modeMenu) up() {
	if m.cursor > 0 {
		m.cursor--
	}
}

func (m *modeMenu) down() {
	if m.cursor < len(m.modes)-1 {
		m.cursor++
	}
}

func (m modeMenu) selected() quiz.Mode {
	return m.modes[m.cursor]
}

// shortcut resolves a digit key ("1", "2", ...) to a mode.
func (m modeMenu) shortcut(key string) (quiz.Mode, bool) {
	n, err := strconv.Atoi(key)
	if err != nil || n < 1 || n > len(m.modes) {
		return "", false
	}
	return m.modes[n-1], true
}

func (m modeMenu) view(width int) string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(titleStyle.Render(centerText("  S T A G E   Q U I Z  ", width)))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select game mode", width))
	b.WriteString("\n\n")

	for i, mode := range m.modes {
		cursor := "  "
		style := itemStyle
		if i == m.cursor {
			cursor = "> "
			style = selectedStyle
		}
		line := fmt.Sprintf("%s%d. %s", cursor, i+1, mode.Title())
		b.WriteString(centerText(style.Render(line), width))
		b.WriteString("\n")
	}

	return b.String()
}
