package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/stagequiz/internal/session"
)

// Styles shared by every screen.
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229"))
	itemStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("250"))
	selectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	accentStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
	statusStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	promptStyle   = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15")).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 3)
	correctStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	wrongStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	hintStyle    = lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("11"))
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("208"))
	helpStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// timerWarning is the remaining time at which the clock turns red.
const timerWarning = 10

// View renders the current screen.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	snap := m.session.Snapshot()
	width := m.config.ScreenW

	var body string
	switch snap.Phase {
	case session.PhaseModeSelect:
		body = m.menu.view(width)
	case session.PhaseLoading:
		body = m.loadingView(snap, width)
	case session.PhaseActive:
		body = m.activeView(snap, width)
	case session.PhaseError:
		body = errorView(snap, width)
	}

	var b strings.Builder
	b.WriteString(body)
	b.WriteString("\n")
	b.WriteString(centerText(helpStyle.Render(m.help.View(screenKeys{keys: m.keyMapper.Keys(), phase: snap.Phase})), width))
	b.WriteString("\n")
	return b.String()
}

func (m Model) loadingView(snap session.Snapshot, width int) string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render(snap.Mode.Title()), width))
	b.WriteString("\n\n")
	if snap.Message != "" {
		b.WriteString(centerText(accentStyle.Render(snap.Message), width))
		b.WriteString("\n\n")
	}
	line := fmt.Sprintf("%s Preparing stage %d...", m.spinner.View(), snap.Stage)
	b.WriteString(centerText(line, width))
	b.WriteString("\n")

	return b.String()
}

func (m Model) activeView(snap session.Snapshot, width int) string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render(snap.Mode.Title()), width))
	b.WriteString("\n\n")

	timer := statusStyle.Render(formatClock(snap.TimeRemaining))
	if snap.TimeRemaining <= timerWarning {
		timer = wrongStyle.Render(formatClock(snap.TimeRemaining))
	}
	status := statusStyle.Render(fmt.Sprintf("Stage %d  |  Score %d  |  Time ", snap.Stage, snap.Score)) + timer
	b.WriteString(centerText(status, width))
	b.WriteString("\n\n")

	b.WriteString(centerText(m.progress.ViewAs(stageProgress(snap)), width))
	b.WriteString("\n")
	counter := fmt.Sprintf("Question %d of %d", snap.QuestionIndex+1, snap.TotalQuestions)
	b.WriteString(centerText(statusStyle.Render(counter), width))
	b.WriteString("\n\n")

	b.WriteString(centerBlock(promptStyle.Render(snap.Prompt), width))
	b.WriteString("\n\n")
	b.WriteString(centerText(m.input.View(), width))
	b.WriteString("\n\n")

	if snap.Message != "" {
		style := wrongStyle
		if snap.LastCorrect {
			style = correctStyle
		}
		b.WriteString(centerText(style.Render(snap.Message), width))
		b.WriteString("\n")
	}
	if snap.Hint != "" {
		b.WriteString(centerText(hintStyle.Render("Hint: "+snap.Hint), width))
		b.WriteString("\n")
	}

	return b.String()
}

func errorView(snap session.Snapshot, width int) string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(wrongStyle.Render("Could not prepare questions"), width))
	b.WriteString("\n\n")
	if snap.Err != nil {
		b.WriteString(centerText(warnStyle.Render(snap.Err.Error()), width))
		b.WriteString("\n\n")
	}
	b.WriteString(centerText(fmt.Sprintf("Stage %d  |  Score %d", snap.Stage, snap.Score), width))
	b.WriteString("\n")

	return b.String()
}

// stageProgress returns the fraction of the batch reached, counting the
// current question once it has been scored.
func stageProgress(snap session.Snapshot) float64 {
	if snap.TotalQuestions == 0 {
		return 0
	}
	done := snap.QuestionIndex
	if snap.Pending {
		done++
	}
	return float64(done) / float64(snap.TotalQuestions)
}

// formatClock renders seconds as m:ss.
func formatClock(seconds int) string {
	seconds = max(seconds, 0)
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}

// progressWidth sizes the stage bar for a screen width.
func progressWidth(screenW int) int {
	return min(max(screenW-20, 10), 50)
}

// centerText centers a single line within given width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	padding := (width - w) / 2
	return strings.Repeat(" ", padding) + text
}

// centerBlock centers a multi-line block within given width.
func centerBlock(block string, width int) string {
	lines := strings.Split(block, "\n")
	for i, line := range lines {
		lines[i] = centerText(line, width)
	}
	return strings.Join(lines, "\n")
}
