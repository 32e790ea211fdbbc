package tui

import (
	"fmt"
	"math/rand"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/stagequiz/internal/quiz"
)

// Word browser layout constants
const (
	minWidthForSidebar = 60 // Minimum width to show the length sidebar
	sidebarWidth       = 16 // Width of the length sidebar
)

// WordListKeyMap defines the key bindings for the word browser.
type WordListKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	NextLen key.Binding
	PrevLen key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k WordListKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextLen, k.PrevLen, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k WordListKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextLen, k.PrevLen},
		{k.Quit},
	}
}

// DefaultWordListKeyMap returns default key bindings.
func DefaultWordListKeyMap() WordListKeyMap {
	return WordListKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		NextLen: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab", "longer"),
		),
		PrevLen: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab", "shorter"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// WordListModel browses a word pool grouped by length, showing each word
// next to a sample scramble.
type WordListModel struct {
	groups    map[int][]string
	lengths   []int
	lenCursor int
	scrambler *rand.Rand
	table     table.Model
	help      help.Model
	keys      WordListKeyMap
	width     int
	height    int
	quitting  bool
}

// NewWordListModel creates a browser over words.
func NewWordListModel(words []string, seed int64, width, height int) WordListModel {
	groups := make(map[int][]string)
	for _, w := range words {
		n := len([]rune(w))
		groups[n] = append(groups[n], w)
	}
	lengths := make([]int, 0, len(groups))
	for n := range groups {
		lengths = append(lengths, n)
	}
	slices.Sort(lengths)

	m := WordListModel{
		groups:    groups,
		lengths:   lengths,
		scrambler: rand.New(rand.NewSource(seed)),
		keys:      DefaultWordListKeyMap(),
		help:      help.New(),
		width:     width,
		height:    height,
	}
	m.table = m.createTable()
	m.updateTableRows()
	return m
}

// createTable creates a new table sized to the window.
func (m *WordListModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "#", Width: 5},
		{Title: "Word", Width: 14},
		{Title: "Scrambled", Width: 14},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-8, 3)), // Leave room for header and help
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// updateTableRows fills the table with the selected length group.
func (m *WordListModel) updateTableRows() {
	words := m.currentWords()
	rows := make([]table.Row, len(words))
	for i, w := range words {
		upper := strings.ToUpper(w)
		rows[i] = table.Row{
			fmt.Sprintf("%d", i+1),
			upper,
			quiz.Shuffle(m.scrambler, upper),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

func (m WordListModel) currentWords() []string {
	if len(m.lengths) == 0 {
		return nil
	}
	return m.groups[m.lengths[m.lenCursor]]
}

// Init initializes the browser.
func (m WordListModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the browser.
func (m WordListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.NextLen):
			if len(m.lengths) > 0 {
				m.lenCursor = (m.lenCursor + 1) % len(m.lengths)
				m.updateTableRows()
			}
			return m, nil

		case key.Matches(msg, m.keys.PrevLen):
			if len(m.lengths) > 0 {
				m.lenCursor--
				if m.lenCursor < 0 {
					m.lenCursor = len(m.lengths) - 1
				}
				m.updateTableRows()
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	// Pass other messages to table
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the browser.
func (m WordListModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	title := "WORD POOL"
	if len(m.lengths) > 0 {
		title = fmt.Sprintf("WORD POOL - %d letters (%d words)", m.lengths[m.lenCursor], len(m.currentWords()))
	}
	b.WriteString(titleStyle.Render(centerText(title, m.width)))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	tableRendered := tableStyle.Render(m.renderTableContent())

	if m.width >= minWidthForSidebar {
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, m.renderSidebar(), "  ", tableRendered))
	} else {
		b.WriteString(centerBlock(tableRendered, m.width))
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderSidebar lists the available word lengths.
func (m WordListModel) renderSidebar() string {
	sidebarStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Width(sidebarWidth).
		Padding(0, 1)

	var sidebar strings.Builder
	sidebar.WriteString("Lengths\n")
	sidebar.WriteString(strings.Repeat("-", sidebarWidth-4))
	sidebar.WriteString("\n")

	for i, n := range m.lengths {
		cursor := "  "
		style := lipgloss.NewStyle()
		if i == m.lenCursor {
			cursor = "> "
			style = selectedStyle
		}
		sidebar.WriteString(style.Render(fmt.Sprintf("%s%d (%d)", cursor, n, len(m.groups[n]))))
		sidebar.WriteString("\n")
	}

	return sidebarStyle.Render(sidebar.String())
}

// renderTableContent renders the table or empty message.
func (m WordListModel) renderTableContent() string {
	if len(m.lengths) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		return emptyStyle.Render("The word pool is empty.")
	}

	return m.table.View()
}

// RunWordList runs the word browser until the user quits.
func RunWordList(words []string, seed int64, width, height int) error {
	p := tea.NewProgram(
		NewWordListModel(words, seed, width, height),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
