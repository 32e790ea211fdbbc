package tui

import (
	"io"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/stagequiz/internal/core"
	"github.com/vovakirdan/stagequiz/internal/quiz"
	"github.com/vovakirdan/stagequiz/internal/session"
)

// Options configures a quiz model.
type Options struct {
	Session session.Config
	Runtime core.RuntimeConfig
	Logger  *log.Logger
	// StartMode skips the mode menu when set.
	StartMode quiz.Mode
}

// Model is the Bubble Tea model for one quiz session.
type Model struct {
	session   *session.Session
	builder   *quiz.Builder
	logger    *log.Logger
	config    core.RuntimeConfig
	keyMapper *KeyMapper
	startMode quiz.Mode

	menu     modeMenu
	input    textinput.Model
	spinner  spinner.Model
	progress progress.Model
	help     help.Model
	quitting bool
}

// NewModel creates a new Bubble Tea model that draws questions from builder.
func NewModel(builder *quiz.Builder, opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	input := textinput.New()
	input.Placeholder = "type your answer"
	input.Prompt = "> "
	input.CharLimit = 32
	input.Width = 24
	input.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = accentStyle

	bar := progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage())
	bar.Width = progressWidth(opts.Runtime.ScreenW)

	h := help.New()
	h.Width = opts.Runtime.ScreenW

	return Model{
		session:   session.New(opts.Session),
		builder:   builder,
		logger:    logger,
		config:    opts.Runtime,
		keyMapper: NewKeyMapper(),
		startMode: opts.StartMode,
		menu:      newModeMenu(),
		input:     input,
		spinner:   sp,
		progress:  bar,
		help:      h,
	}
}

// Init starts the session, jumping straight into a game when a mode was given.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{textinput.Blink}
	if m.startMode != "" {
		cmds = append(cmds, m.selectMode(m.startMode))
	}
	return tea.Batch(cmds...)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m, m.run(m.session.Tick(msg.Epoch))

	case AdvanceMsg:
		stage := m.session.Snapshot().Stage
		effects := m.session.Advance(msg.Epoch)
		if effects == nil {
			return m, nil
		}
		m.input.Reset()
		if snap := m.session.Snapshot(); snap.Stage != stage {
			m.logger.Info("stage advanced", "mode", snap.Mode, "stage", snap.Stage, "score", snap.Score)
		}
		return m, m.run(effects)

	case BatchMsg:
		return m.handleBatch(msg)

	case spinner.TickMsg:
		if m.session.Phase() != session.PhaseLoading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	phase := m.session.Phase()
	action := m.keyMapper.MapKey(msg, phase)

	switch action {
	case core.ActionQuit:
		m.quitting = true
		m.logger.Info("quit", "phase", phase)
		return m, tea.Quit

	case core.ActionBack:
		m.logger.Info("back to menu", "phase", phase)
		m.session.BackToMenu()
		m.input.Reset()
		return m, nil
	}

	switch phase {
	case session.PhaseModeSelect:
		switch action {
		case core.ActionUp:
			m.menu.up()
		case core.ActionDown:
			m.menu.down()
		case core.ActionConfirm:
			return m, m.selectMode(m.menu.selected())
		default:
			if mode, ok := m.menu.shortcut(msg.String()); ok {
				return m, m.selectMode(mode)
			}
		}
		return m, nil

	case session.PhaseActive:
		switch action {
		case core.ActionSubmit:
			return m.submit()
		case core.ActionHint:
			m.session.Hint()
			return m, nil
		}
		if m.session.Snapshot().Pending {
			return m, nil
		}
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd

	case session.PhaseError:
		if action == core.ActionRetry {
			m.logger.Info("retry", "mode", m.session.Snapshot().Mode)
			return m, m.run(m.session.Retry())
		}
	}

	return m, nil
}

func (m Model) submit() (tea.Model, tea.Cmd) {
	guess := m.input.Value()
	effects := m.session.Submit(guess)
	if effects == nil {
		return m, nil
	}

	snap := m.session.Snapshot()
	m.logger.Debug("answer submitted", "stage", snap.Stage, "question", snap.QuestionIndex+1, "correct", snap.LastCorrect)
	return m, m.run(effects)
}

func (m Model) handleBatch(msg BatchMsg) (tea.Model, tea.Cmd) {
	if msg.Request != m.session.Request() {
		m.logger.Debug("stale batch dropped", "request", msg.Request, "current", m.session.Request())
		return m, nil
	}

	if msg.Err != nil {
		m.logger.Warn("batch failed", "request", msg.Request, "err", msg.Err)
		return m, m.run(m.session.BatchFailed(msg.Request, msg.Err))
	}

	m.logger.Debug("batch ready", "request", msg.Request, "questions", len(msg.Questions))
	effects := m.session.BatchReady(msg.Request, msg.Questions)
	m.input.Reset()
	return m, m.run(effects)
}

// handleResize adapts the layout to a new terminal size.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.progress.Width = progressWidth(msg.Width)
	m.help.Width = msg.Width
	return m, nil
}

func (m Model) selectMode(mode quiz.Mode) tea.Cmd {
	m.logger.Info("mode selected", "mode", mode)
	return m.run(m.session.SelectMode(mode))
}

// run turns session effects into commands.
func (m Model) run(effects []session.Effect) tea.Cmd {
	cmds := make([]tea.Cmd, 0, len(effects)+1)
	for _, e := range effects {
		switch e := e.(type) {
		case session.BuildBatch:
			m.logger.Debug("building batch", "mode", e.Mode, "stage", e.Stage, "count", e.Count, "request", e.Request)
			cmds = append(cmds, buildCmd(m.builder, e), m.spinner.Tick)
		case session.ScheduleTick:
			cmds = append(cmds, tickCmd(e.Epoch))
		case session.ScheduleAdvance:
			cmds = append(cmds, advanceCmd(e.Epoch, e.Delay))
		}
	}
	return tea.Batch(cmds...)
}

// Snapshot returns the current session state.
func (m Model) Snapshot() session.Snapshot {
	return m.session.Snapshot()
}

// IsQuitting returns true if the user requested to quit.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// Run starts the quiz in the terminal and blocks until it exits.
func Run(builder *quiz.Builder, opts Options) error {
	p := tea.NewProgram(
		NewModel(builder, opts),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return err
	}

	if m, ok := finalModel.(Model); ok {
		snap := m.Snapshot()
		m.logger.Info("session ended", "stage", snap.Stage, "score", snap.Score,
			"answered", snap.Answered, "correct", snap.Correct)
	}
	return nil
}
