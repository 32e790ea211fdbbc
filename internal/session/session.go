// Package session implements the quiz game state machine: mode selection,
// batch loading, per-question timing, scoring and stage progression.
//
// All transitions are synchronous methods that return the effects the
// platform must schedule. Timer and build results come back tagged with an
// epoch or request id; anything stale is ignored, which is how pending
// timers are cancelled.
package session

import (
	"fmt"
	"time"

	"github.com/vovakirdan/stagequiz/internal/quiz"
)

// Phase is the top-level state of a session.
type Phase int

const (
	PhaseModeSelect Phase = iota
	PhaseLoading
	PhaseActive
	PhaseError
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseModeSelect:
		return "mode_select"
	case PhaseLoading:
		return "loading"
	case PhaseActive:
		return "active"
	case PhaseError:
		return "error"
	default:
		return "unknown"
	}
}

// Config holds the timing and scoring rules.
type Config struct {
	QuestionTime     int           // seconds per question
	AdvanceDelay     time.Duration // pause after a result before moving on
	BatchSize        int           // questions per stage
	PointsPerCorrect int
}

// DefaultConfig returns the standard rules.
func DefaultConfig() Config {
	return Config{
		QuestionTime:     120,
		AdvanceDelay:     1500 * time.Millisecond,
		BatchSize:        10,
		PointsPerCorrect: 10,
	}
}

// Messages shown to the player.
const (
	msgCorrect         = "Correct! Well done!"
	msgIncorrect       = "Incorrect. The answer was %s"
	msgTimeUp          = "Time's up! The answer was %s"
	msgStage           = "Stage %d!"
	msgMissingQuestion = "Question missing, regenerating..."
	msgNoHint          = "No hint for this one. Work it out!"
)

// Session is the state of one play-through. The zero value is not usable;
// create one with New.
type Session struct {
	cfg Config

	phase     Phase
	mode      quiz.Mode
	stage     int
	score     int
	questions []quiz.Question
	index     int
	remaining int

	message     string
	hint        string
	pending     bool // result shown, advance scheduled
	lastCorrect bool
	err         error

	answered int
	correct  int

	epoch   uint64 // current timer generation
	request uint64 // current batch request
}

// New creates a session at the mode select screen.
func New(cfg Config) *Session {
	return &Session{cfg: cfg, phase: PhaseModeSelect}
}

// Phase returns the current phase.
func (s *Session) Phase() Phase {
	return s.phase
}

// Epoch returns the current timer generation.
func (s *Session) Epoch() uint64 {
	return s.epoch
}

// Request returns the id of the most recent batch request.
func (s *Session) Request() uint64 {
	return s.request
}

// SelectMode starts a new game in mode at stage 1.
func (s *Session) SelectMode(mode quiz.Mode) []Effect {
	if s.phase != PhaseModeSelect {
		return nil
	}

	s.mode = mode
	s.stage = 1
	s.score = 0
	s.answered = 0
	s.correct = 0
	s.message = ""
	return s.load()
}

// BatchReady delivers the questions for request.
func (s *Session) BatchReady(request uint64, questions []quiz.Question) []Effect {
	if s.phase != PhaseLoading || request != s.request {
		return nil
	}
	if len(questions) == 0 {
		return s.BatchFailed(request, fmt.Errorf("%w: empty batch", quiz.ErrGenerationFailure))
	}

	s.questions = questions
	s.index = 0
	s.phase = PhaseActive
	return s.startQuestion()
}

// BatchFailed reports that the build for request failed.
func (s *Session) BatchFailed(request uint64, err error) []Effect {
	if s.phase != PhaseLoading || request != s.request {
		return nil
	}

	s.phase = PhaseError
	s.err = err
	s.questions = nil
	s.epoch++
	return nil
}

// Submit scores a guess for the current question.
func (s *Session) Submit(guess string) []Effect {
	if s.phase != PhaseActive || s.pending {
		return nil
	}
	q, ok := s.current()
	if !ok {
		return s.regenerate()
	}

	s.answered++
	s.lastCorrect = q.Check(guess)
	if s.lastCorrect {
		s.correct++
		s.score += s.cfg.PointsPerCorrect
		s.message = msgCorrect
	} else {
		s.message = fmt.Sprintf(msgIncorrect, q.Answer)
	}
	return s.scheduleAdvance()
}

// Tick counts down one second of the current question.
func (s *Session) Tick(epoch uint64) []Effect {
	if epoch != s.epoch || s.phase != PhaseActive || s.pending {
		return nil
	}
	q, ok := s.current()
	if !ok {
		return s.regenerate()
	}

	s.remaining = max(s.remaining-1, 0)
	if s.remaining > 0 {
		return []Effect{ScheduleTick{Epoch: s.epoch}}
	}

	s.answered++
	s.lastCorrect = false
	s.message = fmt.Sprintf(msgTimeUp, q.Answer)
	return s.scheduleAdvance()
}

// Advance moves past a scored question: to the next one in the batch, or
// to a fresh batch for the next stage after the last.
func (s *Session) Advance(epoch uint64) []Effect {
	if epoch != s.epoch || s.phase != PhaseActive || !s.pending {
		return nil
	}

	s.pending = false
	if s.index+1 < len(s.questions) {
		s.index++
		s.message = ""
		return s.startQuestion()
	}

	s.stage++
	s.message = fmt.Sprintf(msgStage, s.stage)
	return s.load()
}

// Hint reveals the first and last letter of the current word. Arithmetic
// questions get no hint.
func (s *Session) Hint() []Effect {
	if s.phase != PhaseActive || s.pending {
		return nil
	}
	q, ok := s.current()
	if !ok {
		return s.regenerate()
	}

	if s.mode != quiz.ModeWord {
		s.hint = msgNoHint
		return nil
	}
	s.hint = wordHint(q.Answer)
	return nil
}

// Retry restarts the failed mode from stage 1.
func (s *Session) Retry() []Effect {
	if s.phase != PhaseError {
		return nil
	}
	mode := s.mode
	s.BackToMenu()
	return s.SelectMode(mode)
}

// BackToMenu discards the session and returns to mode select. Pending
// timers and builds are invalidated.
func (s *Session) BackToMenu() {
	*s = Session{
		cfg:     s.cfg,
		phase:   PhaseModeSelect,
		epoch:   s.epoch + 1,
		request: s.request + 1,
	}
}

// current returns the active question, or false if the index has fallen
// outside the batch.
func (s *Session) current() (quiz.Question, bool) {
	if s.index < 0 || s.index >= len(s.questions) {
		return quiz.Question{}, false
	}
	return s.questions[s.index], true
}

func (s *Session) load() []Effect {
	s.phase = PhaseLoading
	s.questions = nil
	s.index = 0
	s.remaining = 0
	s.pending = false
	s.hint = ""
	s.err = nil
	s.epoch++
	s.request++
	return []Effect{BuildBatch{
		Mode:    s.mode,
		Stage:   s.stage,
		Count:   s.cfg.BatchSize,
		Request: s.request,
	}}
}

func (s *Session) startQuestion() []Effect {
	s.remaining = s.cfg.QuestionTime
	s.pending = false
	s.hint = ""
	s.epoch++
	return []Effect{ScheduleTick{Epoch: s.epoch}}
}

func (s *Session) scheduleAdvance() []Effect {
	s.pending = true
	s.epoch++
	return []Effect{ScheduleAdvance{Epoch: s.epoch, Delay: s.cfg.AdvanceDelay}}
}

// regenerate recovers from an index outside the batch by reloading the
// current stage.
func (s *Session) regenerate() []Effect {
	effects := s.load()
	s.message = msgMissingQuestion
	return effects
}

func wordHint(word string) string {
	r := []rune(word)
	if len(r) <= 2 {
		return word
	}
	return string(r[0]) + "..." + string(r[len(r)-1])
}
