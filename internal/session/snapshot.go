package session

import "github.com/vovakirdan/stagequiz/internal/quiz"

// Snapshot is a read-only view of the session for rendering.
type Snapshot struct {
	Phase          Phase
	Mode           quiz.Mode
	Stage          int
	Score          int
	Prompt         string
	QuestionIndex  int // 0-based
	TotalQuestions int
	TimeRemaining  int
	Message        string
	Hint           string
	Loading        bool
	Err            error
	Pending        bool // result shown, waiting to advance
	LastCorrect    bool
	Answered       int
	Correct        int
}

// Snapshot returns the current state.
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		Phase:          s.phase,
		Mode:           s.mode,
		Stage:          s.stage,
		Score:          s.score,
		QuestionIndex:  s.index,
		TotalQuestions: len(s.questions),
		TimeRemaining:  s.remaining,
		Message:        s.message,
		Hint:           s.hint,
		Loading:        s.phase == PhaseLoading,
		Err:            s.err,
		Pending:        s.pending,
		LastCorrect:    s.lastCorrect,
		Answered:       s.answered,
		Correct:        s.correct,
	}
	if q, ok := s.current(); ok {
		snap.Prompt = q.Prompt
	}
	return snap
}
