package session

import (
	"time"

	"github.com/vovakirdan/stagequiz/internal/quiz"
)

// Effect is work a transition asks the platform to perform. The session
// never sleeps or spawns goroutines itself; the platform turns effects into
// timers and background commands and feeds the results back as events.
type Effect interface {
	effect()
}

// BuildBatch requests a question batch. Report the outcome with
// BatchReady or BatchFailed using the same Request.
type BuildBatch struct {
	Mode    quiz.Mode
	Stage   int
	Count   int
	Request uint64
}

// ScheduleTick requests a Tick(Epoch) after one second.
type ScheduleTick struct {
	Epoch uint64
}

// ScheduleAdvance requests an Advance(Epoch) after Delay.
type ScheduleAdvance struct {
	Epoch uint64
	Delay time.Duration
}

func (BuildBatch) effect()      {}
func (ScheduleTick) effect()    {}
func (ScheduleAdvance) effect() {}
