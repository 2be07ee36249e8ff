package loadprogress

import (
	"time"

	"github.com/entrhq/modelview/pkg/modelutil"
	"github.com/entrhq/modelview/pkg/uithread"
)

const (
	// ProgressIncrement is the step the simulator adds per tick.
	ProgressIncrement = 0.1

	// DefaultTick is the delay between simulated steps.
	DefaultTick = 10 * time.Millisecond

	simulatedSteps = 10
)

// Simulator fakes a load from 0 to 1 in ProgressIncrement steps, one step
// per tick on the UI runner.
type Simulator struct {
	m      *Mediator
	runner uithread.Runner
	tick   time.Duration
	step   int
	task   *uithread.Task
}

// NewSimulator returns an idle simulator. A non-positive tick uses DefaultTick.
func NewSimulator(m *Mediator, runner uithread.Runner, tick time.Duration) *Simulator {
	if tick <= 0 {
		tick = DefaultTick
	}
	return &Simulator{m: m, runner: runner, tick: tick}
}

// Start resets the bar to empty and schedules the first step. Restarting a
// running simulation begins again from zero.
func (s *Simulator) Start() {
	s.Cancel()
	if s.runner == nil {
		return
	}
	s.step = 0
	modelutil.Set(s.m.model, Completion, Unfinished)
	modelutil.Set(s.m.model, Progress, 0.0)
	s.task = s.runner.PostDelayed(s.tick, s.run)
}

// Cancel stops a running simulation.
func (s *Simulator) Cancel() {
	if s.task != nil {
		s.task.Cancel()
		s.task = nil
	}
}

// Running reports whether a step is scheduled.
func (s *Simulator) Running() bool {
	return s.task != nil
}

func (s *Simulator) run() {
	s.task = nil
	s.step++
	progress := float64(s.step) * ProgressIncrement
	if s.step >= simulatedSteps {
		progress = 1
	}
	// Reaching 1 finishes the load with animation.
	s.m.update(progress)
	if s.step >= simulatedSteps {
		return
	}
	s.task = s.runner.PostDelayed(s.tick, s.run)
}
