// Package uithread is the boundary every external event crosses before it
// touches a model. Models, mediators and views are only ever used from the
// goroutine that drains a Runner.
package uithread

import (
	"sort"
	"time"
)

// Task is a unit of work posted to a Runner.
type Task struct {
	fn        func()
	due       time.Duration
	seq       int
	cancelled bool
	stop      func() bool
}

// Cancel prevents the task from running if it has not run yet.
// Must be called on the UI thread.
func (t *Task) Cancel() {
	if t == nil {
		return
	}
	t.cancelled = true
	if t.stop != nil {
		t.stop()
	}
}

// Cancelled reports whether Cancel was called.
func (t *Task) Cancelled() bool {
	return t != nil && t.cancelled
}

func (t *Task) run() {
	if t.cancelled {
		return
	}
	t.fn()
}

// Runner schedules work onto the UI thread.
type Runner interface {
	// Post runs fn on the UI thread after all previously posted work.
	Post(fn func()) *Task
	// PostDelayed runs fn on the UI thread no earlier than d from now.
	PostDelayed(d time.Duration, fn func()) *Task
}

// ManualRunner is a Runner driven by a fake clock. Nothing runs until
// RunUntilIdle or Advance is called, which makes it suitable for tests and
// scripted scenarios.
type ManualRunner struct {
	now   time.Duration
	seq   int
	queue []*Task
}

// NewManualRunner returns a runner whose clock starts at zero.
func NewManualRunner() *ManualRunner {
	return &ManualRunner{}
}

// Post queues fn for the current instant.
func (r *ManualRunner) Post(fn func()) *Task {
	return r.PostDelayed(0, fn)
}

// PostDelayed queues fn at now+d.
func (r *ManualRunner) PostDelayed(d time.Duration, fn func()) *Task {
	if d < 0 {
		d = 0
	}
	r.seq++
	t := &Task{fn: fn, due: r.now + d, seq: r.seq}
	r.queue = append(r.queue, t)
	return t
}

// Now returns the fake clock's current offset.
func (r *ManualRunner) Now() time.Duration {
	return r.now
}

// Pending returns the number of queued tasks that have not been cancelled.
func (r *ManualRunner) Pending() int {
	n := 0
	for _, t := range r.queue {
		if !t.cancelled {
			n++
		}
	}
	return n
}

// RunUntilIdle runs every task due at the current instant, including tasks
// those tasks post for the same instant. Returns the number of tasks run.
func (r *ManualRunner) RunUntilIdle() int {
	return r.runUntil(r.now)
}

// Advance moves the clock forward by d, running due tasks in time order.
// Returns the number of tasks run.
func (r *ManualRunner) Advance(d time.Duration) int {
	target := r.now + d
	n := r.runUntil(target)
	r.now = target
	return n
}

func (r *ManualRunner) runUntil(deadline time.Duration) int {
	ran := 0
	for {
		t := r.next(deadline)
		if t == nil {
			return ran
		}
		if t.due > r.now {
			r.now = t.due
		}
		if !t.cancelled {
			t.run()
			ran++
		}
	}
}

// next pops the earliest task due at or before deadline.
func (r *ManualRunner) next(deadline time.Duration) *Task {
	if len(r.queue) == 0 {
		return nil
	}
	sort.SliceStable(r.queue, func(i, j int) bool {
		if r.queue[i].due != r.queue[j].due {
			return r.queue[i].due < r.queue[j].due
		}
		return r.queue[i].seq < r.queue[j].seq
	})
	t := r.queue[0]
	if t.due > deadline {
		return nil
	}
	r.queue = r.queue[1:]
	return t
}
