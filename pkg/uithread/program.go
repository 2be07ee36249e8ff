package uithread

import (
	"context"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Sender is the part of *tea.Program the runner needs.
type Sender interface {
	Send(msg tea.Msg)
}

// TaskMsg carries a posted task into a bubbletea program. The program's Update
// must call Run; Update is the UI thread.
type TaskMsg struct {
	task *Task
}

// Run executes the task unless it was cancelled.
func (m TaskMsg) Run() {
	m.task.run()
}

// ProgramRunner posts tasks to a bubbletea program in FIFO order. Post never
// blocks, so it may be called from any goroutine, including from inside Update.
type ProgramRunner struct {
	sender Sender

	mu      sync.Mutex
	queue   []*Task
	stopped bool
	wake    chan struct{}
}

// NewProgramRunner creates a runner for sender. Start must be called before
// posted tasks are delivered.
func NewProgramRunner(sender Sender) *ProgramRunner {
	return &ProgramRunner{
		sender: sender,
		wake:   make(chan struct{}, 1),
	}
}

// Start forwards queued tasks to the program until ctx is done. Tasks posted
// after that are dropped.
func (r *ProgramRunner) Start(ctx context.Context) {
	go func() {
		defer r.stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-r.wake:
			}
			for t := r.next(); t != nil; t = r.next() {
				if ctx.Err() != nil {
					return
				}
				r.sender.Send(TaskMsg{task: t})
			}
		}
	}()
}

// Post queues fn behind all previously posted work.
func (r *ProgramRunner) Post(fn func()) *Task {
	t := &Task{fn: fn}
	r.enqueue(t)
	return t
}

// PostDelayed queues fn once d has elapsed.
func (r *ProgramRunner) PostDelayed(d time.Duration, fn func()) *Task {
	t := &Task{fn: fn, due: d}
	timer := time.AfterFunc(d, func() { r.enqueue(t) })
	t.stop = timer.Stop
	return t
}

// Pending returns the number of tasks waiting to be forwarded.
func (r *ProgramRunner) Pending() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.queue)
}

func (r *ProgramRunner) enqueue(t *Task) {
	r.mu.Lock()
	if r.stopped {
		r.mu.Unlock()
		return
	}
	r.queue = append(r.queue, t)
	r.mu.Unlock()

	select {
	case r.wake <- struct{}{}:
	default:
	}
}

func (r *ProgramRunner) next() *Task {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.queue) == 0 {
		return nil
	}
	t := r.queue[0]
	r.queue[0] = nil
	r.queue = r.queue[1:]
	return t
}

func (r *ProgramRunner) stop() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.stopped = true
	r.queue = nil
}
