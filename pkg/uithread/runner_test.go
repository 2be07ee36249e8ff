package uithread

import (
	"context"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManualRunner_PostRunsInOrder(t *testing.T) {
	r := NewManualRunner()
	var order []int
	r.Post(func() { order = append(order, 1) })
	r.Post(func() {
		order = append(order, 2)
		r.Post(func() { order = append(order, 4) })
	})
	r.Post(func() { order = append(order, 3) })

	assert.Empty(t, order, "nothing runs before the runner is drained")
	assert.Equal(t, 4, r.RunUntilIdle())
	assert.Equal(t, []int{1, 2, 3, 4}, order)
	assert.Equal(t, 0, r.Pending())
}

func TestManualRunner_Delayed(t *testing.T) {
	r := NewManualRunner()
	var order []string
	r.PostDelayed(20*time.Millisecond, func() { order = append(order, "20ms") })
	r.PostDelayed(10*time.Millisecond, func() { order = append(order, "10ms") })
	r.Post(func() { order = append(order, "now") })

	r.RunUntilIdle()
	assert.Equal(t, []string{"now"}, order)

	r.Advance(15 * time.Millisecond)
	assert.Equal(t, []string{"now", "10ms"}, order)
	assert.Equal(t, 15*time.Millisecond, r.Now())

	r.Advance(5 * time.Millisecond)
	assert.Equal(t, []string{"now", "10ms", "20ms"}, order)
}

func TestManualRunner_ChainedDelays(t *testing.T) {
	r := NewManualRunner()
	ticks := 0
	var tick func()
	tick = func() {
		ticks++
		if ticks < 5 {
			r.PostDelayed(10*time.Millisecond, tick)
		}
	}
	r.PostDelayed(10*time.Millisecond, tick)

	r.Advance(100 * time.Millisecond)
	assert.Equal(t, 5, ticks)
}

func TestManualRunner_Cancel(t *testing.T) {
	r := NewManualRunner()
	ran := false
	task := r.PostDelayed(time.Millisecond, func() { ran = true })
	task.Cancel()

	assert.True(t, task.Cancelled())
	assert.Equal(t, 0, r.Pending())
	r.Advance(time.Second)
	assert.False(t, ran)

	var nilTask *Task
	assert.NotPanics(t, nilTask.Cancel)
}

type chanSender struct {
	msgs chan tea.Msg
}

func (s *chanSender) Send(msg tea.Msg) { s.msgs <- msg }

func TestProgramRunner_DeliversTaskMessages(t *testing.T) {
	sender := &chanSender{msgs: make(chan tea.Msg, 4)}
	r := NewProgramRunner(sender)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	r.Start(ctx)

	var order []int
	r.Post(func() { order = append(order, 1) })
	r.PostDelayed(time.Millisecond, func() { order = append(order, 2) })

	for i := 0; i < 2; i++ {
		select {
		case msg := <-sender.msgs:
			task, ok := msg.(TaskMsg)
			require.True(t, ok)
			task.Run()
		case <-time.After(time.Second):
			t.Fatal("timed out waiting for task")
		}
	}
	assert.Equal(t, []int{1, 2}, order)
}

func TestProgramRunner_CancelDelayed(t *testing.T) {
	sender := &chanSender{msgs: make(chan tea.Msg, 1)}
	r := NewProgramRunner(sender)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	r.Start(ctx)

	task := r.PostDelayed(20*time.Millisecond, func() {})
	task.Cancel()

	select {
	case <-sender.msgs:
		t.Fatal("cancelled task was delivered")
	case <-time.After(60 * time.Millisecond):
	}
}

func TestProgramRunner_PostNeverBlocks(t *testing.T) {
	t.Run("before start", func(t *testing.T) {
		r := NewProgramRunner(&chanSender{msgs: make(chan tea.Msg)})

		done := make(chan struct{})
		go func() {
			for i := 0; i < 1000; i++ {
				r.Post(func() {})
			}
			close(done)
		}()

		select {
		case <-done:
		case <-time.After(time.Second):
			t.Fatal("Post blocked on a busy program")
		}
		assert.Equal(t, 1000, r.Pending())
	})

	t.Run("after stop", func(t *testing.T) {
		sender := &chanSender{msgs: make(chan tea.Msg, 1)}
		r := NewProgramRunner(sender)
		ctx, cancel := context.WithCancel(context.Background())
		r.Start(ctx)
		cancel()

		require.Eventually(t, func() bool {
			r.Post(func() {})
			return r.Pending() == 0
		}, time.Second, 5*time.Millisecond)

		fired := make(chan struct{})
		r.PostDelayed(time.Millisecond, func() {})
		time.AfterFunc(50*time.Millisecond, func() { close(fired) })
		<-fired
		assert.Zero(t, r.Pending())
	})
}

func TestProgramRunner_DeliversWorkPostedBeforeStart(t *testing.T) {
	sender := &chanSender{msgs: make(chan tea.Msg, 4)}
	r := NewProgramRunner(sender)

	var order []int
	r.Post(func() { order = append(order, 1) })
	r.Post(func() { order = append(order, 2) })

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	r.Start(ctx)

	for i := 0; i < 2; i++ {
		select {
		case msg := <-sender.msgs:
			msg.(TaskMsg).Run()
		case <-time.After(time.Second):
			t.Fatal("timed out waiting for task")
		}
	}
	assert.Equal(t, []int{1, 2}, order)
}
