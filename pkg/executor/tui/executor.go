// Package tui provides an interactive terminal shell for the browser
// surfaces. Browser events are typed as slash commands and every surface's
// view is redrawn after each event.
//
// The TUI codebase is split into multiple files:
// - executor.go: Executor and program lifecycle
// - model.go: Core model structure and shell integration
// - update.go: Bubble Tea Update function and key handling
// - view.go: Bubble Tea View function and surface rendering
// - commands.go: Slash commands that build browser events
// - keys.go: Key bindings
// - styles.go: Color schemes and styling
package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/entrhq/modelview/pkg/shell"
	"github.com/entrhq/modelview/pkg/ui"
	"github.com/entrhq/modelview/pkg/uithread"
)

// Executor runs the browser shell inside a Bubble Tea program.
type Executor struct {
	opts    shell.Options
	header  string
	program *tea.Program
}

// NewExecutor creates a TUI executor for a shell built from opts.
// The headerText is converted to ASCII art for display when the font can
// draw it.
func NewExecutor(opts shell.Options, headerText string) *Executor {
	header := ui.GenerateASCIIArt(headerText)
	if header == "" {
		header = headerText
	}
	return &Executor{
		opts:   opts,
		header: header,
	}
}

// programSender forwards posted tasks to a program created after the shell.
// The program is set before the runner starts, and the runner only calls Send
// from its own goroutine, so Send never runs ahead of Run.
type programSender struct {
	program *tea.Program
}

func (s *programSender) Send(msg tea.Msg) {
	s.program.Send(msg)
}

// Run builds the shell and blocks until the user exits.
func (e *Executor) Run(ctx context.Context) error {
	log := e.opts.Surface.Logger.With("tui")
	log.Infof("TUI executor starting")

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sender := &programSender{}
	runner := uithread.NewProgramRunner(sender)

	app := shell.New(e.opts, runner)
	defer app.Destroy()

	m := newModel(app, e.header, log)
	app.RequestRender = m.requestRender
	m.syncJournal()

	e.program = tea.NewProgram(
		m,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(ctx),
	)
	sender.program = e.program
	runner.Start(ctx)

	if _, err := e.program.Run(); err != nil && ctx.Err() == nil {
		return fmt.Errorf("failed to run TUI program: %w", err)
	}

	log.Infof("TUI executor stopped after %d events", m.events)
	return nil
}
