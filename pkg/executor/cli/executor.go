// Package cli provides a line-oriented executor for the browser shell. Each
// input line is one event written as a YAML flow mapping, for example
//
//	{type: overview, state: homepage}
//
// and the properties the event changed are printed after it runs. It suits
// piping event streams through the shell:
//
//	printf '{type: native_ready}\n{type: overview, state: homepage}\n' | browsershell -cli
package cli

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/entrhq/modelview/pkg/shell"
	"github.com/entrhq/modelview/pkg/types"
	"github.com/entrhq/modelview/pkg/uithread"
)

// Executor reads events from a reader and reports property changes.
type Executor struct {
	opts   shell.Options
	reader *bufio.Reader
	writer io.Writer

	// Display options
	showPrompt  bool
	showJournal bool

	app    *shell.App
	runner *uithread.ManualRunner
}

// ExecutorOption is a function that configures an Executor.
type ExecutorOption func(*Executor)

// WithReader sets the event source (default is os.Stdin).
func WithReader(r io.Reader) ExecutorOption {
	return func(e *Executor) {
		e.reader = bufio.NewReader(r)
	}
}

// WithWriter sets a custom output writer (default is os.Stdout).
func WithWriter(w io.Writer) ExecutorOption {
	return func(e *Executor) {
		e.writer = w
	}
}

// WithPrompt enables/disables the "> " prompt before each line.
func WithPrompt(show bool) ExecutorOption {
	return func(e *Executor) {
		e.showPrompt = show
	}
}

// WithShowJournal enables/disables printing what the shell did in response
// to clicks.
func WithShowJournal(show bool) ExecutorOption {
	return func(e *Executor) {
		e.showJournal = show
	}
}

// NewExecutor creates a new CLI executor for a shell built from opts.
func NewExecutor(opts shell.Options, options ...ExecutorOption) *Executor {
	e := &Executor{
		opts:        opts,
		reader:      bufio.NewReader(os.Stdin),
		writer:      os.Stdout,
		showJournal: true,
	}

	for _, opt := range options {
		opt(e)
	}

	return e
}

// Run builds the shell and applies events until the input ends, the user
// types exit or quit, or ctx is done. Rejected events are reported and do
// not stop the loop.
func (e *Executor) Run(ctx context.Context) error {
	e.runner = uithread.NewManualRunner()
	e.app = shell.New(e.opts, e.runner)
	defer e.app.Destroy()

	journalSeen := len(e.app.Journal())
	for {
		// Check if context is canceled
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if e.showPrompt {
			fmt.Fprint(e.writer, "> ")
		}
		input, err := e.reader.ReadString('\n')
		if err != nil && err != io.EOF {
			return fmt.Errorf("failed to read input: %w", err)
		}
		atEOF := err == io.EOF

		input = strings.TrimSpace(input)
		switch {
		case input == "exit" || input == "quit":
			return nil
		case input == "" || strings.HasPrefix(input, "#"):
			// Skip blank lines and comments
		default:
			journalSeen = e.apply(input, journalSeen)
		}

		if atEOF {
			return nil
		}
	}
}

// apply runs one input line and prints its effects. It returns the number of
// journal entries printed so far.
func (e *Executor) apply(input string, journalSeen int) int {
	event, err := ParseEvent(input)
	if err != nil {
		fmt.Fprintf(e.writer, "❌ Error: %v\n", err)
		return journalSeen
	}

	before := e.app.Snapshot()
	if err := e.app.Dispatch(event); err != nil {
		fmt.Fprintf(e.writer, "❌ Error (%s): %v\n", event, err)
		return journalSeen
	}
	e.runner.RunUntilIdle()

	fmt.Fprintf(e.writer, "⚡ %s\n", event)
	for _, line := range diffSnapshots(before, e.app.Snapshot()) {
		fmt.Fprintf(e.writer, "  %s\n", line)
	}

	journal := e.app.Journal()
	if e.showJournal {
		for _, note := range journal[journalSeen:] {
			fmt.Fprintf(e.writer, "  • %s\n", note)
		}
	}
	return len(journal)
}

// ParseEvent decodes one event from a YAML mapping. Unknown fields are an
// error.
func ParseEvent(input string) (types.BrowserEvent, error) {
	var event types.BrowserEvent
	decoder := yaml.NewDecoder(bytes.NewReader([]byte(input)))
	decoder.KnownFields(true)
	if err := decoder.Decode(&event); err != nil {
		return event, fmt.Errorf("invalid event %q: %w", input, err)
	}
	if err := event.Validate(); err != nil {
		return event, err
	}
	return event, nil
}

// diffSnapshots describes every property whose value differs, sorted by
// name.
func diffSnapshots(before, after map[string]interface{}) []string {
	names := make(map[string]struct{}, len(after))
	for name := range before {
		names[name] = struct{}{}
	}
	for name := range after {
		names[name] = struct{}{}
	}

	var lines []string
	for name := range names {
		old, hadOld := before[name]
		current, hasCurrent := after[name]
		oldText, currentText := describe(old, hadOld), describe(current, hasCurrent)
		if oldText != currentText {
			lines = append(lines, fmt.Sprintf("%s: %s → %s", name, oldText, currentText))
		}
	}
	sort.Strings(lines)
	return lines
}

func describe(v interface{}, ok bool) string {
	if !ok {
		return "unset"
	}
	return fmt.Sprintf("%v", v)
}
