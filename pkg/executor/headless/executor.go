package headless

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/entrhq/modelview/pkg/logging"
	"github.com/entrhq/modelview/pkg/shell"
	"github.com/entrhq/modelview/pkg/uithread"
)

const (
	statusRunning = "running"
	statusSuccess = "success"
	statusFailed  = "failed"
)

// Executor drives a shell through a scenario on a manual clock and checks the
// resulting properties.
type Executor struct {
	config         *Config
	app            *shell.App
	runner         *uithread.ManualRunner
	matcher        *PatternMatcher
	artifactWriter *ArtifactWriter
	console        *Logger
	log            *logging.Logger

	// Execution state
	startTime time.Time
	summary   *ExecutionSummary
}

// NewExecutor builds a fresh shell from opts for the scenario in config.
// Console output goes to out, or stdout when out is nil.
func NewExecutor(opts shell.Options, config *Config, out io.Writer) (*Executor, error) {
	if config == nil {
		return nil, errors.New("scenario config is required")
	}
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	matcher, err := NewPatternMatcher(config.Dump, config.DumpExclude)
	if err != nil {
		return nil, fmt.Errorf("invalid dump patterns: %w", err)
	}

	runID := uuid.NewString()
	runner := uithread.NewManualRunner()

	e := &Executor{
		config:         config,
		runner:         runner,
		matcher:        matcher,
		artifactWriter: NewArtifactWriter(filepath.Join(config.Artifacts.OutputDir, runID), config.Artifacts),
		console:        NewLogger(parseLogLevel(config.Logging.Verbosity), out),
		log:            opts.Surface.Logger.With("headless"),
		summary: &ExecutionSummary{
			RunID:        runID,
			Scenario:     config.Name,
			Status:       statusRunning,
			Expectations: &ExpectationResults{AllPassed: true},
		},
	}
	e.app = shell.New(opts, runner)
	return e, nil
}

// App returns the shell under test.
func (e *Executor) App() *shell.App {
	return e.app
}

// Summary returns the summary of the last run.
func (e *Executor) Summary() *ExecutionSummary {
	return e.summary
}

// ArtifactDir returns the directory this run writes its artifacts to.
func (e *Executor) ArtifactDir() string {
	return e.artifactWriter.Dir()
}

// Run executes every step in order. It returns an error when an event is
// rejected unexpectedly, the run times out or any expectation fails.
func (e *Executor) Run(ctx context.Context) error {
	e.startTime = time.Now()
	e.summary.StartTime = e.startTime
	defer e.app.Destroy()

	e.log.Infof("starting scenario %q (run %s)", e.config.Name, e.summary.RunID)
	e.console.Header(fmt.Sprintf("Scenario: %s", e.scenarioName()))

	execCtx := ctx
	if e.config.Timeout > 0 {
		var cancel context.CancelFunc
		execCtx, cancel = context.WithTimeout(ctx, e.config.Timeout)
		defer cancel()
	}

	for i, step := range e.config.Steps {
		if err := execCtx.Err(); err != nil {
			if errors.Is(err, context.DeadlineExceeded) {
				return e.fail(fmt.Errorf("execution timeout exceeded"))
			}
			return e.fail(fmt.Errorf("execution canceled: %w", err))
		}
		if err := e.runStep(i, step); err != nil {
			return e.fail(err)
		}
	}

	return e.finalize()
}

func (e *Executor) runStep(index int, step Step) error {
	label := step.Label(index)
	e.console.Step(label)
	result := StepResult{Name: label, Event: step.Event}

	if step.Event != nil {
		err := e.app.Dispatch(*step.Event)
		e.runner.RunUntilIdle()
		e.summary.Metrics.Events++
		result.Clock = e.runner.Now()

		switch {
		case err != nil && step.ExpectError:
			result.Error = err.Error()
			e.console.Successf("rejected as expected: %v", err)
		case err != nil:
			result.Error = err.Error()
			e.summary.Steps = append(e.summary.Steps, result)
			return fmt.Errorf("step %d (%s): %w", index+1, label, err)
		case step.ExpectError:
			e.summary.Steps = append(e.summary.Steps, result)
			return fmt.Errorf("step %d (%s): expected the event to be rejected", index+1, label)
		default:
			e.console.Event(*step.Event, result.Clock)
		}
	}

	for _, r := range CheckExpectations(e.app, label, step.Expect) {
		e.summary.Expectations.Record(r)
		e.console.Expectation(r)
		if !r.Passed {
			e.log.Warnf("%s: %s did not match: %s", label, r.Property, r.Error)
		}
	}

	e.summary.Steps = append(e.summary.Steps, result)
	e.log.Debugf("step %d done at %s", index+1, result.Clock)
	return nil
}

func (e *Executor) scenarioName() string {
	if e.config.Name != "" {
		return e.config.Name
	}
	return "unnamed"
}

// fail marks the run failed, writes what was collected and returns err.
func (e *Executor) fail(err error) error {
	e.summary.Status = statusFailed
	e.summary.Error = err.Error()
	e.log.Errorf("scenario failed: %v", err)
	e.console.Errorf("%v", err)
	e.complete()
	return err
}

// finalize decides the status from the expectations and writes artifacts.
func (e *Executor) finalize() error {
	results := e.summary.Expectations
	var err error
	if results.Failed > 0 {
		err = fmt.Errorf("%d of %d expectations failed", results.Failed, len(results.Results))
		e.summary.Status = statusFailed
		e.summary.Error = err.Error()
	} else {
		e.summary.Status = statusSuccess
	}
	e.complete()
	return err
}

func (e *Executor) complete() {
	e.summary.EndTime = time.Now()
	e.summary.Duration = e.summary.EndTime.Sub(e.startTime)
	e.summary.Properties = e.matcher.Filter(e.app.Snapshot())
	e.summary.Journal = e.app.Journal()
	e.summary.Metrics.Steps = len(e.summary.Steps)
	e.summary.Metrics.Expectations = len(e.summary.Expectations.Results)
	e.summary.Metrics.FailedExpectations = e.summary.Expectations.Failed
	e.summary.Metrics.Clock = e.runner.Now()

	if e.config.Artifacts.Enabled {
		if err := e.artifactWriter.WriteAll(e.summary); err != nil {
			e.log.Warnf("failed to write artifacts: %v", err)
			e.console.Warningf("failed to write artifacts: %v", err)
		} else {
			e.console.Infof("Artifacts written to %s", e.artifactWriter.Dir())
		}
	}

	e.console.Summary(e.summary)
	e.log.Infof("scenario finished: %s", e.summary.Status)
}
