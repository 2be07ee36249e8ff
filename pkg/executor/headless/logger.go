package headless

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/entrhq/modelview/pkg/types"
)

// LogLevel represents the logging verbosity level
type LogLevel int

const (
	// LogLevelQuiet shows only critical information (errors, warnings, final summary)
	LogLevelQuiet LogLevel = iota
	// LogLevelNormal shows standard execution progress (default)
	LogLevelNormal
	// LogLevelVerbose shows detailed execution information
	LogLevelVerbose
	// LogLevelDebug shows all internal details for debugging
	LogLevelDebug
)

// Logger provides structured console output for a scenario run
type Logger struct {
	level  LogLevel
	writer io.Writer

	// ANSI color codes
	colorReset     string
	colorCyan      string
	colorSalmon    string
	colorYellow    string
	colorRed       string
	colorGray      string
	colorBoldGreen string
	colorBoldRed   string
	colorBoldWhite string

	stepCount int
}

// NewLogger creates a logger with the specified level writing to w. A nil w
// writes to stdout.
func NewLogger(level LogLevel, w io.Writer) *Logger {
	if w == nil {
		w = os.Stdout
	}
	return &Logger{
		level:          level,
		writer:         w,
		colorReset:     "\033[0m",
		colorCyan:      "\033[36m",
		colorSalmon:    "\033[38;5;217m", // Salmon pink #FFB3BA
		colorYellow:    "\033[33m",
		colorRed:       "\033[31m",
		colorGray:      "\033[90m",
		colorBoldGreen: "\033[1;32m",
		colorBoldRed:   "\033[1;31m",
		colorBoldWhite: "\033[1;37m",
	}
}

// Header prints a prominent header message
func (l *Logger) Header(message string) {
	if l.level >= LogLevelNormal {
		fmt.Fprintf(l.writer, "\n%s%s%s\n", l.colorBoldWhite, strings.Repeat("=", 70), l.colorReset)
		fmt.Fprintf(l.writer, "%s  %s%s\n", l.colorBoldWhite, message, l.colorReset)
		fmt.Fprintf(l.writer, "%s%s%s\n", l.colorBoldWhite, strings.Repeat("=", 70), l.colorReset)
	}
}

// Step prints a numbered step in the execution
func (l *Logger) Step(message string) {
	if l.level >= LogLevelNormal {
		l.stepCount++
		fmt.Fprintf(l.writer, "\n%s[%d] %s%s\n", l.colorCyan, l.stepCount, message, l.colorReset)
	}
}

// Successf prints a success message with checkmark
func (l *Logger) Successf(format string, args ...interface{}) {
	if l.level >= LogLevelNormal {
		msg := fmt.Sprintf(format, args...)
		fmt.Fprintf(l.writer, "%s✓ %s%s\n", l.colorBoldGreen, msg, l.colorReset)
	}
}

// Infof prints an informational message
func (l *Logger) Infof(format string, args ...interface{}) {
	if l.level >= LogLevelNormal {
		msg := fmt.Sprintf(format, args...)
		fmt.Fprintf(l.writer, "%s%s%s\n", l.colorSalmon, msg, l.colorReset)
	}
}

// Warningf prints a warning message
func (l *Logger) Warningf(format string, args ...interface{}) {
	if l.level >= LogLevelQuiet {
		msg := fmt.Sprintf(format, args...)
		fmt.Fprintf(l.writer, "%s⚠ Warning: %s%s\n", l.colorYellow, msg, l.colorReset)
	}
}

// Errorf prints an error message
func (l *Logger) Errorf(format string, args ...interface{}) {
	if l.level >= LogLevelQuiet {
		msg := fmt.Sprintf(format, args...)
		fmt.Fprintf(l.writer, "%s✗ Error: %s%s\n", l.colorBoldRed, msg, l.colorReset)
	}
}

// Verbosef prints detailed information (only in verbose mode)
func (l *Logger) Verbosef(format string, args ...interface{}) {
	if l.level >= LogLevelVerbose {
		msg := fmt.Sprintf(format, args...)
		fmt.Fprintf(l.writer, "%s→ %s%s\n", l.colorGray, msg, l.colorReset)
	}
}

// Debugf prints debug information (only in debug mode)
func (l *Logger) Debugf(format string, args ...interface{}) {
	if l.level >= LogLevelDebug {
		msg := fmt.Sprintf(format, args...)
		fmt.Fprintf(l.writer, "%s[DEBUG] %s%s\n", l.colorGray, msg, l.colorReset)
	}
}

// Event logs a delivered event with formatting based on verbosity
func (l *Logger) Event(e types.BrowserEvent, clock time.Duration) {
	switch l.level {
	case LogLevelQuiet:
		// Don't log individual events in quiet mode
	case LogLevelNormal:
		fmt.Fprintf(l.writer, "%s  • %s%s\n", l.colorGray, e, l.colorReset)
	case LogLevelVerbose, LogLevelDebug:
		fmt.Fprintf(l.writer, "%s  ⚡ Event: %s (clock %s)%s\n", l.colorCyan, e, clock, l.colorReset)
	}
}

// Expectation logs one checked property
func (l *Logger) Expectation(result ExpectationResult) {
	if l.level < LogLevelNormal {
		return
	}
	if result.Passed {
		fmt.Fprintf(l.writer, "%s  ✓ %s = %v%s\n", l.colorBoldGreen, result.Property, result.Expected, l.colorReset)
		return
	}
	fmt.Fprintf(l.writer, "%s  ✗ %s%s\n", l.colorBoldRed, result.Property, l.colorReset)
	if result.Error != "" {
		fmt.Fprintf(l.writer, "%s    %s%s\n", l.colorGray, result.Error, l.colorReset)
	}
}

// Summary prints a final execution summary
func (l *Logger) Summary(summary *ExecutionSummary) {
	l.printSummaryHeader()
	l.printStatus(summary.Status)
	l.printScenarioAndDuration(summary)
	l.printMetrics(summary)
	l.printFailures(summary)
	l.printError(summary)
	l.printSummaryFooter()
}

func (l *Logger) printSummaryHeader() {
	fmt.Fprintln(l.writer)
	fmt.Fprintf(l.writer, "%s%s%s\n", l.colorBoldWhite, strings.Repeat("=", 70), l.colorReset)
	fmt.Fprintf(l.writer, "%s  SCENARIO SUMMARY%s\n", l.colorBoldWhite, l.colorReset)
	fmt.Fprintf(l.writer, "%s%s%s\n", l.colorBoldWhite, strings.Repeat("=", 70), l.colorReset)
}

func (l *Logger) printStatus(status string) {
	fmt.Fprint(l.writer, "  Status: ")
	switch status {
	case statusSuccess:
		fmt.Fprintf(l.writer, "%s✓ SUCCESS%s\n", l.colorBoldGreen, l.colorReset)
	case statusFailed:
		fmt.Fprintf(l.writer, "%s✗ FAILED%s\n", l.colorBoldRed, l.colorReset)
	default:
		fmt.Fprintln(l.writer, status)
	}
}

func (l *Logger) printScenarioAndDuration(summary *ExecutionSummary) {
	fmt.Fprintf(l.writer, "  Scenario: %s\n", summary.Scenario)
	fmt.Fprintf(l.writer, "  Run: %s\n", summary.RunID)
	fmt.Fprintf(l.writer, "  Duration: %s\n", summary.Duration.Round(time.Millisecond))
}

func (l *Logger) printMetrics(summary *ExecutionSummary) {
	fmt.Fprintf(l.writer, "\n  📊 Metrics:\n")
	fmt.Fprintf(l.writer, "    Steps: %d\n", summary.Metrics.Steps)
	fmt.Fprintf(l.writer, "    Events: %d\n", summary.Metrics.Events)
	fmt.Fprintf(l.writer, "    Expectations: %d passed, %d failed\n",
		summary.Metrics.Expectations-summary.Metrics.FailedExpectations, summary.Metrics.FailedExpectations)
	fmt.Fprintf(l.writer, "    Clock: %s\n", summary.Metrics.Clock)
}

func (l *Logger) printFailures(summary *ExecutionSummary) {
	if summary.Expectations == nil || summary.Expectations.AllPassed {
		return
	}

	fmt.Fprintf(l.writer, "\n  🎯 Failed expectations:\n")
	for _, result := range summary.Expectations.Results {
		if result.Passed {
			continue
		}
		fmt.Fprintf(l.writer, "%s    ✗ %s: %s%s\n", l.colorBoldRed, result.Step, result.Property, l.colorReset)
		if result.Error != "" && l.level >= LogLevelVerbose {
			fmt.Fprintf(l.writer, "%s      %s%s\n", l.colorGray, result.Error, l.colorReset)
		}
	}
}

func (l *Logger) printError(summary *ExecutionSummary) {
	if summary.Error == "" {
		return
	}

	fmt.Fprintln(l.writer)
	fmt.Fprintf(l.writer, "%s  Error Details:%s\n", l.colorBoldRed, l.colorReset)
	fmt.Fprintf(l.writer, "%s    %s%s\n", l.colorRed, summary.Error, l.colorReset)
}

func (l *Logger) printSummaryFooter() {
	fmt.Fprintf(l.writer, "%s%s%s\n", l.colorBoldWhite, strings.Repeat("=", 70), l.colorReset)
	fmt.Fprintln(l.writer)
}

// parseLogLevel converts a string log level to LogLevel type
func parseLogLevel(level string) LogLevel {
	switch level {
	case "quiet":
		return LogLevelQuiet
	case "normal":
		return LogLevelNormal
	case "verbose":
		return LogLevelVerbose
	case "debug":
		return LogLevelDebug
	default:
		return LogLevelNormal
	}
}
