package headless

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/entrhq/modelview/pkg/types"
)

// ArtifactWriter handles writing execution artifacts
type ArtifactWriter struct {
	outputDir string
	config    ArtifactConfig
}

// NewArtifactWriter creates a new artifact writer
func NewArtifactWriter(outputDir string, config ArtifactConfig) *ArtifactWriter {
	return &ArtifactWriter{
		outputDir: outputDir,
		config:    config,
	}
}

// Dir returns the directory artifacts are written to.
func (w *ArtifactWriter) Dir() string {
	return w.outputDir
}

// WriteAll writes all configured artifact formats
func (w *ArtifactWriter) WriteAll(summary *ExecutionSummary) error {
	// Ensure output directory exists
	if err := os.MkdirAll(w.outputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	if w.config.JSON {
		if err := w.WriteExecutionJSON(summary); err != nil {
			return fmt.Errorf("failed to write execution JSON: %w", err)
		}
	}

	if w.config.Markdown {
		if err := w.WriteSummaryMarkdown(summary); err != nil {
			return fmt.Errorf("failed to write summary markdown: %w", err)
		}
	}

	return nil
}

// WriteExecutionJSON writes the full execution summary as JSON
func (w *ArtifactWriter) WriteExecutionJSON(summary *ExecutionSummary) error {
	path := filepath.Join(w.outputDir, "execution.json")

	data, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal execution summary: %w", err)
	}

	if writeErr := os.WriteFile(path, data, 0600); writeErr != nil {
		return fmt.Errorf("failed to write execution JSON: %w", writeErr)
	}

	return nil
}

// WriteSummaryMarkdown writes a human-readable markdown summary
func (w *ArtifactWriter) WriteSummaryMarkdown(summary *ExecutionSummary) error {
	path := filepath.Join(w.outputDir, "summary.md")

	var md strings.Builder

	// Header
	md.WriteString("# Browser Shell Scenario Summary\n\n")
	md.WriteString(fmt.Sprintf("**Scenario:** %s\n\n", summary.Scenario))
	md.WriteString(fmt.Sprintf("**Run:** %s\n\n", summary.RunID))
	md.WriteString(fmt.Sprintf("**Status:** %s\n\n", summary.Status))
	md.WriteString(fmt.Sprintf("**Started:** %s\n\n", summary.StartTime.Format(time.RFC3339)))
	md.WriteString(fmt.Sprintf("**Duration:** %s\n\n", summary.Duration))

	// Result
	md.WriteString("## Result\n\n")
	if summary.Error != "" {
		md.WriteString(fmt.Sprintf("❌ **Error:** %s\n\n", summary.Error))
	} else {
		md.WriteString("✅ **Success**\n\n")
	}

	// Expectations
	if summary.Expectations != nil && len(summary.Expectations.Results) > 0 {
		md.WriteString("## Expectations\n\n")
		for _, result := range summary.Expectations.Results {
			status := "✅"
			if !result.Passed {
				status = "❌"
			}
			md.WriteString(fmt.Sprintf("%s **%s** `%s`", status, result.Step, result.Property))
			md.WriteString("\n")
			if result.Error != "" {
				md.WriteString(fmt.Sprintf("   Error: %s\n", result.Error))
			}
		}
		md.WriteString("\n")
	}

	// Properties
	if len(summary.Properties) > 0 {
		md.WriteString("## Properties\n\n")
		names := make([]string, 0, len(summary.Properties))
		for name := range summary.Properties {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			md.WriteString(fmt.Sprintf("- `%s` = %v\n", name, summary.Properties[name]))
		}
		md.WriteString("\n")
	}

	// Journal
	if len(summary.Journal) > 0 {
		md.WriteString("## Journal\n\n")
		for _, note := range summary.Journal {
			md.WriteString(fmt.Sprintf("- %s\n", note))
		}
		md.WriteString("\n")
	}

	// Metrics
	md.WriteString("## Metrics\n\n")
	md.WriteString(fmt.Sprintf("- **Steps:** %d\n", summary.Metrics.Steps))
	md.WriteString(fmt.Sprintf("- **Events:** %d\n", summary.Metrics.Events))
	md.WriteString(fmt.Sprintf("- **Expectations:** %d (%d failed)\n", summary.Metrics.Expectations, summary.Metrics.FailedExpectations))
	md.WriteString(fmt.Sprintf("- **Clock:** %s\n", summary.Metrics.Clock))

	// Write file
	if writeErr := os.WriteFile(path, []byte(md.String()), 0600); writeErr != nil {
		return fmt.Errorf("failed to write summary markdown: %w", writeErr)
	}

	return nil
}

// ExecutionSummary contains a complete summary of a scenario run
type ExecutionSummary struct {
	RunID        string                 `json:"run_id"`
	Scenario     string                 `json:"scenario"`
	Status       string                 `json:"status"`
	Error        string                 `json:"error,omitempty"`
	StartTime    time.Time              `json:"start_time"`
	EndTime      time.Time              `json:"end_time"`
	Duration     time.Duration          `json:"duration"`
	Steps        []StepResult           `json:"steps"`
	Expectations *ExpectationResults    `json:"expectations"`
	Properties   map[string]interface{} `json:"properties"`
	Journal      []string               `json:"journal,omitempty"`
	Metrics      ExecutionMetrics       `json:"metrics"`
}

// StepResult records one executed step
type StepResult struct {
	Name  string              `json:"name"`
	Event *types.BrowserEvent `json:"event,omitempty"`
	Error string              `json:"error,omitempty"`
	Clock time.Duration       `json:"clock"`
}

// ExecutionMetrics contains execution metrics
type ExecutionMetrics struct {
	Steps              int           `json:"steps"`
	Events             int           `json:"events"`
	Expectations       int           `json:"expectations"`
	FailedExpectations int           `json:"failed_expectations"`
	Clock              time.Duration `json:"clock"`
}
