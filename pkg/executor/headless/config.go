package headless

import (
	"bytes"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/entrhq/modelview/pkg/types"
)

// Config represents a headless scenario
type Config struct {
	// Scenario name
	Name string `yaml:"name" json:"name"`

	// Steps run in order
	Steps []Step `yaml:"steps" json:"steps"`

	// Dump selects the properties written to the artifacts, as glob patterns
	// over surface.KEY names. Empty means every property.
	Dump        []string `yaml:"dump" json:"dump"`
	DumpExclude []string `yaml:"dump_exclude" json:"dump_exclude"`

	// Timeout bounds the whole run
	Timeout time.Duration `yaml:"timeout" json:"timeout"`

	// Artifacts configuration
	Artifacts ArtifactConfig `yaml:"artifacts" json:"artifacts"`

	// Logging configuration
	Logging LoggingConfig `yaml:"logging" json:"logging"`
}

// Step delivers at most one event, then checks expectations.
type Step struct {
	Name  string              `yaml:"name" json:"name"`
	Event *types.BrowserEvent `yaml:"event" json:"event,omitempty"`

	// Expect maps surface.KEY to the value the property must hold after the
	// event. A null value expects the property to be unset.
	Expect map[string]interface{} `yaml:"expect" json:"expect,omitempty"`

	// ExpectError makes a rejected event pass instead of aborting the run.
	ExpectError bool `yaml:"expect_error" json:"expect_error,omitempty"`
}

// Label names the step in logs and reports.
func (s Step) Label(index int) string {
	if s.Name != "" {
		return s.Name
	}
	if s.Event != nil {
		return s.Event.String()
	}
	return fmt.Sprintf("step %d", index+1)
}

// LoggingConfig defines logging configuration
type LoggingConfig struct {
	// Verbosity controls logging level: quiet, normal, verbose, debug
	Verbosity string `yaml:"verbosity" json:"verbosity"`
}

// ArtifactConfig defines artifact generation configuration
type ArtifactConfig struct {
	Enabled   bool   `yaml:"enabled" json:"enabled"`
	OutputDir string `yaml:"output_dir" json:"output_dir"`

	// Individual format flags
	JSON     bool `yaml:"json" json:"json"`
	Markdown bool `yaml:"markdown" json:"markdown"`
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if len(c.Steps) == 0 {
		return fmt.Errorf("scenario has no steps")
	}

	for i, step := range c.Steps {
		if step.Event == nil && len(step.Expect) == 0 {
			return fmt.Errorf("step %d has neither an event nor expectations", i+1)
		}
		if step.Event != nil && !step.ExpectError {
			if err := step.Event.Validate(); err != nil {
				return fmt.Errorf("step %d: %w", i+1, err)
			}
		}
		if step.ExpectError && step.Event == nil {
			return fmt.Errorf("step %d expects an error but has no event", i+1)
		}
	}

	if c.Timeout < 0 {
		return fmt.Errorf("timeout cannot be negative")
	}

	if c.Artifacts.Enabled && c.Artifacts.OutputDir == "" {
		return fmt.Errorf("artifacts require an output directory")
	}

	// Set default verbosity if not specified
	if c.Logging.Verbosity == "" {
		c.Logging.Verbosity = "normal"
	}

	// Validate log level
	validLevels := map[string]bool{
		"quiet":   true,
		"normal":  true,
		"verbose": true,
		"debug":   true,
	}
	if !validLevels[c.Logging.Verbosity] {
		return fmt.Errorf("invalid logging verbosity: %s (must be 'quiet', 'normal', 'verbose', or 'debug')", c.Logging.Verbosity)
	}

	return nil
}

// DefaultConfig returns a default configuration suitable for most use cases
func DefaultConfig() *Config {
	return &Config{
		Timeout: time.Minute,
		Artifacts: ArtifactConfig{
			Enabled:   true,
			OutputDir: ".modelview/artifacts",
			JSON:      true,
			Markdown:  true,
		},
	}
}

// ParseConfig decodes a scenario over DefaultConfig. Unknown fields are
// errors.
func ParseConfig(data []byte) (*Config, error) {
	config := DefaultConfig()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(config); err != nil {
		return nil, fmt.Errorf("failed to decode scenario: %w", err)
	}
	return config, nil
}

// LoadConfig reads a scenario file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario: %w", err)
	}
	config, err := ParseConfig(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return config, nil
}
