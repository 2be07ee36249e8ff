package main

import (
	"context"
	"fmt"
	"os"

	appconfig "github.com/entrhq/modelview/pkg/config"
	"github.com/entrhq/modelview/pkg/executor/headless"
	"github.com/entrhq/modelview/pkg/logging"
	"github.com/entrhq/modelview/pkg/shell"
)

// runHeadless runs a scenario and exits non-zero when it fails.
func runHeadless(ctx context.Context, config *Config) error {
	scenario, err := headless.LoadConfig(config.HeadlessConfig)
	if err != nil {
		return fmt.Errorf("failed to load scenario: %w", err)
	}

	// Shell diagnostics go to stderr so stdout stays the scenario report.
	logger := logging.NewWriterLogger("browsershell", os.Stderr)
	if scenario.Logging.Verbosity != "debug" {
		logger = nil
	}

	opts, err := shell.OptionsFromConfig(appconfig.Global(), logger)
	if err != nil {
		return err
	}
	// Scenarios must not touch the system clipboard.
	opts.Clipboard = nil

	executor, err := headless.NewExecutor(opts, scenario, os.Stdout)
	if err != nil {
		return err
	}
	if err := executor.Run(ctx); err != nil {
		return fmt.Errorf("scenario %q failed: %w", scenario.Name, err)
	}
	return nil
}
