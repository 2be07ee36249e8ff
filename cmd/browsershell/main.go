// Package main provides the browser shell: the toolbar, menu button, load
// progress, tile, incognito interstitial and edit URL row of a browser UI,
// driven by typed events in a terminal or by scenario files in CI.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/term"

	appconfig "github.com/entrhq/modelview/pkg/config"
	"github.com/entrhq/modelview/pkg/executor/cli"
	"github.com/entrhq/modelview/pkg/executor/tui"
	"github.com/entrhq/modelview/pkg/logging"
	"github.com/entrhq/modelview/pkg/shell"
)

const version = "0.1.0" // Version of the browser shell

// Config holds the application configuration
type Config struct {
	ConfigPath     string
	ShowVersion    bool
	Headless       bool
	HeadlessConfig string
	Lines          bool
}

func main() {
	// Parse command line flags
	config := parseFlags()

	// Show version if requested
	if config.ShowVersion {
		fmt.Printf("browsershell v%s\n", version)
		return
	}

	// Validate configuration
	if err := config.validate(); err != nil {
		log.Fatalf("Configuration error: %v", err)
	}

	// Create context with signal handling for graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Run the application
	if runErr := run(ctx, config); runErr != nil {
		stop()
		log.Fatalf("Application error: %v", runErr)
	}
}

// parseFlags parses command line flags
func parseFlags() *Config {
	config := &Config{}

	flag.StringVar(&config.ConfigPath, "config", "", "Path to the settings file (default: ~/.modelview/config.json)")
	flag.BoolVar(&config.ShowVersion, "version", false, "Show version and exit")
	flag.BoolVar(&config.Headless, "headless", false, "Run a scenario non-interactively")
	flag.StringVar(&config.HeadlessConfig, "scenario", "", "Path to the scenario file (YAML)")
	flag.BoolVar(&config.Lines, "cli", false, "Read events from stdin, one YAML mapping per line")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "browsershell - browser UI surfaces in the terminal\n\n")
		fmt.Fprintf(os.Stderr, "Usage: browsershell [options]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  # TUI Mode (default)\n")
		fmt.Fprintf(os.Stderr, "  browsershell\n")
		fmt.Fprintf(os.Stderr, "  browsershell -config ./settings.json\n")
		fmt.Fprintf(os.Stderr, "\n  # Headless Mode (CI/CD)\n")
		fmt.Fprintf(os.Stderr, "  browsershell -headless -scenario logo.yaml\n")
		fmt.Fprintf(os.Stderr, "\n  # Line Mode\n")
		fmt.Fprintf(os.Stderr, "  echo '{type: native_ready}' | browsershell -cli\n")
	}

	flag.Parse()
	return config
}

// validate checks that the configuration is valid
func (c *Config) validate() error {
	if c.Headless && c.HeadlessConfig == "" {
		return fmt.Errorf("headless mode requires a scenario file (use -scenario flag)")
	}
	if !c.Headless && c.HeadlessConfig != "" {
		return fmt.Errorf("-scenario is only used with -headless")
	}
	if c.Headless && c.Lines {
		return fmt.Errorf("-headless and -cli cannot be combined")
	}
	return nil
}

// run executes the main application logic
func run(ctx context.Context, config *Config) error {
	if err := appconfig.Initialize(config.ConfigPath); err != nil {
		return fmt.Errorf("failed to initialize configuration: %w", err)
	}

	switch {
	case config.Headless:
		return runHeadless(ctx, config)
	case config.Lines:
		return runLines(ctx)
	}
	return runTUI(ctx)
}

// runTUI executes the TUI mode
func runTUI(ctx context.Context) error {
	logger, err := logging.NewLogger("browsershell")
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer logger.Close()

	opts, err := shell.OptionsFromConfig(appconfig.Global(), logger)
	if err != nil {
		return err
	}

	executor := tui.NewExecutor(opts, "browsershell")
	if err := executor.Run(ctx); err != nil {
		return fmt.Errorf("TUI execution failed: %w", err)
	}
	return nil
}

// runLines executes the line mode
func runLines(ctx context.Context) error {
	opts, err := shell.OptionsFromConfig(appconfig.Global(), nil)
	if err != nil {
		return err
	}
	opts.Clipboard = nil

	executor := cli.NewExecutor(opts, cli.WithPrompt(term.IsTerminal(int(os.Stdin.Fd()))))
	if err := executor.Run(ctx); err != nil && ctx.Err() == nil {
		return fmt.Errorf("line mode failed: %w", err)
	}
	return nil
}
