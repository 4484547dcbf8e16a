// Package app contains the Cobra command tree for repolens.
package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/repolens/internal/config"
	"github.com/blackwell-systems/repolens/internal/output"
)

var appVersion = "dev"

// SetVersion sets the application version (called from main with ldflags value).
func SetVersion(v string) {
	appVersion = v
	rootCmd.Version = v
}

var (
	flagNoColor bool
	flagJSON    bool
	flagVerbose bool
	flagConfig  string
)

var rootCmd = &cobra.Command{
	Use:   "repolens",
	Short: "Fast, approximate insight into an unknown code repository",
	Long: `repolens walks a directory tree, collects per-entry metadata under
configurable ignore rules, and characterizes what it finds: the dominant
project ecosystem, a per-language size breakdown, dependency and config
manifests, and an estimated line count. File contents are never parsed.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute is the entry point called from main. An interrupt cancels a
// running scan.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Config file path (default: ~/.config/repolens/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "Output as JSON")
	rootCmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "Log per-entry scan diagnostics to stderr")
}

// setup loads configuration and prepares logging and color for a command.
func setup(cmd *cobra.Command) (*config.Config, *slog.Logger, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, nil, fmt.Errorf("loading config: %w", err)
	}

	if flagNoColor || !cfg.Output.Color || !isTerminal(cmd.OutOrStdout()) {
		output.SetNoColor(true)
	}

	return cfg, newLogger(cmd.ErrOrStderr(), flagVerbose), nil
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && output.IsTerminal(f)
}
