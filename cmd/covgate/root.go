package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "covgate",
	Short: "Coverage gating and PR status comments for CI",
	Long: `covgate turns statement-level coverage data and a git diff into a
pass/fail gate for changed-file coverage and a single continuously-updated
status comment on the pull request.

Each report kind (coverage, build, e2e) owns one comment per PR, recognized
across runs by a marker token embedded in its body.`,
	// Errors are reported once, by main's slog handler.
	SilenceErrors: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		setupLogging()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "enable debug logging")
}

// setupLogging installs the process-wide slog handler. Logs go to stderr so
// stdout stays clean for the rendered report.
func setupLogging() {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}
