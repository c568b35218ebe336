package main

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/ericfisherdev/covgate/internal/adapter/driven/coveragefile"
	"github.com/ericfisherdev/covgate/internal/adapter/driven/gitdiff"
	githubadapter "github.com/ericfisherdev/covgate/internal/adapter/driven/github"
	sqliteadapter "github.com/ericfisherdev/covgate/internal/adapter/driven/sqlite"
	"github.com/ericfisherdev/covgate/internal/application"
	"github.com/ericfisherdev/covgate/internal/config"
	"github.com/ericfisherdev/covgate/internal/domain/model"
	"github.com/ericfisherdev/covgate/internal/domain/port/driven"
)

var coverageFlags struct {
	global       bool
	changedFiles bool
	coverageFile string
	baseBranch   string
	filePatterns string
	sourceDir    string
	minCoverage  float64
	historyDB    string
	post         bool
}

var coverageCmd = &cobra.Command{
	Use:   "coverage",
	Short: "Aggregate coverage and gate the pull request",
	Long: `Aggregate statement coverage globally or restricted to the files
changed against a base branch, evaluate it against a minimum percentage, and
print the markdown report to stdout.

The command exits 0 when the gate passes (including "no relevant files
changed, nothing to gate") and 1 when coverage falls below the minimum or a
fatal error occurs.

Examples:
  # Gate coverage of changed files at 80%
  covgate coverage --changed-files --base-branch origin/main --min-coverage 80

  # Whole-map coverage, informational
  covgate coverage --global --min-coverage 0

  # Also upsert the PR comment (needs COVGATE_GITHUB_TOKEN, COVGATE_REPO,
  # COVGATE_PR_NUMBER or their GitHub Actions equivalents)
  covgate coverage --changed-files --post`,
	RunE: runCoverage,
}

func init() {
	f := coverageCmd.Flags()
	f.BoolVar(&coverageFlags.global, "global", false, "aggregate over the whole coverage map")
	f.BoolVar(&coverageFlags.changedFiles, "changed-files", false, "aggregate over files changed against the base branch")
	f.StringVar(&coverageFlags.coverageFile, "coverage-file", "coverage/coverage-final.json", "path to the serialized coverage map")
	f.StringVar(&coverageFlags.baseBranch, "base-branch", "origin/main", "base reference to diff against")
	f.StringVar(&coverageFlags.filePatterns, "file-patterns", ".ts,.tsx", "comma-separated extension allow-list")
	f.StringVar(&coverageFlags.sourceDir, "source-dir", "src", "repository-relative source directory prefix")
	f.Float64Var(&coverageFlags.minCoverage, "min-coverage", 80, "minimum required coverage percentage")
	f.StringVar(&coverageFlags.historyDB, "history-db", "", "sqlite file recording runs for the change-vs-previous line (disabled when empty)")
	f.BoolVar(&coverageFlags.post, "post", false, "upsert the report as the PR's coverage comment")

	rootCmd.AddCommand(coverageCmd)
}

func runCoverage(cmd *cobra.Command, _ []string) error {
	if coverageFlags.global == coverageFlags.changedFiles {
		return fmt.Errorf("%w: exactly one of --global or --changed-files is required", model.ErrValidation)
	}
	cmd.SilenceUsage = true
	ctx := cmd.Context()

	// Synchronizer credentials are validated before any I/O happens.
	var cfg *config.Config
	if coverageFlags.post {
		var err error
		cfg, err = config.Load()
		if err != nil {
			return err
		}
	}

	scope := model.ScopeGlobal
	if coverageFlags.changedFiles {
		scope = model.ScopeChangedFiles
	}

	repo, prNumber := config.LoadPRContext()
	history, closeHistory := openHistory(coverageFlags.historyDB)
	defer closeHistory()

	svc := application.NewCoverageService(coveragefile.NewLoader(), gitdiff.New(""), history)
	out, err := svc.Run(ctx, application.CoverageRequest{
		Scope:        scope,
		CoverageFile: coverageFlags.coverageFile,
		BaseBranch:   coverageFlags.baseBranch,
		FilePatterns: splitPatterns(coverageFlags.filePatterns),
		SourceDir:    coverageFlags.sourceDir,
		Threshold:    coverageFlags.minCoverage,
		Repo:         repo,
		PRNumber:     prNumber,
	})
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), out.Markdown)
	printGateStatus(cmd, out.Decision)

	if coverageFlags.post {
		comments := application.NewCommentService(githubadapter.NewClient(cfg.GitHubToken))
		if _, err := comments.Upsert(ctx, cfg.Repo, cfg.PRNumber, model.KindCoverage, out.Markdown); err != nil {
			return err
		}
	}

	if !out.Decision.Pass {
		return fmt.Errorf("coverage %.2f%% is below the required %.2f%%", out.Decision.Percentage, out.Decision.Threshold)
	}
	return nil
}

// openHistory opens the run-history store when a path is configured. History
// is best-effort: any failure disables it with a warning rather than failing
// the gate.
func openHistory(path string) (driven.HistoryStore, func()) {
	if path == "" {
		return nil, func() {}
	}

	db, err := sqliteadapter.NewDB(path)
	if err != nil {
		slog.Warn("opening history database failed, continuing without history", "path", path, "error", err)
		return nil, func() {}
	}
	if err := sqliteadapter.RunMigrations(db.Writer); err != nil {
		slog.Warn("migrating history database failed, continuing without history", "path", path, "error", err)
		_ = db.Close()
		return nil, func() {}
	}

	return sqliteadapter.NewHistoryRepo(db), func() { _ = db.Close() }
}

func splitPatterns(raw string) []string {
	var patterns []string
	for _, p := range strings.Split(raw, ",") {
		p = strings.TrimSpace(p)
		if p != "" {
			patterns = append(patterns, p)
		}
	}
	return patterns
}

func printGateStatus(cmd *cobra.Command, d model.GateDecision) {
	green := color.New(color.FgGreen).SprintFunc()
	red := color.New(color.FgRed).SprintFunc()

	switch {
	case !d.Applicable:
		fmt.Fprintf(cmd.ErrOrStderr(), "%s nothing to gate (no changed instrumented files)\n", green("✓"))
	case d.Pass:
		fmt.Fprintf(cmd.ErrOrStderr(), "%s coverage %.2f%% meets the required %.2f%%\n", green("✓"), d.Percentage, d.Threshold)
	default:
		fmt.Fprintf(cmd.ErrOrStderr(), "%s coverage %.2f%% is below the required %.2f%%\n", red("✗"), d.Percentage, d.Threshold)
	}
}
