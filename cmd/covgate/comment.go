package main

import (
	"encoding/json"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	githubadapter "github.com/ericfisherdev/covgate/internal/adapter/driven/github"
	"github.com/ericfisherdev/covgate/internal/application"
	"github.com/ericfisherdev/covgate/internal/config"
	"github.com/ericfisherdev/covgate/internal/domain/model"
	"github.com/ericfisherdev/covgate/internal/report"
)

var commentFlags struct {
	kind    string
	status  string
	title   string
	body    string
	details string
}

var commentCmd = &cobra.Command{
	Use:   "comment",
	Short: "Create or update a status comment on the pull request",
	Long: `Render a status comment and upsert it on the pull request. Each
report type owns one comment; repeated runs update it in place instead of
posting a new one.

Requires COVGATE_GITHUB_TOKEN, COVGATE_REPO and COVGATE_PR_NUMBER (or the
GitHub Actions equivalents GITHUB_TOKEN, GITHUB_REPOSITORY and PR_NUMBER).

Examples:
  covgate comment --type build --status success --title "Build" --body "All targets built."
  covgate comment --type e2e --status failure --title "E2E" --details '{"failed":3,"suite":"checkout"}'`,
	RunE: runComment,
}

func init() {
	f := commentCmd.Flags()
	f.StringVar(&commentFlags.kind, "type", "", "report type: coverage, e2e or build (required)")
	f.StringVar(&commentFlags.status, "status", string(model.StatusSuccess), "result status: success, failure or warning")
	f.StringVar(&commentFlags.title, "title", "", "comment heading")
	f.StringVar(&commentFlags.body, "body", "", "markdown body")
	f.StringVar(&commentFlags.details, "details", "", "JSON object rendered as a key/value list")
	_ = commentCmd.MarkFlagRequired("type")

	rootCmd.AddCommand(commentCmd)
}

func runComment(cmd *cobra.Command, _ []string) error {
	kind, err := model.ParseReportKind(commentFlags.kind)
	if err != nil {
		return err
	}
	status, err := model.ParseReportStatus(commentFlags.status)
	if err != nil {
		return err
	}

	var details map[string]any
	if commentFlags.details != "" {
		if err := json.Unmarshal([]byte(commentFlags.details), &details); err != nil {
			return fmt.Errorf("%w: --details is not a JSON object: %v", model.ErrValidation, err)
		}
	}
	cmd.SilenceUsage = true

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	body := report.RenderStatus(status, commentFlags.title, commentFlags.body, details)
	comments := application.NewCommentService(githubadapter.NewClient(cfg.GitHubToken))

	updated, err := comments.Upsert(cmd.Context(), cfg.Repo, cfg.PRNumber, kind, body)
	if err != nil {
		return err
	}

	green := color.New(color.FgGreen).SprintFunc()
	action := "created"
	if updated {
		action = "updated"
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "%s %s %s comment on %s#%d\n", green("✓"), action, kind, cfg.Repo, cfg.PRNumber)
	return nil
}
