package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/ericfisherdev/covgate/internal/report"
)

var previewFlags struct {
	input  string
	output string
}

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Render a markdown report to sanitized HTML",
	Long: `Render a markdown report body to sanitized HTML for local
inspection, using the same pipeline GitHub applies to comments (GFM tables,
strikethrough; script and style content stripped).

Reads stdin when --input is not given; writes stdout when --output is not
given.

Example:
  covgate coverage --changed-files | covgate preview --output report.html`,
	RunE: runPreview,
}

func init() {
	f := previewCmd.Flags()
	f.StringVar(&previewFlags.input, "input", "", "markdown file to render (default stdin)")
	f.StringVar(&previewFlags.output, "output", "", "file to write HTML to (default stdout)")

	rootCmd.AddCommand(previewCmd)
}

func runPreview(cmd *cobra.Command, _ []string) error {
	cmd.SilenceUsage = true

	var (
		src []byte
		err error
	)
	if previewFlags.input != "" {
		src, err = os.ReadFile(previewFlags.input)
		if err != nil {
			return fmt.Errorf("reading %s: %w", previewFlags.input, err)
		}
	} else {
		src, err = io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("reading stdin: %w", err)
		}
	}

	html := report.RenderHTML(string(src))

	if previewFlags.output != "" {
		if err := os.WriteFile(previewFlags.output, []byte(html), 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", previewFlags.output, err)
		}
		return nil
	}

	fmt.Fprintln(cmd.OutOrStdout(), html)
	return nil
}
