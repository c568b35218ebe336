// Package application contains the pipeline services that connect the driven
// ports: resolve changed files, aggregate coverage, evaluate the gate and
// synchronize the PR comment.
package application

import (
	"context"
	"log/slog"
	"strings"

	"github.com/ericfisherdev/covgate/internal/domain/port/driven"
)

// ResolveOptions configures changed-file resolution.
type ResolveOptions struct {
	BaseBranch   string
	FilePatterns []string // extension allow-list, e.g. [".ts", ".tsx"]
	SourceDir    string   // repository-relative prefix, e.g. "src"
}

// ResolveChangedFiles lists files changed against the base branch and applies
// the extension and source-directory filters, preserving diff order. A diff
// failure (unreachable base ref, not a git checkout) degrades to an empty set
// with a warning: the pipeline must still produce a report.
func ResolveChangedFiles(ctx context.Context, diff driven.DiffProvider, opts ResolveOptions) []string {
	files, err := diff.ChangedFiles(ctx, opts.BaseBranch)
	if err != nil {
		slog.Warn("changed-file resolution failed, continuing with empty set",
			"base", opts.BaseBranch,
			"error", err,
		)
		return nil
	}

	return FilterFiles(files, opts.FilePatterns, opts.SourceDir)
}

// FilterFiles applies the extension allow-list and then the source-directory
// prefix filter, keeping input order. Empty patterns or an empty source dir
// disable the respective filter.
func FilterFiles(files []string, patterns []string, sourceDir string) []string {
	prefix := sourceDir
	if prefix != "" && !strings.HasSuffix(prefix, "/") {
		prefix += "/"
	}

	var out []string
	for _, f := range files {
		if !matchesExtension(f, patterns) {
			continue
		}
		if prefix != "" && !strings.HasPrefix(f, prefix) {
			continue
		}
		out = append(out, f)
	}
	return out
}

func matchesExtension(path string, patterns []string) bool {
	if len(patterns) == 0 {
		return true
	}
	for _, p := range patterns {
		if p != "" && strings.HasSuffix(path, p) {
			return true
		}
	}
	return false
}
