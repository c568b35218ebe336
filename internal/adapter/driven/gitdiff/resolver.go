// Package gitdiff implements the DiffProvider port by shelling out to git.
package gitdiff

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/ericfisherdev/covgate/internal/domain/model"
	"github.com/ericfisherdev/covgate/internal/domain/port/driven"
)

// Compile-time interface satisfaction check.
var _ driven.DiffProvider = (*Lister)(nil)

// diffTimeout bounds the git subprocess; an unreachable ref must not hang the
// pipeline.
const diffTimeout = 30 * time.Second

// runnerFunc executes a command and returns its combined output. Injected in
// tests to avoid a real git checkout.
type runnerFunc func(ctx context.Context, dir string, name string, args ...string) ([]byte, error)

// Lister lists files changed between a base reference and the current
// checkout using `git diff --name-only`.
type Lister struct {
	dir    string
	runner runnerFunc
}

// New creates a Lister that runs git in the given working directory
// (the repository root; "" means the process working directory).
func New(dir string) *Lister {
	return &Lister{dir: dir, runner: runGit}
}

// ChangedFiles returns the repository-relative paths changed between baseRef
// and HEAD, deduplicated, in git's output order. The three-dot range diffs
// against the merge base, matching how a PR is reviewed.
func (l *Lister) ChangedFiles(ctx context.Context, baseRef string) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, diffTimeout)
	defer cancel()

	output, err := l.runner(ctx, l.dir, "git", "diff", "--name-only", baseRef+"...HEAD")
	if err != nil {
		return nil, fmt.Errorf("diffing against %s: %w: %w", baseRef, model.ErrGit, err)
	}

	seen := make(map[string]struct{})
	var files []string
	for _, line := range strings.Split(string(output), "\n") {
		path := strings.TrimSpace(line)
		if path == "" {
			continue
		}
		if _, ok := seen[path]; ok {
			continue
		}
		seen[path] = struct{}{}
		files = append(files, path)
	}

	return files, nil
}

func runGit(ctx context.Context, dir string, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir

	output, err := cmd.CombinedOutput()
	if err != nil {
		return nil, fmt.Errorf("%s %s failed: %w (output: %s)", name, strings.Join(args, " "), err, strings.TrimSpace(string(output)))
	}
	return output, nil
}
