package driven

import "context"

// DiffProvider defines the driven port for listing files changed between a
// base reference and the current checkout. The returned paths are
// repository-relative, deduplicated and in the diff tool's output order;
// callers must preserve that order since report display follows it.
// Failures surface wrapped in model.ErrGit.
type DiffProvider interface {
	ChangedFiles(ctx context.Context, baseRef string) ([]string, error)
}
