package driven

import (
	"context"

	"github.com/ericfisherdev/covgate/internal/domain/model"
)

// HistoryStore defines the driven port for the coverage-run history used to
// report the change against the previous run. History is best-effort: callers
// treat failures as a missing delta, never as a pipeline failure.
type HistoryStore interface {
	// RecordRun persists one measurement.
	RecordRun(ctx context.Context, rec model.RunRecord) error
	// LastRun returns the most recent record for the given PR and scope, or
	// nil when none exists.
	LastRun(ctx context.Context, repo string, prNumber int, scope model.Scope) (*model.RunRecord, error)
}
