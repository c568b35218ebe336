package model

import "time"

// RunRecord is one persisted coverage measurement, used to show the change
// against the previous run for the same pull request and scope. Percentage is
// nil when the run was not applicable (nothing in scope).
type RunRecord struct {
	ID         int64
	Repo       string
	PRNumber   int
	Scope      Scope
	Percentage *float64
	Covered    int
	Total      int
	RecordedAt time.Time
}
