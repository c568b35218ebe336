package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/ericfisherdev/covgate/internal/domain/model"
	"github.com/ericfisherdev/covgate/internal/domain/port/driven"
)

// Compile-time interface satisfaction check.
var _ driven.HistoryStore = (*HistoryRepo)(nil)

// HistoryRepo is the SQLite implementation of the HistoryStore port interface.
type HistoryRepo struct {
	db *DB
}

// NewHistoryRepo creates a new HistoryRepo backed by the given DB.
func NewHistoryRepo(db *DB) *HistoryRepo {
	return &HistoryRepo{db: db}
}

// RecordRun persists one coverage measurement.
func (r *HistoryRepo) RecordRun(ctx context.Context, rec model.RunRecord) error {
	const query = `
		INSERT INTO coverage_runs (repo, pr_number, scope, percentage, covered, total, recorded_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`

	var pct sql.NullFloat64
	if rec.Percentage != nil {
		pct = sql.NullFloat64{Float64: *rec.Percentage, Valid: true}
	}

	recordedAt := rec.RecordedAt
	if recordedAt.IsZero() {
		recordedAt = time.Now().UTC()
	}

	_, err := r.db.Writer.ExecContext(ctx, query,
		rec.Repo, rec.PRNumber, string(rec.Scope), pct, rec.Covered, rec.Total,
		recordedAt.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("insert coverage run: %w", err)
	}

	return nil
}

// LastRun returns the most recent record for the given PR and scope, or nil
// when none exists.
func (r *HistoryRepo) LastRun(ctx context.Context, repo string, prNumber int, scope model.Scope) (*model.RunRecord, error) {
	const query = `
		SELECT id, repo, pr_number, scope, percentage, covered, total, recorded_at
		FROM coverage_runs
		WHERE repo = ? AND pr_number = ? AND scope = ?
		ORDER BY recorded_at DESC, id DESC
		LIMIT 1`

	row := r.db.Reader.QueryRowContext(ctx, query, repo, prNumber, string(scope))

	var (
		rec        model.RunRecord
		scopeStr   string
		pct        sql.NullFloat64
		recordedAt string
	)
	err := row.Scan(&rec.ID, &rec.Repo, &rec.PRNumber, &scopeStr, &pct, &rec.Covered, &rec.Total, &recordedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query last coverage run: %w", err)
	}

	rec.Scope = model.Scope(scopeStr)
	if pct.Valid {
		rec.Percentage = &pct.Float64
	}
	if ts, parseErr := time.Parse(time.RFC3339Nano, recordedAt); parseErr == nil {
		rec.RecordedAt = ts
	}

	return &rec, nil
}
