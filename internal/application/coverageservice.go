package application

import (
	"context"
	"log/slog"

	"github.com/ericfisherdev/covgate/internal/domain/model"
	"github.com/ericfisherdev/covgate/internal/domain/port/driven"
	"github.com/ericfisherdev/covgate/internal/report"
)

// CoverageService runs the coverage pipeline: load, resolve, aggregate,
// evaluate, format. Strictly sequential; each step completes before the next
// begins.
type CoverageService struct {
	loader  driven.CoverageLoader
	diff    driven.DiffProvider
	history driven.HistoryStore // nil disables history and deltas
}

// NewCoverageService wires the pipeline's driven ports. history may be nil.
func NewCoverageService(loader driven.CoverageLoader, diff driven.DiffProvider, history driven.HistoryStore) *CoverageService {
	return &CoverageService{loader: loader, diff: diff, history: history}
}

// CoverageRequest is the immutable per-invocation configuration, built once
// at the entry point from flags and environment.
type CoverageRequest struct {
	Scope        model.Scope
	CoverageFile string
	BaseBranch   string
	FilePatterns []string
	SourceDir    string
	Threshold    float64

	// Repo and PRNumber key the history records; empty/zero when history is
	// disabled or the run is outside a PR context.
	Repo     string
	PRNumber int
}

// CoverageOutcome bundles everything a caller needs: the numbers, the gate
// decision, the optional history delta and the rendered markdown report.
type CoverageOutcome struct {
	Result   model.AggregationResult
	Decision model.GateDecision
	Delta    *float64
	Markdown string
}

// Run executes the pipeline. Only a data error (missing or unparseable
// coverage file) is fatal; diff and history failures degrade with warnings.
func (s *CoverageService) Run(ctx context.Context, req CoverageRequest) (*CoverageOutcome, error) {
	cov, err := s.loader.Load(req.CoverageFile)
	if err != nil {
		return nil, err
	}

	var res model.AggregationResult
	switch req.Scope {
	case model.ScopeChangedFiles:
		changed := ResolveChangedFiles(ctx, s.diff, ResolveOptions{
			BaseBranch:   req.BaseBranch,
			FilePatterns: req.FilePatterns,
			SourceDir:    req.SourceDir,
		})
		res = AggregateChangedFiles(cov, changed)
	default:
		res = AggregateGlobal(cov)
	}

	decision := Evaluate(res, req.Threshold)
	delta := s.recordHistory(ctx, req, res)

	return &CoverageOutcome{
		Result:   res,
		Decision: decision,
		Delta:    delta,
		Markdown: report.RenderCoverage(report.CoverageData{
			Scope:    req.Scope,
			Result:   res,
			Decision: decision,
			Delta:    delta,
		}),
	}, nil
}

// recordHistory computes the delta against the previous recorded run and
// appends the current one. Best-effort: any failure logs a warning and yields
// no delta.
func (s *CoverageService) recordHistory(ctx context.Context, req CoverageRequest, res model.AggregationResult) *float64 {
	if s.history == nil {
		return nil
	}

	var delta *float64
	last, err := s.history.LastRun(ctx, req.Repo, req.PRNumber, req.Scope)
	switch {
	case err != nil:
		slog.Warn("reading coverage history failed", "error", err)
	case last != nil && last.Percentage != nil && res.Applicable():
		d := res.Percentage() - *last.Percentage
		delta = &d
	}

	rec := model.RunRecord{
		Repo:     req.Repo,
		PRNumber: req.PRNumber,
		Scope:    req.Scope,
		Covered:  res.Covered,
		Total:    res.Total,
	}
	if res.Applicable() {
		pct := res.Percentage()
		rec.Percentage = &pct
	}
	if err := s.history.RecordRun(ctx, rec); err != nil {
		slog.Warn("recording coverage history failed", "error", err)
	}

	return delta
}
