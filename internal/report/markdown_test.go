package report_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ericfisherdev/covgate/internal/domain/model"
	"github.com/ericfisherdev/covgate/internal/report"
)

func passingData() report.CoverageData {
	return report.CoverageData{
		Scope: model.ScopeChangedFiles,
		Result: model.AggregationResult{
			Covered: 8,
			Total:   10,
			PerFile: []model.FileStat{{Path: "src/a.ts", Covered: 8, Total: 10}},
		},
		Decision: model.GateDecision{Pass: true, Applicable: true, Percentage: 80, Threshold: 70},
	}
}

func TestRenderCoverage_Pass(t *testing.T) {
	md := report.RenderCoverage(passingData())

	assert.Contains(t, md, "**Scope:** changed files")
	assert.Contains(t, md, "✅ pass")
	assert.Contains(t, md, "**Coverage:** 80.00% (8/10 statements)")
	assert.Contains(t, md, "**Required:** 70.00%")
	assert.Contains(t, md, "| src/a.ts | 8 | 10 | 80.00 |")
}

func TestRenderCoverage_Fail(t *testing.T) {
	d := passingData()
	d.Decision = model.GateDecision{Pass: false, Applicable: true, Percentage: 80, Threshold: 90}

	md := report.RenderCoverage(d)

	assert.Contains(t, md, "❌ fail")
	assert.Contains(t, md, "**Required:** 90.00%")
}

func TestRenderCoverage_NothingToGate(t *testing.T) {
	d := report.CoverageData{
		Scope:    model.ScopeChangedFiles,
		Result:   model.AggregationResult{},
		Decision: model.GateDecision{Pass: true, Applicable: false, Threshold: 70},
	}

	md := report.RenderCoverage(d)

	assert.Contains(t, md, "✅ pass (nothing to gate)")
	assert.Contains(t, md, "**Coverage:** n/a")
	assert.Contains(t, md, "_No relevant files changed; nothing to gate._")
	assert.NotContains(t, md, "| File |")
}

func TestRenderCoverage_NoDataFiles(t *testing.T) {
	d := passingData()
	d.Result.NoData = []string{"src/new.ts", "src/other.ts"}

	md := report.RenderCoverage(d)

	assert.Contains(t, md, "_No coverage data for:_ `src/new.ts`, `src/other.ts`")
}

func TestRenderCoverage_Delta(t *testing.T) {
	d := passingData()
	delta := 1.25
	d.Delta = &delta

	md := report.RenderCoverage(d)
	assert.Contains(t, md, "**Change vs previous run:** +1.25%")

	negative := -0.5
	d.Delta = &negative
	md = report.RenderCoverage(d)
	assert.Contains(t, md, "**Change vs previous run:** -0.50%")
}

func TestRenderCoverage_PerFileKeepsDiffOrder(t *testing.T) {
	d := passingData()
	d.Result.PerFile = []model.FileStat{
		{Path: "src/zebra.ts", Covered: 1, Total: 2},
		{Path: "src/apple.ts", Covered: 2, Total: 2},
	}

	md := report.RenderCoverage(d)

	assert.Less(t, strings.Index(md, "| src/zebra.ts"), strings.Index(md, "| src/apple.ts"))
}

func TestRenderCoverage_Deterministic(t *testing.T) {
	d := passingData()
	assert.Equal(t, report.RenderCoverage(d), report.RenderCoverage(d))
}

func TestRenderStatus(t *testing.T) {
	md := report.RenderStatus(model.StatusSuccess, "Build", "All targets built.", map[string]any{
		"duration": "3m12s",
		"artifacts": 4,
	})

	assert.Contains(t, md, "## Build")
	assert.Contains(t, md, "**Status:** ✅ success")
	assert.Contains(t, md, "All targets built.")
	// Details sorted by key.
	assert.Less(t, strings.Index(md, "`artifacts`"), strings.Index(md, "`duration`"))
}

func TestRenderStatus_FailureGlyph(t *testing.T) {
	md := report.RenderStatus(model.StatusFailure, "", "", nil)
	assert.Contains(t, md, "❌ failure")

	md = report.RenderStatus(model.StatusWarning, "", "", nil)
	assert.Contains(t, md, "⚠️ warning")
}
