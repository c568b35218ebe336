// Package report renders human-readable report bodies. Rendering is
// deterministic: the synchronizer diffs comment bodies byte-for-byte, so the
// same input must always produce identical output.
package report

import (
	"fmt"
	"sort"
	"strings"

	"github.com/ericfisherdev/covgate/internal/domain/model"
)

// CoverageData is the input to the coverage report formatter.
type CoverageData struct {
	Scope    model.Scope
	Result   model.AggregationResult
	Decision model.GateDecision
	// Delta is the percentage-point change against the previous recorded run,
	// nil when no history is available.
	Delta *float64
}

// RenderCoverage formats an aggregation result and its gate decision as
// markdown. Per-file rows keep diff order.
func RenderCoverage(d CoverageData) string {
	var b strings.Builder

	b.WriteString("## Coverage report\n\n")
	fmt.Fprintf(&b, "**Scope:** %s\n", scopeLabel(d.Scope))
	fmt.Fprintf(&b, "**Status:** %s\n", statusLine(d.Decision))

	if d.Result.Applicable() {
		fmt.Fprintf(&b, "**Coverage:** %s%% (%d/%d statements)\n",
			d.Result.PercentageString(), d.Result.Covered, d.Result.Total)
	} else {
		b.WriteString("**Coverage:** n/a (no instrumented statements in scope)\n")
	}
	fmt.Fprintf(&b, "**Required:** %.2f%%\n", d.Decision.Threshold)

	if d.Delta != nil {
		fmt.Fprintf(&b, "**Change vs previous run:** %+.2f%%\n", *d.Delta)
	}

	if len(d.Result.PerFile) > 0 {
		b.WriteString("\n| File | Covered | Total | % |\n")
		b.WriteString("| --- | ---: | ---: | ---: |\n")
		for _, f := range d.Result.PerFile {
			fmt.Fprintf(&b, "| %s | %d | %d | %.2f |\n", f.Path, f.Covered, f.Total, f.Percentage())
		}
	} else if d.Scope == model.ScopeChangedFiles {
		b.WriteString("\n_No relevant files changed; nothing to gate._\n")
	}

	if len(d.Result.NoData) > 0 {
		b.WriteString("\n_No coverage data for:_ ")
		for i, path := range d.Result.NoData {
			if i > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(&b, "`%s`", path)
		}
		b.WriteString("\n")
	}

	return b.String()
}

// RenderStatus formats a status comment for an upstream job (build or
// end-to-end results, or a hand-written coverage note). Details are rendered
// sorted by key so repeated runs with the same input produce the same body.
func RenderStatus(status model.ReportStatus, title, body string, details map[string]any) string {
	var b strings.Builder

	if title != "" {
		fmt.Fprintf(&b, "## %s\n\n", title)
	}
	fmt.Fprintf(&b, "**Status:** %s %s\n", status.Glyph(), status)

	if body != "" {
		b.WriteString("\n")
		b.WriteString(body)
		b.WriteString("\n")
	}

	if len(details) > 0 {
		keys := make([]string, 0, len(details))
		for k := range details {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		b.WriteString("\n**Details:**\n")
		for _, k := range keys {
			fmt.Fprintf(&b, "- `%s`: %v\n", k, details[k])
		}
	}

	return b.String()
}

func scopeLabel(s model.Scope) string {
	if s == model.ScopeChangedFiles {
		return "changed files"
	}
	return "global"
}

func statusLine(d model.GateDecision) string {
	if !d.Applicable {
		return "✅ pass (nothing to gate)"
	}
	if d.Pass {
		return "✅ pass"
	}
	return "❌ fail"
}
