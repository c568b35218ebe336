// Package model defines the domain types shared across ports, adapters and services.
package model

import (
	"fmt"
	"math"
)

// FileCoverage holds per-statement execution counts for one instrumented file.
// Keys are statement indices as emitted by the instrumentation tool; a count
// greater than zero means the statement was executed.
type FileCoverage struct {
	Statements map[string]int `json:"statements"`
}

// Covered returns the number of statements with a non-zero execution count.
func (f FileCoverage) Covered() int {
	covered := 0
	for _, count := range f.Statements {
		if count > 0 {
			covered++
		}
	}
	return covered
}

// Total returns the number of instrumented statements in the file.
func (f FileCoverage) Total() int {
	return len(f.Statements)
}

// CoverageMap maps absolute file paths to their statement coverage.
type CoverageMap map[string]FileCoverage

// Scope selects which slice of the coverage map an aggregation covers.
type Scope string

const (
	ScopeGlobal       Scope = "global"
	ScopeChangedFiles Scope = "changed-files"
)

// FileStat is the per-file line of an aggregation result.
type FileStat struct {
	Path    string
	Covered int
	Total   int
}

// Percentage returns the file's coverage rounded to two decimal places.
// A file with zero instrumented statements reports 0.
func (s FileStat) Percentage() float64 {
	if s.Total == 0 {
		return 0
	}
	return roundPercent(float64(s.Covered) / float64(s.Total) * 100)
}

// AggregationResult is the reduction of a CoverageMap to covered/total counts,
// either globally or restricted to a changed-file set. PerFile preserves diff
// order; NoData lists changed files without a matching coverage entry (they
// are excluded from both numerator and denominator).
type AggregationResult struct {
	Covered int
	Total   int
	PerFile []FileStat
	NoData  []string
}

// Applicable reports whether a numeric percentage exists. It is false when no
// instrumented statements fell in scope (empty changed set, or total of zero),
// which is a valid terminal state rather than 0% coverage.
func (r AggregationResult) Applicable() bool {
	return r.Total > 0
}

// Percentage returns covered/total as a percentage rounded to two decimal
// places. Only meaningful when Applicable is true.
func (r AggregationResult) Percentage() float64 {
	if r.Total == 0 {
		return 0
	}
	return roundPercent(float64(r.Covered) / float64(r.Total) * 100)
}

// PercentageString renders the percentage as "80.00", or "n/a" when the
// result is not applicable.
func (r AggregationResult) PercentageString() string {
	if !r.Applicable() {
		return "n/a"
	}
	return fmt.Sprintf("%.2f", r.Percentage())
}

// GateDecision is the pass/fail outcome of evaluating an aggregation result
// against a minimum percentage. An inapplicable percentage always passes: the
// gate enforces coverage discipline on changed code, it does not block PRs
// that touch no instrumented source.
type GateDecision struct {
	Pass       bool
	Applicable bool
	Percentage float64
	Threshold  float64
}

func roundPercent(v float64) float64 {
	return math.Round(v*100) / 100
}
