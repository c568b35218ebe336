package application

import (
	"sort"
	"strings"

	"github.com/ericfisherdev/covgate/internal/domain/model"
)

// AggregateGlobal sums covered and total statement counts across every entry
// in the coverage map. Per-file rows are sorted by path since the map carries
// no order of its own.
func AggregateGlobal(cov model.CoverageMap) model.AggregationResult {
	var res model.AggregationResult
	for _, path := range sortedKeys(cov) {
		f := cov[path]
		stat := model.FileStat{Path: path, Covered: f.Covered(), Total: f.Total()}
		res.Covered += stat.Covered
		res.Total += stat.Total
		res.PerFile = append(res.PerFile, stat)
	}
	return res
}

// AggregateChangedFiles restricts aggregation to the changed-file set,
// preserving its order in the per-file rows. Each path is matched against the
// coverage map exactly first, then by path suffix, tolerating path-root
// differences between the diff tool and the coverage tool. Files with no
// match are listed as NoData and excluded from both numerator and
// denominator — they are not 0% covered, they are uninstrumented.
//
// An empty changed set short-circuits to a not-applicable result without
// inspecting the map.
func AggregateChangedFiles(cov model.CoverageMap, changed []string) model.AggregationResult {
	var res model.AggregationResult
	if len(changed) == 0 {
		return res
	}

	keys := sortedKeys(cov)
	for _, path := range changed {
		key, ok := matchEntry(cov, keys, path)
		if !ok {
			res.NoData = append(res.NoData, path)
			continue
		}
		f := cov[key]
		stat := model.FileStat{Path: path, Covered: f.Covered(), Total: f.Total()}
		res.Covered += stat.Covered
		res.Total += stat.Total
		res.PerFile = append(res.PerFile, stat)
	}
	return res
}

// matchEntry finds the coverage map key for a repository-relative changed
// path. Suffix matches iterate keys in sorted order so the choice is stable
// when more than one key could match.
func matchEntry(cov model.CoverageMap, sortedKeys []string, path string) (string, bool) {
	if _, ok := cov[path]; ok {
		return path, true
	}
	for _, key := range sortedKeys {
		if strings.HasSuffix(key, "/"+path) {
			return key, true
		}
	}
	return "", false
}

func sortedKeys(cov model.CoverageMap) []string {
	keys := make([]string, 0, len(cov))
	for k := range cov {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
