// Package coveragefile implements the CoverageLoader port for the JSON
// coverage map the instrumentation step persists.
package coveragefile

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/ericfisherdev/covgate/internal/domain/model"
	"github.com/ericfisherdev/covgate/internal/domain/port/driven"
)

// Compile-time interface satisfaction check.
var _ driven.CoverageLoader = (*Loader)(nil)

// Loader reads a serialized CoverageMap: a JSON object keyed by absolute file
// path, each value holding a "statements" object mapping statement index to
// execution count.
type Loader struct{}

// NewLoader creates a Loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load parses the coverage file at path. A missing file or malformed content
// is fatal; there is no meaningful partial result.
func (l *Loader) Load(path string) (model.CoverageMap, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading coverage file %s: %w: %w", path, model.ErrData, err)
	}

	var cov model.CoverageMap
	if err := json.Unmarshal(raw, &cov); err != nil {
		return nil, fmt.Errorf("parsing coverage file %s: %w: %w", path, model.ErrData, err)
	}

	for path, file := range cov {
		for idx, count := range file.Statements {
			if count < 0 {
				return nil, fmt.Errorf("parsing coverage file: %w: negative count for statement %s of %s", model.ErrData, idx, path)
			}
		}
	}

	return cov, nil
}
