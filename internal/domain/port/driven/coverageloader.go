package driven

import "github.com/ericfisherdev/covgate/internal/domain/model"

// CoverageLoader defines the driven port for reading a persisted coverage
// map. A missing or malformed file surfaces wrapped in model.ErrData; there
// is no meaningful partial result.
type CoverageLoader interface {
	Load(path string) (model.CoverageMap, error)
}
