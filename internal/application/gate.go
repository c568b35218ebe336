package application

import "github.com/ericfisherdev/covgate/internal/domain/model"

// Evaluate decides pass/fail from an aggregation result and a configured
// minimum percentage. The boundary is inclusive: a percentage exactly equal
// to the threshold passes. A not-applicable result always passes; there is
// no changed instrumented code to hold to the bar.
func Evaluate(res model.AggregationResult, threshold float64) model.GateDecision {
	decision := model.GateDecision{
		Applicable: res.Applicable(),
		Threshold:  threshold,
	}

	if !decision.Applicable {
		decision.Pass = true
		return decision
	}

	decision.Percentage = res.Percentage()
	decision.Pass = decision.Percentage >= threshold
	return decision
}
