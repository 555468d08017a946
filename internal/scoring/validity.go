package scoring

import "math"

// ValidityMode selects how the AI-likelihood percent converts to a validity
// percent. Two transforms existed in the original system; the nonlinear one
// penalizes moderate AI likelihood more softly and is the default.
type ValidityMode string

// Validity modes.
const (
	// ValidityLinear computes 100 - p.
	ValidityLinear ValidityMode = "linear"
	// ValidityNonlinear computes 100 - floor(p^1.2 / 100^0.2), softening the
	// penalty for moderate AI likelihood.
	ValidityNonlinear ValidityMode = "nonlinear"
)

// ClampPercent clamps an externally supplied percent into [0,100].
// The authenticity estimator is a black box; its output is never trusted raw.
func ClampPercent(p int) int {
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}

// Validity derives a resume validity percent from an AI-likelihood percent.
// The input is clamped first; the result is always in [0,100].
func Validity(aiPercent int, mode ValidityMode) int {
	p := ClampPercent(aiPercent)

	var validity int
	switch mode {
	case ValidityLinear:
		validity = 100 - p
	default:
		penalty := int(math.Floor(math.Pow(float64(p), 1.2) / math.Pow(100, 0.2)))
		validity = 100 - penalty
	}

	return ClampPercent(validity)
}
