package scoring

import "github.com/jonathan/talent-intel/internal/types"

// Feedback adjustment factors. These are heuristics, not learning: a positive
// signal boosts the weight of whatever the candidate was strongest at, a
// negative signal dampens the weight of the weakest signal.
const (
	positiveBoost = 1.5
	negativeDamp  = 0.7
	weightCeiling = 1.0
	weightFloor   = 0.05
)

// ApplyFeedback nudges a weight vector in response to user feedback on a
// scored candidate and returns the renormalized result. The input vector is
// not mutated; callers own the returned value for the rest of their session.
// The adjustment is session-local by construction and never persisted.
func ApplyFeedback(weights types.WeightVector, signals types.SignalVector, positive bool) (types.WeightVector, error) {
	// Reject invalid vectors before adjustment: the floor on the negative path
	// would otherwise turn a zero-sum vector into a normalizable one.
	if _, err := weights.Normalized(); err != nil {
		return types.WeightVector{}, err
	}

	var adjusted types.WeightVector
	if positive {
		strongest := signals.Strongest()
		boosted := weights.Get(strongest) * positiveBoost
		if boosted > weightCeiling {
			boosted = weightCeiling
		}
		adjusted = weights.With(strongest, boosted)
	} else {
		weakest := signals.Weakest()
		damped := weights.Get(weakest) * negativeDamp
		if damped < weightFloor {
			damped = weightFloor
		}
		adjusted = weights.With(weakest, damped)
	}

	return adjusted.Normalized()
}
