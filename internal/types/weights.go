package types

import "errors"

// ErrZeroWeightSum is returned when a weight vector cannot be normalized
// because all components are zero. This indicates caller misconfiguration and
// must abort the request rather than degrade.
var ErrZeroWeightSum = errors.New("weight vector sums to zero")

// WeightVector holds the coefficients that combine the three signals into the
// overall score. It is a value type: callers own its lifetime, pass it into
// scoring calls, and receive updated copies from feedback handling. It is
// never stored as ambient process state.
type WeightVector struct {
	Experience float64 `json:"experience"`
	Skills     float64 `json:"skills"`
	Trajectory float64 `json:"trajectory"`
}

// DefaultWeights returns the starting weights used when a caller supplies none.
func DefaultWeights() WeightVector {
	return WeightVector{Experience: 0.5, Skills: 0.35, Trajectory: 0.15}
}

// Sum returns the total of all components.
func (w WeightVector) Sum() float64 {
	return w.Experience + w.Skills + w.Trajectory
}

// Normalized returns a copy scaled so the components sum to 1.
// Returns ErrZeroWeightSum when the vector sums to zero, and an error for
// negative components; both are validation failures the caller must reject.
func (w WeightVector) Normalized() (WeightVector, error) {
	if w.Experience < 0 || w.Skills < 0 || w.Trajectory < 0 {
		return WeightVector{}, errors.New("weight vector has negative component")
	}
	sum := w.Sum()
	if sum == 0 {
		return WeightVector{}, ErrZeroWeightSum
	}
	return WeightVector{
		Experience: w.Experience / sum,
		Skills:     w.Skills / sum,
		Trajectory: w.Trajectory / sum,
	}, nil
}

// Get returns the component value for a signal.
func (w WeightVector) Get(s Signal) float64 {
	switch s {
	case SignalExperience:
		return w.Experience
	case SignalSkills:
		return w.Skills
	case SignalTrajectory:
		return w.Trajectory
	}
	return 0
}

// With returns a copy with the component for a signal replaced.
func (w WeightVector) With(s Signal, value float64) WeightVector {
	switch s {
	case SignalExperience:
		w.Experience = value
	case SignalSkills:
		w.Skills = value
	case SignalTrajectory:
		w.Trajectory = value
	}
	return w
}
