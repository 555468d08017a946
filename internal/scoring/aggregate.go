package scoring

import (
	"sort"

	"github.com/jonathan/talent-intel/internal/types"
)

// Variants bundles the formula choices that previously drifted across
// near-identical endpoint copies of the original system. Exactly one Variants
// value is configured per deployment and flows through every scoring call.
type Variants struct {
	SkillMatch SkillMatchMode `json:"skill_match"`
	Validity   ValidityMode   `json:"validity"`
}

// DefaultVariants returns the deliberate production choice: exact skill
// overlap (the documented contract) and the softened nonlinear validity
// transform (the preferred of the two observed variants).
func DefaultVariants() Variants {
	return Variants{
		SkillMatch: SkillMatchExact,
		Validity:   ValidityNonlinear,
	}
}

// SkillOverlap computes the skill overlap under the configured mode.
func (v Variants) SkillOverlap(required, candidate []string) float64 {
	if v.SkillMatch == SkillMatchFuzzy {
		return FuzzySkillOverlap(required, candidate)
	}
	return SkillOverlap(required, candidate)
}

// ValidityPercent converts an AI-likelihood percent under the configured mode.
func (v Variants) ValidityPercent(aiPercent int) int {
	return Validity(aiPercent, v.Validity)
}

// OverallScore combines a signal vector under a normalized weight vector into
// a 0-100 score. Weights must be pre-normalized via WeightVector.Normalized;
// passing a zero-sum vector is caller misconfiguration and must be rejected
// before this call.
func OverallScore(signals types.SignalVector, weights types.WeightVector) float64 {
	score := weights.Experience*signals.ExperienceSimilarity +
		weights.Skills*signals.SkillOverlap +
		weights.Trajectory*signals.TrajectoryAlignment
	return clamp01(score) * 100
}

// Rank sorts scored candidates in place, descending by overall score.
// The sort is stable: candidates with identical scores keep their original
// input order, so ranking is deterministic across runs.
func Rank(candidates []types.ScoredCandidate) {
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].OverallScore > candidates[j].OverallScore
	})
}
