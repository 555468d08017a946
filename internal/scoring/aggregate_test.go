package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/talent-intel/internal/types"
)

func TestOverallScore_WorkedExample(t *testing.T) {
	// (0.5*0.8 + 0.35*0.5 + 0.15*0.8) * 100 = 69.5
	signals := types.SignalVector{
		ExperienceSimilarity: 0.8,
		SkillOverlap:         0.5,
		TrajectoryAlignment:  0.8,
	}
	weights := types.WeightVector{Experience: 0.5, Skills: 0.35, Trajectory: 0.15}

	assert.InDelta(t, 69.5, OverallScore(signals, weights), 1e-9)
}

func TestOverallScore_Bounds(t *testing.T) {
	weights := types.DefaultWeights()

	zero := OverallScore(types.SignalVector{}, weights)
	assert.Equal(t, 0.0, zero)

	full := OverallScore(types.SignalVector{
		ExperienceSimilarity: 1,
		SkillOverlap:         1,
		TrajectoryAlignment:  1,
	}, weights)
	assert.InDelta(t, 100.0, full, 1e-9)
}

func TestOverallScore_ClampsBeforeScaling(t *testing.T) {
	// Out-of-range signals cannot push the score past 100
	signals := types.SignalVector{
		ExperienceSimilarity: 1.5,
		SkillOverlap:         1.5,
		TrajectoryAlignment:  1.5,
	}
	score := OverallScore(signals, types.DefaultWeights())
	assert.Equal(t, 100.0, score)
}

func TestOverallScore_MonotoneInEachSignal(t *testing.T) {
	weights := types.WeightVector{Experience: 0.5, Skills: 0.35, Trajectory: 0.15}
	base := types.SignalVector{
		ExperienceSimilarity: 0.4,
		SkillOverlap:         0.4,
		TrajectoryAlignment:  0.5,
	}
	baseScore := OverallScore(base, weights)

	bumps := []types.SignalVector{
		{ExperienceSimilarity: 0.6, SkillOverlap: 0.4, TrajectoryAlignment: 0.5},
		{ExperienceSimilarity: 0.4, SkillOverlap: 0.6, TrajectoryAlignment: 0.5},
		{ExperienceSimilarity: 0.4, SkillOverlap: 0.4, TrajectoryAlignment: 0.8},
	}
	for i, bumped := range bumps {
		assert.GreaterOrEqual(t, OverallScore(bumped, weights), baseScore, "signal %d", i)
	}
}

func TestRank_SortsDescending(t *testing.T) {
	candidates := []types.ScoredCandidate{
		{FileName: "low.pdf", OverallScore: 20},
		{FileName: "high.pdf", OverallScore: 90},
		{FileName: "middle.pdf", OverallScore: 55},
	}

	Rank(candidates)

	require.Len(t, candidates, 3)
	assert.Equal(t, "high.pdf", candidates[0].FileName)
	assert.Equal(t, "middle.pdf", candidates[1].FileName)
	assert.Equal(t, "low.pdf", candidates[2].FileName)
}

func TestRank_TiesKeepInputOrder(t *testing.T) {
	candidates := []types.ScoredCandidate{
		{FileName: "first.pdf", OverallScore: 50},
		{FileName: "second.pdf", OverallScore: 50},
		{FileName: "winner.pdf", OverallScore: 80},
		{FileName: "third.pdf", OverallScore: 50},
	}

	Rank(candidates)

	assert.Equal(t, "winner.pdf", candidates[0].FileName)
	assert.Equal(t, "first.pdf", candidates[1].FileName)
	assert.Equal(t, "second.pdf", candidates[2].FileName)
	assert.Equal(t, "third.pdf", candidates[3].FileName)
}

func TestDefaultVariants(t *testing.T) {
	variants := DefaultVariants()
	assert.Equal(t, SkillMatchExact, variants.SkillMatch)
	assert.Equal(t, ValidityNonlinear, variants.Validity)
}

func TestVariants_DispatchSkillOverlap(t *testing.T) {
	required := []string{"postgresql"}
	candidate := []string{"postgres"}

	exact := Variants{SkillMatch: SkillMatchExact}
	fuzzy := Variants{SkillMatch: SkillMatchFuzzy}

	assert.Equal(t, 0.0, exact.SkillOverlap(required, candidate))
	assert.Greater(t, fuzzy.SkillOverlap(required, candidate), 0.5)
}
