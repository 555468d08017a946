package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSkillOverlap_PartialMatch(t *testing.T) {
	// Half of the required skills are covered
	overlap := SkillOverlap([]string{"python", "sql"}, []string{"python", "java"})
	assert.InDelta(t, 0.5, overlap, 1e-9)
}

func TestSkillOverlap_SupersetScoresFull(t *testing.T) {
	required := []string{"go", "docker"}
	candidate := []string{"go", "docker", "kubernetes", "terraform"}
	assert.InDelta(t, 1.0, SkillOverlap(required, candidate), 1e-9)
}

func TestSkillOverlap_EmptyRequiredYieldsZero(t *testing.T) {
	assert.Equal(t, 0.0, SkillOverlap(nil, []string{"python"}))
	assert.Equal(t, 0.0, SkillOverlap([]string{}, []string{"python"}))
}

func TestSkillOverlap_CaseFoldingAndTrimming(t *testing.T) {
	overlap := SkillOverlap([]string{"Python", " SQL "}, []string{"python ", "sql"})
	assert.InDelta(t, 1.0, overlap, 1e-9)
}

func TestSkillOverlap_DuplicatesCollapse(t *testing.T) {
	// Duplicate required entries count once
	overlap := SkillOverlap([]string{"go", "go", "sql"}, []string{"go"})
	assert.InDelta(t, 0.5, overlap, 1e-9)
}

func TestSkillOverlap_AlwaysInUnitInterval(t *testing.T) {
	cases := [][2][]string{
		{{"a", "b", "c"}, {"a"}},
		{{"a"}, {"a", "b", "c", "d"}},
		{{}, {}},
		{{"x"}, {}},
	}
	for _, c := range cases {
		overlap := SkillOverlap(c[0], c[1])
		assert.GreaterOrEqual(t, overlap, 0.0)
		assert.LessOrEqual(t, overlap, 1.0)
	}
}

func TestFuzzySkillOverlap_ExactTokensScoreFull(t *testing.T) {
	overlap := FuzzySkillOverlap([]string{"python", "sql"}, []string{"python", "sql"})
	assert.InDelta(t, 1.0, overlap, 1e-9)
}

func TestFuzzySkillOverlap_NearTokensEarnPartialCredit(t *testing.T) {
	// "postgres" vs "postgresql" should earn much more than an exact matcher's 0
	overlap := FuzzySkillOverlap([]string{"postgresql"}, []string{"postgres"})
	assert.Greater(t, overlap, 0.6)
	assert.LessOrEqual(t, overlap, 1.0)
}

func TestFuzzySkillOverlap_UnrelatedTokensScoreLow(t *testing.T) {
	overlap := FuzzySkillOverlap([]string{"haskell"}, []string{"photoshop"})
	assert.Less(t, overlap, 0.5)
}

func TestFuzzySkillOverlap_EmptySidesYieldZero(t *testing.T) {
	assert.Equal(t, 0.0, FuzzySkillOverlap(nil, []string{"go"}))
	assert.Equal(t, 0.0, FuzzySkillOverlap([]string{"go"}, nil))
}

func TestFuzzySkillOverlap_BoundedForMixedSets(t *testing.T) {
	overlap := FuzzySkillOverlap(
		[]string{"kubernetes", "golang", "aws"},
		[]string{"k8s", "go", "amazon web services", "python"},
	)
	assert.GreaterOrEqual(t, overlap, 0.0)
	assert.LessOrEqual(t, overlap, 1.0)
}

func TestHarvestSkills_FindsSkillsInBullets(t *testing.T) {
	bullets := []string{
		"Built data pipelines in Python on top of PostgreSQL",
		"Led migration to Kubernetes",
	}
	found := HarvestSkills(bullets, []string{"python", "kubernetes", "rust"})
	assert.Equal(t, []string{"python", "kubernetes"}, found)
}

func TestHarvestSkills_EmptyInputs(t *testing.T) {
	assert.Nil(t, HarvestSkills(nil, []string{"go"}))
	assert.Nil(t, HarvestSkills([]string{"did things"}, nil))
}
