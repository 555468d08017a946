package observability

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/talent-intel/internal/types"
)

func TestPrintRequirementProfile(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	job := &types.RequirementProfile{
		Title:            "Senior Backend Engineer",
		Seniority:        "senior",
		RequiredSkills:   []string{"python", "sql", "go", "docker", "kubernetes", "terraform", "aws"},
		NiceToHaveSkills: []string{"grpc"},
	}

	p.PrintRequirementProfile(job)
	output := buf.String()

	assert.Contains(t, output, "Job Requirements")
	assert.Contains(t, output, "Senior Backend Engineer")
	assert.Contains(t, output, "senior")
	assert.Contains(t, output, "python")
	assert.Contains(t, output, "and 2 more")
	assert.Contains(t, output, "grpc")
}

func TestPrintRequirementProfile_Nil(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintRequirementProfile(nil)

	assert.Empty(t, buf.String())
}

func TestPrintRankedCandidates(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintRankedCandidates([]types.ScoredCandidate{
		{
			FileName: "dana.pdf",
			Profile:  types.CandidateProfile{Name: "Dana Smith"},
			Signals: types.SignalVector{
				ExperienceSimilarity: 0.9,
				SkillOverlap:         0.5,
				TrajectoryAlignment:  0.8,
			},
			OverallScore:        66.5,
			ValidityPercent:     88,
			AuthenticityPercent: 12,
			Authenticity:        types.AuthenticityReport{Flags: []string{"repetitive structure"}},
		},
		{
			FileName:       "broken.pdf",
			Degraded:       true,
			DegradedReason: "resume extraction failed",
		},
	})
	output := buf.String()

	assert.Contains(t, output, "dana.pdf")
	assert.Contains(t, output, "Dana Smith")
	assert.Contains(t, output, "66.5")
	assert.Contains(t, output, "repetitive structure")
	assert.Contains(t, output, "(name not found)")
	assert.Contains(t, output, "DEGRADED: resume extraction failed")
}
