// Package types defines the shared data structures exchanged between pipeline stages.
package types

import "strings"

// DefaultSeniority is assumed when the extractor returns an unknown or missing label.
const DefaultSeniority = "mid"

// SeniorityLabels lists the valid seniority labels in ascending order.
var SeniorityLabels = []string{
	"intern", "junior", "mid", "senior", "lead", "manager", "director", "executive",
}

// RequirementProfile is the structured form of a job description.
// It is produced once per job and is immutable after creation.
type RequirementProfile struct {
	Title            string   `json:"title"`
	Seniority        string   `json:"seniority"`
	RequiredSkills   []string `json:"required_skills"`
	NiceToHaveSkills []string `json:"nice_to_have_skills"`
	Responsibilities []string `json:"responsibilities"`
	RawSummary       string   `json:"raw_summary,omitempty"`
}

// ResponsibilityText joins the responsibility bullets into a single text block
// suitable for embedding.
func (p *RequirementProfile) ResponsibilityText() string {
	return strings.Join(p.Responsibilities, "\n")
}

// ApplyDefaults fills missing optional fields with defined defaults so that
// downstream scoring never has to guard against nil slices or unknown labels.
func (p *RequirementProfile) ApplyDefaults() {
	if !isKnownSeniority(p.Seniority) {
		p.Seniority = DefaultSeniority
	}
	if p.RequiredSkills == nil {
		p.RequiredSkills = []string{}
	}
	if p.NiceToHaveSkills == nil {
		p.NiceToHaveSkills = []string{}
	}
	if p.Responsibilities == nil {
		p.Responsibilities = []string{}
	}
}

// IsEmpty reports whether the profile carries no extracted content.
// Extraction failures degrade to an empty profile rather than failing a batch.
func (p *RequirementProfile) IsEmpty() bool {
	return p.Title == "" &&
		len(p.RequiredSkills) == 0 &&
		len(p.NiceToHaveSkills) == 0 &&
		len(p.Responsibilities) == 0
}

// CandidateProfile is the structured form of a resume.
// It is produced once per resume and is immutable after creation.
type CandidateProfile struct {
	Name              string   `json:"name"`
	Titles            []string `json:"titles"`
	Seniority         string   `json:"seniority"`
	Skills            []string `json:"skills"`
	ExperienceBullets []string `json:"experience_bullets"`
	Education         []string `json:"education"`
}

// ExperienceText joins the experience bullets into a single text block
// suitable for embedding.
func (p *CandidateProfile) ExperienceText() string {
	return strings.Join(p.ExperienceBullets, "\n")
}

// ApplyDefaults fills missing optional fields with defined defaults.
func (p *CandidateProfile) ApplyDefaults() {
	if !isKnownSeniority(p.Seniority) {
		p.Seniority = DefaultSeniority
	}
	if p.Titles == nil {
		p.Titles = []string{}
	}
	if p.Skills == nil {
		p.Skills = []string{}
	}
	if p.ExperienceBullets == nil {
		p.ExperienceBullets = []string{}
	}
	if p.Education == nil {
		p.Education = []string{}
	}
}

// IsEmpty reports whether the profile carries no extracted content.
func (p *CandidateProfile) IsEmpty() bool {
	return p.Name == "" &&
		len(p.Titles) == 0 &&
		len(p.Skills) == 0 &&
		len(p.ExperienceBullets) == 0
}

func isKnownSeniority(label string) bool {
	normalized := strings.ToLower(strings.TrimSpace(label))
	for _, l := range SeniorityLabels {
		if l == normalized {
			return true
		}
	}
	return false
}
