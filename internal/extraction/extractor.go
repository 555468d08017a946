// Package extraction is the boundary to the external LLM service that turns
// raw job and resume text into structured profiles, and estimates how likely
// resume text is machine-generated. Extractor output is never trusted raw: it
// is repaired, schema-validated, and defaulted before any scoring sees it.
package extraction

import (
	"context"
	"encoding/json"
	"math"
	"strings"

	"github.com/jonathan/talent-intel/internal/llm"
	"github.com/jonathan/talent-intel/internal/types"
)

// Extractor structures free text into the fixed profile schemas.
type Extractor interface {
	// JobRequirements extracts a RequirementProfile from job posting text.
	JobRequirements(ctx context.Context, text string) (*types.RequirementProfile, error)
	// CandidateProfile extracts a CandidateProfile from resume text.
	CandidateProfile(ctx context.Context, text string) (*types.CandidateProfile, error)
	// Authenticity estimates the likelihood that text is machine-generated.
	Authenticity(ctx context.Context, text string) (*types.AuthenticityReport, error)
}

// LLMExtractor implements Extractor on top of the Gemini client.
type LLMExtractor struct {
	client llm.Client
}

// NewLLMExtractor creates an extractor bound to an LLM client.
func NewLLMExtractor(client llm.Client) *LLMExtractor {
	return &LLMExtractor{client: client}
}

// JobRequirements extracts a RequirementProfile from job posting text.
func (e *LLMExtractor) JobRequirements(ctx context.Context, text string) (*types.RequirementProfile, error) {
	raw, err := e.generate(ctx, jobPrompt, text, llm.TierStandard)
	if err != nil {
		return nil, err
	}

	if err := validateSchema("job_requirements", jobSchema, raw); err != nil {
		return nil, err
	}

	var profile types.RequirementProfile
	if err := json.Unmarshal([]byte(raw), &profile); err != nil {
		return nil, &ExtractionError{Schema: "job_requirements", Message: "invalid JSON", Cause: err}
	}

	profile.ApplyDefaults()
	profile.RequiredSkills = normalizeSkills(profile.RequiredSkills)
	profile.NiceToHaveSkills = normalizeSkills(profile.NiceToHaveSkills)
	return &profile, nil
}

// CandidateProfile extracts a CandidateProfile from resume text.
func (e *LLMExtractor) CandidateProfile(ctx context.Context, text string) (*types.CandidateProfile, error) {
	raw, err := e.generate(ctx, resumePrompt, text, llm.TierStandard)
	if err != nil {
		return nil, err
	}

	if err := validateSchema("candidate_profile", resumeSchema, raw); err != nil {
		return nil, err
	}

	var profile types.CandidateProfile
	if err := json.Unmarshal([]byte(raw), &profile); err != nil {
		return nil, &ExtractionError{Schema: "candidate_profile", Message: "invalid JSON", Cause: err}
	}

	profile.ApplyDefaults()
	profile.Skills = normalizeSkills(profile.Skills)
	return &profile, nil
}

// Authenticity estimates the likelihood that text is machine-generated.
// The percent is clamped into [0,100] by the caller; here the raw report is
// validated and defaulted only.
func (e *LLMExtractor) Authenticity(ctx context.Context, text string) (*types.AuthenticityReport, error) {
	raw, err := e.generate(ctx, authenticityPrompt, text, llm.TierLite)
	if err != nil {
		return nil, err
	}

	if err := validateSchema("authenticity", authenticitySchema, raw); err != nil {
		return nil, err
	}

	// The schema allows a float percent; round before the int conversion.
	var parsed struct {
		LikelihoodPercent float64  `json:"ai_likelihood_percent"`
		Rationale         string   `json:"rationale"`
		Flags             []string `json:"flags"`
	}
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		return nil, &ExtractionError{Schema: "authenticity", Message: "invalid JSON", Cause: err}
	}

	report := &types.AuthenticityReport{
		LikelihoodPercent: int(math.Round(parsed.LikelihoodPercent)),
		Rationale:         parsed.Rationale,
		Flags:             parsed.Flags,
	}
	if report.Flags == nil {
		report.Flags = []string{}
	}
	return report, nil
}

// generate calls the LLM and repairs the response into a parseable JSON object.
func (e *LLMExtractor) generate(ctx context.Context, prompt, text string, tier llm.ModelTier) (string, error) {
	response, err := e.client.GenerateJSON(ctx, prompt+text, tier)
	if err != nil {
		return "", &APICallError{Message: "failed to generate structured output", Cause: err}
	}

	cleaned := llm.CleanJSONBlock(response)
	if json.Valid([]byte(cleaned)) {
		return cleaned, nil
	}

	repaired, ok := RepairJSONObject(cleaned)
	if !ok || !json.Valid([]byte(repaired)) {
		return "", &ExtractionError{Schema: "response", Message: "output is not a JSON object"}
	}
	return repaired, nil
}

// normalizeSkills lowercases, trims, and deduplicates skill tokens.
func normalizeSkills(skills []string) []string {
	normalized := make([]string, 0, len(skills))
	seen := make(map[string]bool, len(skills))
	for _, skill := range skills {
		s := strings.ToLower(strings.TrimSpace(skill))
		if s != "" && !seen[s] {
			normalized = append(normalized, s)
			seen[s] = true
		}
	}
	return normalized
}
