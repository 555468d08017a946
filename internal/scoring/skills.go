package scoring

import (
	"strings"

	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"
)

// SkillMatchMode selects which skill-overlap formula the aggregator uses.
// The original system carried both variants across divergent code paths; here
// the variant is an explicit configuration choice.
type SkillMatchMode string

// Skill match modes.
const (
	// SkillMatchExact scores |required ∩ candidate| / max(1, |required|).
	SkillMatchExact SkillMatchMode = "exact"
	// SkillMatchFuzzy averages, over required skills, the best pairwise
	// string-similarity score against any candidate skill.
	SkillMatchFuzzy SkillMatchMode = "fuzzy"
)

// SkillOverlap computes the exact-match overlap ratio between required and
// candidate skills. Both sets are case-folded and trimmed before comparison.
// An empty required set yields 0: no job requirements means no measurable
// match signal. The result is always in [0,1].
func SkillOverlap(required, candidate []string) float64 {
	req := normalizeSkillSet(required)
	if len(req) == 0 {
		return 0
	}
	cand := normalizeSkillSet(candidate)

	matched := 0
	for skill := range req {
		if _, ok := cand[skill]; ok {
			matched++
		}
	}
	return float64(matched) / float64(max(1, len(req)))
}

// FuzzySkillOverlap gives partial credit for near-equal skill tokens.
// For each required skill it takes the best pairwise similarity against any
// candidate skill, combining a full-string alignment (Levenshtein) with a
// local alignment (Smith-Waterman-Gotoh) so that substring-like matches such
// as "sql" vs "postgresql" still score well. The per-skill best scores are
// averaged across required skills. The result is always in [0,1].
func FuzzySkillOverlap(required, candidate []string) float64 {
	req := normalizeSkillList(required)
	if len(req) == 0 {
		return 0
	}
	cand := normalizeSkillList(candidate)
	if len(cand) == 0 {
		return 0
	}

	full := metrics.NewLevenshtein()
	partial := metrics.NewSmithWatermanGotoh()

	total := 0.0
	for _, reqSkill := range req {
		best := 0.0
		for _, candSkill := range cand {
			score := strutil.Similarity(reqSkill, candSkill, full)
			if local := strutil.Similarity(reqSkill, candSkill, partial); local > score {
				score = local
			}
			if score > best {
				best = score
			}
		}
		total += best
	}

	score := total / float64(max(1, len(req)))
	return clamp01(score)
}

// HarvestSkills returns the required skills that appear verbatim in the
// candidate's experience bullets. The extractor sometimes misses skills that
// are only mentioned inside prose; this recovers them before fuzzy matching.
func HarvestSkills(bullets, requiredSkills []string) []string {
	if len(bullets) == 0 || len(requiredSkills) == 0 {
		return nil
	}

	text := strings.ToLower(strings.Join(bullets, " "))
	var found []string
	seen := make(map[string]bool)
	for _, skill := range requiredSkills {
		normalized := strings.ToLower(strings.TrimSpace(skill))
		if normalized == "" || seen[normalized] {
			continue
		}
		if strings.Contains(text, normalized) {
			found = append(found, normalized)
			seen[normalized] = true
		}
	}
	return found
}

// normalizeSkillSet case-folds, trims, and deduplicates skills into a set.
func normalizeSkillSet(skills []string) map[string]struct{} {
	set := make(map[string]struct{}, len(skills))
	for _, s := range skills {
		normalized := strings.ToLower(strings.TrimSpace(s))
		if normalized != "" {
			set[normalized] = struct{}{}
		}
	}
	return set
}

// normalizeSkillList case-folds, trims, and deduplicates skills, preserving order.
func normalizeSkillList(skills []string) []string {
	out := make([]string, 0, len(skills))
	seen := make(map[string]bool, len(skills))
	for _, s := range skills {
		normalized := strings.ToLower(strings.TrimSpace(s))
		if normalized != "" && !seen[normalized] {
			out = append(out, normalized)
			seen[normalized] = true
		}
	}
	return out
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
