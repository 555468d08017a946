package types

// Signal identifies one of the three scoring signals.
type Signal string

// Signal constants name the components of a SignalVector.
const (
	SignalExperience Signal = "experience"
	SignalSkills     Signal = "skills"
	SignalTrajectory Signal = "trajectory"
)

// SignalVector holds the three normalized scoring signals for one candidate.
// All values are in [0,1]; TrajectoryAlignment takes one of the fixed
// breakpoint values {0.25, 0.5, 0.8, 1.0}.
type SignalVector struct {
	ExperienceSimilarity float64 `json:"experience_similarity"`
	SkillOverlap         float64 `json:"skill_overlap"`
	TrajectoryAlignment  float64 `json:"trajectory_alignment"`
}

// Strongest returns the signal with the highest value.
// Ties resolve in the fixed order experience, skills, trajectory.
func (v SignalVector) Strongest() Signal {
	best := SignalExperience
	bestValue := v.ExperienceSimilarity
	if v.SkillOverlap > bestValue {
		best = SignalSkills
		bestValue = v.SkillOverlap
	}
	if v.TrajectoryAlignment > bestValue {
		best = SignalTrajectory
	}
	return best
}

// Weakest returns the signal with the lowest value.
// Ties resolve in the fixed order experience, skills, trajectory.
func (v SignalVector) Weakest() Signal {
	worst := SignalExperience
	worstValue := v.ExperienceSimilarity
	if v.SkillOverlap < worstValue {
		worst = SignalSkills
		worstValue = v.SkillOverlap
	}
	if v.TrajectoryAlignment < worstValue {
		worst = SignalTrajectory
	}
	return worst
}

// AuthenticityReport is the external estimator's verdict on how likely the
// resume text is machine-generated. The core treats it as a black box and
// clamps LikelihoodPercent to [0,100] before use.
type AuthenticityReport struct {
	LikelihoodPercent int      `json:"ai_likelihood_percent"`
	Rationale         string   `json:"rationale"`
	Flags             []string `json:"flags"`
}

// ScoredCandidate is one row of a ranked scoring result. Every component of
// the score is exposed separately so the result stays explainable.
type ScoredCandidate struct {
	FileName            string             `json:"file"`
	Profile             CandidateProfile   `json:"parsed"`
	Signals             SignalVector       `json:"signals"`
	Authenticity        AuthenticityReport `json:"ai"`
	AuthenticityPercent int                `json:"ai_pct"`
	ValidityPercent     int                `json:"validity_pct"`
	OverallScore        float64            `json:"score"`

	// Degraded marks candidates whose scoring hit a recoverable external
	// failure. They stay in the ranked output for auditability.
	Degraded       bool   `json:"degraded,omitempty"`
	DegradedReason string `json:"degraded_reason,omitempty"`
}
