// Package pipeline orchestrates a scoring batch: structure the job, structure
// and score each resume with failure isolation, and rank the results.
package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/talent-intel/internal/cache"
	"github.com/jonathan/talent-intel/internal/embeddings"
	"github.com/jonathan/talent-intel/internal/extraction"
	"github.com/jonathan/talent-intel/internal/scoring"
	"github.com/jonathan/talent-intel/internal/types"
)

// DefaultCallTimeout bounds each external call (extraction, embedding,
// authenticity estimation). Timeouts are recoverable per-candidate failures.
const DefaultCallTimeout = 60 * time.Second

// DefaultConcurrency bounds the per-candidate fan-out. Candidates share no
// mutable state, so scoring them is embarrassingly parallel.
const DefaultConcurrency = 4

// Options configures a Runner.
type Options struct {
	Variants    scoring.Variants
	Concurrency int
	CallTimeout time.Duration
	Cache       *cache.Store // optional; nil disables memoization
	Logger      *zap.Logger
}

// Runner executes scoring batches against the external extraction and
// embedding services.
type Runner struct {
	extractor extraction.Extractor
	embedder  embeddings.Provider
	opts      Options
}

// NewRunner creates a Runner. Zero option fields get defaults.
func NewRunner(extractor extraction.Extractor, embedder embeddings.Provider, opts Options) *Runner {
	if opts.Concurrency <= 0 {
		opts.Concurrency = DefaultConcurrency
	}
	if opts.CallTimeout <= 0 {
		opts.CallTimeout = DefaultCallTimeout
	}
	if opts.Variants == (scoring.Variants{}) {
		opts.Variants = scoring.DefaultVariants()
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	return &Runner{extractor: extractor, embedder: embedder, opts: opts}
}

// ResumeInput is one resume to score, already reduced to plain text.
type ResumeInput struct {
	FileName string
	Text     string
}

// Result is a completed scoring batch. Candidates are ranked descending by
// overall score, ties keeping input order.
type Result struct {
	BatchID    string                  `json:"batch_id"`
	Job        types.RequirementProfile `json:"job"`
	Weights    types.WeightVector       `json:"weights"`
	Candidates []types.ScoredCandidate  `json:"candidates"`
}

// ScoreBatch scores all resumes against the job text under the given weights.
//
// The weight vector is normalized once at the start; the normalized snapshot
// is read-only for the whole batch. A zero-sum vector aborts the request.
// Per-candidate failures degrade that one candidate and never abort the batch.
func (r *Runner) ScoreBatch(ctx context.Context, jobText string, resumes []ResumeInput, weights types.WeightVector) (*Result, error) {
	normalized, err := weights.Normalized()
	if err != nil {
		return nil, fmt.Errorf("invalid weight vector: %w", err)
	}
	if len(resumes) == 0 {
		return nil, fmt.Errorf("no resumes to score")
	}

	batchID := uuid.New().String()
	log := r.opts.Logger.With(zap.String("batch_id", batchID))
	log.Info("starting scoring batch", zap.Int("resumes", len(resumes)))

	job, jobVec := r.prepareJob(ctx, jobText, log)

	candidates := make([]types.ScoredCandidate, len(resumes))
	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(r.opts.Concurrency)
	for i, resume := range resumes {
		group.Go(func() error {
			candidates[i] = r.scoreOne(groupCtx, job, jobText, jobVec, resume, normalized, log)
			return nil
		})
	}
	// Workers never return errors; Wait only surfaces context cancellation.
	if err := group.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	scoring.Rank(candidates)
	log.Info("scoring batch complete", zap.Int("candidates", len(candidates)))

	return &Result{
		BatchID:    batchID,
		Job:        *job,
		Weights:    normalized,
		Candidates: candidates,
	}, nil
}

// prepareJob structures the job text and embeds its responsibility block.
// Extraction failure degrades to an empty profile; the raw job text then
// serves as the embedding input so similarity still has something to compare.
func (r *Runner) prepareJob(ctx context.Context, jobText string, log *zap.Logger) (*types.RequirementProfile, []float32) {
	callCtx, cancel := context.WithTimeout(ctx, r.opts.CallTimeout)
	defer cancel()

	job, err := r.extractor.JobRequirements(callCtx, jobText)
	if err != nil {
		log.Warn("job extraction failed, continuing with empty profile", zap.Error(err))
		job = &types.RequirementProfile{}
		job.ApplyDefaults()
	}

	embedText := job.ResponsibilityText()
	if embedText == "" {
		embedText = jobText
	}
	if embedText == "" {
		return job, nil
	}

	embedCtx, cancelEmbed := context.WithTimeout(ctx, r.opts.CallTimeout)
	defer cancelEmbed()
	jobVec, err := r.embedder.Embed(embedCtx, embedText)
	if err != nil {
		log.Warn("job embedding failed, similarity signal degrades to 0", zap.Error(err))
		return job, nil
	}
	return job, jobVec
}

// scoreOne scores a single resume. All failures are captured as a degraded
// marker on the returned candidate instead of an error.
func (r *Runner) scoreOne(ctx context.Context, job *types.RequirementProfile, jobText string, jobVec []float32, resume ResumeInput, weights types.WeightVector, log *zap.Logger) types.ScoredCandidate {
	log = log.With(zap.String("file", resume.FileName))

	key := cache.NewKey(resume.Text, jobText, weights)
	if r.opts.Cache != nil {
		if cached, ok := r.opts.Cache.Get(key); ok {
			log.Debug("cache hit, skipping recompute")
			cached.FileName = resume.FileName
			return cached
		}
	}

	candidate := types.ScoredCandidate{FileName: resume.FileName}
	degrade := func(reason string, err error) {
		log.Warn("candidate scoring degraded", zap.String("reason", reason), zap.Error(err))
		candidate.Degraded = true
		if candidate.DegradedReason == "" {
			candidate.DegradedReason = reason
		} else {
			candidate.DegradedReason += "; " + reason
		}
	}

	// Structure the resume
	profile := r.extractCandidate(ctx, resume.Text, degrade)
	candidate.Profile = *profile

	// Authenticity estimate
	report := r.estimateAuthenticity(ctx, resume.Text, degrade)
	candidate.Authenticity = *report
	candidate.AuthenticityPercent = scoring.ClampPercent(report.LikelihoodPercent)
	candidate.ValidityPercent = r.opts.Variants.ValidityPercent(candidate.AuthenticityPercent)

	// Signals
	candidate.Signals = types.SignalVector{
		ExperienceSimilarity: r.experienceSimilarity(ctx, jobVec, profile, resume.Text, degrade),
		SkillOverlap:         r.skillOverlap(job, profile),
		TrajectoryAlignment:  scoring.TrajectoryAlignment(job.Seniority, profile.Seniority),
	}
	candidate.OverallScore = scoring.OverallScore(candidate.Signals, weights)

	if r.opts.Cache != nil {
		r.opts.Cache.Put(key, candidate)
	}
	return candidate
}

func (r *Runner) extractCandidate(ctx context.Context, text string, degrade func(string, error)) *types.CandidateProfile {
	callCtx, cancel := context.WithTimeout(ctx, r.opts.CallTimeout)
	defer cancel()

	profile, err := r.extractor.CandidateProfile(callCtx, text)
	if err != nil {
		degrade("resume extraction failed", err)
		profile = &types.CandidateProfile{}
		profile.ApplyDefaults()
	}
	return profile
}

func (r *Runner) estimateAuthenticity(ctx context.Context, text string, degrade func(string, error)) *types.AuthenticityReport {
	callCtx, cancel := context.WithTimeout(ctx, r.opts.CallTimeout)
	defer cancel()

	report, err := r.extractor.Authenticity(callCtx, text)
	if err != nil {
		degrade("authenticity estimation failed", err)
		return &types.AuthenticityReport{Flags: []string{}}
	}
	return report
}

// experienceSimilarity embeds the candidate's experience text and compares it
// against the job vector. Empty text on either side yields 0 without calling
// the provider; embedding failure degrades the signal to 0.
func (r *Runner) experienceSimilarity(ctx context.Context, jobVec []float32, profile *types.CandidateProfile, resumeText string, degrade func(string, error)) float64 {
	if len(jobVec) == 0 {
		return 0
	}

	embedText := profile.ExperienceText()
	if embedText == "" {
		embedText = resumeText
	}
	if embedText == "" {
		return 0
	}

	callCtx, cancel := context.WithTimeout(ctx, r.opts.CallTimeout)
	defer cancel()

	vec, err := r.embedder.Embed(callCtx, embedText)
	if err != nil {
		degrade("experience embedding failed", err)
		return 0
	}
	return scoring.ExperienceSimilarity(jobVec, vec)
}

// skillOverlap computes the skill signal under the configured variant.
// In fuzzy mode, required skills mentioned verbatim inside experience bullets
// are merged into the candidate's skill list first.
func (r *Runner) skillOverlap(job *types.RequirementProfile, profile *types.CandidateProfile) float64 {
	candidateSkills := profile.Skills
	if r.opts.Variants.SkillMatch == scoring.SkillMatchFuzzy {
		harvested := scoring.HarvestSkills(profile.ExperienceBullets, job.RequiredSkills)
		if len(harvested) > 0 {
			candidateSkills = append(append([]string{}, candidateSkills...), harvested...)
		}
	}
	return r.opts.Variants.SkillOverlap(job.RequiredSkills, candidateSkills)
}
