package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/jonathan/talent-intel/internal/ingestion"
	"github.com/jonathan/talent-intel/internal/pipeline"
	"github.com/jonathan/talent-intel/internal/scoring"
	"github.com/jonathan/talent-intel/internal/types"
)

// ResumePayload is one resume in a score request. Text is raw resume text;
// callers performing their own PDF/DOCX extraction send the result here.
type ResumePayload struct {
	FileName string `json:"file" validate:"required"`
	Text     string `json:"text" validate:"required"`
}

// ScoreRequest is the request body for POST /api/v1/score.
// Exactly one of job_url and job_text must be set.
type ScoreRequest struct {
	JobURL  string              `json:"job_url,omitempty" validate:"omitempty,url"`
	JobText string              `json:"job_text,omitempty"`
	Resumes []ResumePayload     `json:"resumes" validate:"required,min=1,dive"`
	Weights *types.WeightVector `json:"weights,omitempty"`
}

// handleScore runs a scoring batch and returns the ranked result.
func (s *Server) handleScore(w http.ResponseWriter, r *http.Request) {
	var req ScoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if err := s.validate.Struct(req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}
	if (req.JobURL == "") == (req.JobText == "") {
		s.errorResponse(w, http.StatusBadRequest, "exactly one of job_url or job_text is required")
		return
	}

	weights := s.cfg.DefaultWeights
	if req.Weights != nil {
		weights = *req.Weights
	}

	jobText := req.JobText
	if req.JobURL != "" {
		fetched, err := ingestion.JobTextFromURL(r.Context(), req.JobURL, s.cfg.UseBrowser, s.log)
		if err != nil {
			// Recoverable source failure: continue with empty job text so the
			// batch still produces an auditable (degraded) result.
			s.log.Warn("job fetch failed, scoring with empty job text",
				zap.String("url", req.JobURL), zap.Error(err))
		}
		jobText = fetched
	}

	resumes := make([]pipeline.ResumeInput, len(req.Resumes))
	for i, resume := range req.Resumes {
		resumes[i] = pipeline.ResumeInput{
			FileName: resume.FileName,
			Text:     ingestion.CleanText(resume.Text),
		}
	}

	result, err := s.scorer.ScoreBatch(r.Context(), jobText, resumes, weights)
	if err != nil {
		if errors.Is(err, types.ErrZeroWeightSum) {
			s.errorResponse(w, http.StatusBadRequest, err.Error())
			return
		}
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, result)
}

// FeedbackRequest is the request body for POST /api/v1/feedback.
// The caller owns the weight vector across its session and echoes back the
// scored candidate's signal vector the feedback refers to.
type FeedbackRequest struct {
	Weights  types.WeightVector `json:"weights" validate:"required"`
	Signals  types.SignalVector `json:"signals"`
	Positive bool               `json:"positive"`
}

// FeedbackResponse carries the adjusted, renormalized weight vector.
type FeedbackResponse struct {
	Weights types.WeightVector `json:"weights"`
}

// handleFeedback applies one accept/reject signal to a weight vector.
func (s *Server) handleFeedback(w http.ResponseWriter, r *http.Request) {
	var req FeedbackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	adjusted, err := scoring.ApplyFeedback(req.Weights, req.Signals, req.Positive)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid weight vector: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, FeedbackResponse{Weights: adjusted})
}
