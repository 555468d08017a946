package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/talent-intel/internal/pipeline"
	"github.com/jonathan/talent-intel/internal/types"
)

// stubScorer records the last call and returns a canned result.
type stubScorer struct {
	lastJobText string
	lastResumes []pipeline.ResumeInput
	lastWeights types.WeightVector
	result      *pipeline.Result
	err         error
}

func (s *stubScorer) ScoreBatch(_ context.Context, jobText string, resumes []pipeline.ResumeInput, weights types.WeightVector) (*pipeline.Result, error) {
	s.lastJobText = jobText
	s.lastResumes = resumes
	s.lastWeights = weights
	if s.err != nil {
		return nil, s.err
	}
	return s.result, nil
}

func newTestServer(scorer *stubScorer) *Server {
	return New(Config{}, scorer, nil)
}

func postJSON(t *testing.T, handler http.Handler, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestHandleScore_HappyPath(t *testing.T) {
	scorer := &stubScorer{result: &pipeline.Result{
		BatchID: "batch-1",
		Weights: types.DefaultWeights(),
		Candidates: []types.ScoredCandidate{
			{FileName: "dana.pdf", OverallScore: 66.5},
		},
	}}
	srv := newTestServer(scorer)

	rec := postJSON(t, srv.Handler(), "/api/v1/score", ScoreRequest{
		JobText: "Senior Backend Engineer posting",
		Resumes: []ResumePayload{{FileName: "dana.pdf", Text: "Dana Smith\nEngineer"}},
	})

	require.Equal(t, http.StatusOK, rec.Code)
	var result pipeline.Result
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, "batch-1", result.BatchID)
	require.Len(t, result.Candidates, 1)
	assert.Equal(t, 66.5, result.Candidates[0].OverallScore)

	assert.Equal(t, "Senior Backend Engineer posting", scorer.lastJobText)
	assert.Equal(t, types.DefaultWeights(), scorer.lastWeights)
}

func TestHandleScore_CleansResumeText(t *testing.T) {
	scorer := &stubScorer{result: &pipeline.Result{}}
	srv := newTestServer(scorer)

	rec := postJSON(t, srv.Handler(), "/api/v1/score", ScoreRequest{
		JobText: "posting",
		Resumes: []ResumePayload{{FileName: "a.pdf", Text: "line one\r\n\r\nline   two"}},
	})

	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, scorer.lastResumes, 1)
	assert.Equal(t, "line one\nline two", scorer.lastResumes[0].Text)
}

func TestHandleScore_CustomWeightsForwarded(t *testing.T) {
	scorer := &stubScorer{result: &pipeline.Result{}}
	srv := newTestServer(scorer)

	weights := types.WeightVector{Experience: 0.2, Skills: 0.6, Trajectory: 0.2}
	rec := postJSON(t, srv.Handler(), "/api/v1/score", ScoreRequest{
		JobText: "posting",
		Resumes: []ResumePayload{{FileName: "a.pdf", Text: "resume"}},
		Weights: &weights,
	})

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, weights, scorer.lastWeights)
}

func TestHandleScore_RequiresExactlyOneJobSource(t *testing.T) {
	srv := newTestServer(&stubScorer{result: &pipeline.Result{}})

	// neither source
	rec := postJSON(t, srv.Handler(), "/api/v1/score", ScoreRequest{
		Resumes: []ResumePayload{{FileName: "a.pdf", Text: "resume"}},
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// both sources
	rec = postJSON(t, srv.Handler(), "/api/v1/score", ScoreRequest{
		JobURL:  "https://example.com/job",
		JobText: "posting",
		Resumes: []ResumePayload{{FileName: "a.pdf", Text: "resume"}},
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleScore_RejectsMissingResumes(t *testing.T) {
	srv := newTestServer(&stubScorer{result: &pipeline.Result{}})

	rec := postJSON(t, srv.Handler(), "/api/v1/score", ScoreRequest{JobText: "posting"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleScore_RejectsResumeWithoutText(t *testing.T) {
	srv := newTestServer(&stubScorer{result: &pipeline.Result{}})

	rec := postJSON(t, srv.Handler(), "/api/v1/score", ScoreRequest{
		JobText: "posting",
		Resumes: []ResumePayload{{FileName: "a.pdf"}},
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleScore_RejectsMalformedBody(t *testing.T) {
	srv := newTestServer(&stubScorer{result: &pipeline.Result{}})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/score", bytes.NewReader([]byte("{not json")))
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleScore_ZeroWeightsIsBadRequest(t *testing.T) {
	scorer := &stubScorer{err: types.ErrZeroWeightSum}
	srv := newTestServer(scorer)

	zero := types.WeightVector{}
	rec := postJSON(t, srv.Handler(), "/api/v1/score", ScoreRequest{
		JobText: "posting",
		Resumes: []ResumePayload{{FileName: "a.pdf", Text: "resume"}},
		Weights: &zero,
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleScore_ScorerFailureIsServerError(t *testing.T) {
	scorer := &stubScorer{err: errors.New("pipeline blew up")}
	srv := newTestServer(scorer)

	rec := postJSON(t, srv.Handler(), "/api/v1/score", ScoreRequest{
		JobText: "posting",
		Resumes: []ResumePayload{{FileName: "a.pdf", Text: "resume"}},
	})
	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Contains(t, resp.Error, "pipeline blew up")
}

func TestHandleFeedback_AdjustsWeights(t *testing.T) {
	srv := newTestServer(&stubScorer{})

	rec := postJSON(t, srv.Handler(), "/api/v1/feedback", FeedbackRequest{
		Weights:  types.DefaultWeights(),
		Signals:  types.SignalVector{ExperienceSimilarity: 0.9, SkillOverlap: 0.4, TrajectoryAlignment: 0.5},
		Positive: true,
	})

	require.Equal(t, http.StatusOK, rec.Code)
	var resp FeedbackResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.InDelta(t, 0.6, resp.Weights.Experience, 1e-6)
	assert.InDelta(t, 0.28, resp.Weights.Skills, 1e-6)
	assert.InDelta(t, 0.12, resp.Weights.Trajectory, 1e-6)
}

func TestHandleFeedback_ZeroWeightsRejected(t *testing.T) {
	srv := newTestServer(&stubScorer{})

	rec := postJSON(t, srv.Handler(), "/api/v1/feedback", FeedbackRequest{
		Weights: types.WeightVector{},
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleHealth(t *testing.T) {
	srv := newTestServer(&stubScorer{})

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "ok")
}

func TestCORSPreflight(t *testing.T) {
	srv := newTestServer(&stubScorer{})

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/score", nil)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}
