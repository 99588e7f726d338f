package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/talent-matcher/internal/types"
)

func testHandler() http.Handler {
	return New(Config{Addr: ":0", Concurrency: 2}, nil).Handler()
}

func doJSON(t *testing.T, handler http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	rec := doJSON(t, testHandler(), http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestScore(t *testing.T) {
	body := `{
  "project": {
    "id": "proj-001",
    "skills": {"Salesforce": 6},
    "complexity": 5,
    "flexibility": "remote"
  },
  "candidate": {
    "id": "cand-001",
    "skills": {"Salesforce": 9},
    "relevance": 0.8
  }
}`
	rec := doJSON(t, testHandler(), http.MethodPost, "/score", body)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var report types.CandidateScoreReport
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &report))
	assert.Equal(t, "cand-001", report.CandidateID)
	assert.Equal(t, "proj-001", report.ProjectID)
	assert.Len(t, report.Factors, 12)
	assert.Equal(t, 1.0, report.Factors[types.FactorSkillMatch].Score)
}

func TestScore_CustomWeights(t *testing.T) {
	body := `{
  "project": {"id": "proj-001"},
  "candidate": {"id": "cand-001", "relevance": 0.6},
  "weights": {"RetrieverScore": 1.0}
}`
	rec := doJSON(t, testHandler(), http.MethodPost, "/score", body)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var report types.CandidateScoreReport
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &report))
	assert.Equal(t, 0.6, report.OverallWeightedScore)
}

func TestScore_BadRequests(t *testing.T) {
	handler := testHandler()

	rec := doJSON(t, handler, http.MethodPost, "/score", "{not json")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, handler, http.MethodPost, "/score", `{"candidate": {"id": "cand-001"}}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code, "missing project")

	rec = doJSON(t, handler, http.MethodPost, "/score", `{"project": {"id": ""}, "candidate": {"id": "cand-001"}}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code, "empty project id")

	rec = doJSON(t, handler, http.MethodPost, "/score", `{
  "project": {"id": "p"}, "candidate": {"id": "c"}, "weights": {"SkillMatchScore": -0.5}
}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code, "negative weight")
}

func TestMatch(t *testing.T) {
	body := `{
  "project": {"id": "proj-001"},
  "candidates": [
    {"id": "cand-a", "relevance": 0.2},
    {"id": "cand-b", "relevance": 0.9},
    {"id": "cand-c", "relevance": 0.5}
  ],
  "weights": {"RetrieverScore": 1.0},
  "top_n": 2
}`
	rec := doJSON(t, testHandler(), http.MethodPost, "/match", body)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp MatchResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "proj-001", resp.ProjectID)
	require.Len(t, resp.Reports, 2)
	assert.Equal(t, "cand-b", resp.Reports[0].CandidateID)
	assert.Equal(t, "cand-c", resp.Reports[1].CandidateID)
}

func TestMatch_EmptyCandidatesRejected(t *testing.T) {
	rec := doJSON(t, testHandler(), http.MethodPost, "/match", `{"project": {"id": "p"}, "candidates": []}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUnknownRoute(t *testing.T) {
	rec := doJSON(t, testHandler(), http.MethodGet, "/nope", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
