package server

import (
	"encoding/json"
	"net/http"

	"github.com/jonathan/talent-matcher/internal/scoring"
	"github.com/jonathan/talent-matcher/internal/types"
)

// ScoreRequest is the request body for POST /score.
type ScoreRequest struct {
	Project   *types.ProjectRequirement `json:"project" validate:"required"`
	Candidate *types.CandidateProfile   `json:"candidate" validate:"required"`
	Weights   types.ScoringWeights      `json:"weights,omitempty" validate:"omitempty,dive,gte=0"`
}

// MatchRequest is the request body for POST /match.
type MatchRequest struct {
	Project    *types.ProjectRequirement `json:"project" validate:"required"`
	Candidates []types.CandidateProfile  `json:"candidates" validate:"required,min=1"`
	Weights    types.ScoringWeights      `json:"weights,omitempty" validate:"omitempty,dive,gte=0"`
	TopN       int                       `json:"top_n,omitempty" validate:"omitempty,gte=1"`
}

// MatchResponse is the response body for POST /match.
type MatchResponse struct {
	ProjectID string                        `json:"project_id"`
	Reports   []*types.CandidateScoreReport `json:"reports"`
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

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
	if req.Project.ID == "" || req.Candidate.ID == "" {
		s.errorResponse(w, http.StatusBadRequest, "project.id and candidate.id are required")
		return
	}

	report := scoring.ScoreCandidate(req.Project, req.Candidate, req.Weights)
	s.jsonResponse(w, http.StatusOK, report)
}

func (s *Server) handleMatch(w http.ResponseWriter, r *http.Request) {
	var req MatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if err := s.validate.Struct(req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}
	if req.Project.ID == "" {
		s.errorResponse(w, http.StatusBadRequest, "project.id is required")
		return
	}

	reports, err := s.runner.Run(r.Context(), req.Project, req.Candidates, req.Weights)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "scoring failed: "+err.Error())
		return
	}
	if req.TopN > 0 && req.TopN < len(reports) {
		reports = reports[:req.TopN]
	}
	s.jsonResponse(w, http.StatusOK, MatchResponse{ProjectID: req.Project.ID, Reports: reports})
}
