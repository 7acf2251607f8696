package server

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/1001franck/Linkup-sub000/internal/matching"
)

// ---------------------------------------------------------------------
// Matching Handlers
// ---------------------------------------------------------------------

// MatchingPreviewRequest scores an ad-hoc candidate and job pair without
// persisting either. Used by the front-end to preview a score while a
// profile or posting is being edited.
type MatchingPreviewRequest struct {
	Candidate *matching.CandidateProfile `json:"candidate" validate:"required"`
	Job       *matching.JobPosting       `json:"job" validate:"required"`
}

// handleCandidateMatches ranks every stored job posting for a candidate.
func (s *Server) handleCandidateMatches(w http.ResponseWriter, r *http.Request) {
	candidateID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid candidate ID")
		return
	}

	candidate, err := s.store.GetCandidateByID(r.Context(), candidateID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if candidate == nil {
		s.errorResponse(w, http.StatusNotFound, "Candidate not found")
		return
	}

	jobs, err := s.store.ListAllJobs(r.Context())
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	postings := make([]*matching.JobPosting, len(jobs))
	for i := range jobs {
		postings[i] = jobs[i].Posting()
	}

	ranked, err := matching.RankJobs(r.Context(), s.engine, candidate.Profile(), postings)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Matching error: "+err.Error())
		return
	}

	if limit := queryInt(r, "limit", 0); limit > 0 && limit < len(ranked) {
		ranked = ranked[:limit]
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"candidate_id": candidateID,
		"matches":      ranked,
		"total":        len(ranked),
	})
}

// handleJobCandidates ranks every stored candidate for a job posting.
func (s *Server) handleJobCandidates(w http.ResponseWriter, r *http.Request) {
	jobID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid job ID")
		return
	}

	job, err := s.store.GetJobByID(r.Context(), jobID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if job == nil {
		s.errorResponse(w, http.StatusNotFound, "Job not found")
		return
	}

	candidates, err := s.store.ListAllCandidates(r.Context())
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	profiles := make([]*matching.CandidateProfile, len(candidates))
	for i := range candidates {
		profiles[i] = candidates[i].Profile()
	}

	ranked, err := matching.RankCandidates(r.Context(), s.engine, job.Posting(), profiles)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Matching error: "+err.Error())
		return
	}

	if limit := queryInt(r, "limit", 0); limit > 0 && limit < len(ranked) {
		ranked = ranked[:limit]
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"job_id":     jobID,
		"candidates": ranked,
		"total":      len(ranked),
	})
}

// handleMatchingPreview scores a candidate and job pair from the request
// body.
func (s *Server) handleMatchingPreview(w http.ResponseWriter, r *http.Request) {
	var req MatchingPreviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := s.validator.Struct(req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	s.jsonResponse(w, http.StatusOK, s.engine.Match(req.Candidate, req.Job))
}
