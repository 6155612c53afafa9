package server

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/leandroarrudaa/db-deumatch/internal/types"
)

// handleMatch scores one candidate against one job. When an application
// exists for the pair, the snapshot on it is refreshed.
func (s *Server) handleMatch(w http.ResponseWriter, r *http.Request) {
	jobID, ok := s.pathUUID(w, r, "id")
	if !ok {
		return
	}
	candidateID, ok := s.pathUUID(w, r, "candidate_id")
	if !ok {
		return
	}

	job, err := s.db.GetJob(r.Context(), jobID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to get job")
		return
	}
	if job == nil {
		s.errorResponse(w, http.StatusNotFound, "Job not found")
		return
	}

	candidate, err := s.db.GetCandidate(r.Context(), candidateID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to get candidate")
		return
	}
	if candidate == nil {
		s.errorResponse(w, http.StatusNotFound, "Candidate not found")
		return
	}

	result := s.engine.Score(*candidate, *job)

	app, err := s.db.GetApplication(r.Context(), jobID, candidateID)
	if err == nil && app != nil {
		// Best effort; the computed result is returned regardless
		if err := s.db.SaveApplicationMatch(r.Context(), jobID, candidateID, result); err != nil {
			log.Printf("Failed to refresh match snapshot for job %s candidate %s: %v", jobID, candidateID, err)
		}
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"job_id":       jobID,
		"candidate_id": candidateID,
		"result":       result,
	})
}

// handleRanking scores every candidate for the job's role against the job
// and returns them best first.
func (s *Server) handleRanking(w http.ResponseWriter, r *http.Request) {
	jobID, ok := s.pathUUID(w, r, "id")
	if !ok {
		return
	}

	job, err := s.db.GetJob(r.Context(), jobID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to get job")
		return
	}
	if job == nil {
		s.errorResponse(w, http.StatusNotFound, "Job not found")
		return
	}

	// Candidates outside the job's role are not ranked; the benchmark
	// comparison only makes sense within the same position.
	candidates, err := s.db.ListCandidates(r.Context(), job.Role, 0)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to list candidates")
		return
	}

	ranked, err := s.engine.RankCandidates(r.Context(), candidates, *job)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Ranking was interrupted")
		return
	}
	if ranked == nil {
		ranked = []types.RankedCandidate{}
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"job_id":     jobID,
		"candidates": ranked,
	})
}

// handleCreateApplication links a candidate to a job and stores an initial
// match snapshot.
func (s *Server) handleCreateApplication(w http.ResponseWriter, r *http.Request) {
	jobID, ok := s.pathUUID(w, r, "id")
	if !ok {
		return
	}
	candidateID, ok := s.pathUUID(w, r, "candidate_id")
	if !ok {
		return
	}

	job, err := s.db.GetJob(r.Context(), jobID)
	if err != nil || job == nil {
		s.errorResponse(w, http.StatusNotFound, "Job not found")
		return
	}
	candidate, err := s.db.GetCandidate(r.Context(), candidateID)
	if err != nil || candidate == nil {
		s.errorResponse(w, http.StatusNotFound, "Candidate not found")
		return
	}

	if err := s.db.CreateApplication(r.Context(), jobID, candidateID, types.StatusInterview); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to create application")
		return
	}

	result := s.engine.Score(*candidate, *job)
	if err := s.db.SaveApplicationMatch(r.Context(), jobID, candidateID, result); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to store match result")
		return
	}

	app, err := s.db.GetApplication(r.Context(), jobID, candidateID)
	if err != nil || app == nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to load application")
		return
	}
	s.jsonResponse(w, http.StatusCreated, app)
}

// handleListApplications lists a job's applications, best score first
func (s *Server) handleListApplications(w http.ResponseWriter, r *http.Request) {
	jobID, ok := s.pathUUID(w, r, "id")
	if !ok {
		return
	}

	apps, err := s.db.ListApplicationsByJob(r.Context(), jobID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to list applications")
		return
	}
	if apps == nil {
		apps = []types.Application{}
	}
	s.jsonResponse(w, http.StatusOK, apps)
}

// handleUpdateApplicationStatus moves an application through the pipeline
func (s *Server) handleUpdateApplicationStatus(w http.ResponseWriter, r *http.Request) {
	jobID, ok := s.pathUUID(w, r, "id")
	if !ok {
		return
	}
	candidateID, ok := s.pathUUID(w, r, "candidate_id")
	if !ok {
		return
	}

	var req struct {
		Status types.ApplicationStatus `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if !validStatus(req.Status) {
		s.errorResponse(w, http.StatusBadRequest, "Unknown pipeline status")
		return
	}

	if err := s.db.UpdateApplicationStatus(r.Context(), jobID, candidateID, req.Status); err != nil {
		s.errorResponse(w, http.StatusNotFound, "Application not found")
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": string(req.Status)})
}

func validStatus(status types.ApplicationStatus) bool {
	switch status {
	case types.StatusTopTalent, types.StatusInterview, types.StatusSimulation,
		types.StatusSentToCompany, types.StatusHired, types.StatusRejected:
		return true
	}
	return false
}
