package server

import (
	"encoding/json"
	"net/http"

	"github.com/leandroarrudaa/db-deumatch/internal/types"
)

// handleCreateJob stores a recruiter-created job posting
func (s *Server) handleCreateJob(w http.ResponseWriter, r *http.Request) {
	var req types.CreateJobRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	job := &types.Job{
		Title:          req.Title,
		Company:        req.Company,
		Role:           req.Role,
		Seniority:      req.Seniority,
		Location:       req.Location,
		Description:    req.Description,
		RequiredSkills: req.RequiredSkills,
	}

	id, err := s.db.CreateJob(r.Context(), job)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to store job")
		return
	}

	created, err := s.db.GetJob(r.Context(), id)
	if err != nil || created == nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to load stored job")
		return
	}
	s.jsonResponse(w, http.StatusCreated, created)
}

// handleListJobs lists job postings; ?active=true restricts to open ones
func (s *Server) handleListJobs(w http.ResponseWriter, r *http.Request) {
	activeOnly := r.URL.Query().Get("active") == "true"

	jobs, err := s.db.ListJobs(r.Context(), activeOnly, 0)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to list jobs")
		return
	}
	if jobs == nil {
		jobs = []types.Job{}
	}
	s.jsonResponse(w, http.StatusOK, jobs)
}

// handleGetJob retrieves a single job posting
func (s *Server) handleGetJob(w http.ResponseWriter, r *http.Request) {
	id, ok := s.pathUUID(w, r, "id")
	if !ok {
		return
	}

	job, err := s.db.GetJob(r.Context(), id)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to get job")
		return
	}
	if job == nil {
		s.errorResponse(w, http.StatusNotFound, "Job not found")
		return
	}
	s.jsonResponse(w, http.StatusOK, job)
}

// handleUpdateJob replaces a job's fields. The request body may include
// "active" to close or reopen the posting.
func (s *Server) handleUpdateJob(w http.ResponseWriter, r *http.Request) {
	id, ok := s.pathUUID(w, r, "id")
	if !ok {
		return
	}

	var req struct {
		types.CreateJobRequest
		Active *bool `json:"active"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := req.CreateJobRequest.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	existing, err := s.db.GetJob(r.Context(), id)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to get job")
		return
	}
	if existing == nil {
		s.errorResponse(w, http.StatusNotFound, "Job not found")
		return
	}

	existing.Title = req.Title
	existing.Company = req.Company
	existing.Role = req.Role
	existing.Seniority = req.Seniority
	existing.Location = req.Location
	existing.Description = req.Description
	existing.RequiredSkills = req.RequiredSkills
	if req.Active != nil {
		existing.Active = *req.Active
	}

	if err := s.db.UpdateJob(r.Context(), existing); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to update job")
		return
	}
	s.jsonResponse(w, http.StatusOK, existing)
}

// handleDeleteJob removes a job posting
func (s *Server) handleDeleteJob(w http.ResponseWriter, r *http.Request) {
	id, ok := s.pathUUID(w, r, "id")
	if !ok {
		return
	}

	if err := s.db.DeleteJob(r.Context(), id); err != nil {
		s.errorResponse(w, http.StatusNotFound, "Job not found")
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "deleted"})
}
