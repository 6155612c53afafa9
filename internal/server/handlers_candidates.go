package server

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/leandroarrudaa/db-deumatch/internal/assessment"
	"github.com/leandroarrudaa/db-deumatch/internal/types"
)

// handleIntake processes a public candidate self-submission: the raw
// questionnaire answers are aggregated into a profile before the candidate
// is stored.
func (s *Server) handleIntake(w http.ResponseWriter, r *http.Request) {
	var req types.IntakeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	result, err := assessment.AggregateAnswers(req.Answers)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	candidate := &types.Candidate{
		Name:              req.Name,
		Role:              req.Role,
		Seniority:         req.Seniority,
		Location:          req.Location,
		Bio:               req.Bio,
		Skills:            req.Skills,
		SalaryExpectation: req.SalaryExpectation,
		BigFive:           result.BigFive,
		SincerityScore:    result.SincerityScore,
		Archetype:         assessment.ClassifyArchetype(result.BigFive),
		Challenge:         req.Challenge,
	}

	id, err := s.db.CreateCandidate(r.Context(), candidate)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to store candidate")
		return
	}

	created, err := s.db.GetCandidate(r.Context(), id)
	if err != nil || created == nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to load stored candidate")
		return
	}
	s.jsonResponse(w, http.StatusCreated, created)
}

// handleListQuestions returns the questionnaire item bank in presentation
// order, without the scoring metadata.
func (s *Server) handleListQuestions(w http.ResponseWriter, _ *http.Request) {
	questions := assessment.Questions()
	texts := make([]string, len(questions))
	for i, q := range questions {
		texts[i] = q.Text
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"count":     len(texts),
		"questions": texts,
	})
}

// handleCreateCandidate stores a recruiter-entered candidate with a profile
// supplied directly.
func (s *Server) handleCreateCandidate(w http.ResponseWriter, r *http.Request) {
	var req types.CreateCandidateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	candidate := &types.Candidate{
		Name:              req.Name,
		Role:              req.Role,
		Seniority:         req.Seniority,
		Location:          req.Location,
		Bio:               req.Bio,
		Skills:            req.Skills,
		SalaryExpectation: req.SalaryExpectation,
		BigFive:           req.BigFive.Clamped(),
		SincerityScore:    req.SincerityScore,
		Archetype:         assessment.ClassifyArchetype(req.BigFive.Clamped()),
		Challenge:         req.Challenge,
	}

	id, err := s.db.CreateCandidate(r.Context(), candidate)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to store candidate")
		return
	}

	created, err := s.db.GetCandidate(r.Context(), id)
	if err != nil || created == nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to load stored candidate")
		return
	}
	s.jsonResponse(w, http.StatusCreated, created)
}

// handleListCandidates lists candidates, optionally filtered by ?role=
func (s *Server) handleListCandidates(w http.ResponseWriter, r *http.Request) {
	role := types.Role(r.URL.Query().Get("role"))

	candidates, err := s.db.ListCandidates(r.Context(), role, 0)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to list candidates")
		return
	}
	if candidates == nil {
		candidates = []types.Candidate{}
	}
	s.jsonResponse(w, http.StatusOK, candidates)
}

// handleGetCandidate retrieves a single candidate
func (s *Server) handleGetCandidate(w http.ResponseWriter, r *http.Request) {
	id, ok := s.pathUUID(w, r, "id")
	if !ok {
		return
	}

	candidate, err := s.db.GetCandidate(r.Context(), id)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to get candidate")
		return
	}
	if candidate == nil {
		s.errorResponse(w, http.StatusNotFound, "Candidate not found")
		return
	}
	s.jsonResponse(w, http.StatusOK, candidate)
}

// handleUpdateCandidate replaces a candidate's profile fields
func (s *Server) handleUpdateCandidate(w http.ResponseWriter, r *http.Request) {
	id, ok := s.pathUUID(w, r, "id")
	if !ok {
		return
	}

	var req types.CreateCandidateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	existing, err := s.db.GetCandidate(r.Context(), id)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to get candidate")
		return
	}
	if existing == nil {
		s.errorResponse(w, http.StatusNotFound, "Candidate not found")
		return
	}

	existing.Name = req.Name
	existing.Role = req.Role
	existing.Seniority = req.Seniority
	existing.Location = req.Location
	existing.Bio = req.Bio
	existing.Skills = req.Skills
	existing.SalaryExpectation = req.SalaryExpectation
	existing.BigFive = req.BigFive.Clamped()
	existing.SincerityScore = req.SincerityScore
	existing.Archetype = assessment.ClassifyArchetype(existing.BigFive)
	existing.Challenge = req.Challenge

	if err := s.db.UpdateCandidate(r.Context(), existing); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to update candidate")
		return
	}
	s.jsonResponse(w, http.StatusOK, existing)
}

// handleUpdateAssessment re-aggregates a fresh answer vector for an existing
// candidate. The previous profile is replaced wholesale.
func (s *Server) handleUpdateAssessment(w http.ResponseWriter, r *http.Request) {
	id, ok := s.pathUUID(w, r, "id")
	if !ok {
		return
	}

	var req struct {
		Answers []int `json:"answers"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := assessment.AggregateAnswers(req.Answers)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	existing, err := s.db.GetCandidate(r.Context(), id)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to get candidate")
		return
	}
	if existing == nil {
		s.errorResponse(w, http.StatusNotFound, "Candidate not found")
		return
	}

	archetype := assessment.ClassifyArchetype(result.BigFive)
	if err := s.db.UpdateCandidateAssessment(r.Context(), id, result.BigFive, result.SincerityScore, archetype); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to update assessment")
		return
	}

	updated, err := s.db.GetCandidate(r.Context(), id)
	if err != nil || updated == nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to load updated candidate")
		return
	}
	s.jsonResponse(w, http.StatusOK, updated)
}

// handleDeleteCandidate removes a candidate
func (s *Server) handleDeleteCandidate(w http.ResponseWriter, r *http.Request) {
	id, ok := s.pathUUID(w, r, "id")
	if !ok {
		return
	}

	if err := s.db.DeleteCandidate(r.Context(), id); err != nil {
		s.errorResponse(w, http.StatusNotFound, "Candidate not found")
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// pathUUID parses a UUID path segment, writing a 400 on failure
func (s *Server) pathUUID(w http.ResponseWriter, r *http.Request, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.PathValue(name))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid "+name)
		return uuid.Nil, false
	}
	return id, true
}
