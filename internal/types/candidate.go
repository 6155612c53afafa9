package types

import (
	"time"

	"github.com/google/uuid"
)

// ChallengeSubmission holds a candidate's recorded practical challenge.
// The communication score is a 0-10 rating; the scoring engine multiplies it
// by 10, so anything outside that range must be rejected at the API boundary.
type ChallengeSubmission struct {
	ChallengeText      string `json:"challenge_text"`
	AudioURL           string `json:"audio_url,omitempty"`
	DurationSeconds    int    `json:"duration_seconds" validate:"min=0"`
	CommunicationScore int    `json:"communication_score" validate:"min=0,max=10"`
}

// Candidate represents an applicant with a computed psychometric profile.
// The profile fields are immutable once the assessment has been aggregated;
// redoing the questionnaire replaces them wholesale.
type Candidate struct {
	ID                uuid.UUID            `json:"id"`
	Name              string               `json:"name"`
	Role              Role                 `json:"role"`
	Seniority         Seniority            `json:"seniority"`
	Location          string               `json:"location,omitempty"`
	Bio               string               `json:"bio,omitempty"`
	Skills            []string             `json:"skills"`
	SalaryExpectation int                  `json:"salary_expectation,omitempty"`
	BigFive           BigFiveProfile       `json:"big_five"`
	SincerityScore    int                  `json:"sincerity_score"` // informational, not consumed by scoring
	Archetype         string               `json:"archetype,omitempty"`
	Challenge         *ChallengeSubmission `json:"challenge_submission,omitempty"`
	CreatedAt         time.Time            `json:"created_at"`
	UpdatedAt         time.Time            `json:"updated_at"`
}

// Job represents an open position with its scoring-relevant requirements.
// Requirements are read-only inputs to scoring.
type Job struct {
	ID             uuid.UUID `json:"id"`
	Title          string    `json:"title"`
	Company        string    `json:"company"`
	Role           Role      `json:"role"`
	Seniority      Seniority `json:"seniority"`
	Location       string    `json:"location,omitempty"`
	Description    string    `json:"description,omitempty"`
	RequiredSkills []string  `json:"required_skills"`
	Active         bool      `json:"active"`
	PostedAt       time.Time `json:"posted_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// ApplicationStatus tracks a candidate/job pair through the hiring pipeline.
type ApplicationStatus string

// Pipeline stages.
const (
	StatusTopTalent     ApplicationStatus = "top_talent"
	StatusInterview     ApplicationStatus = "interview"
	StatusSimulation    ApplicationStatus = "simulation"
	StatusSentToCompany ApplicationStatus = "sent_to_company"
	StatusHired         ApplicationStatus = "hired"
	StatusRejected      ApplicationStatus = "rejected"
)

// Application links a candidate to a job with a pipeline status. Score and
// Result hold the most recent match snapshot, if one has been computed.
type Application struct {
	JobID       uuid.UUID         `json:"job_id"`
	CandidateID uuid.UUID         `json:"candidate_id"`
	Status      ApplicationStatus `json:"status"`
	Score       *int              `json:"score,omitempty"`
	Result      *MatchResult      `json:"result,omitempty"`
	AppliedAt   time.Time         `json:"applied_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
}
