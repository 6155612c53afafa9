package types

import (
	"github.com/go-playground/validator/v10"
)

// CreateCandidateRequest represents a recruiter-entered candidate. The
// psychometric profile is supplied directly (e.g. transcribed from a prior
// assessment); use IntakeRequest for questionnaire-driven intake.
type CreateCandidateRequest struct {
	Name              string               `json:"name" validate:"required,min=1"`
	Role              Role                 `json:"role" validate:"required"`
	Seniority         Seniority            `json:"seniority" validate:"required,oneof=Júnior Pleno Sênior"`
	Location          string               `json:"location,omitempty"`
	Bio               string               `json:"bio,omitempty"`
	Skills            []string             `json:"skills"`
	SalaryExpectation int                  `json:"salary_expectation,omitempty" validate:"omitempty,min=0"`
	BigFive           BigFiveProfile       `json:"big_five"`
	SincerityScore    int                  `json:"sincerity_score" validate:"min=0,max=100"`
	Challenge         *ChallengeSubmission `json:"challenge_submission,omitempty"`
}

// IntakeRequest represents a public candidate self-submission: identity plus
// the raw 30-answer questionnaire and an optional recorded challenge.
type IntakeRequest struct {
	Name              string               `json:"name" validate:"required,min=1"`
	Role              Role                 `json:"role" validate:"required"`
	Seniority         Seniority            `json:"seniority" validate:"required,oneof=Júnior Pleno Sênior"`
	Location          string               `json:"location,omitempty"`
	Bio               string               `json:"bio,omitempty"`
	Skills            []string             `json:"skills"`
	SalaryExpectation int                  `json:"salary_expectation,omitempty" validate:"omitempty,min=0"`
	Answers           []int                `json:"answers" validate:"required,len=30,dive,min=0,max=5"`
	Challenge         *ChallengeSubmission `json:"challenge_submission,omitempty"`
}

// CreateJobRequest represents a recruiter-created job posting.
type CreateJobRequest struct {
	Title          string    `json:"title" validate:"required,min=1"`
	Company        string    `json:"company" validate:"required,min=1"`
	Role           Role      `json:"role" validate:"required"`
	Seniority      Seniority `json:"seniority" validate:"required,oneof=Júnior Pleno Sênior"`
	Location       string    `json:"location,omitempty"`
	Description    string    `json:"description,omitempty"`
	RequiredSkills []string  `json:"required_skills"`
}

// Validate validates the CreateCandidateRequest using the validator.
func (r *CreateCandidateRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the IntakeRequest using the validator.
// Answer completeness (no zero entries) is checked by the aggregator, which
// reports it as an assessment error rather than a request-shape error.
func (r *IntakeRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the CreateJobRequest using the validator.
func (r *CreateJobRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
