package types

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// CreateRecruiterRequest represents the request to register a recruiter
// account with password authentication.
type CreateRecruiterRequest struct {
	Name     string `json:"name" validate:"required,min=1"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

// LoginRequest represents the login request.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Recruiter represents a recruiter account for API responses (password hash
// never leaves the db package).
type Recruiter struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// LoginResponse represents the login/register response with recruiter data
// and authentication token.
type LoginResponse struct {
	Recruiter *Recruiter `json:"recruiter"`
	Token     string     `json:"token"`
}

// Validate validates the CreateRecruiterRequest using the validator.
func (r *CreateRecruiterRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the LoginRequest using the validator.
func (r *LoginRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
