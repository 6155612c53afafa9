package server

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/leandroarrudaa/db-deumatch/internal/config"
	"github.com/leandroarrudaa/db-deumatch/internal/db"
	"github.com/leandroarrudaa/db-deumatch/internal/types"
)

// RecruiterStore is the persistence surface the recruiter service needs.
// *db.DB satisfies it; tests substitute a fake.
type RecruiterStore interface {
	CreateRecruiter(ctx context.Context, name, email, passwordHash string) (uuid.UUID, error)
	GetRecruiter(ctx context.Context, id uuid.UUID) (*db.RecruiterRecord, error)
	GetRecruiterByEmail(ctx context.Context, email string) (*db.RecruiterRecord, error)
	CheckRecruiterEmailExists(ctx context.Context, email string) (bool, error)
}

// RecruiterService provides business logic for recruiter authentication
type RecruiterService struct {
	store          RecruiterStore
	passwordConfig *config.PasswordConfig
}

// NewRecruiterService creates a new RecruiterService with the given dependencies
func NewRecruiterService(store RecruiterStore, passwordConfig *config.PasswordConfig) *RecruiterService {
	return &RecruiterService{
		store:          store,
		passwordConfig: passwordConfig,
	}
}

// toAPIRecruiter strips the password hash before the record crosses the API
// boundary.
func toAPIRecruiter(rec *db.RecruiterRecord) *types.Recruiter {
	if rec == nil {
		return nil
	}
	return &types.Recruiter{
		ID:        rec.ID,
		Name:      rec.Name,
		Email:     rec.Email,
		CreatedAt: rec.CreatedAt,
		UpdatedAt: rec.UpdatedAt,
	}
}

// Register creates a new recruiter account
func (s *RecruiterService) Register(ctx context.Context, req *types.CreateRecruiterRequest) (*types.Recruiter, error) {
	exists, err := s.store.CheckRecruiterEmailExists(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to check email existence: %w", err)
	}
	if exists {
		return nil, &ErrEmailAlreadyExists{Email: req.Email}
	}

	passwordHash, err := s.passwordConfig.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	id, err := s.store.CreateRecruiter(ctx, req.Name, req.Email, passwordHash)
	if err != nil {
		return nil, fmt.Errorf("failed to create recruiter: %w", err)
	}

	rec, err := s.store.GetRecruiter(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve created recruiter: %w", err)
	}
	if rec == nil {
		return nil, fmt.Errorf("created recruiter not found: %s", id)
	}

	return toAPIRecruiter(rec), nil
}

// Login authenticates a recruiter and returns the account data
func (s *RecruiterService) Login(ctx context.Context, req *types.LoginRequest) (*types.Recruiter, error) {
	rec, err := s.store.GetRecruiterByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to get recruiter by email: %w", err)
	}

	// Same generic error for unknown email and wrong password
	if rec == nil {
		return nil, &ErrInvalidCredentials{}
	}
	if !s.passwordConfig.VerifyPassword(req.Password, rec.PasswordHash) {
		return nil, &ErrInvalidCredentials{}
	}

	return toAPIRecruiter(rec), nil
}
