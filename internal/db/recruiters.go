package db

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// RecruiterRecord is the stored form of a recruiter account, including the
// password hash. It never crosses the API boundary directly.
type RecruiterRecord struct {
	ID           uuid.UUID
	Name         string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// CreateRecruiter inserts a recruiter account and returns its ID
func (db *DB) CreateRecruiter(ctx context.Context, name, email, passwordHash string) (uuid.UUID, error) {
	var id uuid.UUID
	err := db.pool.QueryRow(ctx,
		`INSERT INTO recruiters (name, email, password_hash)
		 VALUES ($1, $2, $3)
		 RETURNING id`,
		name, email, passwordHash,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create recruiter: %w", err)
	}
	return id, nil
}

// GetRecruiter retrieves a recruiter by ID. Returns nil, nil when not found.
func (db *DB) GetRecruiter(ctx context.Context, id uuid.UUID) (*RecruiterRecord, error) {
	var r RecruiterRecord
	err := db.pool.QueryRow(ctx,
		`SELECT id, name, email, password_hash, created_at, updated_at
		 FROM recruiters WHERE id = $1`,
		id,
	).Scan(&r.ID, &r.Name, &r.Email, &r.PasswordHash, &r.CreatedAt, &r.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get recruiter: %w", err)
	}
	return &r, nil
}

// GetRecruiterByEmail retrieves a recruiter by email. Returns nil, nil when
// not found.
func (db *DB) GetRecruiterByEmail(ctx context.Context, email string) (*RecruiterRecord, error) {
	var r RecruiterRecord
	err := db.pool.QueryRow(ctx,
		`SELECT id, name, email, password_hash, created_at, updated_at
		 FROM recruiters WHERE email = $1`,
		email,
	).Scan(&r.ID, &r.Name, &r.Email, &r.PasswordHash, &r.CreatedAt, &r.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get recruiter by email: %w", err)
	}
	return &r, nil
}

// CheckRecruiterEmailExists reports whether a recruiter with the email exists
func (db *DB) CheckRecruiterEmailExists(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := db.pool.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM recruiters WHERE email = $1)`,
		email,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check recruiter email: %w", err)
	}
	return exists, nil
}
