package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/leandroarrudaa/db-deumatch/internal/types"
)

// CreateCandidate inserts a candidate and returns its ID
func (db *DB) CreateCandidate(ctx context.Context, c *types.Candidate) (uuid.UUID, error) {
	skills, bigFive, challenge, err := marshalCandidateJSON(c)
	if err != nil {
		return uuid.Nil, err
	}

	var id uuid.UUID
	err = db.pool.QueryRow(ctx,
		`INSERT INTO candidates (name, role, seniority, location, bio, skills, salary_expectation,
		                         big_five, sincerity_score, archetype, challenge)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		 RETURNING id`,
		c.Name, string(c.Role), string(c.Seniority), c.Location, c.Bio, skills,
		c.SalaryExpectation, bigFive, c.SincerityScore, c.Archetype, challenge,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create candidate: %w", err)
	}
	return id, nil
}

// GetCandidate retrieves a candidate by ID. Returns nil, nil when not found.
func (db *DB) GetCandidate(ctx context.Context, id uuid.UUID) (*types.Candidate, error) {
	row := db.pool.QueryRow(ctx,
		`SELECT id, name, role, seniority, location, bio, skills, salary_expectation,
		        big_five, sincerity_score, archetype, challenge, created_at, updated_at
		 FROM candidates WHERE id = $1`,
		id,
	)
	c, err := scanCandidate(row)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get candidate: %w", err)
	}
	return c, nil
}

// ListCandidates retrieves candidates, optionally filtered by role.
// Results are ordered newest first.
func (db *DB) ListCandidates(ctx context.Context, role types.Role, limit int) ([]types.Candidate, error) {
	if limit <= 0 {
		limit = 100
	}

	query := `SELECT id, name, role, seniority, location, bio, skills, salary_expectation,
	                 big_five, sincerity_score, archetype, challenge, created_at, updated_at
	          FROM candidates`
	args := []any{}
	if role != "" {
		query += ` WHERE role = $1 ORDER BY created_at DESC LIMIT $2`
		args = append(args, string(role), limit)
	} else {
		query += ` ORDER BY created_at DESC LIMIT $1`
		args = append(args, limit)
	}

	rows, err := db.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list candidates: %w", err)
	}
	defer rows.Close()

	var candidates []types.Candidate
	for rows.Next() {
		c, err := scanCandidate(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan candidate: %w", err)
		}
		candidates = append(candidates, *c)
	}
	return candidates, nil
}

// UpdateCandidate replaces a candidate's mutable fields
func (db *DB) UpdateCandidate(ctx context.Context, c *types.Candidate) error {
	skills, bigFive, challenge, err := marshalCandidateJSON(c)
	if err != nil {
		return err
	}

	result, err := db.pool.Exec(ctx,
		`UPDATE candidates
		 SET name = $1, role = $2, seniority = $3, location = $4, bio = $5, skills = $6,
		     salary_expectation = $7, big_five = $8, sincerity_score = $9, archetype = $10,
		     challenge = $11, updated_at = NOW()
		 WHERE id = $12`,
		c.Name, string(c.Role), string(c.Seniority), c.Location, c.Bio, skills,
		c.SalaryExpectation, bigFive, c.SincerityScore, c.Archetype, challenge, c.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update candidate: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("candidate not found: %s", c.ID)
	}
	return nil
}

// UpdateCandidateAssessment replaces a candidate's aggregated profile. Used
// when a candidate redoes the questionnaire; the profile is swapped wholesale.
func (db *DB) UpdateCandidateAssessment(ctx context.Context, id uuid.UUID, profile types.BigFiveProfile, sincerity int, archetype string) error {
	bigFive, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("failed to marshal profile: %w", err)
	}

	result, err := db.pool.Exec(ctx,
		`UPDATE candidates
		 SET big_five = $1, sincerity_score = $2, archetype = $3, updated_at = NOW()
		 WHERE id = $4`,
		bigFive, sincerity, archetype, id,
	)
	if err != nil {
		return fmt.Errorf("failed to update assessment: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("candidate not found: %s", id)
	}
	return nil
}

// DeleteCandidate removes a candidate and its applications (via cascade)
func (db *DB) DeleteCandidate(ctx context.Context, id uuid.UUID) error {
	result, err := db.pool.Exec(ctx, `DELETE FROM candidates WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete candidate: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("candidate not found: %s", id)
	}
	return nil
}

func marshalCandidateJSON(c *types.Candidate) (skills, bigFive, challenge []byte, err error) {
	skillList := c.Skills
	if skillList == nil {
		skillList = []string{}
	}
	skills, err = json.Marshal(skillList)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to marshal skills: %w", err)
	}
	bigFive, err = json.Marshal(c.BigFive)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to marshal profile: %w", err)
	}
	if c.Challenge != nil {
		challenge, err = json.Marshal(c.Challenge)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("failed to marshal challenge: %w", err)
		}
	}
	return skills, bigFive, challenge, nil
}

func scanCandidate(row pgx.Row) (*types.Candidate, error) {
	var c types.Candidate
	var role, seniority string
	var skills, bigFive, challenge []byte

	err := row.Scan(&c.ID, &c.Name, &role, &seniority, &c.Location, &c.Bio, &skills,
		&c.SalaryExpectation, &bigFive, &c.SincerityScore, &c.Archetype, &challenge,
		&c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}

	c.Role = types.Role(role)
	c.Seniority = types.Seniority(seniority)
	if err := json.Unmarshal(skills, &c.Skills); err != nil {
		return nil, fmt.Errorf("failed to unmarshal skills: %w", err)
	}
	if err := json.Unmarshal(bigFive, &c.BigFive); err != nil {
		return nil, fmt.Errorf("failed to unmarshal profile: %w", err)
	}
	if len(challenge) > 0 {
		var sub types.ChallengeSubmission
		if err := json.Unmarshal(challenge, &sub); err != nil {
			return nil, fmt.Errorf("failed to unmarshal challenge: %w", err)
		}
		c.Challenge = &sub
	}
	return &c, nil
}
