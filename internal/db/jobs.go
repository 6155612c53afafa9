package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/leandroarrudaa/db-deumatch/internal/types"
)

// CreateJob inserts a job posting and returns its ID
func (db *DB) CreateJob(ctx context.Context, j *types.Job) (uuid.UUID, error) {
	skillList := j.RequiredSkills
	if skillList == nil {
		skillList = []string{}
	}
	skills, err := json.Marshal(skillList)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal required skills: %w", err)
	}

	var id uuid.UUID
	err = db.pool.QueryRow(ctx,
		`INSERT INTO jobs (title, company, role, seniority, location, description, required_skills, active)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, TRUE)
		 RETURNING id`,
		j.Title, j.Company, string(j.Role), string(j.Seniority), j.Location, j.Description, skills,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create job: %w", err)
	}
	return id, nil
}

// GetJob retrieves a job by ID. Returns nil, nil when not found.
func (db *DB) GetJob(ctx context.Context, id uuid.UUID) (*types.Job, error) {
	row := db.pool.QueryRow(ctx,
		`SELECT id, title, company, role, seniority, location, description, required_skills,
		        active, posted_at, updated_at
		 FROM jobs WHERE id = $1`,
		id,
	)
	j, err := scanJob(row)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get job: %w", err)
	}
	return j, nil
}

// ListJobs retrieves job postings, newest first. When activeOnly is set,
// closed postings are excluded.
func (db *DB) ListJobs(ctx context.Context, activeOnly bool, limit int) ([]types.Job, error) {
	if limit <= 0 {
		limit = 100
	}

	query := `SELECT id, title, company, role, seniority, location, description, required_skills,
	                 active, posted_at, updated_at
	          FROM jobs`
	if activeOnly {
		query += ` WHERE active`
	}
	query += ` ORDER BY posted_at DESC LIMIT $1`

	rows, err := db.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list jobs: %w", err)
	}
	defer rows.Close()

	var jobs []types.Job
	for rows.Next() {
		j, err := scanJob(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan job: %w", err)
		}
		jobs = append(jobs, *j)
	}
	return jobs, nil
}

// UpdateJob replaces a job's mutable fields
func (db *DB) UpdateJob(ctx context.Context, j *types.Job) error {
	skillList := j.RequiredSkills
	if skillList == nil {
		skillList = []string{}
	}
	skills, err := json.Marshal(skillList)
	if err != nil {
		return fmt.Errorf("failed to marshal required skills: %w", err)
	}

	result, err := db.pool.Exec(ctx,
		`UPDATE jobs
		 SET title = $1, company = $2, role = $3, seniority = $4, location = $5,
		     description = $6, required_skills = $7, active = $8, updated_at = NOW()
		 WHERE id = $9`,
		j.Title, j.Company, string(j.Role), string(j.Seniority), j.Location,
		j.Description, skills, j.Active, j.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update job: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("job not found: %s", j.ID)
	}
	return nil
}

// DeleteJob removes a job posting and its applications (via cascade)
func (db *DB) DeleteJob(ctx context.Context, id uuid.UUID) error {
	result, err := db.pool.Exec(ctx, `DELETE FROM jobs WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete job: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("job not found: %s", id)
	}
	return nil
}

func scanJob(row pgx.Row) (*types.Job, error) {
	var j types.Job
	var role, seniority string
	var skills []byte

	err := row.Scan(&j.ID, &j.Title, &j.Company, &role, &seniority, &j.Location,
		&j.Description, &skills, &j.Active, &j.PostedAt, &j.UpdatedAt)
	if err != nil {
		return nil, err
	}

	j.Role = types.Role(role)
	j.Seniority = types.Seniority(seniority)
	if err := json.Unmarshal(skills, &j.RequiredSkills); err != nil {
		return nil, fmt.Errorf("failed to unmarshal required skills: %w", err)
	}
	return &j, nil
}
