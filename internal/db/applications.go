package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/leandroarrudaa/db-deumatch/internal/types"
)

// CreateApplication links a candidate to a job. Re-applying is a no-op that
// keeps the existing pipeline status.
func (db *DB) CreateApplication(ctx context.Context, jobID, candidateID uuid.UUID, status types.ApplicationStatus) error {
	_, err := db.pool.Exec(ctx,
		`INSERT INTO applications (job_id, candidate_id, status)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (job_id, candidate_id) DO NOTHING`,
		jobID, candidateID, string(status),
	)
	if err != nil {
		return fmt.Errorf("failed to create application: %w", err)
	}
	return nil
}

// GetApplication retrieves one application. Returns nil, nil when not found.
func (db *DB) GetApplication(ctx context.Context, jobID, candidateID uuid.UUID) (*types.Application, error) {
	row := db.pool.QueryRow(ctx,
		`SELECT job_id, candidate_id, status, score, match_result, applied_at, updated_at
		 FROM applications WHERE job_id = $1 AND candidate_id = $2`,
		jobID, candidateID,
	)
	app, err := scanApplication(row)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get application: %w", err)
	}
	return app, nil
}

// ListApplicationsByJob retrieves a job's applications ordered by stored
// score, best first. Unscored applications sort last.
func (db *DB) ListApplicationsByJob(ctx context.Context, jobID uuid.UUID) ([]types.Application, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT job_id, candidate_id, status, score, match_result, applied_at, updated_at
		 FROM applications WHERE job_id = $1
		 ORDER BY score DESC NULLS LAST, applied_at ASC`,
		jobID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list applications: %w", err)
	}
	defer rows.Close()

	var apps []types.Application
	for rows.Next() {
		app, err := scanApplication(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan application: %w", err)
		}
		apps = append(apps, *app)
	}
	return apps, nil
}

// SaveApplicationMatch stores a freshly computed match snapshot on the
// application record.
func (db *DB) SaveApplicationMatch(ctx context.Context, jobID, candidateID uuid.UUID, result types.MatchResult) error {
	matchJSON, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("failed to marshal match result: %w", err)
	}

	res, err := db.pool.Exec(ctx,
		`UPDATE applications
		 SET score = $1, match_result = $2, updated_at = NOW()
		 WHERE job_id = $3 AND candidate_id = $4`,
		result.Score, matchJSON, jobID, candidateID,
	)
	if err != nil {
		return fmt.Errorf("failed to save match result: %w", err)
	}
	if res.RowsAffected() == 0 {
		return fmt.Errorf("application not found: job %s candidate %s", jobID, candidateID)
	}
	return nil
}

// UpdateApplicationStatus moves an application to another pipeline stage
func (db *DB) UpdateApplicationStatus(ctx context.Context, jobID, candidateID uuid.UUID, status types.ApplicationStatus) error {
	res, err := db.pool.Exec(ctx,
		`UPDATE applications SET status = $1, updated_at = NOW()
		 WHERE job_id = $2 AND candidate_id = $3`,
		string(status), jobID, candidateID,
	)
	if err != nil {
		return fmt.Errorf("failed to update application status: %w", err)
	}
	if res.RowsAffected() == 0 {
		return fmt.Errorf("application not found: job %s candidate %s", jobID, candidateID)
	}
	return nil
}

func scanApplication(row pgx.Row) (*types.Application, error) {
	var app types.Application
	var status string
	var matchJSON []byte

	err := row.Scan(&app.JobID, &app.CandidateID, &status, &app.Score, &matchJSON,
		&app.AppliedAt, &app.UpdatedAt)
	if err != nil {
		return nil, err
	}

	app.Status = types.ApplicationStatus(status)
	if len(matchJSON) > 0 {
		var result types.MatchResult
		if err := json.Unmarshal(matchJSON, &result); err != nil {
			return nil, fmt.Errorf("failed to unmarshal match result: %w", err)
		}
		app.Result = &result
	}
	return &app, nil
}
