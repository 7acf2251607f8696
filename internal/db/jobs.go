package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const jobColumns = `id, company_id, title, description, industry, location,
	remote_mode, contract_type, experience_required, salary_min, salary_max,
	created_at, updated_at`

func scanJob(row pgx.Row) (*Job, error) {
	var j Job
	err := row.Scan(&j.ID, &j.CompanyID, &j.Title, &j.Description, &j.Industry,
		&j.Location, &j.RemoteMode, &j.ContractType, &j.ExperienceRequired,
		&j.SalaryMin, &j.SalaryMax, &j.CreatedAt, &j.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &j, nil
}

// CreateJob inserts a new job posting and returns the stored row.
func (db *DB) CreateJob(ctx context.Context, input JobInput) (*Job, error) {
	row := db.pool.QueryRow(ctx,
		`INSERT INTO jobs (company_id, title, description, industry, location,
		                   remote_mode, contract_type, experience_required, salary_min, salary_max)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		 RETURNING `+jobColumns,
		input.CompanyID, input.Title, input.Description, nullable(input.Industry),
		nullable(input.Location), nullable(input.RemoteMode), nullable(input.ContractType),
		nullable(input.ExperienceRequired), nullableInt(input.SalaryMin), nullableInt(input.SalaryMax),
	)

	job, err := scanJob(row)
	if err != nil {
		return nil, fmt.Errorf("failed to create job: %w", err)
	}
	return job, nil
}

// GetJobByID retrieves a job posting. Returns nil when no posting exists.
func (db *DB) GetJobByID(ctx context.Context, jobID uuid.UUID) (*Job, error) {
	row := db.pool.QueryRow(ctx,
		`SELECT `+jobColumns+` FROM jobs WHERE id = $1`, jobID)

	job, err := scanJob(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get job: %w", err)
	}
	return job, nil
}

// ListJobsOptions holds pagination for listing job postings.
type ListJobsOptions struct {
	Limit  int
	Offset int
}

// ListJobs retrieves job postings with pagination, newest first, along
// with the total row count.
func (db *DB) ListJobs(ctx context.Context, opts ListJobsOptions) ([]Job, int, error) {
	if opts.Limit == 0 {
		opts.Limit = 50
	}

	var total int
	if err := db.pool.QueryRow(ctx, `SELECT COUNT(*) FROM jobs`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count jobs: %w", err)
	}

	rows, err := db.pool.Query(ctx,
		`SELECT `+jobColumns+` FROM jobs
		 ORDER BY created_at DESC LIMIT $1 OFFSET $2`,
		opts.Limit, opts.Offset,
	)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list jobs: %w", err)
	}
	defer rows.Close()

	var jobs []Job
	for rows.Next() {
		job, err := scanJob(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan job: %w", err)
		}
		jobs = append(jobs, *job)
	}
	return jobs, total, nil
}

// UpdateJob replaces the mutable fields of a job posting. Returns nil
// when no posting exists.
func (db *DB) UpdateJob(ctx context.Context, jobID uuid.UUID, input JobInput) (*Job, error) {
	row := db.pool.QueryRow(ctx,
		`UPDATE jobs
		 SET title = $2, description = $3, industry = $4, location = $5,
		     remote_mode = $6, contract_type = $7, experience_required = $8,
		     salary_min = $9, salary_max = $10, updated_at = NOW()
		 WHERE id = $1
		 RETURNING `+jobColumns,
		jobID, input.Title, input.Description, nullable(input.Industry),
		nullable(input.Location), nullable(input.RemoteMode), nullable(input.ContractType),
		nullable(input.ExperienceRequired), nullableInt(input.SalaryMin), nullableInt(input.SalaryMax),
	)

	job, err := scanJob(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to update job: %w", err)
	}
	return job, nil
}

// DeleteJob removes a job posting.
func (db *DB) DeleteJob(ctx context.Context, jobID uuid.UUID) error {
	result, err := db.pool.Exec(ctx, `DELETE FROM jobs WHERE id = $1`, jobID)
	if err != nil {
		return fmt.Errorf("failed to delete job: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("job not found: %s", jobID)
	}
	return nil
}

// ListAllJobs retrieves every job posting, for ranking against a
// candidate profile.
func (db *DB) ListAllJobs(ctx context.Context) ([]Job, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT `+jobColumns+` FROM jobs ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list jobs: %w", err)
	}
	defer rows.Close()

	var jobs []Job
	for rows.Next() {
		job, err := scanJob(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan job: %w", err)
		}
		jobs = append(jobs, *job)
	}
	return jobs, nil
}
