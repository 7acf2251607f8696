package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const candidateColumns = `id, user_id, skills, job_title, bio, city, country,
	experience_level, availability, created_at, updated_at`

func scanCandidate(row pgx.Row) (*Candidate, error) {
	var c Candidate
	err := row.Scan(&c.ID, &c.UserID, &c.Skills, &c.JobTitle, &c.Bio, &c.City,
		&c.Country, &c.ExperienceLevel, &c.Availability, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// CreateCandidate inserts a new candidate profile and returns the stored row.
func (db *DB) CreateCandidate(ctx context.Context, input CandidateInput) (*Candidate, error) {
	row := db.pool.QueryRow(ctx,
		`INSERT INTO candidates (user_id, skills, job_title, bio, city, country, experience_level, availability)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING `+candidateColumns,
		input.UserID, input.Skills, nullable(input.JobTitle), nullable(input.Bio),
		nullable(input.City), nullable(input.Country), nullable(input.ExperienceLevel),
		input.Availability,
	)

	candidate, err := scanCandidate(row)
	if err != nil {
		return nil, fmt.Errorf("failed to create candidate: %w", err)
	}
	return candidate, nil
}

// GetCandidateByID retrieves a candidate profile. Returns nil when no
// profile exists.
func (db *DB) GetCandidateByID(ctx context.Context, candidateID uuid.UUID) (*Candidate, error) {
	row := db.pool.QueryRow(ctx,
		`SELECT `+candidateColumns+` FROM candidates WHERE id = $1`, candidateID)

	candidate, err := scanCandidate(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get candidate: %w", err)
	}
	return candidate, nil
}

// ListCandidatesOptions holds pagination for listing candidates.
type ListCandidatesOptions struct {
	Limit  int
	Offset int
}

// ListCandidates retrieves candidate profiles with pagination, newest
// first, along with the total row count.
func (db *DB) ListCandidates(ctx context.Context, opts ListCandidatesOptions) ([]Candidate, int, error) {
	if opts.Limit == 0 {
		opts.Limit = 50
	}

	var total int
	if err := db.pool.QueryRow(ctx, `SELECT COUNT(*) FROM candidates`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count candidates: %w", err)
	}

	rows, err := db.pool.Query(ctx,
		`SELECT `+candidateColumns+` FROM candidates
		 ORDER BY created_at DESC LIMIT $1 OFFSET $2`,
		opts.Limit, opts.Offset,
	)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list candidates: %w", err)
	}
	defer rows.Close()

	var candidates []Candidate
	for rows.Next() {
		candidate, err := scanCandidate(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan candidate: %w", err)
		}
		candidates = append(candidates, *candidate)
	}
	return candidates, total, nil
}

// UpdateCandidate replaces the mutable fields of a candidate profile.
// Returns nil when no profile exists.
func (db *DB) UpdateCandidate(ctx context.Context, candidateID uuid.UUID, input CandidateInput) (*Candidate, error) {
	row := db.pool.QueryRow(ctx,
		`UPDATE candidates
		 SET skills = $2, job_title = $3, bio = $4, city = $5, country = $6,
		     experience_level = $7, availability = $8, updated_at = NOW()
		 WHERE id = $1
		 RETURNING `+candidateColumns,
		candidateID, input.Skills, nullable(input.JobTitle), nullable(input.Bio),
		nullable(input.City), nullable(input.Country), nullable(input.ExperienceLevel),
		input.Availability,
	)

	candidate, err := scanCandidate(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to update candidate: %w", err)
	}
	return candidate, nil
}

// DeleteCandidate removes a candidate profile.
func (db *DB) DeleteCandidate(ctx context.Context, candidateID uuid.UUID) error {
	result, err := db.pool.Exec(ctx, `DELETE FROM candidates WHERE id = $1`, candidateID)
	if err != nil {
		return fmt.Errorf("failed to delete candidate: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("candidate not found: %s", candidateID)
	}
	return nil
}

// ListAllCandidates retrieves every candidate profile, for ranking
// against a job posting.
func (db *DB) ListAllCandidates(ctx context.Context) ([]Candidate, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT `+candidateColumns+` FROM candidates ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list candidates: %w", err)
	}
	defer rows.Close()

	var candidates []Candidate
	for rows.Next() {
		candidate, err := scanCandidate(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan candidate: %w", err)
		}
		candidates = append(candidates, *candidate)
	}
	return candidates, nil
}
