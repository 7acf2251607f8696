package db

import (
	"time"

	"github.com/google/uuid"

	"github.com/1001franck/Linkup-sub000/internal/matching"
)

// Contract type constants as they commonly appear in French postings.
// Stored values are free text; these are convenience labels, not an
// enforced enum.
const (
	ContractCDI       = "CDI"
	ContractCDD       = "CDD"
	ContractStage     = "Stage"
	ContractFreelance = "Freelance"
)

// Job represents a stored job posting.
type Job struct {
	ID                 uuid.UUID `json:"id"`
	CompanyID          uuid.UUID `json:"company_id"`
	Title              string    `json:"title"`
	Description        string    `json:"description"`
	Industry           *string   `json:"industry,omitempty"`
	Location           *string   `json:"location,omitempty"`
	RemoteMode         *string   `json:"remote_mode,omitempty"`
	ContractType       *string   `json:"contract_type,omitempty"`
	ExperienceRequired *string   `json:"experience_required,omitempty"`
	SalaryMin          *int      `json:"salary_min,omitempty"`
	SalaryMax          *int      `json:"salary_max,omitempty"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// JobInput is used when creating or updating a job posting.
type JobInput struct {
	CompanyID          uuid.UUID `json:"company_id" validate:"required"`
	Title              string    `json:"title" validate:"required"`
	Description        string    `json:"description" validate:"required"`
	Industry           string    `json:"industry"`
	Location           string    `json:"location"`
	RemoteMode         string    `json:"remote_mode"`
	ContractType       string    `json:"contract_type"`
	ExperienceRequired string    `json:"experience_required"`
	SalaryMin          int       `json:"salary_min" validate:"min=0"`
	SalaryMax          int       `json:"salary_max" validate:"omitempty,gtefield=SalaryMin"`
}

// Posting converts the stored row into the engine's input shape.
func (j *Job) Posting() *matching.JobPosting {
	return &matching.JobPosting{
		ID:                 j.ID,
		Title:              j.Title,
		Description:        j.Description,
		Industry:           deref(j.Industry),
		Location:           deref(j.Location),
		RemoteMode:         deref(j.RemoteMode),
		ContractType:       deref(j.ContractType),
		ExperienceRequired: deref(j.ExperienceRequired),
		SalaryMin:          derefInt(j.SalaryMin),
		SalaryMax:          derefInt(j.SalaryMax),
	}
}

func derefInt(n *int) int {
	if n == nil {
		return 0
	}
	return *n
}

func nullableInt(n int) *int {
	if n == 0 {
		return nil
	}
	return &n
}
