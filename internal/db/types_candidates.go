package db

import (
	"time"

	"github.com/google/uuid"

	"github.com/1001franck/Linkup-sub000/internal/matching"
)

// Candidate represents a stored candidate profile. All professional
// fields are optional; the matching engine tolerates any combination of
// missing values.
type Candidate struct {
	ID              uuid.UUID `json:"id"`
	UserID          uuid.UUID `json:"user_id"`
	Skills          []string  `json:"skills"`
	JobTitle        *string   `json:"job_title,omitempty"`
	Bio             *string   `json:"bio,omitempty"`
	City            *string   `json:"city,omitempty"`
	Country         *string   `json:"country,omitempty"`
	ExperienceLevel *string   `json:"experience_level,omitempty"`
	Availability    bool      `json:"availability"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// CandidateInput is used when creating or updating a candidate profile.
type CandidateInput struct {
	UserID          uuid.UUID `json:"user_id" validate:"required"`
	Skills          []string  `json:"skills"`
	JobTitle        string    `json:"job_title"`
	Bio             string    `json:"bio"`
	City            string    `json:"city"`
	Country         string    `json:"country"`
	ExperienceLevel string    `json:"experience_level"`
	Availability    bool      `json:"availability"`
}

// Profile converts the stored row into the engine's input shape.
func (c *Candidate) Profile() *matching.CandidateProfile {
	return &matching.CandidateProfile{
		ID:              c.ID,
		Skills:          c.Skills,
		JobTitle:        deref(c.JobTitle),
		Bio:             deref(c.Bio),
		City:            deref(c.City),
		Country:         deref(c.Country),
		ExperienceLevel: deref(c.ExperienceLevel),
		Availability:    c.Availability,
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
