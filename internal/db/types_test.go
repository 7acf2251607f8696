package db

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidRole(t *testing.T) {
	assert.True(t, ValidRole(RoleCandidate))
	assert.True(t, ValidRole(RoleCompany))
	assert.True(t, ValidRole(RoleAdmin))
	assert.False(t, ValidRole("superadmin"))
	assert.False(t, ValidRole(""))
}

func TestCandidateProfile_Conversion(t *testing.T) {
	id := uuid.New()
	title := "Développeuse Frontend"
	city := "Lyon"
	level := "senior"

	candidate := &Candidate{
		ID:              id,
		Skills:          []string{"javascript", "react"},
		JobTitle:        &title,
		City:            &city,
		ExperienceLevel: &level,
		Availability:    true,
	}

	profile := candidate.Profile()
	require.NotNil(t, profile)
	assert.Equal(t, id, profile.ID)
	assert.Equal(t, []string{"javascript", "react"}, profile.Skills)
	assert.Equal(t, "Développeuse Frontend", profile.JobTitle)
	assert.Equal(t, "Lyon", profile.City)
	assert.Equal(t, "senior", profile.ExperienceLevel)
	assert.True(t, profile.Availability)

	// Unset optionals convert to empty strings.
	assert.Empty(t, profile.Bio)
	assert.Empty(t, profile.Country)
}

func TestJobPosting_Conversion(t *testing.T) {
	id := uuid.New()
	industry := "tech"
	salaryMin := 45000

	job := &Job{
		ID:          id,
		Title:       "Développeur Backend",
		Description: "Conception d'API en Go",
		Industry:    &industry,
		SalaryMin:   &salaryMin,
	}

	posting := job.Posting()
	require.NotNil(t, posting)
	assert.Equal(t, id, posting.ID)
	assert.Equal(t, "Développeur Backend", posting.Title)
	assert.Equal(t, "tech", posting.Industry)
	assert.Equal(t, 45000, posting.SalaryMin)

	// Unset salary converts to the zero sentinel.
	assert.Zero(t, posting.SalaryMax)
	assert.Empty(t, posting.ContractType)
}

func TestNullableHelpers(t *testing.T) {
	assert.Nil(t, nullable(""))
	require.NotNil(t, nullable("x"))
	assert.Equal(t, "x", *nullable("x"))

	assert.Nil(t, nullableInt(0))
	require.NotNil(t, nullableInt(42))
	assert.Equal(t, 42, *nullableInt(42))

	assert.Empty(t, deref(nil))
	assert.Zero(t, derefInt(nil))
}
