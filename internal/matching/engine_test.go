package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func frontendCandidate() *CandidateProfile {
	return &CandidateProfile{
		Skills:          []string{"javascript", "react"},
		JobTitle:        "Développeur Frontend",
		ExperienceLevel: "junior",
		Availability:    true,
	}
}

func frontendJob() *JobPosting {
	return &JobPosting{
		Title:              "Développeur Frontend React",
		Description:        "Nous cherchons un profil maîtrisant react et javascript",
		Industry:           "tech",
		ExperienceRequired: "junior",
		ContractType:       "CDI",
	}
}

func TestMatch_StrongFrontendPair(t *testing.T) {
	e := NewDefaultEngine()

	result := e.Match(frontendCandidate(), frontendJob())

	assert.Equal(t, 100, result.Subscores.Skills)
	assert.Equal(t, 100, result.Subscores.Title)
	assert.Equal(t, 100, result.Subscores.Experience)
	assert.Equal(t, 90, result.Subscores.Contract)
	assert.GreaterOrEqual(t, result.Score, 80)
	assert.LessOrEqual(t, result.Score, 95)
	assert.Contains(t, []string{"Excellent match ⭐", "Match parfait 🎯"}, result.Recommendation)
	assert.False(t, result.Vetoed())
}

func TestMatch_DomainVetoCapsScore(t *testing.T) {
	e := NewDefaultEngine()
	candidate := &CandidateProfile{
		JobTitle: "Médecin généraliste",
		Bio:      "clinique hospital patient",
	}
	job := &JobPosting{
		Title:       "Développeur logiciel",
		Description: "software engineer javascript",
	}

	result := e.Match(candidate, job)

	assert.LessOrEqual(t, result.Score, 15)
	assert.NotEmpty(t, result.Subscores.IncompatibilityReason)
	assert.True(t, result.Vetoed())
	assert.Empty(t, result.Weights)

	// Factor sub-scores are all reported as zero under a veto.
	assert.Zero(t, result.Subscores.Skills)
	assert.Zero(t, result.Subscores.Title)
	assert.Zero(t, result.Subscores.Industry)
	assert.Zero(t, result.Subscores.Location)
	assert.Zero(t, result.Subscores.Experience)
	assert.Zero(t, result.Subscores.Contract)
	assert.Zero(t, result.Subscores.Salary)

	runes := []rune(result.Recommendation)
	assert.Equal(t, '❌', runes[len(runes)-1])
}

func TestMatch_EmptyCandidateScoresZero(t *testing.T) {
	e := NewDefaultEngine()
	candidate := &CandidateProfile{}
	job := &JobPosting{
		Title:              "Développeur Backend",
		Description:        "API en golang, postgresql",
		Industry:           "tech",
		Location:           "Paris",
		ExperienceRequired: "senior",
	}

	result := e.Match(candidate, job)

	assert.Equal(t, 0, result.Score)
	assert.Equal(t, Subscores{}, result.Subscores)
	assert.Equal(t, "Match très faible ❌", result.Recommendation)
}

func TestMatch_ExactCityContainment(t *testing.T) {
	e := NewDefaultEngine()
	candidate := &CandidateProfile{City: "Paris"}
	job := &JobPosting{Title: "Comptable", Location: "Paris"}

	result := e.Match(candidate, job)

	assert.Equal(t, 100, result.Subscores.Location)
}

func TestMatch_ExperienceGapOfThree(t *testing.T) {
	e := NewDefaultEngine()
	candidate := &CandidateProfile{ExperienceLevel: "senior"}
	job := &JobPosting{Title: "Assistant", ExperienceRequired: "débutant"}

	result := e.Match(candidate, job)

	assert.Equal(t, 40, result.Subscores.Experience)
}

func TestMatch_Idempotent(t *testing.T) {
	e := NewDefaultEngine()
	candidate := frontendCandidate()
	job := frontendJob()

	first := e.Match(candidate, job)
	second := e.Match(candidate, job)

	assert.Equal(t, first, second)
}

func TestMatch_ScoreAlwaysInRange(t *testing.T) {
	e := NewDefaultEngine()

	pairs := []struct {
		name      string
		candidate *CandidateProfile
		job       *JobPosting
	}{
		{"empty both", &CandidateProfile{}, &JobPosting{}},
		{"strong pair", frontendCandidate(), frontendJob()},
		{"vetoed pair",
			&CandidateProfile{JobTitle: "Médecin", Bio: "patients en clinique"},
			&JobPosting{Title: "Développeur", Description: "python javascript"}},
		{"partial fields",
			&CandidateProfile{Skills: []string{"figma"}, City: "Lyon"},
			&JobPosting{Title: "Product Designer", Description: "figma", SalaryMax: 40000}},
	}

	for _, p := range pairs {
		t.Run(p.name, func(t *testing.T) {
			result := e.Match(p.candidate, p.job)
			assert.GreaterOrEqual(t, result.Score, 0)
			assert.LessOrEqual(t, result.Score, 100)
			assert.NotEmpty(t, result.Recommendation)
		})
	}
}

func TestMatch_NilInputsDegradeToSentinel(t *testing.T) {
	e := NewDefaultEngine()

	for _, result := range []MatchResult{
		e.Match(nil, frontendJob()),
		e.Match(frontendCandidate(), nil),
		e.Match(nil, nil),
	} {
		assert.Equal(t, 0, result.Score)
		assert.Equal(t, RecommendationUnavailable, result.Recommendation)
		assert.Empty(t, result.Weights)
	}
}

func TestMatch_RemoteOverridesLocationFields(t *testing.T) {
	e := NewDefaultEngine()
	candidate := &CandidateProfile{City: "Marseille", Country: "France"}
	job := &JobPosting{Title: "Support client", Location: "Oslo", RemoteMode: "remote"}

	result := e.Match(candidate, job)

	assert.Equal(t, 90, result.Subscores.Location)
}

func TestMatch_WeightsSumToOne(t *testing.T) {
	e := NewDefaultEngine()

	result := e.Match(frontendCandidate(), frontendJob())

	require.Len(t, result.Weights, 7)
	sum := 0.0
	for _, w := range result.Weights {
		sum += w
	}
	assert.InDelta(t, 1.0, sum, 1e-9)
}

func TestMatch_TotalMatchesReportedScore(t *testing.T) {
	e := NewDefaultEngine()

	result := e.Match(frontendCandidate(), frontendJob())

	assert.Equal(t, result.Score, result.Subscores.Total)
}
