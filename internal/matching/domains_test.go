package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckIncompatibility_MedicalProfileVsTechJob(t *testing.T) {
	e := newTestEngine()
	candidate := &CandidateProfile{
		JobTitle: "Médecin généraliste",
		Bio:      "clinique hospital patient",
	}
	job := &JobPosting{
		Title:       "Développeur logiciel",
		Description: "software engineer javascript",
	}

	inc := e.checkIncompatibility(candidate, job)

	require.True(t, inc.Incompatible)
	assert.NotEmpty(t, inc.Reason)
	assert.Equal(t, 5, inc.Penalty)
}

func TestCheckIncompatibility_SymmetricDirection(t *testing.T) {
	e := newTestEngine()
	candidate := &CandidateProfile{
		JobTitle: "Développeur fullstack",
		Skills:   []string{"javascript", "react"},
	}
	job := &JobPosting{
		Title:       "Médecin généraliste remplaçant",
		Description: "consultations en clinique, suivi des patients",
	}

	inc := e.checkIncompatibility(candidate, job)

	require.True(t, inc.Incompatible)
	assert.NotEmpty(t, inc.Reason)
}

func TestCheckIncompatibility_CompatiblePairPassesThrough(t *testing.T) {
	e := newTestEngine()
	candidate := &CandidateProfile{
		JobTitle: "Développeur Frontend",
		Skills:   []string{"javascript", "react"},
	}
	job := &JobPosting{
		Title:       "Développeur Frontend React",
		Description: "react javascript css",
		Industry:    "tech",
	}

	inc := e.checkIncompatibility(candidate, job)

	assert.False(t, inc.Incompatible)
	assert.Empty(t, inc.Reason)
	assert.Zero(t, inc.Penalty)
}

func TestCheckIncompatibility_UnknownDomainsPassSilently(t *testing.T) {
	e := newTestEngine()
	candidate := &CandidateProfile{JobTitle: "Apiculteur", Bio: "ruches et récolte de miel"}
	job := &JobPosting{Title: "Astronome", Description: "observation du ciel profond"}

	// Neither side belongs to a known domain: the deny-list stays silent
	// and normal scoring decides.
	assert.False(t, e.checkIncompatibility(candidate, job).Incompatible)
}

func TestCheckIncompatibility_SameDomainVocabularyDoesNotVeto(t *testing.T) {
	e := newTestEngine()
	candidate := &CandidateProfile{
		JobTitle: "Infirmier diplômé",
		Bio:      "dix ans en clinique auprès des patients",
	}
	job := &JobPosting{
		Title:       "Infirmier de nuit",
		Description: "soins aux patients, service de l'hôpital",
		Industry:    "santé",
	}

	assert.False(t, e.checkIncompatibility(candidate, job).Incompatible)
}

func TestCheckIncompatibility_ReasonNamesADomain(t *testing.T) {
	e := newTestEngine()
	candidate := &CandidateProfile{JobTitle: "Avocat au barreau de Paris"}
	job := &JobPosting{Title: "Cuisinier", Description: "restaurant gastronomique"}

	inc := e.checkIncompatibility(candidate, job)

	require.True(t, inc.Incompatible)
	assert.Contains(t, inc.Reason, "incompatible")
}
