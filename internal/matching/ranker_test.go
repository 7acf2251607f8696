package matching

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRankJobs_SortedByDescendingScore(t *testing.T) {
	e := NewDefaultEngine()
	candidate := frontendCandidate()

	weakJob := &JobPosting{
		ID:    uuid.New(),
		Title: "Chargé de clientèle",
	}
	strongJob := frontendJob()
	strongJob.ID = uuid.New()

	ranked, err := RankJobs(context.Background(), e, candidate, []*JobPosting{weakJob, strongJob})
	require.NoError(t, err)
	require.Len(t, ranked, 2)

	assert.Equal(t, strongJob.ID, ranked[0].Job.ID)
	assert.GreaterOrEqual(t, ranked[0].Result.Score, ranked[1].Result.Score)
}

func TestRankJobs_EqualScoresKeepStableOrder(t *testing.T) {
	e := NewDefaultEngine()
	candidate := &CandidateProfile{}

	// Every job scores zero against an empty candidate; order must be
	// deterministic regardless of input order.
	jobs := make([]*JobPosting, 0, 5)
	for i := 0; i < 5; i++ {
		jobs = append(jobs, &JobPosting{ID: uuid.New(), Title: "Poste générique"})
	}

	first, err := RankJobs(context.Background(), e, candidate, jobs)
	require.NoError(t, err)

	reversed := []*JobPosting{jobs[4], jobs[3], jobs[2], jobs[1], jobs[0]}
	second, err := RankJobs(context.Background(), e, candidate, reversed)
	require.NoError(t, err)

	for i := range first {
		assert.Equal(t, first[i].Job.ID, second[i].Job.ID)
	}
}

func TestRankJobs_EmptyInput(t *testing.T) {
	e := NewDefaultEngine()

	ranked, err := RankJobs(context.Background(), e, frontendCandidate(), nil)
	require.NoError(t, err)
	assert.Empty(t, ranked)
}

func TestRankJobs_CanceledContext(t *testing.T) {
	e := NewDefaultEngine()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := RankJobs(ctx, e, frontendCandidate(), []*JobPosting{frontendJob()})
	assert.Error(t, err)
}

func TestRankCandidates_SortedByDescendingScore(t *testing.T) {
	e := NewDefaultEngine()
	job := frontendJob()
	job.ID = uuid.New()

	strong := frontendCandidate()
	strong.ID = uuid.New()
	weak := &CandidateProfile{ID: uuid.New(), JobTitle: "Fleuriste"}

	ranked, err := RankCandidates(context.Background(), e, job, []*CandidateProfile{weak, strong})
	require.NoError(t, err)
	require.Len(t, ranked, 2)

	assert.Equal(t, strong.ID, ranked[0].Candidate.ID)
	assert.GreaterOrEqual(t, ranked[0].Result.Score, ranked[1].Result.Score)
}

func TestRankJobs_ManyJobsAllScored(t *testing.T) {
	e := NewDefaultEngine()
	candidate := frontendCandidate()

	jobs := make([]*JobPosting, 0, 100)
	for i := 0; i < 100; i++ {
		job := frontendJob()
		job.ID = uuid.New()
		jobs = append(jobs, job)
	}

	ranked, err := RankJobs(context.Background(), e, candidate, jobs)
	require.NoError(t, err)
	require.Len(t, ranked, 100)

	for _, r := range ranked {
		assert.Equal(t, ranked[0].Result.Score, r.Result.Score)
	}
}
