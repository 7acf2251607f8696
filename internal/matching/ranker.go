package matching

import (
	"context"
	"sort"

	"golang.org/x/sync/errgroup"
)

// maxConcurrentScores bounds the fan-out when ranking a collection. The
// engine itself is pure; the bound just keeps goroutine counts sane for
// very large result sets.
const maxConcurrentScores = 16

// RankedJob pairs a job with its match result for a given candidate.
type RankedJob struct {
	Job    *JobPosting `json:"job"`
	Result MatchResult `json:"result"`
}

// RankedCandidate pairs a candidate with its match result for a given job.
type RankedCandidate struct {
	Candidate *CandidateProfile `json:"candidate"`
	Result    MatchResult       `json:"result"`
}

// RankJobs scores every job against the candidate and returns the list
// sorted by descending score. Ties are broken by job ID so equal scores
// keep a stable order. Scoring calls are independent and run
// concurrently; ctx cancellation stops unstarted work.
func RankJobs(ctx context.Context, engine *Engine, candidate *CandidateProfile, jobs []*JobPosting) ([]RankedJob, error) {
	ranked := make([]RankedJob, len(jobs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentScores)
	for i, job := range jobs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			ranked[i] = RankedJob{Job: job, Result: engine.Match(candidate, job)}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Result.Score != ranked[j].Result.Score {
			return ranked[i].Result.Score > ranked[j].Result.Score
		}
		return ranked[i].Job.ID.String() < ranked[j].Job.ID.String()
	})
	return ranked, nil
}

// RankCandidates scores every candidate against the job and returns the
// list sorted by descending score, ties broken by candidate ID.
func RankCandidates(ctx context.Context, engine *Engine, job *JobPosting, candidates []*CandidateProfile) ([]RankedCandidate, error) {
	ranked := make([]RankedCandidate, len(candidates))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentScores)
	for i, candidate := range candidates {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			ranked[i] = RankedCandidate{Candidate: candidate, Result: engine.Match(candidate, job)}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Result.Score != ranked[j].Result.Score {
			return ranked[i].Result.Score > ranked[j].Result.Score
		}
		return ranked[i].Candidate.ID.String() < ranked[j].Candidate.ID.String()
	})
	return ranked, nil
}
