package matching

import "math"

// Engine computes match results from a fixed configuration and
// vocabulary. Construct once with NewEngine and reuse freely; Match is
// safe for concurrent callers.
type Engine struct {
	cfg    Config
	tables *Tables
}

// NewEngine builds an engine with the given tuning and the built-in
// vocabulary tables.
func NewEngine(cfg Config) *Engine {
	return &Engine{cfg: cfg, tables: DefaultTables()}
}

// NewDefaultEngine builds an engine with the production tuning.
func NewDefaultEngine() *Engine {
	return NewEngine(DefaultConfig())
}

// Match scores a candidate against a job posting. It is a total
// function: it never panics and never returns an error. Malformed or
// missing fields degrade to zero sub-scores, and any unexpected fault
// inside the computation yields the zero-score sentinel result.
//
// The same inputs always produce the same result.
func (e *Engine) Match(candidate *CandidateProfile, job *JobPosting) (result MatchResult) {
	defer func() {
		if recover() != nil {
			result = unavailableResult()
		}
	}()

	if candidate == nil || job == nil {
		return unavailableResult()
	}

	if inc := e.checkIncompatibility(candidate, job); inc.Incompatible {
		return e.vetoedResult(inc)
	}

	sub := Subscores{
		Skills:     e.scoreSkills(candidate, job),
		Title:      e.scoreTitle(candidate, job),
		Industry:   e.scoreIndustry(candidate, job),
		Location:   e.scoreLocation(candidate, job),
		Experience: e.scoreExperience(candidate, job),
		Contract:   e.scoreContract(candidate, job),
		Salary:     e.scoreSalary(candidate, job),
	}

	w := e.cfg.Weights
	total := float64(sub.Skills)*w.Skills +
		float64(sub.Title)*w.Title +
		float64(sub.Industry)*w.Industry +
		float64(sub.Location)*w.Location +
		float64(sub.Experience)*w.Experience +
		float64(sub.Contract)*w.Contract +
		float64(sub.Salary)*w.Salary

	// With weights summing to 1.0 and factors in [0,100] the sum already
	// lands in [0,100]; the clamp only guards nonstandard tunings.
	score := clampScore(int(math.Round(total)))
	sub.Total = score

	return MatchResult{
		Score:          score,
		Subscores:      sub,
		Weights:        w.asMap(),
		Recommendation: Recommendation(score),
	}
}

// vetoedResult builds the capped result for a domain-guard veto. The
// factor sub-scores are reported as zero and no weights apply.
func (e *Engine) vetoedResult(inc Incompatibility) MatchResult {
	score := inc.Penalty
	if score == 0 {
		score = 10
	}
	if score > e.cfg.IncompatibilityCap {
		score = e.cfg.IncompatibilityCap
	}

	return MatchResult{
		Score: score,
		Subscores: Subscores{
			Total:                 score,
			IncompatibilityReason: inc.Reason,
		},
		Weights:        map[string]float64{},
		Recommendation: Recommendation(score) + " ❌",
	}
}

// unavailableResult is the degraded sentinel for faults and nil inputs.
func unavailableResult() MatchResult {
	return MatchResult{
		Score:          0,
		Subscores:      Subscores{},
		Weights:        map[string]float64{},
		Recommendation: RecommendationUnavailable,
	}
}

func clampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
