// Package matching implements the candidate/job compatibility engine.
//
// The engine is a deterministic, rule-based scorer: it combines seven
// weighted sub-scores (skills, title, industry, location, experience,
// contract, salary) into a single 0-100 percentage, after an early
// domain-incompatibility check that can cap the result. It performs no
// I/O and holds no mutable state, so a single Engine value is safe for
// concurrent use.
package matching

import "github.com/google/uuid"

// Factor names as they appear in MatchResult.Weights.
const (
	FactorSkills     = "skills"
	FactorTitle      = "title"
	FactorIndustry   = "industry"
	FactorLocation   = "location"
	FactorExperience = "experience"
	FactorContract   = "contract"
	FactorSalary     = "salary"
)

// CandidateProfile is the candidate-side input to the engine. All fields
// except Skills are optional; the engine tolerates any combination of
// missing values. The record is owned and mutated elsewhere — the engine
// only reads it.
type CandidateProfile struct {
	ID              uuid.UUID `json:"id,omitempty"`
	Skills          []string  `json:"skills"`
	JobTitle        string    `json:"job_title,omitempty"`
	Bio             string    `json:"bio,omitempty"`
	City            string    `json:"city,omitempty"`
	Country         string    `json:"country,omitempty"`
	ExperienceLevel string    `json:"experience_level,omitempty"`
	Availability    bool      `json:"availability,omitempty"`
}

// JobPosting is the job-side input to the engine. SalaryMin/SalaryMax use
// zero as "not provided"; RemoteMode is free text checked for substrings
// like "remote" or "télétravail".
type JobPosting struct {
	ID                 uuid.UUID `json:"id,omitempty"`
	Title              string    `json:"title"`
	Description        string    `json:"description"`
	Industry           string    `json:"industry,omitempty"`
	Location           string    `json:"location,omitempty"`
	RemoteMode         string    `json:"remote_mode,omitempty"`
	ContractType       string    `json:"contract_type,omitempty"`
	ExperienceRequired string    `json:"experience_required,omitempty"`
	SalaryMin          int       `json:"salary_min,omitempty"`
	SalaryMax          int       `json:"salary_max,omitempty"`
}

// Subscores holds the per-factor scores (each 0-100) plus the aggregate
// total. IncompatibilityReason is set only when the domain guard vetoed
// the pair, in which case every factor is reported as zero.
type Subscores struct {
	Skills                int    `json:"skills"`
	Title                 int    `json:"title"`
	Industry              int    `json:"industry"`
	Location              int    `json:"location"`
	Experience            int    `json:"experience"`
	Contract              int    `json:"contract"`
	Salary                int    `json:"salary"`
	Total                 int    `json:"total"`
	IncompatibilityReason string `json:"incompatibility_reason,omitempty"`
}

// MatchResult is the engine output, constructed fresh on every call and
// never persisted. Score is always an integer in [0,100]. Weights maps
// factor names to the weight actually applied; it is empty when the
// domain guard vetoed or when the computation degraded to the sentinel.
type MatchResult struct {
	Score          int                `json:"score"`
	Subscores      Subscores          `json:"subscores"`
	Weights        map[string]float64 `json:"weights"`
	Recommendation string             `json:"recommendation"`
}

// Vetoed reports whether the result came from a domain-guard veto rather
// than a genuine low-factor match.
func (r *MatchResult) Vetoed() bool {
	return r.Subscores.IncompatibilityReason != ""
}
