package matching

// Weights holds the fraction each factor contributes to the aggregate
// score. The defaults sum to 1.00, which keeps the weighted sum of
// factors (each 0-100) inside [0,100] before the defensive clamp.
type Weights struct {
	Skills     float64
	Title      float64
	Industry   float64
	Location   float64
	Experience float64
	Contract   float64
	Salary     float64
}

// asMap returns the weights keyed by factor name, for inclusion in a
// MatchResult.
func (w Weights) asMap() map[string]float64 {
	return map[string]float64{
		FactorSkills:     w.Skills,
		FactorTitle:      w.Title,
		FactorIndustry:   w.Industry,
		FactorLocation:   w.Location,
		FactorExperience: w.Experience,
		FactorContract:   w.Contract,
		FactorSalary:     w.Salary,
	}
}

// Config is the immutable tuning of the engine: factor weights plus the
// domain-guard penalty bounds and salary fallbacks. Construct it once
// (usually via DefaultConfig) and pass it to NewEngine; the engine never
// mutates it.
type Config struct {
	Weights Weights

	// IncompatibilityPenalty is the score assigned when the domain guard
	// vetoes a pair. IncompatibilityCap bounds it from above so a veto can
	// never look like a plausible match.
	IncompatibilityPenalty int
	IncompatibilityCap     int

	// DefaultSalary is used both as the expected salary for unrecognized
	// experience levels and as the job-side fallback.
	DefaultSalary int
}

// DefaultConfig returns the production tuning. Skills, title and industry
// dominate (75% combined) because they carry the strongest signal of role
// fit; contract and salary are minor tie-breakers since most candidates
// are flexible on both.
func DefaultConfig() Config {
	return Config{
		Weights: Weights{
			Skills:     0.30,
			Title:      0.25,
			Industry:   0.20,
			Location:   0.10,
			Experience: 0.10,
			Contract:   0.03,
			Salary:     0.02,
		},
		IncompatibilityPenalty: 5,
		IncompatibilityCap:     15,
		DefaultSalary:          45000,
	}
}
