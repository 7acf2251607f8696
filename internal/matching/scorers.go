package matching

import (
	"math"
	"strings"
	"unicode"
)

// Every scorer returns an integer in [0,100] and returns 0 — never a
// neutral midpoint — when its required input is missing: absence of data
// is never rewarded.

// scoreSkills filters the candidate's skills against the recognized
// vocabulary, then checks each relevant skill for substring presence in
// the job text. Score is the matched/relevant ratio scaled to 100.
func (e *Engine) scoreSkills(c *CandidateProfile, j *JobPosting) int {
	if len(c.Skills) == 0 {
		return 0
	}

	text := strings.ToLower(j.Title + " " + j.Description)

	relevant, matched := 0, 0
	for _, raw := range c.Skills {
		skill := strings.ToLower(strings.TrimSpace(raw))
		if skill == "" || !e.tables.RelevantSkills[skill] {
			continue
		}
		relevant++
		if strings.Contains(text, skill) {
			matched++
		}
	}

	if relevant == 0 {
		return 0
	}
	return ratioScore(matched, relevant, 100)
}

// scoreTitle compares the candidate's title (and bio) with the job title.
// Direct containment wins outright; otherwise token overlap is scored up
// to 80, then shared semantic-group membership gives a flat 70.
func (e *Engine) scoreTitle(c *CandidateProfile, j *JobPosting) int {
	candTitle := strings.ToLower(strings.TrimSpace(c.JobTitle))
	candText := strings.TrimSpace(strings.ToLower(c.JobTitle + " " + c.Bio))
	jobTitle := strings.ToLower(strings.TrimSpace(j.Title))
	if candText == "" || jobTitle == "" {
		return 0
	}

	if strings.Contains(candText, jobTitle) {
		return 100
	}
	if candTitle != "" && strings.Contains(jobTitle, candTitle) {
		return 100
	}

	jobTokens := e.titleTokens(jobTitle)
	if len(jobTokens) > 0 {
		candTokens := make(map[string]bool)
		for _, t := range e.titleTokens(candText) {
			candTokens[t] = true
		}
		common := 0
		for _, t := range jobTokens {
			if candTokens[t] {
				common++
			}
		}
		if common > 0 {
			score := ratioScore(common, len(jobTokens), 80)
			if score > 80 {
				score = 80
			}
			return score
		}
	}

	for _, group := range e.tables.SemanticGroups {
		if containsAny(candText, group.Terms) && containsAny(jobTitle, group.Terms) {
			return 70
		}
	}

	return 0
}

// scoreIndustry looks the job's industry up in the alias table, then
// counts how many of that industry's keywords the candidate mentions.
// An alias match with zero keyword hits is still a weak signal worth 10.
func (e *Engine) scoreIndustry(c *CandidateProfile, j *JobPosting) int {
	industry := strings.ToLower(strings.TrimSpace(j.Industry))
	if industry == "" {
		return 0
	}

	var def *IndustryDefinition
	for i := range e.tables.Industries {
		for _, alias := range e.tables.Industries[i].Aliases {
			if strings.Contains(industry, alias) || strings.Contains(alias, industry) {
				def = &e.tables.Industries[i]
				break
			}
		}
		if def != nil {
			break
		}
	}
	if def == nil || len(def.Keywords) == 0 {
		return 0
	}

	candText := strings.TrimSpace(candidateText(c))
	if candText == "" {
		return 0
	}

	hits := 0
	for _, kw := range def.Keywords {
		if strings.Contains(candText, kw) {
			hits++
		}
	}
	if hits == 0 {
		return 10
	}
	return ratioScore(hits, len(def.Keywords), 100)
}

var remoteTerms = []string{"remote", "télétravail", "hybride", "hybrid"}

// scoreLocation checks remote policy first (short-circuits at 90), then
// compares candidate city/country with the job location: exact
// containment 100, city match 85, country match 70, then the region
// tables at 60 (same French metro area) or 40 (both in Europe).
func (e *Engine) scoreLocation(c *CandidateProfile, j *JobPosting) int {
	if containsAny(strings.ToLower(j.RemoteMode), remoteTerms) {
		return 90
	}

	city := strings.ToLower(strings.TrimSpace(c.City))
	country := strings.ToLower(strings.TrimSpace(c.Country))
	jobLoc := strings.ToLower(strings.TrimSpace(j.Location))
	candLoc := strings.TrimSpace(city + " " + country)
	if candLoc == "" || jobLoc == "" {
		return 0
	}

	if strings.Contains(jobLoc, candLoc) || strings.Contains(candLoc, jobLoc) {
		return 100
	}
	if city != "" && strings.Contains(jobLoc, city) {
		return 85
	}
	if country != "" && strings.Contains(jobLoc, country) {
		return 70
	}

	if e.tables.FranceCities[city] && containsAnyKey(jobLoc, e.tables.FranceCities) {
		return 60
	}
	if e.tables.EuropeCountries[country] && containsAnyKey(jobLoc, e.tables.EuropeCountries) {
		return 40
	}

	return 0
}

// scoreExperience maps both levels through the ordinal table and scores
// by absolute rank difference. Unrecognized values fall back to the
// mid-level rank; unset values score 0.
func (e *Engine) scoreExperience(c *CandidateProfile, j *JobPosting) int {
	candLevel := strings.ToLower(strings.TrimSpace(c.ExperienceLevel))
	jobLevel := strings.ToLower(strings.TrimSpace(j.ExperienceRequired))
	if candLevel == "" || jobLevel == "" {
		return 0
	}

	diff := e.experienceRank(candLevel) - e.experienceRank(jobLevel)
	if diff < 0 {
		diff = -diff
	}
	switch diff {
	case 0:
		return 100
	case 1:
		return 80
	case 2:
		return 60
	case 3:
		return 40
	default:
		return 10
	}
}

// scoreContract rewards immediate availability with a flat 90 regardless
// of contract type; otherwise the contract type alone decides.
func (e *Engine) scoreContract(c *CandidateProfile, j *JobPosting) int {
	if c.Availability {
		return 90
	}

	contract := strings.ToLower(strings.TrimSpace(j.ContractType))
	if contract == "" {
		return 0
	}
	switch {
	case strings.Contains(contract, "cdi"):
		return 80
	case strings.Contains(contract, "cdd"):
		return 70
	case strings.Contains(contract, "stage"):
		return 60
	case strings.Contains(contract, "freelance"):
		return 50
	default:
		return 0
	}
}

// scoreSalary compares the job's offered salary (max, falling back to
// min) with the candidate's expected salary for their experience level,
// scored by percentage difference.
func (e *Engine) scoreSalary(c *CandidateProfile, j *JobPosting) int {
	if j.SalaryMin == 0 && j.SalaryMax == 0 {
		return 0
	}

	level := strings.ToLower(strings.TrimSpace(c.ExperienceLevel))
	expected, ok := e.tables.AverageSalaries[level]
	if !ok {
		expected = e.cfg.DefaultSalary
	}

	offered := j.SalaryMax
	if offered == 0 {
		offered = j.SalaryMin
	}
	if offered == 0 {
		offered = e.cfg.DefaultSalary
	}

	diff := math.Abs(float64(offered-expected)) / float64(expected) * 100
	switch {
	case diff <= 10:
		return 100
	case diff <= 20:
		return 80
	case diff <= 30:
		return 60
	case diff <= 50:
		return 40
	default:
		return 10
	}
}

// experienceRank returns the ordinal rank for a lowercased level,
// defaulting to the mid-level rank for unknown vocabulary.
func (e *Engine) experienceRank(level string) int {
	if rank, ok := e.tables.ExperienceLevels[level]; ok {
		return rank
	}
	return unrecognizedExperienceRank
}

// titleTokens splits text into lowercase tokens of at least four runes,
// dropping stopwords and duplicates (order preserved).
func (e *Engine) titleTokens(text string) []string {
	fields := strings.FieldsFunc(text, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})

	seen := make(map[string]bool, len(fields))
	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		if len([]rune(f)) < 4 || e.tables.Stopwords[f] || seen[f] {
			continue
		}
		seen[f] = true
		tokens = append(tokens, f)
	}
	return tokens
}

// ratioScore scales part/total to [0,scale] and rounds.
func ratioScore(part, total, scale int) int {
	return int(math.Round(float64(part) / float64(total) * float64(scale)))
}

// containsAnyKey reports whether text contains any key of the set as a
// substring.
func containsAnyKey(text string, set map[string]bool) bool {
	for key := range set {
		if strings.Contains(text, key) {
			return true
		}
	}
	return false
}
