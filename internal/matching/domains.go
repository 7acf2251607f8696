package matching

import (
	"fmt"
	"strings"
)

// DomainDefinition describes one professional domain for the
// incompatibility guard: Keywords identify profiles or offers belonging
// to the domain, Incompatible lists terms from domains that should never
// pair with it.
type DomainDefinition struct {
	Name         string
	Keywords     []string
	Incompatible []string
}

// Incompatibility is the guard verdict. Penalty is zero when the pair
// passed.
type Incompatibility struct {
	Incompatible bool
	Reason       string
	Penalty      int
}

// domainTable is scanned in order and the first matching domain wins.
// The ordering among domains is incidental: no caller may rely on which
// domain is reported when several would match the same pair.
//
// This is a deny-list: false negatives (an incompatible pair slipping
// through to normal scoring) are expected and acceptable.
var domainTable = []DomainDefinition{
	{
		Name: "médical",
		Keywords: []string{
			"médecin", "docteur", "infirmier", "infirmière", "chirurgien",
			"clinique", "hôpital", "hospital", "patient", "pharmacien",
			"kinésithérapeute", "sage-femme", "aide-soignant",
		},
		Incompatible: []string{
			"développeur", "developer", "logiciel", "software", "javascript",
			"python", "devops", "data engineer", "comptable", "avocat",
		},
	},
	{
		Name: "juridique",
		Keywords: []string{
			"avocat", "juriste", "notaire", "magistrat", "contentieux", "barreau",
		},
		Incompatible: []string{
			"développeur", "developer", "software", "infirmier", "chirurgien",
			"cuisinier", "chauffeur", "maçon",
		},
	},
	{
		Name: "éducation",
		Keywords: []string{
			"professeur", "enseignant", "instituteur", "éducateur",
		},
		Incompatible: []string{
			"chirurgien", "avocat", "trader", "soudeur", "maçon",
		},
	},
	{
		Name: "tech",
		Keywords: []string{
			"développeur", "developer", "ingénieur logiciel", "software engineer",
			"programmeur", "devops", "data scientist",
		},
		Incompatible: []string{
			"chirurgien", "médecin généraliste", "infirmier", "notaire",
			"maçon", "cuisinier", "aide-soignant",
		},
	},
	{
		Name: "restauration",
		Keywords: []string{
			"cuisinier", "chef de cuisine", "serveur", "barman", "pâtissier",
		},
		Incompatible: []string{
			"développeur", "chirurgien", "avocat", "expert-comptable",
		},
	},
}

// checkIncompatibility detects hard domain mismatches between the two
// sides. Both directions are tested: a medical profile against a tech
// offer, and a medical offer against a tech profile.
func (e *Engine) checkIncompatibility(candidate *CandidateProfile, job *JobPosting) Incompatibility {
	candText := candidateText(candidate)
	jobText := jobText(job)

	for _, domain := range e.tables.Domains {
		if containsAny(candText, domain.Keywords) && containsAny(jobText, domain.Incompatible) {
			return Incompatibility{
				Incompatible: true,
				Reason:       fmt.Sprintf("profil du domaine %s incompatible avec cette offre", domain.Name),
				Penalty:      e.cfg.IncompatibilityPenalty,
			}
		}
		if containsAny(jobText, domain.Keywords) && containsAny(candText, domain.Incompatible) {
			return Incompatibility{
				Incompatible: true,
				Reason:       fmt.Sprintf("offre du domaine %s incompatible avec ce profil", domain.Name),
				Penalty:      e.cfg.IncompatibilityPenalty,
			}
		}
	}

	return Incompatibility{}
}

// candidateText concatenates the candidate's free-text fields, lowercased,
// for keyword scanning.
func candidateText(c *CandidateProfile) string {
	parts := make([]string, 0, 2+len(c.Skills))
	parts = append(parts, c.JobTitle, c.Bio)
	parts = append(parts, c.Skills...)
	return strings.ToLower(strings.Join(parts, " "))
}

// jobText concatenates the job's free-text fields, lowercased.
func jobText(j *JobPosting) string {
	return strings.ToLower(j.Title + " " + j.Description + " " + j.Industry)
}

// containsAny reports whether text contains at least one of the terms as
// a substring. Empty text never matches.
func containsAny(text string, terms []string) bool {
	if text == "" {
		return false
	}
	for _, term := range terms {
		if term != "" && strings.Contains(text, term) {
			return true
		}
	}
	return false
}
