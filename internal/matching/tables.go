package matching

// Tables groups the static vocabularies the scorers consult. They are
// built once at startup and shared by reference; nothing mutates them
// after construction.
type Tables struct {
	RelevantSkills   map[string]bool
	SemanticGroups   []SemanticGroup
	Stopwords        map[string]bool
	Industries       []IndustryDefinition
	FranceCities     map[string]bool
	EuropeCountries  map[string]bool
	ExperienceLevels map[string]int
	AverageSalaries  map[string]int
	Domains          []DomainDefinition
}

// SemanticGroup is a family of job-title terms considered interchangeable
// for the title scorer (shared membership scores a flat 70).
type SemanticGroup struct {
	Name  string
	Terms []string
}

// IndustryDefinition maps an industry (with FR/EN alias spellings) to the
// keywords a matching candidate profile is expected to mention.
type IndustryDefinition struct {
	Name     string
	Aliases  []string
	Keywords []string
}

// unrecognizedExperienceRank is the mid-level fallback for experience
// values outside the known vocabulary.
const unrecognizedExperienceRank = 3

// DefaultTables returns the built-in vocabulary. The relevant-skills list
// deliberately mixes technical, creative and commercial terms in one flat
// vocabulary; niche trades absent from it simply score zero on the skills
// factor.
func DefaultTables() *Tables {
	return &Tables{
		RelevantSkills:   relevantSkills,
		SemanticGroups:   semanticGroups,
		Stopwords:        stopwords,
		Industries:       industryTable,
		FranceCities:     franceCities,
		EuropeCountries:  europeCountries,
		ExperienceLevels: experienceLevels,
		AverageSalaries:  averageSalaries,
		Domains:          domainTable,
	}
}

var relevantSkills = toSet([]string{
	// Languages and frameworks
	"javascript", "typescript", "python", "java", "php", "ruby", "golang",
	"rust", "c++", "c#", "swift", "kotlin", "react", "angular", "vue",
	"svelte", "node", "django", "flask", "laravel", "symfony", "spring",
	"rails", "html", "css", "sass", "tailwind",
	// Data and infrastructure
	"sql", "mysql", "postgresql", "mongodb", "redis", "elasticsearch",
	"graphql", "docker", "kubernetes", "aws", "azure", "gcp", "terraform",
	"ansible", "jenkins", "git", "linux",
	// Methods and tooling
	"agile", "scrum", "jira", "gestion de projet", "management",
	// Design and content
	"figma", "sketch", "photoshop", "illustrator", "indesign", "ui", "ux",
	"wordpress", "copywriting", "motion design",
	// Marketing
	"seo", "sea", "google analytics", "content marketing",
	"community management", "emailing", "growth",
	// Sales and back office
	"vente", "négociation", "prospection", "crm", "salesforce",
	"comptabilité", "paie", "recrutement", "formation", "communication",
	"excel", "powerpoint",
	// Languages (spoken)
	"anglais", "espagnol", "allemand",
})

var semanticGroups = []SemanticGroup{
	{Name: "développement", Terms: []string{
		"développeur", "developer", "ingénieur logiciel", "software engineer",
		"programmeur", "fullstack", "full-stack", "backend", "frontend", "devops",
	}},
	{Name: "design", Terms: []string{
		"designer", "graphiste", "directeur artistique", "webdesigner",
		"ux", "ui", "motion",
	}},
	{Name: "marketing", Terms: []string{
		"marketing", "growth", "acquisition", "brand", "contenu", "content",
		"communication",
	}},
	{Name: "commercial", Terms: []string{
		"commercial", "vente", "sales", "business developer", "account manager",
	}},
	{Name: "ressources humaines", Terms: []string{
		"ressources humaines", "recruteur", "recruiter", "talent", "chargé de recrutement",
	}},
	{Name: "finance", Terms: []string{
		"comptable", "comptabilité", "audit", "contrôleur de gestion",
		"analyste financier", "trésorerie",
	}},
	{Name: "santé", Terms: []string{
		"médecin", "infirmier", "infirmière", "soignant", "pharmacien",
		"kinésithérapeute",
	}},
	{Name: "éducation", Terms: []string{
		"professeur", "enseignant", "formateur", "éducateur", "teacher",
	}},
	{Name: "juridique", Terms: []string{
		"juriste", "avocat", "notaire", "legal counsel", "droit",
	}},
}

// stopwords are filtered out of title tokens before overlap counting.
// Tokens shorter than four runes are dropped regardless, so only longer
// filler words need to appear here.
var stopwords = toSet([]string{
	"avec", "pour", "dans", "chez", "vous", "nous", "votre", "notre",
	"plus", "sous", "entre", "leurs", "cette", "tous", "toutes", "être",
	"avoir", "sans", "autre", "from", "with", "that", "this", "your",
	"will", "have", "been", "their", "about", "into", "than", "very",
})

var industryTable = []IndustryDefinition{
	{
		Name:     "tech",
		Aliases:  []string{"tech", "technologie", "informatique", "software", "digital", "numérique"},
		Keywords: []string{"développeur", "developer", "javascript", "react", "python", "frontend"},
	},
	{
		Name:     "santé",
		Aliases:  []string{"santé", "health", "médical", "medical", "healthcare"},
		Keywords: []string{"médecin", "infirmier", "patient", "clinique", "soins", "pharmacien"},
	},
	{
		Name:     "finance",
		Aliases:  []string{"finance", "banque", "banking", "assurance", "insurance", "fintech"},
		Keywords: []string{"comptabilité", "audit", "trésorerie", "crédit", "analyste", "gestion"},
	},
	{
		Name:     "marketing",
		Aliases:  []string{"marketing", "communication", "publicité", "advertising", "média", "media"},
		Keywords: []string{"seo", "contenu", "campagne", "community", "brand", "acquisition"},
	},
	{
		Name:     "éducation",
		Aliases:  []string{"éducation", "education", "formation", "enseignement"},
		Keywords: []string{"professeur", "enseignant", "formateur", "pédagogie", "cours", "élève"},
	},
	{
		Name:     "commerce",
		Aliases:  []string{"commerce", "retail", "vente", "distribution", "e-commerce"},
		Keywords: []string{"vente", "négociation", "client", "prospection", "magasin", "merchandising"},
	},
	{
		Name:     "juridique",
		Aliases:  []string{"juridique", "legal", "droit", "law"},
		Keywords: []string{"juriste", "avocat", "contrat", "contentieux", "conformité", "rgpd"},
	},
	{
		Name:     "construction",
		Aliases:  []string{"btp", "construction", "immobilier", "real estate"},
		Keywords: []string{"chantier", "travaux", "génie civil", "architecte", "maçon", "promoteur"},
	},
	{
		Name:     "hôtellerie-restauration",
		Aliases:  []string{"restauration", "hôtellerie", "hospitality", "tourisme"},
		Keywords: []string{"cuisine", "chef", "serveur", "accueil", "réception", "hôtel"},
	},
}

var franceCities = toSet([]string{
	"paris", "lyon", "marseille", "toulouse", "bordeaux", "lille",
	"nantes", "strasbourg", "nice", "rennes", "montpellier", "grenoble",
	"dijon", "angers", "reims", "toulon",
})

var europeCountries = toSet([]string{
	"france", "belgique", "belgium", "suisse", "switzerland", "luxembourg",
	"espagne", "spain", "allemagne", "germany", "italie", "italy",
	"portugal", "pays-bas", "netherlands", "royaume-uni", "united kingdom",
	"irlande", "ireland",
})

var experienceLevels = map[string]int{
	"débutant":      1,
	"junior":        2,
	"intermédiaire": 3,
	"senior":        4,
	"expert":        5,
	"lead":          6,
	"manager":       7,
}

// averageSalaries gives the expected annual salary (EUR) per experience
// level, used by the salary scorer.
var averageSalaries = map[string]int{
	"débutant":      32000,
	"junior":        38000,
	"intermédiaire": 45000,
	"senior":        55000,
	"expert":        65000,
	"lead":          70000,
	"manager":       75000,
}

func toSet(terms []string) map[string]bool {
	set := make(map[string]bool, len(terms))
	for _, t := range terms {
		set[t] = true
	}
	return set
}
