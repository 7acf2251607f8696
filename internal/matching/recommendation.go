package matching

// RecommendationUnavailable is the sentinel recommendation when the
// computation itself degraded; callers should treat it like any other
// zero score.
const RecommendationUnavailable = "Impossible de calculer le matching"

// recommendationTier maps a score threshold to its label. Thresholds are
// scanned in descending order; the first one at or below the score wins.
type recommendationTier struct {
	MinScore int
	Label    string
}

var recommendationTiers = []recommendationTier{
	{MinScore: 90, Label: "Match parfait 🎯"},
	{MinScore: 80, Label: "Excellent match ⭐"},
	{MinScore: 70, Label: "Bon match 👍"},
	{MinScore: 60, Label: "Match correct ✅"},
	{MinScore: 50, Label: "Match moyen ⚖️"},
	{MinScore: 40, Label: "Match faible ⚠️"},
	{MinScore: 0, Label: "Match très faible ❌"},
}

// Recommendation returns the human-readable tier label for a score.
func Recommendation(score int) string {
	for _, tier := range recommendationTiers {
		if score >= tier.MinScore {
			return tier.Label
		}
	}
	return recommendationTiers[len(recommendationTiers)-1].Label
}
