package services

import (
	"strings"

	"github.com/epeers/fundsdash/internal/models"
)

// ratingTiers maps normalized ratings to tiers. Fund ratings carry an "(f)"
// suffix and classify the same as the bare grade.
var ratingTiers = map[string]models.RiskTier{}

func init() {
	grades := map[models.RiskTier][]string{
		models.RiskVeryLow: {"aaa", "aa+"},
		models.RiskLow:     {"aa", "aa-"},
		models.RiskMedium:  {"a+", "a"},
		models.RiskHigh:    {"a-", "bbb", "bbb+", "bbb-", "bb", "b"},
	}
	for tier, gs := range grades {
		for _, g := range gs {
			ratingTiers[g] = tier
			ratingTiers[g+"(f)"] = tier
		}
	}
}

// ClassifyRisk converts a credit rating such as "AA+(f)" into a risk tier.
// Missing or unrecognized ratings are High.
func ClassifyRisk(rating string) models.RiskTier {
	if tier, ok := ratingTiers[strings.ToLower(strings.TrimSpace(rating))]; ok {
		return tier
	}
	return models.RiskHigh
}
