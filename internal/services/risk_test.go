package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/epeers/fundsdash/internal/models"
	"github.com/epeers/fundsdash/internal/services"
)

func TestClassifyRisk(t *testing.T) {
	cases := map[string]models.RiskTier{
		"AAA":       models.RiskVeryLow,
		"AA+(f)":    models.RiskVeryLow,
		" aa+ ":     models.RiskVeryLow,
		"AA":        models.RiskLow,
		"AA-(f)":    models.RiskLow,
		"A+":        models.RiskMedium,
		"a(f)":      models.RiskMedium,
		"A-":        models.RiskHigh,
		"BBB+(f)":   models.RiskHigh,
		"BB":        models.RiskHigh,
		"B(f)":      models.RiskHigh,
		"":          models.RiskHigh,
		"ccc":       models.RiskHigh,
		"not rated": models.RiskHigh,
	}
	for in, want := range cases {
		assert.Equal(t, want, services.ClassifyRisk(in), "rating %q", in)
	}
}

func TestClassifyRisk_Total(t *testing.T) {
	for _, in := range []string{"AAA (f)", "AA+ (f)", "\t", "A+(F)", "💰"} {
		tier := services.ClassifyRisk(in)
		assert.Less(t, tier.Rank(), len(models.RiskOrder), "rating %q mapped outside the tier order", in)
	}
}
