package services_test

import (
	"context"
	"encoding/csv"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/epeers/fundsdash/internal/models"
	"github.com/epeers/fundsdash/internal/services"
)

const sampleFunds = `Fund Name,Company,Category,NAV,Risk Rating
Alpha Equity Fund,ABL AMC,Equity,120.5,AA+(f)
Beta Income Fund,HBL AMC,Income,10.25,AA
Gamma Money Market,ABL AMC,Money Market,100,AAA(f)
Delta Balanced,MCB AMC,Balanced,55,A
Epsilon Equity,HBL AMC,Equity,,BBB
Zeta Income,MCB AMC,Income,10.25,
`

// newDataset builds a dataset from CSV text the way the loader would
func newDataset(t *testing.T, text string, perf *models.PerformanceTable) *models.Dataset {
	t.Helper()
	records, err := csv.NewReader(strings.NewReader(text)).ReadAll()
	require.NoError(t, err)
	ds, err := services.BuildDataset(context.Background(), models.NewTable(records[0], records[1:]), "test.csv", perf)
	require.NoError(t, err)
	return ds
}

// names returns the fund names of a view in order
func names(ds *models.Dataset, view models.View) []string {
	out := make([]string, len(view))
	for i, r := range view {
		out[i] = ds.FundName(r)
	}
	return out
}

func ptr(v float64) *float64 { return &v }

// performanceTable builds a table with the given 365 Days / 3 Years values per fund
func performanceTable(rows map[string][2]*float64, order []string) *models.PerformanceTable {
	t := &models.PerformanceTable{Periods: []string{"365 Days", "3 Years"}}
	for _, name := range order {
		v := rows[name]
		t.Records = append(t.Records, models.PerformanceRecord{
			FundName: name,
			Returns: []models.PeriodReturn{
				{Period: "365 Days", Value: v[0]},
				{Period: "3 Years", Value: v[1]},
			},
		})
	}
	return t
}
