package services_test

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/epeers/fundsdash/internal/models"
	"github.com/epeers/fundsdash/internal/services"
)

func TestSummarize(t *testing.T) {
	ds := newDataset(t, sampleFunds, nil)
	m := services.Summarize(ds, ds.Table.AllRows())

	assert.Equal(t, 6, m.Count)
	require.NotNil(t, m.AvgNAV)
	assert.Equal(t, 59.2, *m.AvgNAV)
	assert.Equal(t, 120.5, *m.MaxNAV)
	assert.Equal(t, 10.25, *m.MinNAV)
}

func TestSummarize_EmptyView(t *testing.T) {
	ds := newDataset(t, sampleFunds, nil)
	m := services.Summarize(ds, models.View{})

	assert.Equal(t, 0, m.Count)
	assert.Nil(t, m.AvgNAV)
	assert.Nil(t, m.MaxNAV)
	assert.Nil(t, m.MinNAV)
}

func TestSummarize_RoundsToTwoPlaces(t *testing.T) {
	ds := newDataset(t, "Fund Name,NAV\nA,1\nB,1\nC,2\n", nil)
	m := services.Summarize(ds, ds.Table.AllRows())
	assert.Equal(t, 1.33, *m.AvgNAV)
}

func TestSummarize_NonFiniteCellDoesNotPanic(t *testing.T) {
	table := &models.Table{
		Columns: []models.Column{{Name: "Fund Name", Kind: models.KindString}, {Name: "NAV", Kind: models.KindNumber}},
		Rows: []models.Row{
			{{Text: "A"}, {Text: "x", Num: math.Inf(1)}},
			{{Text: "B"}, {Text: "10", Num: 10}},
		},
	}
	ds, err := services.BuildDataset(context.Background(), table, "test.csv", nil)
	require.NoError(t, err)

	var m models.SummaryMetrics
	require.NotPanics(t, func() { m = services.Summarize(ds, ds.Table.AllRows()) })
	require.NotNil(t, m.MaxNAV)
	assert.True(t, math.IsInf(*m.MaxNAV, 1))
	assert.Equal(t, 10.0, *m.MinNAV)
}

func TestRiskStatistics(t *testing.T) {
	ds := newDataset(t, sampleFunds, nil)
	stats := services.RiskStatistics(ds, ds.Table.AllRows())

	require.Len(t, stats, 4)
	// count descending, equal counts in tier order
	assert.Equal(t, models.RiskVeryLow, stats[0].RiskLevel)
	assert.Equal(t, models.RiskHigh, stats[1].RiskLevel)
	assert.Equal(t, models.RiskLow, stats[2].RiskLevel)
	assert.Equal(t, models.RiskMedium, stats[3].RiskLevel)

	assert.Equal(t, 2, stats[0].Count)
	assert.Equal(t, 110.25, *stats[0].AvgNAV)
	assert.Equal(t, 100.0, *stats[0].MinNAV)
	assert.Equal(t, 120.5, *stats[0].MaxNAV)

	// the fund without a NAV counts but does not move the NAV figures
	assert.Equal(t, 2, stats[1].Count)
	assert.Equal(t, 10.25, *stats[1].AvgNAV)
}

func TestRiskStatistics_CountsSumToViewSize(t *testing.T) {
	ds := newDataset(t, sampleFunds, nil)
	view := ds.Table.AllRows()

	total := 0
	for _, st := range services.RiskStatistics(ds, view) {
		total += st.Count
	}
	assert.Equal(t, len(view), total)
}

func TestRiskStatistics_NoRiskColumn(t *testing.T) {
	ds := newDataset(t, "Fund Name,NAV\nA,1\n", nil)
	assert.Empty(t, services.RiskStatistics(ds, ds.Table.AllRows()))
}

func TestTopByNAV(t *testing.T) {
	ds := newDataset(t, sampleFunds, nil)

	top := services.TopByNAV(ds, ds.Table.AllRows(), 3)
	assert.Equal(t, []models.TopFund{
		{FundName: "Alpha Equity Fund", NAV: 120.5},
		{FundName: "Gamma Money Market", NAV: 100},
		{FundName: "Delta Balanced", NAV: 55},
	}, top)

	all := services.TopByNAV(ds, ds.Table.AllRows(), 10)
	require.Len(t, all, 5)
	assert.Equal(t, "Beta Income Fund", all[3].FundName)
	assert.Equal(t, "Zeta Income", all[4].FundName)
}

func TestNAVDistribution(t *testing.T) {
	ds := newDataset(t, sampleFunds, nil)
	assert.Equal(t, []models.DistributionBucket{
		{Label: "10.25", Count: 2},
		{Label: "55", Count: 1},
		{Label: "100", Count: 1},
		{Label: "120.5", Count: 1},
	}, services.NAVDistribution(ds, ds.Table.AllRows()))
}

func TestValueCounts(t *testing.T) {
	ds := newDataset(t, sampleFunds, nil)
	assert.Equal(t, []models.DistributionBucket{
		{Label: "Equity", Count: 2},
		{Label: "Income", Count: 2},
		{Label: "Money Market", Count: 1},
		{Label: "Balanced", Count: 1},
	}, services.ValueCounts(ds.Table, ds.Table.AllRows(), ds.Columns.Category))

	assert.Empty(t, services.ValueCounts(ds.Table, ds.Table.AllRows(), -1))
}

func TestAverageNAVByRisk(t *testing.T) {
	ds := newDataset(t, sampleFunds, nil)
	assert.Equal(t, []models.AverageBucket{
		{Label: "Very Low", Value: 110.25},
		{Label: "Medium", Value: 55},
		{Label: "High", Value: 10.25},
		{Label: "Low", Value: 10.25},
	}, services.AverageNAVByRisk(ds, ds.Table.AllRows()))
}
