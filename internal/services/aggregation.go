package services

import (
	"math"
	"sort"
	"strconv"

	"github.com/shopspring/decimal"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/epeers/fundsdash/internal/models"
)

const (
	// DefaultTopN is the size of the top-NAV ranking
	DefaultTopN = 10
	// navDistributionLimit caps the NAV value-count chart
	navDistributionLimit = 20
)

// round2 rounds half away from zero to two decimal places.
// Non-finite values are returned unchanged.
func round2(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return v
	}
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}

func ptr(v float64) *float64 { return &v }

// navValues collects the valid NAVs of a view
func navValues(ds *models.Dataset, view models.View) []float64 {
	out := make([]float64, 0, len(view))
	for _, r := range view {
		if nav, ok := ds.NAV(r); ok {
			out = append(out, nav)
		}
	}
	return out
}

// Summarize computes count and average/max/min NAV of a view.
func Summarize(ds *models.Dataset, view models.View) models.SummaryMetrics {
	m := models.SummaryMetrics{Count: len(view)}
	navs := navValues(ds, view)
	if len(navs) == 0 {
		return m
	}
	m.AvgNAV = ptr(round2(stat.Mean(navs, nil)))
	m.MaxNAV = ptr(round2(floats.Max(navs)))
	m.MinNAV = ptr(round2(floats.Min(navs)))
	return m
}

// RiskStatistics groups the view by risk level and summarizes NAV per group.
// Groups are ordered by count descending, ties by risk order. Every row counts
// toward its group; only valid NAVs feed the NAV figures.
func RiskStatistics(ds *models.Dataset, view models.View) []models.RiskStat {
	if !ds.Columns.HasRiskLevel() {
		return []models.RiskStat{}
	}
	counts := map[models.RiskTier]int{}
	navs := map[models.RiskTier][]float64{}
	for _, r := range view {
		tier := ds.RiskLevel(r)
		counts[tier]++
		if nav, ok := ds.NAV(r); ok {
			navs[tier] = append(navs[tier], nav)
		}
	}

	out := make([]models.RiskStat, 0, len(counts))
	for tier, n := range counts {
		st := models.RiskStat{RiskLevel: tier, Count: n}
		if vals := navs[tier]; len(vals) > 0 {
			st.AvgNAV = ptr(round2(stat.Mean(vals, nil)))
			st.MinNAV = ptr(round2(floats.Min(vals)))
			st.MaxNAV = ptr(round2(floats.Max(vals)))
		}
		out = append(out, st)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].RiskLevel.Rank() < out[j].RiskLevel.Rank()
	})
	return out
}

// TopByNAV returns the n rows with the largest NAV, ties kept in view order.
// Rows without a valid NAV are skipped.
func TopByNAV(ds *models.Dataset, view models.View, n int) []models.TopFund {
	funds := make([]models.TopFund, 0, len(view))
	for _, r := range view {
		if nav, ok := ds.NAV(r); ok {
			funds = append(funds, models.TopFund{FundName: ds.FundName(r), NAV: nav})
		}
	}
	sort.SliceStable(funds, func(i, j int) bool { return funds[i].NAV > funds[j].NAV })
	if n >= 0 && len(funds) > n {
		funds = funds[:n]
	}
	return funds
}

// NAVDistribution counts rows per distinct NAV, ascending by NAV, first 20 values.
func NAVDistribution(ds *models.Dataset, view models.View) []models.DistributionBucket {
	counts := map[float64]int{}
	for _, nav := range navValues(ds, view) {
		counts[nav]++
	}
	keys := make([]float64, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Float64s(keys)
	if len(keys) > navDistributionLimit {
		keys = keys[:navDistributionLimit]
	}
	out := make([]models.DistributionBucket, 0, len(keys))
	for _, k := range keys {
		out = append(out, models.DistributionBucket{Label: strconv.FormatFloat(k, 'f', -1, 64), Count: counts[k]})
	}
	return out
}

// ValueCounts counts non-null values of a column, by count descending, ties in
// first-seen order.
func ValueCounts(t *models.Table, view models.View, col int) []models.DistributionBucket {
	out := []models.DistributionBucket{}
	if col < 0 {
		return out
	}
	index := map[string]int{}
	for _, r := range view {
		v := t.Cell(r, col)
		if v.Null {
			continue
		}
		if i, ok := index[v.Text]; ok {
			out[i].Count++
			continue
		}
		index[v.Text] = len(out)
		out = append(out, models.DistributionBucket{Label: v.Text, Count: 1})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Count > out[j].Count })
	return out
}

// AverageNAVByRisk averages NAV per risk level, highest average first.
func AverageNAVByRisk(ds *models.Dataset, view models.View) []models.AverageBucket {
	out := []models.AverageBucket{}
	for _, st := range RiskStatistics(ds, view) {
		if st.AvgNAV == nil {
			continue
		}
		out = append(out, models.AverageBucket{Label: string(st.RiskLevel), Value: *st.AvgNAV})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Value > out[j].Value })
	return out
}
