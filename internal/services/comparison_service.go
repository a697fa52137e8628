package services

import (
	"context"
	"time"

	"github.com/epeers/fundsdash/internal/models"
	"github.com/epeers/fundsdash/internal/util"
)

// ComparisonService builds the multi-fund comparison page
type ComparisonService struct{}

// NewComparisonService creates a new ComparisonService
func NewComparisonService() *ComparisonService {
	return &ComparisonService{}
}

// Candidates returns the sorted, unique fund names of the session's filtered view.
func (s *ComparisonService) Candidates(ds *models.Dataset, state *models.SessionState) []string {
	return uniqueSorted(ds, ApplyFilters(ds, state.Filters), ds.Columns.FundName)
}

// Select stores the comparison selection. Funds outside the filtered view are
// dropped; the period is kept as given and resolved when comparing.
func (s *ComparisonService) Select(ds *models.Dataset, state *models.SessionState, req models.UpdateComparisonRequest) {
	state.Comparison = models.ComparisonSelection{
		Funds:  selectable(s.Candidates(ds, state), req.Funds),
		Period: req.Period,
	}
}

// selectable keeps the requested funds that are candidates, in request order, once each.
func selectable(candidates, requested []string) []string {
	allowed := make(map[string]bool, len(candidates))
	for _, c := range candidates {
		allowed[c] = true
	}
	out := []string{}
	seen := map[string]bool{}
	for _, f := range requested {
		if allowed[f] && !seen[f] {
			out = append(out, f)
			seen[f] = true
		}
	}
	return out
}

// Compare ranks the selected funds by the comparison period and builds the chart
// series and detailed table. Selected funds that left the filtered view are ignored.
func (s *ComparisonService) Compare(ctx context.Context, ds *models.Dataset, state *models.SessionState) models.ComparisonResponse {
	defer TrackTime("ComparisonService.Compare", time.Now())
	ForwardWarnings(ctx, ds.Warnings)

	view := ApplyFilters(ds, state.Filters)
	funds := selectable(uniqueSorted(ds, view, ds.Columns.FundName), state.Comparison.Funds)

	perf := NewPerformanceService(ds.Performance)
	period := state.Comparison.Period
	if period == "" {
		period = perf.DefaultComparisonPeriod()
	}
	resp := models.ComparisonResponse{
		Funds:              funds,
		Period:             period,
		Periods:            perf.Periods(),
		Series:             []models.ChartSeries{},
		Details:            []models.ComparisonRow{},
		MissingPerformance: []string{},
	}
	if !perf.Available() {
		return resp
	}
	resp.Best, resp.Worst = perf.BestWorst(funds, period)

	firstRow := make(map[string]int, len(funds))
	for _, r := range view {
		name := ds.FundName(r)
		if _, ok := firstRow[name]; !ok {
			firstRow[name] = r
		}
	}

	for _, fund := range funds {
		rec, err := perf.Lookup(fund)
		if err != nil {
			resp.MissingPerformance = append(resp.MissingPerformance, fund)
			continue
		}
		if series, ok := chartSeries(rec, resp.Periods); ok {
			resp.Series = append(resp.Series, series)
		}
		resp.Details = append(resp.Details, detailRow(ds, firstRow[fund], rec, resp.Periods))
	}
	return resp
}

// chartSeries lays out a fund's returns across periods; a fund with no numeric
// value at all has no line.
func chartSeries(rec *models.PerformanceRecord, periods []string) (models.ChartSeries, bool) {
	series := models.ChartSeries{FundName: rec.FundName, Values: make([]*float64, len(periods))}
	found := false
	for i, p := range periods {
		if pr, ok := rec.Return(p); ok && pr.Value != nil {
			series.Values[i] = pr.Value
			found = true
		}
	}
	return series, found
}

func detailRow(ds *models.Dataset, row int, rec *models.PerformanceRecord, periods []string) models.ComparisonRow {
	out := models.ComparisonRow{
		FundName:  rec.FundName,
		NAV:       util.NotAvailable,
		Category:  util.NotAvailable,
		RiskLevel: util.NotAvailable,
		Returns:   make([]models.FormattedReturn, len(periods)),
	}
	if nav, ok := ds.NAV(row); ok {
		out.NAV = util.FormatRupees(nav)
	}
	if ds.Columns.HasCategory() {
		if c := ds.Table.Text(row, ds.Columns.Category); c != "" {
			out.Category = c
		}
	}
	if tier := ds.RiskLevel(row); tier != "" {
		out.RiskLevel = string(tier)
	}
	for i, p := range periods {
		fr := models.FormattedReturn{Period: p, Display: util.NotAvailable}
		if pr, ok := rec.Return(p); ok {
			fr.Display = util.FormatPercent(pr.Value)
		}
		out.Returns[i] = fr
	}
	return out
}
