package services

import (
	"errors"

	"github.com/epeers/fundsdash/internal/models"
)

var (
	ErrNoPerformanceData      = errors.New("no performance data for fund")
	ErrPerformanceUnavailable = errors.New("performance table unavailable")
)

// PerformanceService answers return-series questions against the performance table
type PerformanceService struct {
	table *models.PerformanceTable
}

// NewPerformanceService creates a PerformanceService; a nil table means the
// performance feature is unavailable.
func NewPerformanceService(table *models.PerformanceTable) *PerformanceService {
	return &PerformanceService{table: table}
}

// Available reports whether a performance table was loaded
func (s *PerformanceService) Available() bool {
	return s.table != nil
}

// Periods returns the return periods present in the table, in canonical order.
func (s *PerformanceService) Periods() []string {
	if s.table == nil {
		return []string{}
	}
	return append([]string(nil), s.table.Periods...)
}

// Lookup returns the first record whose fund name equals fund exactly.
func (s *PerformanceService) Lookup(fund string) (*models.PerformanceRecord, error) {
	if s.table == nil {
		return nil, ErrPerformanceUnavailable
	}
	for i := range s.table.Records {
		if s.table.Records[i].FundName == fund {
			return &s.table.Records[i], nil
		}
	}
	return nil, ErrNoPerformanceData
}

// FundPerformance builds the single-fund view for a selection.
// A fund absent from the table yields Available=false rather than an empty record.
func (s *PerformanceService) FundPerformance(sel models.PerformanceSelection) models.FundPerformanceResponse {
	period := sel.Period
	if period == "" {
		period = models.DefaultPerformancePeriod
	}
	resp := models.FundPerformanceResponse{
		Fund:           sel.Fund,
		SelectedPeriod: period,
		Periods:        s.Periods(),
	}
	rec, err := s.Lookup(sel.Fund)
	if err != nil {
		return resp
	}
	resp.Available = true
	resp.Record = rec
	if pr, ok := rec.Return(period); ok {
		resp.SelectedValue = pr.Value
	}
	return resp
}

// DefaultComparisonPeriod returns the first preferred comparison period present
// in the table, or the last preference when none is.
func (s *PerformanceService) DefaultComparisonPeriod() string {
	if s.table != nil {
		for _, p := range models.ComparisonPeriodPreference {
			if s.table.HasPeriod(p) {
				return p
			}
		}
	}
	return models.ComparisonPeriodPreference[len(models.ComparisonPeriodPreference)-1]
}

// BestWorst finds the funds with the highest and lowest valid return for period.
// Funds without a record or a numeric value are skipped; ties keep the first
// fund encountered. Both results are nil when no fund qualifies.
func (s *PerformanceService) BestWorst(funds []string, period string) (best, worst *models.RankedFund) {
	for _, fund := range funds {
		rec, err := s.Lookup(fund)
		if err != nil {
			continue
		}
		pr, ok := rec.Return(period)
		if !ok || pr.Value == nil {
			continue
		}
		v := *pr.Value
		if best == nil || v > best.Value {
			best = &models.RankedFund{FundName: fund, Value: v}
		}
		if worst == nil || v < worst.Value {
			worst = &models.RankedFund{FundName: fund, Value: v}
		}
	}
	return best, worst
}
