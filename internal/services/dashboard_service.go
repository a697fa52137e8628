package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/epeers/fundsdash/internal/models"
)

var (
	ErrInvalidNAVRange  = errors.New("nav_min must not exceed nav_max")
	ErrUnknownColumn    = errors.New("unknown sort column")
	ErrUnknownRiskLevel = errors.New("unknown risk level")
	ErrInvalidPage      = errors.New("page must be at least 1")
)

// DashboardService runs one dashboard interaction: the view is recomputed from the
// full dataset every time, and the session state passed in is updated in place.
type DashboardService struct {
	pageSize int
	topN     int
}

// NewDashboardService creates a DashboardService
func NewDashboardService(pageSize, topN int) *DashboardService {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	if topN <= 0 {
		topN = DefaultTopN
	}
	return &DashboardService{pageSize: pageSize, topN: topN}
}

// PageSize returns the configured page size
func (s *DashboardService) PageSize() int {
	return s.pageSize
}

// View filters and sorts the dataset for the session
func (s *DashboardService) View(ds *models.Dataset, state *models.SessionState) models.View {
	return SortView(ds.Table, ApplyFilters(ds, state.Filters), state.Sort)
}

// Page renders the current page. The stored page is clamped into the valid range
// before slicing, so the caller should save the state afterwards.
func (s *DashboardService) Page(ctx context.Context, ds *models.Dataset, state *models.SessionState) models.FundPageResponse {
	defer TrackTime("DashboardService.Page", time.Now())
	ForwardWarnings(ctx, ds.Warnings)

	view := s.View(ds, state)
	p := Paginate(len(view), state.Filters.Page, s.pageSize)
	state.Filters.Page = p.Page

	display := DisplayColumns(ds.Table)
	resp := models.FundPageResponse{
		Columns:    make([]models.Column, len(display)),
		Rows:       [][]any{},
		Pagination: p,
		Metrics:    Summarize(ds, view),
		Sort:       state.Sort,
	}
	for i, c := range display {
		resp.Columns[i] = ds.Table.Columns[c]
	}
	for _, r := range PageSlice(view, p) {
		row := make([]any, len(display))
		for i, c := range display {
			row[i] = ds.Table.Cell(r, c).Interface(ds.Table.Columns[c].Kind)
		}
		resp.Rows = append(resp.Rows, row)
	}
	return resp
}

// Export returns every row of the filtered, sorted view
func (s *DashboardService) Export(ds *models.Dataset, state *models.SessionState) models.View {
	return s.View(ds, state)
}

// Options returns the filter widget choices for the session
func (s *DashboardService) Options(ctx context.Context, ds *models.Dataset, state *models.SessionState) models.FilterOptionsResponse {
	ForwardWarnings(ctx, ds.Warnings)
	return FilterOptions(ds, state.Filters)
}

// Analytics summarizes the filtered view for the analytics and by-risk pages
func (s *DashboardService) Analytics(ctx context.Context, ds *models.Dataset, state *models.SessionState) models.AnalyticsResponse {
	defer TrackTime("DashboardService.Analytics", time.Now())
	ForwardWarnings(ctx, ds.Warnings)

	view := ApplyFilters(ds, state.Filters)
	return models.AnalyticsResponse{
		Metrics:              Summarize(ds, view),
		NAVDistribution:      NAVDistribution(ds, view),
		CategoryDistribution: ValueCounts(ds.Table, view, ds.Columns.Category),
		RiskDistribution:     ValueCounts(ds.Table, view, ds.Columns.RiskLevel),
		AvgNAVByRisk:         AverageNAVByRisk(ds, view),
		TopFunds:             TopByNAV(ds, view, s.topN),
		RiskStats:            RiskStatistics(ds, view),
	}
}

// RiskStats returns the per-tier statistics of the filtered view
func (s *DashboardService) RiskStats(ds *models.Dataset, state *models.SessionState) []models.RiskStat {
	return RiskStatistics(ds, ApplyFilters(ds, state.Filters))
}

// TopFunds returns the largest-NAV funds of the filtered view
func (s *DashboardService) TopFunds(ds *models.Dataset, state *models.SessionState) []models.TopFund {
	return TopByNAV(ds, ApplyFilters(ds, state.Filters), s.topN)
}

// UpdateFilters applies a partial filter update. The state is left untouched when
// the update is invalid.
func (s *DashboardService) UpdateFilters(state *models.SessionState, req models.UpdateFiltersRequest) error {
	next := state.Filters
	if req.Search != nil {
		next.Search = *req.Search
	}
	if req.Categories != nil {
		next.Categories = req.Categories
	}
	if req.Companies != nil {
		next.Companies = req.Companies
	}
	if req.RiskLevels != nil {
		for _, t := range req.RiskLevels {
			if t.Rank() == len(models.RiskOrder) {
				return fmt.Errorf("%w: %q", ErrUnknownRiskLevel, t)
			}
		}
		next.RiskLevels = req.RiskLevels
	}
	if req.NAVMin != nil {
		next.NAVMin = *req.NAVMin
	}
	if req.NAVMax != nil {
		next.NAVMax = *req.NAVMax
	}
	if next.NAVMin > next.NAVMax {
		return ErrInvalidNAVRange
	}
	if req.ResetPage {
		next.Page = 1
	}
	state.Filters = next
	return nil
}

// Reset restores the default filters for the dataset and returns to page 1.
// Sort order and performance selections are kept.
func (s *DashboardService) Reset(ds *models.Dataset, state *models.SessionState) {
	state.Filters.Reset(ds.NAVMin, ds.NAVMax)
}

// SetSort changes the sort column and direction
func (s *DashboardService) SetSort(ds *models.Dataset, state *models.SessionState, req models.UpdateSortRequest) error {
	if ds.Table.Index(req.Column) < 0 {
		return fmt.Errorf("%w: %q", ErrUnknownColumn, req.Column)
	}
	state.Sort = models.SortState{Column: req.Column, Descending: req.Descending}
	return nil
}

// SetPage jumps to a page; values past the end are clamped on the next render.
func (s *DashboardService) SetPage(state *models.SessionState, page int) error {
	if page < 1 {
		return ErrInvalidPage
	}
	state.Filters.Page = page
	return nil
}

// NextPage advances one page, staying on the last page.
// It reports false when already on the last page.
func (s *DashboardService) NextPage(ds *models.Dataset, state *models.SessionState) bool {
	total := len(ApplyFilters(ds, state.Filters))
	p := Paginate(total, state.Filters.Page, s.pageSize)
	state.Filters.Page = p.Page
	if p.Page >= p.TotalPages {
		return false
	}
	state.Filters.Page++
	return true
}

// PrevPage goes back one page. It reports false when already on the first page.
func (s *DashboardService) PrevPage(ds *models.Dataset, state *models.SessionState) bool {
	total := len(ApplyFilters(ds, state.Filters))
	p := Paginate(total, state.Filters.Page, s.pageSize)
	state.Filters.Page = p.Page
	if p.Page <= 1 {
		return false
	}
	state.Filters.Page--
	return true
}
