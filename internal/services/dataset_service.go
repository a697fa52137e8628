package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/floats"

	"github.com/epeers/fundsdash/internal/models"
	"github.com/epeers/fundsdash/internal/repository"
)

// FundSource loads the primary fund table
type FundSource interface {
	LoadFunds(ctx context.Context) (*repository.LoadedFunds, error)
}

// PerformanceSource loads the performance summary table
type PerformanceSource interface {
	LoadPerformance(ctx context.Context) (*models.PerformanceTable, error)
}

// invalidator is implemented by sources that cache what they load
type invalidator interface {
	Invalidate()
}

// ErrNotLoaded is returned before the first successful refresh
var ErrNotLoaded = errors.New("dataset not loaded")

// DatasetService owns the current Dataset snapshot. Snapshots are immutable;
// a refresh swaps in a new one only when one of the source tables changed.
type DatasetService struct {
	funds       FundSource
	performance PerformanceSource

	mu        sync.RWMutex
	current   *models.Dataset
	err       error
	lastFunds *models.Table
	lastPerf  *models.PerformanceTable
}

// NewDatasetService creates a DatasetService. performance may be nil, in which
// case the performance features are reported unavailable.
func NewDatasetService(funds FundSource, performance PerformanceSource) *DatasetService {
	return &DatasetService{
		funds:       funds,
		performance: performance,
		err:         ErrNotLoaded,
	}
}

// Current returns the active snapshot, or the fatal error from the last refresh.
func (s *DatasetService) Current() (*models.Dataset, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.err != nil {
		return nil, s.err
	}
	return s.current, nil
}

// Name identifies the refresh job to the scheduler
func (s *DatasetService) Name() string {
	return "dataset-refresh"
}

// Run refreshes the dataset; it lets the service be scheduled as a job.
func (s *DatasetService) Run(ctx context.Context) error {
	return s.Refresh(ctx)
}

// Reload drops any source caches and rebuilds the snapshot from freshly read tables.
func (s *DatasetService) Reload(ctx context.Context) error {
	for _, src := range []any{s.funds, s.performance} {
		if inv, ok := src.(invalidator); ok {
			inv.Invalidate()
		}
	}
	s.mu.Lock()
	s.lastFunds, s.lastPerf = nil, nil
	s.mu.Unlock()

	return s.Refresh(ctx)
}

// Refresh loads both tables concurrently and rebuilds the snapshot if either changed.
// A fatal error replaces the snapshot so callers see the diagnostic instead of stale data.
func (s *DatasetService) Refresh(ctx context.Context) error {
	defer TrackTime("DatasetService.Refresh", time.Now())

	var (
		loaded  *repository.LoadedFunds
		perf    *models.PerformanceTable
		perfErr error
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		l, err := s.funds.LoadFunds(gctx)
		if err != nil {
			return err
		}
		loaded = l
		return nil
	})
	if s.performance != nil {
		g.Go(func() error {
			// a missing performance table only degrades the dashboard
			perf, perfErr = s.performance.LoadPerformance(gctx)
			return nil
		})
	} else {
		perfErr = ErrPerformanceUnavailable
	}
	if err := g.Wait(); err != nil {
		s.fail(err)
		return err
	}

	s.mu.RLock()
	unchanged := s.current != nil && s.lastFunds == loaded.Table && s.lastPerf == perf
	s.mu.RUnlock()
	if unchanged {
		return nil
	}

	wctx, wc := NewWarningContext(ctx)
	ForwardWarnings(wctx, loaded.Warnings)
	if perfErr != nil {
		Warnf(wctx, models.WarnPerformanceUnavailable, "Performance data unavailable: %v", perfErr)
	}

	ds, err := BuildDataset(wctx, loaded.Table, loaded.Source, perf)
	if err != nil {
		s.fail(err)
		return err
	}
	ds.Warnings = wc.GetWarnings()

	s.mu.Lock()
	s.current, s.err = ds, nil
	s.lastFunds, s.lastPerf = loaded.Table, perf
	s.mu.Unlock()

	log.Infof("Dataset ready: %d funds from %s (%d warnings)", ds.Table.Len(), ds.Source, len(ds.Warnings))
	return nil
}

func (s *DatasetService) fail(err error) {
	log.Errorf("Failed to load dataset: %v", err)
	s.mu.Lock()
	s.current, s.err = nil, err
	s.lastFunds, s.lastPerf = nil, nil
	s.mu.Unlock()
}

// BuildDataset resolves the columns of table, derives the risk level column and
// computes the NAV range. Missing optional columns are reported as warnings on ctx.
// perf may be nil.
func BuildDataset(ctx context.Context, table *models.Table, source string, perf *models.PerformanceTable) (*models.Dataset, error) {
	if table == nil {
		return nil, repository.ErrNoTable
	}
	cols := ResolveColumns(table.Headers())
	if err := ValidateColumns(cols); err != nil {
		return nil, fmt.Errorf("failed to resolve columns of %s: %w", source, err)
	}

	if cols.Risk >= 0 {
		levels := make([]string, table.Len())
		for r := range levels {
			levels[r] = string(ClassifyRisk(table.Text(r, cols.Risk)))
		}
		table = table.WithColumn(models.RiskLevelColumn, levels)
		// the derived column is appended, or replaces a source column of the same name
		cols = ResolveColumns(table.Headers())
		cols.RiskLevel = table.Index(models.RiskLevelColumn)
	} else {
		Warnf(ctx, models.WarnRiskMissing, "No risk rating column in %s; risk filter and statistics are disabled", source)
	}
	if !cols.HasCategory() {
		Warnf(ctx, models.WarnCategoryMissing, "No category column in %s; category filter is disabled", source)
	}
	if !cols.HasCompany() {
		Warnf(ctx, models.WarnCompanyMissing, "No company column in %s; company filter is disabled", source)
	}

	ds := &models.Dataset{
		Table:       table,
		Columns:     cols,
		Performance: perf,
		Source:      source,
		LoadedAt:    time.Now(),
	}
	if navs := navValues(ds, ds.Table.AllRows()); len(navs) > 0 {
		ds.NAVMin = floats.Min(navs)
		ds.NAVMax = floats.Max(navs)
	}
	return ds, nil
}
