package services_test

import (
	"context"
	"encoding/csv"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/epeers/fundsdash/internal/models"
	"github.com/epeers/fundsdash/internal/repository"
	"github.com/epeers/fundsdash/internal/services"
)

type fakeFunds struct {
	loaded *repository.LoadedFunds
	err    error
	calls  atomic.Int32
}

func (f *fakeFunds) LoadFunds(ctx context.Context) (*repository.LoadedFunds, error) {
	f.calls.Add(1)
	return f.loaded, f.err
}

type fakePerformance struct {
	table *models.PerformanceTable
	err   error
}

func (f *fakePerformance) LoadPerformance(ctx context.Context) (*models.PerformanceTable, error) {
	return f.table, f.err
}

func loadedFunds(t *testing.T, text string) *repository.LoadedFunds {
	t.Helper()
	records, err := csv.NewReader(strings.NewReader(text)).ReadAll()
	require.NoError(t, err)
	return &repository.LoadedFunds{Table: models.NewTable(records[0], records[1:]), Source: "funds_clean.csv"}
}

func codes(ws []models.Warning) []models.WarningCode {
	out := []models.WarningCode{}
	for _, w := range ws {
		out = append(out, w.Code)
	}
	return out
}

func TestDatasetService_NotLoadedBeforeRefresh(t *testing.T) {
	svc := services.NewDatasetService(&fakeFunds{}, nil)
	_, err := svc.Current()
	assert.ErrorIs(t, err, services.ErrNotLoaded)
}

func TestDatasetService_RefreshBuildsSnapshot(t *testing.T) {
	funds := &fakeFunds{loaded: loadedFunds(t, sampleFunds)}
	perf := &fakePerformance{table: performanceTable(nil, nil)}
	svc := services.NewDatasetService(funds, perf)

	require.NoError(t, svc.Refresh(context.Background()))
	ds, err := svc.Current()
	require.NoError(t, err)

	assert.Equal(t, "funds_clean.csv", ds.Source)
	assert.Equal(t, 10.25, ds.NAVMin)
	assert.Equal(t, 120.5, ds.NAVMax)
	assert.True(t, ds.Columns.HasRiskLevel())
	assert.Equal(t, models.RiskVeryLow, ds.RiskLevel(0))
	assert.NotNil(t, ds.Performance)
	assert.Empty(t, ds.Warnings)
}

func TestDatasetService_UnchangedSourcesKeepSnapshot(t *testing.T) {
	funds := &fakeFunds{loaded: loadedFunds(t, sampleFunds)}
	svc := services.NewDatasetService(funds, &fakePerformance{table: performanceTable(nil, nil)})

	require.NoError(t, svc.Refresh(context.Background()))
	first, _ := svc.Current()
	require.NoError(t, svc.Refresh(context.Background()))
	second, _ := svc.Current()

	assert.Same(t, first, second)
	assert.Equal(t, int32(2), funds.calls.Load())
}

func TestDatasetService_DegradedWarnings(t *testing.T) {
	loaded := loadedFunds(t, "Fund Name,NAV\nA,1\n")
	loaded.Warnings = []models.Warning{{Code: models.WarnPrimaryFallback, Message: "fallback"}}
	svc := services.NewDatasetService(&fakeFunds{loaded: loaded}, &fakePerformance{err: errors.New("missing file")})

	require.NoError(t, svc.Refresh(context.Background()))
	ds, err := svc.Current()
	require.NoError(t, err)

	assert.Nil(t, ds.Performance)
	assert.ElementsMatch(t, []models.WarningCode{
		models.WarnPrimaryFallback,
		models.WarnPerformanceUnavailable,
		models.WarnRiskMissing,
		models.WarnCategoryMissing,
		models.WarnCompanyMissing,
	}, codes(ds.Warnings))
	assert.False(t, ds.Columns.HasRiskLevel())
	assert.Equal(t, -1, ds.Table.Index(models.RiskLevelColumn))
}

func TestDatasetService_FatalErrors(t *testing.T) {
	cases := map[string]struct {
		funds *fakeFunds
		want  error
	}{
		"no table":     {&fakeFunds{err: repository.ErrNoTable}, repository.ErrNoTable},
		"no fund name": {&fakeFunds{loaded: loadedFunds(t, "NAV,Category\n1,Equity\n")}, services.ErrNoFundNameColumn},
		"no nav":       {&fakeFunds{loaded: loadedFunds(t, "Fund Name,Category\nA,Equity\n")}, services.ErrNoNAVColumn},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			svc := services.NewDatasetService(tc.funds, nil)
			assert.ErrorIs(t, svc.Refresh(context.Background()), tc.want)

			ds, err := svc.Current()
			assert.Nil(t, ds)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestDatasetService_RecoversAfterFailure(t *testing.T) {
	funds := &fakeFunds{err: repository.ErrNoTable}
	svc := services.NewDatasetService(funds, nil)
	require.Error(t, svc.Refresh(context.Background()))

	funds.err = nil
	funds.loaded = loadedFunds(t, sampleFunds)
	require.NoError(t, svc.Refresh(context.Background()))

	ds, err := svc.Current()
	require.NoError(t, err)
	assert.Equal(t, 6, ds.Table.Len())
	assert.Contains(t, codes(ds.Warnings), models.WarnPerformanceUnavailable)
}

func TestDatasetService_Job(t *testing.T) {
	svc := services.NewDatasetService(&fakeFunds{loaded: loadedFunds(t, sampleFunds)}, nil)
	assert.Equal(t, "dataset-refresh", svc.Name())
	assert.NoError(t, svc.Run(context.Background()))
}

func TestDatasetService_ReloadBypassesFileCache(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, repository.PrimaryFileName)
	require.NoError(t, os.WriteFile(path, []byte("Fund Name,NAV\nAlpha,10\n"), 0o644))
	info, err := os.Stat(path)
	require.NoError(t, err)

	repo := repository.NewFileRepository(dir)
	svc := services.NewDatasetService(repo, repo)
	require.NoError(t, svc.Refresh(context.Background()))

	// same size and modification time, so the cached table still looks current
	require.NoError(t, os.WriteFile(path, []byte("Fund Name,NAV\nOmega,10\n"), 0o644))
	require.NoError(t, os.Chtimes(path, info.ModTime(), info.ModTime()))

	require.NoError(t, svc.Refresh(context.Background()))
	ds, err := svc.Current()
	require.NoError(t, err)
	assert.Equal(t, "Alpha", ds.FundName(0))

	require.NoError(t, svc.Reload(context.Background()))
	ds, err = svc.Current()
	require.NoError(t, err)
	assert.Equal(t, "Omega", ds.FundName(0))
}
