package repository

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/epeers/fundsdash/internal/cache"
	"github.com/epeers/fundsdash/internal/models"
)

const (
	// PrimaryFileName is the preferred fund table inside the data directory
	PrimaryFileName = "funds_clean.csv"
	// PerformanceFileName is the performance summary published by the fund association
	PerformanceFileName = "Performance Summary  MUTUAL FUNDS ASSOCIATION OF PAKISTAN.csv"
)

// ErrNoTable is returned when no fund table can be found
var ErrNoTable = errors.New("no fund table found")

// LoadedFunds is a loaded primary table with its origin and any non-fatal issues
type LoadedFunds struct {
	Table    *models.Table
	Source   string
	Warnings []models.Warning
}

// FileRepository loads the fund and performance tables from a data directory
type FileRepository struct {
	dataDir     string
	funds       *cache.FileCache[*models.Table]
	performance *cache.FileCache[*models.PerformanceTable]
}

// NewFileRepository creates a new FileRepository
func NewFileRepository(dataDir string) *FileRepository {
	return &FileRepository{
		dataDir:     dataDir,
		funds:       cache.NewFileCache[*models.Table](),
		performance: cache.NewFileCache[*models.PerformanceTable](),
	}
}

// LoadFunds loads the primary fund table. It prefers funds_clean.csv and falls
// back to the largest other CSV file in the data directory. The returned source is
// the file name that was used.
func (r *FileRepository) LoadFunds(ctx context.Context) (*LoadedFunds, error) {
	var warnings []models.Warning
	preferred := filepath.Join(r.dataDir, PrimaryFileName)
	if _, err := os.Stat(preferred); err == nil {
		t, err := r.funds.Get(preferred, readFunds)
		if err == nil {
			return &LoadedFunds{Table: t, Source: PrimaryFileName}, nil
		}
		log.Warnf("Could not load %s: %v", PrimaryFileName, err)
		warnings = append(warnings, models.Warning{
			Code:    models.WarnPrimaryFallback,
			Message: fmt.Sprintf("Could not load %s: %v", PrimaryFileName, err),
		})
	}

	fallback, err := r.largestCSV()
	if err != nil {
		return nil, err
	}
	t, err := r.funds.Get(fallback, readFunds)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", filepath.Base(fallback), err)
	}
	return &LoadedFunds{Table: t, Source: filepath.Base(fallback), Warnings: warnings}, nil
}

// Invalidate forgets every cached table so the next load reads the files again
func (r *FileRepository) Invalidate() {
	r.funds.Clear()
	r.performance.Clear()
	log.Debug("File caches cleared")
}

// largestCSV finds the biggest CSV file other than the preferred and performance files.
func (r *FileRepository) largestCSV() (string, error) {
	matches, err := filepath.Glob(filepath.Join(r.dataDir, "*.csv"))
	if err != nil {
		return "", fmt.Errorf("failed to list CSV files: %w", err)
	}
	var best string
	var bestSize int64 = -1
	for _, m := range matches {
		base := filepath.Base(m)
		if base == PerformanceFileName || base == PrimaryFileName {
			continue
		}
		info, err := os.Stat(m)
		if err != nil || info.IsDir() {
			continue
		}
		if info.Size() > bestSize {
			best, bestSize = m, info.Size()
		}
	}
	if best == "" {
		return "", ErrNoTable
	}
	return best, nil
}

// LoadPerformance loads the performance summary table
func (r *FileRepository) LoadPerformance(ctx context.Context) (*models.PerformanceTable, error) {
	path := filepath.Join(r.dataDir, PerformanceFileName)
	t, err := r.performance.Get(path, readPerformance)
	if err != nil {
		return nil, fmt.Errorf("failed to load performance data: %w", err)
	}
	return t, nil
}

func readFunds(path string) (*models.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	t, err := ParseFundsCSV(f)
	if err != nil {
		return nil, err
	}
	log.Infof("Loaded %d fund rows from %s", t.Len(), filepath.Base(path))
	return t, nil
}

func readPerformance(path string) (*models.PerformanceTable, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	t, err := ParsePerformanceCSV(f)
	if err != nil {
		return nil, err
	}
	log.Infof("Loaded %d performance rows (%s)", len(t.Records), strings.Join(t.Periods, ", "))
	return t, nil
}
