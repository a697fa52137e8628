package repository

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/epeers/fundsdash/internal/models"
)

// ErrMissingFundNameColumn is returned when the performance table has no "Fund Name" header
var ErrMissingFundNameColumn = errors.New("missing required column: Fund Name")

func newReader(r io.Reader) *csv.Reader {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	return reader
}

// ParseFundsCSV parses the primary fund table. The first record is the header;
// column names are kept as-is and resolved later.
func ParseFundsCSV(r io.Reader) (*models.Table, error) {
	return parseTable(newReader(r), 0)
}

func parseTable(reader *csv.Reader, skip int) (*models.Table, error) {
	for i := 0; i < skip; i++ {
		if _, err := reader.Read(); err != nil {
			return nil, fmt.Errorf("failed to skip title row: %w", err)
		}
	}

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\ufeff")
	}

	var records [][]string
	rowNum := skip + 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("row %d: failed to read CSV record: %w", rowNum+1, err)
		}
		rowNum++
		if isBlank(record) {
			continue
		}
		records = append(records, record)
	}

	return models.NewTable(header, records), nil
}

func isBlank(record []string) bool {
	for _, f := range record {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}
	return true
}

// ParsePerformanceCSV parses the performance summary table. Its first row is a
// decorative title and the header is on the second row. "Fund Name" is required;
// the known return periods are picked up in canonical order when present.
func ParsePerformanceCSV(r io.Reader) (*models.PerformanceTable, error) {
	t, err := parseTable(newReader(r), 1)
	if err != nil {
		return nil, err
	}

	colIdx := make(map[string]int)
	for i, c := range t.Columns {
		if _, exists := colIdx[c.Name]; !exists {
			colIdx[c.Name] = i
		}
	}
	nameCol, ok := colIdx["Fund Name"]
	if !ok {
		return nil, ErrMissingFundNameColumn
	}
	optionalCol := func(name string) int {
		if idx, ok := colIdx[name]; ok {
			return idx
		}
		return -1
	}
	navCol := optionalCol("NAV")
	dateCol := optionalCol("Validity Date")

	out := &models.PerformanceTable{Periods: []string{}}
	periodCols := make([]int, 0, len(models.PerformancePeriods))
	for _, p := range models.PerformancePeriods {
		if idx, ok := colIdx[p]; ok {
			out.Periods = append(out.Periods, p)
			periodCols = append(periodCols, idx)
		}
	}

	out.Records = make([]models.PerformanceRecord, 0, t.Len())
	for row := 0; row < t.Len(); row++ {
		rec := models.PerformanceRecord{
			FundName:     t.Text(row, nameCol),
			NAV:          strings.TrimSpace(t.Raw(row, navCol)),
			ValidityDate: strings.TrimSpace(t.Text(row, dateCol)),
			Returns:      make([]models.PeriodReturn, len(out.Periods)),
		}
		for i, p := range out.Periods {
			raw := strings.TrimSpace(t.Raw(row, periodCols[i]))
			rec.Returns[i] = models.PeriodReturn{Period: p, Raw: raw, Value: parseReturn(raw)}
		}
		out.Records = append(out.Records, rec)
	}
	return out, nil
}

// parseReturn parses a percentage cell; a trailing "%" is tolerated.
// Missing-value tokens and non-finite numbers yield nil.
func parseReturn(raw string) *float64 {
	s := strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(raw), "%"))
	if models.IsMissing(s) {
		return nil
	}
	v, ok := models.ParseNumber(s)
	if !ok {
		return nil
	}
	return &v
}

// WriteTableCSV writes the given rows of a table as CSV with a header row.
// Cells are written with their original text.
func WriteTableCSV(w io.Writer, t *models.Table, view models.View) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(t.Headers()); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}
	record := make([]string, len(t.Columns))
	for _, r := range view {
		for c := range t.Columns {
			record[c] = t.Raw(r, c)
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write CSV record: %w", err)
		}
	}
	writer.Flush()
	return writer.Error()
}
