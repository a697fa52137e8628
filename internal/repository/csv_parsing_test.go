package repository_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/epeers/fundsdash/internal/models"
	"github.com/epeers/fundsdash/internal/repository"
)

func TestParseFundsCSV_HappyPath(t *testing.T) {
	csv := "\ufeffFund Name,NAV,Risk Rating\nAlpha,10.5,AA\nBeta,,A\n"
	table, err := repository.ParseFundsCSV(strings.NewReader(csv))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := table.Headers(); got[0] != "Fund Name" {
		t.Errorf("expected BOM to be stripped from first header, got %q", got[0])
	}
	if table.Len() != 2 {
		t.Fatalf("expected 2 rows, got %d", table.Len())
	}
	if table.Columns[1].Kind != models.KindNumber {
		t.Errorf("expected NAV to be numeric, got %s", table.Columns[1].Kind)
	}
	if _, ok := table.Number(1, 1); ok {
		t.Error("expected empty NAV to be null")
	}
}

func TestParseFundsCSV_SkipsBlankAndShortRows(t *testing.T) {
	csv := "Fund Name,NAV,Category\nAlpha,1\n,,\nBeta,2,Equity\n"
	table, err := repository.ParseFundsCSV(strings.NewReader(csv))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if table.Len() != 2 {
		t.Fatalf("expected 2 rows, got %d", table.Len())
	}
	if got := table.Text(0, 2); got != "" {
		t.Errorf("expected short row to be padded with null, got %q", got)
	}
}

func TestParseFundsCSV_Empty(t *testing.T) {
	if _, err := repository.ParseFundsCSV(strings.NewReader("")); err == nil {
		t.Fatal("expected error for empty input")
	}
}

const performanceCSV = `Performance Summary,,,,
Fund Name,NAV,Validity Date,3 Years,365 Days,YTD
Alpha,10.5,01/06/2024,12.50%,4.1,
Beta,9.1,01/06/2024,n/a,-2.25,1
`

func TestParsePerformanceCSV_HappyPath(t *testing.T) {
	table, err := repository.ParsePerformanceCSV(strings.NewReader(performanceCSV))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Periods follow the canonical order, not the file's column order
	want := []string{"YTD", "365 Days", "3 Years"}
	if strings.Join(table.Periods, "|") != strings.Join(want, "|") {
		t.Errorf("expected periods %v, got %v", want, table.Periods)
	}
	if len(table.Records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(table.Records))
	}

	alpha := table.Records[0]
	if alpha.NAV != "10.5" || alpha.ValidityDate != "01/06/2024" {
		t.Errorf("unexpected alpha record: %+v", alpha)
	}
	r, ok := alpha.Return("3 Years")
	if !ok || r.Value == nil || *r.Value != 12.5 {
		t.Errorf("expected 3 Years = 12.5, got %+v", r)
	}
	if r, _ := alpha.Return("YTD"); r.Value != nil {
		t.Errorf("expected empty YTD to be nil, got %v", *r.Value)
	}

	beta := table.Records[1]
	if r, _ := beta.Return("3 Years"); r.Value != nil || r.Raw != "n/a" {
		t.Errorf("expected non-numeric return to keep raw text and no value, got %+v", r)
	}
	if r, _ := beta.Return("365 Days"); r.Value == nil || *r.Value != -2.25 {
		t.Errorf("expected 365 Days = -2.25, got %+v", r)
	}
}

func TestParsePerformanceCSV_NonFiniteReturnsAreMissing(t *testing.T) {
	csv := "Title\nFund Name,365 Days\nY,nan\nX,5.0\nZ,-inf\nFund A ,1%\n"
	table, err := repository.ParsePerformanceCSV(strings.NewReader(csv))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, i := range []int{0, 2} {
		if r, _ := table.Records[i].Return("365 Days"); r.Value != nil {
			t.Errorf("%s: expected no value, got %v", table.Records[i].FundName, *r.Value)
		}
	}
	if r, _ := table.Records[0].Return("365 Days"); r.Raw != "nan" {
		t.Errorf("expected raw text nan, got %q", r.Raw)
	}
	if got := table.Records[3].FundName; got != "Fund A " {
		t.Errorf("expected fund name kept verbatim, got %q", got)
	}
}

func TestParsePerformanceCSV_MissingFundName(t *testing.T) {
	csv := "Title\nName,3 Years\nAlpha,1\n"
	_, err := repository.ParsePerformanceCSV(strings.NewReader(csv))
	if !errors.Is(err, repository.ErrMissingFundNameColumn) {
		t.Fatalf("expected ErrMissingFundNameColumn, got %v", err)
	}
}

func TestParsePerformanceCSV_OnlyFundName(t *testing.T) {
	csv := "Title\nFund Name\nAlpha\n"
	table, err := repository.ParsePerformanceCSV(strings.NewReader(csv))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(table.Periods) != 0 {
		t.Errorf("expected no periods, got %v", table.Periods)
	}
	if len(table.Records) != 1 || table.Records[0].FundName != "Alpha" {
		t.Errorf("unexpected records: %+v", table.Records)
	}
}

func TestWriteTableCSV(t *testing.T) {
	table := models.NewTable(
		[]string{"Fund Name", "NAV"},
		[][]string{{"Alpha", "1.50"}, {"Beta, Ltd", ""}, {"Gamma", "3"}},
	)

	var buf bytes.Buffer
	if err := repository.WriteTableCSV(&buf, table, models.View{2, 1}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "Fund Name,NAV\nGamma,3\n\"Beta, Ltd\",\n"
	if buf.String() != want {
		t.Errorf("expected %q, got %q", want, buf.String())
	}
}
