package models

// PerformancePeriods is the fixed, ordered list of return-period columns
var PerformancePeriods = []string{
	"YTD", "MTD", "1 Day", "15 Days", "30 Days", "90 Days",
	"180 Days", "270 Days", "365 Days", "2 Years", "3 Years",
}

// DefaultPerformancePeriod is the period selected for a single fund view
const DefaultPerformancePeriod = "3 Years"

// ComparisonPeriodPreference lists the default comparison periods, first present wins.
var ComparisonPeriodPreference = []string{"365 Days", "3 Years"}

// PeriodReturn is one period of a fund's return series. Value is nil when the
// raw text is missing or not a number.
type PeriodReturn struct {
	Period string   `json:"period"`
	Raw    string   `json:"raw,omitempty"`
	Value  *float64 `json:"value"`
}

// PerformanceRecord is one row of the performance history table
type PerformanceRecord struct {
	FundName     string         `json:"fund_name"`
	NAV          string         `json:"nav"`
	ValidityDate string         `json:"validity_date"`
	Returns      []PeriodReturn `json:"returns"`
}

// Return looks up the return for a period
func (r *PerformanceRecord) Return(period string) (PeriodReturn, bool) {
	for _, pr := range r.Returns {
		if pr.Period == period {
			return pr, true
		}
	}
	return PeriodReturn{}, false
}

// PerformanceTable holds the performance history rows and the periods present in the file.
type PerformanceTable struct {
	Periods []string
	Records []PerformanceRecord
}

// HasPeriod reports whether the period column exists in the table
func (t *PerformanceTable) HasPeriod(period string) bool {
	for _, p := range t.Periods {
		if p == period {
			return true
		}
	}
	return false
}
