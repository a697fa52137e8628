package models

// FilterState holds the user's active filters and the current page.
// Empty sets mean "no restriction".
type FilterState struct {
	Search     string     `json:"search"`
	Categories []string   `json:"categories"`
	Companies  []string   `json:"companies"`
	RiskLevels []RiskTier `json:"risk_levels"`
	NAVMin     float64    `json:"nav_min"`
	NAVMax     float64    `json:"nav_max"`
	Page       int        `json:"page"`
}

// NewFilterState returns the default state for a dataset NAV range
func NewFilterState(navMin, navMax float64) FilterState {
	var s FilterState
	s.Reset(navMin, navMax)
	return s
}

// Reset restores every filter to its default and returns to page 1.
func (s *FilterState) Reset(navMin, navMax float64) {
	s.Search = ""
	s.Categories = []string{}
	s.Companies = []string{}
	s.RiskLevels = []RiskTier{}
	s.NAVMin = navMin
	s.NAVMax = navMax
	s.Page = 1
}

// SortState selects the ordering of the filtered view
type SortState struct {
	Column     string `json:"column"`
	Descending bool   `json:"descending"`
}

// PerformanceSelection is the single-fund performance view selection
type PerformanceSelection struct {
	Fund   string `json:"fund"`
	Period string `json:"period"`
}

// Select switches the selected fund; changing fund resets the period to the default.
func (p *PerformanceSelection) Select(fund string) {
	if fund != p.Fund {
		p.Period = DefaultPerformancePeriod
	}
	p.Fund = fund
	if p.Period == "" {
		p.Period = DefaultPerformancePeriod
	}
}

// ComparisonSelection is the multi-fund comparison selection.
// An empty Period means "use the default comparison period".
type ComparisonSelection struct {
	Funds  []string `json:"funds"`
	Period string   `json:"period"`
}

// SessionState is everything one dashboard session owns
type SessionState struct {
	Filters     FilterState          `json:"filters"`
	Sort        SortState            `json:"sort"`
	Performance PerformanceSelection `json:"performance"`
	Comparison  ComparisonSelection  `json:"comparison"`
}
