package models

import "time"

// UpdateFiltersRequest is a partial filter update. Omitted fields keep their
// current value; an explicit empty list clears a selection.
type UpdateFiltersRequest struct {
	Search     *string    `json:"search"`
	Categories []string   `json:"categories"`
	Companies  []string   `json:"companies"`
	RiskLevels []RiskTier `json:"risk_levels"`
	NAVMin     *float64   `json:"nav_min"`
	NAVMax     *float64   `json:"nav_max"`
	// ResetPage returns to page 1 after applying the update
	ResetPage bool `json:"reset_page"`
}

// UpdateSortRequest represents the request body for changing the sort order
type UpdateSortRequest struct {
	Column     string `json:"column" binding:"required"`
	Descending bool   `json:"descending"`
}

// UpdatePageRequest represents the request body for jumping to a page
type UpdatePageRequest struct {
	Page int `json:"page" binding:"required"`
}

// UpdatePerformanceRequest selects a fund and optionally a period
type UpdatePerformanceRequest struct {
	Fund   string `json:"fund" binding:"required"`
	Period string `json:"period"`
}

// UpdateComparisonRequest selects the funds to compare and optionally the period
type UpdateComparisonRequest struct {
	Funds  []string `json:"funds"`
	Period string   `json:"period"`
}

// SessionResponse returns the session's current state
type SessionResponse struct {
	SessionID string       `json:"session_id"`
	State     SessionState `json:"state"`
	Warnings  []Warning    `json:"warnings,omitempty"`
}

// Pagination describes the current page of a view
type Pagination struct {
	Page       int    `json:"page"`
	TotalPages int    `json:"total_pages"`
	PageSize   int    `json:"page_size"`
	TotalItems int    `json:"total_items"`
	Start      int    `json:"start"` // zero-based, inclusive
	End        int    `json:"end"`   // zero-based, exclusive
	Label      string `json:"label"`
}

// SummaryMetrics are the headline numbers of the filtered view.
// NAV figures are nil when no row has a valid NAV.
type SummaryMetrics struct {
	Count  int      `json:"count"`
	AvgNAV *float64 `json:"avg_nav"`
	MaxNAV *float64 `json:"max_nav"`
	MinNAV *float64 `json:"min_nav"`
}

// FundPageResponse is one rendered page of the filtered, sorted view
type FundPageResponse struct {
	Columns    []Column       `json:"columns"`
	Rows       [][]any        `json:"rows"`
	Pagination Pagination     `json:"pagination"`
	Metrics    SummaryMetrics `json:"metrics"`
	Sort       SortState      `json:"sort"`
	Warnings   []Warning      `json:"warnings,omitempty"`
}

// FilterOptionsResponse lists the selectable values for each filter widget
type FilterOptionsResponse struct {
	Categories      []string   `json:"categories"`
	Companies       []string   `json:"companies"`
	RiskLevels      []RiskTier `json:"risk_levels"`
	NAVMin          float64    `json:"nav_min"`
	NAVMax          float64    `json:"nav_max"`
	CategoryEnabled bool       `json:"category_enabled"`
	CompanyEnabled  bool       `json:"company_enabled"`
	RiskEnabled     bool       `json:"risk_enabled"`
	SortColumns     []string   `json:"sort_columns"`
	Warnings        []Warning  `json:"warnings,omitempty"`
}

// RiskStat is the per-tier NAV summary
type RiskStat struct {
	RiskLevel RiskTier `json:"risk_level"`
	Count     int      `json:"count"`
	AvgNAV    *float64 `json:"avg_nav"`
	MinNAV    *float64 `json:"min_nav"`
	MaxNAV    *float64 `json:"max_nav"`
}

// TopFund is a fund projected to name and NAV
type TopFund struct {
	FundName string  `json:"fund_name"`
	NAV      float64 `json:"nav"`
}

// DistributionBucket is one bar of a value-count chart
type DistributionBucket struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// AverageBucket is one bar of an average-by-group chart
type AverageBucket struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// AnalyticsResponse bundles the analytics and by-risk views
type AnalyticsResponse struct {
	Metrics              SummaryMetrics       `json:"metrics"`
	NAVDistribution      []DistributionBucket `json:"nav_distribution"`
	CategoryDistribution []DistributionBucket `json:"category_distribution"`
	RiskDistribution     []DistributionBucket `json:"risk_distribution"`
	AvgNAVByRisk         []AverageBucket      `json:"avg_nav_by_risk"`
	TopFunds             []TopFund            `json:"top_funds"`
	RiskStats            []RiskStat           `json:"risk_stats"`
	Warnings             []Warning            `json:"warnings,omitempty"`
}

// FundPerformanceResponse is the single-fund performance view.
// Available is false when the fund has no row in the performance table.
type FundPerformanceResponse struct {
	Fund           string             `json:"fund"`
	Available      bool               `json:"available"`
	Record         *PerformanceRecord `json:"record,omitempty"`
	SelectedPeriod string             `json:"selected_period"`
	SelectedValue  *float64           `json:"selected_value"`
	Periods        []string           `json:"periods"`
	Warnings       []Warning          `json:"warnings,omitempty"`
}

// RankedFund is a best or worst performer
type RankedFund struct {
	FundName string  `json:"fund_name"`
	Value    float64 `json:"value"`
}

// ChartSeries is one fund's return line across the available periods
type ChartSeries struct {
	FundName string     `json:"fund_name"`
	Values   []*float64 `json:"values"`
}

// FormattedReturn is a display cell of the comparison table ("1.23%" or "N/A")
type FormattedReturn struct {
	Period  string `json:"period"`
	Display string `json:"display"`
}

// ComparisonRow is one row of the detailed comparison table
type ComparisonRow struct {
	FundName  string            `json:"fund_name"`
	NAV       string            `json:"nav"`
	Category  string            `json:"category"`
	RiskLevel string            `json:"risk_level"`
	Returns   []FormattedReturn `json:"returns"`
}

// ComparisonResponse is the multi-fund comparison view.
// Best and Worst are nil when no selected fund has a valid value for Period.
type ComparisonResponse struct {
	Funds              []string        `json:"funds"`
	Period             string          `json:"period"`
	Periods            []string        `json:"periods"`
	Best               *RankedFund     `json:"best"`
	Worst              *RankedFund     `json:"worst"`
	Series             []ChartSeries   `json:"series"`
	Details            []ComparisonRow `json:"details"`
	MissingPerformance []string        `json:"missing_performance"`
	Warnings           []Warning       `json:"warnings,omitempty"`
}

// CandidatesResponse lists the funds available for comparison
type CandidatesResponse struct {
	Funds []string `json:"funds"`
}

// ErrorResponse represents an API error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
	Hint    string `json:"hint,omitempty"`
}

// StatusResponse describes the loaded dataset
type StatusResponse struct {
	Source      string    `json:"source"`
	Rows        int       `json:"rows"`
	Columns     ColumnMap `json:"columns"`
	Performance bool      `json:"performance"`
	Periods     []string  `json:"periods"`
	LoadedAt    time.Time `json:"loaded_at"`
	Sessions    int       `json:"sessions"`
	Warnings    []Warning `json:"warnings,omitempty"`
}
