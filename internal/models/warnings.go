package models

// WarningCode categorizes warnings by subsystem.
// W1xxx = degraded features, W2xxx = loading, W3xxx = navigation.
type WarningCode string

const (
	WarnPerformanceUnavailable WarningCode = "W1001" // performance table missing or unreadable
	WarnCategoryMissing        WarningCode = "W1002" // no category column; category filter disabled
	WarnCompanyMissing         WarningCode = "W1003" // no company column; company filter disabled
	WarnRiskMissing            WarningCode = "W1004" // no risk column; risk filter and statistics disabled
	WarnPrimaryFallback        WarningCode = "W2001" // funds_clean.csv not usable, fell back to another file
	WarnFirstPage              WarningCode = "W3001" // previous page requested on the first page
	WarnLastPage               WarningCode = "W3002" // next page requested on the last page
)

// Warning represents a non-fatal issue encountered during processing.
type Warning struct {
	Code    WarningCode `json:"code"`
	Message string      `json:"message"`
}
