package models

import "time"

// RiskTier is the user-facing risk classification derived from a credit rating
type RiskTier string

const (
	RiskVeryLow RiskTier = "Very Low"
	RiskLow     RiskTier = "Low"
	RiskMedium  RiskTier = "Medium"
	RiskHigh    RiskTier = "High"
)

// RiskOrder is the display order of risk tiers, lowest risk first.
var RiskOrder = []RiskTier{RiskVeryLow, RiskLow, RiskMedium, RiskHigh}

// RiskLevelColumn is the name of the derived risk tier column
const RiskLevelColumn = "Risk Level"

// Rank returns the position of the tier in RiskOrder, or len(RiskOrder) if unknown.
func (r RiskTier) Rank() int {
	for i, t := range RiskOrder {
		if t == r {
			return i
		}
	}
	return len(RiskOrder)
}

// ColumnMap maps semantic roles to column indexes; -1 means the role is absent.
type ColumnMap struct {
	FundName   int `json:"fund_name"`
	NAV        int `json:"nav"`
	Category   int `json:"category"`
	Company    int `json:"company"`
	Risk       int `json:"risk"`
	OfferPrice int `json:"offer_price"`
	RiskLevel  int `json:"risk_level"`
}

// NewColumnMap returns a map with every role unresolved
func NewColumnMap() ColumnMap {
	return ColumnMap{FundName: -1, NAV: -1, Category: -1, Company: -1, Risk: -1, OfferPrice: -1, RiskLevel: -1}
}

func (m ColumnMap) HasCategory() bool  { return m.Category >= 0 }
func (m ColumnMap) HasCompany() bool   { return m.Company >= 0 }
func (m ColumnMap) HasRiskLevel() bool { return m.RiskLevel >= 0 }

// Dataset is an immutable snapshot of everything loaded for the dashboard.
type Dataset struct {
	Table       *Table
	Columns     ColumnMap
	Performance *PerformanceTable // nil when the performance table is unavailable
	Source      string
	NAVMin      float64
	NAVMax      float64
	LoadedAt    time.Time
	Warnings    []Warning
}

// FundName returns the fund name of a row
func (d *Dataset) FundName(row int) string {
	return d.Table.Text(row, d.Columns.FundName)
}

// NAV returns the NAV of a row and whether it is a valid number
func (d *Dataset) NAV(row int) (float64, bool) {
	return d.Table.Number(row, d.Columns.NAV)
}

// RiskLevel returns the derived risk tier of a row, empty when not derived.
func (d *Dataset) RiskLevel(row int) RiskTier {
	if !d.Columns.HasRiskLevel() {
		return ""
	}
	return RiskTier(d.Table.Text(row, d.Columns.RiskLevel))
}
