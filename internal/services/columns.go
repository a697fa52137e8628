package services

import (
	"errors"
	"strings"

	"github.com/epeers/fundsdash/internal/models"
)

var (
	ErrNoFundNameColumn = errors.New("could not find fund name column")
	ErrNoNAVColumn      = errors.New("could not find NAV column")
)

// ResolveColumns maps headers to semantic roles with case-insensitive keyword matching.
// Each header takes at most one role, tested in this order:
//  1. contains "fund" and "name"  -> fund name (replaces a name-only fallback)
//  2. contains "name" but not "fund" -> fund name, only if still unassigned
//  3. "company" or "amc"          -> company
//  4. "nav"                       -> NAV
//  5. "category"                  -> category
//  6. "risk" or "rating"          -> risk
//  7. "offer" and "price"         -> offer price
//
// Otherwise the first header matching a role keeps it.
func ResolveColumns(headers []string) models.ColumnMap {
	m := models.NewColumnMap()
	fundNameExact := false

	assign := func(slot *int, idx int) {
		if *slot < 0 {
			*slot = idx
		}
	}

	for i, h := range headers {
		col := strings.ToLower(strings.TrimSpace(h))
		switch {
		case strings.Contains(col, "fund") && strings.Contains(col, "name"):
			if !fundNameExact {
				m.FundName = i
				fundNameExact = true
			}
		case strings.Contains(col, "name") && !strings.Contains(col, "fund"):
			assign(&m.FundName, i)
		case strings.Contains(col, "company") || strings.Contains(col, "amc"):
			assign(&m.Company, i)
		case strings.Contains(col, "nav"):
			assign(&m.NAV, i)
		case strings.Contains(col, "category"):
			assign(&m.Category, i)
		case strings.Contains(col, "risk") || strings.Contains(col, "rating"):
			assign(&m.Risk, i)
		case strings.Contains(col, "offer") && strings.Contains(col, "price"):
			assign(&m.OfferPrice, i)
		}
	}
	return m
}

// ValidateColumns reports the fatal errors for a resolved column map.
func ValidateColumns(m models.ColumnMap) error {
	if m.FundName < 0 {
		return ErrNoFundNameColumn
	}
	if m.NAV < 0 {
		return ErrNoNAVColumn
	}
	return nil
}
