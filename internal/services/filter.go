package services

import (
	"sort"
	"strings"

	"github.com/epeers/fundsdash/internal/models"
)

// ApplyFilters returns the rows matching every active filter, in table order.
// Filters are AND-combined in a fixed order: search, category, company, risk level,
// NAV range. A filter with an empty selection, or whose column is absent, passes
// every row. The NAV range is always applied and inclusive; rows without a valid
// NAV never pass it.
func ApplyFilters(ds *models.Dataset, s models.FilterState) models.View {
	view := ds.Table.AllRows()
	view = filterSearch(ds, view, s.Search)
	view = filterMembership(ds, view, ds.Columns.Category, s.Categories)
	view = filterMembership(ds, view, ds.Columns.Company, s.Companies)
	view = filterRisk(ds, view, s.RiskLevels)
	view = filterNAV(ds, view, s.NAVMin, s.NAVMax)
	return view
}

func filterSearch(ds *models.Dataset, view models.View, term string) models.View {
	if term == "" {
		return view
	}
	needle := strings.ToLower(term)
	out := make(models.View, 0, len(view))
	for _, r := range view {
		v := ds.Table.Cell(r, ds.Columns.FundName)
		if v.Null {
			continue
		}
		if strings.Contains(strings.ToLower(v.Text), needle) {
			out = append(out, r)
		}
	}
	return out
}

func filterMembership(ds *models.Dataset, view models.View, col int, selected []string) models.View {
	if len(selected) == 0 || col < 0 {
		return view
	}
	set := make(map[string]struct{}, len(selected))
	for _, s := range selected {
		set[s] = struct{}{}
	}
	out := make(models.View, 0, len(view))
	for _, r := range view {
		v := ds.Table.Cell(r, col)
		if v.Null {
			continue
		}
		if _, ok := set[v.Text]; ok {
			out = append(out, r)
		}
	}
	return out
}

func filterRisk(ds *models.Dataset, view models.View, tiers []models.RiskTier) models.View {
	if len(tiers) == 0 || !ds.Columns.HasRiskLevel() {
		return view
	}
	selected := make([]string, len(tiers))
	for i, t := range tiers {
		selected[i] = string(t)
	}
	return filterMembership(ds, view, ds.Columns.RiskLevel, selected)
}

func filterNAV(ds *models.Dataset, view models.View, min, max float64) models.View {
	out := make(models.View, 0, len(view))
	for _, r := range view {
		nav, ok := ds.NAV(r)
		if !ok {
			continue
		}
		if nav >= min && nav <= max {
			out = append(out, r)
		}
	}
	return out
}

// FilterOptions derives the selectable values for each filter widget.
// Categories narrow by the selected risk levels only, risk levels narrow by the
// selected categories only, and companies never narrow. Search and NAV range never
// narrow any option list.
func FilterOptions(ds *models.Dataset, s models.FilterState) models.FilterOptionsResponse {
	all := ds.Table.AllRows()
	resp := models.FilterOptionsResponse{
		Categories:      []string{},
		Companies:       []string{},
		RiskLevels:      []models.RiskTier{},
		NAVMin:          ds.NAVMin,
		NAVMax:          ds.NAVMax,
		CategoryEnabled: ds.Columns.HasCategory(),
		CompanyEnabled:  ds.Columns.HasCompany(),
		RiskEnabled:     ds.Columns.HasRiskLevel(),
		SortColumns:     ds.Table.Headers(),
	}

	if resp.CategoryEnabled {
		resp.Categories = uniqueSorted(ds, filterRisk(ds, all, s.RiskLevels), ds.Columns.Category)
	}
	if resp.CompanyEnabled {
		resp.Companies = uniqueSorted(ds, all, ds.Columns.Company)
	}
	if resp.RiskEnabled {
		present := map[models.RiskTier]bool{}
		for _, r := range filterMembership(ds, all, ds.Columns.Category, s.Categories) {
			present[ds.RiskLevel(r)] = true
		}
		for _, t := range models.RiskOrder {
			if present[t] {
				resp.RiskLevels = append(resp.RiskLevels, t)
			}
		}
	}
	return resp
}

func uniqueSorted(ds *models.Dataset, view models.View, col int) []string {
	seen := map[string]struct{}{}
	out := []string{}
	for _, r := range view {
		v := ds.Table.Cell(r, col)
		if v.Null {
			continue
		}
		if _, ok := seen[v.Text]; ok {
			continue
		}
		seen[v.Text] = struct{}{}
		out = append(out, v.Text)
	}
	sort.Strings(out)
	return out
}
