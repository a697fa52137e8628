package services

import (
	"fmt"
	"sort"
	"strings"

	"github.com/epeers/fundsdash/internal/models"
)

// DefaultPageSize is the number of rows per page
const DefaultPageSize = 50

// DefaultSort orders by the first column, ascending.
func DefaultSort(t *models.Table) models.SortState {
	if len(t.Columns) == 0 {
		return models.SortState{}
	}
	return models.SortState{Column: t.Columns[0].Name}
}

// SortView returns a stably sorted copy of view. Number columns compare
// numerically, string columns lexicographically, and nulls sort last in either
// direction. An unknown column leaves the order unchanged.
func SortView(t *models.Table, view models.View, s models.SortState) models.View {
	out := append(models.View(nil), view...)
	col := t.Index(s.Column)
	if col < 0 {
		return out
	}
	numeric := t.Columns[col].Kind == models.KindNumber

	sort.SliceStable(out, func(i, j int) bool {
		a, b := t.Cell(out[i], col), t.Cell(out[j], col)
		if a.Null || b.Null {
			return !a.Null && b.Null
		}
		var c int
		if numeric {
			switch {
			case a.Num < b.Num:
				c = -1
			case a.Num > b.Num:
				c = 1
			}
		} else {
			c = strings.Compare(a.Text, b.Text)
		}
		if s.Descending {
			return c > 0
		}
		return c < 0
	})
	return out
}

// Paginate computes the page window for total rows. The page is clamped into
// [1, total pages]; an empty view still has one (empty) page.
func Paginate(total, page, pageSize int) models.Pagination {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	totalPages := (total + pageSize - 1) / pageSize
	if totalPages < 1 {
		totalPages = 1
	}
	if page > totalPages {
		page = totalPages
	}
	if page < 1 {
		page = 1
	}

	start := (page - 1) * pageSize
	end := start + pageSize
	if end > total {
		end = total
	}
	if start > end {
		start = end
	}

	p := models.Pagination{
		Page:       page,
		TotalPages: totalPages,
		PageSize:   pageSize,
		TotalItems: total,
		Start:      start,
		End:        end,
	}
	if total == 0 {
		p.Label = "Page 1 of 1 | Showing 0 of 0 funds"
	} else {
		p.Label = fmt.Sprintf("Page %d of %d | Showing %d-%d of %d funds", page, totalPages, start+1, end, total)
	}
	return p
}

// PageSlice returns the rows of view inside the page window.
func PageSlice(view models.View, p models.Pagination) models.View {
	return view[p.Start:p.End]
}

// DisplayColumns returns the column indexes shown in the paginated table;
// a raw "Risk Rating" column is hidden in favor of the derived risk level.
func DisplayColumns(t *models.Table) []int {
	out := make([]int, 0, len(t.Columns))
	for i, c := range t.Columns {
		if strings.EqualFold(strings.TrimSpace(c.Name), "risk rating") {
			continue
		}
		out = append(out, i)
	}
	return out
}
