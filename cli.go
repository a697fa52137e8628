package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/epeers/fundsdash/internal/models"
	"github.com/epeers/fundsdash/internal/render"
	"github.com/epeers/fundsdash/internal/services"
	"github.com/epeers/fundsdash/internal/util"
)

// loadDataset performs one synchronous load for a CLI command
func (a *app) loadDataset(ctx context.Context) (*models.Dataset, error) {
	datasets, closeDB, err := newDatasetService(ctx, a.cfg)
	if err != nil {
		return nil, err
	}
	defer closeDB()

	if err := datasets.Refresh(ctx); err != nil {
		return nil, err
	}
	ds, err := datasets.Current()
	if err != nil {
		return nil, err
	}
	for _, w := range ds.Warnings {
		fmt.Fprintf(os.Stderr, "warning %s: %s\n", w.Code, w.Message)
	}
	return ds, nil
}

// filterFlags are the filter options shared by the query commands
type filterFlags struct {
	search     string
	categories []string
	companies  []string
	risks      []string
	navMin     float64
	navMax     float64
	output     string
}

func (f *filterFlags) register(cmd *cobra.Command) {
	fl := cmd.Flags()
	fl.StringVar(&f.search, "search", "", "case-insensitive substring of the fund name")
	fl.StringSliceVar(&f.categories, "category", nil, "keep only these categories")
	fl.StringSliceVar(&f.companies, "company", nil, "keep only these companies")
	fl.StringSliceVar(&f.risks, "risk", nil, "keep only these risk levels (Very Low, Low, Medium, High)")
	fl.Float64Var(&f.navMin, "nav-min", 0, "minimum NAV (default: smallest NAV)")
	fl.Float64Var(&f.navMax, "nav-max", 0, "maximum NAV (default: largest NAV)")
	fl.StringVarP(&f.output, "output", "o", "table", "output format: table, json, yaml, csv")
}

// state builds the session state the flags describe
func (f *filterFlags) state(cmd *cobra.Command, ds *models.Dataset, dashboard *services.DashboardService) (models.SessionState, error) {
	state := services.DefaultState(ds)
	req := models.UpdateFiltersRequest{Search: &f.search}
	if len(f.categories) > 0 {
		req.Categories = f.categories
	}
	if len(f.companies) > 0 {
		req.Companies = f.companies
	}
	for _, r := range f.risks {
		req.RiskLevels = append(req.RiskLevels, models.RiskTier(r))
	}
	if cmd.Flags().Changed("nav-min") {
		req.NAVMin = &f.navMin
	}
	if cmd.Flags().Changed("nav-max") {
		req.NAVMax = &f.navMax
	}
	if err := dashboard.UpdateFilters(&state, req); err != nil {
		return state, err
	}
	return state, nil
}

func newFundsCmd(a *app) *cobra.Command {
	var (
		filters filterFlags
		sortBy  string
		desc    bool
		page    int
		all     bool
	)
	cmd := &cobra.Command{
		Use:   "funds",
		Short: "List the filtered funds one page at a time",
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := render.ParseFormat(filters.output)
			if err != nil {
				return err
			}
			ds, err := a.loadDataset(cmd.Context())
			if err != nil {
				return err
			}
			dashboard := services.NewDashboardService(a.cfg.PageSize, a.cfg.TopN)
			state, err := filters.state(cmd, ds, dashboard)
			if err != nil {
				return err
			}
			if sortBy != "" {
				if err := dashboard.SetSort(ds, &state, models.UpdateSortRequest{Column: sortBy, Descending: desc}); err != nil {
					return err
				}
			} else {
				state.Sort.Descending = desc
			}
			if err := dashboard.SetPage(&state, page); err != nil {
				return err
			}

			if all {
				grid := tableGrid(ds, dashboard.Export(ds, &state), allColumns(ds.Table))
				return render.Write(cmd.OutOrStdout(), format, grid, nil, render.Options{})
			}

			resp := dashboard.Page(context.Background(), ds, &state)
			p := resp.Pagination
			grid := tableGrid(ds, dashboard.View(ds, &state)[p.Start:p.End], services.DisplayColumns(ds.Table))
			grid.Footer = p.Label + " | " + metricsLine(resp.Metrics)
			return render.Write(cmd.OutOrStdout(), format, grid, resp, render.Options{})
		},
	}
	filters.register(cmd)
	cmd.Flags().StringVar(&sortBy, "sort", "", "sort column (default: first column)")
	cmd.Flags().BoolVar(&desc, "desc", false, "sort descending")
	cmd.Flags().IntVar(&page, "page", 1, "page number")
	cmd.Flags().BoolVar(&all, "all", false, "write every filtered row instead of one page")
	return cmd
}

func allColumns(t *models.Table) []int {
	cols := make([]int, len(t.Columns))
	for i := range cols {
		cols[i] = i
	}
	return cols
}

func tableGrid(ds *models.Dataset, view models.View, cols []int) render.Grid {
	g := render.Grid{
		Header:  make([]string, len(cols)),
		Rows:    make([][]string, 0, len(view)),
		Numeric: map[int]bool{},
	}
	for i, c := range cols {
		g.Header[i] = ds.Table.Columns[c].Name
		g.Numeric[i] = ds.Table.Columns[c].Kind == models.KindNumber
	}
	for _, r := range view {
		row := make([]string, len(cols))
		for i, c := range cols {
			row[i] = ds.Table.Text(r, c)
		}
		g.Rows = append(g.Rows, row)
	}
	return g
}

func metricsLine(m models.SummaryMetrics) string {
	return fmt.Sprintf("Total: %d | Avg NAV: %s | Max NAV: %s | Min NAV: %s",
		m.Count, rupees(m.AvgNAV), rupees(m.MaxNAV), rupees(m.MinNAV))
}

func rupees(v *float64) string {
	if v == nil {
		return util.NotAvailable
	}
	return util.FormatRupees(*v)
}

func optional(v *float64) string {
	if v == nil {
		return util.NotAvailable
	}
	return strconv.FormatFloat(*v, 'f', 2, 64)
}

func newRiskCmd(a *app) *cobra.Command {
	var filters filterFlags
	cmd := &cobra.Command{
		Use:   "risk",
		Short: "Show NAV statistics by risk level and the top funds",
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := render.ParseFormat(filters.output)
			if err != nil {
				return err
			}
			ds, err := a.loadDataset(cmd.Context())
			if err != nil {
				return err
			}
			dashboard := services.NewDashboardService(a.cfg.PageSize, a.cfg.TopN)
			state, err := filters.state(cmd, ds, dashboard)
			if err != nil {
				return err
			}

			resp := dashboard.Analytics(context.Background(), ds, &state)
			stats := render.Grid{
				Title:   "Risk statistics",
				Header:  []string{"Risk Level", "Count", "Avg NAV", "Min NAV", "Max NAV"},
				Numeric: map[int]bool{1: true, 2: true, 3: true, 4: true},
			}
			for _, st := range resp.RiskStats {
				stats.Rows = append(stats.Rows, []string{
					string(st.RiskLevel), strconv.Itoa(st.Count), optional(st.AvgNAV), optional(st.MinNAV), optional(st.MaxNAV),
				})
			}
			if format != render.FormatTable {
				return render.Write(cmd.OutOrStdout(), format, stats, resp, render.Options{})
			}
			if err := render.Write(cmd.OutOrStdout(), format, stats, nil, render.Options{}); err != nil {
				return err
			}

			top := render.Grid{
				Title:   fmt.Sprintf("Top %d funds by NAV", a.cfg.TopN),
				Header:  []string{"Fund Name", "NAV"},
				Numeric: map[int]bool{1: true},
			}
			for _, f := range resp.TopFunds {
				top.Rows = append(top.Rows, []string{f.FundName, util.FormatRupees(f.NAV)})
			}
			return render.Write(cmd.OutOrStdout(), format, top, nil, render.Options{})
		},
	}
	filters.register(cmd)
	return cmd
}

func newPerformanceCmd(a *app) *cobra.Command {
	var (
		fund   string
		period string
		output string
	)
	cmd := &cobra.Command{
		Use:   "performance",
		Short: "Show the return history of one fund",
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := render.ParseFormat(output)
			if err != nil {
				return err
			}
			ds, err := a.loadDataset(cmd.Context())
			if err != nil {
				return err
			}

			sel := models.PerformanceSelection{}
			sel.Select(fund)
			if period != "" {
				sel.Period = period
			}
			resp := services.NewPerformanceService(ds.Performance).FundPerformance(sel)
			if !resp.Available {
				return fmt.Errorf("no performance data available for %q", fund)
			}

			g := render.Grid{
				Title:   resp.Fund,
				Header:  []string{"Period", "Return"},
				Numeric: map[int]bool{1: true},
				Footer:  fmt.Sprintf("%s return: %s", resp.SelectedPeriod, util.FormatPercent(resp.SelectedValue)),
			}
			for _, pr := range resp.Record.Returns {
				g.Rows = append(g.Rows, []string{pr.Period, util.FormatPercent(pr.Value)})
			}
			return render.Write(cmd.OutOrStdout(), format, g, resp, render.Options{})
		},
	}
	cmd.Flags().StringVar(&fund, "fund", "", "exact fund name")
	cmd.Flags().StringVar(&period, "period", "", "selected period (default \"3 Years\")")
	cmd.Flags().StringVarP(&output, "output", "o", "table", "output format: table, json, yaml, csv")
	_ = cmd.MarkFlagRequired("fund")
	return cmd
}

func newCompareCmd(a *app) *cobra.Command {
	var (
		filters filterFlags
		funds   []string
		period  string
	)
	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Compare the returns of several funds",
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := render.ParseFormat(filters.output)
			if err != nil {
				return err
			}
			ds, err := a.loadDataset(cmd.Context())
			if err != nil {
				return err
			}
			dashboard := services.NewDashboardService(a.cfg.PageSize, a.cfg.TopN)
			state, err := filters.state(cmd, ds, dashboard)
			if err != nil {
				return err
			}

			comparison := services.NewComparisonService()
			comparison.Select(ds, &state, models.UpdateComparisonRequest{Funds: funds, Period: period})
			resp := comparison.Compare(context.Background(), ds, &state)

			g := render.Grid{
				Header:  append([]string{"Fund Name", "NAV", "Category", "Risk Level"}, resp.Periods...),
				Numeric: map[int]bool{1: true},
			}
			for i := range resp.Periods {
				g.Numeric[4+i] = true
			}
			for _, d := range resp.Details {
				row := []string{d.FundName, d.NAV, d.Category, d.RiskLevel}
				for _, r := range d.Returns {
					row = append(row, r.Display)
				}
				g.Rows = append(g.Rows, row)
			}
			g.Footer = compareFooter(resp)
			return render.Write(cmd.OutOrStdout(), format, g, resp, render.Options{MaxColWidth: 32})
		},
	}
	filters.register(cmd)
	cmd.Flags().StringSliceVar(&funds, "fund", nil, "fund names to compare (repeatable)")
	cmd.Flags().StringVar(&period, "period", "", "comparison period (default \"365 Days\" when present, else \"3 Years\")")
	_ = cmd.MarkFlagRequired("fund")
	return cmd
}

func compareFooter(resp models.ComparisonResponse) string {
	ranked := func(label string, f *models.RankedFund) string {
		if f == nil {
			return label + ": " + util.NotAvailable
		}
		return fmt.Sprintf("%s: %s (%s)", label, f.FundName, util.FormatPercent(&f.Value))
	}
	lines := []string{
		"Period: " + resp.Period,
		ranked("Best", resp.Best),
		ranked("Worst", resp.Worst),
	}
	if len(resp.MissingPerformance) > 0 {
		lines = append(lines, "No performance data: "+strings.Join(resp.MissingPerformance, ", "))
	}
	return strings.Join(lines, "\n")
}
