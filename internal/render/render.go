package render

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"gopkg.in/yaml.v3"
)

// Format selects how command output is written
type Format string

const (
	FormatTable Format = "table"
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
	FormatCSV   Format = "csv"
)

// ParseFormat validates an output format name
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatTable, FormatJSON, FormatYAML, FormatCSV:
		return f, nil
	case "":
		return FormatTable, nil
	default:
		return "", fmt.Errorf("unknown output format %q (want table, json, yaml or csv)", s)
	}
}

// Grid is tabular output: a header and string cells. Numeric marks columns that
// are right-aligned in table output.
type Grid struct {
	Title   string
	Header  []string
	Rows    [][]string
	Numeric map[int]bool
	Footer  string
}

// Options tune table output
type Options struct {
	MaxColWidth int
}

// Write renders g in the given format. JSON and YAML emit data when it is
// non-nil and fall back to the grid as a list of header-keyed records.
func Write(w io.Writer, f Format, g Grid, data any, opts Options) error {
	switch f {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(payload(g, data))
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(payload(g, data)); err != nil {
			return fmt.Errorf("failed to encode yaml: %w", err)
		}
		return enc.Close()
	case FormatCSV:
		return writeCSV(w, g)
	default:
		return writeTable(w, g, opts)
	}
}

func payload(g Grid, data any) any {
	if data != nil {
		return data
	}
	out := make([]map[string]string, 0, len(g.Rows))
	for _, row := range g.Rows {
		rec := make(map[string]string, len(g.Header))
		for i, h := range g.Header {
			if i < len(row) {
				rec[h] = row[i]
			}
		}
		out = append(out, rec)
	}
	return out
}

func writeCSV(w io.Writer, g Grid) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(g.Header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}
	if err := cw.WriteAll(g.Rows); err != nil {
		return fmt.Errorf("failed to write CSV rows: %w", err)
	}
	return nil
}

func writeTable(w io.Writer, g Grid, opts Options) error {
	if g.Title != "" {
		fmt.Fprintln(w, text.Bold.Sprint(g.Title))
	}

	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	tw.SetStyle(table.StyleLight)
	tw.Style().Options.SeparateRows = false

	hdr := make(table.Row, len(g.Header))
	for i, h := range g.Header {
		hdr[i] = h
	}
	tw.AppendHeader(hdr)

	maxWidth := opts.MaxColWidth
	if maxWidth <= 0 {
		maxWidth = 40
	}
	cfgs := make([]table.ColumnConfig, 0, len(g.Header))
	for i := range g.Header {
		cfg := table.ColumnConfig{Number: i + 1, WidthMax: maxWidth}
		if g.Numeric[i] {
			cfg.Align = text.AlignRight
			cfg.AlignHeader = text.AlignRight
		}
		cfgs = append(cfgs, cfg)
	}
	if len(cfgs) > 0 {
		tw.SetColumnConfigs(cfgs)
	}

	for _, r := range g.Rows {
		row := make(table.Row, len(r))
		for i, c := range r {
			row[i] = c
		}
		tw.AppendRow(row)
	}
	tw.Render()

	if g.Footer != "" {
		fmt.Fprintln(w, g.Footer)
	}
	return nil
}
