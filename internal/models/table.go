package models

import (
	"math"
	"strconv"
	"strings"
)

// ColumnKind is the inferred type of a table column
type ColumnKind string

const (
	KindString ColumnKind = "string"
	KindNumber ColumnKind = "number"
)

// Value is a single nullable table cell.
// Text always holds the original cell text; Num is only meaningful for number columns.
type Value struct {
	Text string
	Num  float64
	Null bool
}

// Interface returns the cell as a JSON-friendly value: nil, float64 or string.
func (v Value) Interface(kind ColumnKind) any {
	if v.Null {
		return nil
	}
	if kind == KindNumber {
		return v.Num
	}
	return v.Text
}

// Column describes one table column
type Column struct {
	Name string     `json:"name"`
	Kind ColumnKind `json:"kind"`
}

// Row is one record of the table, one Value per column
type Row []Value

// Table is an in-memory, read-only tabular dataset.
// Rows are never mutated after construction; derived columns produce a new Table.
type Table struct {
	Columns []Column
	Rows    []Row
}

// View is an ordered list of row indexes into a Table.
type View []int

// naTokens are the cell texts read as missing values, matched case-insensitively.
var naTokens = map[string]struct{}{
	"na": {}, "n/a": {}, "#n/a": {}, "nan": {}, "-nan": {}, "null": {},
	"none": {}, "-": {}, "<na>": {}, "#na": {}, "-1.#ind": {}, "1.#qnan": {},
}

// IsMissing reports whether a trimmed cell text is empty or a missing-value token.
func IsMissing(s string) bool {
	if s == "" {
		return true
	}
	_, ok := naTokens[strings.ToLower(s)]
	return ok
}

// ParseNumber parses a finite float. NaN and infinities are rejected.
func ParseNumber(s string) (float64, bool) {
	n, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(n) || math.IsInf(n, 0) {
		return 0, false
	}
	return n, true
}

// NewTable builds a Table from a header row and raw string records.
// Records shorter than the header are padded with nulls. A column is numeric
// when it has at least one present cell and every present cell parses as a finite
// float; blank cells and missing-value tokens such as "N/A" do not count.
func NewTable(headers []string, records [][]string) *Table {
	t := &Table{
		Columns: make([]Column, len(headers)),
		Rows:    make([]Row, len(records)),
	}

	for ci, h := range headers {
		t.Columns[ci] = Column{Name: strings.TrimSpace(h), Kind: inferKind(records, ci)}
	}

	for ri, rec := range records {
		row := make(Row, len(headers))
		for ci := range headers {
			var raw string
			if ci < len(rec) {
				raw = rec[ci]
			}
			row[ci] = parseCell(raw, t.Columns[ci].Kind)
		}
		t.Rows[ri] = row
	}
	return t
}

func inferKind(records [][]string, ci int) ColumnKind {
	seen := false
	for _, rec := range records {
		if ci >= len(rec) {
			continue
		}
		s := strings.TrimSpace(rec[ci])
		if IsMissing(s) {
			continue
		}
		if _, ok := ParseNumber(s); !ok {
			return KindString
		}
		seen = true
	}
	if !seen {
		return KindString
	}
	return KindNumber
}

func parseCell(raw string, kind ColumnKind) Value {
	s := strings.TrimSpace(raw)
	if s == "" {
		return Value{Null: true}
	}
	if kind == KindNumber {
		n, ok := ParseNumber(s)
		if !ok {
			return Value{Text: raw, Null: true}
		}
		return Value{Text: raw, Num: n}
	}
	return Value{Text: raw}
}

// Len returns the number of rows
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.Rows)
}

// Index returns the position of the named column or -1.
func (t *Table) Index(name string) int {
	for i, c := range t.Columns {
		if c.Name == name {
			return i
		}
	}
	return -1
}

// Headers returns the column names in order
func (t *Table) Headers() []string {
	out := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		out[i] = c.Name
	}
	return out
}

// Cell returns the value at row/col; out-of-range columns read as null.
func (t *Table) Cell(row, col int) Value {
	if col < 0 || col >= len(t.Columns) {
		return Value{Null: true}
	}
	return t.Rows[row][col]
}

// Text returns the cell text, empty for nulls.
func (t *Table) Text(row, col int) string {
	v := t.Cell(row, col)
	if v.Null {
		return ""
	}
	return v.Text
}

// Raw returns the original cell text, including text that was read as missing.
func (t *Table) Raw(row, col int) string {
	return t.Cell(row, col).Text
}

// Number returns the numeric cell value and whether it is present.
// String columns are parsed on demand so a mis-typed NAV column still yields numbers.
func (t *Table) Number(row, col int) (float64, bool) {
	v := t.Cell(row, col)
	if v.Null {
		return 0, false
	}
	if t.Columns[col].Kind == KindNumber {
		return v.Num, true
	}
	return ParseNumber(v.Text)
}

// WithColumn returns a copy of the table with an extra string column appended.
// If a column with the same name already exists it is replaced.
func (t *Table) WithColumn(name string, values []string) *Table {
	out := &Table{
		Columns: make([]Column, 0, len(t.Columns)+1),
		Rows:    make([]Row, len(t.Rows)),
	}
	existing := t.Index(name)
	for i, c := range t.Columns {
		if i == existing {
			continue
		}
		out.Columns = append(out.Columns, c)
	}
	out.Columns = append(out.Columns, Column{Name: name, Kind: KindString})

	for ri, row := range t.Rows {
		nr := make(Row, 0, len(out.Columns))
		for ci, v := range row {
			if ci == existing {
				continue
			}
			nr = append(nr, v)
		}
		cell := Value{Null: true}
		if ri < len(values) && values[ri] != "" {
			cell = Value{Text: values[ri]}
		}
		out.Rows[ri] = append(nr, cell)
	}
	return out
}

// AllRows returns a view over every row in table order.
func (t *Table) AllRows() View {
	v := make(View, t.Len())
	for i := range v {
		v[i] = i
	}
	return v
}
