package model

import "fmt"

// Table is an ordered tabular report: a fixed column sequence plus rows in
// insertion order. Column order is an explicit contract — consumers such as
// chart generation look columns up by name, so it is never inferred from
// row contents.
type Table struct {
	Columns []string
	Rows    [][]string
}

// NewTable creates an empty table with the given column order.
func NewTable(columns []string) *Table {
	return &Table{Columns: columns}
}

// Append adds one row. The row must carry one cell per column.
func (t *Table) Append(row []string) {
	t.Rows = append(t.Rows, row)
}

// ColumnIndex returns the position of the named column, or -1.
func (t *Table) ColumnIndex(name string) int {
	for i, c := range t.Columns {
		if c == name {
			return i
		}
	}
	return -1
}

// Column returns the named column's values in row order.
func (t *Table) Column(name string) ([]string, error) {
	idx := t.ColumnIndex(name)
	if idx < 0 {
		return nil, fmt.Errorf("table: no column %q", name)
	}
	values := make([]string, 0, len(t.Rows))
	for _, row := range t.Rows {
		if idx < len(row) {
			values = append(values, row[idx])
		} else {
			values = append(values, "")
		}
	}
	return values, nil
}
