package domain

import (
	"fmt"
	"time"
)

// Row is one record of the log: its timestamp plus one cell per table column.
type Row struct {
	Time  time.Time
	Cells []Cell
}

// Table is a timestamp-indexed, row-oriented view of a baby-care export.
// Rows keep the order they were appended in.
type Table struct {
	indexName string
	columns   []Column
	positions map[Column]int
	rows      []Row
}

// NewTable creates an empty table with the given index header and columns.
func NewTable(indexName string, columns []Column) *Table {
	t := &Table{
		indexName: indexName,
		columns:   append([]Column(nil), columns...),
		positions: make(map[Column]int, len(columns)),
	}
	for i, c := range t.columns {
		t.positions[c] = i
	}
	return t
}

// Append adds a row. The row must have exactly one cell per column.
func (t *Table) Append(row Row) error {
	if len(row.Cells) != len(t.columns) {
		return fmt.Errorf("row at %s has %d cells, table has %d columns",
			row.Time.Format(time.RFC3339), len(row.Cells), len(t.columns))
	}
	t.rows = append(t.rows, row)
	return nil
}

// IndexName returns the header of the timestamp column (often empty).
func (t *Table) IndexName() string { return t.indexName }

// Columns returns the table's columns in order, excluding the index.
func (t *Table) Columns() []Column {
	return append([]Column(nil), t.columns...)
}

// HasColumn reports whether c is a column of the table.
func (t *Table) HasColumn(c Column) bool {
	_, ok := t.positions[c]
	return ok
}

// Len returns the number of rows.
func (t *Table) Len() int { return len(t.rows) }

// Rows returns the rows in index order. Callers must not modify the cells.
func (t *Table) Rows() []Row { return t.rows }

// Index returns the timestamp of every row.
func (t *Table) Index() []time.Time {
	idx := make([]time.Time, len(t.rows))
	for i, r := range t.rows {
		idx[i] = r.Time
	}
	return idx
}

// Cell returns the value of column c in row i.
func (t *Table) Cell(i int, c Column) (Cell, error) {
	pos, ok := t.positions[c]
	if !ok {
		return Cell{}, fmt.Errorf("%w: %q", ErrUnknownColumn, c)
	}
	return t.rows[i].Cells[pos], nil
}

// NonNullCount returns how many rows have a value in column c.
func (t *Table) NonNullCount(c Column) (int, error) {
	pos, ok := t.positions[c]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownColumn, c)
	}
	n := 0
	for _, r := range t.rows {
		if !r.Cells[pos].Null {
			n++
		}
	}
	return n, nil
}

// Project returns a new table holding the rows for which keep returns true,
// restricted to the given columns. Unknown columns are an error.
func (t *Table) Project(columns []Column, keep func(Row) bool) (*Table, error) {
	src := make([]int, len(columns))
	for i, c := range columns {
		pos, ok := t.positions[c]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownColumn, c)
		}
		src[i] = pos
	}

	out := NewTable(t.indexName, columns)
	for _, r := range t.rows {
		if keep != nil && !keep(r) {
			continue
		}
		cells := make([]Cell, len(src))
		for i, pos := range src {
			cells[i] = r.Cells[pos]
		}
		out.rows = append(out.rows, Row{Time: r.Time, Cells: cells})
	}
	return out, nil
}

// Position returns the cell offset of column c within a row.
func (t *Table) Position(c Column) (int, bool) {
	pos, ok := t.positions[c]
	return pos, ok
}
