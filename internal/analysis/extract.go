// Package analysis turns a record table into plottable series.
package analysis

import (
	"fmt"

	"github.com/alexanderramin/babylog/internal/domain"
)

// Extract returns the rows of t that have a value in col, dropping every
// other tracked column. Columns the tracking app does not know about are
// kept. Row order is preserved and an empty result is not an error.
func Extract(t *domain.Table, col domain.Column) (*domain.Table, error) {
	pos, ok := t.Position(col)
	if !ok {
		return nil, fmt.Errorf("extracting: %w: %q", domain.ErrUnknownColumn, col)
	}

	keep := make([]domain.Column, 0, len(t.Columns()))
	for _, c := range t.Columns() {
		if c == col || !c.IsTracked() {
			keep = append(keep, c)
		}
	}

	return t.Project(keep, func(r domain.Row) bool {
		return !r.Cells[pos].Null
	})
}

// Values returns one point per non-null row of col, in index order.
func Values(t *domain.Table, col domain.Column) (domain.Series, error) {
	pos, ok := t.Position(col)
	if !ok {
		return domain.Series{}, fmt.Errorf("reading values: %w: %q", domain.ErrUnknownColumn, col)
	}

	s := domain.Series{Column: col}
	for _, r := range t.Rows() {
		c := r.Cells[pos]
		if c.Null {
			continue
		}
		if !c.IsNum {
			return domain.Series{}, notNumeric(col, r, c)
		}
		s.Points = append(s.Points, domain.Point{Time: r.Time, Value: c.Num})
	}
	return s, nil
}

func notNumeric(col domain.Column, r domain.Row, c domain.Cell) error {
	return fmt.Errorf("%w: column %q at %s: %q",
		domain.ErrNotNumeric, col, r.Time.Format("2006-01-02 15:04:05"), c.Raw)
}
