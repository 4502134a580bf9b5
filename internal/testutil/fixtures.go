// Package testutil builds CSV exports for tests.
package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alexanderramin/babylog/internal/domain"
	"github.com/alexanderramin/babylog/internal/loader"
	"github.com/stretchr/testify/require"
)

// RowOption sets one cell of a CSV row.
type RowOption func(map[domain.Column]string)

// With sets column c to the raw value v.
func With(c domain.Column, v string) RowOption {
	return func(cells map[domain.Column]string) {
		cells[c] = v
	}
}

// Pee, Poo, Weight and friends are shorthands for With.
func Pee(v string) RowOption    { return With(domain.ColPee, v) }
func Poo(v string) RowOption    { return With(domain.ColPoo, v) }
func Weight(v string) RowOption { return With(domain.ColWeight, v) }
func Bottle(v string) RowOption { return With(domain.ColBottleVolume, v) }
func Sleep(v string) RowOption  { return With(domain.ColSleepDuration, v) }
func Note(v string) RowOption   { return With(domain.ColNote, v) }

// CSV accumulates rows of an export in the app's column layout.
type CSV struct {
	columns []domain.Column
	lines   []string
}

// NewCSV starts an export with the given columns, or every tracked column
// when none are given.
func NewCSV(columns ...domain.Column) *CSV {
	if len(columns) == 0 {
		columns = domain.TrackedColumns
	}
	return &CSV{columns: columns}
}

// Row appends a row stamped ts. Columns without an option are left empty.
func (c *CSV) Row(ts string, opts ...RowOption) *CSV {
	cells := make(map[domain.Column]string)
	for _, opt := range opts {
		opt(cells)
	}
	fields := make([]string, 0, len(c.columns)+1)
	fields = append(fields, ts)
	for _, col := range c.columns {
		fields = append(fields, cells[col])
	}
	c.lines = append(c.lines, strings.Join(fields, ","))
	return c
}

// String returns the CSV text including the header.
func (c *CSV) String() string {
	header := make([]string, 0, len(c.columns)+1)
	header = append(header, "")
	for _, col := range c.columns {
		header = append(header, string(col))
	}
	return strings.Join(append([]string{strings.Join(header, ",")}, c.lines...), "\n") + "\n"
}

// Table parses the CSV with the loader.
func (c *CSV) Table(t *testing.T) *domain.Table {
	t.Helper()
	table, err := loader.Read(strings.NewReader(c.String()))
	require.NoError(t, err)
	return table
}

// File writes the CSV to a temp file and returns its path.
func (c *CSV) File(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "export.csv")
	require.NoError(t, os.WriteFile(path, []byte(c.String()), 0o644))
	return path
}

// SampleWeek is a small realistic export spanning three days.
func SampleWeek() *CSV {
	return NewCSV().
		Row("2023-01-01 07:30:00", Pee("1")).
		Row("2023-01-01 09:00:00", Bottle("90")).
		Row("2023-01-01 11:15:00", Pee("2"), Poo("1")).
		Row("2023-01-01 13:00:00", Sleep("5400")).
		Row("2023-01-01 18:00:00", Weight("3500")).
		Row("2023-01-02 08:00:00", Pee("3"), Note("fussy morning")).
		Row("2023-01-02 10:00:00", Bottle("120")).
		Row("2023-01-02 14:00:00", Sleep("3600")).
		Row("2023-01-03 09:30:00", Poo("2"), Bottle("100")).
		Row("2023-01-03 19:00:00", Weight("3560"))
}
