// Package loader reads baby-care CSV exports into a domain.Table.
package loader

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/alexanderramin/babylog/internal/domain"
)

// Options controls how timestamps are interpreted.
type Options struct {
	// Location applies to timestamps written without an offset.
	Location *time.Location
}

// Option mutates Options.
type Option func(*Options)

// WithLocation reads zoneless timestamps in loc.
func WithLocation(loc *time.Location) Option {
	return func(o *Options) {
		if loc != nil {
			o.Location = loc
		}
	}
}

func defaultOptions() Options {
	return Options{Location: time.UTC}
}

// Load opens the CSV file at path and parses it with Read.
func Load(path string, opts ...Option) (*domain.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrIO, err)
	}
	defer f.Close()

	t, err := Read(f, opts...)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}
	return t, nil
}

// Read parses a CSV export whose first column holds timestamps. The header
// row names the remaining columns. An empty input or a header with no data
// rows yields an empty table.
func Read(r io.Reader, opts ...Option) (*domain.Table, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return domain.NewTable("", nil), nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: header: %w", domain.ErrIO, err)
	}
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\ufeff")
	}

	indexName := strings.TrimSpace(header[0])
	columns := columnNames(header[1:])
	table := domain.NewTable(indexName, columns)

	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %w", domain.ErrIO, err)
		}
		line, _ := cr.FieldPos(0)

		if isBlank(record) {
			continue
		}
		if len(record) > len(header) {
			return nil, fmt.Errorf("%w: line %d: expected %d fields, got %d",
				domain.ErrIO, line, len(header), len(record))
		}

		ts, ok := parseTimestamp(record[0], o.Location)
		if !ok {
			return nil, &domain.ParseError{Line: line, Header: indexName, Value: record[0]}
		}

		cells := make([]domain.Cell, len(columns))
		for i := range columns {
			if i+1 < len(record) {
				cells[i] = domain.NewCell(record[i+1])
			} else {
				cells[i] = domain.NullCell()
			}
		}
		if err := table.Append(domain.Row{Time: ts, Cells: cells}); err != nil {
			return nil, err
		}
	}

	return table, nil
}

// columnNames trims header cells and disambiguates duplicates with a
// numeric suffix, so "pee,pee" becomes "pee,pee.1". A suffixed name never
// collides with a header that is already taken.
func columnNames(raw []string) []domain.Column {
	taken := make(map[string]bool, len(raw))
	for _, h := range raw {
		taken[strings.TrimSpace(h)] = false
	}
	next := make(map[string]int, len(raw))
	out := make([]domain.Column, len(raw))
	for i, h := range raw {
		name := strings.TrimSpace(h)
		if taken[name] {
			base := name
			for {
				next[base]++
				name = fmt.Sprintf("%s.%d", base, next[base])
				if _, exists := taken[name]; !exists {
					break
				}
			}
		}
		taken[name] = true
		out[i] = domain.Column(name)
	}
	return out
}

func isBlank(record []string) bool {
	for _, f := range record {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}
	return true
}
