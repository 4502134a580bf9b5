package analysis

import (
	"fmt"
	"sort"
	"time"

	"github.com/alexanderramin/babylog/internal/domain"
)

type dayKey struct {
	year  int
	month time.Month
	day   int
}

func keyOf(t time.Time) dayKey {
	y, m, d := t.Date()
	return dayKey{y, m, d}
}

// AggregateDaily sums col per calendar date. Null cells are skipped; dates
// without any value are absent from the result rather than zero.
func AggregateDaily(t *domain.Table, col domain.Column) (domain.Series, error) {
	pos, ok := t.Position(col)
	if !ok {
		return domain.Series{}, fmt.Errorf("aggregating: %w: %q", domain.ErrUnknownColumn, col)
	}

	sums := make(map[dayKey]*domain.Point)
	for _, r := range t.Rows() {
		c := r.Cells[pos]
		if c.Null {
			continue
		}
		if !c.IsNum {
			return domain.Series{}, notNumeric(col, r, c)
		}
		k := keyOf(r.Time)
		p, ok := sums[k]
		if !ok {
			p = &domain.Point{Time: domain.Day(r.Time)}
			sums[k] = p
		}
		p.Value += c.Num
	}

	s := domain.Series{Column: col, Daily: true, Points: make([]domain.Point, 0, len(sums))}
	for _, p := range sums {
		s.Points = append(s.Points, *p)
	}
	sortByTime(s.Points)
	return s, nil
}

// FillGaps inserts a zero point for every date missing between the first and
// last point of a daily series. Non-daily series are returned unchanged.
func FillGaps(s domain.Series) domain.Series {
	if !s.Daily || len(s.Points) < 2 {
		return s
	}

	out := domain.Series{Column: s.Column, Daily: true}
	for i, p := range s.Points {
		if i > 0 {
			prev := s.Points[i-1].Time
			for d := prev.AddDate(0, 0, 1); !domain.SameDay(d, p.Time) && d.Before(p.Time); d = d.AddDate(0, 0, 1) {
				out.Points = append(out.Points, domain.Point{Time: domain.Day(d)})
			}
		}
		out.Points = append(out.Points, p)
	}
	return out
}

func sortByTime(points []domain.Point) {
	sort.SliceStable(points, func(i, j int) bool {
		return points[i].Time.Before(points[j].Time)
	})
}

// daysBetween counts calendar days from a to b, ignoring clock changes.
func daysBetween(a, b time.Time) int {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	ua := time.Date(ay, am, ad, 0, 0, 0, 0, time.UTC)
	ub := time.Date(by, bm, bd, 0, 0, 0, 0, time.UTC)
	return int(ub.Sub(ua).Hours() / 24)
}
