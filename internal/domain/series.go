package domain

import "time"

// Point is one value on a chart's time axis.
type Point struct {
	Time         time.Time
	Value        float64
	Interpolated bool
}

// Series is an ordered run of points for a single column. Daily series have
// one point per calendar date, at midnight.
type Series struct {
	Column Column
	Daily  bool
	Points []Point
}

// Len returns the number of points.
func (s Series) Len() int { return len(s.Points) }

// Total returns the sum of all point values.
func (s Series) Total() float64 {
	var sum float64
	for _, p := range s.Points {
		sum += p.Value
	}
	return sum
}

// Bounds returns the smallest and largest values. ok is false when the
// series is empty.
func (s Series) Bounds() (lo, hi float64, ok bool) {
	if len(s.Points) == 0 {
		return 0, 0, false
	}
	lo, hi = s.Points[0].Value, s.Points[0].Value
	for _, p := range s.Points[1:] {
		if p.Value < lo {
			lo = p.Value
		}
		if p.Value > hi {
			hi = p.Value
		}
	}
	return lo, hi, true
}

// Day truncates t to midnight of its calendar date, keeping its location.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// SameDay reports whether a and b fall on the same calendar date.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
