package analysis

import (
	"time"

	"github.com/alexanderramin/babylog/internal/domain"
)

type dayWeight struct {
	day      time.Time
	measured domain.Point
}

// GrowthPerDay returns the weight gained on each day between the first and
// last weighing. A day's weight is its last measurement; days without one
// are linearly interpolated between the surrounding measured days and
// flagged as such. Fewer than two measured days give an empty series.
func GrowthPerDay(t *domain.Table) (domain.Series, error) {
	weights, err := Values(t, domain.ColWeight)
	if err != nil {
		return domain.Series{}, err
	}

	byDay := make(map[dayKey]*dayWeight)
	var order []*dayWeight
	for _, p := range weights.Points {
		k := keyOf(p.Time)
		dw, ok := byDay[k]
		if !ok {
			dw = &dayWeight{day: domain.Day(p.Time), measured: p}
			byDay[k] = dw
			order = append(order, dw)
			continue
		}
		if !p.Time.Before(dw.measured.Time) {
			dw.measured = p
		}
	}

	days := make([]domain.Point, len(order))
	for i, dw := range order {
		days[i] = domain.Point{Time: dw.day, Value: dw.measured.Value}
	}
	sortByTime(days)

	out := domain.Series{Column: domain.ColWeight, Daily: true}
	for i := 1; i < len(days); i++ {
		prev, next := days[i-1], days[i]
		gap := daysBetween(prev.Time, next.Time)
		if gap <= 0 {
			continue
		}
		step := (next.Value - prev.Value) / float64(gap)
		for k := 1; k <= gap; k++ {
			out.Points = append(out.Points, domain.Point{
				Time:         domain.Day(prev.Time.AddDate(0, 0, k)),
				Value:        step,
				Interpolated: k < gap,
			})
		}
	}
	return out, nil
}
