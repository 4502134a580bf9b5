package domain

import (
	"fmt"
	"sort"
)

// ChartKind selects how a series is drawn.
type ChartKind string

const (
	ChartLine ChartKind = "line"
	ChartBar  ChartKind = "bar"
)

// Aggregation selects how a column is reduced before plotting.
type Aggregation string

const (
	// AggRaw keeps one point per non-null row.
	AggRaw Aggregation = "raw"
	// AggDailySum sums values per calendar date.
	AggDailySum Aggregation = "daily_sum"
	// AggGrowth derives per-day weight deltas with interpolation.
	AggGrowth Aggregation = "growth"
)

// Metric describes one chart: which column, how it is reduced, and how it
// is labeled.
type Metric struct {
	Name        string
	Column      Column
	Aggregation Aggregation
	Kind        ChartKind
	Title       string
	XLabel      string
	YLabel      string
}

var builtinMetrics = map[string]Metric{
	"weight": {
		Name: "weight", Column: ColWeight, Aggregation: AggRaw, Kind: ChartLine,
		Title: "Weight over Time", XLabel: "Time", YLabel: "Weight (g)",
	},
	"bottle": {
		Name: "bottle", Column: ColBottleVolume, Aggregation: AggDailySum, Kind: ChartBar,
		Title: "Bottle Volume Drank Each Day", XLabel: "Date", YLabel: "Volume (ml)",
	},
	"poo": {
		Name: "poo", Column: ColPoo, Aggregation: AggDailySum, Kind: ChartBar,
		Title: "Poos Per Day", XLabel: "Date", YLabel: "# of Poos",
	},
	"pee": {
		Name: "pee", Column: ColPee, Aggregation: AggDailySum, Kind: ChartBar,
		Title: "Pees Per Day", XLabel: "Date", YLabel: "# of Pees",
	},
	"sleep": {
		Name: "sleep", Column: ColSleepDuration, Aggregation: AggDailySum, Kind: ChartBar,
		Title: "Sleep Per Day", XLabel: "Date", YLabel: "Sleep (s)",
	},
	"left": {
		Name: "left", Column: ColLeftDuration, Aggregation: AggDailySum, Kind: ChartBar,
		Title: "Left Breast Feeding Per Day", XLabel: "Date", YLabel: "Duration (s)",
	},
	"right": {
		Name: "right", Column: ColRightDuration, Aggregation: AggDailySum, Kind: ChartBar,
		Title: "Right Breast Feeding Per Day", XLabel: "Date", YLabel: "Duration (s)",
	},
	"growth": {
		Name: "growth", Column: ColWeight, Aggregation: AggGrowth, Kind: ChartBar,
		Title: "Growth Per Day", XLabel: "Date", YLabel: "Growth (g)",
	},
}

// DefaultMetricNames are the charts produced when none are requested.
var DefaultMetricNames = []string{"weight", "bottle", "poo", "pee", "sleep"}

// LookupMetric returns the built-in metric with the given name.
func LookupMetric(name string) (Metric, error) {
	m, ok := builtinMetrics[name]
	if !ok {
		return Metric{}, fmt.Errorf("%w: %q", ErrUnknownMetric, name)
	}
	return m, nil
}

// MetricNames returns every built-in metric name, defaults first.
func MetricNames() []string {
	names := append([]string(nil), DefaultMetricNames...)
	var extra []string
	for name := range builtinMetrics {
		if !containsString(names, name) {
			extra = append(extra, name)
		}
	}
	sort.Strings(extra)
	return append(names, extra...)
}

// DailySumMetric builds an ad-hoc daily bar chart for any column.
func DailySumMetric(col Column) Metric {
	return Metric{
		Name:        string(col),
		Column:      col,
		Aggregation: AggDailySum,
		Kind:        ChartBar,
		Title:       fmt.Sprintf("%s Per Day", col),
		XLabel:      "Date",
		YLabel:      string(col),
	}
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
