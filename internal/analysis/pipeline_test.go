package analysis

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/alexanderramin/babylog/internal/domain"
	"github.com/alexanderramin/babylog/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingObserver struct {
	events []RunEvent
}

func (r *recordingObserver) ObserveRun(_ context.Context, e RunEvent) {
	r.events = append(r.events, e)
}

func metric(t *testing.T, name string) domain.Metric {
	t.Helper()
	m, err := domain.LookupMetric(name)
	require.NoError(t, err)
	return m
}

func TestPipeline_DefaultMetrics(t *testing.T) {
	table := testutil.SampleWeek().Table(t)
	p := NewPipeline()

	tests := []struct {
		metric string
		daily  bool
		values []float64
	}{
		{"weight", false, []float64{3500, 3560}},
		{"bottle", true, []float64{90, 120, 100}},
		{"poo", true, []float64{1, 2}},
		{"pee", true, []float64{3, 3}},
		{"sleep", true, []float64{5400, 3600}},
	}

	for _, tt := range tests {
		t.Run(tt.metric, func(t *testing.T) {
			res, err := p.Run(context.Background(), table, metric(t, tt.metric))
			require.NoError(t, err)

			assert.Equal(t, tt.metric, res.Metric.Name)
			assert.Equal(t, tt.daily, res.Series.Daily)
			assert.Equal(t, tt.values, pointValues(res.Series))
			assert.Equal(t, []domain.Column{res.Metric.Column}, res.View.Columns())
		})
	}
}

func TestPipeline_Growth(t *testing.T) {
	table := testutil.SampleWeek().Table(t)

	res, err := NewPipeline().Run(context.Background(), table, metric(t, "growth"))
	require.NoError(t, err)

	assert.Equal(t, []float64{30, 30}, pointValues(res.Series))
	assert.True(t, res.Series.Points[0].Interpolated)
	assert.False(t, res.Series.Points[1].Interpolated)
}

func TestPipeline_FillGaps(t *testing.T) {
	table := testutil.SampleWeek().Table(t)
	m := metric(t, "poo")

	plain, err := NewPipeline().Run(context.Background(), table, m)
	require.NoError(t, err)
	filled, err := NewPipeline(WithFillGaps(true)).Run(context.Background(), table, m)
	require.NoError(t, err)

	assert.Equal(t, []float64{1, 2}, pointValues(plain.Series))
	assert.Equal(t, []float64{1, 0, 2}, pointValues(filled.Series))
}

func TestPipeline_FillGapsLeavesRawMetrics(t *testing.T) {
	table := testutil.SampleWeek().Table(t)

	res, err := NewPipeline(WithFillGaps(true)).Run(context.Background(), table, metric(t, "weight"))
	require.NoError(t, err)
	assert.Equal(t, 2, res.Series.Len())
}

func TestPipeline_HeaderOnly(t *testing.T) {
	table := testutil.NewCSV().Table(t)
	p := NewPipeline()

	for _, name := range domain.MetricNames() {
		res, err := p.Run(context.Background(), table, metric(t, name))
		require.NoError(t, err, "metric=%s", name)
		assert.Equal(t, 0, res.Series.Len(), "metric=%s", name)
	}
}

func TestPipeline_ObserverSeesEveryRun(t *testing.T) {
	table := testutil.SampleWeek().Table(t)
	obs := &recordingObserver{}
	tick := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	p := NewPipeline(WithObserver(obs))
	p.now = func() time.Time {
		tick = tick.Add(5 * time.Millisecond)
		return tick
	}

	_, err := p.Run(context.Background(), table, metric(t, "pee"))
	require.NoError(t, err)
	_, err = p.Run(context.Background(), table, domain.DailySumMetric("temperature"))
	require.Error(t, err)

	require.Len(t, obs.events, 2)

	ok := obs.events[0]
	assert.Equal(t, "pee", ok.Metric)
	assert.Equal(t, "pee", ok.Column)
	assert.Equal(t, 3, ok.Rows)
	assert.Equal(t, 2, ok.Points)
	assert.Equal(t, 5*time.Millisecond, ok.Duration)
	assert.True(t, ok.Success)
	assert.NoError(t, ok.Err)

	failed := obs.events[1]
	assert.False(t, failed.Success)
	assert.ErrorIs(t, failed.Err, domain.ErrUnknownColumn)
	assert.Equal(t, 0, failed.Rows)
}

func TestPipeline_Errors(t *testing.T) {
	table := testutil.NewCSV(domain.ColPee, domain.ColNote).
		Row("2023-01-01", testutil.Pee("lots"), testutil.Note("x")).
		Table(t)
	p := NewPipeline()

	_, err := p.Run(context.Background(), table, metric(t, "weight"))
	assert.ErrorIs(t, err, domain.ErrUnknownColumn)

	_, err = p.Run(context.Background(), table, metric(t, "pee"))
	assert.ErrorIs(t, err, domain.ErrNotNumeric)
	assert.Contains(t, err.Error(), "metric pee")

	_, err = p.Run(context.Background(), table, domain.Metric{Name: "odd", Column: domain.ColPee, Aggregation: "median"})
	require.Error(t, err)
	assert.False(t, errors.Is(err, domain.ErrUnknownColumn))
}

func TestPipeline_InfiniteWeight(t *testing.T) {
	table := testutil.NewCSV(domain.ColWeight).
		Row("2023-01-01 08:00", testutil.Weight("3000")).
		Row("2023-01-02 08:00", testutil.Weight("inf")).
		Table(t)

	for _, name := range []string{"weight", "growth"} {
		_, err := NewPipeline().Run(context.Background(), table, metric(t, name))
		assert.ErrorIs(t, err, domain.ErrNotNumeric, "metric=%s", name)
	}
}

func TestLogRunObserver(t *testing.T) {
	var buf bytes.Buffer
	obs := NewLogRunObserver(&buf, slog.LevelDebug)

	obs.ObserveRun(context.Background(), RunEvent{Metric: "pee", Column: "pee", Rows: 3, Points: 2, Success: true})
	obs.ObserveRun(context.Background(), RunEvent{Metric: "x", Column: "x", Err: domain.ErrUnknownColumn})

	out := buf.String()
	assert.Contains(t, out, "level=DEBUG msg=pipeline_run metric=pee")
	assert.Contains(t, out, "rows=3")
	assert.Contains(t, out, "level=ERROR msg=pipeline_run metric=x")
	assert.Contains(t, out, "success=false")
}

func TestLogRunObserver_QuietAtInfo(t *testing.T) {
	var buf bytes.Buffer
	obs := NewLogRunObserver(&buf, slog.LevelInfo)

	obs.ObserveRun(context.Background(), RunEvent{Metric: "pee", Success: true})
	assert.Empty(t, buf.String())
}

func TestNewLogRunObserver_NilWriter(t *testing.T) {
	assert.IsType(t, NoopRunObserver{}, NewLogRunObserver(nil, slog.LevelDebug))
}
