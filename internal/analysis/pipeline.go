package analysis

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/babylog/internal/domain"
)

// Result is the outcome of running a metric through the pipeline.
type Result struct {
	Metric domain.Metric
	// View is the single-column table the series was derived from.
	View   *domain.Table
	Series domain.Series
}

// Pipeline extracts, groups and sums one metric at a time.
type Pipeline struct {
	observer RunObserver
	fillGaps bool
	now      func() time.Time
}

// PipelineOption configures a Pipeline.
type PipelineOption func(*Pipeline)

// WithObserver sets the observer notified after every run.
func WithObserver(obs RunObserver) PipelineOption {
	return func(p *Pipeline) {
		if obs != nil {
			p.observer = obs
		}
	}
}

// WithFillGaps zero-fills missing dates in daily sums.
func WithFillGaps(fill bool) PipelineOption {
	return func(p *Pipeline) {
		p.fillGaps = fill
	}
}

// NewPipeline creates a pipeline with a no-op observer.
func NewPipeline(opts ...PipelineOption) *Pipeline {
	p := &Pipeline{
		observer: NoopRunObserver{},
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Run applies metric m to table t.
func (p *Pipeline) Run(ctx context.Context, t *domain.Table, m domain.Metric) (res Result, err error) {
	start := p.now()
	defer func() {
		p.observer.ObserveRun(ctx, RunEvent{
			Metric:    m.Name,
			Column:    string(m.Column),
			Rows:      viewLen(res.View),
			Points:    res.Series.Len(),
			Duration:  p.now().Sub(start),
			Success:   err == nil,
			Err:       err,
			StartedAt: start,
		})
	}()

	view, err := Extract(t, m.Column)
	if err != nil {
		return Result{}, fmt.Errorf("metric %s: %w", m.Name, err)
	}

	var s domain.Series
	switch m.Aggregation {
	case domain.AggRaw:
		s, err = Values(view, m.Column)
	case domain.AggDailySum:
		s, err = AggregateDaily(view, m.Column)
		if err == nil && p.fillGaps {
			s = FillGaps(s)
		}
	case domain.AggGrowth:
		s, err = GrowthPerDay(view)
	default:
		err = fmt.Errorf("unsupported aggregation %q", m.Aggregation)
	}
	if err != nil {
		return Result{}, fmt.Errorf("metric %s: %w", m.Name, err)
	}

	return Result{Metric: m, View: view, Series: s}, nil
}

func viewLen(t *domain.Table) int {
	if t == nil {
		return 0
	}
	return t.Len()
}
