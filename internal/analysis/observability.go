package analysis

import (
	"context"
	"io"
	"log/slog"
	"time"
)

// RunEvent captures what one pipeline run did.
type RunEvent struct {
	Metric    string
	Column    string
	Rows      int
	Points    int
	Duration  time.Duration
	Success   bool
	Err       error
	StartedAt time.Time
}

// RunObserver receives pipeline run events.
type RunObserver interface {
	ObserveRun(ctx context.Context, event RunEvent)
}

// NoopRunObserver ignores all events.
type NoopRunObserver struct{}

func (NoopRunObserver) ObserveRun(context.Context, RunEvent) {}

type logRunObserver struct {
	logger *slog.Logger
}

// NewLogRunObserver writes pipeline run events to w at the given level.
// Successful runs are logged at debug level, failures at error level.
func NewLogRunObserver(w io.Writer, level slog.Level) RunObserver {
	if w == nil {
		return NoopRunObserver{}
	}
	return &logRunObserver{
		logger: slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})),
	}
}

func (o *logRunObserver) ObserveRun(ctx context.Context, event RunEvent) {
	attrs := []any{
		"metric", event.Metric,
		"column", event.Column,
		"rows", event.Rows,
		"points", event.Points,
		"duration_ms", event.Duration.Milliseconds(),
		"success", event.Success,
	}
	if event.Err != nil {
		attrs = append(attrs, "error", event.Err.Error())
		o.logger.ErrorContext(ctx, "pipeline_run", attrs...)
		return
	}
	o.logger.DebugContext(ctx, "pipeline_run", attrs...)
}
