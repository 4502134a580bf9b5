package chart

import (
	"fmt"
	"math"
	"time"

	"github.com/alexanderramin/babylog/internal/domain"
)

// Plot is the handle returned by Render: the data that was drawn plus
// where it was drawn to.
type Plot struct {
	Metric domain.Metric
	Series domain.Series
	// Text is the terminal rendering.
	Text string
	// Image is the PNG path, empty when no image was written.
	Image string
}

// Empty reports whether the plot has no data points.
func (p Plot) Empty() bool { return p.Series.Len() == 0 }

// Render draws s with the labels and kind of m. An empty series yields a
// blank chart rather than an error. When rc.OutDir is set a PNG is written
// as well; empty series are skipped with a note on rc.Log.
func Render(rc *RenderContext, s domain.Series, m domain.Metric) (Plot, error) {
	if rc == nil {
		rc = NewRenderContext()
	}
	for _, p := range s.Points {
		if math.IsInf(p.Value, 0) || math.IsNaN(p.Value) {
			return Plot{}, fmt.Errorf("chart %s: %w: %v on %s", m.Name, domain.ErrNotNumeric, p.Value, p.Time.Format(time.DateOnly))
		}
	}

	plot := Plot{
		Metric: m,
		Series: s,
		Text:   renderText(rc, s, m),
	}

	if rc.OutDir == "" {
		return plot, nil
	}
	if s.Len() == 0 {
		if rc.Log != nil {
			fmt.Fprintf(rc.Log, "skipping %s.png: no data\n", m.Name)
		}
		return plot, nil
	}

	path, err := writeImage(rc, s, m)
	if err != nil {
		return Plot{}, fmt.Errorf("chart %s: %w", m.Name, err)
	}
	plot.Image = path
	return plot, nil
}
