package chart

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"time"

	"github.com/alexanderramin/babylog/internal/domain"
	gochart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// ErrNoData is returned by RenderImage for an empty series.
var ErrNoData = errors.New("series has no points")

var (
	imageBarColor    = drawing.ColorFromHex("83a598")
	imageInterpColor = drawing.ColorFromHex("928374")
	imageLossColor   = drawing.ColorFromHex("fb4934")
	imageLineColor   = drawing.ColorFromHex("8ec07c")
)

const imageBarSpacing = 4

// RenderImage writes s as a PNG chart to w.
func RenderImage(rc *RenderContext, s domain.Series, m domain.Metric, w io.Writer) error {
	if s.Len() == 0 {
		return ErrNoData
	}
	if m.Kind == domain.ChartLine {
		return lineImage(rc, s, m).Render(gochart.PNG, w)
	}
	return barImage(rc, s, m).Render(gochart.PNG, w)
}

// writeImage renders into <OutDir>/<metric>.png and returns the path.
func writeImage(rc *RenderContext, s domain.Series, m domain.Metric) (string, error) {
	if err := os.MkdirAll(rc.OutDir, 0o755); err != nil {
		return "", fmt.Errorf("creating output directory: %w", err)
	}
	path := filepath.Join(rc.OutDir, m.Name+".png")
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("creating %s: %w", path, err)
	}
	if err := RenderImage(rc, s, m, f); err != nil {
		f.Close()
		os.Remove(path)
		return "", fmt.Errorf("rendering %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("closing %s: %w", path, err)
	}
	return path, nil
}

func barImage(rc *RenderContext, s domain.Series, m domain.Metric) gochart.BarChart {
	bars := make([]gochart.Value, len(s.Points))
	for i, pt := range s.Points {
		style := gochart.Style{FillColor: imageBarColor, StrokeColor: imageBarColor}
		if pt.Value < 0 {
			style = gochart.Style{FillColor: imageLossColor, StrokeColor: imageLossColor}
		}
		if pt.Interpolated {
			style = gochart.Style{FillColor: imageInterpColor, StrokeColor: imageInterpColor}
		}
		bars[i] = gochart.Value{
			Value: pt.Value,
			Label: pt.Time.Format("Jan 2"),
			Style: style,
		}
	}

	barWidth := (rc.ImageWidth-120)/len(bars) - imageBarSpacing
	if barWidth < 2 {
		barWidth = 2
	}

	lo, hi, _ := s.Bounds()
	// Bars grow from zero so losses point down.
	return gochart.BarChart{
		Title:        m.Title,
		Width:        rc.ImageWidth,
		Height:       rc.ImageHeight,
		BarWidth:     barWidth,
		BarSpacing:   imageBarSpacing,
		UseBaseValue: true,
		Background:   gochart.Style{Padding: gochart.Box{Top: 40, Left: 16, Right: 16, Bottom: 16}},
		YAxis: gochart.YAxis{
			Name:  m.YLabel,
			Range: paddedRange(math.Min(0, lo), math.Max(0, hi)),
		},
		Bars: bars,
	}
}

func lineImage(rc *RenderContext, s domain.Series, m domain.Metric) gochart.Chart {
	xs := make([]time.Time, len(s.Points))
	ys := make([]float64, len(s.Points))
	tMin, tMax := s.Points[0].Time, s.Points[0].Time
	for i, pt := range s.Points {
		xs[i], ys[i] = pt.Time, pt.Value
		if pt.Time.Before(tMin) {
			tMin = pt.Time
		}
		if pt.Time.After(tMax) {
			tMax = pt.Time
		}
	}
	dotWidth := 3.0
	if len(xs) == 1 {
		// go-chart needs two X values to draw a series.
		xs = append(xs, xs[0].Add(time.Second))
		ys = append(ys, ys[0])
		dotWidth = 6
	}
	if !tMax.After(tMin) {
		tMin, tMax = tMin.Add(-12*time.Hour), tMax.Add(12*time.Hour)
	}

	lo, hi, _ := s.Bounds()
	return gochart.Chart{
		Title:      m.Title,
		Width:      rc.ImageWidth,
		Height:     rc.ImageHeight,
		Background: gochart.Style{Padding: gochart.Box{Top: 40, Left: 16, Right: 16, Bottom: 16}},
		XAxis: gochart.XAxis{
			Name:           m.XLabel,
			ValueFormatter: dateValueFormatter,
			Range: &gochart.ContinuousRange{
				Min: gochart.TimeToFloat64(tMin),
				Max: gochart.TimeToFloat64(tMax),
			},
		},
		YAxis: gochart.YAxis{
			Name:  m.YLabel,
			Range: paddedRange(lo, hi),
		},
		Series: []gochart.Series{
			gochart.TimeSeries{
				Name:    m.Title,
				XValues: xs,
				YValues: ys,
				Style: gochart.Style{
					StrokeColor: imageLineColor,
					StrokeWidth: 2,
					DotColor:    imageLineColor,
					DotWidth:    dotWidth,
				},
			},
		},
	}
}

// paddedRange widens [lo, hi] by 5% so the extremes do not touch the frame,
// and never returns an empty range.
func paddedRange(lo, hi float64) *gochart.ContinuousRange {
	if hi == lo {
		return &gochart.ContinuousRange{Min: lo - 1, Max: hi + 1}
	}
	pad := (hi - lo) * 0.05
	return &gochart.ContinuousRange{Min: lo - pad, Max: hi + pad}
}

func dateValueFormatter(v interface{}) string {
	switch t := v.(type) {
	case time.Time:
		return t.Format("Jan 2")
	case float64:
		return gochart.TimeFromFloat64(t).Format("Jan 2")
	default:
		return fmt.Sprint(v)
	}
}
