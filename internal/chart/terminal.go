package chart

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/alexanderramin/babylog/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

const (
	barBlock       = "█"
	interpBlock    = "▒"
	pointGlyph     = '●'
	connectorGlyph = '·'
	interpMarker   = "*"
	noDataText     = "no data"
)

// renderText draws s as a terminal chart headed by the metric's labels.
func renderText(rc *RenderContext, s domain.Series, m domain.Metric) string {
	p := newPalette(rc.Color)

	var b strings.Builder
	b.WriteString(p.title.Render(strings.ToUpper(m.Title)))
	b.WriteString("\n")
	b.WriteString(p.dim.Render(axisCaption(m)))
	b.WriteString("\n\n")

	switch {
	case s.Len() == 0:
		b.WriteString(renderEmpty(rc, p))
	case m.Kind == domain.ChartLine:
		b.WriteString(renderLine(rc, p, s))
	default:
		b.WriteString(renderBars(rc, p, s))
	}
	return b.String()
}

func axisCaption(m domain.Metric) string {
	switch {
	case m.YLabel != "" && m.XLabel != "":
		return fmt.Sprintf("%s by %s", m.YLabel, m.XLabel)
	case m.YLabel != "":
		return m.YLabel
	default:
		return m.XLabel
	}
}

// renderEmpty draws a blank frame so an empty chart still has a shape.
func renderEmpty(rc *RenderContext, p palette) string {
	frame := lipgloss.NewStyle().
		Width(rc.Width-2).
		Height(rc.Height).
		Align(lipgloss.Center, lipgloss.Center).
		Border(lipgloss.NormalBorder())
	if rc.Color {
		frame = frame.BorderForeground(colorDim)
	}
	return frame.Render(p.dim.Render(noDataText)) + "\n"
}

// renderBars draws one horizontal bar per point, scaled to the largest
// absolute value.
func renderBars(rc *RenderContext, p palette, s domain.Series) string {
	labels := make([]string, len(s.Points))
	values := make([]string, len(s.Points))
	labelW, valueW := 0, 0
	maxAbs := 0.0
	anyInterp := false

	for i, pt := range s.Points {
		labels[i] = pointLabel(pt.Time, s.Daily)
		values[i] = FormatValue(pt.Value)
		if pt.Interpolated {
			values[i] += interpMarker
			anyInterp = true
		}
		labelW = max(labelW, lipgloss.Width(labels[i]))
		valueW = max(valueW, lipgloss.Width(values[i]))
		maxAbs = math.Max(maxAbs, math.Abs(pt.Value))
	}

	barW := rc.Width - labelW - valueW - 4
	if barW < 1 {
		barW = 1
	}

	var b strings.Builder
	for i, pt := range s.Points {
		n := 0
		if maxAbs > 0 {
			n = int(math.Round(math.Abs(pt.Value) / maxAbs * float64(barW)))
		}
		if n == 0 && pt.Value != 0 {
			n = 1
		}

		glyph, style := barBlock, p.bar
		if pt.Value < 0 {
			style = p.negative
		}
		if pt.Interpolated {
			glyph, style = interpBlock, p.dim
		}
		bar := strings.Repeat(glyph, n) + strings.Repeat(" ", barW-n)

		fmt.Fprintf(&b, "%s  %s  %s\n",
			p.label.Render(padRight(labels[i], labelW)),
			style.Render(bar),
			p.value.Render(padLeft(values[i], valueW)),
		)
	}

	if anyInterp {
		b.WriteString("\n")
		b.WriteString(p.dim.Render(interpMarker + " interpolated"))
		b.WriteString("\n")
	}
	return b.String()
}

// renderLine plots points on a character grid and joins neighbours in time
// order with dotted segments.
func renderLine(rc *RenderContext, p palette, s domain.Series) string {
	lo, hi, _ := s.Bounds()
	yLabels := []string{FormatValue(hi), FormatValue((lo + hi) / 2), FormatValue(lo)}
	yLabelW := 0
	for _, l := range yLabels {
		yLabelW = max(yLabelW, len(l))
	}

	plotW := rc.Width - yLabelW - 2
	if plotW < 2 {
		plotW = 2
	}
	plotH := rc.Height

	pts := append([]domain.Point(nil), s.Points...)
	sort.SliceStable(pts, func(i, j int) bool { return pts[i].Time.Before(pts[j].Time) })
	tMin, tMax := pts[0].Time, pts[len(pts)-1].Time
	span := tMax.Sub(tMin)

	col := func(t time.Time) int {
		if span <= 0 {
			return plotW / 2
		}
		return int(math.Round(float64(t.Sub(tMin)) / float64(span) * float64(plotW-1)))
	}
	row := func(v float64) int {
		if hi == lo {
			return plotH / 2
		}
		return plotH - 1 - int(math.Round((v-lo)/(hi-lo)*float64(plotH-1)))
	}

	grid := make([][]rune, plotH)
	for r := range grid {
		grid[r] = []rune(strings.Repeat(" ", plotW))
	}

	xs := make([]int, len(pts))
	ys := make([]int, len(pts))
	for i, pt := range pts {
		xs[i], ys[i] = col(pt.Time), row(pt.Value)
	}
	for i := 1; i < len(pts); i++ {
		x0, y0, x1, y1 := xs[i-1], ys[i-1], xs[i], ys[i]
		for x := x0 + 1; x < x1; x++ {
			frac := float64(x-x0) / float64(x1-x0)
			y := int(math.Round(float64(y0) + float64(y1-y0)*frac))
			if grid[y][x] == ' ' {
				grid[y][x] = connectorGlyph
			}
		}
	}
	for i := range pts {
		grid[ys[i]][xs[i]] = pointGlyph
	}

	var b strings.Builder
	for r, cells := range grid {
		label := ""
		switch {
		case r == 0:
			label = yLabels[0]
		case r == plotH-1:
			label = yLabels[2]
		case r == plotH/2 && plotH > 2 && hi != lo:
			label = yLabels[1]
		}
		b.WriteString(p.dim.Render(padLeft(label, yLabelW) + " │"))
		b.WriteString(styleRow(p, cells))
		b.WriteString("\n")
	}
	b.WriteString(p.dim.Render(strings.Repeat(" ", yLabelW) + " └" + strings.Repeat("─", plotW)))
	b.WriteString("\n")

	first, last := pointLabel(tMin, s.Daily), pointLabel(tMax, s.Daily)
	axis := first
	if span > 0 {
		gap := plotW - len(first) - len(last)
		if gap < 1 {
			gap = 1
		}
		axis = first + strings.Repeat(" ", gap) + last
	}
	b.WriteString(p.dim.Render(strings.Repeat(" ", yLabelW+2) + axis))
	b.WriteString("\n")
	return b.String()
}

// styleRow renders a grid row, grouping runs of the same glyph so each run
// is styled once.
func styleRow(p palette, cells []rune) string {
	var b strings.Builder
	start := 0
	for i := 1; i <= len(cells); i++ {
		if i < len(cells) && cells[i] == cells[start] {
			continue
		}
		run := string(cells[start:i])
		switch cells[start] {
		case pointGlyph:
			b.WriteString(p.point.Render(run))
		case connectorGlyph:
			b.WriteString(p.dim.Render(run))
		default:
			b.WriteString(run)
		}
		start = i
	}
	return b.String()
}

func pointLabel(t time.Time, daily bool) string {
	if daily {
		return t.Format("2006-01-02")
	}
	return t.Format("2006-01-02 15:04")
}

// FormatValue renders v with at most two decimals and no trailing zeros.
func FormatValue(v float64) string {
	r := math.Round(v*100) / 100
	if r == 0 {
		r = 0 // normalise -0
	}
	return strconv.FormatFloat(r, 'f', -1, 64)
}

func padRight(s string, w int) string {
	if n := w - lipgloss.Width(s); n > 0 {
		return s + strings.Repeat(" ", n)
	}
	return s
}

func padLeft(s string, w int) string {
	if n := w - lipgloss.Width(s); n > 0 {
		return strings.Repeat(" ", n) + s
	}
	return s
}
