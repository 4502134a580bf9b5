package cli

import (
	"strings"
	"testing"
	"time"

	"github.com/alexanderramin/babylog/internal/chart"
	"github.com/alexanderramin/babylog/internal/domain"
	"github.com/alexanderramin/babylog/internal/teatest"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPlots(t *testing.T) []chart.Plot {
	t.Helper()
	rc := chart.NewRenderContext(chart.WithColor(false), chart.WithSize(50, 6))

	pee := domain.Series{Column: domain.ColPee, Daily: true, Points: []domain.Point{
		{Time: time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC), Value: 3},
	}}

	var plots []chart.Plot
	for _, tc := range []struct {
		name string
		s    domain.Series
	}{
		{"pee", pee},
		{"poo", domain.Series{}},
		{"sleep", domain.Series{}},
	} {
		m, err := domain.LookupMetric(tc.name)
		require.NoError(t, err)
		p, err := chart.Render(rc, tc.s, m)
		require.NoError(t, err)
		plots = append(plots, p)
	}
	return plots
}

func viewer(d *teatest.Driver) *chartViewer {
	return d.Model.(*chartViewer)
}

func TestChartViewer_LoadingUntilSized(t *testing.T) {
	d := teatest.New(t, newChartViewer(testPlots(t)))
	d.DrainInit()
	assert.Contains(t, d.View(), "loading")
}

func TestChartViewer_ShowsFirstPlot(t *testing.T) {
	d := teatest.New(t, newChartViewer(testPlots(t)), teatest.WithSize(80, 30))

	view := d.View()
	assert.Contains(t, view, "PEES PER DAY")
	assert.Contains(t, view, "1/3")
	assert.Contains(t, view, "poo (empty)")
	assert.Contains(t, view, "next chart")
}

func TestChartViewer_TabsWrapAround(t *testing.T) {
	d := teatest.New(t, newChartViewer(testPlots(t)), teatest.WithSize(80, 30))

	d.PressType(tea.KeyTab)
	assert.Equal(t, 1, viewer(d).active)
	assert.Contains(t, d.View(), "POOS PER DAY")
	assert.Contains(t, d.View(), "no data")

	d.PressKey('l')
	assert.Equal(t, 2, viewer(d).active)

	d.PressType(tea.KeyRight)
	assert.Equal(t, 0, viewer(d).active, "wraps to the first chart")

	d.PressType(tea.KeyLeft)
	assert.Equal(t, 2, viewer(d).active, "wraps to the last chart")
	assert.Contains(t, d.View(), "3/3")

	d.PressKey('p')
	assert.Equal(t, 1, viewer(d).active)
}

func TestChartViewer_Quit(t *testing.T) {
	for _, press := range []func(*teatest.Driver){
		func(d *teatest.Driver) { d.PressKey('q') },
		func(d *teatest.Driver) { d.PressType(tea.KeyEsc) },
		func(d *teatest.Driver) { d.PressType(tea.KeyCtrlC) },
	} {
		d := teatest.New(t, newChartViewer(testPlots(t)), teatest.WithSize(80, 30))
		press(d)
		assert.True(t, d.Quitting)
		assert.Empty(t, d.View())
	}
}

func TestChartViewer_ShowsImagePath(t *testing.T) {
	plots := testPlots(t)
	plots[0].Image = "charts/pee.png"

	d := teatest.New(t, newChartViewer(plots), teatest.WithSize(80, 30))
	assert.Contains(t, d.View(), "saved to charts/pee.png")
}

func TestChartViewer_NoPlots(t *testing.T) {
	d := teatest.New(t, newChartViewer(nil), teatest.WithSize(80, 20))

	d.PressType(tea.KeyTab)
	assert.Contains(t, d.View(), "No charts to show.")
	assert.Equal(t, 0, viewer(d).active)
}

func TestChartViewer_ViewportFitsWindow(t *testing.T) {
	d := teatest.New(t, newChartViewer(testPlots(t)), teatest.WithSize(80, 10))

	assert.Equal(t, 10-viewerChrome, viewer(d).vp.Height)
	lines := strings.Split(d.View(), "\n")
	assert.LessOrEqual(t, len(lines), 10)
}
