package cli

import (
	"time"

	"github.com/alexanderramin/babylog/internal/chart"
	"github.com/alexanderramin/babylog/internal/config"
	"github.com/alexanderramin/babylog/internal/domain"
	"github.com/alexanderramin/babylog/internal/loader"
)

// TableLoader reads a CSV export into a record table.
type TableLoader interface {
	Load(path string, loc *time.Location) (*domain.Table, error)
}

// PlotShower displays rendered plots to the user.
type PlotShower interface {
	Show(plots []chart.Plot) error
}

// MetricPicker asks the user which metrics to render.
type MetricPicker interface {
	Pick(available, preselected []string) ([]string, error)
}

// App holds the configuration and ports used by CLI commands.
type App struct {
	Config config.Config
	Loader TableLoader
	Shower PlotShower
	Picker MetricPicker

	// IsInteractive reports whether stdout is a terminal the viewer can use.
	IsInteractive func() bool
}

// NewApp wires the default adapters around cfg.
func NewApp(cfg config.Config) *App {
	return &App{
		Config:        cfg,
		Loader:        fileLoader{},
		Shower:        teaShower{},
		Picker:        huhPicker{},
		IsInteractive: func() bool { return false },
	}
}

type fileLoader struct{}

func (fileLoader) Load(path string, loc *time.Location) (*domain.Table, error) {
	return loader.Load(path, loader.WithLocation(loc))
}
