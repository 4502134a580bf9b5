package cli

import (
	"errors"
	"log/slog"
	"time"

	"github.com/alexanderramin/babylog/internal/analysis"
	"github.com/alexanderramin/babylog/internal/domain"
	"github.com/spf13/cobra"
)

// globalFlags are shared by every command.
type globalFlags struct {
	csv     string
	tz      locationFlag
	verbose bool
	noColor bool
}

// session is what a command needs after flags and config are resolved.
type session struct {
	app      *App
	csvPath  string
	location *time.Location
	level    slog.Level
	color    bool
}

// NewRootCmd creates the top-level "babylog" command and registers all
// subcommands against the provided App. Run without a subcommand it renders
// the default charts, like "babylog plot".
func NewRootCmd(app *App) *cobra.Command {
	gf := &globalFlags{}
	pf := &plotFlags{}

	root := &cobra.Command{
		Use:          "babylog",
		Short:        "Charts for baby-care CSV exports",
		Long:         "Loads a feeding, diaper, sleep and weight log exported as CSV and renders per-day charts.",
		SilenceUsage: true,
		// main prints the returned error.
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(app, gf)
			if err != nil {
				return err
			}
			return runPlots(cmd, s, pf, domain.DefaultMetricNames)
		},
	}

	root.PersistentFlags().StringVar(&gf.csv, "csv", "", "CSV file exported from the tracking app (or BABYLOG_CSV)")
	root.PersistentFlags().Var(&gf.tz, "tz", "Timezone for timestamps without an offset (default UTC, or BABYLOG_TZ)")
	root.PersistentFlags().BoolVarP(&gf.verbose, "verbose", "v", false, "Log pipeline runs to stderr")
	root.PersistentFlags().BoolVar(&gf.noColor, "no-color", false, "Disable colored output")
	pf.register(root)

	root.AddCommand(
		newPlotCmd(app, gf),
		newDailyCmd(app, gf),
		newGrowthCmd(app, gf),
		newColumnsCmd(app, gf),
	)

	return root
}

// newSession resolves flags against the app config. Flags win over the
// environment.
func newSession(app *App, gf *globalFlags) (*session, error) {
	cfg := app.Config
	s := &session{
		app:      app,
		csvPath:  cfg.CSVPath,
		location: cfg.Location,
		level:    cfg.LogLevel,
		color:    !cfg.NoColor && !gf.noColor,
	}
	if gf.csv != "" {
		s.csvPath = gf.csv
	}
	if s.csvPath == "" {
		return nil, errors.New(`required flag(s) "csv" not set`)
	}
	if gf.tz.loc != nil {
		s.location = gf.tz.loc
	}
	if s.location == nil {
		s.location = time.UTC
	}
	if gf.verbose {
		s.level = slog.LevelDebug
	}
	return s, nil
}

// loadTable loads the session's CSV file.
func (s *session) loadTable() (*domain.Table, error) {
	return s.app.Loader.Load(s.csvPath, s.location)
}

// pipeline builds an analysis pipeline. Runs are logged to stderr only at
// debug level; failures already reach the user through the returned error.
func (s *session) pipeline(cmd *cobra.Command, opts ...analysis.PipelineOption) *analysis.Pipeline {
	var obs analysis.RunObserver = analysis.NoopRunObserver{}
	if s.level <= slog.LevelDebug {
		obs = analysis.NewLogRunObserver(cmd.ErrOrStderr(), s.level)
	}
	return analysis.NewPipeline(append([]analysis.PipelineOption{analysis.WithObserver(obs)}, opts...)...)
}
