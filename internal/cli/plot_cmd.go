package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/babylog/internal/analysis"
	"github.com/alexanderramin/babylog/internal/chart"
	"github.com/alexanderramin/babylog/internal/domain"
	"github.com/spf13/cobra"
)

// plotFlags are shared by the root command and "plot".
type plotFlags struct {
	outDir   string
	fillGaps bool
	noShow   bool
	pick     bool
}

func (pf *plotFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&pf.outDir, "out", "", "Also write one PNG per chart into this directory (or BABYLOG_OUT_DIR)")
	cmd.Flags().BoolVar(&pf.fillGaps, "fill-gaps", false, "Show days without entries as zero bars")
	cmd.Flags().BoolVar(&pf.noShow, "no-show", false, "Print charts instead of opening the interactive viewer")
	cmd.Flags().BoolVar(&pf.pick, "pick", false, "Choose charts interactively")
}

func newPlotCmd(app *App, gf *globalFlags) *cobra.Command {
	pf := &plotFlags{}

	cmd := &cobra.Command{
		Use:   "plot [metric...]",
		Short: "Render charts for one or more metrics",
		Long: "Render charts for the given metrics. Without arguments the weight, bottle,\n" +
			"poo, pee and sleep charts are rendered.",
		Example: "  babylog plot --csv export.csv\n  babylog plot pee poo --csv export.csv --out charts",
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			return domain.MetricNames(), cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(app, gf)
			if err != nil {
				return err
			}
			names := args
			if len(names) == 0 {
				names = domain.DefaultMetricNames
			}
			return runPlots(cmd, s, pf, names)
		},
	}

	pf.register(cmd)
	return cmd
}

// runPlots loads the table, renders each metric, and shows the result.
func runPlots(cmd *cobra.Command, s *session, pf *plotFlags, names []string) error {
	interactive := s.app.IsInteractive != nil && s.app.IsInteractive()

	if pf.pick {
		if !interactive {
			return fmt.Errorf("--pick needs an interactive terminal")
		}
		picked, err := s.app.Picker.Pick(domain.MetricNames(), names)
		if err != nil {
			return fmt.Errorf("picking metrics: %w", err)
		}
		names = picked
	}

	metrics := make([]domain.Metric, 0, len(names))
	for _, name := range names {
		m, err := domain.LookupMetric(name)
		if err != nil {
			return err
		}
		metrics = append(metrics, m)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Processing %s ...\n", s.csvPath)

	table, err := s.loadTable()
	if err != nil {
		return err
	}

	outDir := pf.outDir
	if outDir == "" {
		outDir = s.app.Config.OutDir
	}
	rc := chart.NewRenderContext(
		chart.WithSize(s.app.Config.ChartWidth, s.app.Config.ChartHeight),
		chart.WithImageSize(s.app.Config.ImageWidth, s.app.Config.ImageHeight),
		chart.WithOutDir(outDir),
		chart.WithColor(s.color),
		chart.WithLog(cmd.ErrOrStderr()),
	)

	pipeline := s.pipeline(cmd, analysis.WithFillGaps(pf.fillGaps))
	plots, err := plotMetrics(cmd.Context(), pipeline, rc, table, metrics)
	if err != nil {
		return err
	}

	for _, p := range plots {
		if p.Image != "" {
			fmt.Fprintf(out, "Wrote %s\n", p.Image)
		}
	}

	if interactive && !pf.noShow {
		return s.app.Shower.Show(plots)
	}
	for _, p := range plots {
		fmt.Fprintln(out)
		fmt.Fprint(out, p.Text)
	}
	return nil
}

// plotMetrics runs every metric through the pipeline and renders it.
func plotMetrics(ctx context.Context, p *analysis.Pipeline, rc *chart.RenderContext, t *domain.Table, metrics []domain.Metric) ([]chart.Plot, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	plots := make([]chart.Plot, 0, len(metrics))
	for _, m := range metrics {
		res, err := p.Run(ctx, t, m)
		if err != nil {
			return nil, err
		}
		plot, err := chart.Render(rc, res.Series, res.Metric)
		if err != nil {
			return nil, err
		}
		plots = append(plots, plot)
	}
	return plots, nil
}
