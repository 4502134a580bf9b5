package cli

import (
	"errors"
	"fmt"

	"github.com/alexanderramin/babylog/internal/analysis"
	"github.com/alexanderramin/babylog/internal/cli/formatter"
	"github.com/alexanderramin/babylog/internal/domain"
	"github.com/spf13/cobra"
)

func newDailyCmd(app *App, gf *globalFlags) *cobra.Command {
	format := formatTable
	var fillGaps bool

	cmd := &cobra.Command{
		Use:   "daily <metric|column>",
		Short: "Print per-day totals for a metric or column",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(app, gf)
			if err != nil {
				return err
			}
			m, err := dailyMetric(args[0])
			if err != nil {
				return err
			}

			table, err := s.loadTable()
			if err != nil {
				return err
			}

			res, err := s.pipeline(cmd, analysis.WithFillGaps(fillGaps)).Run(cmd.Context(), table, m)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if format == formatCSV {
				return formatter.WriteSeriesCSV(out, res.Series, formatter.ValueName(m))
			}
			fmt.Fprint(out, formatter.FormatDaily(res.Series, m))
			return nil
		},
	}

	cmd.Flags().Var(&format, "format", "Output format: table or csv")
	cmd.Flags().BoolVar(&fillGaps, "fill-gaps", false, "Include days without entries as zero")
	return cmd
}

// dailyMetric resolves a built-in metric name, or treats arg as a column to
// be summed per day. Raw metrics are summed per day as well.
func dailyMetric(arg string) (domain.Metric, error) {
	m, err := domain.LookupMetric(arg)
	if errors.Is(err, domain.ErrUnknownMetric) {
		col := domain.Column(arg)
		if !col.IsNumeric() {
			return domain.Metric{}, fmt.Errorf("%w: %q holds free text", domain.ErrNotNumeric, col)
		}
		return domain.DailySumMetric(col), nil
	}
	if err != nil {
		return domain.Metric{}, err
	}
	if m.Aggregation == domain.AggRaw {
		m = domain.DailySumMetric(m.Column)
	}
	return m, nil
}
