package cli

import (
	"fmt"

	"github.com/alexanderramin/babylog/internal/cli/formatter"
	"github.com/alexanderramin/babylog/internal/domain"
	"github.com/spf13/cobra"
)

func newGrowthCmd(app *App, gf *globalFlags) *cobra.Command {
	format := formatTable

	cmd := &cobra.Command{
		Use:   "growth",
		Short: "Print weight gained per day, interpolating days without a weighing",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(app, gf)
			if err != nil {
				return err
			}
			m, err := domain.LookupMetric("growth")
			if err != nil {
				return err
			}

			table, err := s.loadTable()
			if err != nil {
				return err
			}
			res, err := s.pipeline(cmd).Run(cmd.Context(), table, m)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if format == formatCSV {
				return formatter.WriteSeriesCSV(out, res.Series, "growth")
			}
			fmt.Fprint(out, formatter.FormatGrowth(res.Series))
			return nil
		},
	}

	cmd.Flags().Var(&format, "format", "Output format: table or csv")
	return cmd
}
