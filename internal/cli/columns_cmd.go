package cli

import (
	"fmt"

	"github.com/alexanderramin/babylog/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newColumnsCmd(app *App, gf *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "columns",
		Short: "List the columns of the CSV with their value counts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(app, gf)
			if err != nil {
				return err
			}
			table, err := s.loadTable()
			if err != nil {
				return err
			}
			out, err := formatter.FormatColumns(table)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), out)
			return nil
		},
	}
}
