package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/meetcost/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newHistoryCmd(app *App) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recorded analysis runs",
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.Runs == nil {
				return fmt.Errorf("run history is not available")
			}
			runs, err := app.Runs.ListRecent(context.Background(), limit)
			if err != nil {
				return err
			}
			fmt.Print(formatter.FormatHistory(runs))
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "Maximum number of runs to show")
	return cmd
}
