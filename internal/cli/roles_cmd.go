package cli

import (
	"fmt"

	"github.com/alexanderramin/meetcost/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newRolesCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "roles",
		Short: "Show the role hourly-rate table",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Print(formatter.FormatRates(app.Rates))
			return nil
		},
	}
}
