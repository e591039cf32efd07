package cli

import (
	"github.com/alexanderramin/meetcost/internal/domain"
	"github.com/alexanderramin/meetcost/internal/llm"
	"github.com/alexanderramin/meetcost/internal/store"
	"github.com/spf13/cobra"
)

// App holds the collaborators CLI commands need: the rate table, the
// optional analysis client, and the run-history store.
type App struct {
	Rates    domain.RateTable
	Analysis llm.Client // nil when no API key is configured
	Runs     *store.RunRepo

	// IsInteractive reports whether stdout is an interactive terminal.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "meetcost" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "meetcost",
		Short: "Meeting cost analyzer for exported calendar logs",
		Long: `meetcost ingests an exported personal calendar log (CSV or XLSX),
aggregates cost and time per recurring meeting title, and reports
attendee statistics for the covered date range.`,
		SilenceUsage: true,
	}

	root.AddCommand(
		newAnalyzeCmd(app),
		newRolesCmd(app),
		newHistoryCmd(app),
	)

	return root
}
