package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/meetcost/internal/cli/formatter"
	"github.com/alexanderramin/meetcost/internal/domain"
	"github.com/alexanderramin/meetcost/internal/ingest"
	"github.com/alexanderramin/meetcost/internal/report"
	"github.com/spf13/cobra"
)

func newAnalyzeCmd(app *App) *cobra.Command {
	var (
		role        string
		selfIDs     []string
		ai          bool
		noSave      bool
		interactive bool
	)

	cmd := &cobra.Command{
		Use:   "analyze <file>",
		Short: "Analyze an exported calendar log",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]

			records, err := ingest.ReadFile(path)
			if err != nil {
				return err
			}

			opts := report.Options{
				Role:            domain.Role(role),
				Rates:           app.Rates,
				SelfIdentifiers: selfIDs,
				Now:             time.Now(),
			}

			if interactive || (app.IsInteractive != nil && app.IsInteractive() && !cmd.Flags().Changed("role")) {
				return runTUI(app, path, records, opts, !noSave)
			}

			rep, err := report.Build(records, opts)
			if err != nil {
				return fmt.Errorf("analyzing %s: %w", path, err)
			}

			fmt.Print(formatter.FormatReport(rep))

			if !noSave && app.Runs != nil {
				if _, err := app.Runs.SaveReport(context.Background(), path, rep, time.Now()); err != nil {
					return fmt.Errorf("saving run: %w", err)
				}
			}

			if ai {
				return printAnalysis(app, rep)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&role, "role", string(domain.RoleSoftwareEngineer), "Role whose hourly rate prices the meetings")
	cmd.Flags().StringArrayVar(&selfIDs, "self", nil, "Substring identifying the calendar owner in attendee names (repeatable)")
	cmd.Flags().BoolVar(&ai, "ai", false, "Send the report to the analysis model and print its response")
	cmd.Flags().BoolVar(&noSave, "no-save", false, "Skip recording this run in history")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "Force the interactive view")

	return cmd
}

// printAnalysis hands the assembled prompt to the external model and prints
// the response. The report itself is already on screen by this point.
func printAnalysis(app *App, rep *domain.Report) error {
	if app.Analysis == nil {
		return fmt.Errorf("analysis is not configured; set OPENAI_API_KEY or MEETCOST_LLM_API_KEY")
	}

	resp, err := app.Analysis.Analyze(context.Background(), report.Prompt(rep))
	if err != nil {
		return fmt.Errorf("running analysis: %w", err)
	}

	fmt.Println()
	fmt.Println(formatter.StyleBold.Render("AI Recommendations"))
	fmt.Println(resp.Text)
	return nil
}
