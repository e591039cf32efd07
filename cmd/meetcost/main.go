package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/alexanderramin/meetcost/internal/cli"
	"github.com/alexanderramin/meetcost/internal/domain"
	"github.com/alexanderramin/meetcost/internal/llm"
	"github.com/alexanderramin/meetcost/internal/store"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine DB path: env var or default ~/.meetcost/meetcost.db
	dbPath := os.Getenv("MEETCOST_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".meetcost", "meetcost.db")
	}

	database, err := store.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	app := &cli.App{
		Rates: domain.DefaultRates(),
		Runs:  store.NewRunRepo(database),
	}

	// Interactive view only makes sense on a real terminal.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
	}

	// Wire the analysis client only when configured.
	llmCfg := llm.LoadConfig()
	if llmCfg.Enabled {
		var observer llm.Observer = llm.NoopObserver{}
		if llmCfg.LogCalls {
			observer = llm.NewLogObserver(os.Stderr)
		}
		app.Analysis = llm.NewChatClient(llmCfg, observer)
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
