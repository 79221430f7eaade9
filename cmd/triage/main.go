package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/alexanderramin/triage/internal/classify"
	"github.com/alexanderramin/triage/internal/cli"
	"github.com/alexanderramin/triage/internal/db"
	"github.com/alexanderramin/triage/internal/gateway"
	"github.com/alexanderramin/triage/internal/repository"
	"github.com/alexanderramin/triage/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine draft-store path: env var or default ~/.triage/triage.db
	dbPath := os.Getenv("TRIAGE_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".triage", "triage.db")
	}

	table, err := classify.LoadTable()
	if err != nil {
		return err
	}

	// The share-link base is the public form URL, not the workflow sink.
	formURL := os.Getenv("TRIAGE_FORM_URL")
	if formURL == "" {
		formURL = "https://forms.example/triage"
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening draft store: %w", err)
	}
	defer database.Close()

	// Wire repositories and the unit of work
	drafts := repository.NewSQLiteDraftRepo(database)
	rows := repository.NewSQLiteRowRepo(database)
	uow := db.NewSQLiteUnitOfWork(database)

	// Wire the workflow gateway
	gwCfg := gateway.LoadConfig()
	var observer gateway.Observer = gateway.NoopObserver{}
	if gwCfg.LogCalls {
		observer = gateway.NewLogObserver(os.Stderr)
	}
	workflow := gateway.NewWorkflowClient(gwCfg, observer)

	app := &cli.App{
		Drafts: service.NewDraftService(table, drafts, rows, uow, formURL),
		Submit: service.NewSubmitService(workflow, drafts, rows),
		Table:  table,
	}

	// Detect interactive terminal for the huh-based commands.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
