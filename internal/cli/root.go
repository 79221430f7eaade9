package cli

import (
	"github.com/alexanderramin/triage/internal/classify"
	"github.com/alexanderramin/triage/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to the services used by CLI commands.
type App struct {
	Drafts service.DraftService
	Submit service.SubmitService
	Table  classify.ScoringTable

	// IsInteractive reports whether stdin is a terminal; the huh-based
	// commands refuse to run without one.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "triage" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "triage",
		Short: "Initiative triage questionnaire",
		Long: "Score an initiative across seven dimensions, classify it as\n" +
			"Programme, Project or BAU, and submit the result to the workflow endpoint.",
	}

	root.AddCommand(
		newFillCmd(app),
		newSetCmd(app),
		newRowCmd(app),
		newSignCmd(app),
		newLinkCmd(app),
		newResumeCmd(app),
		newSubmitCmd(app),
		newStatusCmd(app),
		newExportCmd(app),
		newClearCmd(app),
	)

	return root
}
