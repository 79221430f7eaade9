package cli

import (
	"errors"
	"os"

	"github.com/alexanderramin/triage/internal/cli/formatter"
	"github.com/alexanderramin/triage/internal/document"
	"github.com/alexanderramin/triage/internal/domain"
	"github.com/alexanderramin/triage/internal/repository"
	"github.com/spf13/cobra"
)

func newExportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "export [output.pdf]",
		Short: "Write the questionnaire as a PDF report",
		Long: "Renders the submitted confirmation record, or the current draft when\n" +
			"nothing has been submitted, as a titled A4 report with numbered pages.\n" +
			"The file name defaults to a slug of the initiative name.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			snap, err := exportSnapshot(cmd, app)
			if err != nil {
				return err
			}
			if snap.IsEmpty() {
				return errors.New("nothing to export: the form is empty")
			}

			report := document.BuildReport(snap)
			path := document.DefaultFileName(report.Title)
			if len(args) == 1 {
				path = args[0]
			}

			f, err := os.Create(path)
			if err != nil {
				return err
			}
			if err := document.RenderPDF(f, report); err != nil {
				f.Close()
				return err
			}
			if err := f.Close(); err != nil {
				return err
			}
			cmd.Println(formatter.Dim("Report written to " + path))
			return nil
		},
	}
}

// exportSnapshot prefers the durable confirmation record over the live
// draft, so a submitted questionnaire exports what was actually filed.
func exportSnapshot(cmd *cobra.Command, app *App) (domain.FullSnapshot, error) {
	snap, err := app.Submit.Confirmation(cmd.Context())
	if err == nil {
		return snap, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}
	state, err := app.Drafts.Load(cmd.Context())
	if err != nil {
		return nil, err
	}
	return state.Full, nil
}
