package cli

import (
	"errors"

	"github.com/alexanderramin/triage/internal/cli/formatter"
	"github.com/alexanderramin/triage/internal/repository"
	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

func newStatusCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the last submitted questionnaire",
		Long: "Renders the durably stored confirmation record. The record is\n" +
			"display-only; it never re-populates the editable draft.",
		RunE: func(cmd *cobra.Command, args []string) error {
			snap, err := app.Submit.Confirmation(cmd.Context())
			if errors.Is(err, repository.ErrNotFound) {
				cmd.Println(formatter.Dim("No submission recorded yet."))
				return nil
			}
			if err != nil {
				return err
			}
			cmd.Print(formatter.FormatConfirmation(snap))
			return nil
		},
	}
}

func newClearCmd(app *App) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Discard the session draft",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !force {
				if !app.IsInteractive() {
					return errors.New("refusing to clear without --force in a non-interactive session")
				}
				confirmed := false
				confirm := huh.NewForm(huh.NewGroup(
					huh.NewConfirm().Title("Discard the current draft?").Value(&confirmed),
				)).WithTheme(triageHuhTheme()).WithShowHelp(false)
				if err := confirm.Run(); err != nil {
					return err
				}
				if !confirmed {
					cmd.Println(formatter.Dim("Kept the draft."))
					return nil
				}
			}

			state, err := app.Drafts.Clear(cmd.Context())
			if err != nil {
				return err
			}
			cmd.Println(formatter.Dim("Draft cleared."))
			printWarnings(cmd, state)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "clear without confirmation")
	return cmd
}
