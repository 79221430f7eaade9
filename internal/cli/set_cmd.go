package cli

import (
	"github.com/alexanderramin/triage/internal/cli/formatter"
	"github.com/alexanderramin/triage/internal/form"
	"github.com/spf13/cobra"
)

func newSetCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "set <field> <value>",
		Short: "Set a single field (scripted edit)",
		Long: "Dispatches one field edit through the rebuild pipeline. Dynamic-row\n" +
			"fields use namespaced keys, e.g. financialBenefits[0].amount.\n" +
			"An empty value clears the field.",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, raw := args[0], args[1]

			state, err := app.Drafts.ApplyEdit(cmd.Context(), form.FieldEdited{
				Key:   key,
				Value: form.ValueFor(key, raw),
			})
			if err != nil {
				return err
			}

			cmd.Println(formatter.FormatClassification(state.Result))
			printWarnings(cmd, state)
			return nil
		},
	}
}
