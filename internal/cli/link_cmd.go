package cli

import (
	"github.com/alexanderramin/triage/internal/cli/formatter"
	"github.com/alexanderramin/triage/internal/snapshot"
	"github.com/spf13/cobra"
)

func newLinkCmd(app *App) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "link",
		Short: "Print or export the resumable share link",
		Long: "Renders the current draft as a URL that re-populates the form when\n" +
			"opened with \"triage resume\". Signature images are never included.",
		RunE: func(cmd *cobra.Command, args []string) error {
			link, err := app.Drafts.Link(cmd.Context())
			if err != nil {
				return err
			}

			if out != "" {
				if err := snapshot.ExportLink(out, link); err != nil {
					return err
				}
				cmd.Println(formatter.Dim("Link written to " + out))
				return nil
			}
			return snapshot.WriteLink(cmd.OutOrStdout(), link)
		},
	}

	cmd.Flags().StringVar(&out, "out", "", "write the link to a file instead of stdout")
	return cmd
}

func newResumeCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "resume <url>",
		Short: "Re-populate the draft from a share link",
		Long: "Decodes the link's query string into the draft. Fields that fail to\n" +
			"decode are skipped individually; the rest of the link still loads.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			state, err := app.Drafts.Resume(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			cmd.Println(formatter.FormatClassification(state.Result))
			printWarnings(cmd, state)
			return nil
		},
	}
}
