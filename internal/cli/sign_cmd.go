package cli

import (
	"fmt"
	"image"
	_ "image/png"
	"os"

	"github.com/alexanderramin/triage/internal/cli/formatter"
	"github.com/alexanderramin/triage/internal/signature"
	"github.com/spf13/cobra"
)

func newSignCmd(app *App) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "sign <field>",
		Short: "Attach a signature image to a sign-off field",
		Long: "Reads a PNG, keeps its alpha channel as the signature surface and\n" +
			"stores the encoded image in the full snapshot. A blank image is\n" +
			"rejected; signatures never appear in share links.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(file)
			if err != nil {
				return fmt.Errorf("opening signature image: %w", err)
			}
			defer f.Close()

			img, _, err := image.Decode(f)
			if err != nil {
				return fmt.Errorf("decoding signature image: %w", err)
			}

			pad := signature.FromImage(img)
			if pad.IsEmpty() {
				return fmt.Errorf("signature image %s is blank", file)
			}

			state, err := app.Drafts.Sign(cmd.Context(), args[0], pad)
			if err != nil {
				return err
			}
			cmd.Println(formatter.StyleGreen.Render("Signature attached."))
			printWarnings(cmd, state)
			return nil
		},
	}

	cmd.Flags().StringVar(&file, "file", "", "path to the signature PNG (required)")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}
