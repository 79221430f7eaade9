package cli

import (
	"fmt"
	"sort"
	"strings"

	"github.com/alexanderramin/triage/internal/cli/formatter"
	"github.com/alexanderramin/triage/internal/domain"
	"github.com/spf13/cobra"
)

func newRowCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "row",
		Short: "Manage dynamic benefit rows",
	}
	cmd.AddCommand(newRowAddCmd(app), newRowListCmd(app))
	return cmd
}

func newRowAddCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "add <group>",
		Short: "Append an empty row to a benefit group",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			group := args[0]
			index, state, err := app.Drafts.AddRow(cmd.Context(), group)
			if err != nil {
				return err
			}
			cmd.Printf("Added row %d to %s. Set fields with e.g.\n  triage set %s \"...\"\n",
				index, group, domain.RowFieldKey(group, index, "description"))
			printWarnings(cmd, state)
			return nil
		},
	}
}

func newRowListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list <group>",
		Short: "List the set fields of a benefit group",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			group := args[0]
			if !domain.ValidRowGroups[group] {
				return fmt.Errorf("unknown row group %q", group)
			}

			state, err := app.Drafts.Load(cmd.Context())
			if err != nil {
				return err
			}

			prefix := group + "["
			keys := make([]string, 0)
			for k := range state.Full {
				if strings.HasPrefix(k, prefix) {
					keys = append(keys, k)
				}
			}
			if len(keys) == 0 {
				cmd.Println(formatter.Dim("No rows."))
				return nil
			}
			sort.Strings(keys)
			for _, k := range keys {
				cmd.Printf("%s = %s\n", k, state.Full[k])
			}
			return nil
		},
	}
}
