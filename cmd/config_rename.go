package cmd

import (
	"fmt"
	"strings"

	"github.com/brogergvhs/repolabel/internal/config"
	"github.com/brogergvhs/repolabel/internal/ui"

	"github.com/spf13/cobra"
)

var configRenameCmd = &cobra.Command{
	Use:   "rename <old_label> [new_label]",
	Short: "Rename a config profile, asking for the new label when omitted",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		oldLabel := args[0]

		var newLabel string
		if len(args) == 2 {
			newLabel = args[1]
		} else {
			v, err := ui.StdPrompter().Ask(fmt.Sprintf("New label for %q", oldLabel))
			if err != nil {
				return err
			}
			newLabel = strings.TrimSpace(v)
		}

		if err := config.RenameConfig(oldLabel, newLabel); err != nil {
			return err
		}

		path, _ := config.ConfigPathByLabel(newLabel)
		fmt.Printf("Renamed config %q to %q (%s)\n", oldLabel, newLabel, path)
		return nil
	},
}

func init() {
	configCmd.AddCommand(configRenameCmd)
}
