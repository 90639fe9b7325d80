package cmd

import (
	"fmt"

	"github.com/brogergvhs/repolabel/internal/config"
	"github.com/brogergvhs/repolabel/internal/ui"

	"github.com/spf13/cobra"
)

var forceRemove bool

var configRemoveCmd = &cobra.Command{
	Use:   "remove <label>",
	Short: "Remove a config (<config_label>)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		label := args[0]

		active, _ := config.CurrentLabel()

		if label == active && !forceRemove {
			if !ui.Confirm(ui.StdPrompter(), fmt.Sprintf("Config %q is currently active. Remove it anyway?", label)) {
				fmt.Println("Aborted.")
				return nil
			}
		}

		switched, err := config.RemoveConfig(label)
		if err != nil {
			return err
		}

		fmt.Printf("Removed configuration %q\n", label)
		if switched {
			fmt.Println("Switched to: Default")
		}
		return nil
	},
}

func init() {
	configRemoveCmd.Flags().BoolVarP(&forceRemove, "force", "f", false, "remove the active config without asking")
	configCmd.AddCommand(configRemoveCmd)
}
