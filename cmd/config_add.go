package cmd

import (
	"fmt"
	"strings"

	"github.com/brogergvhs/repolabel/internal/config"
	"github.com/brogergvhs/repolabel/internal/ui"

	"github.com/spf13/cobra"
)

var configAddCmd = &cobra.Command{
	Use:   "add [label]",
	Short: "Create a new config with default values",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var label string
		if len(args) == 1 {
			label = args[0]
		} else {
			v, err := ui.StdPrompter().Ask("Enter label for new config")
			if err != nil {
				return err
			}
			label = v
		}

		path, err := config.CreateEmptyConfig(strings.TrimSpace(label))
		if err != nil {
			return err
		}

		fmt.Printf("Created new config: %s\n", path)
		return nil
	},
}

func init() {
	configCmd.AddCommand(configAddCmd)
}
