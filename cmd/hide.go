package cmd

import (
	"fmt"

	"github.com/brogergvhs/repolabel/internal/config"
	"github.com/brogergvhs/repolabel/internal/dataset"
	"github.com/brogergvhs/repolabel/internal/ui"

	"github.com/spf13/cobra"
)

var flagHideOutput string

func init() {
	hideCmd := &cobra.Command{
		Use:   "hide <labelled-file>",
		Short: "Write a copy of a labelled file with the section labels anonymised",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, err := config.LoadMerged(baseOptions())
			if err != nil {
				return err
			}

			out := flagHideOutput
			if out == "" {
				out = cfg.HiddenOutput
			}
			if out == args[0] {
				return fmt.Errorf("refusing to overwrite the labelled file %s", out)
			}

			if err := dataset.StripLabelsFile(args[0], out); err != nil {
				return err
			}

			ui.PrintSuccess("Hidden copy written to " + out)
			return nil
		},
	}

	hideCmd.Flags().StringVarP(&flagHideOutput, "output", "o", "", "hidden output file (default hidden_output)")

	rootCmd.AddCommand(hideCmd)
}
