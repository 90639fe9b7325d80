package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/brogergvhs/repolabel/internal/config"
	"github.com/brogergvhs/repolabel/internal/ui"

	"github.com/spf13/cobra"
)

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the Default config",
	RunE: func(cmd *cobra.Command, args []string) error {
		defaultPath := filepath.Join(config.ConfigsDir(), "Default.yaml")

		if _, err := os.Stat(defaultPath); err == nil {
			fmt.Println("Configuration already exists at:")
			fmt.Println("  ", defaultPath)
			fmt.Println("Use `repolabel config reset` to recreate it.")
			return nil
		}

		fmt.Println("Configuration file will be saved at:")
		fmt.Println("  ", defaultPath)
		fmt.Println()

		fmt.Println("Default configuration:")
		config.DefaultConfig().Print()
		fmt.Println()

		if !ui.Confirm(ui.StdPrompter(), "Create Default config at "+defaultPath+"?") {
			fmt.Println("Aborted.")
			return nil
		}

		path, err := config.InitDefaultConfig()
		if err != nil && !errors.Is(err, os.ErrExist) {
			return fmt.Errorf("failed to write config file: %w", err)
		}

		fmt.Println("Config created at:", path)
		fmt.Println("This config is now active (label: Default).")
		fmt.Println("Set github_user and github_token, or export GITHUB_USER and GITHUB_TOKEN.")

		return nil
	},
}

func init() {
	configCmd.AddCommand(configInitCmd)
}
