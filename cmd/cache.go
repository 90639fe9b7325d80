package cmd

import (
	"context"
	"fmt"

	"github.com/brogergvhs/repolabel/internal/config"
	"github.com/brogergvhs/repolabel/internal/store"
	"github.com/brogergvhs/repolabel/internal/ui"
	"github.com/brogergvhs/repolabel/internal/util"

	"github.com/spf13/cobra"
)

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Inspect or clear the README cache",
}

var cacheStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show how many READMEs are cached",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, path, err := openCache()
		if err != nil {
			return err
		}
		defer func() {
			_ = s.Close()
		}()

		st, err := s.Count(context.Background())
		if err != nil {
			return err
		}

		ui.PrintHeader(path)
		fmt.Printf("Entries:   %d\n", st.Total)
		fmt.Printf("READMEs:   %d\n", st.Found)
		fmt.Printf("404:       %d\n", st.NotFound)
		fmt.Printf("Size:      %s\n", util.Human(st.Bytes))
		return nil
	},
}

var cacheClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Drop every cached README",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, path, err := openCache()
		if err != nil {
			return err
		}
		defer func() {
			_ = s.Close()
		}()

		n, err := s.Clear(context.Background())
		if err != nil {
			return err
		}

		ui.PrintSuccess(fmt.Sprintf("Removed %d entries from %s", n, path))
		return nil
	},
}

func openCache() (*store.Store, string, error) {
	cfg, _, err := config.LoadMerged(baseOptions())
	if err != nil {
		return nil, "", err
	}

	s, err := store.Open(cfg.CachePath)
	if err != nil {
		return nil, "", err
	}

	return s, cfg.CachePath, nil
}

func init() {
	cacheCmd.AddCommand(cacheStatsCmd, cacheClearCmd)
	rootCmd.AddCommand(cacheCmd)
}
