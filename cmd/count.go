package cmd

import (
	"context"
	"fmt"

	"github.com/brogergvhs/repolabel/internal/ui"
	"github.com/brogergvhs/repolabel/internal/util"

	"github.com/spf13/cobra"
)

var (
	flagCountEnd     int
	flagCountRange   string
	flagCountList    string
	flagCountWorkers int
)

func init() {
	countCmd := &cobra.Command{
		Use:   "count [start-page]",
		Short: "Count README availability on the reporeapers result pages",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runCount,
	}

	addPageFlags(countCmd, &flagCountEnd, &flagCountRange, &flagCountList)
	countCmd.Flags().IntVar(&flagCountWorkers, "workers", 0, "parallel README fetches per page")

	rootCmd.AddCommand(countCmd)
}

func runCount(_ *cobra.Command, args []string) error {
	pages, err := selectPages(args, flagCountEnd, flagCountRange, flagCountList)
	if err != nil {
		return err
	}

	opts := baseOptions()
	opts.Workers = flagCountWorkers

	s, err := newSession(opts)
	if err != nil {
		return err
	}
	defer s.Close()

	stop := util.SetupInterruptHandler(nil)
	defer stop()

	pm := ui.NewProgressManager()
	stats, err := newReaper(s, pm).Count(context.Background(), pages)
	pm.Close()
	if err != nil {
		return err
	}

	var total, found, sufficient int64
	for _, p := range stats {
		if p.Stats == nil {
			continue
		}
		total += p.Stats.Total.Load()
		found += p.Stats.Found()
		sufficient += p.Stats.Sufficient.Load()
	}

	fmt.Println()
	ui.PrintHeader("Summary")
	fmt.Printf("Pages:      %d\n", len(stats))
	fmt.Printf("Repos:      %d\n", total)
	fmt.Printf("READMEs:    %d\n", found)
	fmt.Printf("Sufficient: %d\n", sufficient)

	return nil
}
