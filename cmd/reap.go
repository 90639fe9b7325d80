package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/brogergvhs/repolabel/internal/dataset"
	"github.com/brogergvhs/repolabel/internal/reaper"
	"github.com/brogergvhs/repolabel/internal/ui"
	"github.com/brogergvhs/repolabel/internal/util"

	"github.com/spf13/cobra"
)

var (
	flagReapAppend   bool
	flagReapEnd      int
	flagReapRange    string
	flagReapList     string
	flagReapLabelled string
	flagReapHidden   string
	flagReapWorkers  int
)

func init() {
	reapCmd := &cobra.Command{
		Use:   "reap [start-page]",
		Short: "Label every repository with a usable README on the reporeapers result pages",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runReap,
	}

	reapCmd.Flags().BoolVarP(&flagReapAppend, "append", "a", false, "append to the output files instead of truncating them")
	addPageFlags(reapCmd, &flagReapEnd, &flagReapRange, &flagReapList)
	reapCmd.Flags().StringVar(&flagReapLabelled, "labelled", "", "labelled output file (default outputLabelled.txt)")
	reapCmd.Flags().StringVar(&flagReapHidden, "hidden", "", "hidden output file (default outputHidden.txt)")
	reapCmd.Flags().IntVar(&flagReapWorkers, "workers", 0, "parallel README fetches for similar repositories")

	rootCmd.AddCommand(reapCmd)
}

func addPageFlags(c *cobra.Command, end *int, rng, list *string) {
	c.Flags().IntVar(end, "end", reaper.LastPage, "last result page to walk")
	c.Flags().StringVar(rng, "range", "", "walk a range of result pages (e.g. 5-12)")
	c.Flags().StringVar(list, "list", "", "walk specific result pages (e.g. 1,3,5)")
}

func selectPages(args []string, end int, rng, list string) ([]int, error) {
	start := 1
	if len(args) > 0 {
		n, err := strconv.Atoi(args[0])
		if err != nil || n < 1 {
			return nil, fmt.Errorf("start page must be a positive number, got %q", args[0])
		}
		start = n
	}

	pages := reaper.SelectPages(start, end, rng, list)
	if len(pages) == 0 {
		return nil, fmt.Errorf("no pages selected")
	}

	return pages, nil
}

func newReaper(s *session, pm *ui.MPBProgressManager) *reaper.Reaper {
	r := reaper.New(s.client, s.labeler(pm), s.collector, reaper.Options{
		Base:            s.cfg.ReaperBase,
		MinReadmeLength: s.cfg.MinReadmeLength,
	})
	r.SetOutput(os.Stdout)
	r.SetLogger(s.log)
	r.SetProgress(pm)

	return r
}

func runReap(_ *cobra.Command, args []string) error {
	pages, err := selectPages(args, flagReapEnd, flagReapRange, flagReapList)
	if err != nil {
		return err
	}

	opts := baseOptions()
	opts.LabelledOutput = flagReapLabelled
	opts.HiddenOutput = flagReapHidden
	opts.Workers = flagReapWorkers

	s, err := newSession(opts)
	if err != nil {
		return err
	}
	defer s.Close()

	w, err := dataset.Create(s.cfg.LabelledOutput, s.cfg.HiddenOutput, flagReapAppend)
	if err != nil {
		return err
	}

	cleanup := func() {
		_ = w.Close()
		util.RemoveIfEmpty(s.cfg.LabelledOutput)
		util.RemoveIfEmpty(s.cfg.HiddenOutput)
	}
	stop := util.SetupInterruptHandler(cleanup)
	defer stop()

	if err := newReaper(s, nil).Reap(context.Background(), pages, w); err != nil {
		if errors.Is(err, ui.ErrInterrupted) {
			util.Interrupted(cleanup)
		}
		cleanup()
		return err
	}
	if err := w.Close(); err != nil {
		return err
	}

	ui.PrintSuccess(fmt.Sprintf("Entries written to %s and %s", s.cfg.LabelledOutput, s.cfg.HiddenOutput))
	return nil
}
