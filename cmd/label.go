package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/brogergvhs/repolabel/internal/dataset"
	"github.com/brogergvhs/repolabel/internal/ui"
	"github.com/brogergvhs/repolabel/internal/util"

	"github.com/spf13/cobra"
)

var (
	flagLabelOutput string
	flagLabelHidden string
	flagLabelAppend bool
	flagLabelWords  int
)

func init() {
	labelCmd := &cobra.Command{
		Use:   "label [repo-url]",
		Short: "Build one labelled summary entry for a repository",
		Long: "Writes the first README sentences, a README summary, a summary of similar\n" +
			"repositories and your own summary, in shuffled order, to the output file.",
		Args: cobra.MaximumNArgs(1),
		RunE: runLabel,
	}

	labelCmd.Flags().StringVarP(&flagLabelOutput, "output", "o", "", "labelled output file (default summa.txt)")
	labelCmd.Flags().StringVar(&flagLabelHidden, "hidden", "", "also write the entry with anonymised labels to this file")
	labelCmd.Flags().BoolVarP(&flagLabelAppend, "append", "a", false, "append to the output files instead of truncating them")
	labelCmd.Flags().IntVar(&flagLabelWords, "words", 0, "summary length in words")

	rootCmd.AddCommand(labelCmd)
}

func runLabel(_ *cobra.Command, args []string) error {
	opts := baseOptions()
	opts.SummaryOutput = flagLabelOutput
	opts.SummaryWords = flagLabelWords

	s, err := newSession(opts)
	if err != nil {
		return err
	}
	defer s.Close()

	repo, err := s.repoArg(args)
	if err != nil {
		return err
	}

	w, err := dataset.Create(s.cfg.SummaryOutput, flagLabelHidden, flagLabelAppend)
	if err != nil {
		return err
	}

	cleanup := func() {
		_ = w.Close()
		util.RemoveIfEmpty(s.cfg.SummaryOutput)
		if flagLabelHidden != "" {
			util.RemoveIfEmpty(flagLabelHidden)
		}
	}
	stop := util.SetupInterruptHandler(cleanup)
	defer stop()

	ui.PrintHeader(repo.HTMLURL())

	entry, err := s.labeler(nil).Build(context.Background(), repo)
	if errors.Is(err, ui.ErrInterrupted) {
		util.Interrupted(cleanup)
	}
	if err != nil {
		cleanup()
		return err
	}

	if err := w.Write(entry); err != nil {
		_ = w.Close()
		return err
	}
	if err := w.Close(); err != nil {
		return err
	}

	ui.PrintSuccess(fmt.Sprintf("Entry %s written to %s", entry.ID, s.cfg.SummaryOutput))
	return nil
}
