package cmd

import (
	"context"
	"fmt"

	"github.com/brogergvhs/repolabel/internal/ui"

	"github.com/spf13/cobra"
)

var flagSummarizeWords int

func init() {
	summarizeCmd := &cobra.Command{
		Use:   "summarize [repo-url]",
		Short: "Print the opening sentences, summary and keywords of a README",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runSummarize,
	}

	summarizeCmd.Flags().IntVar(&flagSummarizeWords, "words", 0, "summary length in words")

	rootCmd.AddCommand(summarizeCmd)
}

func runSummarize(_ *cobra.Command, args []string) error {
	opts := baseOptions()
	opts.SummaryWords = flagSummarizeWords

	s, err := newSession(opts)
	if err != nil {
		return err
	}
	defer s.Close()

	repo, err := s.repoArg(args)
	if err != nil {
		return err
	}

	l := s.labeler(nil)
	clean, err := l.CleanReadme(context.Background(), repo)
	if err != nil {
		return fmt.Errorf("%s: %w", repo.Path(), err)
	}

	ui.PrintHeader("Sentences")
	fmt.Println(l.Sentences(clean))
	fmt.Println()

	summary := l.Summary(clean)
	ui.PrintHeader("Summary")
	fmt.Println(summary)
	fmt.Println()

	ui.PrintHeader("Keywords")
	for _, k := range l.Suggestions(summary) {
		ui.PrintDetail(fmt.Sprintf("  %-30s %.2f", k.Phrase, k.Score))
	}

	return nil
}
