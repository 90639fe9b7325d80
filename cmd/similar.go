package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/brogergvhs/repolabel/internal/github"
	"github.com/brogergvhs/repolabel/internal/ui"

	"github.com/spf13/cobra"
)

var (
	flagSimilarLimit   int
	flagSimilarSummary bool
)

func init() {
	similarCmd := &cobra.Command{
		Use:   "similar <topic or query>",
		Short: "Find repositories GitHub lists for a topic or search query",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runSimilar,
	}

	similarCmd.Flags().IntVar(&flagSimilarLimit, "limit", 0, "maximum repositories (default max_similar)")
	similarCmd.Flags().BoolVar(&flagSimilarSummary, "summary", true, "summarize each repository's README")

	rootCmd.AddCommand(similarCmd)
}

func runSimilar(_ *cobra.Command, args []string) error {
	opts := baseOptions()
	opts.MaxSimilar = flagSimilarLimit

	s, err := newSession(opts)
	if err != nil {
		return err
	}
	defer s.Close()

	ctx := context.Background()
	query := strings.Join(args, " ")

	repos, err := s.scraper.FindSimilar(ctx, query, s.cfg.MaxSimilar)
	if err != nil {
		return err
	}

	if !flagSimilarSummary {
		for _, r := range repos {
			fmt.Println(r.HTMLURL())
		}
		return nil
	}

	l := s.labeler(nil)
	pm := ui.NewProgressManager()
	results := s.collector.Collect(ctx, repos, func(ctx context.Context, r github.Repo) (string, error) {
		clean, err := l.CleanReadme(ctx, r)
		if err != nil {
			return "", err
		}
		return l.Summary(clean), nil
	}, pm.Register("readmes"))
	pm.Close()

	for _, res := range results {
		ui.PrintHeader(res.Repo.HTMLURL())
		if !res.Found() {
			ui.PrintWarning("Content was not found")
			continue
		}
		fmt.Println(res.Content)
		fmt.Println()
	}

	ui.PrintInfo(fmt.Sprintf("%d repositories", len(results)))
	return nil
}
