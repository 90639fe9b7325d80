package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/brogergvhs/repolabel/internal/github"
	"github.com/brogergvhs/repolabel/internal/similarity"
	"github.com/brogergvhs/repolabel/internal/ui"

	"github.com/spf13/cobra"
)

func init() {
	topicCmd := &cobra.Command{
		Use:   "topic [repo-url]",
		Short: "Rank a repository's GitHub topics against its README summary",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runTopic,
	}

	rootCmd.AddCommand(topicCmd)
}

func runTopic(_ *cobra.Command, args []string) error {
	s, err := newSession(baseOptions())
	if err != nil {
		return err
	}
	defer s.Close()

	repo, err := s.repoArg(args)
	if err != nil {
		return err
	}

	ctx := context.Background()
	l := s.labeler(nil)

	summary := l.Content(ctx, repo, true)

	names, err := s.api.Topics(ctx, repo)
	switch {
	case errors.Is(err, github.ErrNotFound):
		s.log.Debugf("topics: %v\n", err)
	case err != nil:
		return err
	}

	if len(names) > 0 {
		ui.PrintHeader("Topics")
		for _, sc := range similarity.Rank(summary, names) {
			fmt.Printf("  %-30s %.4f\n", sc.Candidate, sc.Value)
		}
	}

	topic, err := l.GuessTopic(ctx, repo, summary)
	if err != nil {
		return err
	}

	ui.PrintSuccess("Topic: " + topic)
	return nil
}
