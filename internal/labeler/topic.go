package labeler

import (
	"context"
	"errors"
	"fmt"

	"github.com/brogergvhs/repolabel/internal/github"
	"github.com/brogergvhs/repolabel/internal/similarity"
	"github.com/brogergvhs/repolabel/internal/ui"
)

var ErrNoTopic = errors.New("no topic entered for this repo")

// GuessTopic picks the GitHub topic of repo closest to summary. Without
// topics the user is shown keyword suggestions and asked for candidates
// until "exit"; the closest entered candidate wins.
func (l *Labeler) GuessTopic(ctx context.Context, repo github.Repo, summary string) (string, error) {
	names, err := l.topics.Topics(ctx, repo)
	if err != nil {
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		l.log.Debugf("topics for %s: %v\n", repo.Path(), err)
	}

	if best, ok := similarity.Best(summary, names); ok {
		return best, nil
	}

	fmt.Fprintln(l.out, "Unable to tag")
	if kws := l.Suggestions(summary); len(kws) > 0 {
		fmt.Fprintln(l.out, "Suggestions:")
		for _, k := range kws {
			fmt.Fprintf(l.out, "  %s (%.2f)\n", k.Phrase, k.Score)
		}
	}

	entered, err := ui.AskUntil(l.prompter, "Enter a topic for this repo or 'exit' to submit current suggestions", "exit", true)
	if err != nil && !errors.Is(err, ui.ErrInputClosed) {
		return "", err
	}

	scores := similarity.Rank(summary, entered)
	if len(scores) == 0 {
		return "", ErrNoTopic
	}
	for _, s := range scores {
		fmt.Fprintf(l.out, "  %s: %.4f\n", s.Candidate, s.Value)
	}

	return scores[0].Candidate, nil
}
