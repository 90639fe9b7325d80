// Package labeler builds one dataset entry for a repository: the opening
// README sentences, an automatic README summary, a summary of similar
// repositories and a summary typed in by the user.
package labeler

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/brogergvhs/repolabel/internal/collector"
	"github.com/brogergvhs/repolabel/internal/dataset"
	"github.com/brogergvhs/repolabel/internal/github"
	"github.com/brogergvhs/repolabel/internal/providers"
	"github.com/brogergvhs/repolabel/internal/summarize"
	"github.com/brogergvhs/repolabel/internal/textproc"
	"github.com/brogergvhs/repolabel/internal/ui"
)

type ReadmeSource interface {
	Readme(ctx context.Context, repo github.Repo) (string, error)
}

type TopicSource interface {
	Topics(ctx context.Context, repo github.Repo) ([]string, error)
}

type Options struct {
	SentenceCount int
	SummaryWords  int
	MaxSimilar    int
	// Suggestions is how many RAKE phrases are offered when a repo has no
	// topics.
	Suggestions int
}

func (o *Options) normalize() {
	if o.SentenceCount <= 0 {
		o.SentenceCount = 4
	}
	if o.SummaryWords <= 0 {
		o.SummaryWords = 50
	}
	if o.MaxSimilar <= 0 {
		o.MaxSimilar = 5
	}
	if o.Suggestions <= 0 {
		o.Suggestions = 5
	}
}

type Deps struct {
	Readmes   ReadmeSource
	Topics    TopicSource
	Finder    providers.Finder
	Collector *collector.Collector
	Prompter  ui.Prompter
	Progress  *ui.MPBProgressManager
	Out       io.Writer
	Log       *ui.Logger
}

type Labeler struct {
	readmes   ReadmeSource
	topics    TopicSource
	finder    providers.Finder
	collector *collector.Collector
	prompter  ui.Prompter
	progress  *ui.MPBProgressManager
	out       io.Writer
	log       *ui.Logger
	opts      Options
}

func New(d Deps, opts Options) *Labeler {
	opts.normalize()

	if d.Out == nil {
		d.Out = io.Discard
	}
	if d.Log == nil {
		d.Log = ui.NewLoggerTo(io.Discard, false)
	}
	if d.Collector == nil {
		d.Collector = collector.New(opts.MaxSimilar, d.Log)
	}

	return &Labeler{
		readmes:   d.Readmes,
		topics:    d.Topics,
		finder:    d.Finder,
		collector: d.Collector,
		prompter:  d.Prompter,
		progress:  d.Progress,
		out:       d.Out,
		log:       d.Log,
		opts:      opts,
	}
}

// CleanReadme fetches the README of repo and strips Markdown and HTML
// noise from it.
func (l *Labeler) CleanReadme(ctx context.Context, repo github.Repo) (string, error) {
	raw, err := l.readmes.Readme(ctx, repo)
	if err != nil {
		return "", err
	}

	return textproc.Clean(raw), nil
}

// Content returns the cleaned README, summarized when summarize is set.
// A missing README yields "" and is logged.
func (l *Labeler) Content(ctx context.Context, repo github.Repo, summarize bool) string {
	clean, err := l.CleanReadme(ctx, repo)
	if err != nil {
		l.reportMissing(repo, err)
		return ""
	}

	if summarize {
		return l.Summary(clean)
	}

	return clean
}

// Sentences returns the first sentences of a cleaned README as ASCII.
func (l *Labeler) Sentences(clean string) string {
	return textproc.ASCII(textproc.FirstSentences(clean, l.opts.SentenceCount))
}

// Summary runs the extractive summarizer over a cleaned README.
func (l *Labeler) Summary(clean string) string {
	return textproc.ASCII(summarize.Summarize(clean, l.opts.SummaryWords))
}

// Suggestions returns RAKE keyword phrases for text.
func (l *Labeler) Suggestions(text string) []summarize.Keyword {
	return summarize.Keywords(text, l.opts.Suggestions)
}

// SimilarSummary finds repositories for topic other than source, summarizes
// each README and summarizes the combined text again. Finding nothing is not
// an error: the summary is then empty.
func (l *Labeler) SimilarSummary(ctx context.Context, source github.Repo, topic string) (string, []github.Repo, error) {
	found, err := l.finder.FindSimilar(ctx, topic, l.opts.MaxSimilar+1)
	if err != nil {
		if ctx.Err() != nil {
			return "", nil, ctx.Err()
		}
		l.log.Warnf("similar repos for %q: %v\n", topic, err)
		return "", nil, nil
	}

	repos := providers.Select(found, l.opts.MaxSimilar, source)
	if len(repos) == 0 {
		l.log.Warnf("similar repos for %q: only %s itself was found\n", topic, source.Path())
		return "", nil, nil
	}

	var ph *ui.ProgressHandle
	if l.progress != nil {
		ph = l.progress.Register("similar")
	}

	results := l.collector.Collect(ctx, repos, func(ctx context.Context, r github.Repo) (string, error) {
		clean, err := l.CleanReadme(ctx, r)
		if err != nil {
			return "", err
		}
		return l.Summary(clean), nil
	}, ph)
	if err := ctx.Err(); err != nil {
		return "", repos, err
	}

	var parts []string
	for _, c := range collector.Contents(results) {
		if strings.TrimSpace(c) != "" {
			parts = append(parts, c)
		}
	}

	combined := textproc.ASCII(strings.Join(parts, "\n"))
	return textproc.ASCII(summarize.Summarize(combined, l.opts.SummaryWords)), repos, nil
}

// UserSummary reads summary lines until one is exactly END. Closed input
// ends the summary like END does.
func (l *Labeler) UserSummary() (string, error) {
	lines, err := ui.AskUntil(l.prompter, "Enter your summary (type 'END' to terminate input)", "END", false)
	if err != nil && !errors.Is(err, ui.ErrInputClosed) {
		return "", err
	}
	if len(lines) == 0 {
		return "", nil
	}

	return strings.Join(lines, "\n") + "\n", nil
}

// Build fetches the README of repo and builds its entry.
func (l *Labeler) Build(ctx context.Context, repo github.Repo) (dataset.Entry, error) {
	clean, err := l.CleanReadme(ctx, repo)
	if err != nil {
		l.reportMissing(repo, err)
		return dataset.Entry{}, fmt.Errorf("%s: %w", repo.Path(), err)
	}

	return l.BuildFromReadme(ctx, repo, clean)
}

// BuildFromReadme builds the entry for repo from its cleaned README. The
// returned sections are shuffled.
func (l *Labeler) BuildFromReadme(ctx context.Context, repo github.Repo, clean string) (dataset.Entry, error) {
	sentences := l.Sentences(clean)
	readme := l.Summary(clean)

	topic, err := l.GuessTopic(ctx, repo, readme)
	if err != nil {
		return dataset.Entry{}, err
	}
	fmt.Fprintf(l.out, "Topic: %s\n", topic)

	similar, repos, err := l.SimilarSummary(ctx, repo, topic)
	if err != nil {
		return dataset.Entry{}, err
	}
	for _, r := range repos {
		fmt.Fprintf(l.out, "  similar: %s\n", r.HTMLURL())
	}

	user, err := l.UserSummary()
	if err != nil {
		return dataset.Entry{}, err
	}
	fmt.Fprint(l.out, user)

	e := dataset.NewEntry(repo.HTMLURL(),
		dataset.Section{Label: dataset.LabelSentences, Body: sentences},
		dataset.Section{Label: dataset.LabelReadme, Body: readme},
		dataset.Section{Label: dataset.LabelSimilar, Body: similar},
		dataset.Section{Label: dataset.LabelSubmitted, Body: user},
	)
	e.Shuffle(nil)

	return e, nil
}

func (l *Labeler) reportMissing(repo github.Repo, err error) {
	if errors.Is(err, github.ErrNotFound) {
		l.log.Warnf("%s: Content was not found\n", repo.Path())
		return
	}

	l.log.Warnf("%s: %v\n", repo.Path(), err)
}
