// Package reaper walks the reporeapers result pages, either labelling every
// repository with a usable README or only counting README availability.
package reaper

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"unicode/utf8"

	"github.com/brogergvhs/repolabel/internal/collector"
	"github.com/brogergvhs/repolabel/internal/dataset"
	"github.com/brogergvhs/repolabel/internal/github"
	"github.com/brogergvhs/repolabel/internal/labeler"
	"github.com/brogergvhs/repolabel/internal/ui"
)

type Options struct {
	Base string
	// MinReadmeLength is the number of runes a cleaned README must exceed
	// to be labelled.
	MinReadmeLength int
}

type Reaper struct {
	client    *http.Client
	base      string
	minLen    int
	labeler   *labeler.Labeler
	collector *collector.Collector
	progress  *ui.MPBProgressManager
	out       io.Writer
	log       *ui.Logger
}

func New(c *http.Client, l *labeler.Labeler, col *collector.Collector, opts Options) *Reaper {
	if opts.MinReadmeLength <= 0 {
		opts.MinReadmeLength = 250
	}

	return &Reaper{
		client:    c,
		base:      opts.Base,
		minLen:    opts.MinReadmeLength,
		labeler:   l,
		collector: col,
		out:       io.Discard,
		log:       ui.NewLoggerTo(io.Discard, false),
	}
}

// SetOutput sets where page headers and per-repo results are printed.
func (r *Reaper) SetOutput(w io.Writer) {
	r.out = w
}

func (r *Reaper) SetLogger(l *ui.Logger) {
	r.log = l
}

// SetProgress attaches a progress manager used while counting.
func (r *Reaper) SetProgress(pm *ui.MPBProgressManager) {
	r.progress = pm
}

// Sufficient reports whether a cleaned README is long enough to label.
func (r *Reaper) Sufficient(clean string) bool {
	return utf8.RuneCountInString(clean) > r.minLen
}

// Reap labels every repository on pages, writing one entry per repository
// with a sufficient README. It stops at the first write error or when ctx
// is cancelled.
func (r *Reaper) Reap(ctx context.Context, pages []int, w *dataset.Writer) error {
	for _, n := range pages {
		if err := ctx.Err(); err != nil {
			return err
		}

		fmt.Fprintf(r.out, "\n PAGE: %d\n\n", n)

		repos, ok, err := r.fetchPage(ctx, n)
		if err != nil {
			return err
		}
		if !ok {
			fmt.Fprintln(r.out, "Content was not found")
			continue
		}

		r.log.Infof("page %d: %d repos\n", n, len(repos))
		for _, repo := range repos {
			if err := r.reapRepo(ctx, repo, w); err != nil {
				return err
			}
		}
	}

	return nil
}

func (r *Reaper) reapRepo(ctx context.Context, repo github.Repo, w *dataset.Writer) error {
	log := r.log.With("repo", repo.Path())

	clean, err := r.labeler.CleanReadme(ctx, repo)
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		log.Debugf("readme: %v\n", err)
		fmt.Fprintln(r.out, "Content was not found")
		return nil
	}

	if !r.Sufficient(clean) {
		fmt.Fprintln(r.out, "Content found but is not sufficient")
		return nil
	}

	fmt.Fprintln(r.out, repo.HTMLURL())

	entry, err := r.labeler.BuildFromReadme(ctx, repo, clean)
	if errors.Is(err, labeler.ErrNoTopic) {
		log.Warnf("skipped: %v\n", err)
		return nil
	}
	if err != nil {
		return err
	}

	return w.Write(entry)
}

// PageStats is the README tally for one results page.
type PageStats struct {
	Page  int
	Found bool
	Stats *ui.Stats
}

// Count tallies README availability on every page and prints the numbers
// per page. READMEs within a page are fetched concurrently.
func (r *Reaper) Count(ctx context.Context, pages []int) ([]PageStats, error) {
	var out []PageStats

	for _, n := range pages {
		if err := ctx.Err(); err != nil {
			return out, err
		}

		fmt.Fprintf(r.out, "\n PAGE: %d\n\n", n)

		repos, ok, err := r.fetchPage(ctx, n)
		if err != nil {
			return out, err
		}
		if !ok {
			fmt.Fprintln(r.out, "Content was not found")
			out = append(out, PageStats{Page: n})
			continue
		}

		var ph *ui.ProgressHandle
		if r.progress != nil {
			ph = r.progress.Register(fmt.Sprintf("page %d", n))
		}

		results := r.collector.Collect(ctx, repos, r.labeler.CleanReadme, ph)
		if err := ctx.Err(); err != nil {
			return out, err
		}

		st := &ui.Stats{}
		for _, res := range results {
			st.Total.Add(1)
			switch {
			case !res.Found():
				st.NotFound.Add(1)
			case r.Sufficient(res.Content):
				st.Sufficient.Add(1)
			default:
				st.Short.Add(1)
			}
		}

		st.Print(r.out)
		out = append(out, PageStats{Page: n, Found: true, Stats: st})
	}

	return out, nil
}
