package collector

import (
	"context"
	"errors"
	"sync"

	"github.com/brogergvhs/repolabel/internal/github"
	"github.com/brogergvhs/repolabel/internal/ui"

	"golang.org/x/sync/errgroup"
)

// FetchFunc produces the text collected for one repository.
type FetchFunc func(ctx context.Context, repo github.Repo) (string, error)

type Result struct {
	Repo    github.Repo
	Content string
	Err     error
}

// Found reports whether the fetch succeeded.
func (r Result) Found() bool {
	return r.Err == nil
}

type logger interface {
	Debugf(string, ...any)
	Warnf(string, ...any)
}

type Collector struct {
	workers int
	log     logger
}

func New(workers int, log logger) *Collector {
	if workers < 1 {
		workers = 1
	}

	return &Collector{workers: workers, log: log}
}

type batchState struct {
	mu    sync.Mutex
	done  int
	total int
	bytes int64
}

// Collect runs fetch for every repo on a bounded pool. Results keep the
// order of repos; a failed repo yields an empty Content and its Err. Only
// cancellation of ctx stops the batch early, in which case the remaining
// results carry ctx.Err().
func (c *Collector) Collect(ctx context.Context, repos []github.Repo, fetch FetchFunc, ph *ui.ProgressHandle) []Result {
	results := make([]Result, len(repos))
	for i, r := range repos {
		results[i] = Result{Repo: r}
	}

	st := &batchState{total: len(repos)}
	ph.Update(0, st.total, 0)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(c.workers, max(len(repos), 1)))

	for i := range repos {
		if gctx.Err() != nil {
			results[i].Err = gctx.Err()
			continue
		}

		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				results[i].Err = err
				return err
			}

			content, err := fetch(gctx, repos[i])
			results[i].Content = content
			results[i].Err = err
			if err != nil {
				results[i].Content = ""
				c.report(repos[i], err)
			}

			st.mu.Lock()
			st.done++
			st.bytes += int64(len(content))
			ph.Update(st.done, st.total, st.bytes)
			st.mu.Unlock()

			if ctxErr := ctx.Err(); ctxErr != nil {
				return ctxErr
			}
			return nil
		})
	}

	_ = g.Wait()
	ph.MarkDone()

	return results
}

// Contents returns the collected text of every result, empty for failures.
func Contents(results []Result) []string {
	out := make([]string, len(results))
	for i, r := range results {
		out[i] = r.Content
	}

	return out
}

func (c *Collector) report(repo github.Repo, err error) {
	if c.log == nil || errors.Is(err, context.Canceled) {
		return
	}

	if errors.Is(err, github.ErrNotFound) {
		c.log.Warnf("%s: content was not found\n", repo.Path())
		return
	}

	c.log.Warnf("%s: %v\n", repo.Path(), err)
}
