package githubweb

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/brogergvhs/repolabel/internal/github"
	"github.com/brogergvhs/repolabel/internal/providers"
	"github.com/brogergvhs/repolabel/internal/util"
)

var ErrNoRepos = errors.New("unable to find repos with this topic")

type logger interface {
	Debugf(string, ...any)
}

type Scraper struct {
	client  *http.Client
	webBase string
	log     logger
}

func NewScraper(c *http.Client, webBase string, log logger) *Scraper {
	if webBase == "" {
		webBase = "https://github.com"
	}

	return &Scraper{
		client:  c,
		webBase: strings.TrimRight(webBase, "/"),
		log:     log,
	}
}

var _ providers.Finder = (*Scraper)(nil)

// FindSimilar tries the topic page for query first and falls back to a
// repository search when the topic page lists nothing.
func (s *Scraper) FindSimilar(ctx context.Context, query string, limit int) ([]github.Repo, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, ErrNoRepos
	}

	repos, err := s.TopicRepos(ctx, query)
	if err != nil {
		return nil, err
	}
	s.debugf("topic page %q: %d repos\n", query, len(repos))

	if len(repos) == 0 {
		repos, err = s.SearchRepos(ctx, query)
		if err != nil {
			return nil, err
		}
		s.debugf("search page %q: %d repos\n", query, len(repos))
	}

	repos = providers.Select(repos, limit)
	if len(repos) == 0 {
		return nil, ErrNoRepos
	}

	return repos, nil
}

func (s *Scraper) TopicRepos(ctx context.Context, query string) ([]github.Repo, error) {
	body, ok, err := s.fetchBody(ctx, s.webBase+"/topics/"+url.PathEscape(query))
	if err != nil || !ok {
		return nil, err
	}

	return toRepos(ExtractTopicRepos(body)), nil
}

func (s *Scraper) SearchRepos(ctx context.Context, query string) ([]github.Repo, error) {
	body, ok, err := s.fetchBody(ctx, s.webBase+"/search?q="+queryEscape(query))
	if err != nil || !ok {
		return nil, err
	}

	return toRepos(ExtractSearchRepos(body)), nil
}

// fetchBody returns ok=false for any non-200 page; only transport and
// context errors are reported as errors.
func (s *Scraper) fetchBody(ctx context.Context, target string) (string, bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return "", false, err
	}
	req.Header.Set("Accept", "text/html,application/xhtml+xml")

	resp, err := util.DoWithRetry(s.client, req, 3, 500*time.Millisecond)
	if err != nil {
		if ctx.Err() != nil {
			return "", false, ctx.Err()
		}
		s.debugf("GET %s failed: %v\n", target, err)
		return "", false, nil
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		s.debugf("GET %s: HTTP %d\n", target, resp.StatusCode)
		return "", false, nil
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", false, fmt.Errorf("read %s: %w", target, err)
	}

	return string(data), true, nil
}

func (s *Scraper) debugf(format string, args ...any) {
	if s.log != nil {
		s.log.Debugf(format, args...)
	}
}

// queryEscape encodes spaces as %20 rather than "+".
func queryEscape(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

func toRepos(paths []string) []github.Repo {
	out := make([]github.Repo, 0, len(paths))
	for _, p := range paths {
		if r, err := github.ParsePath(p); err == nil {
			out = append(out, r)
		}
	}

	return out
}
