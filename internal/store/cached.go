package store

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/brogergvhs/repolabel/internal/github"
)

// ReadmeSource fetches a README from GitHub.
type ReadmeSource interface {
	Readme(ctx context.Context, repo github.Repo) (string, error)
}

type debugLogger interface {
	Debugf(string, ...any)
}

// CachedReadmes serves READMEs from the cache while they are younger than
// TTL, falling back to the wrapped source. Not-found answers are cached too;
// other HTTP errors such as 403 and 429 are not.
type CachedReadmes struct {
	src   ReadmeSource
	store *Store
	ttl   time.Duration
	log   debugLogger
}

func NewCachedReadmes(src ReadmeSource, s *Store, ttl time.Duration, log debugLogger) *CachedReadmes {
	return &CachedReadmes{src: src, store: s, ttl: ttl, log: log}
}

func (c *CachedReadmes) Readme(ctx context.Context, repo github.Repo) (string, error) {
	key := repo.Path()

	e, ok, err := c.store.Get(ctx, key, c.ttl)
	if err != nil {
		c.debugf("cache read %s: %v\n", key, err)
	}
	if ok {
		c.debugf("cache hit %s (status %d)\n", key, e.Status)
		if e.Status != http.StatusOK {
			return "", &github.StatusError{URL: repo.HTMLURL(), Status: e.Status}
		}
		return e.Content, nil
	}

	content, err := c.src.Readme(ctx, repo)

	var se *github.StatusError
	switch {
	case err == nil:
		c.put(ctx, Entry{Repo: key, Status: http.StatusOK, Content: content})
	case errors.As(err, &se) && (se.Status == http.StatusNotFound || se.Status == http.StatusGone):
		c.put(ctx, Entry{Repo: key, Status: se.Status})
	}

	return content, err
}

func (c *CachedReadmes) put(ctx context.Context, e Entry) {
	if err := c.store.Put(ctx, e); err != nil {
		c.debugf("cache write %s: %v\n", e.Repo, err)
	}
}

func (c *CachedReadmes) debugf(format string, args ...any) {
	if c.log != nil {
		c.log.Debugf(format, args...)
	}
}
