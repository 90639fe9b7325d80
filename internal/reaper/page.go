package reaper

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/brogergvhs/repolabel/internal/github"
	"github.com/brogergvhs/repolabel/internal/util"
)

var reAPIURL = regexp.MustCompile(`(https://ap[\w_-]+(?:(?:\.[\w_-]+)+)[\w.,@?^=%&:/~+#-]*[\w@?^=%&/~+#-])`)

// PageURL is the address of result page n.
func PageURL(base string, n int) string {
	return fmt.Sprintf("%s/%d.html", strings.TrimRight(base, "/"), n)
}

// ExtractAPIURLs returns every GitHub API URL on a results page, in order.
func ExtractAPIURLs(html string) []string {
	return reAPIURL.FindAllString(html, -1)
}

// ExtractRepos parses the API URLs on a page into repositories, skipping
// duplicates and anything that is not a repos URL.
func ExtractRepos(html string) []github.Repo {
	seen := map[string]bool{}
	var out []github.Repo

	for _, u := range ExtractAPIURLs(html) {
		r, err := github.ParseAPIURL(u)
		if err != nil {
			continue
		}
		key := strings.ToLower(r.Path())
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, r)
	}

	return out
}

// fetchPage returns the repos listed on page n; ok is false when the page
// does not exist.
func (r *Reaper) fetchPage(ctx context.Context, n int) ([]github.Repo, bool, error) {
	target := PageURL(r.base, n)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, false, err
	}

	resp, err := util.DoWithRetry(r.client, req, 3, 500*time.Millisecond)
	if err != nil {
		if ctx.Err() != nil {
			return nil, false, ctx.Err()
		}
		r.log.Debugf("GET %s: %v\n", target, err)
		return nil, false, nil
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		r.log.Debugf("GET %s: HTTP %d\n", target, resp.StatusCode)
		return nil, false, nil
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, false, fmt.Errorf("read %s: %w", target, err)
	}

	return ExtractRepos(string(body)), true, nil
}
