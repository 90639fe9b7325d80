package providers

import (
	"strings"

	"github.com/brogergvhs/repolabel/internal/github"
)

// Select de-duplicates repos (case-insensitively), drops any listed in
// exclude and keeps at most limit of them in their original order.
func Select(all []github.Repo, limit int, exclude ...github.Repo) []github.Repo {
	seen := map[string]bool{}
	for _, r := range exclude {
		seen[strings.ToLower(r.Path())] = true
	}

	out := []github.Repo{}
	for _, r := range all {
		key := strings.ToLower(r.Path())
		if seen[key] {
			continue
		}
		seen[key] = true

		out = append(out, r)
		if limit > 0 && len(out) == limit {
			break
		}
	}

	return out
}

// reserved top-level paths on github.com that are never owners.
var reserved = map[string]bool{
	"topics": true, "search": true, "login": true, "signup": true, "explore": true,
	"marketplace": true, "features": true, "about": true, "pricing": true,
	"collections": true, "trending": true, "sponsors": true, "orgs": true,
	"settings": true, "notifications": true, "site": true, "contact": true,
	"enterprise": true, "team": true, "customer-stories": true, "readme": true,
}

// IsRepoPath reports whether a github.com link path looks like /owner/repo.
func IsRepoPath(p string) bool {
	r, err := github.ParsePath(p)
	if err != nil {
		return false
	}

	return !reserved[strings.ToLower(r.Owner)]
}
