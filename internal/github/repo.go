package github

import (
	"errors"
	"fmt"
	"strings"
)

var ErrInvalidURL = errors.New("valid GitHub URL not provided")

// Repo addresses a repository as owner/name.
type Repo struct {
	Owner string
	Name  string
}

func (r Repo) Path() string {
	return r.Owner + "/" + r.Name
}

func (r Repo) String() string {
	return r.Path()
}

func (r Repo) HTMLURL() string {
	return "https://github.com/" + r.Path()
}

func (r Repo) ReadmeURL(apiBase string) string {
	return fmt.Sprintf("%s/repos/%s/contents/README.md", strings.TrimRight(apiBase, "/"), r.Path())
}

func (r Repo) TopicsURL(apiBase string) string {
	return fmt.Sprintf("%s/repos/%s/topics", strings.TrimRight(apiBase, "/"), r.Path())
}

// ParseRepoURL finds the first path segment containing "github.com" and
// takes the two segments after it as owner and repo.
func ParseRepoURL(s string) (Repo, error) {
	parts := strings.Split(strings.TrimSpace(s), "/")

	for i, token := range parts {
		if !strings.Contains(token, "github.com") {
			continue
		}
		if i+2 >= len(parts) {
			return Repo{}, ErrInvalidURL
		}

		return newRepo(parts[i+1], parts[i+2])
	}

	return Repo{}, ErrInvalidURL
}

// ParseAPIURL accepts https://api.github.com/repos/{owner}/{repo}[/...].
func ParseAPIURL(s string) (Repo, error) {
	s = strings.TrimSpace(s)
	idx := strings.Index(s, "/repos/")
	if idx < 0 {
		return Repo{}, ErrInvalidURL
	}

	parts := strings.Split(s[idx+len("/repos/"):], "/")
	if len(parts) < 2 {
		return Repo{}, ErrInvalidURL
	}

	return newRepo(parts[0], parts[1])
}

// ParsePath accepts "owner/repo" or "/owner/repo" as found in page links.
func ParsePath(p string) (Repo, error) {
	p = strings.Trim(strings.TrimSpace(p), "/")
	parts := strings.Split(p, "/")
	if len(parts) != 2 {
		return Repo{}, ErrInvalidURL
	}

	return newRepo(parts[0], parts[1])
}

func newRepo(owner, name string) (Repo, error) {
	owner = strings.TrimSpace(owner)
	name = strings.TrimSpace(name)

	if i := strings.IndexAny(name, "?#"); i >= 0 {
		name = name[:i]
	}
	name = strings.TrimSuffix(name, ".git")

	if owner == "" || name == "" {
		return Repo{}, ErrInvalidURL
	}

	return Repo{Owner: owner, Name: name}, nil
}
