package githubweb

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/brogergvhs/repolabel/internal/providers"
)

var (
	reExploreLink = regexp.MustCompile(`<a\s+href="(.{1,35})"\s+data-ga-click="Explore, go to repository,`)
	reRepoList    = regexp.MustCompile(`<ul class="repo-list">(.*)</ul>`)
	reSearchURL   = regexp.MustCompile(`&quot;url&quot;:&quot;(https://github\.com/[\w.\-]+/[\w.\-]+)`)

	flatten = strings.NewReplacer("\n", " ", "\r", " ")
)

var topicSelectors = []string{
	`a[data-ga-click*="go to repository"]`,
	`article h3 a.text-bold`,
}

var searchSelectors = []string{
	`ul.repo-list li a.v-align-middle`,
}

// ExtractTopicRepos returns repository paths ("/owner/repo") listed on a
// github.com/topics page, in page order.
func ExtractTopicRepos(body string) []string {
	out := fromSelectors(body, topicSelectors)

	for _, m := range reExploreLink.FindAllStringSubmatch(flatten.Replace(body), -1) {
		out = append(out, m[1])
	}

	return keepRepoPaths(out)
}

// ExtractSearchRepos returns repository paths from a github.com/search
// result page.
func ExtractSearchRepos(body string) []string {
	out := fromSelectors(body, searchSelectors)

	if m := reRepoList.FindStringSubmatch(flatten.Replace(body)); m != nil {
		for _, u := range reSearchURL.FindAllStringSubmatch(m[0], -1) {
			out = append(out, strings.TrimPrefix(u[1], "https://github.com"))
		}
	}

	return keepRepoPaths(out)
}

func fromSelectors(body string, selectors []string) []string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(body))
	if err != nil {
		return nil
	}

	var out []string
	doc.Find(strings.Join(selectors, ", ")).Each(func(_ int, a *goquery.Selection) {
		if href, ok := a.Attr("href"); ok {
			out = append(out, strings.TrimSpace(href))
		}
	})

	return out
}

func keepRepoPaths(paths []string) []string {
	seen := map[string]bool{}
	out := []string{}

	for _, p := range paths {
		p = strings.TrimPrefix(p, "https://github.com")
		if !strings.HasPrefix(p, "/") {
			p = "/" + p
		}
		if !providers.IsRepoPath(p) || seen[p] {
			continue
		}
		seen[p] = true
		out = append(out, p)
	}

	return out
}
