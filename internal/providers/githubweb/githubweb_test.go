package githubweb

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/brogergvhs/repolabel/internal/github"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const topicPage = `<html><body>
<article class="border rounded">
  <h3 class="f3 color-fg-muted text-normal lh-condensed">
    <a href="/ldionne">ldionne</a> /
    <a href="/ldionne/dyno" class="text-bold wb-break-word">dyno</a>
  </h3>
</article>
<article class="border rounded">
  <h3><a href="/boost-ext/te" class="text-bold">te</a></h3>
</article>
<a         href="/foonathan/type_safe"         data-ga-click="Explore, go to repository, location:explore feed">type_safe</a>
<a href="/topics/cpp">cpp</a>
<a href="/ldionne/dyno/stargazers">stars</a>
</body></html>`

const searchPage = `<html><body>
<ul class="repo-list">
  <li class="repo-list-item">
    <a class="v-align-middle" data-hydro-click="{&quot;event_type&quot;:&quot;search_result.click&quot;,&quot;payload&quot;:{&quot;url&quot;:&quot;https://github.com/dtolnay/dyn-clone&quot;}}" href="/dtolnay/dyn-clone">dtolnay/dyn-clone</a>
  </li>
  <li class="repo-list-item">
    <div data-hydro-click="{&quot;url&quot;:&quot;https://github.com/mcmah/poly&quot;}"></div>
  </li>
</ul>
</body></html>`

func TestExtractTopicRepos(t *testing.T) {
	got := ExtractTopicRepos(topicPage)
	assert.Equal(t, []string{"/ldionne/dyno", "/boost-ext/te", "/foonathan/type_safe"}, got)
}

func TestExtractSearchRepos(t *testing.T) {
	got := ExtractSearchRepos(searchPage)
	assert.Equal(t, []string{"/dtolnay/dyn-clone", "/mcmah/poly"}, got)

	assert.Empty(t, ExtractSearchRepos("<html><body>nothing</body></html>"))
}

func TestFindSimilar_TopicPage(t *testing.T) {
	var searched bool
	mux := http.NewServeMux()
	mux.HandleFunc("/topics/type-erasure", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(topicPage))
	})
	mux.HandleFunc("/search", func(w http.ResponseWriter, r *http.Request) {
		searched = true
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	s := NewScraper(srv.Client(), srv.URL, nil)
	repos, err := s.FindSimilar(context.Background(), "type-erasure", 2)
	require.NoError(t, err)
	assert.Equal(t, []github.Repo{{Owner: "ldionne", Name: "dyno"}, {Owner: "boost-ext", Name: "te"}}, repos)
	assert.False(t, searched)
}

func TestFindSimilar_FallsBackToSearch(t *testing.T) {
	var gotQuery string
	mux := http.NewServeMux()
	mux.HandleFunc("/topics/", func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	})
	mux.HandleFunc("/search", func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		_, _ = w.Write([]byte(searchPage))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	s := NewScraper(srv.Client(), srv.URL, nil)
	repos, err := s.FindSimilar(context.Background(), "dynamic clone", 5)
	require.NoError(t, err)
	assert.Equal(t, "q=dynamic%20clone", gotQuery)
	require.Len(t, repos, 2)
	assert.Equal(t, "dtolnay/dyn-clone", repos[0].Path())
}

func TestFindSimilar_NoRepos(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<html></html>"))
	}))
	defer srv.Close()

	s := NewScraper(srv.Client(), srv.URL, nil)
	_, err := s.FindSimilar(context.Background(), "nothing", 5)
	assert.ErrorIs(t, err, ErrNoRepos)

	_, err = s.FindSimilar(context.Background(), "  ", 5)
	assert.ErrorIs(t, err, ErrNoRepos)
}
