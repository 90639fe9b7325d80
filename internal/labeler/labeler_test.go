package labeler

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/brogergvhs/repolabel/internal/dataset"
	"github.com/brogergvhs/repolabel/internal/github"
	"github.com/brogergvhs/repolabel/internal/providers/githubweb"
	"github.com/brogergvhs/repolabel/internal/ui"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const readme = `# fastjson

fastjson is a fast json parser for go.
it parses json documents without reflection.
the parser reuses buffers to keep allocations low.
benchmarks show it beats the standard library parser on large json documents.
see https://example.com/docs for the full documentation.

` + "```go\nv, err := fastjson.Parse(s)\n```" + `

the api exposes typed getters for json values.
`

type fakeReadmes map[string]string

func (f fakeReadmes) Readme(_ context.Context, r github.Repo) (string, error) {
	if s, ok := f[r.Path()]; ok {
		return s, nil
	}
	return "", &github.StatusError{URL: r.Path(), Status: 404}
}

type fakeTopics struct {
	names []string
	err   error
}

func (f fakeTopics) Topics(context.Context, github.Repo) ([]string, error) {
	return f.names, f.err
}

type fakeFinder struct {
	repos []github.Repo
	err   error
	query string
}

func (f *fakeFinder) FindSimilar(_ context.Context, query string, limit int) ([]github.Repo, error) {
	f.query = query
	if f.err != nil {
		return nil, f.err
	}
	if len(f.repos) > limit {
		return f.repos[:limit], nil
	}
	return f.repos, nil
}

func newTestLabeler(input string, topics fakeTopics, finder *fakeFinder, out, logs *bytes.Buffer) *Labeler {
	readmes := fakeReadmes{
		"valyala/fastjson": readme,
		"buger/jsonparser": "jsonparser is a json parser for go. it does not need schemas. it is one of the fastest parsers around.",
		"tidwall/gjson":    "gjson gets json values quickly. it uses a path syntax. results are returned as typed values.",
	}

	return New(Deps{
		Readmes:  readmes,
		Topics:   topics,
		Finder:   finder,
		Prompter: ui.NewLinePrompter(strings.NewReader(input), nil),
		Out:      out,
		Log:      ui.NewLoggerTo(logs, false),
	}, Options{})
}

var fastjson = github.Repo{Owner: "valyala", Name: "fastjson"}

func TestContent(t *testing.T) {
	var out, logs bytes.Buffer
	l := newTestLabeler("", fakeTopics{}, &fakeFinder{}, &out, &logs)

	clean := l.Content(context.Background(), fastjson, false)
	assert.Contains(t, clean, "fastjson is a fast json parser for go.")
	assert.NotContains(t, clean, "https://")
	assert.NotContains(t, clean, "fastjson.Parse")

	sum := l.Content(context.Background(), fastjson, true)
	assert.NotEmpty(t, sum)
	assert.LessOrEqual(t, len(strings.Fields(sum)), len(strings.Fields(clean)))

	missing := l.Content(context.Background(), github.Repo{Owner: "no", Name: "pe"}, true)
	assert.Empty(t, missing)
	assert.Contains(t, logs.String(), "Content was not found")
}

func TestSentences(t *testing.T) {
	var out, logs bytes.Buffer
	l := newTestLabeler("", fakeTopics{}, &fakeFinder{}, &out, &logs)

	got := l.Sentences("one. two – dashes. three. four. five.")
	assert.Equal(t, "one. two  dashes. three. four.", got)
}

func TestGuessTopic_FromAPI(t *testing.T) {
	var out, logs bytes.Buffer
	l := newTestLabeler("", fakeTopics{names: []string{"javascript", "rust"}}, &fakeFinder{}, &out, &logs)

	topic, err := l.GuessTopic(context.Background(), fastjson, "rust")
	require.NoError(t, err)
	assert.Equal(t, "rust", topic)
	assert.NotContains(t, out.String(), "Unable to tag")
}

func TestGuessTopic_AsksUser(t *testing.T) {
	var out, logs bytes.Buffer
	l := newTestLabeler("cli\n\nparser\nexit\n", fakeTopics{err: github.ErrNotFound}, &fakeFinder{}, &out, &logs)

	topic, err := l.GuessTopic(context.Background(), fastjson, "a parser for cli flags")
	require.NoError(t, err)
	assert.Equal(t, "parser", topic)
	assert.Contains(t, out.String(), "Unable to tag")
	assert.Contains(t, out.String(), "Suggestions:")
	assert.Contains(t, out.String(), "parser: 0.4286")
}

func TestGuessTopic_NothingEntered(t *testing.T) {
	for _, input := range []string{"exit\n", ""} {
		var out, logs bytes.Buffer
		l := newTestLabeler(input, fakeTopics{}, &fakeFinder{}, &out, &logs)

		_, err := l.GuessTopic(context.Background(), fastjson, "summary")
		assert.ErrorIs(t, err, ErrNoTopic)
	}
}

func TestUserSummary(t *testing.T) {
	var out, logs bytes.Buffer

	l := newTestLabeler("line one\nline two\nEND\nignored\n", fakeTopics{}, &fakeFinder{}, &out, &logs)
	got, err := l.UserSummary()
	require.NoError(t, err)
	assert.Equal(t, "line one\nline two\n", got)

	l = newTestLabeler("END\n", fakeTopics{}, &fakeFinder{}, &out, &logs)
	got, err = l.UserSummary()
	require.NoError(t, err)
	assert.Empty(t, got)

	l = newTestLabeler("no terminator", fakeTopics{}, &fakeFinder{}, &out, &logs)
	got, err = l.UserSummary()
	require.NoError(t, err)
	assert.Equal(t, "no terminator\n", got)
}

type interruptAfter struct{ answers []string }

func (p *interruptAfter) Ask(string) (string, error) {
	if len(p.answers) == 0 {
		return "", ui.ErrInterrupted
	}
	v := p.answers[0]
	p.answers = p.answers[1:]
	return v, nil
}

func TestBuild_InterruptedAtSummary(t *testing.T) {
	var out, logs bytes.Buffer
	l := newTestLabeler("", fakeTopics{names: []string{"json"}}, &fakeFinder{err: githubweb.ErrNoRepos}, &out, &logs)
	l.prompter = &interruptAfter{answers: []string{"half a summary"}}

	_, err := l.Build(context.Background(), fastjson)
	assert.ErrorIs(t, err, ui.ErrInterrupted)
}

func TestGuessTopic_Interrupted(t *testing.T) {
	var out, logs bytes.Buffer
	l := newTestLabeler("", fakeTopics{}, &fakeFinder{}, &out, &logs)
	l.prompter = &interruptAfter{}

	_, err := l.GuessTopic(context.Background(), fastjson, "summary")
	assert.ErrorIs(t, err, ui.ErrInterrupted)
	assert.NotErrorIs(t, err, ErrNoTopic)
}

func TestSimilarSummary(t *testing.T) {
	var out, logs bytes.Buffer
	finder := &fakeFinder{repos: []github.Repo{
		{Owner: "buger", Name: "jsonparser"},
		{Owner: "tidwall", Name: "gjson"},
		{Owner: "gone", Name: "missing"},
	}}
	l := newTestLabeler("", fakeTopics{}, finder, &out, &logs)

	sum, repos, err := l.SimilarSummary(context.Background(), fastjson, "json")
	require.NoError(t, err)
	assert.Equal(t, "json", finder.query)
	assert.Len(t, repos, 3)
	assert.NotEmpty(t, sum)
	assert.Contains(t, logs.String(), "content was not found")
}

func TestSimilarSummary_ExcludesSource(t *testing.T) {
	var out, logs bytes.Buffer
	finder := &fakeFinder{repos: []github.Repo{
		{Owner: "Valyala", Name: "FastJSON"},
		{Owner: "buger", Name: "jsonparser"},
		{Owner: "tidwall", Name: "gjson"},
	}}
	l := New(Deps{
		Readmes: fakeReadmes{"buger/jsonparser": "jsonparser parses json.", "tidwall/gjson": "gjson gets json values."},
		Topics:  fakeTopics{},
		Finder:  finder,
		Out:     &out,
		Log:     ui.NewLoggerTo(&logs, false),
	}, Options{MaxSimilar: 2})

	_, repos, err := l.SimilarSummary(context.Background(), fastjson, "json")
	require.NoError(t, err)
	assert.Equal(t, []github.Repo{
		{Owner: "buger", Name: "jsonparser"},
		{Owner: "tidwall", Name: "gjson"},
	}, repos)
}

func TestSimilarSummary_OnlySource(t *testing.T) {
	var out, logs bytes.Buffer
	finder := &fakeFinder{repos: []github.Repo{fastjson}}
	l := newTestLabeler("", fakeTopics{}, finder, &out, &logs)

	sum, repos, err := l.SimilarSummary(context.Background(), fastjson, "json")
	require.NoError(t, err)
	assert.Empty(t, sum)
	assert.Empty(t, repos)
}

func TestSimilarSummary_NoRepos(t *testing.T) {
	var out, logs bytes.Buffer
	l := newTestLabeler("", fakeTopics{}, &fakeFinder{err: githubweb.ErrNoRepos}, &out, &logs)

	sum, repos, err := l.SimilarSummary(context.Background(), fastjson, "nothing")
	require.NoError(t, err)
	assert.Empty(t, sum)
	assert.Empty(t, repos)
	assert.Contains(t, logs.String(), "unable to find repos")
}

func TestBuild(t *testing.T) {
	var out, logs bytes.Buffer
	finder := &fakeFinder{repos: []github.Repo{{Owner: "buger", Name: "jsonparser"}}}
	l := newTestLabeler("my own words\nEND\n", fakeTopics{names: []string{"json", "go"}}, finder, &out, &logs)

	e, err := l.Build(context.Background(), fastjson)
	require.NoError(t, err)
	assert.Equal(t, "https://github.com/valyala/fastjson", e.URL)
	require.Len(t, e.Sections, 4)

	bodies := map[dataset.Label]string{}
	for _, s := range e.Sections {
		bodies[s.Label] = s.Body
	}
	assert.Equal(t, "my own words\n", bodies[dataset.LabelSubmitted])
	assert.Contains(t, bodies[dataset.LabelSentences], "fastjson is a fast json parser for go.")
	assert.NotEmpty(t, bodies[dataset.LabelReadme])
	assert.NotEmpty(t, bodies[dataset.LabelSimilar])
	assert.Contains(t, out.String(), "similar: https://github.com/buger/jsonparser")
}

func TestBuild_MissingReadme(t *testing.T) {
	var out, logs bytes.Buffer
	l := newTestLabeler("", fakeTopics{}, &fakeFinder{}, &out, &logs)

	_, err := l.Build(context.Background(), github.Repo{Owner: "no", Name: "pe"})
	assert.True(t, errors.Is(err, github.ErrNotFound))
}
