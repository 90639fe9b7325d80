package cmd

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/brogergvhs/repolabel/internal/collector"
	"github.com/brogergvhs/repolabel/internal/config"
	"github.com/brogergvhs/repolabel/internal/github"
	"github.com/brogergvhs/repolabel/internal/labeler"
	"github.com/brogergvhs/repolabel/internal/providers/githubweb"
	"github.com/brogergvhs/repolabel/internal/store"
	"github.com/brogergvhs/repolabel/internal/ui"
	"github.com/brogergvhs/repolabel/internal/util"
)

// baseOptions carries the persistent flags; commands fill in their own.
func baseOptions() config.Options {
	return config.Options{
		IgnoreConfig: flagIgnoreConfig,
		Debug:        flagDebug,
		NoCache:      flagNoCache,
		GitHubUser:   flagGitHubUser,
		GitHubToken:  flagGitHubToken,
		Cookie:       flagCookie,
		CookieFile:   flagCookieFile,
		UserAgent:    flagUserAgent,
		CFBypass:     flagCFBypass,
	}
}

// session is everything a command needs to talk to GitHub.
type session struct {
	cfg       *config.Config
	log       *ui.Logger
	client    *http.Client
	api       *github.Client
	readmes   labeler.ReadmeSource
	cache     *store.Store
	scraper   *githubweb.Scraper
	collector *collector.Collector
	prompter  ui.Prompter
}

func newSession(opts config.Options) (*session, error) {
	cfg, usedPath, err := config.LoadMerged(opts)
	if err != nil {
		return nil, err
	}

	logSvc := ui.NewLogger(cfg.Debug)
	if cfg.Debug && usedPath != "" {
		logSvc.Debugf("Config file: %s\n", usedPath)
	}

	client, err := util.NewHTTPClient(util.HTTPClientOptions{
		Timeout:     30 * time.Second,
		UserAgent:   util.PickUserAgent(cfg.UserAgent),
		Cookie:      cfg.Cookie,
		CookieFile:  cfg.CookieFile,
		CFBypass:    cfg.CFBypass,
		DebugLogger: logSvc,
	})
	if err != nil {
		return nil, err
	}

	if cfg.GitHubToken == "" {
		logSvc.Warnf("no GitHub token configured, API requests are rate limited\n")
	}

	api := github.NewClient(client, github.ClientOptions{
		APIBase: cfg.APIBase,
		User:    cfg.GitHubUser,
		Token:   cfg.GitHubToken,
	})

	s := &session{
		cfg:       cfg,
		log:       logSvc,
		client:    client,
		api:       api,
		readmes:   api,
		scraper:   githubweb.NewScraper(client, cfg.WebBase, logSvc),
		collector: collector.New(cfg.Workers, logSvc),
		prompter:  ui.StdPrompter(),
	}

	if !cfg.NoCache {
		cache, err := store.Open(cfg.CachePath)
		if err != nil {
			logSvc.Warnf("README cache disabled: %v\n", err)
		} else {
			s.cache = cache
			s.readmes = store.NewCachedReadmes(api, cache, cfg.CacheTTL, logSvc)
		}
	}

	return s, nil
}

func (s *session) Close() {
	if s.cache != nil {
		if err := s.cache.Close(); err != nil {
			s.log.Warnf("close cache: %v\n", err)
		}
	}
}

func (s *session) labeler(progress *ui.MPBProgressManager) *labeler.Labeler {
	return labeler.New(labeler.Deps{
		Readmes:   s.readmes,
		Topics:    s.api,
		Finder:    s.scraper,
		Collector: s.collector,
		Prompter:  s.prompter,
		Progress:  progress,
		Out:       os.Stdout,
		Log:       s.log,
	}, labeler.Options{
		SentenceCount: s.cfg.SentenceCount,
		SummaryWords:  s.cfg.SummaryWords,
		MaxSimilar:    s.cfg.MaxSimilar,
	})
}

// repoArg parses args[0] or asks for the repository URL.
func (s *session) repoArg(args []string) (github.Repo, error) {
	var raw string
	if len(args) > 0 {
		raw = args[0]
	} else {
		v, err := s.prompter.Ask("Please enter the GitHub repo URL")
		if err != nil {
			return github.Repo{}, err
		}
		raw = v
	}

	repo, err := github.ParseRepoURL(raw)
	if err != nil {
		return github.Repo{}, fmt.Errorf("%q: %w", raw, err)
	}

	return repo, nil
}
