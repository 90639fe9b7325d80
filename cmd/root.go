package cmd

import (
	"os"

	"github.com/brogergvhs/repolabel/internal/ui"

	"github.com/spf13/cobra"
)

var (
	flagIgnoreConfig bool
	flagDebug        bool
	flagNoCache      bool

	// GitHub access
	flagGitHubUser  string
	flagGitHubToken string
	flagCookie      string
	flagCookieFile  string
	flagUserAgent   string
	flagCFBypass    bool
)

var rootCmd = &cobra.Command{
	Use:           "repolabel",
	Short:         "Collect GitHub READMEs, summarize them and build a labelled summary dataset",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.BoolVar(&flagDebug, "debug", false, "enable debug logging")
	pf.BoolVar(&flagIgnoreConfig, "ignore-config", false, "ignore config and use only CLI flags")
	pf.BoolVar(&flagNoCache, "no-cache", false, "always fetch READMEs from GitHub")

	pf.StringVar(&flagGitHubUser, "github-user", "", "GitHub user for API basic auth (or GITHUB_USER)")
	pf.StringVar(&flagGitHubToken, "github-token", "", "GitHub token for API basic auth (or GITHUB_TOKEN)")
	pf.StringVar(&flagCookie, "cookie", "", "cookie string for github.com pages, e.g. \"key=value; other=123\"")
	pf.StringVar(&flagCookieFile, "cookie-file", "", "path to a text file with cookies (one header line)")
	pf.StringVar(&flagUserAgent, "user-agent", "", "override User-Agent")
	pf.BoolVar(&flagCFBypass, "cf-bypass", false, "use browser-like TLS and headers for github.com pages")
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		ui.PrintError(err.Error())
		os.Exit(1)
	}
}
