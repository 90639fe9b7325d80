package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	GitHubUser  string `yaml:"github_user"`
	GitHubToken string `yaml:"github_token"`

	APIBase    string `yaml:"api_base"`
	WebBase    string `yaml:"web_base"`
	ReaperBase string `yaml:"reaper_base"`

	SummaryWords    int `yaml:"summary_words"`
	SentenceCount   int `yaml:"sentence_count"`
	MinReadmeLength int `yaml:"min_readme_length"`
	MaxSimilar      int `yaml:"max_similar"`
	Workers         int `yaml:"workers"`

	SummaryOutput  string `yaml:"summary_output"`
	LabelledOutput string `yaml:"labelled_output"`
	HiddenOutput   string `yaml:"hidden_output"`

	CachePath string        `yaml:"cache_path"`
	CacheTTL  time.Duration `yaml:"cache_ttl"`
	NoCache   bool          `yaml:"no_cache"`

	Cookie     string `yaml:"cookie"`
	CookieFile string `yaml:"cookie_file"`
	UserAgent  string `yaml:"user_agent"`
	CFBypass   bool   `yaml:"cf_bypass"`

	Debug bool `yaml:"debug"`
}

type Options struct {
	IgnoreConfig   bool
	Debug          bool
	NoCache        bool
	GitHubUser     string
	GitHubToken    string
	SummaryWords   int
	MaxSimilar     int
	Workers        int
	SummaryOutput  string
	LabelledOutput string
	HiddenOutput   string
	CachePath      string
	Cookie         string
	CookieFile     string
	UserAgent      string
	CFBypass       bool
}

const (
	DefaultAPIBase    = "https://api.github.com"
	DefaultWebBase    = "https://github.com"
	DefaultReaperBase = "http://reporeapers.github.io/results"
)

func DefaultConfig() *Config {
	return &Config{
		GitHubUser:      "",
		GitHubToken:     "",
		APIBase:         DefaultAPIBase,
		WebBase:         DefaultWebBase,
		ReaperBase:      DefaultReaperBase,
		SummaryWords:    50,
		SentenceCount:   4,
		MinReadmeLength: 250,
		MaxSimilar:      5,
		Workers:         5,
		SummaryOutput:   "summa.txt",
		LabelledOutput:  "outputLabelled.txt",
		HiddenOutput:    "outputHidden.txt",
		CachePath:       "",
		CacheTTL:        24 * time.Hour,
		NoCache:         false,
		Cookie:          "",
		CookieFile:      "",
		UserAgent:       "",
		CFBypass:        false,
		Debug:           false,
	}
}

func SaveYAML(cfg *Config, path string) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0600)
}

func loadYAML(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var c Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, err
	}

	return &c, nil
}

func LoadMerged(opts Options) (*Config, string, error) {
	if opts.IgnoreConfig {
		cfg := DefaultConfig()
		applyEnv(cfg)
		mergeConfig(cfg, opts)
		normalizeDefaults(cfg)
		return cfg, "(ignored config)", nil
	}

	activePath, err := ActiveConfigPath()
	if err == ErrNoConfig || activePath == "" {
		cfg := DefaultConfig()
		applyEnv(cfg)
		mergeConfig(cfg, opts)
		normalizeDefaults(cfg)
		return cfg, "(default config in memory)\nRun `repolabel config init` to create an actual config\n", nil
	}
	if err != nil {
		return nil, "", err
	}

	cfg, err := loadYAML(activePath)
	if err != nil {
		return nil, "", fmt.Errorf("failed to load config %s: %w", activePath, err)
	}

	applyEnv(cfg)
	mergeConfig(cfg, opts)
	normalizeDefaults(cfg)

	return cfg, activePath, nil
}

// applyEnv lets credentials live outside the YAML profile.
func applyEnv(c *Config) {
	if v := strings.TrimSpace(os.Getenv("GITHUB_USER")); v != "" {
		c.GitHubUser = v
	}
	if v := strings.TrimSpace(os.Getenv("GITHUB_TOKEN")); v != "" {
		c.GitHubToken = v
	}
}

func mergeConfig(c *Config, o Options) {
	if o.Debug {
		c.Debug = true
	}
	if o.NoCache {
		c.NoCache = true
	}
	if o.GitHubUser != "" {
		c.GitHubUser = o.GitHubUser
	}
	if o.GitHubToken != "" {
		c.GitHubToken = o.GitHubToken
	}
	if o.SummaryWords != 0 {
		c.SummaryWords = o.SummaryWords
	}
	if o.MaxSimilar != 0 {
		c.MaxSimilar = o.MaxSimilar
	}
	if o.Workers != 0 {
		c.Workers = o.Workers
	}
	if o.SummaryOutput != "" {
		c.SummaryOutput = o.SummaryOutput
	}
	if o.LabelledOutput != "" {
		c.LabelledOutput = o.LabelledOutput
	}
	if o.HiddenOutput != "" {
		c.HiddenOutput = o.HiddenOutput
	}
	if o.CachePath != "" {
		c.CachePath = o.CachePath
	}
	if o.Cookie != "" {
		c.Cookie = o.Cookie
	}
	if o.CookieFile != "" {
		c.CookieFile = o.CookieFile
	}
	if o.UserAgent != "" {
		c.UserAgent = o.UserAgent
	}
	if o.CFBypass {
		c.CFBypass = true
	}
}

func normalizeDefaults(c *Config) {
	def := DefaultConfig()

	if c.APIBase == "" {
		c.APIBase = def.APIBase
	}
	if c.WebBase == "" {
		c.WebBase = def.WebBase
	}
	if c.ReaperBase == "" {
		c.ReaperBase = def.ReaperBase
	}
	c.APIBase = strings.TrimRight(c.APIBase, "/")
	c.WebBase = strings.TrimRight(c.WebBase, "/")
	c.ReaperBase = strings.TrimRight(c.ReaperBase, "/")

	if c.SummaryWords <= 0 {
		c.SummaryWords = def.SummaryWords
	}
	if c.SentenceCount <= 0 {
		c.SentenceCount = def.SentenceCount
	}
	if c.MinReadmeLength <= 0 {
		c.MinReadmeLength = def.MinReadmeLength
	}
	if c.MaxSimilar <= 0 {
		c.MaxSimilar = def.MaxSimilar
	}
	if c.Workers <= 0 {
		c.Workers = def.Workers
	}
	if c.SummaryOutput == "" {
		c.SummaryOutput = def.SummaryOutput
	}
	if c.LabelledOutput == "" {
		c.LabelledOutput = def.LabelledOutput
	}
	if c.HiddenOutput == "" {
		c.HiddenOutput = def.HiddenOutput
	}
	if c.CachePath == "" {
		c.CachePath = DefaultCachePath()
	}
	if c.CacheTTL <= 0 {
		c.CacheTTL = def.CacheTTL
	}
}

func (c *Config) Print() {
	if c.GitHubUser != "" {
		fmt.Printf(" -github_user: %s\n", c.GitHubUser)
	}
	if c.GitHubToken != "" {
		fmt.Printf(" -github_token: %s\n", maskSecret(c.GitHubToken))
	}
	if c.APIBase != DefaultAPIBase {
		fmt.Printf(" -api_base: %s\n", c.APIBase)
	}
	if c.WebBase != DefaultWebBase {
		fmt.Printf(" -web_base: %s\n", c.WebBase)
	}
	if c.ReaperBase != DefaultReaperBase {
		fmt.Printf(" -reaper_base: %s\n", c.ReaperBase)
	}
	fmt.Printf(" -summary_words: %d\n", c.SummaryWords)
	fmt.Printf(" -sentence_count: %d\n", c.SentenceCount)
	fmt.Printf(" -min_readme_length: %d\n", c.MinReadmeLength)
	fmt.Printf(" -max_similar: %d\n", c.MaxSimilar)
	fmt.Printf(" -workers: %d\n", c.Workers)
	if c.SummaryOutput != "" {
		fmt.Printf(" -summary_output: %s\n", c.SummaryOutput)
	}
	if c.LabelledOutput != "" {
		fmt.Printf(" -labelled_output: %s\n", c.LabelledOutput)
	}
	if c.HiddenOutput != "" {
		fmt.Printf(" -hidden_output: %s\n", c.HiddenOutput)
	}
	if c.NoCache {
		fmt.Printf(" -no_cache: %t\n", c.NoCache)
	} else {
		if c.CachePath != "" {
			fmt.Printf(" -cache_path: %s\n", c.CachePath)
		}
		fmt.Printf(" -cache_ttl: %s\n", c.CacheTTL)
	}
	if c.CookieFile != "" {
		fmt.Printf(" -cookie_file: %s\n", c.CookieFile)
	}
	if c.UserAgent != "" {
		fmt.Printf(" -user_agent: %s\n", c.UserAgent)
	}
	if c.CFBypass {
		fmt.Printf(" -cf_bypass: %t\n", c.CFBypass)
	}
	if c.Debug {
		fmt.Printf(" -debug: %t\n", c.Debug)
	}
}

func maskSecret(s string) string {
	if len(s) <= 4 {
		return strings.Repeat("*", len(s))
	}

	return strings.Repeat("*", len(s)-4) + s[len(s)-4:]
}
