package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("APPDATA", "")
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("GITHUB_USER", "")
	t.Setenv("GITHUB_TOKEN", "")
	return dir
}

func TestLoadMerged_NoProfileUsesDefaults(t *testing.T) {
	isolate(t)

	cfg, used, err := LoadMerged(Options{})
	require.NoError(t, err)
	assert.Contains(t, used, "default config in memory")
	assert.Equal(t, 50, cfg.SummaryWords)
	assert.Equal(t, 4, cfg.SentenceCount)
	assert.Equal(t, 250, cfg.MinReadmeLength)
	assert.Equal(t, 5, cfg.MaxSimilar)
	assert.Equal(t, DefaultAPIBase, cfg.APIBase)
	assert.Equal(t, DefaultCachePath(), cfg.CachePath)
	assert.Equal(t, 24*time.Hour, cfg.CacheTTL)
}

func TestLoadMerged_FlagsOverrideProfile(t *testing.T) {
	isolate(t)

	path, err := InitDefaultConfig()
	require.NoError(t, err)

	def := DefaultConfig()
	def.GitHubUser = "octocat"
	def.SummaryWords = 80
	def.WebBase = "https://example.test/"
	require.NoError(t, SaveYAML(def, path))

	cfg, used, err := LoadMerged(Options{SummaryWords: 30, Debug: true})
	require.NoError(t, err)
	assert.Equal(t, path, used)
	assert.Equal(t, "octocat", cfg.GitHubUser)
	assert.Equal(t, 30, cfg.SummaryWords)
	assert.Equal(t, "https://example.test", cfg.WebBase)
	assert.True(t, cfg.Debug)
}

func TestLoadMerged_EnvCredentials(t *testing.T) {
	isolate(t)
	t.Setenv("GITHUB_USER", "env-user")
	t.Setenv("GITHUB_TOKEN", "env-token")

	cfg, _, err := LoadMerged(Options{IgnoreConfig: true})
	require.NoError(t, err)
	assert.Equal(t, "env-user", cfg.GitHubUser)
	assert.Equal(t, "env-token", cfg.GitHubToken)

	cfg, _, err = LoadMerged(Options{IgnoreConfig: true, GitHubToken: "flag-token"})
	require.NoError(t, err)
	assert.Equal(t, "flag-token", cfg.GitHubToken)
}

func TestSaveYAML_DurationRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "c.yaml")

	def := DefaultConfig()
	def.CacheTTL = 90 * time.Minute
	require.NoError(t, SaveYAML(def, path))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "cache_ttl: 1h30m0s")

	got, err := loadYAML(path)
	require.NoError(t, err)
	assert.Equal(t, 90*time.Minute, got.CacheTTL)
}

func TestMaskSecret(t *testing.T) {
	assert.Equal(t, "***", maskSecret("abc"))
	assert.Equal(t, "****5678", maskSecret("12345678"))
}
