package cmd

import (
	"testing"

	"github.com/brogergvhs/repolabel/internal/reaper"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectPages(t *testing.T) {
	pages, err := selectPages(nil, reaper.LastPage, "", "")
	require.NoError(t, err)
	assert.Len(t, pages, reaper.LastPage)

	pages, err = selectPages([]string{"98"}, reaper.LastPage, "", "")
	require.NoError(t, err)
	assert.Equal(t, []int{98, 99}, pages)

	pages, err = selectPages(nil, reaper.LastPage, "", "4,2")
	require.NoError(t, err)
	assert.Equal(t, []int{4, 2}, pages)

	_, err = selectPages([]string{"zero"}, reaper.LastPage, "", "")
	assert.Error(t, err)

	_, err = selectPages(nil, reaper.LastPage, "9-3", "")
	assert.Error(t, err)
}

func TestCommandsRegistered(t *testing.T) {
	want := []string{"label", "reap", "count", "topic", "similar", "summarize", "hide", "cache", "config", "version"}
	for _, name := range want {
		c, _, err := rootCmd.Find([]string{name})
		require.NoError(t, err, name)
		assert.Equal(t, name, c.Name())
	}
}
