package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfiles_Lifecycle(t *testing.T) {
	isolate(t)

	_, err := ActiveConfigPath()
	assert.ErrorIs(t, err, ErrNoConfig)

	defPath, err := InitDefaultConfig()
	require.NoError(t, err)

	_, err = InitDefaultConfig()
	assert.ErrorIs(t, err, os.ErrExist)

	active, err := ActiveConfigPath()
	require.NoError(t, err)
	assert.Equal(t, defPath, active)

	_, err = CreateEmptyConfig("survey")
	require.NoError(t, err)
	_, err = CreateEmptyConfig("survey")
	assert.Error(t, err)

	require.NoError(t, SwitchConfig("survey"))
	label, err := CurrentLabel()
	require.NoError(t, err)
	assert.Equal(t, "survey", label)

	require.NoError(t, RenameConfig("survey", "pilot"))
	label, _ = CurrentLabel()
	assert.Equal(t, "pilot", label)

	list, err := ListConfigs()
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Default", list[0].Label)
	assert.Equal(t, "pilot", list[1].Label)
	assert.True(t, list[1].Active)

	path, err := ConfigPathByLabel("pilot")
	require.NoError(t, err)
	assert.FileExists(t, path)

	switched, err := RemoveConfig("pilot")
	require.NoError(t, err)
	assert.True(t, switched)
	label, _ = CurrentLabel()
	assert.Equal(t, "Default", label)

	_, err = RemoveConfig("Default")
	assert.Error(t, err)
}

func TestSwitchConfig_Missing(t *testing.T) {
	isolate(t)
	assert.Error(t, SwitchConfig("nope"))
	assert.Error(t, SwitchConfig("  "))
}
