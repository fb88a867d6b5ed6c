package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetXDGDirs_HonoursEnvironment(t *testing.T) {
	base := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(base, "cfg"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(base, "data"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(base, "state"))

	dirs, err := GetXDGDirs()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(base, "cfg", "tiler"), dirs.ConfigHome)
	assert.Equal(t, filepath.Join(base, "state", "tiler"), dirs.StateHome)

	file, err := GetConfigFile()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(base, "cfg", "tiler", "config.toml"), file)

	logFile, err := GetLogFile()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(base, "state", "tiler", "tiler.log"), logFile)

	man, err := GetManDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(base, "data", "man", "man1"), man)
}
