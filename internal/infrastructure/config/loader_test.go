package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetDefaults(t *testing.T) {
	mgr := &Manager{viper: viper.New()}
	mgr.setDefaults()

	assert.InDelta(t, 0.5, mgr.viper.GetFloat64("layout.gap"), 1e-9)
	assert.Equal(t, "New Tile", mgr.viper.GetString("tiles.default_title"))
	assert.Equal(t, "info", mgr.viper.GetString("logging.level"))
	assert.False(t, mgr.viper.GetBool("debug.validate_tree"))
	assert.Equal(t, "#4ade80", mgr.viper.GetString("appearance.palette.accent"))
}

func TestLoad_CreatesDefaultConfig(t *testing.T) {
	dir := t.TempDir()
	mgr, err := NewManagerInDir(dir)
	require.NoError(t, err)

	require.NoError(t, mgr.Load())

	assert.FileExists(t, filepath.Join(dir, "config.toml"))
	assert.Equal(t, DefaultConfig(), mgr.Get())
}

func TestLoad_ReadsFileAndEnv(t *testing.T) {
	dir := t.TempDir()
	content := `
[layout]
  gap = 1.5

[tiles]
  default_title = "Shell"

[debug]
  validate_tree = true
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(content), filePerm))
	t.Setenv("TILER_LOG_LEVEL", "DEBUG")

	mgr, err := NewManagerInDir(dir)
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	cfg := mgr.Get()
	assert.InDelta(t, 1.5, cfg.Layout.Gap, 1e-9)
	assert.Equal(t, "Shell", cfg.Tiles.DefaultTitle)
	assert.True(t, cfg.Debug.ValidateTree)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, DefaultPalette(), cfg.Appearance.Palette)
}

func TestLoad_RejectsInvalidValues(t *testing.T) {
	dir := t.TempDir()
	content := "[layout]\n  gap = 9.0\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(content), filePerm))

	mgr, err := NewManagerInDir(dir)
	require.NoError(t, err)

	err = mgr.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "layout.gap")
}

func TestSave_RoundTripsThroughFile(t *testing.T) {
	dir := t.TempDir()
	mgr, err := NewManagerInDir(dir)
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	cfg := mgr.Get()
	cfg.Layout.Gap = 2
	cfg.Appearance.Palette.Accent = "#ff00ff"
	require.NoError(t, mgr.Save(cfg))

	other, err := NewManagerInDir(dir)
	require.NoError(t, err)
	require.NoError(t, other.Load())
	assert.InDelta(t, 2, other.Get().Layout.Gap, 1e-9)
	assert.Equal(t, "#ff00ff", other.Get().Appearance.Palette.Accent)
}

func TestGet_ReturnsCopy(t *testing.T) {
	mgr, err := NewManagerInDir(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	mgr.Get().Layout.Gap = 4

	assert.InDelta(t, 0.5, mgr.Get().Layout.Gap, 1e-9)
}

func TestNormalizeConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Logging.Level = " Warning "
	cfg.Logging.Format = ""
	cfg.Appearance.Palette.Border = ""

	normalizeConfig(cfg)

	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
	assert.Equal(t, DefaultPalette().Border, cfg.Appearance.Palette.Border)
}

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "defaults", mutate: func(*Config) {}},
		{name: "negative gap", mutate: func(c *Config) { c.Layout.Gap = -1 }, wantErr: "layout.gap"},
		{name: "empty title", mutate: func(c *Config) { c.Tiles.DefaultTitle = "  " }, wantErr: "tiles.default_title"},
		{name: "bad level", mutate: func(c *Config) { c.Logging.Level = "loud" }, wantErr: "logging.level"},
		{name: "bad format", mutate: func(c *Config) { c.Logging.Format = "xml" }, wantErr: "logging.format"},
		{name: "bad colour", mutate: func(c *Config) { c.Appearance.Palette.Text = "white" }, wantErr: "appearance.palette.text"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)

			err := validateConfig(cfg)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestEncodeConfig(t *testing.T) {
	data, err := EncodeConfig(DefaultConfig())
	require.NoError(t, err)

	assert.Contains(t, string(data), "[layout]")
	assert.Regexp(t, `default_title = ['"]New Tile['"]`, string(data))

	_, err = EncodeConfig(nil)
	assert.Error(t, err)
}

func TestGenerateSchema(t *testing.T) {
	data, err := GenerateSchema()
	require.NoError(t, err)

	var schema map[string]any
	require.NoError(t, json.Unmarshal(data, &schema))
	assert.Equal(t, "Tiler Configuration", schema["title"])

	props, ok := schema["properties"].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, props, "layout")
	assert.Contains(t, props, "debug")
}
