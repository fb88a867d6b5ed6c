package styles

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bnema/tiler/internal/domain/build"
	"github.com/bnema/tiler/internal/infrastructure/config"
)

func TestAboutRenderer_ShowsEngineSettings(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Layout.Gap = 1.25
	cfg.Tiles.DefaultTitle = "Scratch"
	cfg.Debug.ValidateTree = true

	out := NewAboutRenderer(NewTheme(cfg)).Render(
		build.Info{Version: "v1.2.3", Commit: "abc123"},
		cfg,
		"/tmp/tiler/config.toml",
	)

	for _, want := range []string{"v1.2.3", "abc123", "1.25%", "Scratch", "true", "/tmp/tiler/config.toml", build.RepoURL()} {
		assert.Contains(t, out, want)
	}
}

func TestAboutRenderer_NilConfigUsesDefaults(t *testing.T) {
	out := NewAboutRenderer(NewTheme(nil)).Render(build.Info{}, nil, "")

	assert.Contains(t, out, "0.50%")
	assert.Contains(t, out, config.DefaultConfig().Tiles.DefaultTitle)
	assert.NotContains(t, out, "Config")
}
