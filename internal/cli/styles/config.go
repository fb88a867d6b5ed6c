package styles

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/tiler/internal/infrastructure/config"
)

// ConfigRenderer renders config status messages with styled output.
type ConfigRenderer struct {
	theme *Theme
}

// NewConfigRenderer creates a new config renderer with the given theme.
func NewConfigRenderer(theme *Theme) *ConfigRenderer {
	return &ConfigRenderer{theme: theme}
}

// RenderConfigPath renders the config file location.
func (r *ConfigRenderer) RenderConfigPath(path string) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)
	pathStyle := r.theme.Subtle

	return fmt.Sprintf("\n  %s Config %s\n", iconStyle.Render(IconConfig), pathStyle.Render(path))
}

// RenderSummary renders the effective configuration values.
func (r *ConfigRenderer) RenderSummary(path string, cfg *config.Config) string {
	keyStyle := r.theme.Subtle
	valStyle := r.theme.Highlight
	line := func(k string, v any) string {
		return fmt.Sprintf("    %s %s", keyStyle.Render(fmt.Sprintf("%-24s", k)), valStyle.Render(fmt.Sprint(v)))
	}

	swatch := func(hex string) string {
		return lipgloss.NewStyle().Foreground(lipgloss.Color(hex)).Render("██") + " " + hex
	}

	p := cfg.Appearance.Palette
	lines := []string{
		r.RenderConfigPath(path),
		line("layout.gap", cfg.Layout.Gap),
		line("tiles.default_title", cfg.Tiles.DefaultTitle),
		line("logging.level", cfg.Logging.Level),
		line("logging.format", cfg.Logging.Format),
		line("debug.validate_tree", cfg.Debug.ValidateTree),
		"",
		fmt.Sprintf("    %s %s", keyStyle.Render(fmt.Sprintf("%-24s", "palette.accent")), swatch(p.Accent)),
		fmt.Sprintf("    %s %s", keyStyle.Render(fmt.Sprintf("%-24s", "palette.text")), swatch(p.Text)),
		fmt.Sprintf("    %s %s", keyStyle.Render(fmt.Sprintf("%-24s", "palette.border")), swatch(p.Border)),
		"",
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// RenderWritten renders the message shown after writing a config file.
func (r *ConfigRenderer) RenderWritten(path string) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Success)
	pathStyle := r.theme.Subtle

	return fmt.Sprintf("\n  %s Wrote defaults to %s\n", iconStyle.Render(IconCheck), pathStyle.Render(path))
}

// RenderError renders an error message.
func (r *ConfigRenderer) RenderError(err error) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Error)

	return fmt.Sprintf(
		"\n  %s Config error: %v\n",
		iconStyle.Render(IconX),
		err,
	)
}
