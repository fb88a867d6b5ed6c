package styles

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/tiler/internal/domain/build"
	"github.com/bnema/tiler/internal/infrastructure/config"
)

const aboutLogo = `┌───┬───┐
│   │   │
│   ├───┤
│   │   │
└───┴───┘`

// AboutRenderer renders build info next to the active engine settings.
type AboutRenderer struct {
	theme *Theme
}

// NewAboutRenderer creates a new about renderer with the given theme.
func NewAboutRenderer(theme *Theme) *AboutRenderer {
	return &AboutRenderer{theme: theme}
}

// Render shows the logo beside build info and the settings a new engine
// would start with. cfg may be nil; configPath may be empty.
func (r *AboutRenderer) Render(info build.Info, cfg *config.Config, configPath string) string {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	logo := lipgloss.NewStyle().
		Foreground(r.theme.Accent).
		Bold(true).
		MarginTop(1).
		MarginLeft(2).
		Render(aboutLogo)

	buildRows := []string{
		r.row(IconVersion, "Version", info.Version),
		r.row(IconGitBranch, "Commit", info.Commit),
		r.row(IconCalendar, "Built", info.BuildDate),
		r.row(IconGo, "Go", info.GoVersion),
	}

	engineRows := []string{
		r.theme.Title.Render("Engine"),
		r.row(IconColumns, "Gap", strconv.FormatFloat(cfg.Layout.Gap, 'f', 2, 64)+"%"),
		r.row(IconTile, "Split title", cfg.Tiles.DefaultTitle),
		r.row(IconCheck, "Validate", strconv.FormatBool(cfg.Debug.ValidateTree)),
	}
	if configPath != "" {
		engineRows = append(engineRows, r.row(IconConfig, "Config", configPath))
	}

	footer := r.theme.Subtle.Render(IconGithub + " " + build.RepoURL())
	if names := build.Contributors(); len(names) > 0 {
		footer += "\n" + r.theme.Subtle.Render(IconHeart+" "+strings.Join(names, ", "))
	}

	details := strings.Join([]string{
		strings.Join(buildRows, "\n"),
		strings.Join(engineRows, "\n"),
		footer,
	}, "\n\n")
	return lipgloss.JoinHorizontal(lipgloss.Top, logo, "   ", details)
}

func (r *AboutRenderer) row(icon, key, value string) string {
	if value == "" {
		value = "-"
	}
	return fmt.Sprintf("%s %s %s",
		lipgloss.NewStyle().Foreground(r.theme.Accent).Render(icon),
		r.theme.Subtle.Width(12).Render(key),
		r.theme.Highlight.Render(value),
	)
}
