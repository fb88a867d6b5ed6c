// Package model provides Bubble Tea models for CLI commands.
package model

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/tiler/internal/app/tiling"
	"github.com/bnema/tiler/internal/cli/styles"
	"github.com/bnema/tiler/internal/domain/entity"
	"github.com/bnema/tiler/internal/logging"
)

const (
	ratioStep = 0.05
	gapStep   = 0.25
	maxGap    = 5.0

	chromeHeight = 2 // status line + help line
)

// ConfigReloadedMsg carries settings picked up from an edited config file.
type ConfigReloadedMsg struct {
	Gap   float64
	Theme *styles.Theme
}

// PreviewModel is the Bubble Tea model for the interactive tiling preview.
type PreviewModel struct {
	help help.Model
	keys styles.PreviewKeyMap

	width   int
	height  int
	created int
	status  string

	ctx    context.Context
	engine *tiling.Engine
	theme  *styles.Theme
}

// NewPreviewModel creates a preview driving engine.
func NewPreviewModel(ctx context.Context, engine *tiling.Engine, theme *styles.Theme) PreviewModel {
	return PreviewModel{
		help:    styles.NewStyledHelp(theme),
		keys:    styles.DefaultPreviewKeyMap(),
		width:   80,
		height:  24,
		created: engine.Snapshot().TileCount(),
		ctx:     ctx,
		engine:  engine,
		theme:   theme,
	}
}

// Init implements tea.Model.
func (m PreviewModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m PreviewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case ConfigReloadedMsg:
		m.engine.SetGap(msg.Gap)
		if msg.Theme != nil {
			m.theme = msg.Theme
			m.help = styles.NewStyledHelp(msg.Theme)
			m.help.Width = m.width
		}
		m.status = "config reloaded"
		return m, nil
	}

	return m, nil
}

func (m PreviewModel) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	ctx := m.ctx
	focused := m.engine.FocusedID()

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Add):
		m.created++
		title := fmt.Sprintf("Tile %d", m.created)
		m.engine.AddTile(ctx, title, nil)
		m.status = "added " + title

	case key.Matches(msg, m.keys.Close):
		if focused == entity.NoNode {
			m.status = "nothing to close"
			break
		}
		title := m.titleOf(focused)
		m.engine.CloseTile(ctx, focused)
		m.status = "closed " + title

	case key.Matches(msg, m.keys.SplitH):
		m.split(focused, entity.DirectionHorizontal)

	case key.Matches(msg, m.keys.SplitV):
		m.split(focused, entity.DirectionVertical)

	case key.Matches(msg, m.keys.Next):
		m.engine.FocusNextTile(ctx)
		m.status = ""

	case key.Matches(msg, m.keys.Prev):
		m.engine.FocusPreviousTile(ctx)
		m.status = ""

	case key.Matches(msg, m.keys.Grow):
		m.resize(focused, ratioStep)

	case key.Matches(msg, m.keys.Shrink):
		m.resize(focused, -ratioStep)

	case key.Matches(msg, m.keys.Toggle):
		m.engine.ToggleLayout(ctx)
		m.status = "layout " + string(m.engine.Layout())

	case key.Matches(msg, m.keys.GapUp):
		m.engine.SetGap(min(m.engine.Gap()+gapStep, maxGap))
		m.status = fmt.Sprintf("gap %.2f", m.engine.Gap())

	case key.Matches(msg, m.keys.GapDown):
		m.engine.SetGap(max(m.engine.Gap()-gapStep, 0))
		m.status = fmt.Sprintf("gap %.2f", m.engine.Gap())

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}

	return m, nil
}

func (m *PreviewModel) split(focused entity.NodeID, dir entity.Direction) {
	if focused == entity.NoNode {
		m.status = "focus a tile first"
		return
	}
	id := m.engine.SplitTile(m.ctx, focused, dir)
	m.status = fmt.Sprintf("split %s %s", m.titleOf(focused), dir)
	logging.FromContext(m.ctx).Debug().Str("new_tile_id", string(id)).Msg("preview split")
}

// resize grows or shrinks the focused tile inside its parent container.
func (m *PreviewModel) resize(focused entity.NodeID, delta float64) {
	tree := m.engine.Snapshot()
	tile := tree.Tile(focused)
	if tile == nil {
		return
	}
	parent := tree.Container(tile.Parent)
	if parent == nil || len(parent.Children) < 2 {
		m.status = "nothing to resize"
		return
	}
	// The ratio sizes the first child; growing the second means lowering it.
	if parent.ChildIndex(focused) != 0 {
		delta = -delta
	}
	m.engine.AdjustRatio(m.ctx, parent.ID, parent.Ratio+delta)
	m.status = fmt.Sprintf("ratio %.2f", m.engine.Snapshot().Container(parent.ID).Ratio)
}

func (m PreviewModel) titleOf(id entity.NodeID) string {
	if tile := m.engine.Snapshot().Tile(id); tile != nil {
		return tile.Title
	}
	return string(id)
}

// View implements tea.Model.
func (m PreviewModel) View() string {
	tree := m.engine.Snapshot()
	layout := m.engine.ComputeLayout()

	area := newCanvas(m.width, max(m.height-chromeHeight, 0))
	for _, row := range styles.LayoutRows(tree, layout) {
		area.drawTile(row)
	}
	body := area.render(m.theme)
	if tree.TileCount() == 0 {
		hint := m.theme.Subtle.Render("no tiles. press a to add one")
		body = lipgloss.Place(m.width, max(m.height-chromeHeight, 0), lipgloss.Center, lipgloss.Center, hint)
	}

	return lipgloss.JoinVertical(lipgloss.Left, body, m.statusLine(tree), m.help.View(m.keys))
}

func (m PreviewModel) statusLine(tree *entity.Tree) string {
	mode := m.theme.Badge.Render(string(tree.Layout))
	parts := []string{
		fmt.Sprintf("%d tiles", tree.TileCount()),
		fmt.Sprintf("gap %.2f", m.engine.Gap()),
	}
	if f := tree.Focused(); f != nil {
		parts = append(parts, "focus "+f.Title)
	}
	if m.status != "" {
		parts = append(parts, m.status)
	}
	return mode + m.theme.StatusBar.Render(strings.Join(parts, " · "))
}
