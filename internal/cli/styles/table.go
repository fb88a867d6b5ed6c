package styles

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/tiler/internal/domain/entity"
)

// NewStyledTable creates a themed table model.
func NewStyledTable(theme *Theme, columns []table.Column, rows []table.Row, width, height int) table.Model {
	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(false),
		table.WithHeight(height),
		table.WithWidth(width),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(theme.Border).
		BorderBottom(true).
		Foreground(theme.Accent).
		Bold(true)
	s.Selected = s.Cell.
		Foreground(theme.Text)
	s.Cell = s.Cell.
		Foreground(theme.Text)

	t.SetStyles(s)
	return t
}

// LayoutTableColumns returns columns for the tile rectangle table.
func LayoutTableColumns() []table.Column {
	return []table.Column{
		{Title: "", Width: 2},
		{Title: "Tile", Width: 20},
		{Title: "X", Width: 8},
		{Title: "Y", Width: 8},
		{Title: "Width", Width: 8},
		{Title: "Height", Width: 8},
	}
}

// LayoutRow is one tile rectangle ready for display.
type LayoutRow struct {
	ID      entity.NodeID
	Title   string
	Rect    entity.Rect
	Focused bool
}

// ToRow converts to table.Row.
func (r LayoutRow) ToRow() table.Row {
	marker := ""
	if r.Focused {
		marker = "*"
	}
	return table.Row{
		marker,
		r.Title,
		formatPercent(r.Rect.X),
		formatPercent(r.Rect.Y),
		formatPercent(r.Rect.Width),
		formatPercent(r.Rect.Height),
	}
}

// LayoutRows pairs each laid-out tile with its title, in creation order.
func LayoutRows(tree *entity.Tree, layout map[entity.NodeID]entity.Rect) []LayoutRow {
	rows := make([]LayoutRow, 0, len(layout))
	for _, tile := range tree.Tiles() {
		rect, ok := layout[tile.ID]
		if !ok {
			continue
		}
		rows = append(rows, LayoutRow{ID: tile.ID, Title: tile.Title, Rect: rect, Focused: tile.Focused})
	}
	return rows
}

// RenderLayoutTable renders tile rectangles as a static table.
func RenderLayoutTable(theme *Theme, rows []LayoutRow) string {
	tableRows := make([]table.Row, 0, len(rows))
	for _, r := range rows {
		tableRows = append(tableRows, r.ToRow())
	}
	width := 0
	for _, c := range LayoutTableColumns() {
		width += c.Width + 2
	}
	t := NewStyledTable(theme, LayoutTableColumns(), tableRows, width, len(tableRows)+2)
	return t.View()
}

// formatPercent formats a canvas coordinate with two decimals.
func formatPercent(f float64) string {
	return fmt.Sprintf("%.2f", f)
}
