package model

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/tiler/internal/cli/styles"
	"github.com/bnema/tiler/internal/domain/entity"
)

type cellKind uint8

const (
	cellEmpty cellKind = iota
	cellBorder
	cellFocusedBorder
	cellTitle
)

type cell struct {
	r    rune
	kind cellKind
}

// canvas is a character grid onto which canvas-percent rectangles are projected.
type canvas struct {
	w, h  int
	cells [][]cell
}

func newCanvas(w, h int) *canvas {
	c := &canvas{w: max(w, 0), h: max(h, 0)}
	c.cells = make([][]cell, c.h)
	for y := range c.cells {
		row := make([]cell, c.w)
		for x := range row {
			row[x] = cell{r: ' '}
		}
		c.cells[y] = row
	}
	return c
}

// project maps a rectangle in canvas percent to inclusive cell bounds.
func (c *canvas) project(r entity.Rect) (x0, y0, x1, y1 int) {
	sx := float64(c.w) / entity.Canvas.Width
	sy := float64(c.h) / entity.Canvas.Height
	x0 = min(max(int(math.Round(r.X*sx)), 0), c.w-2)
	y0 = min(max(int(math.Round(r.Y*sy)), 0), c.h-2)
	x1 = int(math.Round(r.Right()*sx)) - 1
	y1 = int(math.Round(r.Bottom()*sy)) - 1
	x1 = min(max(x1, x0+1), c.w-1)
	y1 = min(max(y1, y0+1), c.h-1)
	return x0, y0, x1, y1
}

func (c *canvas) set(x, y int, r rune, kind cellKind) {
	if x < 0 || y < 0 || x >= c.w || y >= c.h {
		return
	}
	c.cells[y][x] = cell{r: r, kind: kind}
}

// drawTile draws a bordered box with the title centred on the first inner line.
func (c *canvas) drawTile(row styles.LayoutRow) {
	if c.w < 2 || c.h < 2 {
		return
	}
	x0, y0, x1, y1 := c.project(row.Rect)
	kind := cellBorder
	if row.Focused {
		kind = cellFocusedBorder
	}

	for x := x0 + 1; x < x1; x++ {
		c.set(x, y0, '─', kind)
		c.set(x, y1, '─', kind)
	}
	for y := y0 + 1; y < y1; y++ {
		c.set(x0, y, '│', kind)
		c.set(x1, y, '│', kind)
	}
	c.set(x0, y0, '┌', kind)
	c.set(x1, y0, '┐', kind)
	c.set(x0, y1, '└', kind)
	c.set(x1, y1, '┘', kind)

	inner := x1 - x0 - 1
	if inner <= 0 || y1-y0 < 2 {
		return
	}
	title := []rune(row.Title)
	if len(title) > inner {
		title = title[:inner]
	}
	cx, _ := row.Rect.Center()
	mid := int(math.Round(cx * float64(c.w) / entity.Canvas.Width))
	start := min(max(mid-len(title)/2, x0+1), x1-len(title))
	for i, r := range title {
		c.set(start+i, y0+1, r, cellTitle)
	}
}

// render turns the grid into styled lines, batching runs of equal kind.
func (c *canvas) render(theme *styles.Theme) string {
	styleFor := map[cellKind]lipgloss.Style{
		cellEmpty:         lipgloss.NewStyle(),
		cellBorder:        theme.Tile,
		cellFocusedBorder: theme.TileFocused,
		cellTitle:         theme.TileTitle,
	}

	lines := make([]string, 0, c.h)
	for _, row := range c.cells {
		var sb strings.Builder
		var run strings.Builder
		runKind := cellEmpty
		flush := func() {
			if run.Len() == 0 {
				return
			}
			sb.WriteString(styleFor[runKind].Render(run.String()))
			run.Reset()
		}
		for _, cl := range row {
			if cl.kind != runKind {
				flush()
				runKind = cl.kind
			}
			run.WriteRune(cl.r)
		}
		flush()
		lines = append(lines, sb.String())
	}
	return strings.Join(lines, "\n")
}
