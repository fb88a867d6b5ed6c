// Package service holds pure domain computations over the tiling tree.
package service

import (
	"github.com/bnema/tiler/internal/domain/entity"
)

// DefaultGap is the gap, in canvas percent, reserved around the canvas edge
// and on every split boundary.
const DefaultGap = 0.5

// Layout maps every visible tile to its rectangle.
type Layout map[entity.NodeID]entity.Rect

// ComputeLayout lays out the tree on the 100x100 canvas. The canvas is inset
// by gap on all four sides before the descent starts.
func ComputeLayout(tree *entity.Tree, gap float64) Layout {
	return LayoutWithin(tree, entity.Canvas.Inset(gap), gap)
}

// LayoutWithin lays out the tree inside bounds, which is handed verbatim to
// the root. It has no side effects on the tree.
func LayoutWithin(tree *entity.Tree, bounds entity.Rect, gap float64) Layout {
	layout := make(Layout)
	if tree == nil || tree.RootID == entity.NoNode {
		return layout
	}
	l := layouter{tree: tree, gap: gap, out: layout, seen: make(map[entity.NodeID]bool)}
	l.node(tree.RootID, bounds)
	return layout
}

type layouter struct {
	tree *entity.Tree
	gap  float64
	out  Layout
	seen map[entity.NodeID]bool // guards against cycles in a corrupt tree
}

func (l *layouter) node(id entity.NodeID, r entity.Rect) {
	n, ok := l.tree.Node(id)
	if !ok || l.seen[id] {
		return
	}
	l.seen[id] = true

	switch n.Kind {
	case entity.NodeTile:
		l.out[id] = r
	case entity.NodeContainer:
		l.children(n.Children, n.Direction, n.Ratio, r)
	}
}

// children splits r among ids along dir. The first child gets ratio of the
// span; with more than two children the rest share the second partition
// evenly, each step handing 1/k of what remains to the next child.
func (l *layouter) children(ids []entity.NodeID, dir entity.Direction, ratio float64, r entity.Rect) {
	switch len(ids) {
	case 0:
		return
	case 1:
		l.node(ids[0], r)
		return
	}

	first, rest := splitRect(r, dir, ratio, l.gap)
	l.node(ids[0], first)
	if len(ids) == 2 {
		l.node(ids[1], rest)
		return
	}
	remaining := ids[1:]
	l.children(remaining, dir, 1/float64(len(remaining)), rest)
}

// splitRect cuts r along dir. The first part is span*ratio - gap/2, the
// second takes what is left after the gap.
func splitRect(r entity.Rect, dir entity.Direction, ratio, gap float64) (first, second entity.Rect) {
	if dir == entity.DirectionVertical {
		h1 := r.Height*ratio - gap/2
		h2 := r.Height - h1 - gap
		first = entity.Rect{X: r.X, Y: r.Y, Width: r.Width, Height: h1}
		second = entity.Rect{X: r.X, Y: r.Y + h1 + gap, Width: r.Width, Height: h2}
		return first, second
	}
	w1 := r.Width*ratio - gap/2
	w2 := r.Width - w1 - gap
	first = entity.Rect{X: r.X, Y: r.Y, Width: w1, Height: r.Height}
	second = entity.Rect{X: r.X + w1 + gap, Y: r.Y, Width: w2, Height: r.Height}
	return first, second
}
