package styles

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/tree"

	"github.com/bnema/tiler/internal/domain/entity"
)

// TreeRenderer renders a tiling tree as an indented outline.
type TreeRenderer struct {
	theme *Theme
	// ShowIDs appends node ids to each line.
	ShowIDs bool
}

// NewTreeRenderer creates a new tree renderer with the given theme.
func NewTreeRenderer(theme *Theme) *TreeRenderer {
	return &TreeRenderer{theme: theme}
}

// Render returns the outline of t starting at its root.
func (r *TreeRenderer) Render(t *entity.Tree) string {
	root := t.Root()
	if root == nil {
		return r.theme.Subtle.Render("(no tree)")
	}

	header := fmt.Sprintf("%s %s  %s %s",
		r.theme.Highlight.Render(IconTree),
		r.theme.Title.Render("layout"),
		r.modeBadge(t.Layout),
		r.theme.Subtle.Render(fmt.Sprintf("%d tiles, last split %s", t.TileCount(), t.LastSplitDirection)),
	)

	out := r.node(t, root, map[entity.NodeID]bool{})
	out.EnumeratorStyle(lipgloss.NewStyle().Foreground(r.theme.Border).MarginRight(1))
	return lipgloss.JoinVertical(lipgloss.Left, header, out.String())
}

func (r *TreeRenderer) modeBadge(mode entity.LayoutMode) string {
	if mode == entity.LayoutFloating {
		return r.theme.BadgeMuted.Render(IconFloating + " floating")
	}
	return r.theme.Badge.Render(IconColumns + " tiling")
}

func (r *TreeRenderer) node(t *entity.Tree, n *entity.Node, seen map[entity.NodeID]bool) *tree.Tree {
	seen[n.ID] = true
	out := tree.Root(r.label(n))
	for _, childID := range n.Children {
		child, ok := t.Node(childID)
		if !ok {
			out.Child(r.theme.ErrorStyle.Render(fmt.Sprintf("missing %s", childID)))
			continue
		}
		if seen[childID] {
			out.Child(r.theme.ErrorStyle.Render(fmt.Sprintf("cycle at %s", childID)))
			continue
		}
		if child.IsContainer() {
			out.Child(r.node(t, child, seen))
			continue
		}
		out.Child(r.label(child))
	}
	return out
}

func (r *TreeRenderer) label(n *entity.Node) string {
	var s string
	switch n.Kind {
	case entity.NodeContainer:
		icon := IconColumns
		if n.Direction == entity.DirectionVertical {
			icon = IconRows
		}
		s = fmt.Sprintf("%s %s %s",
			r.theme.Subtitle.Render(icon),
			r.theme.Subtitle.Render(string(n.Direction)),
			r.theme.Subtle.Render(fmt.Sprintf("ratio %.2f", n.Ratio)),
		)
	case entity.NodeTile:
		if n.Focused {
			s = r.theme.Highlight.Render(IconFocus + " " + n.Title)
		} else {
			s = r.theme.Normal.Render(IconTile + " " + n.Title)
		}
	}
	if r.ShowIDs {
		s += " " + r.theme.Subtle.Render(string(n.ID))
	}
	return s
}
