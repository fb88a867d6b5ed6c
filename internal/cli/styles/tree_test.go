package styles

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bnema/tiler/internal/domain/entity"
	"github.com/bnema/tiler/internal/infrastructure/config"
)

func sampleTree() *entity.Tree {
	tree := entity.NewTree("root")
	root := tree.Root()
	v := entity.NewContainer("v", entity.DirectionVertical, "b", "c")
	v.Parent = "root"
	v.Ratio = 0.3
	root.Children = []entity.NodeID{"a", "v"}

	a := entity.NewTile("a", "Editor", nil)
	a.Parent = "root"
	b := entity.NewTile("b", "Logs", nil)
	b.Parent = "v"
	b.Focused = true
	c := entity.NewTile("c", "Shell", nil)
	c.Parent = "v"

	tree.Put(a)
	tree.Put(v)
	tree.Put(b)
	tree.Put(c)
	tree.FocusedID = "b"
	return tree
}

func TestTreeRenderer_Render(t *testing.T) {
	r := NewTreeRenderer(NewTheme(config.DefaultConfig()))
	r.ShowIDs = true

	out := r.Render(sampleTree())

	for _, want := range []string{"Editor", "Logs", "Shell", "vertical", "ratio 0.30", "3 tiles", "tiling"} {
		assert.Contains(t, out, want)
	}
}

func TestTreeRenderer_ReportsMissingChild(t *testing.T) {
	tree := sampleTree()
	tree.Delete("c")

	out := NewTreeRenderer(NewTheme(nil)).Render(tree)

	assert.Contains(t, out, "missing c")
}

func TestLayoutRows_CreationOrder(t *testing.T) {
	tree := sampleTree()
	layout := map[entity.NodeID]entity.Rect{
		"c": {X: 50, Y: 50, Width: 50, Height: 50},
		"a": {X: 0, Y: 0, Width: 50, Height: 100},
		"b": {X: 50, Y: 0, Width: 50, Height: 50},
	}

	rows := LayoutRows(tree, layout)

	assert.Len(t, rows, 3)
	assert.Equal(t, "Editor", rows[0].Title)
	assert.Equal(t, "Logs", rows[1].Title)
	assert.True(t, rows[1].Focused)
	assert.Equal(t, []string{"*", "Logs", "50.00", "0.00", "50.00", "50.00"}, []string(rows[1].ToRow()))

	out := RenderLayoutTable(NewTheme(nil), rows)
	assert.Contains(t, out, "Shell")
}
