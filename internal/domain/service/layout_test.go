package service

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/tiler/internal/domain/entity"
)

var approx = cmpopts.EquateApprox(0, 1e-9)

// attach appends child under parent and registers it.
func attach(tree *entity.Tree, parent entity.NodeID, child *entity.Node) {
	child.Parent = parent
	p := tree.Container(parent)
	p.Children = append(p.Children, child.ID)
	tree.Put(child)
}

// scenarioTree is root(H)[A, v(V)[B, C]].
func scenarioTree() *entity.Tree {
	tree := entity.NewTree("root")
	attach(tree, "root", entity.NewTile("A", "A", nil))
	attach(tree, "root", entity.NewContainer("v", entity.DirectionVertical))
	attach(tree, "v", entity.NewTile("B", "B", nil))
	attach(tree, "v", entity.NewTile("C", "C", nil))
	return tree
}

func TestComputeLayout_Scenario(t *testing.T) {
	tree := scenarioTree()
	require.NoError(t, tree.Validate())

	got := ComputeLayout(tree, DefaultGap)

	want := Layout{
		"A": {X: 0.5, Y: 0.5, Width: 49.25, Height: 99},
		"B": {X: 50.25, Y: 0.5, Width: 49.25, Height: 49.25},
		"C": {X: 50.25, Y: 50.25, Width: 49.25, Height: 49.25},
	}
	if diff := cmp.Diff(want, got, approx); diff != "" {
		t.Errorf("layout mismatch (-want +got):\n%s", diff)
	}
	assertPartition(t, got, entity.Canvas.Inset(DefaultGap))
}

func TestComputeLayout_EmptyAndSingle(t *testing.T) {
	tree := entity.NewTree("root")
	assert.Empty(t, ComputeLayout(tree, DefaultGap), "empty root records nothing")
	assert.Empty(t, ComputeLayout(nil, DefaultGap))

	attach(tree, "root", entity.NewTile("A", "A", nil))
	got := ComputeLayout(tree, DefaultGap)

	want := Layout{"A": {X: 0.5, Y: 0.5, Width: 99, Height: 99}}
	if diff := cmp.Diff(want, got, approx); diff != "" {
		t.Errorf("single child must pass the rectangle through (-want +got):\n%s", diff)
	}
}

func TestLayoutWithin_HalfSplitDiffersByHalfGap(t *testing.T) {
	bounds := []entity.Rect{
		{X: 0, Y: 0, Width: 100, Height: 100},
		{X: 10, Y: 20, Width: 37, Height: 61},
		{X: 3.3, Y: 7.1, Width: 12.4, Height: 90},
	}
	const gap = 1.0

	for _, dir := range []entity.Direction{entity.DirectionHorizontal, entity.DirectionVertical} {
		for _, b := range bounds {
			tree := entity.NewTree("root")
			tree.Root().Direction = dir
			attach(tree, "root", entity.NewTile("L", "L", nil))
			attach(tree, "root", entity.NewTile("R", "R", nil))

			got := LayoutWithin(tree, b, gap)
			require.Len(t, got, 2)
			first, second := got["L"], got["R"]

			span := b.Width
			a1, a2 := first.Width, second.Width
			if dir == entity.DirectionVertical {
				span = b.Height
				a1, a2 = first.Height, second.Height
			}
			assert.InDelta(t, span/2-gap/2, a1, 1e-9, "%s %+v", dir, b)
			assert.InDelta(t, span/2-gap/2, a2, 1e-9, "%s %+v", dir, b)

			gapArea := gap * b.Height
			if dir == entity.DirectionVertical {
				gapArea = gap * b.Width
			}
			assert.InDelta(t, b.Area()-gapArea, first.Area()+second.Area(), 1e-9)
			assertPartition(t, got, b)
		}
	}
}

func TestComputeLayout_RatioIsRespected(t *testing.T) {
	tree := entity.NewTree("root")
	tree.Root().Ratio = 0.25
	attach(tree, "root", entity.NewTile("L", "L", nil))
	attach(tree, "root", entity.NewTile("R", "R", nil))

	got := ComputeLayout(tree, 0)

	assert.InDelta(t, 25, got["L"].Width, 1e-9)
	assert.InDelta(t, 75, got["R"].Width, 1e-9)
	assert.InDelta(t, 25, got["R"].X, 1e-9)
}

// A root with more than two children (only reachable by adding without
// focus) gives the first child ratio of the span and shares the rest evenly.
func TestComputeLayout_WideRootDistributesRemainderEvenly(t *testing.T) {
	tree := entity.NewTree("root")
	for _, id := range []entity.NodeID{"a", "b", "c", "d"} {
		attach(tree, "root", entity.NewTile(id, string(id), nil))
	}

	got := ComputeLayout(tree, 0)

	want := Layout{
		"a": {X: 0, Y: 0, Width: 50, Height: 100},
		"b": {X: 50, Y: 0, Width: 50.0 / 3, Height: 100},
		"c": {X: 50 + 50.0/3, Y: 0, Width: 50.0 / 3, Height: 100},
		"d": {X: 50 + 100.0/3, Y: 0, Width: 50.0 / 3, Height: 100},
	}
	if diff := cmp.Diff(want, got, approx); diff != "" {
		t.Errorf("wide root layout mismatch (-want +got):\n%s", diff)
	}

	withGap := ComputeLayout(tree, DefaultGap)
	require.Len(t, withGap, 4)
	assertPartition(t, withGap, entity.Canvas.Inset(DefaultGap))
}

func TestComputeLayout_DeepTreeHasNoOverlaps(t *testing.T) {
	tree := entity.NewTree("root")
	parent := entity.NodeID("root")
	dir := entity.DirectionHorizontal
	for i := range 8 {
		leaf := entity.NewTile(entity.NodeID(rune('a'+i)), "", nil)
		attach(tree, parent, leaf)
		next := entity.NewContainer(entity.NodeID(rune('A'+i)), dir)
		next.Ratio = 0.3 + float64(i%3)*0.2
		attach(tree, parent, next)
		parent, dir = next.ID, dir.Toggle()
	}
	attach(tree, parent, entity.NewTile("z1", "", nil))
	attach(tree, parent, entity.NewTile("z2", "", nil))
	require.NoError(t, tree.Validate())

	got := ComputeLayout(tree, DefaultGap)

	assert.Len(t, got, tree.TileCount())
	assertPartition(t, got, entity.Canvas.Inset(DefaultGap))
}

// assertPartition checks the rectangles stay inside bounds and never overlap.
func assertPartition(t *testing.T, layout Layout, bounds entity.Rect) {
	t.Helper()
	const eps = 1e-9
	ids := make([]entity.NodeID, 0, len(layout))
	for id, r := range layout {
		ids = append(ids, id)
		assert.GreaterOrEqual(t, r.X, bounds.X-eps, "%s left", id)
		assert.GreaterOrEqual(t, r.Y, bounds.Y-eps, "%s top", id)
		assert.LessOrEqual(t, r.Right(), bounds.Right()+eps, "%s right", id)
		assert.LessOrEqual(t, r.Bottom(), bounds.Bottom()+eps, "%s bottom", id)
		assert.False(t, math.IsNaN(r.Width) || r.Width <= 0 || r.Height <= 0, "%s degenerate %+v", id, r)
	}
	for i := range ids {
		for j := i + 1; j < len(ids); j++ {
			a, b := layout[ids[i]], layout[ids[j]]
			assert.False(t, a.Intersects(b, 1e-6), "%s %+v overlaps %s %+v", ids[i], a, ids[j], b)
		}
	}
}
