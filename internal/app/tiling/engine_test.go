package tiling

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bnema/tiler/internal/application/port"
	"github.com/bnema/tiler/internal/application/port/mocks"
	"github.com/bnema/tiler/internal/domain/entity"
	"github.com/bnema/tiler/internal/domain/service"
)

func sequentialIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("n%d", n)
	}
}

func newTestEngine(observer port.TreeObserver) *Engine {
	return NewEngine(Options{
		Gap:          0.5,
		ValidateTree: true,
		IDGenerator:  sequentialIDs(),
		Observer:     observer,
	})
}

func TestEngine_Scenario(t *testing.T) {
	ctx := context.Background()
	e := newTestEngine(nil)

	a := e.AddTile(ctx, "A", nil)
	b := e.AddTile(ctx, "B", nil)
	c := e.AddTile(ctx, "C", nil)

	require.Equal(t, c, e.FocusedID())
	layout := e.ComputeLayout()
	require.Len(t, layout, 3)
	assert.InDelta(t, 0.5, layout[a].X, 1e-9)
	assert.InDelta(t, 49.25, layout[a].Width, 1e-9)
	assert.InDelta(t, 99, layout[a].Height, 1e-9)
	assert.InDelta(t, 50.25, layout[b].X, 1e-9)
	assert.InDelta(t, 49.25, layout[b].Height, 1e-9)
	assert.InDelta(t, 50.25, layout[c].Y, 1e-9)

	e.CloseTile(ctx, a)

	snap := e.Snapshot()
	root := snap.Root()
	require.NotNil(t, root)
	assert.Equal(t, entity.DirectionVertical, root.Direction)
	assert.Equal(t, []entity.NodeID{b, c}, root.Children)
	assert.Equal(t, b, e.FocusedID())
	assert.Nil(t, snap.Tile(a))
}

func TestEngine_UnknownIDsAreNoOps(t *testing.T) {
	ctx := context.Background()
	observer := mocks.NewMockTreeObserver(t)
	observer.EXPECT().OnTreeChanged(mock.Anything, mock.Anything).Return().Once()

	e := newTestEngine(observer)
	a := e.AddTile(ctx, "A", nil)
	before := e.Snapshot()

	e.CloseTile(ctx, "missing")
	e.FocusTile(ctx, "missing")
	assert.Equal(t, entity.NoNode, e.SplitTile(ctx, "missing", entity.DirectionHorizontal))
	e.AdjustRatio(ctx, "missing", 0.3)
	e.AdjustRatio(ctx, a, 0.3) // a is a tile, not a container
	e.FocusNextTile(ctx)       // single tile: nothing to cycle

	assert.Equal(t, before.FocusedID, e.FocusedID())
	assert.Equal(t, before.Len(), e.Snapshot().Len())
	assert.Equal(t, before.Root().Children, e.Snapshot().Root().Children)
}

func TestEngine_NotifiesObserverWithSnapshot(t *testing.T) {
	ctx := context.Background()
	observer := mocks.NewMockTreeObserver(t)

	var seen []*entity.Tree
	observer.EXPECT().
		OnTreeChanged(mock.Anything, mock.AnythingOfType("*entity.Tree")).
		Run(func(_ context.Context, tree *entity.Tree) { seen = append(seen, tree) }).
		Return().
		Times(3)

	e := newTestEngine(observer)
	a := e.AddTile(ctx, "A", nil)
	e.AddTile(ctx, "B", nil)
	e.ToggleLayout(ctx)

	require.Len(t, seen, 3)
	assert.Equal(t, a, seen[0].FocusedID)
	assert.Equal(t, entity.LayoutFloating, seen[2].Layout)

	// Snapshots are detached from engine state.
	seen[2].Layout = entity.LayoutTiling
	assert.Equal(t, entity.LayoutFloating, e.Layout())
}

func TestEngine_SplitUsesDefaultTitle(t *testing.T) {
	ctx := context.Background()
	e := NewEngine(Options{DefaultTitle: "Shell", IDGenerator: sequentialIDs()})

	a := e.AddTile(ctx, "A", nil)
	id := e.SplitTile(ctx, a, entity.DirectionVertical)

	snap := e.Snapshot()
	require.NotNil(t, snap.Tile(id))
	assert.Equal(t, "Shell", snap.Tile(id).Title)
	assert.Equal(t, id, e.FocusedID())
	assert.Equal(t, entity.DirectionVertical, e.LastSplitDirection())
}

func TestEngine_AdjustRatioClamps(t *testing.T) {
	ctx := context.Background()
	e := newTestEngine(nil)
	a := e.AddTile(ctx, "A", nil)
	e.AddTile(ctx, "B", nil)

	parent := e.Snapshot().Tile(a).Parent
	e.AdjustRatio(ctx, parent, 5)
	assert.InDelta(t, entity.MaxRatio, e.Snapshot().Container(parent).Ratio, 1e-9)

	e.AdjustRatio(ctx, parent, 0.01)
	assert.InDelta(t, entity.MinRatio, e.Snapshot().Container(parent).Ratio, 1e-9)
}

func TestEngine_FocusCycle(t *testing.T) {
	ctx := context.Background()
	e := newTestEngine(nil)
	a := e.AddTile(ctx, "A", nil)
	b := e.AddTile(ctx, "B", nil)
	c := e.AddTile(ctx, "C", nil)

	e.FocusNextTile(ctx)
	assert.Equal(t, a, e.FocusedID())
	e.FocusPreviousTile(ctx)
	assert.Equal(t, c, e.FocusedID())
	e.FocusTile(ctx, b)
	assert.Equal(t, b, e.FocusedID())
}

func TestEngine_SetGap(t *testing.T) {
	ctx := context.Background()
	e := newTestEngine(nil)
	a := e.AddTile(ctx, "A", nil)

	e.SetGap(0)
	assert.InDelta(t, 100, e.ComputeLayout()[a].Width, 1e-9)

	e.SetGap(-3)
	assert.Zero(t, e.Gap())

	e.SetGap(2)
	assert.InDelta(t, 96, e.ComputeLayout()[a].Width, 1e-9)
}

func TestNewEngine_GapDefaults(t *testing.T) {
	ctx := context.Background()

	e := NewEngine(Options{IDGenerator: sequentialIDs()})
	assert.Equal(t, service.DefaultGap, e.Gap())

	a := e.AddTile(ctx, "A", nil)
	b := e.AddTile(ctx, "B", nil)
	layout := e.ComputeLayout()
	assert.InDelta(t, 0.5, layout[a].X, 1e-9)
	assert.InDelta(t, 0.5, layout[a].Y, 1e-9)
	assert.InDelta(t, layout[a].Right()+service.DefaultGap, layout[b].X, 1e-9)

	assert.Equal(t, service.DefaultGap, NewEngine(Options{Gap: -1}).Gap())
	assert.Equal(t, 1.5, NewEngine(Options{Gap: 1.5}).Gap())
	assert.Zero(t, NewEngine(Options{Gap: 1.5, NoGap: true}).Gap())
}

func TestEngine_ConcurrentCallers(t *testing.T) {
	ctx := context.Background()
	e := newTestEngine(nil)
	e.AddTile(ctx, "seed", nil)

	var wg sync.WaitGroup
	for i := range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range 25 {
				switch (i + j) % 4 {
				case 0:
					e.AddTile(ctx, "t", nil)
				case 1:
					e.FocusNextTile(ctx)
				case 2:
					e.CloseTile(ctx, e.FocusedID())
				default:
					_ = e.ComputeLayout()
				}
			}
		}()
	}
	wg.Wait()

	assert.NoError(t, e.Snapshot().Validate())
}
