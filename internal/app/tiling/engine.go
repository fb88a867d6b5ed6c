// Package tiling provides the stateful tiling engine that owns the current tree.
package tiling

import (
	"context"
	"errors"
	"sync"

	"github.com/bnema/tiler/internal/application/port"
	"github.com/bnema/tiler/internal/application/usecase"
	"github.com/bnema/tiler/internal/domain/entity"
	"github.com/bnema/tiler/internal/domain/service"
	"github.com/bnema/tiler/internal/logging"
)

// Options configures an Engine. Zero values fall back to defaults.
type Options struct {
	// Gap is the spacing in canvas percent used by ComputeLayout.
	// Zero or negative means service.DefaultGap.
	Gap float64
	// NoGap lays tiles out edge to edge, ignoring Gap.
	NoGap bool
	// DefaultTitle is given to tiles created by SplitTile.
	DefaultTitle string
	// ValidateTree runs the structural validator after every mutation.
	ValidateTree bool
	// IDGenerator produces node identifiers (default: random UUIDs).
	IDGenerator usecase.IDGenerator
	// Observer is notified after every state change.
	Observer port.TreeObserver
}

// Engine is the single writer of a tiling tree. All methods are safe for
// concurrent use; mutations are serialized and observers see snapshots.
type Engine struct {
	mu           sync.RWMutex
	tree         *entity.Tree
	uc           *usecase.ManageTilesUseCase
	gap          float64
	defaultTitle string
	validate     bool
	observer     port.TreeObserver
}

// NewEngine creates an engine holding an empty tree.
func NewEngine(opts Options) *Engine {
	uc := usecase.NewManageTilesUseCase(opts.IDGenerator)
	title := opts.DefaultTitle
	if title == "" {
		title = usecase.DefaultSplitTitle
	}
	gap := opts.Gap
	switch {
	case opts.NoGap:
		gap = 0
	case gap <= 0:
		gap = service.DefaultGap
	}
	return &Engine{
		tree:         uc.NewTree(),
		uc:           uc,
		gap:          gap,
		defaultTitle: title,
		validate:     opts.ValidateTree,
		observer:     opts.Observer,
	}
}

// AddTile inserts a tile next to the focused one and returns its id.
func (e *Engine) AddTile(ctx context.Context, title string, content any) entity.NodeID {
	var id entity.NodeID
	e.mutate(ctx, usecase.OpAddTile, func(tree *entity.Tree) (*entity.Tree, error) {
		next, newID, err := e.uc.AddTile(ctx, tree, title, content)
		id = newID
		return next, err
	})
	return id
}

// CloseTile removes a tile. Unknown ids are ignored.
func (e *Engine) CloseTile(ctx context.Context, id entity.NodeID) {
	e.mutate(ctx, usecase.OpCloseTile, func(tree *entity.Tree) (*entity.Tree, error) {
		return e.uc.CloseTile(ctx, tree, id)
	})
}

// FocusTile focuses a tile. Unknown ids are ignored.
func (e *Engine) FocusTile(ctx context.Context, id entity.NodeID) {
	e.mutate(ctx, usecase.OpFocusTile, func(tree *entity.Tree) (*entity.Tree, error) {
		return e.uc.FocusTile(ctx, tree, id)
	})
}

// SplitTile splits a tile in the given direction and returns the new tile id,
// or entity.NoNode when the target is not a tile.
func (e *Engine) SplitTile(ctx context.Context, id entity.NodeID, dir entity.Direction) entity.NodeID {
	var newID entity.NodeID
	e.mutate(ctx, usecase.OpSplitTile, func(tree *entity.Tree) (*entity.Tree, error) {
		next, created, err := e.uc.SplitTile(ctx, tree, usecase.SplitTileInput{
			ID:        id,
			Direction: dir,
			Title:     e.defaultTitle,
		})
		newID = created
		return next, err
	})
	return newID
}

// AdjustRatio sets a container's split ratio, clamped to [0.1, 0.9].
func (e *Engine) AdjustRatio(ctx context.Context, id entity.NodeID, ratio float64) {
	e.mutate(ctx, usecase.OpAdjustRatio, func(tree *entity.Tree) (*entity.Tree, error) {
		return e.uc.AdjustRatio(ctx, tree, id, ratio)
	})
}

// ToggleLayout flips between tiling and floating.
func (e *Engine) ToggleLayout(ctx context.Context) {
	e.mutate(ctx, usecase.OpToggleLayout, func(tree *entity.Tree) (*entity.Tree, error) {
		return e.uc.ToggleLayout(ctx, tree)
	})
}

// FocusNextTile moves focus forward in creation order.
func (e *Engine) FocusNextTile(ctx context.Context) {
	e.mutate(ctx, usecase.OpFocusNext, func(tree *entity.Tree) (*entity.Tree, error) {
		return e.uc.FocusNext(ctx, tree)
	})
}

// FocusPreviousTile moves focus backward in creation order.
func (e *Engine) FocusPreviousTile(ctx context.Context) {
	e.mutate(ctx, usecase.OpFocusPrevious, func(tree *entity.Tree) (*entity.Tree, error) {
		return e.uc.FocusPrevious(ctx, tree)
	})
}

// ComputeLayout returns the rectangle of every attached tile.
func (e *Engine) ComputeLayout() map[entity.NodeID]entity.Rect {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return service.ComputeLayout(e.tree, e.gap)
}

// Snapshot returns an independent copy of the current tree.
func (e *Engine) Snapshot() *entity.Tree {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.tree.Clone()
}

// RootID returns the id of the root container.
func (e *Engine) RootID() entity.NodeID {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.tree.RootID
}

// FocusedID returns the focused tile id, or entity.NoNode.
func (e *Engine) FocusedID() entity.NodeID {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.tree.FocusedID
}

// Layout returns the current layout mode.
func (e *Engine) Layout() entity.LayoutMode {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.tree.Layout
}

// LastSplitDirection returns the direction used by the most recent split.
func (e *Engine) LastSplitDirection() entity.Direction {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.tree.LastSplitDirection
}

// Gap returns the spacing used by ComputeLayout.
func (e *Engine) Gap() float64 {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.gap
}

// SetGap changes the spacing used by ComputeLayout. Negative values become 0.
func (e *Engine) SetGap(gap float64) {
	if gap < 0 {
		gap = 0
	}
	e.mu.Lock()
	e.gap = gap
	e.mu.Unlock()
}

// mutate applies op under the write lock. Failed preconditions leave the
// tree untouched and are only logged. The observer runs outside the lock.
func (e *Engine) mutate(ctx context.Context, name string, op func(*entity.Tree) (*entity.Tree, error)) {
	log := logging.FromContext(ctx)

	e.mu.Lock()
	prev := e.tree
	next, err := op(prev)
	if err != nil {
		e.mu.Unlock()
		if errors.Is(err, usecase.ErrPreconditionFailed) {
			log.Debug().Err(err).Str("op", name).Msg("operation ignored")
		} else {
			log.Warn().Err(err).Str("op", name).Msg("operation failed")
		}
		return
	}
	if next == nil || next == prev {
		e.mu.Unlock()
		return
	}
	if e.validate {
		if verr := next.Validate(); verr != nil {
			e.mu.Unlock()
			log.Error().Err(verr).Str("op", name).Msg("operation produced an invalid tree, change discarded")
			return
		}
	}
	e.tree = next
	observer := e.observer
	var snapshot *entity.Tree
	if observer != nil {
		snapshot = next.Clone()
	}
	e.mu.Unlock()

	if observer != nil {
		observer.OnTreeChanged(ctx, snapshot)
	}
}
