package port

import (
	"context"

	"github.com/bnema/tiler/internal/domain/entity"
)

// TreeObserver is notified after every state change of a tiling engine.
// The tree it receives is a snapshot owned by the observer.
type TreeObserver interface {
	OnTreeChanged(ctx context.Context, tree *entity.Tree)
}

// TreeObserverFunc adapts a plain function to TreeObserver.
type TreeObserverFunc func(ctx context.Context, tree *entity.Tree)

// OnTreeChanged calls f(ctx, tree).
func (f TreeObserverFunc) OnTreeChanged(ctx context.Context, tree *entity.Tree) {
	f(ctx, tree)
}
