package script

import (
	"context"

	"github.com/bnema/tiler/internal/domain/entity"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mock_target.go

// Target is the tiling surface a script drives. *tiling.Engine implements it.
type Target interface {
	AddTile(ctx context.Context, title string, content any) entity.NodeID
	CloseTile(ctx context.Context, id entity.NodeID)
	FocusTile(ctx context.Context, id entity.NodeID)
	SplitTile(ctx context.Context, id entity.NodeID, dir entity.Direction) entity.NodeID
	AdjustRatio(ctx context.Context, id entity.NodeID, ratio float64)
	ToggleLayout(ctx context.Context)
	FocusNextTile(ctx context.Context)
	FocusPreviousTile(ctx context.Context)
	Snapshot() *entity.Tree
}
