package script

import (
	"context"

	"github.com/bnema/tiler/internal/domain/entity"
	"github.com/bnema/tiler/internal/logging"
)

// Run executes cmds in order against target. It stops early only when ctx
// is done; commands naming unknown tiles are forwarded and ignored by the target.
func Run(ctx context.Context, target Target, cmds []Command) error {
	for _, cmd := range cmds {
		if err := ctx.Err(); err != nil {
			return err
		}
		Execute(ctx, target, cmd)
	}
	return nil
}

// Execute applies a single command.
func Execute(ctx context.Context, target Target, cmd Command) {
	log := logging.FromContext(ctx)
	log.Debug().Int("line", cmd.Line).Str("cmd", cmd.String()).Msg("script command")

	switch cmd.Op {
	case OpAdd:
		target.AddTile(ctx, cmd.Title, nil)
	case OpClose:
		target.CloseTile(ctx, resolveTile(target, cmd.Title))
	case OpFocus:
		target.FocusTile(ctx, resolveTile(target, cmd.Title))
	case OpSplit:
		target.SplitTile(ctx, resolveTile(target, cmd.Title), cmd.Direction)
	case OpRatio:
		target.AdjustRatio(ctx, resolveParent(target, cmd.Title), cmd.Ratio)
	case OpNext:
		target.FocusNextTile(ctx)
	case OpPrev:
		target.FocusPreviousTile(ctx)
	case OpToggle:
		target.ToggleLayout(ctx)
	default:
		log.Warn().Int("line", cmd.Line).Str("op", string(cmd.Op)).Msg("unknown script command skipped")
	}
}

// resolveTile maps a title to the first tile carrying it, in creation order.
// Unknown titles resolve to entity.NoNode.
func resolveTile(target Target, title string) entity.NodeID {
	if tile := target.Snapshot().FindTileByTitle(title); tile != nil {
		return tile.ID
	}
	return entity.NoNode
}

// resolveParent returns the container holding the titled tile.
func resolveParent(target Target, title string) entity.NodeID {
	if tile := target.Snapshot().FindTileByTitle(title); tile != nil {
		return tile.Parent
	}
	return entity.NoNode
}
