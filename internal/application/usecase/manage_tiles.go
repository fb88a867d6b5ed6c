package usecase

import (
	"context"
	"slices"

	"github.com/google/uuid"

	"github.com/bnema/tiler/internal/domain/entity"
	"github.com/bnema/tiler/internal/logging"
)

// IDGenerator is a function type for generating unique IDs.
type IDGenerator func() string

// DefaultSplitTitle is the title given to tiles created by a split.
const DefaultSplitTitle = "New Tile"

// ManageTilesUseCase handles tiling tree operations.
//
// Every operation takes the current tree and returns the next one; the input
// tree is never mutated. When a precondition fails the input tree is returned
// unchanged together with a *PreconditionFailedError.
type ManageTilesUseCase struct {
	idGenerator IDGenerator
}

// NewManageTilesUseCase creates a new tile management use case.
// A nil generator falls back to random UUIDs.
func NewManageTilesUseCase(idGenerator IDGenerator) *ManageTilesUseCase {
	if idGenerator == nil {
		idGenerator = uuid.NewString
	}
	return &ManageTilesUseCase{
		idGenerator: idGenerator,
	}
}

func (uc *ManageTilesUseCase) newID() entity.NodeID {
	return entity.NodeID(uc.idGenerator())
}

// NewTree returns the initial state: one empty root container, no focus.
func (uc *ManageTilesUseCase) NewTree() *entity.Tree {
	return entity.NewTree(uc.newID())
}

// AddTile inserts a new tile and focuses it.
//
// With no tiles the tree is rebuilt around the new tile. With a focused tile,
// that tile is replaced by a split holding [focused, new] whose direction
// alternates from the last split. Otherwise the tile is appended to the root.
func (uc *ManageTilesUseCase) AddTile(
	ctx context.Context,
	tree *entity.Tree,
	title string,
	content any,
) (*entity.Tree, entity.NodeID, error) {
	log := logging.FromContext(ctx)
	log.Debug().Str("title", title).Msg("adding tile")

	if tree == nil || tree.TileCount() == 0 {
		next := uc.NewTree()
		root := next.Root()
		tile := entity.NewTile(uc.newID(), title, content)
		tile.Parent = root.ID
		root.Children = append(root.Children, tile.ID)
		next.Put(tile)
		setFocus(next, tile.ID)

		log.Info().
			Str("tile_id", string(tile.ID)).
			Str("root_id", string(root.ID)).
			Msg("first tile added, tree rebuilt")
		return next, tile.ID, nil
	}

	next := tree.Clone()
	tile := entity.NewTile(uc.newID(), title, content)

	if focused := next.Focused(); focused != nil {
		if err := checkAttached(next, focused, OpAddTile); err != nil {
			return tree, entity.NoNode, err
		}
		dir := next.LastSplitDirection.Toggle()
		container := uc.wrapInSplit(next, focused, tile, dir)
		next.LastSplitDirection = dir
		setFocus(next, tile.ID)

		log.Info().
			Str("tile_id", string(tile.ID)).
			Str("sibling_id", string(focused.ID)).
			Str("container_id", string(container.ID)).
			Str("direction", string(dir)).
			Msg("tile added beside focused tile")
		return next, tile.ID, nil
	}

	root := next.Container(next.RootID)
	if root == nil {
		return tree, entity.NoNode, preconditionFailed(OpAddTile, next.RootID, "root is not a container")
	}
	tile.Parent = root.ID
	root.Children = append(root.Children, tile.ID)
	next.Put(tile)
	setFocus(next, tile.ID)

	log.Info().
		Str("tile_id", string(tile.ID)).
		Int("root_children", len(root.Children)).
		Msg("tile appended to root (no focus)")
	return next, tile.ID, nil
}

// SplitTileInput contains parameters for splitting a tile.
type SplitTileInput struct {
	ID        entity.NodeID
	Direction entity.Direction
	Title     string // Title for the new tile (default: DefaultSplitTitle)
}

// SplitTile puts a new empty tile next to the target, inside a new container
// using exactly the requested direction. The new tile takes focus.
func (uc *ManageTilesUseCase) SplitTile(
	ctx context.Context,
	tree *entity.Tree,
	input SplitTileInput,
) (*entity.Tree, entity.NodeID, error) {
	log := logging.FromContext(ctx)
	log.Debug().
		Str("target_id", string(input.ID)).
		Str("direction", string(input.Direction)).
		Msg("splitting tile")

	if tree.Tile(input.ID) == nil {
		return tree, entity.NoNode, preconditionFailed(OpSplitTile, input.ID, "not a tile")
	}
	if !input.Direction.Valid() {
		return tree, entity.NoNode, preconditionFailed(OpSplitTile, input.ID, "invalid direction "+string(input.Direction))
	}

	next := tree.Clone()
	target := next.Tile(input.ID)
	if err := checkAttached(next, target, OpSplitTile); err != nil {
		return tree, entity.NoNode, err
	}

	title := input.Title
	if title == "" {
		title = DefaultSplitTitle
	}
	tile := entity.NewTile(uc.newID(), title, nil)
	container := uc.wrapInSplit(next, target, tile, input.Direction)
	next.LastSplitDirection = input.Direction
	setFocus(next, tile.ID)

	log.Info().
		Str("new_tile_id", string(tile.ID)).
		Str("container_id", string(container.ID)).
		Str("direction", string(input.Direction)).
		Msg("tile split completed")
	return next, tile.ID, nil
}

// CloseTile removes a tile. Closing the last tile resets the tree.
//
// A container left with one child is collapsed: the survivor takes the
// container's slot in the grandparent, or becomes the root when it is a
// container and the collapsed node was the root. Focus moves to the nearest
// tile in the vacated slot, falling back to the first tile in creation order.
func (uc *ManageTilesUseCase) CloseTile(ctx context.Context, tree *entity.Tree, id entity.NodeID) (*entity.Tree, error) {
	log := logging.FromContext(ctx)
	log.Debug().Str("tile_id", string(id)).Msg("closing tile")

	if tree.Tile(id) == nil {
		return tree, preconditionFailed(OpCloseTile, id, "not a tile")
	}

	if tree.TileCount() == 1 {
		log.Info().Str("tile_id", string(id)).Msg("closing last tile, tree reset")
		return uc.NewTree(), nil
	}

	next := tree.Clone()
	parentID := next.Tile(id).Parent
	next.Delete(id)
	slot := detach(next, parentID, id)

	focus := next.FirstTile(slot)
	if focus == nil {
		focus = next.Tiles()[0]
	}
	setFocus(next, focus.ID)

	log.Info().
		Str("closed_tile_id", string(id)).
		Str("slot_id", string(slot)).
		Str("focused_id", string(focus.ID)).
		Msg("tile closed")
	return next, nil
}

// FocusTile focuses exactly the given tile.
func (uc *ManageTilesUseCase) FocusTile(ctx context.Context, tree *entity.Tree, id entity.NodeID) (*entity.Tree, error) {
	if tree.Tile(id) == nil {
		return tree, preconditionFailed(OpFocusTile, id, "not a tile")
	}
	next := tree.Clone()
	setFocus(next, id)

	logging.FromContext(ctx).Debug().Str("tile_id", string(id)).Msg("tile focused")
	return next, nil
}

// AdjustRatio stores the clamped ratio on a container.
func (uc *ManageTilesUseCase) AdjustRatio(
	ctx context.Context,
	tree *entity.Tree,
	id entity.NodeID,
	ratio float64,
) (*entity.Tree, error) {
	if tree.Container(id) == nil {
		return tree, preconditionFailed(OpAdjustRatio, id, "not a container")
	}
	next := tree.Clone()
	container := next.Container(id)
	container.Ratio = entity.ClampRatio(ratio)

	logging.FromContext(ctx).Debug().
		Str("container_id", string(id)).
		Float64("requested", ratio).
		Float64("ratio", container.Ratio).
		Msg("split ratio adjusted")
	return next, nil
}

// ToggleLayout flips between tiling and floating. The tree structure is untouched.
func (uc *ManageTilesUseCase) ToggleLayout(ctx context.Context, tree *entity.Tree) (*entity.Tree, error) {
	if tree == nil {
		return tree, preconditionFailed(OpToggleLayout, entity.NoNode, "no tree")
	}
	next := tree.Clone()
	next.Layout = next.Layout.Toggle()

	logging.FromContext(ctx).Debug().Str("layout", string(next.Layout)).Msg("layout mode toggled")
	return next, nil
}

// FocusNext focuses the tile after the focused one in creation order, wrapping around.
func (uc *ManageTilesUseCase) FocusNext(ctx context.Context, tree *entity.Tree) (*entity.Tree, error) {
	return uc.focusStep(ctx, tree, 1)
}

// FocusPrevious focuses the tile before the focused one in creation order, wrapping around.
func (uc *ManageTilesUseCase) FocusPrevious(ctx context.Context, tree *entity.Tree) (*entity.Tree, error) {
	return uc.focusStep(ctx, tree, -1)
}

// focusStep cycles focus through tiles in creation order. This order ignores
// geometry on purpose. Without a current focus, +1 lands on the first tile
// and -1 on the last.
func (uc *ManageTilesUseCase) focusStep(ctx context.Context, tree *entity.Tree, step int) (*entity.Tree, error) {
	tiles := tree.Tiles()
	if len(tiles) <= 1 {
		return tree, nil
	}

	n := len(tiles)
	current := slices.IndexFunc(tiles, func(t *entity.Node) bool { return t.ID == tree.FocusedID })
	var target int
	switch {
	case current >= 0:
		target = ((current+step)%n + n) % n
	case step > 0:
		target = 0
	default:
		target = n - 1
	}

	next := tree.Clone()
	setFocus(next, tiles[target].ID)

	logging.FromContext(ctx).Debug().
		Str("from", string(tree.FocusedID)).
		Str("to", string(tiles[target].ID)).
		Int("step", step).
		Msg("focus cycled")
	return next, nil
}

// wrapInSplit replaces target with a new container holding [target, tile].
// Both nodes are registered in tree; tile is created after the container.
func (uc *ManageTilesUseCase) wrapInSplit(tree *entity.Tree, target, tile *entity.Node, dir entity.Direction) *entity.Node {
	container := entity.NewContainer(uc.newID(), dir, target.ID, tile.ID)
	oldParent := target.Parent

	target.Parent = container.ID
	tile.Parent = container.ID
	tree.Put(container)
	tree.Put(tile)

	replaceChild(tree, oldParent, target.ID, container)
	return container
}

// replaceChild puts node in the slot oldID occupied under parentID.
// A root whose only child is oldID is replaced by node entirely, so a
// single-child root never survives a split.
func replaceChild(tree *entity.Tree, parentID, oldID entity.NodeID, node *entity.Node) {
	parent := tree.Container(parentID)
	switch {
	case parent == nil:
		node.Parent = entity.NoNode
		tree.RootID = node.ID
	case parent.ID == tree.RootID && len(parent.Children) == 1:
		tree.Delete(parent.ID)
		node.Parent = entity.NoNode
		tree.RootID = node.ID
	default:
		parent.Children[parent.ChildIndex(oldID)] = node.ID
		node.Parent = parent.ID
	}
}

// checkAttached verifies the node's parent really lists it.
func checkAttached(tree *entity.Tree, n *entity.Node, op string) error {
	if n.Parent == entity.NoNode {
		return nil
	}
	parent := tree.Container(n.Parent)
	if parent == nil || parent.ChildIndex(n.ID) < 0 {
		return preconditionFailed(op, n.ID, "not attached to its parent")
	}
	return nil
}

// detach removes childID from its parent's child list and repairs the tree.
// It returns the node now occupying the vacated slot, or NoNode.
func detach(tree *entity.Tree, parentID, childID entity.NodeID) entity.NodeID {
	parent := tree.Container(parentID)
	if parent == nil {
		return entity.NoNode
	}
	idx := parent.ChildIndex(childID)
	if idx >= 0 {
		parent.Children = slices.Delete(parent.Children, idx, idx+1)
	}

	switch len(parent.Children) {
	case 0:
		if parent.ID == tree.RootID {
			return entity.NoNode
		}
		grandparent := parent.Parent
		tree.Delete(parent.ID)
		return detach(tree, grandparent, parent.ID)

	case 1:
		survivorID := parent.Children[0]
		survivor, _ := tree.Node(survivorID)

		grandparent := tree.Container(parent.Parent)
		if parent.ID == tree.RootID || grandparent == nil {
			// A lone tile stays under the existing root, which keeps its id,
			// direction and ratio. A surviving container becomes the root.
			if survivor.IsContainer() {
				tree.Delete(parent.ID)
				survivor.Parent = entity.NoNode
				tree.RootID = survivorID
			}
			return survivorID
		}

		grandparent.Children[grandparent.ChildIndex(parent.ID)] = survivorID
		survivor.Parent = grandparent.ID
		tree.Delete(parent.ID)
		return survivorID

	default:
		if idx < 0 {
			return parent.Children[0]
		}
		if idx < len(parent.Children) {
			return parent.Children[idx]
		}
		return parent.Children[idx-1]
	}
}

// setFocus flags exactly one tile as focused and records it on the tree.
func setFocus(tree *entity.Tree, id entity.NodeID) {
	tree.Each(func(n *entity.Node) bool {
		if n.IsTile() {
			n.Focused = n.ID == id
		}
		return true
	})
	tree.FocusedID = id
}
