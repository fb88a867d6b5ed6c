package entity

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Tree is the tiling aggregate: an identifier-keyed node map plus the root,
// focus, last split direction and layout mode.
//
// Nodes are kept in insertion order. Replacing a node keeps its position, so
// enumeration order is node creation order.
type Tree struct {
	nodes *orderedmap.OrderedMap[NodeID, *Node]

	RootID             NodeID
	FocusedID          NodeID
	LastSplitDirection Direction
	Layout             LayoutMode
}

// NewTree creates the initial state: a single empty horizontal root container,
// no tiles and no focus.
func NewTree(rootID NodeID) *Tree {
	t := &Tree{
		nodes:              orderedmap.New[NodeID, *Node](),
		RootID:             rootID,
		LastSplitDirection: DirectionVertical,
		Layout:             LayoutTiling,
	}
	t.Put(NewContainer(rootID, DirectionHorizontal))
	return t
}

// Clone returns a deep copy of the tree structure. Tile content is shared.
func (t *Tree) Clone() *Tree {
	c := &Tree{
		nodes:              orderedmap.New[NodeID, *Node](),
		RootID:             t.RootID,
		FocusedID:          t.FocusedID,
		LastSplitDirection: t.LastSplitDirection,
		Layout:             t.Layout,
	}
	for pair := t.nodes.Oldest(); pair != nil; pair = pair.Next() {
		c.nodes.Set(pair.Key, pair.Value.clone())
	}
	return c
}

// Len returns the total number of nodes.
func (t *Tree) Len() int {
	if t == nil || t.nodes == nil {
		return 0
	}
	return t.nodes.Len()
}

// Node returns the node with the given ID.
func (t *Tree) Node(id NodeID) (*Node, bool) {
	if t == nil || t.nodes == nil || id == NoNode {
		return nil, false
	}
	return t.nodes.Get(id)
}

// Tile returns the node only if it exists and is a tile.
func (t *Tree) Tile(id NodeID) *Node {
	n, ok := t.Node(id)
	if !ok || !n.IsTile() {
		return nil
	}
	return n
}

// Container returns the node only if it exists and is a container.
func (t *Tree) Container(id NodeID) *Node {
	n, ok := t.Node(id)
	if !ok || !n.IsContainer() {
		return nil
	}
	return n
}

// Root returns the root node, or nil for a tree without one.
func (t *Tree) Root() *Node {
	n, _ := t.Node(t.RootID)
	return n
}

// Focused returns the focused tile, or nil.
func (t *Tree) Focused() *Node {
	return t.Tile(t.FocusedID)
}

// Put inserts or replaces a node. New IDs go to the end of the enumeration order.
func (t *Tree) Put(n *Node) {
	if t.nodes == nil {
		t.nodes = orderedmap.New[NodeID, *Node]()
	}
	t.nodes.Set(n.ID, n)
}

// Delete removes a node from the map. References to it are the caller's concern.
func (t *Tree) Delete(id NodeID) {
	if t.nodes == nil {
		return
	}
	t.nodes.Delete(id)
}

// Each calls fn for every node in creation order. Returns early if fn returns false.
func (t *Tree) Each(fn func(*Node) bool) {
	if t == nil || t.nodes == nil {
		return
	}
	for pair := t.nodes.Oldest(); pair != nil; pair = pair.Next() {
		if !fn(pair.Value) {
			return
		}
	}
}

// Tiles returns all tiles in creation order.
func (t *Tree) Tiles() []*Node {
	var tiles []*Node
	t.Each(func(n *Node) bool {
		if n.IsTile() {
			tiles = append(tiles, n)
		}
		return true
	})
	return tiles
}

// TileCount returns the number of tiles in the tree.
func (t *Tree) TileCount() int {
	count := 0
	t.Each(func(n *Node) bool {
		if n.IsTile() {
			count++
		}
		return true
	})
	return count
}

// Walk traverses the subtree rooted at id depth-first, children in order.
// Returns early if fn returns false for any node.
func (t *Tree) Walk(id NodeID, fn func(*Node) bool) bool {
	n, ok := t.Node(id)
	if !ok {
		return true
	}
	if !fn(n) {
		return false
	}
	if n.IsContainer() {
		for _, child := range n.Children {
			if !t.Walk(child, fn) {
				return false
			}
		}
	}
	return true
}

// FirstTile returns the first tile reached by first-child descent from id.
func (t *Tree) FirstTile(id NodeID) *Node {
	var found *Node
	t.Walk(id, func(n *Node) bool {
		if n.IsTile() {
			found = n
			return false
		}
		return true
	})
	return found
}

// FindTileByTitle returns the first tile, in creation order, with the given title.
func (t *Tree) FindTileByTitle(title string) *Node {
	var found *Node
	t.Each(func(n *Node) bool {
		if n.IsTile() && n.Title == title {
			found = n
			return false
		}
		return true
	})
	return found
}
