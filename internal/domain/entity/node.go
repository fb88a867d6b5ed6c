// Package entity contains domain entities representing core tiling concepts.
// These entities are pure Go types with no infrastructure dependencies.
package entity

// NodeID uniquely identifies a node (tile or container) within a tree.
// The empty NodeID is the null reference.
type NodeID string

// NoNode is the null node reference.
const NoNode NodeID = ""

// NodeKind discriminates the two node variants.
type NodeKind int

const (
	NodeTile      NodeKind = iota // Leaf pane
	NodeContainer                 // Split container
)

func (k NodeKind) String() string {
	switch k {
	case NodeTile:
		return "tile"
	case NodeContainer:
		return "container"
	default:
		return "unknown"
	}
}

// Direction indicates how a container splits its children.
type Direction string

const (
	DirectionHorizontal Direction = "horizontal" // Left/right split
	DirectionVertical   Direction = "vertical"   // Top/bottom split
)

// Toggle returns the other direction.
func (d Direction) Toggle() Direction {
	if d == DirectionVertical {
		return DirectionHorizontal
	}
	return DirectionVertical
}

// Valid reports whether d is one of the known directions.
func (d Direction) Valid() bool {
	return d == DirectionHorizontal || d == DirectionVertical
}

// LayoutMode selects between the tiling tree and the floating window mode.
// Floating geometry lives outside this package; only the flag is tracked here.
type LayoutMode string

const (
	LayoutTiling   LayoutMode = "tiling"
	LayoutFloating LayoutMode = "floating"
)

// Toggle returns the other layout mode.
func (m LayoutMode) Toggle() LayoutMode {
	if m == LayoutTiling {
		return LayoutFloating
	}
	return LayoutTiling
}

// Split ratio bounds. New containers always start at DefaultRatio.
const (
	MinRatio     = 0.1
	MaxRatio     = 0.9
	DefaultRatio = 0.5
)

// ClampRatio bounds a proposed split ratio to [MinRatio, MaxRatio].
func ClampRatio(ratio float64) float64 {
	if ratio != ratio { // NaN
		return DefaultRatio
	}
	if ratio < MinRatio {
		return MinRatio
	}
	if ratio > MaxRatio {
		return MaxRatio
	}
	return ratio
}

// Node is a node in the tiling tree. It is either:
//   - Tile: a leaf holding a title and an opaque content payload
//   - Container: a split holding an ordered list of child IDs
//
// Kind is the discriminant; only the fields of the matching variant are meaningful.
type Node struct {
	ID     NodeID
	Kind   NodeKind
	Parent NodeID // NoNode for the root

	// Tile fields
	Title   string
	Content any // Owned by the caller, never inspected
	Focused bool

	// Container fields
	Direction Direction
	Children  []NodeID
	Ratio     float64 // Share of the split axis given to the first child
}

// NewTile creates an unattached tile.
func NewTile(id NodeID, title string, content any) *Node {
	return &Node{
		ID:      id,
		Kind:    NodeTile,
		Title:   title,
		Content: content,
	}
}

// NewContainer creates a container with the default ratio.
func NewContainer(id NodeID, dir Direction, children ...NodeID) *Node {
	return &Node{
		ID:        id,
		Kind:      NodeContainer,
		Direction: dir,
		Children:  append([]NodeID(nil), children...),
		Ratio:     DefaultRatio,
	}
}

// IsTile returns true if this node is a leaf pane.
func (n *Node) IsTile() bool {
	return n != nil && n.Kind == NodeTile
}

// IsContainer returns true if this node is a split container.
func (n *Node) IsContainer() bool {
	return n != nil && n.Kind == NodeContainer
}

// IsRoot returns true if the node has no parent.
func (n *Node) IsRoot() bool {
	return n != nil && n.Parent == NoNode
}

// ChildIndex returns the position of id in the child list, or -1.
func (n *Node) ChildIndex(id NodeID) int {
	for i, child := range n.Children {
		if child == id {
			return i
		}
	}
	return -1
}

// clone returns a copy that shares Content but not Children.
func (n *Node) clone() *Node {
	c := *n
	if n.Children != nil {
		c.Children = append([]NodeID(nil), n.Children...)
	}
	return &c
}
