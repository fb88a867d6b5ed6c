package entity

import (
	"errors"
	"fmt"
)

// ErrInvalidTree is wrapped by every structural violation reported by Validate.
var ErrInvalidTree = errors.New("invalid tiling tree")

// Validate checks the structural invariants of the tree and reports every
// violation found. A nil result means the tree is consistent.
//
// Container child counts: the root may hold any number of children (0 for the
// empty tree, 1 for a single tile, more than 2 after additions without focus);
// every other container holds exactly 2.
func (t *Tree) Validate() error {
	if t == nil {
		return fmt.Errorf("%w: nil tree", ErrInvalidTree)
	}

	var errs []error
	report := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalidTree}, args...)...))
	}

	root, ok := t.Node(t.RootID)
	switch {
	case !ok:
		report("root %q not found", t.RootID)
	case !root.IsContainer():
		report("root %q is a %s", t.RootID, root.Kind)
	case root.Parent != NoNode:
		report("root %q has parent %q", t.RootID, root.Parent)
	}

	// Reachability: every node is visited exactly once from the root.
	visited := make(map[NodeID]bool, t.Len())
	if ok {
		stack := []NodeID{t.RootID}
		visited[t.RootID] = true
		for len(stack) > 0 {
			id := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			n, _ := t.Node(id)
			if !n.IsContainer() {
				continue
			}
			seen := make(map[NodeID]bool, len(n.Children))
			for _, childID := range n.Children {
				if seen[childID] {
					report("container %q lists child %q twice", id, childID)
					continue
				}
				seen[childID] = true
				child, exists := t.Node(childID)
				if !exists {
					report("container %q references missing child %q", id, childID)
					continue
				}
				if child.Parent != id {
					report("node %q is a child of %q but points to parent %q", childID, id, child.Parent)
				}
				if visited[childID] {
					report("node %q is reachable more than once", childID)
					continue
				}
				visited[childID] = true
				stack = append(stack, childID)
			}
		}
	}

	focusedFlags := 0
	t.Each(func(n *Node) bool {
		if !visited[n.ID] {
			report("node %q is not reachable from root", n.ID)
		}
		if n.Parent != NoNode {
			if p := t.Container(n.Parent); p == nil {
				report("node %q has missing or non-container parent %q", n.ID, n.Parent)
			}
		}
		switch n.Kind {
		case NodeTile:
			if n.Focused {
				focusedFlags++
				if n.ID != t.FocusedID {
					report("tile %q is flagged focused but focus is %q", n.ID, t.FocusedID)
				}
			}
		case NodeContainer:
			if n.Ratio < MinRatio || n.Ratio > MaxRatio {
				report("container %q ratio %v outside [%v, %v]", n.ID, n.Ratio, MinRatio, MaxRatio)
			}
			if !n.Direction.Valid() {
				report("container %q has invalid direction %q", n.ID, n.Direction)
			}
			if n.ID != t.RootID && len(n.Children) != 2 {
				report("container %q has %d children", n.ID, len(n.Children))
			}
		default:
			report("node %q has unknown kind %d", n.ID, n.Kind)
		}
		return true
	})

	if focusedFlags > 1 {
		report("%d tiles are flagged focused", focusedFlags)
	}
	if t.FocusedID != NoNode {
		if f := t.Tile(t.FocusedID); f == nil {
			report("focus %q does not resolve to a tile", t.FocusedID)
		} else if !f.Focused {
			report("focused tile %q is not flagged focused", t.FocusedID)
		}
	}

	return errors.Join(errs...)
}
