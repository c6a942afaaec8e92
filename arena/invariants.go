package arena

import "fmt"

// Check validates the structural invariants of the tree: sibling lists are
// doubly linked and consistent with their parent, and every node is reachable
// from the root exactly once.
//
// Check does not touch the borrow state and may be called at any time.
func (t *Tree[T]) Check() error {
	if t == nil || len(t.nodes) == 0 {
		return fmt.Errorf("%w: tree has no root", ErrBrokenInvariant)
	}
	if root := t.nodes[0]; root.parent != none || root.prev != none || root.next != none {
		return fmt.Errorf("%w: root has parent or siblings", ErrBrokenInvariant)
	}
	seen := make([]bool, len(t.nodes))
	var walk func(id NodeID) error
	walk = func(id NodeID) error {
		if seen[id] {
			return fmt.Errorf("%w: node %d reachable twice", ErrBrokenInvariant, id)
		}
		seen[id] = true
		n := t.nodes[id]
		if (n.first == none) != (n.last == none) {
			return fmt.Errorf("%w: node %d has dangling child link", ErrBrokenInvariant, id)
		}
		prev := none
		for c := n.first; c != none; c = t.nodes[c].next {
			if c < 0 || int(c) >= len(t.nodes) {
				return fmt.Errorf("%w: node %d links to unknown node %d", ErrBrokenInvariant, id, c)
			}
			child := t.nodes[c]
			if child.parent != id {
				return fmt.Errorf("%w: node %d has parent %d, expected %d",
					ErrBrokenInvariant, c, child.parent, id)
			}
			if child.prev != prev {
				return fmt.Errorf("%w: node %d has broken sibling link", ErrBrokenInvariant, c)
			}
			if child.next == none && c != n.last {
				return fmt.Errorf("%w: last child of node %d is %d, expected %d",
					ErrBrokenInvariant, id, c, n.last)
			}
			if err := walk(c); err != nil {
				return err
			}
			prev = c
		}
		return nil
	}
	if err := walk(0); err != nil {
		return err
	}
	for id, ok := range seen {
		if !ok {
			return fmt.Errorf("%w: node %d not reachable from root", ErrBrokenInvariant, id)
		}
	}
	return nil
}
