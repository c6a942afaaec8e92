package bintree

import (
	"github.com/npillmayer/bintree/arena"
)

// NodeRef is a shared, read-only view of a populated node and its subtree.
// NodeRefs may be copied and held in any number, as long as no exclusive view
// of the same tree is requested.
type NodeRef[T any] struct {
	inner arena.NodeRef[slot[T]]
}

// Value returns the value of the node.
func (n NodeRef[T]) Value() T {
	s := n.inner.Value()
	assert(s.populated, "view over placeholder")
	return s.value
}

// Left returns a view of the left child, or false if the left slot is
// a placeholder.
func (n NodeRef[T]) Left() (NodeRef[T], bool) {
	child, ok := n.inner.FirstChild()
	assert(ok, "populated node without children")
	return n.wrap(child)
}

// Right returns a view of the right child, or false if the right slot is
// a placeholder.
func (n NodeRef[T]) Right() (NodeRef[T], bool) {
	child, ok := n.inner.LastChild()
	assert(ok, "populated node without children")
	return n.wrap(child)
}

// IsLeaf reports whether both child slots of the node are placeholders.
func (n NodeRef[T]) IsLeaf() bool {
	_, l := n.Left()
	_, r := n.Right()
	return !l && !r
}

// At returns the node reached by following path from n.
func (n NodeRef[T]) At(path Path) (NodeRef[T], bool) {
	node, ok := n, true
	for _, step := range path {
		if step == StepLeft {
			node, ok = node.Left()
		} else {
			node, ok = node.Right()
		}
		if !ok {
			return NodeRef[T]{}, false
		}
	}
	return node, true
}

func (n NodeRef[T]) wrap(child arena.NodeRef[slot[T]]) (NodeRef[T], bool) {
	if !child.Value().populated {
		return NodeRef[T]{}, false
	}
	return NodeRef[T]{inner: child}, true
}

// --- Exclusive views --------------------------------------------------------

// NodeMut is an exclusive view of a populated node and its subtree.
//
// Child views returned from Left, Right, SetLeft and SetRight re-borrow
// their parent: they stay valid until the parent view is used again. Using
// a view after that panics with an *arena.BorrowError.
type NodeMut[T any] struct {
	inner *arena.NodeMut[slot[T]]
}

func wrapMut[T any](inner *arena.NodeMut[slot[T]]) *NodeMut[T] {
	return &NodeMut[T]{inner: inner}
}

// Value returns a pointer to the value of the node. The pointer must not be
// used after the view has ended.
func (n *NodeMut[T]) Value() *T {
	s := n.inner.Value()
	assert(s.populated, "view over placeholder")
	return &s.value
}

// Left returns an exclusive view of the left child, or false if the left
// slot is a placeholder.
func (n *NodeMut[T]) Left() (*NodeMut[T], bool) {
	return n.child(n.leftSlot())
}

// Right returns an exclusive view of the right child, or false if the right
// slot is a placeholder.
func (n *NodeMut[T]) Right() (*NodeMut[T], bool) {
	return n.child(n.rightSlot())
}

// SetLeft stores value in the left slot and returns an exclusive view of it.
// If the slot has not been populated before, it gets two placeholder children.
// Existing descendants of the slot are kept.
func (n *NodeMut[T]) SetLeft(value T) *NodeMut[T] {
	return set(n.leftSlot(), value)
}

// SetRight stores value in the right slot and returns an exclusive view of it.
// If the slot has not been populated before, it gets two placeholder children.
// Existing descendants of the slot are kept.
func (n *NodeMut[T]) SetRight(value T) *NodeMut[T] {
	return set(n.rightSlot(), value)
}

func (n *NodeMut[T]) leftSlot() *arena.NodeMut[slot[T]] {
	child, ok := n.inner.FirstChild()
	assert(ok, "populated node without children")
	return child
}

func (n *NodeMut[T]) rightSlot() *arena.NodeMut[slot[T]] {
	child, ok := n.inner.LastChild()
	assert(ok, "populated node without children")
	return child
}

func (n *NodeMut[T]) child(c *arena.NodeMut[slot[T]]) (*NodeMut[T], bool) {
	if !c.Value().populated {
		return nil, false
	}
	return wrapMut(c), true
}

func set[T any](c *arena.NodeMut[slot[T]], value T) *NodeMut[T] {
	*c.Value() = populated(value)
	if !c.HasChildren() {
		tracer().Debugf("bintree: materializing slots below node %d", c.ID())
		c.Append(placeholder[T]())
		c.Append(placeholder[T]())
	}
	return wrapMut(c)
}
