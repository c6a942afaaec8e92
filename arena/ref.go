package arena

import "iter"

// NodeRef is a shared, read-only view of a tree node. NodeRefs may be copied
// and held in any number, as long as no exclusive view of the tree is
// requested. The zero value is not a valid view.
type NodeRef[T any] struct {
	tree  *Tree[T]
	id    NodeID
	epoch uint64
}

// ID returns the identity of the node.
func (n NodeRef[T]) ID() NodeID {
	return n.id
}

func (n NodeRef[T]) node(op string) *node[T] {
	assert(n.tree != nil, "%s called on zero NodeRef", op)
	n.tree.borrow.checkShared(op, n.id, n.epoch)
	return n.tree.at(n.id)
}

func (n NodeRef[T]) ref(id NodeID) (NodeRef[T], bool) {
	if id == none {
		return NodeRef[T]{}, false
	}
	return NodeRef[T]{tree: n.tree, id: id, epoch: n.epoch}, true
}

// Value returns the value of the node.
func (n NodeRef[T]) Value() T {
	return n.node("Value").value
}

// Parent returns the parent of the node, if any.
func (n NodeRef[T]) Parent() (NodeRef[T], bool) {
	return n.ref(n.node("Parent").parent)
}

// FirstChild returns the first child of the node, if any.
func (n NodeRef[T]) FirstChild() (NodeRef[T], bool) {
	return n.ref(n.node("FirstChild").first)
}

// LastChild returns the last child of the node, if any.
func (n NodeRef[T]) LastChild() (NodeRef[T], bool) {
	return n.ref(n.node("LastChild").last)
}

// NextSibling returns the next sibling of the node, if any.
func (n NodeRef[T]) NextSibling() (NodeRef[T], bool) {
	return n.ref(n.node("NextSibling").next)
}

// PrevSibling returns the previous sibling of the node, if any.
func (n NodeRef[T]) PrevSibling() (NodeRef[T], bool) {
	return n.ref(n.node("PrevSibling").prev)
}

// HasChildren reports whether the node has at least one child.
func (n NodeRef[T]) HasChildren() bool {
	return n.node("HasChildren").first != none
}

// Children iterates over the children of the node, first to last.
func (n NodeRef[T]) Children() iter.Seq[NodeRef[T]] {
	return func(yield func(NodeRef[T]) bool) {
		for c, ok := n.FirstChild(); ok; c, ok = c.NextSibling() {
			if !yield(c) {
				return
			}
		}
	}
}
