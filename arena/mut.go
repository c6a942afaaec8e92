package arena

// NodeMut is an exclusive, mutable view of a tree node and its subtree.
//
// Deriving a view from a NodeMut (FirstChild, LastChild, Append) re-borrows
// it: the derived view is alive until the NodeMut is used again. Using a
// NodeMut which is no longer alive panics with a *BorrowError.
type NodeMut[T any] struct {
	tree  *Tree[T]
	id    NodeID
	depth int    // position of lease in the borrow stack
	lease uint64 // borrow lease; alive while found at depth
}

// ID returns the identity of the node.
func (n *NodeMut[T]) ID() NodeID {
	return n.id
}

func (n *NodeMut[T]) node(op string) *node[T] {
	assert(n != nil && n.tree != nil, "%s called on invalid NodeMut", op)
	n.tree.borrow.useExclusive(op, n.id, n.depth, n.lease)
	return n.tree.at(n.id)
}

func (n *NodeMut[T]) derive(op string, id NodeID) (*NodeMut[T], bool) {
	if id == none {
		return nil, false
	}
	lease := n.tree.borrow.derive(op, n.id, n.depth, n.lease)
	return &NodeMut[T]{tree: n.tree, id: id, depth: n.depth + 1, lease: lease}, true
}

// Value returns a pointer to the value of the node. The pointer must not be
// retained beyond the lifetime of the view.
func (n *NodeMut[T]) Value() *T {
	return &n.node("Value").value
}

// HasChildren reports whether the node has at least one child.
func (n *NodeMut[T]) HasChildren() bool {
	return n.node("HasChildren").first != none
}

// FirstChild returns an exclusive view of the first child, if any.
func (n *NodeMut[T]) FirstChild() (*NodeMut[T], bool) {
	return n.derive("FirstChild", n.node("FirstChild").first)
}

// LastChild returns an exclusive view of the last child, if any.
func (n *NodeMut[T]) LastChild() (*NodeMut[T], bool) {
	return n.derive("LastChild", n.node("LastChild").last)
}

// Append adds a new last child holding value and returns an exclusive view
// of it.
func (n *NodeMut[T]) Append(value T) *NodeMut[T] {
	n.node("Append")
	id := n.tree.appendChild(n.id, value)
	child, _ := n.derive("Append", id)
	return child
}
