package arena

// NodeID is the stable identity of a node within its tree.
type NodeID int32

// none marks a missing link.
const none NodeID = -1

// node is the storage cell of a tree node. Nodes are allocated individually,
// so pointers to values stay valid while the arena grows.
type node[T any] struct {
	value  T
	parent NodeID
	prev   NodeID // previous sibling
	next   NodeID // next sibling
	first  NodeID // first child
	last   NodeID // last child
}

// Tree is an arbitrary-arity tree of values of type T. A tree always has
// a root node.
type Tree[T any] struct {
	nodes  []*node[T]
	borrow borrowState
}

// New creates a tree with a root node holding value.
func New[T any](value T) *Tree[T] {
	t := &Tree[T]{}
	t.alloc(value, none)
	return t
}

// Len returns the number of nodes in the tree, including the root.
func (t *Tree[T]) Len() int {
	return len(t.nodes)
}

// Root returns a shared view of the root node. All exclusive views of the
// tree end.
func (t *Tree[T]) Root() NodeRef[T] {
	epoch := t.borrow.beginShared("Root", 0)
	return NodeRef[T]{tree: t, id: 0, epoch: epoch}
}

// Get returns a shared view of the node with identity id. All exclusive
// views of the tree end.
func (t *Tree[T]) Get(id NodeID) (NodeRef[T], bool) {
	if id < 0 || int(id) >= len(t.nodes) {
		return NodeRef[T]{}, false
	}
	epoch := t.borrow.beginShared("Get", id)
	return NodeRef[T]{tree: t, id: id, epoch: epoch}, true
}

// RootMut returns an exclusive view of the root node. All other views of the
// tree end.
func (t *Tree[T]) RootMut() *NodeMut[T] {
	lease := t.borrow.beginExclusive("RootMut", 0)
	return &NodeMut[T]{tree: t, id: 0, depth: 0, lease: lease}
}

// Update calls fn with an exclusive view of the root node. While fn runs,
// requesting any other root view of t panics with a *BorrowError. Views
// derived from root must not be used after fn has returned.
func (t *Tree[T]) Update(fn func(root *NodeMut[T])) {
	root := t.RootMut()
	t.borrow.mutScope = true
	defer func() {
		t.borrow.mutScope = false
		t.borrow.stack = t.borrow.stack[:0]
	}()
	fn(root)
}

// View calls fn with a shared view of the root node. While fn runs,
// requesting an exclusive root view of t panics with a *BorrowError.
// View may be nested.
func (t *Tree[T]) View(fn func(root NodeRef[T])) {
	root := t.Root()
	t.borrow.refScopes++
	defer func() {
		t.borrow.refScopes--
	}()
	fn(root)
}

func (t *Tree[T]) alloc(value T, parent NodeID) NodeID {
	id := NodeID(len(t.nodes))
	t.nodes = append(t.nodes, &node[T]{
		value:  value,
		parent: parent,
		prev:   none,
		next:   none,
		first:  none,
		last:   none,
	})
	return id
}

// appendChild links a new node holding value as the last child of parent.
func (t *Tree[T]) appendChild(parent NodeID, value T) NodeID {
	id := t.alloc(value, parent)
	p := t.nodes[parent]
	if p.last == none {
		p.first = id
	} else {
		t.nodes[p.last].next = id
		t.nodes[id].prev = p.last
	}
	p.last = id
	return id
}

func (t *Tree[T]) at(id NodeID) *node[T] {
	assert(id >= 0 && int(id) < len(t.nodes), "node %d does not exist", id)
	return t.nodes[id]
}
