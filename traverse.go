package bintree

import "iter"

type order uint8

const (
	preOrder order = iota
	inOrder
	postOrder
)

// PreOrder iterates over the populated nodes of the subtree rooted at n,
// parents before children, left before right. Paths are relative to n.
func (n NodeRef[T]) PreOrder() iter.Seq2[Path, T] {
	return n.walk(preOrder)
}

// InOrder iterates over the populated nodes of the subtree rooted at n,
// left subtree first, then the node, then the right subtree.
func (n NodeRef[T]) InOrder() iter.Seq2[Path, T] {
	return n.walk(inOrder)
}

// PostOrder iterates over the populated nodes of the subtree rooted at n,
// children before parents, left before right.
func (n NodeRef[T]) PostOrder() iter.Seq2[Path, T] {
	return n.walk(postOrder)
}

func (n NodeRef[T]) walk(o order) iter.Seq2[Path, T] {
	return func(yield func(Path, T) bool) {
		var visit func(node NodeRef[T], path Path) bool
		visit = func(node NodeRef[T], path Path) bool {
			if o == preOrder && !yield(path, node.Value()) {
				return false
			}
			if l, ok := node.Left(); ok && !visit(l, path.Child(StepLeft)) {
				return false
			}
			if o == inOrder && !yield(path, node.Value()) {
				return false
			}
			if r, ok := node.Right(); ok && !visit(r, path.Child(StepRight)) {
				return false
			}
			if o == postOrder && !yield(path, node.Value()) {
				return false
			}
			return true
		}
		visit(n, Path{})
	}
}

// LevelOrder iterates over the populated nodes of the subtree rooted at n,
// breadth first, left before right within a level.
func (n NodeRef[T]) LevelOrder() iter.Seq2[Path, T] {
	type entry struct {
		node NodeRef[T]
		path Path
	}
	return func(yield func(Path, T) bool) {
		queue := []entry{{node: n, path: Path{}}}
		for len(queue) > 0 {
			e := queue[0]
			queue = queue[1:]
			if !yield(e.path, e.node.Value()) {
				return
			}
			if l, ok := e.node.Left(); ok {
				queue = append(queue, entry{node: l, path: e.path.Child(StepLeft)})
			}
			if r, ok := e.node.Right(); ok {
				queue = append(queue, entry{node: r, path: e.path.Child(StepRight)})
			}
		}
	}
}

// Layout maps the path of every populated node, as a string of 'L' and 'R',
// to its value. The root is found at "".
func (t *BinaryTree[T]) Layout() map[string]T {
	layout := make(map[string]T)
	for path, v := range t.Root().PreOrder() {
		layout[path.String()] = v
	}
	return layout
}

// Equal reports whether two trees have the same populated positions holding
// equal values.
func Equal[T comparable](a, b *BinaryTree[T]) bool {
	return EqualFunc(a, b, func(x, y T) bool { return x == y })
}

// EqualFunc is like Equal, comparing values with eq.
func EqualFunc[T any](a, b *BinaryTree[T], eq func(x, y T) bool) bool {
	var same func(x, y NodeRef[T]) bool
	same = func(x, y NodeRef[T]) bool {
		if !eq(x.Value(), y.Value()) {
			return false
		}
		xl, xok := x.Left()
		yl, yok := y.Left()
		if xok != yok || (xok && !same(xl, yl)) {
			return false
		}
		xr, xok := x.Right()
		yr, yok := y.Right()
		return xok == yok && (!xok || same(xr, yr))
	}
	return same(a.Root(), b.Root())
}
