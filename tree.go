package bintree

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"fmt"

	"github.com/npillmayer/bintree/arena"
)

// slot is the content of a storage node: either a populated value or a
// placeholder reserving a child position.
type slot[T any] struct {
	value     T
	populated bool
}

func populated[T any](value T) slot[T] {
	return slot[T]{value: value, populated: true}
}

func placeholder[T any]() slot[T] {
	return slot[T]{}
}

// BinaryTree is a binary tree where every node has zero or two child slots.
//
// A BinaryTree is created with New or Build and is never empty. The root is
// always populated and always has two (possibly empty) child slots.
// Nodes are never removed.
type BinaryTree[T any] struct {
	inner *arena.Tree[slot[T]]
}

// New creates a tree with a root holding value. The root's left and right
// slots are placeholders.
func New[T any](value T) *BinaryTree[T] {
	inner := arena.New(populated(value))
	root := inner.RootMut()
	root.Append(placeholder[T]())
	root.Append(placeholder[T]())
	return &BinaryTree[T]{inner: inner}
}

// Root returns a shared view of the root. Exclusive views obtained earlier
// end.
func (t *BinaryTree[T]) Root() NodeRef[T] {
	return NodeRef[T]{inner: t.inner.Root()}
}

// RootMut returns an exclusive view of the root, granting exclusive access to
// the whole tree for as long as the view is used. Shared views obtained
// earlier end.
func (t *BinaryTree[T]) RootMut() *NodeMut[T] {
	return wrapMut(t.inner.RootMut())
}

// Update calls fn with an exclusive view of the root. Requesting any other
// root view of t while fn runs panics with an *arena.BorrowError.
func (t *BinaryTree[T]) Update(fn func(root *NodeMut[T])) {
	t.inner.Update(func(root *arena.NodeMut[slot[T]]) {
		fn(wrapMut(root))
	})
}

// View calls fn with a shared view of the root. Requesting an exclusive root
// view of t while fn runs panics with an *arena.BorrowError.
func (t *BinaryTree[T]) View(fn func(root NodeRef[T])) {
	t.inner.View(func(root arena.NodeRef[slot[T]]) {
		fn(NodeRef[T]{inner: root})
	})
}

// Len returns the number of populated nodes.
func (t *BinaryTree[T]) Len() int {
	n := 0
	for range t.Root().PreOrder() {
		n++
	}
	return n
}

// Height returns the number of populated nodes on the longest path from the
// root downwards. A tree consisting of just a root has height 1.
func (t *BinaryTree[T]) Height() int {
	h := 0
	for path := range t.Root().PreOrder() {
		h = max(h, len(path)+1)
	}
	return h
}

// Check validates the shape invariants of the tree: the root is populated,
// every populated node has exactly two children, and placeholders have none.
// Check ends exclusive views of t.
func (t *BinaryTree[T]) Check() error {
	if t == nil || t.inner == nil {
		return fmt.Errorf("%w: nil tree", ErrBrokenInvariant)
	}
	if err := t.inner.Check(); err != nil {
		return fmt.Errorf("%w: %w", ErrBrokenInvariant, err)
	}
	root := t.inner.Root()
	if !root.Value().populated {
		return fmt.Errorf("%w: root is a placeholder", ErrBrokenInvariant)
	}
	var check func(n arena.NodeRef[slot[T]], path Path) error
	check = func(n arena.NodeRef[slot[T]], path Path) error {
		count := 0
		for range n.Children() {
			count++
		}
		if !n.Value().populated {
			if count != 0 {
				return fmt.Errorf("%w: placeholder at %s has %d children",
					ErrBrokenInvariant, where(path), count)
			}
			return nil
		}
		if count != 2 {
			return fmt.Errorf("%w: %s has %d children",
				ErrBrokenInvariant, where(path), count)
		}
		left, _ := n.FirstChild()
		right, _ := n.LastChild()
		if err := check(left, path.Child(StepLeft)); err != nil {
			return err
		}
		return check(right, path.Child(StepRight))
	}
	return check(root, nil)
}
