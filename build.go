package bintree

import (
	"fmt"
)

// Branch is a part of a tree literal: a value for the left or right slot of
// a node, optionally followed by branches for the slots below it.
//
// Branches are created with Left and Right.
type Branch[T any] struct {
	step     Step
	value    T
	branches []Branch[T]
}

// Left creates a literal branch for a left slot.
func Left[T any](value T, branches ...Branch[T]) Branch[T] {
	return Branch[T]{step: StepLeft, value: value, branches: branches}
}

// Right creates a literal branch for a right slot.
func Right[T any](value T, branches ...Branch[T]) Branch[T] {
	return Branch[T]{step: StepRight, value: value, branches: branches}
}

// Build creates a tree from a literal:
//
//	tree, err := Build("root",
//	    Left("left"),
//	    Right("right", Right("rightright")))
//
// Every node of a literal may specify a left branch, a right branch, or both.
// If both are present, left has to come first. Literals violating this return
// ErrMalformedLiteral.
func Build[T any](root T, branches ...Branch[T]) (*BinaryTree[T], error) {
	if err := validate(branches, Path{}); err != nil {
		return nil, err
	}
	t := New(root)
	t.Update(func(r *NodeMut[T]) {
		grow(r, branches)
	})
	return t, nil
}

// MustBuild is like Build, but panics for malformed literals.
func MustBuild[T any](root T, branches ...Branch[T]) *BinaryTree[T] {
	t, err := Build(root, branches...)
	if err != nil {
		panic(err)
	}
	return t
}

// Grow applies literal branches below n, overwriting values of slots already
// populated. The literal is validated before n is touched.
func (n *NodeMut[T]) Grow(branches ...Branch[T]) error {
	if err := validate(branches, Path{}); err != nil {
		return err
	}
	grow(n, branches)
	return nil
}

func grow[T any](n *NodeMut[T], branches []Branch[T]) {
	for _, b := range branches {
		var child *NodeMut[T]
		if b.step == StepLeft {
			child = n.SetLeft(b.value)
		} else {
			child = n.SetRight(b.value)
		}
		grow(child, b.branches)
	}
}

func validate[T any](branches []Branch[T], at Path) error {
	switch len(branches) {
	case 0, 1:
	case 2:
		if branches[0].step == branches[1].step {
			return fmt.Errorf("%w: duplicate %s branch below %s",
				ErrMalformedLiteral, branches[0].step, where(at))
		}
		if branches[0].step != StepLeft {
			return fmt.Errorf("%w: left branch must precede right branch below %s",
				ErrMalformedLiteral, where(at))
		}
	default:
		return fmt.Errorf("%w: %d branches below %s", ErrMalformedLiteral, len(branches), where(at))
	}
	for _, b := range branches {
		if err := validate(b.branches, at.Child(b.step)); err != nil {
			return err
		}
	}
	return nil
}

func where(p Path) string {
	if len(p) == 0 {
		return "root"
	}
	return "node " + p.String()
}
