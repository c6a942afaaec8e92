package bintree

import "errors"

var (
	// ErrMalformedLiteral signals a tree literal violating the literal grammar:
	// at most one left and one right branch per node, left before right.
	ErrMalformedLiteral = errors.New("bintree: malformed tree literal")
	// ErrBrokenInvariant signals a node with a shape other than zero or two
	// child slots, or a placeholder carrying children.
	ErrBrokenInvariant = errors.New("bintree: broken invariant")
	// ErrIllegalPath is flagged for path strings containing steps other than
	// 'L' and 'R'.
	ErrIllegalPath = errors.New("bintree: illegal path")
)
