package arena

import (
	"errors"
	"fmt"
)

var (
	// ErrBrokenInvariant signals a structurally inconsistent tree.
	ErrBrokenInvariant = errors.New("arena: broken invariant")
	// ErrBorrowed signals an access conflicting with a live view.
	// It is the error wrapped by every *BorrowError.
	ErrBorrowed = errors.New("arena: conflicting borrow")
)

// BorrowError is the panic value raised when a view is used after it has
// been invalidated, or when a view is requested while a scope forbids it.
type BorrowError struct {
	Op     string // operation attempted, e.g. "RootMut"
	Node   NodeID // node the operation targeted
	Reason string
}

func (e *BorrowError) Error() string {
	return fmt.Sprintf("arena: %s on node %d: %s", e.Op, e.Node, e.Reason)
}

// Unwrap makes errors.Is(err, ErrBorrowed) hold for every BorrowError.
func (e *BorrowError) Unwrap() error {
	return ErrBorrowed
}
