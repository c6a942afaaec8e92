/*
Package arena provides a small all-purpose tree storage engine.

Nodes of a tree are kept in an arena owned by the tree. Every node has a
stable identity (NodeID) for the lifetime of the tree; nodes are never
removed and children are never reordered. Children of a node are kept as a
doubly-linked sibling list, which makes first-child, last-child and sibling
navigation O(1).

Access to nodes is handed out as views:

	NodeRef   a shared, read-only view; freely copyable
	NodeMut   an exclusive, mutable view; handed out as a pointer

Go has no borrow checker, so the tree tracks borrows at runtime. Shared views
remember the epoch they have been created in. Acquiring the root mutably
starts a new epoch, and every shared view from an earlier epoch is dead from
then on. Exclusive views form a stack: deriving a child view pushes it, and
using any view pops everything that has been derived from it in the meantime.
Using a dead view panics with a *BorrowError.

Clients wanting an explicit lifetime for a view may use Update and View. While
the function passed to Update runs, any attempt to obtain another root view of
the tree panics; while the function passed to View runs, mutable root access
panics.

A tree is meant for single-owner, single-goroutine use. Clients sharing a tree
between goroutines have to synchronize externally.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package arena

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'bintree'
func tracer() tracing.Trace {
	return tracing.Select("bintree")
}

func assert(condition bool, msg string, msgargs ...interface{}) {
	if !condition {
		panic(fmt.Sprintf("arena: "+msg, msgargs...))
	}
}
