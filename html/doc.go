/*
Package html renders binary trees as nested HTML lists.

Every populated node becomes a list item holding a span with class "node".
Inner nodes carry a nested list with one item per child slot, classed "left"
or "right". Empty slots of inner nodes are rendered as empty items with the
additional class "placeholder", which keeps left and right positionally
distinguishable in the document.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package html

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'bintree'
func tracer() tracing.Trace {
	return tracing.Select("bintree")
}
