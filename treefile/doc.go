/*
Package treefile provides API helpers to load tree literals from YAML files
as binary trees.

A tree literal file holds one mapping per node. Key 'value' holds the value
of the node, keys 'left' and 'right' hold the literals of the child slots.
A leaf may be abbreviated by its scalar value:

	value: root
	left: left
	right:
	  value: right
	  right:
	    value: rightright
	    left: rightrightleft

Either child key may be omitted. If both are present, 'left' has to precede
'right'. A file consisting of a single scalar is a tree of just a root.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the LICENSE file for details.
*/
package treefile

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'bintree'
func tracer() tracing.Trace {
	return tracing.Select("bintree")
}
