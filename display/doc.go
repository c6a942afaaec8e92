/*
Package display prints binary trees to consoles.

Trees are laid out with box-drawing characters, one node per line, left slot
before right slot:

	root
	├── [L]  left
	└── [R]  right
	    └── [R]  rightright

Labels are the values of the nodes, formatted with fmt.Sprint and truncated
to a maximum display width. Widths are measured in fixed-width cells, taking
East Asian wide characters and grapheme clusters into account.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package display

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'bintree'
func tracer() tracing.Trace {
	return tracing.Select("bintree")
}
