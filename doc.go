/*
Package bintree offers a generic binary tree in which every node has either
no child slots or exactly two of them.

Binary Trees

A BinaryTree is never empty: it is created with a root value, and the root
comes with two child slots, left and right. A slot is either populated or a
placeholder. Placeholders exist in storage but read as "no child":

	tree := bintree.New("root")
	_, ok := tree.Root().Left()   // ok == false

Populating a slot gives it two placeholder slots of its own. Setters return a
view of the slot just populated, which allows for fluent construction:

	root := tree.RootMut()
	root.SetLeft("a").SetRight("ab")
	root.SetRight("b")

Overwriting a populated slot replaces its value and keeps its descendants.

Views

Nodes are accessed through views. NodeRef is a shared, read-only view and may
be copied freely. NodeMut is an exclusive view granting mutation rights to a
node and its subtree. Exclusive views are checked at runtime: using a view
after a conflicting view has been obtained panics with an *arena.BorrowError.
Tree.Update and Tree.View make the lifetime of a view explicit:

	tree.Update(func(root *bintree.NodeMut[string]) {
	    root.SetLeft("a")
	    tree.Root() // panics: tree is exclusively borrowed
	})

Literals

Trees may be written down as nested literals:

	tree := bintree.MustBuild("root",
	    bintree.Left("left"),
	    bintree.Right("right",
	        bintree.Right("rightright",
	            bintree.Left("rightrightleft"))))

A literal is pure sugar for a sequence of SetLeft/SetRight calls.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

*/
package bintree

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'bintree'
func tracer() tracing.Trace {
	return tracing.Select("bintree")
}

func assert(condition bool, msg string) {
	if !condition {
		panic("bintree: " + msg)
	}
}
