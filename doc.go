/*
Package rope implements ropes, a tree-structured representation of long strings.

A rope builds a binary tree on top of string fragments. Leaf nodes carry the
fragments, inner nodes carry exactly two children together with the aggregate
length and the depth of their subtree. Indexed access, splitting and
concatenation are performed in time proportional to the depth of the tree rather
than to the length of the text, which makes ropes a good fit for text buffers
of editors and similar clients.

	r := rope.New("hello world")
	left, right, err := r.Split(5)      // "hello" and " world"
	left.AppendString(", bye")          // "hello, bye"
	c, err := r.CharAt(6)               // 'w'; r is unchanged by the split

Nodes are immutable once they are part of a published tree. Split creates new
nodes along the path straddling the cut position only, and shares every
untouched subtree with the source rope. Concatenation creates a new root on top
of both operands without modifying them. Thus a rope may safely be read by many
goroutines at a time, as long as nobody re-binds its root by appending to it.

Positions are byte offsets into the UTF-8 encoded text. Clients working with
runes or grapheme clusters have to map positions themselves.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package rope

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'rope'.
func tracer() tracing.Trace {
	return tracing.Select("rope")
}

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("rope: "+msg, msgargs...)
		panic(msg)
	}
}
