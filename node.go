package rope

import (
	"fmt"
	"strings"
)

/*
A rope's tree is built of two distinct kinds of nodes: leaf nodes carry a
fragment of text, inner nodes carry exactly two children. Both kinds implement
interface Node, which is sealed, so clients may inspect a tree but never
construct one.

There is no such thing as an inner node with a single child in a published
tree. The split engine temporarily produces those (see type draft in split.go),
but normalization removes them before a tree is handed out.
*/

// Node is a read-only view of a node of a rope's tree.
type Node interface {
	Len() int         // aggregate length of all fragments in the subtree
	Depth() int       // 0 for leafs, 1 + max(depth of children) for inner nodes
	IsLeaf() bool     // is this node a leaf?
	IsEmpty() bool    // is this node a leaf without a fragment?
	Left() Node       // left child, nil for leafs
	Right() Node      // right child, nil for leafs
	Fragment() string // text fragment of a leaf, "" for inner nodes
	sealed()
}

// --- Leaf nodes ------------------------------------------------------------

type leaf struct {
	text string
}

// makeLeaf wraps a fragment. The empty string results in an empty leaf.
func makeLeaf(fragment string) *leaf {
	return &leaf{text: fragment}
}

func (l *leaf) Len() int         { return len(l.text) }
func (l *leaf) Depth() int       { return 0 }
func (l *leaf) IsLeaf() bool     { return true }
func (l *leaf) IsEmpty() bool    { return len(l.text) == 0 }
func (l *leaf) Left() Node       { return nil }
func (l *leaf) Right() Node      { return nil }
func (l *leaf) Fragment() string { return l.text }
func (l *leaf) sealed()          {}

func (l *leaf) String() string {
	if l.IsEmpty() {
		return "<leaf ∅>"
	}
	return fmt.Sprintf("<leaf %q>", l.text)
}

// --- Inner nodes -----------------------------------------------------------

type inner struct {
	left, right Node
	length      int
	depth       int
}

// makeInner creates an inner node on top of two subtrees. The subtrees are
// referenced, not copied.
func makeInner(left, right Node) *inner {
	assertThat(left != nil && right != nil, "inner node requires two children")
	return &inner{
		left:   left,
		right:  right,
		length: left.Len() + right.Len(),
		depth:  1 + max(left.Depth(), right.Depth()),
	}
}

func (n *inner) Len() int         { return n.length }
func (n *inner) Depth() int       { return n.depth }
func (n *inner) IsLeaf() bool     { return false }
func (n *inner) IsEmpty() bool    { return false }
func (n *inner) Left() Node       { return n.left }
func (n *inner) Right() Node      { return n.right }
func (n *inner) Fragment() string { return "" }
func (n *inner) sealed()          {}

func (n *inner) String() string {
	return fmt.Sprintf("<inner %d|%d>", n.length, n.depth)
}

// --- Tree operations -------------------------------------------------------

// deepCopy duplicates every node of a subtree. Lengths and depths are preserved.
// Fragments are Go strings and therefore shared, as they are immutable anyway.
func deepCopy(n Node) Node {
	switch t := n.(type) {
	case *leaf:
		return &leaf{text: t.text}
	case *inner:
		return &inner{
			left:   deepCopy(t.left),
			right:  deepCopy(t.right),
			length: t.length,
			depth:  t.depth,
		}
	}
	panic(fmt.Sprintf("rope: unknown node type %T", n))
}

// locate finds the leaf containing position i, together with the offset of i
// within the leaf. i must be within [0…n.Len()).
func locate(n Node, i int) (*leaf, int) {
	for {
		switch t := n.(type) {
		case *leaf:
			return t, i
		case *inner:
			if i < t.left.Len() {
				n = t.left
			} else {
				i -= t.left.Len()
				n = t.right
			}
		default:
			panic(fmt.Sprintf("rope: unknown node type %T", n))
		}
	}
}

// eachLeaf calls f for every leaf of a subtree, left to right, with the position of
// the leaf's first byte. Iteration stops as soon as f returns an error.
func eachLeaf(n Node, pos int, f func(*leaf, int) error) error {
	switch t := n.(type) {
	case *leaf:
		return f(t, pos)
	case *inner:
		if err := eachLeaf(t.left, pos, f); err != nil {
			return err
		}
		return eachLeaf(t.right, pos+t.left.Len(), f)
	}
	panic(fmt.Sprintf("rope: unknown node type %T", n))
}

// materialize concatenates all fragments of a subtree.
func materialize(n Node) string {
	var b strings.Builder
	b.Grow(n.Len())
	_ = eachLeaf(n, 0, func(l *leaf, _ int) error {
		b.WriteString(l.text)
		return nil
	})
	return b.String()
}
