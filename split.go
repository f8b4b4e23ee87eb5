package rope

import "fmt"

/*
Splitting a tree works by recursive descent along the path straddling the cut
position. Let i be the cut position and parent the node visited. The result of
splitting parent is written into two drafts, L and R:

- if parent is a leaf, its fragment is sliced into [0…i) for L and [i…len) for R.

- if i falls into parent's left child, parent's right subtree is attached to R
  as its right child, unmodified. Splitting continues in the left child, with
  results going to L and to a fresh draft, which becomes R's left child.

- otherwise parent's left subtree is attached to L as its left child, unmodified.
  Splitting continues in the right child at i-len(left), with results going to a
  fresh draft, which becomes L's right child, and to R.

Subtrees which are not touched by the cut are referenced, not copied. Thus
splitting costs O(depth), not O(n).

Whenever a cut lands exactly on a fragment's boundary, one of the two slices is
empty. Instead of creating an empty leaf, the draft slot for the slice is left
void. This leaves drafts with a single present child ("half" drafts), which are
removed by the normalizer (normalize.go).
*/

// draft is a node under construction by the split engine. A draft is either
//
//   - void: an absent slot (neither a node nor children),
//   - final: a published node, either shared with the source tree or a new leaf,
//   - inner: a node with left and right child drafts, at most one of them void.
//
// Drafts never escape the package. The normalizer turns them into published
// nodes.
type draft struct {
	node        Node   // set for final drafts
	left, right *draft // children of inner drafts
	length      int
	depth       int
}

func (d *draft) isVoid() bool {
	return d == nil || (d.node == nil && d.left == nil && d.right == nil)
}

func (d *draft) isFinal() bool {
	return d != nil && d.node != nil
}

// isHalf is true for an inner draft with exactly one present child. This is an
// invalid state for any published node.
func (d *draft) isHalf() bool {
	if d.isVoid() || d.isFinal() {
		return false
	}
	return d.left.isVoid() != d.right.isVoid()
}

// getHalf returns the single present child of a half draft.
func (d *draft) getHalf() (*draft, error) {
	if !d.isHalf() {
		return nil, fmt.Errorf("%w: draft %v is not a half node", ErrInvalidState, d)
	}
	if d.left.isVoid() {
		return d.right, nil
	}
	return d.left, nil
}

// set makes d a final draft for a published node n.
func (d *draft) set(n Node) {
	d.node = n
	d.length = n.Len()
	d.depth = n.Depth()
}

func (d *draft) updateDepth() {
	depth := 0
	for _, ch := range []*draft{d.left, d.right} {
		if !ch.isVoid() {
			depth = max(depth, ch.depth)
		}
	}
	d.depth = depth + 1
}

func (d *draft) String() string {
	switch {
	case d.isVoid():
		return "<draft void>"
	case d.isFinal():
		return fmt.Sprintf("<draft %v>", d.node)
	}
	return fmt.Sprintf("<draft %d|%d L=%v R=%v>", d.length, d.depth, d.left, d.right)
}

// split partitions the tree at root into trees for [0…i) and [i…len). It is the
// caller's responsibility to check that 0 ≤ i ≤ root.Len().
//
// With copyAll set, the tree is deep-copied first, so the results share no
// nodes with the source tree nor with each other.
func split(root Node, i int, copyAll bool) (Node, Node) {
	assertThat(i >= 0 && i <= root.Len(), "split position %d out of range [0…%d]", i, root.Len())
	if copyAll {
		root = deepCopy(root)
	}
	left, right := &draft{}, &draft{}
	cut(root, i, left, right)
	tracer().Debugf("split at %d: L=%v, R=%v", i, left, right)
	return normalize(left), normalize(right)
}

// cut is the recursive step of split. Drafts left and right receive the slices
// of parent for [0…i) and [i…len).
func cut(parent Node, i int, left, right *draft) {
	switch p := parent.(type) {
	case *leaf:
		switch {
		case i == 0: // all of the fragment goes to the right
			right.set(p)
		case i == p.Len(): // all of the fragment goes to the left
			left.set(p)
		default:
			left.set(makeLeaf(p.text[:i]))
			right.set(makeLeaf(p.text[i:]))
		}
	case *inner:
		left.length = i
		right.length = p.length - i
		if i < p.left.Len() {
			right.right = &draft{}
			right.right.set(p.right)
			right.left = &draft{}
			cut(p.left, i, left, right.left)
			right.updateDepth()
		} else {
			left.left = &draft{}
			left.left.set(p.left)
			left.right = &draft{}
			cut(p.right, i-p.left.Len(), left.right, right)
			left.updateDepth()
		}
	default:
		panic(fmt.Sprintf("rope: unknown node type %T", parent))
	}
}
