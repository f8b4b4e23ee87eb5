package rope

import (
	"fmt"
)

// Rope is a handle for a tree of text fragments.
//
// A rope created by
//
//     Rope{}
//
// is a valid object and behaves like the empty string.
//
// Ropes are cheap to copy, as they just reference the root of a tree. All
// operations except Append, AppendString and Rebalance leave the rope unchanged
// and return new ropes instead. Append re-binds the root of the handle it is
// called on; copies of the handle made before still see the old text.
//
// Due to their internal structure ropes do have performance characteristics
// differing from Go strings:
//
//     Operation     |   Rope        |  String
//     --------------+---------------+--------
//     Index         |   O(depth)    |   O(1)
//     Split         |   O(depth)    |   O(1)
//     Concatenate   |   O(1)        |   O(n)
//     Materialize   |   O(n)        |   O(1)
//
type Rope struct {
	props
	root Node
}

// New creates a rope for a fragment of text. The empty string creates an empty
// rope, with a single empty leaf.
func New(fragment string, opts ...Option) Rope {
	r := Rope{root: makeLeaf(fragment)}
	for _, option := range opts {
		r.props = option(r.props)
	}
	return r
}

// derive creates a rope for a new root, inheriting the options of r.
func (r Rope) derive(root Node) Rope {
	return Rope{props: r.props, root: root}
}

func (r Rope) node() Node {
	if r.root == nil {
		return makeLeaf("")
	}
	return r.root
}

// Root returns the root node of the rope's tree, for inspection.
func (r Rope) Root() Node {
	return r.node()
}

// Len returns the length of the rope in bytes.
func (r Rope) Len() int {
	if r.root == nil {
		return 0
	}
	return r.root.Len()
}

// Depth returns the depth of the rope's tree. A rope consisting of a single leaf
// has depth 0.
func (r Rope) Depth() int {
	if r.root == nil {
		return 0
	}
	return r.root.Depth()
}

// IsFlat returns true if the rope consists of a single leaf.
func (r Rope) IsFlat() bool {
	return r.Depth() == 0
}

// IsVoid returns true if r represents the empty string.
func (r Rope) IsVoid() bool {
	return r.Len() == 0
}

// CharAt returns the byte at position i.
// Will return ErrIndexOutOfRange if i is not within [0…Len()).
func (r Rope) CharAt(i int) (byte, error) {
	if i < 0 || i >= r.Len() {
		return 0, fmt.Errorf("%w: index %d, length is %d", ErrIndexOutOfRange, i, r.Len())
	}
	l, offset := locate(r.root, i)
	return l.text[offset], nil
}

// Split splits a rope into two ropes at position i. The left rope holds [0…i),
// the right rope holds [i…Len()). It is legal to split at Len(), resulting in an
// empty right rope. Splitting at 0 results in an empty left rope.
// Will return ErrIndexOutOfRange if i is not within [0…Len()].
//
// r remains unchanged.
func (r Rope) Split(i int) (Rope, Rope, error) {
	if i < 0 || i > r.Len() {
		return Rope{}, Rope{}, fmt.Errorf("%w: cannot split at %d, length is %d",
			ErrIndexOutOfRange, i, r.Len())
	}
	left, right := split(r.node(), i, r.copyOnSplit)
	return r.derive(left), r.derive(right), nil
}

// SubSequence returns a rope for [start…end).
// Will return ErrInvalidArgument if start < 0, end > Len() or start > end.
func (r Rope) SubSequence(start, end int) (Rope, error) {
	if start < 0 || end > r.Len() || start > end {
		return Rope{}, fmt.Errorf("%w: illegal subsequence [%d…%d) of length %d",
			ErrInvalidArgument, start, end, r.Len())
	}
	sub := r
	if start > 0 {
		_, sub, _ = sub.Split(start)
	}
	if end-start < sub.Len() {
		sub, _, _ = sub.Split(end - start)
	}
	return sub, nil
}

// Append appends another rope to r. The root of r is replaced by a new root
// with the old root as its left child and other's root as its right child.
// Neither the old root nor other is modified.
//
// If r has been configured with option RebalanceAbove and the resulting tree is
// too deep, it is re-balanced.
func (r *Rope) Append(other Rope) {
	r.root = join(r.node(), other.node())
	if r.maxDepth > 0 && r.root.Depth() > r.maxDepth {
		tracer().Debugf("rope depth %d exceeds %d, re-balancing", r.root.Depth(), r.maxDepth)
		r.root = rebalance(r.root)
	}
}

// AppendString appends a fragment of text to r. See Append.
func (r *Rope) AppendString(fragment string) {
	r.Append(New(fragment))
}

// Concat returns a new rope for the concatenation of a and b. a and b remain
// unchanged. The result inherits the options of a.
func Concat(a, b Rope) Rope {
	a.Append(b)
	return a
}

// Insert returns a new rope with a fragment inserted at position i.
// Will return ErrIndexOutOfRange if i is not within [0…Len()].
func (r Rope) Insert(i int, fragment string) (Rope, error) {
	left, right, err := r.Split(i)
	if err != nil {
		return r, err
	}
	if fragment != "" {
		left.AppendString(fragment)
	}
	left.Append(right)
	return left, nil
}

// Delete returns a new rope with [start…end) removed.
// Will return ErrInvalidArgument if start < 0, end > Len() or start > end.
func (r Rope) Delete(start, end int) (Rope, error) {
	if start < 0 || end > r.Len() || start > end {
		return r, fmt.Errorf("%w: cannot delete [%d…%d) from length %d",
			ErrInvalidArgument, start, end, r.Len())
	}
	left, rest, _ := r.Split(start)
	_, right, _ := rest.Split(end - start)
	left.Append(right)
	return left, nil
}

// Clone returns a rope for the same text, sharing no nodes with r.
func (r Rope) Clone() Rope {
	return r.derive(deepCopy(r.node()))
}

// Rebalance rebuilds the tree of r to be height-balanced, and to consist of leafs of
// moderate size. Copies of r made before still reference the old tree.
func (r *Rope) Rebalance() {
	r.root = rebalance(r.node())
}

// String returns the text of the rope. This may be an expensive operation, as it
// will allocate a buffer for all the bytes of the rope.
func (r Rope) String() string {
	return materialize(r.node())
}

// EachFragment calls f for every non-empty fragment of the rope, left to right,
// together with the position of the fragment's first byte. Iteration stops as
// soon as f returns an error, which is then returned.
func (r Rope) EachFragment(f func(fragment string, pos int) error) error {
	return eachLeaf(r.node(), 0, func(l *leaf, pos int) error {
		if l.IsEmpty() {
			return nil
		}
		return f(l.text, pos)
	})
}
