package rope

// props holds the configuration a rope carries along. Ropes derived from a rope
// (by splitting or appending) inherit its props.
type props struct {
	maxDepth    int  // rebalance after append if depth exceeds maxDepth; 0 = never
	copyOnSplit bool // deep-copy the source tree before splitting it
}

// Option is a type to help initializing ropes at creation time.
type Option func(props) props

// RebalanceAbove is an option to have a rope rebalance itself whenever an append
// results in a tree deeper than depth. A depth ≤ 0 switches automatic
// rebalancing off, which is the default.
//
// Use it like this:
//
//     r := rope.New("Hello", rope.RebalanceAbove(32))
//
func RebalanceAbove(depth int) Option {
	return func(p props) props {
		if depth < 0 {
			depth = 0
		}
		p.maxDepth = depth
		return p
	}
}

// CopyOnSplit is an option to have Split produce trees which share no node
// with the source rope, nor with each other. This costs O(n) time and space per
// split and is rarely needed, as nodes of a rope are never modified once
// published. Default is false, i.e. untouched subtrees are shared.
func CopyOnSplit(doCopy bool) Option {
	return func(p props) props {
		p.copyOnSplit = doCopy
		return p
	}
}
