package rope

// leafChunkSize is the size up to which adjacent small fragments are merged
// into a single leaf during re-balancing. Fragments exceeding it are never
// broken up.
const leafChunkSize = 512

// rebalance builds a height-balanced tree for the text of n. Non-empty fragments
// are collected left to right, with runs of small fragments coalesced, and then
// re-assembled by recursive halving, resulting in depth ⌈log₂ k⌉ for k leafs.
//
// Leafs which do not get merged are shared with n.
func rebalance(n Node) Node {
	var leafs []*leaf
	var run []*leaf // current run of small fragments
	var runlen int
	flush := func() {
		switch len(run) {
		case 0:
		case 1:
			leafs = append(leafs, run[0])
		default:
			b := make([]byte, 0, runlen)
			for _, l := range run {
				b = append(b, l.text...)
			}
			leafs = append(leafs, makeLeaf(string(b)))
		}
		run, runlen = run[:0], 0
	}
	_ = eachLeaf(n, 0, func(l *leaf, _ int) error {
		if l.IsEmpty() {
			return nil
		}
		if runlen+l.Len() > leafChunkSize {
			flush()
		}
		run = append(run, l)
		runlen += l.Len()
		return nil
	})
	flush()
	tracer().Debugf("rebalance: %d bytes in %d leafs, old depth %d", n.Len(), len(leafs), n.Depth())
	if len(leafs) == 0 {
		return makeLeaf("")
	}
	return buildBalanced(leafs)
}

func buildBalanced(leafs []*leaf) Node {
	if len(leafs) == 1 {
		return leafs[0]
	}
	mid := len(leafs) / 2
	return makeInner(buildBalanced(leafs[:mid]), buildBalanced(leafs[mid:]))
}
