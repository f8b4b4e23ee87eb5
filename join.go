package rope

// join creates a new root on top of two trees. Neither tree is modified, and both
// remain valid on their own.
//
// No re-balancing takes place here; that is up to the rope (see balance.go).
func join(left, right Node) Node {
	n := makeInner(left, right)
	tracer().Debugf("join: %d + %d, depth is now %d", left.Len(), right.Len(), n.depth)
	return n
}
