package rope

// normalize turns a draft produced by the split engine into a published tree.
// Children are normalized first; a half draft is then replaced by its single
// child. A void draft results in an empty leaf.
//
// Lengths of inner drafts have been set top-down by the split engine, before
// their children were known. normalize re-computes them bottom-up and asserts
// that both agree.
func normalize(d *draft) Node {
	if n := publish(d); n != nil {
		return n
	}
	return makeLeaf("")
}

// publish returns nil for void drafts.
func publish(d *draft) Node {
	if d.isVoid() {
		return nil
	}
	if d.isFinal() {
		return d.node
	}
	if d.isHalf() {
		child, err := d.getHalf()
		assertThat(err == nil, "normalize: %v", err)
		n := publish(child)
		assertThat(n.Len() == d.length, "normalize: length of half node %d != %d", d.length, n.Len())
		return n
	}
	n := makeInner(publish(d.left), publish(d.right))
	assertThat(n.Len() == d.length, "normalize: length of inner node %d != %d", d.length, n.Len())
	return n
}
