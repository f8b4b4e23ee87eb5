package rope

import "fmt"

// Check verifies the structural invariants of a rope's tree:
//
//   - every inner node has two children,
//   - the length of an inner node equals the sum of its children's lengths,
//   - the depth of an inner node is 1 + the maximum depth of its children.
//
// A violation is reported as an error wrapping ErrInvalidState. Ropes created
// and modified through this package's API never violate them.
func (r Rope) Check() error {
	if r.root == nil {
		return nil
	}
	return checkNode(r.root, nil)
}

func checkNode(n Node, path []int) error {
	switch t := n.(type) {
	case *leaf:
		return nil
	case *inner:
		if t.left == nil || t.right == nil {
			return fmt.Errorf("%w: inner node at %v has fewer than two children", ErrInvalidState, path)
		}
		if err := checkNode(t.left, append(path, 0)); err != nil {
			return err
		}
		if err := checkNode(t.right, append(path, 1)); err != nil {
			return err
		}
		if l := t.left.Len() + t.right.Len(); t.length != l {
			return fmt.Errorf("%w: inner node at %v has length %d, children sum up to %d",
				ErrInvalidState, path, t.length, l)
		}
		if d := 1 + max(t.left.Depth(), t.right.Depth()); t.depth != d {
			return fmt.Errorf("%w: inner node at %v has depth %d, expected %d",
				ErrInvalidState, path, t.depth, d)
		}
		return nil
	case nil:
		return fmt.Errorf("%w: nil node at %v", ErrInvalidState, path)
	}
	return fmt.Errorf("%w: unknown node type %T at %v", ErrInvalidState, n, path)
}
