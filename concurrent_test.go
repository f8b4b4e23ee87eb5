package rope_test

import (
	"fmt"
	"testing"

	"go.uber.org/goleak"
	"golang.org/x/sync/errgroup"

	"github.com/npillmayer/rope"
)

// Published trees are immutable, therefore readers need no locking, even if
// they split and append to ropes of their own derived from a shared one.
func TestConcurrentReaders(t *testing.T) {
	defer goleak.VerifyNone(t)
	//
	shared := build("The", " quick", " brown", " fox", " jumps", " over", " the lazy dog")
	text := shared.String()
	var g errgroup.Group
	for w := 0; w < 8; w++ {
		w := w
		g.Go(func() error {
			for i := 0; i < shared.Len(); i++ {
				c, err := shared.CharAt(i)
				if err != nil {
					return err
				}
				if c != text[i] {
					return fmt.Errorf("reader %d: expected %q at %d, have %q", w, text[i], i, c)
				}
				left, right, err := shared.Split(i)
				if err != nil {
					return err
				}
				left.AppendString("|")
				if s := rope.Concat(left, right).String(); s != text[:i]+"|"+text[i:] {
					return fmt.Errorf("reader %d: split/append at %d yields %q", w, i, s)
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		t.Fatal(err)
	}
	if shared.String() != text {
		t.Errorf("shared rope has been modified: %q", shared.String())
	}
}
