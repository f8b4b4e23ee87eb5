package rope_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/npillmayer/rope"
)

// chop cuts text into fragments of (at most) n bytes each.
func chop(text string, n int) []string {
	if n <= 0 {
		n = 1
	}
	fragments := []string{""}
	for len(text) > n {
		fragments = append(fragments, text[:n])
		text = text[n:]
	}
	return append(fragments, text)
}

func FuzzSplitJoin(f *testing.F) {
	f.Add("hello world", uint8(3), uint16(5))
	f.Add("", uint8(1), uint16(0))
	f.Add("The quick brown fox jumps over the lazy dog", uint8(7), uint16(43))
	f.Fuzz(func(t *testing.T, text string, chunk uint8, at uint16) {
		r := build(chop(text, int(chunk))...)
		require.Equal(t, text, r.String())
		require.Equal(t, len(text), r.Len())
		i := int(at) % (len(text) + 1)
		left, right, err := r.Split(i)
		require.NoError(t, err)
		require.Equal(t, text[:i], left.String())
		require.Equal(t, text[i:], right.String())
		require.NoError(t, left.Check())
		require.NoError(t, right.Check())
		joined := rope.Concat(left, right)
		require.Equal(t, text, joined.String())
		require.Equal(t, 1+max(left.Depth(), right.Depth()), joined.Depth())
		if i < len(text) {
			c, err := joined.CharAt(i)
			require.NoError(t, err)
			require.Equal(t, text[i], c)
		}
		balanced := joined
		balanced.Rebalance()
		require.Equal(t, text, balanced.String())
		require.NoError(t, balanced.Check())
	})
}
