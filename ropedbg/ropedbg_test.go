package ropedbg

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/npillmayer/rope"
)

func TestPrint(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rope.dbg")
	defer teardown()
	//
	r := rope.Concat(rope.New("hello"), rope.New(" world"))
	s := Print(r)
	t.Log(s)
	assert.Contains(t, s, "Rope(len=11, depth=1)")
	assert.Contains(t, s, "<inner 11|1>")
	assert.Contains(t, s, `"hello"`)
	assert.Contains(t, s, `" world"`)
}

func TestPrintEmpty(t *testing.T) {
	s := Print(rope.Rope{})
	assert.Contains(t, s, "Rope(len=0, depth=0)")
	assert.Contains(t, s, "∅")
}

func TestGraphViz(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rope.dbg")
	defer teardown()
	//
	a := rope.Concat(rope.New("ab"), rope.New("cd"))
	r := rope.Concat(a, a) // shares subtree a
	var buf bytes.Buffer
	require.NoError(t, ToGraphViz(r, &buf))
	dot := buf.String()
	t.Log(dot)
	assert.True(t, strings.HasPrefix(dot, "digraph g {"))
	assert.True(t, strings.HasSuffix(dot, "}\n"))
	// root, a, "ab", "cd" are drawn once each
	assert.Equal(t, 4, strings.Count(dot, "[ label="))
	var edges []string
	for _, line := range strings.Split(dot, "\n") {
		if strings.Contains(line, "->") {
			edges = append(edges, strings.Fields(line)[0]+"->"+strings.Fields(line)[2])
		}
	}
	want := []string{
		"node00002->node00003", "node00002->node00004",
		"node00001->node00002", "node00001->node00002",
	}
	if diff := cmp.Diff(want, edges); diff != "" {
		t.Errorf("edges mismatch (-want +got):\n%s", diff)
	}
}

func TestShortText(t *testing.T) {
	assert.Equal(t, "abc", shortText("abc", 10))
	assert.Equal(t, "ab…", shortText("abcdef", 2))
}
