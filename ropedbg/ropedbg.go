/*
Package ropedbg implements helpers to debug the tree structure of ropes.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>


*/
package ropedbg

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"testing"
	"text/template"

	"github.com/npillmayer/rope"
	"github.com/npillmayer/schuko/tracing"
	tp "github.com/xlab/treeprint"
)

// tracer traces with key 'rope.dbg'.
func tracer() tracing.Trace {
	return tracing.Select("rope.dbg")
}

// Print returns a textual representation of a rope's tree, suitable for
// test logs:
//
//     Rope(len=11, depth=1)
//     .
//     └── <inner 11|1>
//         ├── "hello"
//         └── " world"
//
func Print(r rope.Rope) string {
	header := fmt.Sprintf("\nRope(len=%d, depth=%d)\n", r.Len(), r.Depth())
	printer := tp.New()
	printNode(printer, r.Root())
	return header + printer.String()
}

func printNode(printer tp.Tree, node rope.Node) {
	if node == nil {
		return
	}
	if node.IsLeaf() {
		if node.IsEmpty() {
			printer.AddNode("∅")
			return
		}
		printer.AddNode(fmt.Sprintf("%q", shortText(node.Fragment(), 24)))
		return
	}
	branch := printer.AddBranch(fmt.Sprintf("<inner %d|%d>", node.Len(), node.Depth()))
	printNode(branch, node.Left())
	printNode(branch, node.Right())
}

// --- GraphViz --------------------------------------------------------------

// Parameters for GraphViz drawing.
type graphParamsType struct {
	Fontname string
	NodeTmpl *template.Template
	EdgeTmpl *template.Template
}

type gnode struct {
	N    rope.Node
	Name string
}

type gedge struct {
	N1, N2 gnode
	Side   string
}

// ToGraphViz outputs a diagram for a rope's tree. The diagram is in GraphViz
// (DOT) format. Nodes shared between parts of the tree (e.g., after appending a
// rope to itself) are drawn once, with multiple incoming edges.
func ToGraphViz(r rope.Rope, w io.Writer) error {
	tmpl, err := template.New("rope").Parse(graphHeadTmpl)
	if err != nil {
		return err
	}
	gparams := graphParamsType{Fontname: "Helvetica"}
	gparams.NodeTmpl = template.Must(template.New("ropenode").Funcs(
		template.FuncMap{
			"shortstring": func(s string) string { return fmt.Sprintf("%q", shortText(s, 10)) },
		}).Parse(ropeNodeTmpl))
	gparams.EdgeTmpl = template.Must(template.New("ropeedge").Parse(ropeEdgeTmpl))
	if err = tmpl.Execute(w, gparams); err != nil {
		return err
	}
	dict := make(map[rope.Node]string, 64)
	if _, err = nodes(r.Root(), w, dict, &gparams); err != nil {
		return err
	}
	_, err = w.Write([]byte("}\n"))
	return err
}

// Dotty is a helper for testing. Given a rope and a testing.T, it will create a
// GraphViz image of the rope's tree and write it to a file in the current
// folder, choosing a unique file name. The image is in SVG format.
//
// If an error occurs, t.Error(…) will be set, causing the test to fail.
func Dotty(r rope.Rope, t *testing.T) {
	tmpfile, err := os.CreateTemp(".", "rope.*.dot")
	if err != nil {
		t.Error(err)
		return
	}
	defer func() {
		tmpfile.Close()
		os.Remove(tmpfile.Name()) // clean up
	}()
	t.Logf("writing rope digraph to %s\n", tmpfile.Name())
	if err := ToGraphViz(r, tmpfile); err != nil {
		t.Error(err)
		return
	}
	outOption := fmt.Sprintf("-o%s.svg", tmpfile.Name())
	cmd := exec.Command("dot", "-Tsvg", outOption, tmpfile.Name())
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	t.Logf("writing rope tree image to %s.svg\n", tmpfile.Name())
	if err := cmd.Run(); err != nil {
		t.Error(err.Error())
	}
}

func nodes(n rope.Node, w io.Writer, dict map[rope.Node]string, gparams *graphParamsType) (string, error) {
	if name, ok := dict[n]; ok {
		return name, nil // shared subtree, already drawn
	}
	name := fmt.Sprintf("node%05d", len(dict)+1)
	dict[n] = name
	tracer().Debugf("graphviz: %s = %v", name, n)
	if err := gparams.NodeTmpl.Execute(w, gnode{n, name}); err != nil {
		return name, err
	}
	if n.IsLeaf() {
		return name, nil
	}
	for i, ch := range []rope.Node{n.Left(), n.Right()} {
		chname, err := nodes(ch, w, dict, gparams)
		if err != nil {
			return name, err
		}
		e := gedge{N1: gnode{n, name}, N2: gnode{ch, chname}, Side: [2]string{"L", "R"}[i]}
		if err := gparams.EdgeTmpl.Execute(w, e); err != nil {
			return name, err
		}
	}
	return name, nil
}

// shortText truncates s to maxlen bytes. Quoting is left to the caller.
func shortText(s string, maxlen int) string {
	if len(s) > maxlen {
		return s[:maxlen] + "…"
	}
	return s
}

// --- Templates --------------------------------------------------------

const graphHeadTmpl = `digraph g {
  graph [labelloc="t" label="" splines=true overlap=false rankdir = "TB"];
  graph [fontname = "{{ .Fontname }}" fontsize=14] ;
   node [fontname = "{{ .Fontname }}" fontsize=14] ;
   edge [fontname = "{{ .Fontname }}" fontsize=11] ;
`

const ropeNodeTmpl = `{{ if .N.IsLeaf }}
{{ .Name }}	[ label={{ shortstring .N.Fragment }} shape=box style=filled fillcolor=grey95 fontname="Courier" fontsize=11.0 ] ;
{{ else }}
{{ .Name }}	[ label="{{ .N.Len }} | {{ .N.Depth }}" shape=ellipse style=filled fillcolor=lightblue3 ] ;
{{ end }}
`

const ropeEdgeTmpl = `{{ .N1.Name }} -> {{ .N2.Name }} [label="{{ .Side }}" weight=1] ;
`
