// Package dotgraph is the optional visualizer consuming
// madafsa.Automaton.Dump: it renders the automaton's DFS-ordered edge
// stream as a GraphViz "dot" file. It has no bearing on the automaton's
// invariants; if writing fails, callers can inspect the error returned by
// Writer.Err, but Dump itself never learns about it.
package dotgraph

import (
	"bufio"
	"fmt"
	"io"
)

// Writer implements madafsa.GraphDumper by emitting a "digraph" body,
// deduplicating edges that Dump's DFS may otherwise revisit through more
// than one path to the same shared state.
type Writer struct {
	w    *bufio.Writer
	name string
	seen map[string]bool
	err  error
}

// New wraps w as a GraphDumper. The graph is titled name.
func New(w io.Writer, name string) *Writer {
	return &Writer{
		w:    bufio.NewWriter(w),
		name: name,
		seen: make(map[string]bool),
	}
}

// Start writes the digraph header.
func (d *Writer) Start() {
	d.write(fmt.Sprintf("digraph %q {\n\trankdir=LR;\n\tnode [shape=circle];\n", d.name))
}

// AddEdge writes one edge, skipping any (from, to, label) triple already
// emitted: the same shared state can be reached along more than one
// root-to-state path, and the dot output only needs to show it once per
// distinct edge.
func (d *Writer) AddEdge(fromLabel, toLabel, edgeLabel string) {
	key := fromLabel + "\x00" + toLabel + "\x00" + edgeLabel
	if d.seen[key] {
		return
	}
	d.seen[key] = true
	d.write(fmt.Sprintf("\t%q -> %q [label=%q];\n", fromLabel, toLabel, edgeLabel))
}

// Done writes the closing brace and flushes the underlying writer.
func (d *Writer) Done() {
	d.write("}\n")
	if d.err == nil {
		d.err = d.w.Flush()
	}
}

// Err reports the first write error encountered, if any. Dump itself does
// not check this; callers that care about a truncated file should check
// it after Dump returns.
func (d *Writer) Err() error {
	return d.err
}

func (d *Writer) write(s string) {
	if d.err != nil {
		return
	}
	_, d.err = d.w.WriteString(s)
}
