package render

import (
	"bytes"
	"fmt"
	"slices"

	"github.com/matzehuels/mortar/pkg/target"
)

// Options configures DOT rendering.
type Options struct {
	// Inputs includes input files as their own nodes. When false, only
	// targets and the edges between them appear.
	Inputs bool
}

// ToDOT converts a finalized target map to Graphviz DOT format.
func ToDOT(m target.Map, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph targets {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white];\n")
	buf.WriteString("\n")

	names := m.Names()
	for _, name := range names {
		fmt.Fprintf(&buf, "  %q;\n", name)
	}
	if opts.Inputs {
		for _, in := range inputFiles(m) {
			fmt.Fprintf(&buf, "  %q [shape=note, style=\"filled,dashed\", fillcolor=lightgrey];\n", in)
		}
	}

	buf.WriteString("\n")
	for _, name := range names {
		t := m[name]
		for _, dep := range t.Dependencies() {
			fmt.Fprintf(&buf, "  %q -> %q;\n", name, dep)
		}
		if opts.Inputs {
			for _, in := range t.Inputs() {
				fmt.Fprintf(&buf, "  %q -> %q [style=dashed];\n", name, in)
			}
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

// inputFiles collects the distinct input files across the map, sorted.
func inputFiles(m target.Map) []string {
	seen := make(map[string]bool)
	var files []string
	for _, name := range m.Names() {
		for _, in := range m[name].Inputs() {
			if !seen[in] {
				seen[in] = true
				files = append(files, in)
			}
		}
	}
	slices.Sort(files)
	return files
}
