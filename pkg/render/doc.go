// Package render turns finalized target maps into graph descriptions.
//
// # DOT
//
// [ToDOT] emits the dependency graph in Graphviz DOT format, which every
// common graph tool can consume:
//
//	dot := render.ToDOT(targets, render.Options{Inputs: true})
//	os.WriteFile("build.dot", []byte(dot), 0o644)
//	// dot -Tsvg build.dot > build.svg
//
// Targets appear as boxes and dependency edges point from a target to
// what it needs. With Options.Inputs set, input files join the graph as
// grey notes with dashed edges, which shows where file changes enter
// the build.
//
// Output is deterministic for a given map: nodes and edges are emitted
// in sorted order, so the DOT text is diffable and cache-friendly.
package render
