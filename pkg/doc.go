// Package pkg provides the core libraries for the mortar build tool.
//
// # Overview
//
// Mortar rebuilds files from recipes when their inputs change, in the
// tradition of make. The pkg directory is organized into three main areas:
//
//  1. [target] + [format] - Build file front ends and the target graph
//  2. [build] + [shell] - Staleness checking and command execution
//  3. [render] + [io] - Graph export (DOT, JSON)
//
// # Architecture
//
// The typical data flow through mortar:
//
//	Build file (YAML/TOML/HCL/JSON/Makefile)
//	         ↓
//	    [format] package (parse into raw targets)
//	         ↓
//	    [target] package (finalize: resolve, validate, order)
//	         ↓
//	    [build] package (walk dependencies, compare file times)
//	         ↓
//	    [shell] package (run commands through sh -c)
//
// # Quick Start
//
// Parse a build file and bring a target up to date:
//
//	import (
//	    "context"
//	    "github.com/matzehuels/mortar/pkg/build"
//	    "github.com/matzehuels/mortar/pkg/format"
//	    "github.com/matzehuels/mortar/pkg/target"
//	)
//
//	// 1. Parse and finalize
//	raw, _ := format.ParseFile("mortar.yaml")
//	targets, _ := target.Finalize(raw)
//
//	// 2. Update
//	updater := build.NewUpdater(targets, build.Options{})
//	updated, _ := updater.Update(context.Background(), "app")
//
// # Main Packages
//
// [target] - The format-independent target model: mixed and split
// dependency lists, reference resolution, and Finalize, which turns raw
// targets into a validated acyclic Map.
//
// [format] - Build file front ends for YAML, TOML, HCL, JSON, and a
// Makefile subset. Front ends only translate syntax; all validation
// happens at finalization.
//
// [build] - The updater: recursive staleness walk over the finalized
// graph, modification time comparison, and per-output Explain reporting.
//
// [shell] - Command execution through the platform shell, including the
// dry-run runner.
//
// [render] - DOT export of the dependency graph for graphviz.
//
// [io] - JSON interchange: export a finalized graph, import it back as
// raw targets.
//
// [errors] - Error codes and helpers shared by every package.
//
// [observability] - Build hooks for tracing target and command execution.
//
// [buildinfo] - Version information injected at build time.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...               # All tests
//	go test ./pkg/build/...         # Specific package
//
// [target]: https://pkg.go.dev/github.com/matzehuels/mortar/pkg/target
// [format]: https://pkg.go.dev/github.com/matzehuels/mortar/pkg/format
// [build]: https://pkg.go.dev/github.com/matzehuels/mortar/pkg/build
// [shell]: https://pkg.go.dev/github.com/matzehuels/mortar/pkg/shell
// [render]: https://pkg.go.dev/github.com/matzehuels/mortar/pkg/render
// [io]: https://pkg.go.dev/github.com/matzehuels/mortar/pkg/io
// [errors]: https://pkg.go.dev/github.com/matzehuels/mortar/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/mortar/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/mortar/pkg/buildinfo
package pkg
