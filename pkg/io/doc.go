// Package io provides JSON import and export for target graphs.
//
// # Overview
//
// This package serializes finalized target maps to and from a simple
// JSON format. The format is designed for:
//
//   - Integration with external tools that inspect or generate builds
//   - Diffable snapshots of a build's structure in version control
//   - Round-trip preservation: export, re-import, and finalize identically
//
// # JSON Format
//
// The document has one top-level array holding targets sorted by name:
//
//	{
//	  "targets": [
//	    {
//	      "name": "app",
//	      "outputs": ["app"],
//	      "inputs": ["main.c"],
//	      "dependencies": ["lib"],
//	      "commands": ["cc -o app main.c lib.a"]
//	    },
//	    {"name": "lib", "outputs": ["lib.a"], "inputs": ["lib.c"]}
//	  ]
//	}
//
// Only the name is required. Dependencies always reference canonical
// target names because export happens after finalization.
//
// # Import
//
// Use [ImportJSON] to read targets from a file path, or [ReadJSON] to
// read from any io.Reader. Imported targets come back unfinalized with
// their inputs and dependencies already split; pass them to
// target.Finalize before building.
//
// # Export
//
// Use [ExportJSON] to write a map to a file, or [WriteJSON] to write to
// any io.Writer. Output is deterministic for a given map.
package io
