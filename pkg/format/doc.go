// Package format reads build files into targets.
//
// Each on-disk syntax (YAML, TOML, HCL, JSON, Makefile) has a front end
// implementing [Format]. Front ends only translate syntax: they return
// targets in declaration order with dependencies still as written, and
// take no part in resolution, cycle checks, or name canonicalization.
// That happens later, in target.Finalize, which means targets parsed
// from different files and formats can be combined before finalization.
//
// # Build File Shape
//
// All formats describe the same thing: named targets with commands,
// dependencies, and output files. The YAML form:
//
//	app:
//	  cmds: [cc -o app main.c lib.a]
//	  deps: [main.c, lib]
//	  outs: [app]
//
// deps mixes input files and target names; finalization tells them
// apart. Inputs can also be given explicitly (ins/inputs), which skips
// the mixed state for that target. Makefiles get the same treatment
// through their native rule syntax.
//
// # Discovery
//
// Discover probes a directory for well-known file names in precedence
// order (mortar.yaml first, makefile last). Detect picks a front end
// for an explicit path by file name, so `-f build.yaml` works for any
// name with a recognized extension.
package format
