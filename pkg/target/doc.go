// Package target provides the build target model and graph finalization.
//
// # Overview
//
// Mortar builds are described as targets: named recipes that produce output
// files from input files by running shell commands. A target may depend on
// other targets, which are brought up to date first so that their outputs
// can serve as inputs.
//
// Front ends (package format) parse build files into flat slices of raw
// targets whose dependency references are still plain strings. [Finalize]
// turns such a slice into a validated [Map]: every reference is resolved to
// the canonical name of an existing target, inputs are separated from
// target dependencies, and the graph is proven acyclic.
//
// # Mixed and Split Dependencies
//
// Some build file formats (notably Makefile-style ones) list prerequisites
// as a single sequence where each entry is either an input file or another
// target; which one it is can only be decided once all targets are known.
// [DependencyList] models both shapes:
//
//   - [MixedDeps] creates a list of undifferentiated names.
//   - [SplitDeps] creates a list with inputs and dependencies already
//     separated, as written by formats with distinct keys for each.
//
// [DependencyList.Resolve] converts either shape into a resolved split
// list: mixed entries are classified by a lookup function, and declared
// dependencies are verified and rewritten to canonical target names.
// Reading the split views of a still-mixed list is a programming error and
// panics; resolution failures are ordinary errors.
//
// # Finalization
//
// [Finalize] walks the raw targets depth-first, carrying the chain of
// in-progress names so that cycle errors can report the full loop
// (a -> b -> a). It fails on duplicate target names, on dependency
// references that match no target, and on cycles. Failures abort the whole
// call; no partial map is returned.
//
// # Alternate Names
//
// A target may be referable by more than its primary name. Makefile rules
// with several targets on the left-hand side are parsed as one target whose
// rule names are all valid references. Formats attach this knowledge via
// the [Extra] capability; [Target.Refers] consults it. During resolution
// the primary name always wins over an alternate name, and alternate-name
// matches are taken in declaration order.
//
// # Concurrency
//
// Raw targets and finalization are single-threaded. A finalized Map is
// never modified afterwards and is safe for concurrent readers.
package target
