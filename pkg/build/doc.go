// Package build decides which targets are out of date and runs their
// commands.
//
// This package implements the update walk at the heart of mortar: given a
// finalized target map, it recursively brings a target and everything it
// depends on up to date, re-running commands only where the recorded file
// times say work is needed.
//
// # Staleness
//
// A target needs its commands run when any of the following hold:
//
//  1. A dependency was remade earlier in the same walk. Rebuilt
//     dependencies force dependents regardless of file times, because the
//     dependency's outputs are about to be newer than anything recorded.
//  2. The target lists no input files. With nothing to compare against,
//     the target always runs (this is how command-only targets like
//     "clean" or "test" behave).
//  3. An output file is missing, or is strictly older than the newest
//     input file. Equal timestamps count as up to date.
//
// Input files must exist: an input is a file nothing in the build
// produces, so if it is absent there is no way to proceed and the walk
// stops with ErrCodeMissingInput.
//
// # Update Walk
//
// Update visits dependencies before the target that needs them, in
// declaration order, and fails fast on the first error. Within one call
// to Update each target is decided at most once; a target shared by
// several dependents (a diamond) runs its commands a single time and
// later visits reuse the recorded outcome. The memo lasts only for the
// one call: a second Update starts from scratch and, if the first run
// produced fresh outputs, finds nothing to do.
//
// # Explain
//
// Explain answers "why would this target run?" without running anything.
// It reports the status of each output file against the target's inputs,
// which the CLI prints for humans.
//
// # Usage
//
//	targets, err := target.Finalize(parsed)
//	if err != nil {
//	    return err
//	}
//	updater := build.NewUpdater(targets, build.Options{Logger: logger})
//	updated, err := updater.Update(ctx, "app")
//	if err != nil {
//	    return err
//	}
//	if !updated {
//	    fmt.Println("app is up to date")
//	}
package build
