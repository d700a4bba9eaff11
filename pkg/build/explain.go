package build

import (
	"fmt"
	"strings"
	"time"

	"github.com/matzehuels/mortar/pkg/errors"
)

// OutputStatus describes why one output file of a target does or does
// not call for an update.
type OutputStatus struct {
	// Path is the output file the status describes.
	Path string

	// Exists reports whether the output file is present.
	Exists bool

	// ModTime is the output's modification time; zero when the file
	// does not exist.
	ModTime time.Time

	// NewerInputs lists the input files modified after the output, in
	// declaration order. Empty when the output is current or missing.
	NewerInputs []string

	// AlwaysStale is set when the target has no input files, which
	// makes every run a fresh one regardless of file times.
	AlwaysStale bool
}

// NeedsUpdate reports whether this output calls for the target's
// commands to run.
func (s OutputStatus) NeedsUpdate() bool {
	return !s.Exists || s.AlwaysStale || len(s.NewerInputs) > 0
}

// String renders the status as a single human-readable line.
func (s OutputStatus) String() string {
	switch {
	case !s.Exists:
		return fmt.Sprintf("%q does not exist, needs update", s.Path)
	case s.AlwaysStale:
		return fmt.Sprintf("%q has no inputs, always needs update", s.Path)
	case len(s.NewerInputs) > 0:
		return fmt.Sprintf("%q older than %s, needs update", s.Path, strings.Join(s.NewerInputs, ", "))
	default:
		return fmt.Sprintf("%q is newer than all inputs, does not need update", s.Path)
	}
}

// Explain reports the staleness of each output of the named target
// without running anything. Only the target's own files are consulted;
// dependencies are not walked, so a result of "current" can still mean
// an update once a dependency is remade.
func (u *Updater) Explain(name string) ([]OutputStatus, error) {
	t, ok := u.targets[name]
	if !ok {
		return nil, errors.New(errors.ErrCodeMissingTarget, "no target named %q", name)
	}

	inputs := t.Inputs()
	times := make(map[string]time.Time, len(inputs))
	for _, in := range inputs {
		mtime, ok, err := u.fs.ModTime(in)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeIO, err, "stat input %s of target %s", in, name)
		}
		if !ok {
			return nil, errors.New(errors.ErrCodeMissingInput,
				"input %q of target %q does not exist", in, name)
		}
		times[in] = mtime
	}

	statuses := make([]OutputStatus, 0, len(t.Outputs))
	for _, out := range t.Outputs {
		mtime, ok, err := u.fs.ModTime(out)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeIO, err, "stat output %s of target %s", out, name)
		}
		status := OutputStatus{Path: out, Exists: ok, AlwaysStale: len(inputs) == 0}
		if ok {
			status.ModTime = mtime
			for _, in := range inputs {
				if mtime.Before(times[in]) {
					status.NewerInputs = append(status.NewerInputs, in)
				}
			}
		}
		statuses = append(statuses, status)
	}
	return statuses, nil
}
