package build

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/mortar/pkg/errors"
	"github.com/matzehuels/mortar/pkg/observability"
	"github.com/matzehuels/mortar/pkg/shell"
	"github.com/matzehuels/mortar/pkg/target"
)

// DefaultMaxDepth is the maximum dependency chain length the update walk
// follows before giving up. Finalized maps are acyclic, so a real build
// never comes close; the cap exists so a hand-built map with a cycle
// fails with a diagnostic instead of exhausting the stack.
const DefaultMaxDepth = 4096

// Options configures an Updater. The zero value selects the host
// filesystem, a local shell runner, a discarding logger, and
// DefaultMaxDepth.
type Options struct {
	FS       FS
	Runner   shell.Runner
	Logger   *log.Logger
	MaxDepth int
}

// Updater brings targets from a finalized map up to date.
//
// The Updater holds no state between calls to Update - each call starts
// a fresh memo of decided targets. A single Updater can serve many
// sequential Update calls; sharing one across concurrent calls is only
// safe when the runner and logger are.
type Updater struct {
	targets  target.Map
	fs       FS
	runner   shell.Runner
	logger   *log.Logger
	maxDepth int
}

// NewUpdater creates an updater over a finalized target map.
func NewUpdater(targets target.Map, opts Options) *Updater {
	u := &Updater{
		targets:  targets,
		fs:       opts.FS,
		runner:   opts.Runner,
		logger:   opts.Logger,
		maxDepth: opts.MaxDepth,
	}
	if u.fs == nil {
		u.fs = SystemFS()
	}
	if u.runner == nil {
		u.runner = &shell.Local{}
	}
	if u.logger == nil {
		u.logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	if u.maxDepth <= 0 {
		u.maxDepth = DefaultMaxDepth
	}
	return u
}

// updateRun carries the per-call state of one update walk.
type updateRun struct {
	// memo records, for every target decided so far in this walk,
	// whether it was remade. Later visits reuse the outcome, so a
	// target shared by several dependents runs its commands at most
	// once per walk.
	memo map[string]bool
}

// Update brings the named target and everything it depends on up to
// date. It reports whether the named target itself was remade; false
// means every output was already current.
func (u *Updater) Update(ctx context.Context, name string) (bool, error) {
	run := &updateRun{memo: make(map[string]bool)}
	return u.update(ctx, run, name, 0)
}

func (u *Updater) update(ctx context.Context, run *updateRun, name string, depth int) (bool, error) {
	if depth >= u.maxDepth {
		return false, errors.New(errors.ErrCodeDepthExceeded,
			"dependency chain at target %q exceeds %d levels", name, u.maxDepth)
	}
	if updated, ok := run.memo[name]; ok {
		return updated, nil
	}
	t, ok := u.targets[name]
	if !ok {
		return false, errors.New(errors.ErrCodeMissingTarget, "no target named %q", name)
	}
	if err := ctx.Err(); err != nil {
		return false, err
	}

	hooks := observability.Build()
	hooks.OnTargetStart(ctx, name)
	start := time.Now()
	updated, err := u.updateTarget(ctx, run, t, depth)
	hooks.OnTargetComplete(ctx, name, updated, time.Since(start), err)
	if err != nil {
		return false, err
	}
	run.memo[name] = updated
	return updated, nil
}

// updateTarget decides one target after its dependencies are current,
// and runs its commands when it is stale.
func (u *Updater) updateTarget(ctx context.Context, run *updateRun, t *target.Target, depth int) (bool, error) {
	depUpdated := false
	for _, dep := range t.Dependencies() {
		updated, err := u.update(ctx, run, dep, depth+1)
		if err != nil {
			return false, err
		}
		depUpdated = depUpdated || updated
	}

	reason := "dependency remade"
	if !depUpdated {
		// A remade dependency forces the target outright; file times
		// only matter when every dependency was already current.
		stale, why, err := u.stale(t)
		if err != nil {
			return false, err
		}
		if !stale {
			u.logger.Debug("target up to date", "target", t.Name)
			return false, nil
		}
		reason = why
	}

	u.logger.Debug("updating target", "target", t.Name, "reason", reason)
	hooks := observability.Build()
	for _, command := range t.Commands {
		u.logger.Debug("running command", "target", t.Name, "command", command)
		hooks.OnCommandStart(ctx, t.Name, command)
		start := time.Now()
		err := u.runner.Run(ctx, command)
		hooks.OnCommandComplete(ctx, t.Name, command, time.Since(start), err)
		if err != nil {
			return false, fmt.Errorf("target %s: %w", t.Name, err)
		}
	}
	return true, nil
}

// stale reports whether the target's own files call for an update, with
// a short reason when they do. Outputs are compared against the newest
// input; a tie counts as current.
func (u *Updater) stale(t *target.Target) (bool, string, error) {
	inputs := t.Inputs()
	if len(inputs) == 0 {
		return true, "no inputs", nil
	}

	var newest time.Time
	for _, in := range inputs {
		mtime, ok, err := u.fs.ModTime(in)
		if err != nil {
			return false, "", errors.Wrap(errors.ErrCodeIO, err, "stat input %s of target %s", in, t.Name)
		}
		if !ok {
			return false, "", errors.New(errors.ErrCodeMissingInput,
				"input %q of target %q does not exist", in, t.Name)
		}
		if mtime.After(newest) {
			newest = mtime
		}
	}

	for _, out := range t.Outputs {
		mtime, ok, err := u.fs.ModTime(out)
		if err != nil {
			return false, "", errors.Wrap(errors.ErrCodeIO, err, "stat output %s of target %s", out, t.Name)
		}
		if !ok {
			return true, fmt.Sprintf("output %s missing", out), nil
		}
		if mtime.Before(newest) {
			return true, fmt.Sprintf("output %s older than inputs", out), nil
		}
	}
	return false, "", nil
}
