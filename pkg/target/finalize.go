package target

import (
	"slices"
	"strings"

	"github.com/matzehuels/mortar/pkg/errors"
)

// Map is a finalized set of targets keyed by canonical name.
//
// Every dependency name of every target is a key of the map, the graph is
// acyclic, and all dependency lists are resolved. Maps are produced by
// [Finalize] and must not be modified afterwards.
type Map map[string]*Target

// Names returns all canonical target names in sorted order.
func (m Map) Names() []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Finalize validates the raw targets and assembles them into a finalized
// Map. The targets are modified in place: each dependency list is replaced
// by its resolved form.
//
// Finalization fails with a DUPLICATE_TARGET error when two targets share
// a primary name, an UNRESOLVED_DEPENDENCY error when a declared
// dependency matches no target, and a CYCLIC_DEPENDENCY error when the
// graph loops; the cycle error reports the full chain (a -> b -> a).
// Any failure aborts the whole call and no map is returned.
func Finalize(raw []*Target) (Map, error) {
	f := &finalizer{
		targets: raw,
		state:   make([]visitState, len(raw)),
		index:   make(map[string]int, len(raw)),
		out:     make(Map, len(raw)),
	}

	// Primary names must be valid and unique before any resolution runs,
	// so duplicates surface even when the duplicated target is never
	// referenced.
	for i, t := range raw {
		if err := errors.ValidateTargetName(t.Name); err != nil {
			return nil, err
		}
		if _, dup := f.index[t.Name]; dup {
			return nil, errors.New(errors.ErrCodeDuplicateTarget, "duplicate target %q", t.Name)
		}
		f.index[t.Name] = i
	}

	// Visit every target, referenced or not. The visit order is the
	// declaration order of the raw slice.
	for i := range raw {
		if err := f.visit(i, nil); err != nil {
			return nil, err
		}
	}

	return f.out, nil
}

// visitState tracks a target's progress through the depth-first walk.
type visitState uint8

const (
	unvisited visitState = iota
	inProgress
	done
)

// finalizer carries the walk state over the raw target slice. Targets are
// addressed by index; the in-progress path travels as an argument of visit
// so cycle errors can echo the exact chain that closed the loop.
type finalizer struct {
	targets []*Target
	state   []visitState
	index   map[string]int // primary name -> index in targets
	out     Map
}

// classify resolves a dependency reference to the canonical name of the
// target it refers to. Primary names win over alternate names; alternate
// names are scanned in declaration order. ok is false when no target
// matches, meaning the reference is an input file.
func (f *finalizer) classify(name string) (string, bool) {
	if i, ok := f.index[name]; ok {
		return f.targets[i].Name, true
	}
	for _, t := range f.targets {
		if t.Refers(name) {
			return t.Name, true
		}
	}
	return "", false
}

// visit finalizes the target at index i and, recursively, everything it
// depends on. path holds the names of the targets whose visits are
// currently on the stack, in order.
func (f *finalizer) visit(i int, path []string) error {
	t := f.targets[i]

	switch f.state[i] {
	case done:
		return nil
	case inProgress:
		chain := append(slices.Clone(path), t.Name)
		return errors.New(errors.ErrCodeCycle, "cyclic dependency: %s", strings.Join(chain, " -> "))
	}
	f.state[i] = inProgress

	resolved, err := t.Deps.Resolve(f.classify)
	if err != nil {
		return errors.New(errors.ErrCodeUnresolvedDep, "target %q: %s", t.Name, errors.UserMessage(err))
	}

	path = append(path, t.Name)
	for _, dep := range resolved.Dependencies() {
		// classify only returns primary names, so the index lookup
		// cannot miss here.
		if err := f.visit(f.index[dep], path); err != nil {
			return err
		}
	}

	t.Deps = resolved
	f.state[i] = done
	f.out[t.Name] = t
	return nil
}
