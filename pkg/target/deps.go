package target

import (
	"slices"

	"github.com/matzehuels/mortar/pkg/errors"
)

// LookupFunc classifies a dependency reference during resolution.
// If the name refers to a known target, it returns that target's canonical
// (primary) name and true. Otherwise it returns "" and false, meaning the
// name is an input file.
type LookupFunc func(name string) (canonical string, ok bool)

// DependencyList holds a target's inputs and dependencies, either as one
// mixed name sequence or split into the two kinds.
//
// Mixed lists come from formats where a prerequisite may be a file or a
// target and the two cannot be told apart at parse time. Split lists come
// from formats with separate keys for inputs and dependencies. Both shapes
// pass through [DependencyList.Resolve] during finalization, which
// produces a split list with every dependency verified and canonicalized.
//
// A nil *DependencyList is an empty split list.
type DependencyList struct {
	mixed  bool
	names  []string // mixed entries, in declaration order
	inputs []string // split: input file paths
	deps   []string // split: dependency target names
}

// MixedDeps creates an unresolved list of undifferentiated names.
// Each entry is either an input file or a target name; which one is
// decided by [DependencyList.Resolve].
func MixedDeps(names ...string) *DependencyList {
	return &DependencyList{mixed: true, names: names}
}

// SplitDeps creates a list with inputs and dependencies already separated.
// The dependency names are still unverified; resolution checks that each
// refers to a known target and rewrites it to the canonical name.
func SplitDeps(inputs, dependencies []string) *DependencyList {
	return &DependencyList{inputs: inputs, deps: dependencies}
}

// IsMixed reports whether the entries are still undifferentiated.
func (l *DependencyList) IsMixed() bool {
	return l != nil && l.mixed
}

// Names returns the undifferentiated entries of a mixed list in
// declaration order. It panics if the list is already split.
func (l *DependencyList) Names() []string {
	if !l.IsMixed() {
		panic("target: dependency list is already split")
	}
	return l.names
}

// Inputs returns the input file paths of a split list in declaration
// order. It panics if the list is still mixed.
func (l *DependencyList) Inputs() []string {
	if l == nil {
		return nil
	}
	if l.mixed {
		panic("target: input files are still mixed")
	}
	return l.inputs
}

// Dependencies returns the dependency target names of a split list in
// declaration order. It panics if the list is still mixed.
func (l *DependencyList) Dependencies() []string {
	if l == nil {
		return nil
	}
	if l.mixed {
		panic("target: dependencies are still mixed")
	}
	return l.deps
}

// Resolve converts the list into a resolved split list using lookup to
// classify names. The receiver is left untouched.
//
// For a mixed list, each entry is classified in order: names the lookup
// recognizes become dependencies under their canonical name, all others
// become input files. For a split list, inputs pass through unchanged and
// every declared dependency must be recognized by the lookup; an
// unrecognized one fails resolution with an UNRESOLVED_DEPENDENCY error
// naming it.
func (l *DependencyList) Resolve(lookup LookupFunc) (*DependencyList, error) {
	if l == nil {
		return &DependencyList{}, nil
	}

	if l.mixed {
		res := &DependencyList{}
		for _, name := range l.names {
			if canonical, ok := lookup(name); ok {
				res.deps = append(res.deps, canonical)
			} else {
				res.inputs = append(res.inputs, name)
			}
		}
		return res, nil
	}

	res := &DependencyList{inputs: slices.Clone(l.inputs)}
	for _, name := range l.deps {
		canonical, ok := lookup(name)
		if !ok {
			return nil, errors.New(errors.ErrCodeUnresolvedDep, "dependency %q is not a known target", name)
		}
		res.deps = append(res.deps, canonical)
	}
	return res, nil
}
