package target

// Extra carries format-specific data attached to a target.
//
// Formats may store whatever bookkeeping they need behind this interface;
// the graph only asks one question of it: whether a dependency reference
// may mean this target. Makefile-style formats use this for rules with
// multiple names, where any output name refers to the same target.
type Extra interface {
	// HasName reports whether the given target may be referred to by name.
	// The target is passed in so implementations can consult its fields
	// without holding a back reference.
	HasName(t *Target, name string) bool
}

// Target is a format-independent recipe that creates outputs from inputs.
//
// Commands run in order through the platform shell whenever the target is
// out of date. Dependencies are other targets that must be brought up to
// date first; their outputs typically serve as this target's inputs.
type Target struct {
	// Name is the primary name. Unique within a finalized Map.
	Name string

	// Outputs are the file paths produced by the commands.
	Outputs []string

	// Deps holds inputs and target dependencies, mixed or split.
	// A nil Deps is an empty split list.
	Deps *DependencyList

	// Commands are shell command strings, executed in order.
	Commands []string

	// Extra is optional format-specific data. May be nil.
	Extra Extra
}

// Refers reports whether name may refer to this target, either as its
// primary name or through a format-specific alternate name.
func (t *Target) Refers(name string) bool {
	if t.Name == name {
		return true
	}
	if t.Extra != nil {
		return t.Extra.HasName(t, name)
	}
	return false
}

// Inputs returns the target's input files.
//
// It panics if the dependency list is still mixed. Inputs are only known
// once resolution has separated them from target dependencies, which is
// guaranteed for every target in a finalized Map.
func (t *Target) Inputs() []string {
	return t.Deps.Inputs()
}

// Dependencies returns the canonical names of the targets this target
// depends on.
//
// It panics if the dependency list is still mixed, for the same reason as
// [Target.Inputs].
func (t *Target) Dependencies() []string {
	return t.Deps.Dependencies()
}
