package target

import (
	"slices"
	"strings"
	"testing"

	"github.com/matzehuels/mortar/pkg/errors"
)

func TestFinalize(t *testing.T) {
	raw := []*Target{
		{Name: "app", Outputs: []string{"app"}, Deps: MixedDeps("main.o", "lib")},
		{Name: "lib", Outputs: []string{"lib.a"}, Deps: SplitDeps([]string{"lib.c"}, nil)},
		{Name: "standalone", Outputs: []string{"doc.txt"}},
	}

	m, err := Finalize(raw)
	if err != nil {
		t.Fatalf("Finalize() unexpected error: %v", err)
	}

	// The key set equals the primary names of the raw targets, including
	// targets nothing depends on.
	wantNames := []string{"app", "lib", "standalone"}
	if got := m.Names(); !slices.Equal(got, wantNames) {
		t.Errorf("Names() = %v, want %v", got, wantNames)
	}

	app := m["app"]
	if app.Deps.IsMixed() {
		t.Fatal("app dependency list is still mixed after Finalize")
	}
	if !slices.Equal(app.Inputs(), []string{"main.o"}) {
		t.Errorf("app.Inputs() = %v, want [main.o]", app.Inputs())
	}
	if !slices.Equal(app.Dependencies(), []string{"lib"}) {
		t.Errorf("app.Dependencies() = %v, want [lib]", app.Dependencies())
	}
}

func TestFinalizeCanonicalizesAlternateNames(t *testing.T) {
	raw := []*Target{
		{Name: "app", Deps: MixedDeps("lib.a")},
		{Name: "lib", Outputs: []string{"lib.a"}, Extra: &aliasExtra{names: []string{"lib.a"}}},
	}

	m, err := Finalize(raw)
	if err != nil {
		t.Fatalf("Finalize() unexpected error: %v", err)
	}

	if deps := m["app"].Dependencies(); !slices.Equal(deps, []string{"lib"}) {
		t.Errorf("app.Dependencies() = %v, want canonical [lib]", deps)
	}
}

func TestFinalizePrimaryNameBeatsAlternate(t *testing.T) {
	// "util" is both a primary name and an alternate name of "lib"; the
	// primary name must win.
	raw := []*Target{
		{Name: "app", Deps: MixedDeps("util")},
		{Name: "util"},
		{Name: "lib", Extra: &aliasExtra{names: []string{"util"}}},
	}

	m, err := Finalize(raw)
	if err != nil {
		t.Fatalf("Finalize() unexpected error: %v", err)
	}

	if deps := m["app"].Dependencies(); !slices.Equal(deps, []string{"util"}) {
		t.Errorf("app.Dependencies() = %v, want [util]", deps)
	}
}

func TestFinalizeSelfCycle(t *testing.T) {
	raw := []*Target{
		{Name: "x", Deps: SplitDeps(nil, []string{"x"})},
	}

	_, err := Finalize(raw)
	if err == nil {
		t.Fatal("Finalize() error = nil, want CYCLIC_DEPENDENCY")
	}
	if !errors.Is(err, errors.ErrCodeCycle) {
		t.Fatalf("Finalize() error code = %v, want %v", errors.GetCode(err), errors.ErrCodeCycle)
	}
	if msg := err.Error(); !strings.Contains(msg, "x -> x") {
		t.Errorf("cycle error = %q, want chain x -> x", msg)
	}
}

func TestFinalizeTwoTargetCycle(t *testing.T) {
	raw := []*Target{
		{Name: "a", Deps: SplitDeps(nil, []string{"b"})},
		{Name: "b", Deps: SplitDeps(nil, []string{"a"})},
	}

	_, err := Finalize(raw)
	if err == nil {
		t.Fatal("Finalize() error = nil, want CYCLIC_DEPENDENCY")
	}
	if !errors.Is(err, errors.ErrCodeCycle) {
		t.Fatalf("Finalize() error code = %v, want %v", errors.GetCode(err), errors.ErrCodeCycle)
	}
	// The chain names both targets regardless of visit order.
	msg := err.Error()
	if !strings.Contains(msg, "a") || !strings.Contains(msg, "b") {
		t.Errorf("cycle error = %q, want both target names in the chain", msg)
	}
}

func TestFinalizeDuplicateName(t *testing.T) {
	raw := []*Target{
		{Name: "app", Commands: []string{"true"}},
		{Name: "app", Commands: []string{"false"}},
	}

	_, err := Finalize(raw)
	if err == nil {
		t.Fatal("Finalize() error = nil, want DUPLICATE_TARGET")
	}
	if !errors.Is(err, errors.ErrCodeDuplicateTarget) {
		t.Errorf("Finalize() error code = %v, want %v", errors.GetCode(err), errors.ErrCodeDuplicateTarget)
	}
}

func TestFinalizeUnresolvedDependency(t *testing.T) {
	raw := []*Target{
		{Name: "app", Deps: SplitDeps(nil, []string{"ghost"})},
	}

	_, err := Finalize(raw)
	if err == nil {
		t.Fatal("Finalize() error = nil, want UNRESOLVED_DEPENDENCY")
	}
	if !errors.Is(err, errors.ErrCodeUnresolvedDep) {
		t.Fatalf("Finalize() error code = %v, want %v", errors.GetCode(err), errors.ErrCodeUnresolvedDep)
	}
	msg := err.Error()
	if !strings.Contains(msg, "ghost") || !strings.Contains(msg, "app") {
		t.Errorf("unresolved error = %q, want both the target and the missing name", msg)
	}
}

func TestFinalizeEmptyName(t *testing.T) {
	raw := []*Target{{Name: ""}}

	_, err := Finalize(raw)
	if err == nil {
		t.Fatal("Finalize() error = nil, want INVALID_TARGET")
	}
	if !errors.Is(err, errors.ErrCodeInvalidTarget) {
		t.Errorf("Finalize() error code = %v, want %v", errors.GetCode(err), errors.ErrCodeInvalidTarget)
	}
}

func TestFinalizeMixedInputsStayInputs(t *testing.T) {
	// A mixed entry that matches no target is an input, not an error.
	raw := []*Target{
		{Name: "app", Deps: MixedDeps("missing.c")},
	}

	m, err := Finalize(raw)
	if err != nil {
		t.Fatalf("Finalize() unexpected error: %v", err)
	}
	if inputs := m["app"].Inputs(); !slices.Equal(inputs, []string{"missing.c"}) {
		t.Errorf("app.Inputs() = %v, want [missing.c]", inputs)
	}
}

func TestFinalizeStableUnderRefinalization(t *testing.T) {
	build := func() []*Target {
		return []*Target{
			{Name: "app", Deps: MixedDeps("main.o", "lib")},
			{Name: "lib", Deps: SplitDeps([]string{"lib.c"}, nil)},
		}
	}

	m1, err := Finalize(build())
	if err != nil {
		t.Fatalf("first Finalize() error: %v", err)
	}

	// Feeding the finalized targets through again must not change the
	// outcome: resolved lists resolve to themselves.
	second := make([]*Target, 0, len(m1))
	for _, name := range m1.Names() {
		second = append(second, m1[name])
	}
	m2, err := Finalize(second)
	if err != nil {
		t.Fatalf("second Finalize() error: %v", err)
	}

	if !slices.Equal(m1.Names(), m2.Names()) {
		t.Errorf("refinalized Names() = %v, want %v", m2.Names(), m1.Names())
	}
	for _, name := range m1.Names() {
		if !slices.Equal(m1[name].Inputs(), m2[name].Inputs()) {
			t.Errorf("target %s inputs changed: %v -> %v", name, m1[name].Inputs(), m2[name].Inputs())
		}
		if !slices.Equal(m1[name].Dependencies(), m2[name].Dependencies()) {
			t.Errorf("target %s dependencies changed: %v -> %v", name, m1[name].Dependencies(), m2[name].Dependencies())
		}
	}
}
