package target

import (
	"slices"
	"testing"
)

// aliasExtra marks a target as referable by a fixed set of extra names.
type aliasExtra struct {
	names []string
}

func (a *aliasExtra) HasName(t *Target, name string) bool {
	return slices.Contains(a.names, name)
}

func TestRefers(t *testing.T) {
	plain := &Target{Name: "app"}
	aliased := &Target{Name: "lib", Extra: &aliasExtra{names: []string{"lib.a", "liblib"}}}

	tests := []struct {
		name   string
		target *Target
		ref    string
		want   bool
	}{
		{"primary name", plain, "app", true},
		{"unknown name", plain, "lib", false},
		{"primary name with extra", aliased, "lib", true},
		{"alternate name", aliased, "lib.a", true},
		{"second alternate name", aliased, "liblib", true},
		{"unknown name with extra", aliased, "other", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.target.Refers(tt.ref); got != tt.want {
				t.Errorf("Refers(%q) = %v, want %v", tt.ref, got, tt.want)
			}
		})
	}
}

func TestTargetAccessors(t *testing.T) {
	tgt := &Target{
		Name: "app",
		Deps: SplitDeps([]string{"main.o"}, []string{"lib"}),
	}

	if !slices.Equal(tgt.Inputs(), []string{"main.o"}) {
		t.Errorf("Inputs() = %v, want [main.o]", tgt.Inputs())
	}
	if !slices.Equal(tgt.Dependencies(), []string{"lib"}) {
		t.Errorf("Dependencies() = %v, want [lib]", tgt.Dependencies())
	}
}

func TestTargetAccessorsNilDeps(t *testing.T) {
	tgt := &Target{Name: "app"}

	if got := tgt.Inputs(); got != nil {
		t.Errorf("Inputs() = %v with nil Deps, want nil", got)
	}
	if got := tgt.Dependencies(); got != nil {
		t.Errorf("Dependencies() = %v with nil Deps, want nil", got)
	}
}

func TestTargetAccessorsPanicWhileMixed(t *testing.T) {
	tgt := &Target{Name: "app", Deps: MixedDeps("main.o", "lib")}

	defer func() {
		if recover() == nil {
			t.Error("Inputs() on a target with mixed deps did not panic")
		}
	}()
	tgt.Inputs()
}
