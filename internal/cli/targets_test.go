package cli

import (
	"testing"

	"github.com/matzehuels/mortar/pkg/target"
)

func TestTargetSummary(t *testing.T) {
	tests := []struct {
		name string
		tgt  *target.Target
		want string
	}{
		{
			name: "full target",
			tgt: &target.Target{
				Deps:     target.SplitDeps([]string{"a.c", "b.c"}, []string{"lib"}),
				Commands: []string{"cc", "ln"},
			},
			want: "2 inputs · 1 deps · 2 commands",
		},
		{
			name: "commands only",
			tgt: &target.Target{
				Deps:     target.SplitDeps(nil, nil),
				Commands: []string{"rm -f app"},
			},
			want: "1 commands",
		},
		{
			name: "empty",
			tgt:  &target.Target{Deps: target.SplitDeps(nil, nil)},
			want: "no inputs, always runs",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := targetSummary(tt.tgt); got != tt.want {
				t.Errorf("targetSummary() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRunTargets(t *testing.T) {
	path := writeBuildFile(t, t.TempDir(), "mortar.yaml", testBuildFile)

	if err := testCLI().runTargets(&buildFlags{file: path}); err != nil {
		t.Fatalf("runTargets() error = %v", err)
	}
}
