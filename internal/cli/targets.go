package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/mortar/pkg/target"
)

// targetsCommand creates the targets command for listing the build file.
func (c *CLI) targetsCommand(flags *buildFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "targets",
		Short: "List the targets in the build file",
		Long: `List the targets in the build file, in document order.

The first target is the default: 'mortar' with no arguments builds it.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runTargets(flags)
		},
	}
}

// runTargets prints each target with its outputs and a dependency summary.
func (c *CLI) runTargets(flags *buildFlags) error {
	bf, err := c.loadBuildFile(flags)
	if err != nil {
		return err
	}

	printInfo("%s", bf.Path)
	printNewline()

	for _, name := range bf.Order {
		t := bf.Targets[name]

		line := StyleTitle.Render(name)
		if name == bf.Default() {
			line += " " + StyleDim.Render("(default)")
		}
		fmt.Println(line)

		for _, out := range t.Outputs {
			printFile(out)
		}
		printDetail("%s", targetSummary(t))
	}
	return nil
}

// targetSummary condenses a target's shape into one line, e.g.
// "2 inputs · 1 deps · 3 commands".
func targetSummary(t *target.Target) string {
	var parts []string
	if n := len(t.Inputs()); n > 0 {
		parts = append(parts, fmt.Sprintf("%d inputs", n))
	}
	if n := len(t.Dependencies()); n > 0 {
		parts = append(parts, fmt.Sprintf("%d deps", n))
	}
	if n := len(t.Commands); n > 0 {
		parts = append(parts, fmt.Sprintf("%d commands", n))
	}
	if len(parts) == 0 {
		return "no inputs, always runs"
	}
	return strings.Join(parts, " · ")
}
