package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/mortar/pkg/build"
)

// explainCommand creates the explain command for staleness inspection.
func (c *CLI) explainCommand(flags *buildFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "explain <target>",
		Short: "Show why a target's outputs are stale or fresh",
		Long: `Show, for each output of a target, whether it would be rebuilt and why:
the output is missing, older than a named input, or the target has no
inputs and always runs.

Only the target's own inputs are consulted; dependencies are not updated
or recursed into. Use a plain 'mortar <target>' to act on the result.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runExplain(flags, args[0])
		},
	}
}

// runExplain reports the per-output staleness status of one target.
func (c *CLI) runExplain(flags *buildFlags, name string) error {
	bf, err := c.loadBuildFile(flags)
	if err != nil {
		return err
	}

	updater := build.NewUpdater(bf.Targets, build.Options{})
	statuses, err := updater.Explain(name)
	if err != nil {
		return err
	}

	if len(statuses) == 0 {
		printInfo("%s declares no outputs", name)
		return nil
	}
	for _, status := range statuses {
		if status.NeedsUpdate() {
			printWarning("%s", status)
		} else {
			printSuccess("%s", status)
		}
	}
	return nil
}
