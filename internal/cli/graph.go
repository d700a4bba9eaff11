package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/mortar/pkg/errors"
	pkgio "github.com/matzehuels/mortar/pkg/io"
	"github.com/matzehuels/mortar/pkg/render"
)

// graphCommand creates the graph command for exporting the dependency graph.
func (c *CLI) graphCommand(flags *buildFlags) *cobra.Command {
	var (
		formatName string
		output     string
		inputs     bool
	)

	cmd := &cobra.Command{
		Use:   "graph",
		Short: "Export the dependency graph as DOT or JSON",
		Long: `Export the finalized dependency graph.

DOT output renders with graphviz:

  mortar graph | dot -Tsvg -o targets.svg

JSON output is the mortar interchange format, which 'mortar -f' also
accepts as a build file.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runGraph(flags, formatName, output, inputs)
		},
	}

	cmd.Flags().StringVar(&formatName, "format", "dot", "output format: dot (default), json")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (stdout if empty)")
	cmd.Flags().BoolVar(&inputs, "inputs", false, "include input files in the DOT graph")

	return cmd
}

// runGraph parses the build file and writes the graph in the requested format.
func (c *CLI) runGraph(flags *buildFlags, formatName, output string, inputs bool) error {
	bf, err := c.loadBuildFile(flags)
	if err != nil {
		return err
	}

	out, err := openOutput(output)
	if err != nil {
		return errors.Wrap(errors.ErrCodeIO, err, "create %s", output)
	}
	defer out.Close()

	switch formatName {
	case "dot":
		if _, err := io.WriteString(out, render.ToDOT(bf.Targets, render.Options{Inputs: inputs})); err != nil {
			return errors.Wrap(errors.ErrCodeIO, err, "write graph")
		}
	case "json":
		if err := pkgio.WriteJSON(bf.Targets, out); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown graph format: %s (available: dot, json)", formatName)
	}

	if output != "" {
		printSuccess("Wrote %d targets", len(bf.Targets))
		printFile(output)
	}
	return nil
}

// nopCloser wraps an io.Writer with a no-op Close method.
// It is used to make os.Stdout compatible with io.WriteCloser.
type nopCloser struct{ io.Writer }

// Close implements io.Closer with a no-op.
func (nopCloser) Close() error { return nil }

// openOutput returns a WriteCloser for the given path.
// If path is empty, it returns os.Stdout wrapped in nopCloser.
// Otherwise, it creates the file at path, overwriting if it exists.
func openOutput(path string) (io.WriteCloser, error) {
	if path == "" {
		return nopCloser{os.Stdout}, nil
	}
	return os.Create(path)
}
