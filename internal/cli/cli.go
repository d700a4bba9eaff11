package cli

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/mortar/pkg/buildinfo"
	"github.com/matzehuels/mortar/pkg/errors"
	"github.com/matzehuels/mortar/pkg/format"
	"github.com/matzehuels/mortar/pkg/target"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
// The root command itself runs the build; subcommands inspect the graph.
func (c *CLI) RootCommand() *cobra.Command {
	flags := &buildFlags{}
	opts := buildOpts{}

	root := &cobra.Command{
		Use:   "mortar [target...]",
		Short: "Mortar rebuilds files from recipes when their inputs change",
		Long: `Mortar is a small build tool in the make tradition. A build file declares
targets with output files, input files, dependencies on other targets, and
shell commands. Mortar rebuilds a target when an output is missing, older
than an input, or downstream of a dependency that was itself rebuilt.

Build files can be written as YAML, TOML, HCL, or a Makefile subset; with
no -f flag the MORTAR_FILE environment variable is consulted, then the
working directory is searched for one. Without arguments the first target
in the file is built.

Examples:
  mortar                      # build the first target in the build file
  mortar app tests            # build the named targets in order
  mortar -f build.yaml -n     # dry run against an explicit build file
  mortar -C subdir app        # change into subdir first`,
		Version:       buildinfo.Version,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runBuild(cmd.Context(), flags, opts, args)
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.PersistentFlags().StringVarP(&flags.file, "file", "f", "", "build file (default: $MORTAR_FILE, then discover in the working directory)")
	root.PersistentFlags().StringVarP(&flags.dir, "dir", "C", "", "change to this directory before doing anything")
	root.Flags().BoolVarP(&opts.dryRun, "dry-run", "n", false, "print commands without executing them")
	root.Flags().StringVar(&opts.envFile, "env-file", "", "file with KEY=VALUE lines added to the command environment")

	// Register all subcommands
	root.AddCommand(c.targetsCommand(flags))
	root.AddCommand(c.graphCommand(flags))
	root.AddCommand(c.explainCommand(flags))
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Build File Loading
// =============================================================================

// buildFlags holds the flags shared by every command that reads the build
// file. A pointer is passed to each subcommand constructor so the flags can
// be registered once on the root command.
type buildFlags struct {
	file string // explicit build file path, discovered when empty
	dir  string // directory to change into first
}

// buildFile is a parsed and finalized build file.
type buildFile struct {
	Path    string     // the file the targets came from
	Targets target.Map // finalized graph
	Order   []string   // canonical names in document order
}

// Default returns the name of the default build target, the first target in
// the document. Empty when the file declares no targets.
func (b *buildFile) Default() string {
	if len(b.Order) == 0 {
		return ""
	}
	return b.Order[0]
}

// loadBuildFile locates, parses, and finalizes the build file according to
// flags. With an empty file flag the MORTAR_FILE environment variable is
// consulted, then the working directory is probed for a well-known default
// name.
func (c *CLI) loadBuildFile(flags *buildFlags) (*buildFile, error) {
	if flags.dir != "" {
		if err := os.Chdir(flags.dir); err != nil {
			return nil, errors.Wrap(errors.ErrCodeIO, err, "change directory to %s", flags.dir)
		}
	}

	path := flags.file
	if path == "" {
		path = os.Getenv("MORTAR_FILE")
	}
	if path == "" {
		var err error
		path, err = format.Discover(".")
		if err != nil {
			return nil, err
		}
	}

	raw, err := format.ParseFile(path)
	if err != nil {
		return nil, err
	}
	targets, err := target.Finalize(raw)
	if err != nil {
		return nil, err
	}

	order := make([]string, len(raw))
	for i, t := range raw {
		order[i] = t.Name
	}
	return &buildFile{Path: path, Targets: targets, Order: order}, nil
}
