package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"github.com/matzehuels/mortar/pkg/build"
	"github.com/matzehuels/mortar/pkg/errors"
	"github.com/matzehuels/mortar/pkg/observability"
	"github.com/matzehuels/mortar/pkg/shell"
)

// buildOpts holds the flags that only apply to a build run.
type buildOpts struct {
	dryRun  bool   // print commands instead of executing them
	envFile string // explicit env file path
}

// runBuild brings the named targets up to date, in order. With no names the
// default target (first in the build file) is built.
func (c *CLI) runBuild(ctx context.Context, flags *buildFlags, opts buildOpts, names []string) error {
	bf, err := c.loadBuildFile(flags)
	if err != nil {
		return err
	}

	if len(names) == 0 {
		def := bf.Default()
		if def == "" {
			return errors.New(errors.ErrCodeMissingTarget, "build file %s declares no targets", bf.Path)
		}
		names = []string{def}
	}

	runner, err := c.newRunner(opts, bf.Path)
	if err != nil {
		return err
	}

	logger := c.Logger.With("build", shortBuildID())
	logger.Debug("loaded build file", "path", bf.Path, "targets", len(bf.Targets))

	if !opts.dryRun {
		// The dry-run runner prints commands itself; echoing would
		// duplicate every line.
		observability.SetBuildHooks(&echoHooks{logger: logger})
		defer observability.Reset()
	}

	updater := build.NewUpdater(bf.Targets, build.Options{
		Runner: runner,
		Logger: logger,
	})

	prog := newProgress(logger)
	updated := 0
	for _, name := range names {
		wasStale, err := updater.Update(ctx, name)
		if err != nil {
			return err
		}
		if wasStale {
			updated++
			printSuccess("%s updated", name)
		} else {
			printInfo("%s up to date", name)
		}
	}
	prog.done(fmt.Sprintf("Finished %d targets, %d updated", len(names), updated))

	return nil
}

// newRunner builds the shell runner for a build run. Variables from an
// explicit --env-file, or from a .env file next to the build file, are
// appended to the command environment.
func (c *CLI) newRunner(opts buildOpts, buildFilePath string) (shell.Runner, error) {
	if opts.dryRun {
		return &shell.DryRun{}, nil
	}
	env, err := loadEnvFile(opts.envFile, buildFilePath)
	if err != nil {
		return nil, err
	}
	return &shell.Local{Env: env}, nil
}

// loadEnvFile reads KEY=VALUE pairs for the command environment. An
// explicit path must exist; the conventional .env next to the build file is
// optional. Entries are sorted so the environment is deterministic.
func loadEnvFile(explicit, buildFilePath string) ([]string, error) {
	path := explicit
	if path == "" {
		candidate := filepath.Join(filepath.Dir(buildFilePath), ".env")
		if _, err := os.Stat(candidate); err != nil {
			return nil, nil
		}
		path = candidate
	}

	vars, err := godotenv.Read(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeIO, err, "read env file %s", path)
	}
	keys := make([]string, 0, len(vars))
	for key := range vars {
		keys = append(keys, key)
	}
	slices.Sort(keys)
	env := make([]string, 0, len(vars))
	for _, key := range keys {
		env = append(env, key+"="+vars[key])
	}
	return env, nil
}

// shortBuildID returns a short random identifier for one build invocation,
// used to correlate debug log lines.
func shortBuildID() string {
	return uuid.NewString()[:8]
}

// echoHooks prints each command before it runs, the way make echoes
// recipes, and debug-logs per-target timing.
type echoHooks struct {
	observability.NoopBuildHooks
	logger *log.Logger
}

func (h *echoHooks) OnCommandStart(_ context.Context, _, command string) {
	printCommand(command)
}

func (h *echoHooks) OnTargetComplete(_ context.Context, name string, updated bool, duration time.Duration, err error) {
	if err != nil || !updated {
		return
	}
	h.logger.Debug("target updated", "target", name, "duration", duration.Round(time.Millisecond))
}
