// Package shell runs build commands through the platform shell.
//
// Commands in build files are plain strings. They are handed to sh -c on
// Unix-like systems and cmd /C on Windows, so the usual shell features
// (pipes, redirection, variable expansion) work as written. Execution is
// synchronous; a command runs to completion before the next one starts.
package shell

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"os"
	osexec "os/exec"
	"runtime"
	"syscall"

	"github.com/matzehuels/mortar/pkg/errors"
)

// Runner executes a single command string.
type Runner interface {
	// Run executes the command and returns nil if it exits with status 0.
	// A non-zero exit maps to a COMMAND_FAILED error carrying the status,
	// termination by signal to COMMAND_SIGNALED, and a failure to start
	// the process to an IO_ERROR.
	Run(ctx context.Context, command string) error
}

// Local runs commands on the host through the platform shell.
// The zero value runs in the current directory with the inherited
// environment, writing to os.Stdout and os.Stderr.
type Local struct {
	// Dir is the working directory for commands. Empty means the
	// process's current directory.
	Dir string

	// Env holds extra environment entries in KEY=VALUE form, appended to
	// the inherited environment.
	Env []string

	// Stdout and Stderr receive the command's output.
	// They default to os.Stdout and os.Stderr.
	Stdout io.Writer
	Stderr io.Writer
}

// Run implements Runner.
func (l *Local) Run(ctx context.Context, command string) error {
	bin, flag := shellFor(runtime.GOOS)
	cmd := osexec.CommandContext(ctx, bin, flag, command)
	cmd.Dir = l.Dir
	if len(l.Env) > 0 {
		cmd.Env = append(os.Environ(), l.Env...)
	}
	cmd.Stdout = l.Stdout
	if cmd.Stdout == nil {
		cmd.Stdout = os.Stdout
	}
	cmd.Stderr = l.Stderr
	if cmd.Stderr == nil {
		cmd.Stderr = os.Stderr
	}

	err := cmd.Run()
	if err == nil {
		return nil
	}
	// A kill triggered by context cancellation surfaces as the context's
	// own error so callers can tell interruption from command failure.
	if ctx.Err() != nil {
		return ctx.Err()
	}

	var exitErr *osexec.ExitError
	if !stderrors.As(err, &exitErr) {
		return errors.Wrap(errors.ErrCodeIO, err, "start command %q", command)
	}

	if code := exitErr.ExitCode(); code >= 0 {
		cause := &errors.ExitStatusError{Status: code}
		return errors.Wrap(errors.ErrCodeCommandFailed, cause, "command %q exited with status %d", command, code)
	}

	if ws, ok := exitErr.Sys().(syscall.WaitStatus); ok && ws.Signaled() {
		return errors.New(errors.ErrCodeCommandSignaled, "command %q terminated by signal %s", command, ws.Signal())
	}
	return errors.New(errors.ErrCodeCommandSignaled, "command %q terminated by signal", command)
}

// DryRun prints each command instead of executing it.
// It always reports success, so staleness propagation behaves exactly as
// it would in a real run.
type DryRun struct {
	// W receives one line per command. Defaults to os.Stdout.
	W io.Writer
}

// Run implements Runner.
func (d *DryRun) Run(_ context.Context, command string) error {
	w := d.W
	if w == nil {
		w = os.Stdout
	}
	_, err := fmt.Fprintln(w, command)
	return err
}

// shellFor returns the shell binary and its command flag for the given OS.
func shellFor(goos string) (bin, flag string) {
	if goos == "windows" {
		return "cmd", "/C"
	}
	return "sh", "-c"
}
