// Package cli implements the mortar command-line interface.
//
// The root command runs a build: it locates the build file, finalizes the
// target graph, and brings the requested targets up to date. Subcommands
// inspect the same graph without running anything. The CLI is built using
// cobra and supports verbose logging via the charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - mortar [target...]: build the named targets (default: the first
//     target in the build file)
//   - targets: list the targets defined in the build file
//   - graph: export the dependency graph as DOT or JSON
//   - explain: show per-output staleness reasons for one target
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. The CLI
// owns one logger, shared by every command; each build invocation tags its
// debug lines with a short random build id.
//
// # Example
//
//	import "github.com/matzehuels/mortar/internal/cli"
//
//	func main() {
//	    c := cli.New(os.Stderr, cli.LogInfo)
//	    if err := c.RootCommand().Execute(); err != nil {
//	        os.Exit(1)
//	    }
//	}
package cli

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// newLogger creates a new logger with timestamp formatting.
// The logger writes to w and filters messages at the specified level.
// Timestamps are formatted as "HH:MM:SS.ms" (e.g., "14:32:01.45").
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress tracks the start time of an operation and logs completion with elapsed duration.
// It is safe for sequential use by a single goroutine; concurrent calls to done will race.
type progress struct {
	logger *log.Logger
	start  time.Time
}

// newProgress creates a progress tracker that captures the current time as start.
// The returned progress should call done when the operation completes.
func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg along with the elapsed time since progress was created.
// The duration is rounded to the nearest millisecond.
// Example output: "Finished 3 targets, 1 updated (1.234s)"
func (p *progress) done(msg string) {
	p.logger.Infof("%s (%s)", msg, time.Since(p.start).Round(time.Millisecond))
}
