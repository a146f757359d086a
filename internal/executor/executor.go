// Package executor spawns the external commands chosen by the user.
// Children inherit the parent's stdin/stdout/stderr so interactive
// programs work; exit status is reported but never aborts the run.
package executor

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"syscall"

	"github.com/fatih/color"

	"github.com/ccinit-cli/ccinit/internal/expand"
)

var (
	statusWarn = color.New(color.FgYellow).SprintFunc()
	cmdStyle   = color.New(color.Faint).SprintFunc()
)

// Executor runs a single command to completion with inherited stdio.
type Executor struct {
	// Stdin, Stdout, Stderr are wired into spawned children.
	// Nil fields default to the process's own streams.
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	// Report receives informational status lines (nonzero exit, signal
	// death). Defaults to Stderr.
	Report io.Writer
}

// New returns an Executor attached to the process's own stdio.
func New() *Executor {
	return &Executor{
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
}

// Run expands command and args, spawns the process, and waits for it.
// A nonzero exit or signal death is reported to the user and returns nil;
// the run continues. Only a failure to start the process (unknown
// executable, permission denied) or an expansion failure returns an error.
func (e *Executor) Run(ctx context.Context, command string, args []string) error {
	name, err := expand.Expand(command)
	if err != nil {
		return fmt.Errorf("expanding command %q: %w", command, err)
	}
	argv, err := expand.ExpandAll(args)
	if err != nil {
		return fmt.Errorf("expanding arguments for %q: %w", command, err)
	}

	cmd := exec.CommandContext(ctx, name, argv...)
	cmd.Stdin = e.Stdin
	cmd.Stdout = e.Stdout
	cmd.Stderr = e.Stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			return fmt.Errorf("starting %s: %w", name, err)
		}
		e.reportExit(name, exitErr)
	}
	return nil
}

// reportExit prints an informational line for a child that exited
// nonzero or was killed by a signal.
func (e *Executor) reportExit(name string, exitErr *exec.ExitError) {
	w := e.Report
	if w == nil {
		w = e.Stderr
	}
	if w == nil {
		w = os.Stderr
	}

	if ws, ok := exitErr.Sys().(syscall.WaitStatus); ok && ws.Signaled() {
		fmt.Fprintf(w, "%s %s\n", statusWarn(fmt.Sprintf("terminated by signal %d:", int(ws.Signal()))), cmdStyle(name))
		return
	}
	fmt.Fprintf(w, "%s %s\n", statusWarn(fmt.Sprintf("exited with status %d:", exitErr.ExitCode())), cmdStyle(name))
}
