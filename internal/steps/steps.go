// Package steps routes each configured step to the confirmation prompt
// or the selection menu and triggers command execution for the chosen
// actions. Steps are independent: a failing step is reported and the
// run continues with the next one.
package steps

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"

	"github.com/ccinit-cli/ccinit/internal/config"
	"github.com/ccinit-cli/ccinit/internal/executor"
	"github.com/ccinit-cli/ccinit/internal/menu"
	"github.com/ccinit-cli/ccinit/internal/prompt"
)

var (
	stepHeader = color.New(color.FgCyan, color.Bold).SprintFunc()
	skipStyle  = color.New(color.Faint).SprintFunc()
	failStyle  = color.New(color.FgRed).SprintFunc()
)

// Confirmer asks a yes/no question.
type Confirmer interface {
	Ask(question string, def prompt.Default) (bool, error)
}

// Selector presents a checkbox menu and returns the selection flags.
type Selector interface {
	Show(header string, options []menu.Option) ([]bool, error)
}

// CommandRunner executes one expanded command to completion.
type CommandRunner interface {
	Run(ctx context.Context, command string, args []string) error
}

// Runner iterates the step list and dispatches each step.
type Runner struct {
	Exec   CommandRunner
	Prompt Confirmer
	Menu   Selector

	// Yes resolves every confirmation to its default (no default means
	// yes) and every selection to its default-checked options, without
	// touching the terminal.
	Yes bool

	// Out receives step headers and skip/failure notices.
	Out io.Writer
}

// New returns a Runner wired to the real prompt, menu, and executor.
func New() *Runner {
	return &Runner{
		Exec:   executor.New(),
		Prompt: prompt.New(nil, nil),
		Menu:   menu.New(),
		Out:    os.Stdout,
	}
}

// Run executes every step in declared order. Per-step failures are
// reported immediately and counted; the returned error summarizes them
// after all steps have been attempted.
func (r *Runner) Run(ctx context.Context, cfg *config.Config) error {
	var failed int
	for i := range cfg.Steps {
		if err := r.runStep(ctx, &cfg.Steps[i]); err != nil {
			failed++
			fmt.Fprintf(r.Out, "%s %s\n", failStyle(fmt.Sprintf("step %d failed:", i+1)), err)
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d steps failed", failed, len(cfg.Steps))
	}
	return nil
}

func (r *Runner) runStep(ctx context.Context, step *config.Step) error {
	switch step.Kind {
	case config.Selection:
		return r.runSelection(ctx, step)
	default:
		return r.runConfirmation(ctx, step)
	}
}

func (r *Runner) runConfirmation(ctx context.Context, step *config.Step) error {
	def := prompt.ParseDefault(step.Default)

	var confirmed bool
	if r.Yes {
		confirmed = def != prompt.DefaultNo
		fmt.Fprintf(r.Out, "%s %s\n", stepHeader(step.Name), skipStyle(answerWord(confirmed)+" (--yes)"))
	} else {
		var err error
		confirmed, err = r.Prompt.Ask(step.Name, def)
		if err != nil {
			return err
		}
	}

	if !confirmed {
		return nil
	}
	return r.Exec.Run(ctx, step.Command, step.Args)
}

func (r *Runner) runSelection(ctx context.Context, step *config.Step) error {
	options := make([]menu.Option, len(step.Options))
	for i, o := range step.Options {
		options[i] = menu.Option{Name: o.Name, Default: o.Default}
	}

	var selected []bool
	if r.Yes {
		selected = make([]bool, len(step.Options))
		for i, o := range step.Options {
			selected[i] = o.Default
		}
		fmt.Fprintf(r.Out, "%s %s\n", stepHeader(step.Selection), skipStyle("defaults (--yes)"))
	} else {
		var err error
		selected, err = r.Menu.Show(step.Selection, options)
		if err != nil {
			return err
		}
	}

	// Each checked option runs separately, in declared order; one
	// spawn failure does not stop the remaining options. Failures are
	// collected and reported once, at the step level.
	var errs []error
	for i, o := range step.Options {
		if !selected[i] {
			continue
		}
		args := combineArgs(step.Args, o.Args)
		if err := r.Exec.Run(ctx, step.Command, args); err != nil {
			errs = append(errs, fmt.Errorf("option %q: %w", o.Name, err))
		}
	}
	return errors.Join(errs...)
}

// combineArgs concatenates step args and option args into a fresh slice,
// preserving order and leaving both inputs untouched.
func combineArgs(stepArgs, optionArgs []string) []string {
	combined := make([]string, 0, len(stepArgs)+len(optionArgs))
	combined = append(combined, stepArgs...)
	return append(combined, optionArgs...)
}

func answerWord(yes bool) string {
	if yes {
		return "yes"
	}
	return "no"
}
