// Package menu implements the raw-mode checkbox selection menu.
// The terminal is switched into raw mode (no line buffering, no echo)
// for the duration of the key loop and restored on every exit path.
package menu

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"github.com/ccinit-cli/ccinit/internal/errors"
)

// Option is one selectable row in the menu.
type Option struct {
	Name    string
	Default bool
}

// Terminal abstracts raw-mode acquisition so the key loop is testable
// without a TTY. MakeRaw returns the restore function for the previous
// terminal state.
type Terminal interface {
	MakeRaw() (restore func() error, err error)
}

// ttyTerminal drives the real terminal through golang.org/x/term.
type ttyTerminal struct {
	fd int
}

func (t ttyTerminal) MakeRaw() (func() error, error) {
	state, err := term.MakeRaw(t.fd)
	if err != nil {
		return nil, err
	}
	return func() error { return term.Restore(t.fd, state) }, nil
}

// Menu renders a checkbox list and processes raw key input.
type Menu struct {
	In   io.Reader
	Out  io.Writer
	Term Terminal
}

// New returns a Menu attached to the process's stdin and stdout.
func New() *Menu {
	return &Menu{
		In:   os.Stdin,
		Out:  os.Stdout,
		Term: ttyTerminal{fd: int(os.Stdin.Fd())},
	}
}

// Show displays header and options, runs the key loop until Enter, and
// returns the final selection flags in option order. An empty option
// list returns immediately with no output.
func (m *Menu) Show(header string, options []Option) (selected []bool, err error) {
	if len(options) == 0 {
		return nil, nil
	}

	selected = make([]bool, len(options))
	for i, o := range options {
		selected[i] = o.Default
	}

	restore, err := m.Term.MakeRaw()
	if err != nil {
		return nil, errors.Wrap(err, errors.Input, "entering raw terminal mode")
	}
	defer func() {
		if restoreErr := restore(); restoreErr != nil && err == nil {
			err = errors.Wrap(restoreErr, errors.Input, "restoring terminal mode")
		}
	}()

	cursor := 0
	fmt.Fprintf(m.Out, "%s\r\n", header)
	m.render(options, selected, cursor)

	buf := make([]byte, 3)
	for {
		n, readErr := m.In.Read(buf)
		if readErr != nil || n == 0 {
			// A dead input stream would otherwise spin forever.
			return nil, errors.NewInputError(
				"terminal input closed during selection",
				"Run ccinit with an interactive terminal, or pass --yes to accept defaults",
			)
		}

		switch {
		case n == 1 && (buf[0] == '\r' || buf[0] == '\n'):
			return selected, nil
		case n == 1 && buf[0] == ' ':
			selected[cursor] = !selected[cursor]
			m.redraw(options, selected, cursor)
		case n == 3 && buf[0] == 0x1b && buf[1] == '[' && buf[2] == 'A':
			if cursor > 0 {
				cursor--
			}
			m.redraw(options, selected, cursor)
		case n == 3 && buf[0] == 0x1b && buf[1] == '[' && buf[2] == 'B':
			if cursor < len(options)-1 {
				cursor++
			}
			m.redraw(options, selected, cursor)
		}
	}
}

// redraw repositions to the top of the option block and reprints it.
// Idempotent: repeated calls with unchanged state draw the same output.
func (m *Menu) redraw(options []Option, selected []bool, cursor int) {
	fmt.Fprintf(m.Out, "\x1b[%dA\r", len(options))
	m.render(options, selected, cursor)
}

// render prints one line per option with cursor and checkbox markers,
// clearing to end of line so stale characters never linger.
func (m *Menu) render(options []Option, selected []bool, cursor int) {
	for i, o := range options {
		marker := " "
		if i == cursor {
			marker = ">"
		}
		box := "[ ]"
		if selected[i] {
			box = "[x]"
		}
		fmt.Fprintf(m.Out, "%s %s %s\x1b[K\r\n", marker, box, o.Name)
	}
}
