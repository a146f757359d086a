// Package prompt implements the line-oriented yes/no confirmation.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ccinit-cli/ccinit/internal/errors"
)

// Default is the answer used when the user presses Enter on an empty line.
type Default int

const (
	// NoDefault forces an explicit y/n answer.
	NoDefault Default = iota
	// DefaultYes resolves an empty line to true.
	DefaultYes
	// DefaultNo resolves an empty line to false.
	DefaultNo
)

// ParseDefault maps a validated config default ("y", "Y", "n", "N", or
// empty) to a Default. Unknown values are rejected at config load time,
// so anything else maps to NoDefault.
func ParseDefault(s string) Default {
	switch s {
	case "y", "Y":
		return DefaultYes
	case "n", "N":
		return DefaultNo
	default:
		return NoDefault
	}
}

// hint returns the answer hint shown after the question.
func (d Default) hint() string {
	switch d {
	case DefaultYes:
		return "(Y/n)"
	case DefaultNo:
		return "(y/N)"
	default:
		return "(y/n)"
	}
}

// Prompter reads confirmation answers from a line-oriented stream.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

// New returns a Prompter reading from in and writing to out.
// Nil arguments default to the process's stdin and stdout.
func New(in io.Reader, out io.Writer) *Prompter {
	if in == nil {
		in = os.Stdin
	}
	if out == nil {
		out = os.Stdout
	}
	return &Prompter{in: bufio.NewReader(in), out: out}
}

// Ask displays the question and loops until the user gives a usable
// answer. Empty input resolves to the default when one exists; otherwise
// the question is repeated with a short guidance line. End of input is an
// input error, fatal for the step.
func (p *Prompter) Ask(question string, def Default) (bool, error) {
	for {
		fmt.Fprintf(p.out, "%s %s ", question, def.hint())

		line, err := p.in.ReadString('\n')
		if err != nil && line == "" {
			return false, errors.NewInputError(
				"end of input while waiting for an answer",
				"Run ccinit with an interactive stdin, or pass --yes to accept defaults",
			)
		}

		switch strings.ToLower(strings.TrimSpace(line)) {
		case "":
			switch def {
			case DefaultYes:
				return true, nil
			case DefaultNo:
				return false, nil
			}
		case "y":
			return true, nil
		case "n":
			return false, nil
		}

		fmt.Fprintln(p.out, "Please answer y or n.")
	}
}
