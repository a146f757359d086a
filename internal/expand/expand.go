// Package expand resolves ${VAR} and $(command) tokens in configuration
// strings. Variables come from the process environment; commands run
// synchronously with stdout captured and stderr discarded. Malformed
// tokens (missing terminator) pass through as literal text.
package expand

import (
	"bytes"
	"io"
	"os"
	"os/exec"
	"strings"
)

// Expand substitutes all ${VAR} and $(command) tokens in s, left to right,
// in a single pass. Substituted values are never re-expanded. The only
// error condition is a $(command) whose process cannot be started.
func Expand(s string) (string, error) {
	var b strings.Builder
	i := 0
	for i < len(s) {
		c := s[i]
		if c != '$' || i+1 >= len(s) {
			b.WriteByte(c)
			i++
			continue
		}
		switch s[i+1] {
		case '{':
			end := strings.IndexByte(s[i+2:], '}')
			if end < 0 {
				// No terminator: the $ is literal.
				b.WriteByte('$')
				i++
				continue
			}
			b.WriteString(os.Getenv(s[i+2 : i+2+end]))
			i += end + 3
		case '(':
			end := strings.IndexByte(s[i+2:], ')')
			if end < 0 {
				b.WriteByte('$')
				i++
				continue
			}
			out, err := capture(s[i+2 : i+2+end])
			if err != nil {
				return "", err
			}
			b.WriteString(out)
			i += end + 3
		default:
			b.WriteByte('$')
			i++
		}
	}
	return b.String(), nil
}

// ExpandAll expands every string in args, returning a new slice.
// The input slice is never mutated.
func ExpandAll(args []string) ([]string, error) {
	out := make([]string, 0, len(args))
	for _, a := range args {
		expanded, err := Expand(a)
		if err != nil {
			return nil, err
		}
		out = append(out, expanded)
	}
	return out, nil
}

// capture runs cmdline and returns its stdout with trailing whitespace
// trimmed. The command line is split on single spaces with no quoting
// support. An empty command yields empty output without spawning anything.
// A nonzero exit still yields whatever stdout was produced.
func capture(cmdline string) (string, error) {
	if cmdline == "" {
		return "", nil
	}
	argv := strings.Split(cmdline, " ")
	if argv[0] == "" {
		return "", nil
	}
	var out bytes.Buffer
	cmd := exec.Command(argv[0], argv[1:]...)
	cmd.Stdout = &out
	cmd.Stderr = io.Discard
	if err := cmd.Run(); err != nil {
		if _, ok := err.(*exec.ExitError); !ok {
			return "", err
		}
	}
	return strings.TrimRight(out.String(), " \t\r\n"), nil
}
