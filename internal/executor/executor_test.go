// Package executor tests command spawning, stdio wiring, and exit reporting.
// Related: internal/executor/executor.go
// Tags: executor, subprocess, exit-status
package executor

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestExecutor() (*Executor, *bytes.Buffer, *bytes.Buffer) {
	var stdout, report bytes.Buffer
	e := &Executor{
		Stdout: &stdout,
		Stderr: &stdout,
		Report: &report,
	}
	return e, &stdout, &report
}

func TestRun_Success(t *testing.T) {
	t.Parallel()

	e, stdout, report := newTestExecutor()
	err := e.Run(context.Background(), "echo", []string{"hi"})
	require.NoError(t, err)
	assert.Equal(t, "hi\n", stdout.String())
	assert.Empty(t, report.String())
}

func TestRun_ExpandsCommandAndArgs(t *testing.T) {
	t.Setenv("CCINIT_TEST_WORD", "expanded")

	e, stdout, _ := newTestExecutor()
	err := e.Run(context.Background(), "echo", []string{"${CCINIT_TEST_WORD}", "plain"})
	require.NoError(t, err)
	assert.Equal(t, "expanded plain\n", stdout.String())
}

func TestRun_NonZeroExitIsReportedNotFatal(t *testing.T) {
	t.Parallel()

	e, _, report := newTestExecutor()
	err := e.Run(context.Background(), "false", nil)
	require.NoError(t, err, "nonzero exit must not be an engine error")
	assert.Contains(t, report.String(), "exited with status 1")
}

func TestRun_SignalDeathIsReportedNotFatal(t *testing.T) {
	t.Parallel()

	e, _, report := newTestExecutor()
	err := e.Run(context.Background(), "sh", []string{"-c", "kill -TERM $$"})
	require.NoError(t, err, "signal death must not be an engine error")
	assert.Contains(t, report.String(), "terminated by signal 15")
}

func TestRun_UnknownExecutableIsAnError(t *testing.T) {
	t.Parallel()

	e, _, report := newTestExecutor()
	err := e.Run(context.Background(), "ccinit-test-no-such-binary", nil)
	require.Error(t, err)
	assert.Empty(t, report.String())
}

func TestRun_StdinIsPassedThrough(t *testing.T) {
	t.Parallel()

	var stdout bytes.Buffer
	e := &Executor{
		Stdin:  bytes.NewBufferString("from-stdin\n"),
		Stdout: &stdout,
		Stderr: &stdout,
	}
	err := e.Run(context.Background(), "cat", nil)
	require.NoError(t, err)
	assert.Equal(t, "from-stdin\n", stdout.String())
}

func TestRun_ArgumentOrderPreserved(t *testing.T) {
	t.Parallel()

	e, stdout, _ := newTestExecutor()
	err := e.Run(context.Background(), "echo", []string{"mcp", "add", "serena"})
	require.NoError(t, err)
	assert.Equal(t, "mcp add serena\n", stdout.String())
}
