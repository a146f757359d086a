package cli

import (
	"errors"
	"os"

	ccerrors "github.com/ccinit-cli/ccinit/internal/errors"
)

// Exit codes for the ccinit CLI. These support scripting and CI checks.
const (
	// ExitSuccess indicates all steps completed.
	ExitSuccess = 0

	// ExitError indicates an uncategorized failure.
	ExitError = 1

	// ExitConfigMissing indicates the step file was missing or unreadable.
	ExitConfigMissing = 2

	// ExitConfigInvalid indicates the step file was malformed or failed validation.
	ExitConfigInvalid = 3

	// ExitStepFailed indicates one or more steps failed at runtime.
	ExitStepFailed = 4
)

// ExitCode maps an error to the process exit code.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var cliErr *ccerrors.CLIError
	if !errors.As(err, &cliErr) {
		return ExitError
	}
	switch cliErr.Category {
	case ccerrors.Configuration:
		if errors.Is(cliErr, os.ErrNotExist) || errors.Is(cliErr, os.ErrPermission) {
			return ExitConfigMissing
		}
		return ExitConfigInvalid
	case ccerrors.Input, ccerrors.Runtime:
		return ExitStepFailed
	}
	return ExitError
}
