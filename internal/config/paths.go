package config

import (
	"fmt"
	"os"
	"path/filepath"

	ccerrors "github.com/ccinit-cli/ccinit/internal/errors"
)

// DefaultFileName is the primary step file name in the home directory.
const DefaultFileName = ".ccinit.json"

// AltFileName is the YAML alternative.
const AltFileName = ".ccinit.yaml"

// DefaultPath returns ~/.ccinit.json without checking for existence.
// An unresolvable home directory means the config cannot be located at
// all, so the error carries os.ErrNotExist for exit-code mapping.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		cerr := ccerrors.NewConfigError(
			fmt.Sprintf("resolving home directory: %v", err),
			"Set the HOME environment variable, or pass --config explicitly",
		)
		cerr.Err = fmt.Errorf("%w: %w", os.ErrNotExist, err)
		return "", cerr
	}
	return filepath.Join(home, DefaultFileName), nil
}

// Resolve picks the step file path: an explicit override wins, then
// ~/.ccinit.json, then ~/.ccinit.yaml when only the YAML file exists.
func Resolve(override string) (string, error) {
	if override != "" {
		return override, nil
	}
	jsonPath, err := DefaultPath()
	if err != nil {
		return "", err
	}
	if _, err := os.Stat(jsonPath); err == nil {
		return jsonPath, nil
	}
	yamlPath := filepath.Join(filepath.Dir(jsonPath), AltFileName)
	if _, err := os.Stat(yamlPath); err == nil {
		return yamlPath, nil
	}
	// Neither exists: report against the primary path.
	return jsonPath, nil
}
