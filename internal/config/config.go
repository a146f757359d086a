// Package config loads and validates the ccinit step file using koanf.
// The primary format is JSON at ~/.ccinit.json; a YAML file at
// ~/.ccinit.yaml is accepted as an alternative. Unknown fields are
// ignored, files over 1 MiB are rejected, and each step is classified
// into an explicit Confirmation/Selection variant at load time.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"

	ccerrors "github.com/ccinit-cli/ccinit/internal/errors"
)

// MaxConfigSize caps the step file at 1 MiB.
const MaxConfigSize = 1 << 20

// Kind discriminates the two step variants. It is derived from field
// presence at load time so a step with both or neither discriminant is
// rejected instead of silently mis-routed.
type Kind int

const (
	// Confirmation is a yes/no gated single-command step.
	Confirmation Kind = iota
	// Selection is a multi-option checkbox step.
	Selection
)

// Option is one row of a selection step.
type Option struct {
	Name    string   `koanf:"name" validate:"required"`
	Args    []string `koanf:"args"`
	Default bool     `koanf:"default"`
}

// Step is one unit of the configuration. Exactly one of Name (the
// confirmation question) or Selection (the menu header) is present;
// Kind records which.
type Step struct {
	Name      string   `koanf:"name"`
	Selection string   `koanf:"selection"`
	Command   string   `koanf:"command" validate:"required"`
	Args      []string `koanf:"args"`
	Default   string   `koanf:"default" validate:"omitempty,oneof=y Y n N"`
	Options   []Option `koanf:"options" validate:"dive"`

	Kind Kind `koanf:"-"`
}

// Config is the ordered step list. Immutable after Load.
type Config struct {
	Steps []Step `koanf:"steps"`
}

// Format identifies the step file encoding.
type Format int

const (
	// JSON is the primary format.
	JSON Format = iota
	// YAML is the alternative format.
	YAML
)

// FormatForPath picks the parser by file extension; everything that is
// not .yaml/.yml parses as JSON.
func FormatForPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return YAML
	}
	return JSON
}

// Load reads, parses, and validates the step file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cerr := ccerrors.NewConfigError(
				fmt.Sprintf("config file not found at %s", path),
				"Run 'ccinit init' to create a starter config",
				"Or point --config (or CCINIT_CONFIG) at an existing step file",
			)
			cerr.Err = err
			return nil, cerr
		}
		return nil, ccerrors.Wrap(err, ccerrors.Configuration, fmt.Sprintf("reading config %s", path))
	}
	if len(data) > MaxConfigSize {
		return nil, ccerrors.NewConfigError(
			fmt.Sprintf("config %s exceeds the %d byte limit", path, MaxConfigSize),
			"Split the step file or remove unused steps",
		)
	}
	cfg, err := Parse(data, FormatForPath(path))
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

// Parse decodes and validates a step file already in memory.
func Parse(data []byte, format Format) (*Config, error) {
	k := koanf.New(".")
	var parser koanf.Parser = json.Parser()
	if format == YAML {
		parser = yaml.Parser()
	}
	if err := k.Load(rawbytes.Provider(data), parser); err != nil {
		return nil, ccerrors.Wrap(err, ccerrors.Configuration, "parsing config",
			"Check the file for syntax errors")
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, ccerrors.Wrap(err, ccerrors.Configuration, "decoding config",
			"Check that steps, args, and options have the expected types")
	}

	if err := classify(k, &cfg); err != nil {
		return nil, err
	}
	if err := validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// classify derives each step's Kind from discriminant field presence.
func classify(k *koanf.Koanf, cfg *Config) error {
	raw := k.Slices("steps")
	if len(raw) != len(cfg.Steps) {
		return ccerrors.NewConfigError("steps must be a list of step objects")
	}
	for i := range cfg.Steps {
		hasName := raw[i].Exists("name")
		hasSelection := raw[i].Exists("selection")
		switch {
		case hasName && hasSelection:
			return ccerrors.NewConfigError(
				fmt.Sprintf("steps[%d]: has both 'name' and 'selection'", i),
				"A step is either a confirmation (name) or a selection (selection), not both",
			)
		case hasName:
			cfg.Steps[i].Kind = Confirmation
		case hasSelection:
			cfg.Steps[i].Kind = Selection
		default:
			return ccerrors.NewConfigError(
				fmt.Sprintf("steps[%d]: missing 'name' or 'selection'", i),
				"Add 'name' for a yes/no step or 'selection' for a checkbox step",
			)
		}
	}
	return nil
}
