// Package config tests step file parsing, classification, and validation.
// Related: internal/config/config.go, validate.go, paths.go
// Tags: config, koanf, validation, variants
package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_ConfirmationStep(t *testing.T) {
	t.Parallel()

	cfg, err := Parse([]byte(`{
		"steps": [
			{"name": "Init?", "command": "echo", "args": ["hi"], "default": "y"}
		]
	}`), JSON)
	require.NoError(t, err)
	require.Len(t, cfg.Steps, 1)

	step := cfg.Steps[0]
	assert.Equal(t, Confirmation, step.Kind)
	assert.Equal(t, "Init?", step.Name)
	assert.Equal(t, "echo", step.Command)
	assert.Equal(t, []string{"hi"}, step.Args)
	assert.Equal(t, "y", step.Default)
}

func TestParse_SelectionStep(t *testing.T) {
	t.Parallel()

	cfg, err := Parse([]byte(`{
		"steps": [
			{
				"selection": "Pick servers",
				"command": "claude",
				"args": ["mcp", "add"],
				"options": [
					{"name": "serena", "args": ["serena"], "default": true},
					{"name": "context7", "args": ["context7"]}
				]
			}
		]
	}`), JSON)
	require.NoError(t, err)
	require.Len(t, cfg.Steps, 1)

	step := cfg.Steps[0]
	assert.Equal(t, Selection, step.Kind)
	assert.Equal(t, "Pick servers", step.Selection)
	require.Len(t, step.Options, 2)
	assert.True(t, step.Options[0].Default)
	assert.False(t, step.Options[1].Default)
	assert.Equal(t, []string{"serena"}, step.Options[0].Args)
}

func TestParse_UnknownFieldsIgnored(t *testing.T) {
	t.Parallel()

	cfg, err := Parse([]byte(`{
		"future": true,
		"steps": [
			{"name": "Init?", "command": "echo", "comment": "ignored"}
		]
	}`), JSON)
	require.NoError(t, err)
	assert.Len(t, cfg.Steps, 1)
}

func TestParse_YAML(t *testing.T) {
	t.Parallel()

	cfg, err := Parse([]byte(`
steps:
  - name: "Init?"
    command: echo
    default: "n"
`), YAML)
	require.NoError(t, err)
	require.Len(t, cfg.Steps, 1)
	assert.Equal(t, Confirmation, cfg.Steps[0].Kind)
	assert.Equal(t, "n", cfg.Steps[0].Default)
}

func TestParse_Invalid(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		input    string
		contains string
	}{
		"malformed json": {
			input:    `{"steps": [`,
			contains: "parsing config",
		},
		"both discriminants": {
			input:    `{"steps": [{"name": "a", "selection": "b", "command": "echo"}]}`,
			contains: "both 'name' and 'selection'",
		},
		"neither discriminant": {
			input:    `{"steps": [{"command": "echo"}]}`,
			contains: "missing 'name' or 'selection'",
		},
		"missing command": {
			input:    `{"steps": [{"name": "a"}]}`,
			contains: "command",
		},
		"bad default value": {
			input:    `{"steps": [{"name": "a", "command": "echo", "default": "yes"}]}`,
			contains: "one of y, Y, n, N",
		},
		"empty name": {
			input:    `{"steps": [{"name": "", "command": "echo"}]}`,
			contains: "must not be empty",
		},
		"empty selection header": {
			input:    `{"steps": [{"selection": "", "command": "echo", "options": [{"name": "o"}]}]}`,
			contains: "'selection' must not be empty",
		},
		"default on selection step": {
			input:    `{"steps": [{"selection": "a", "command": "echo", "default": "y", "options": [{"name": "o"}]}]}`,
			contains: "only valid on confirmation steps",
		},
		"options on confirmation step": {
			input:    `{"steps": [{"name": "a", "command": "echo", "options": [{"name": "o"}]}]}`,
			contains: "only valid on selection steps",
		},
		"option without a name": {
			input:    `{"steps": [{"selection": "a", "command": "echo", "options": [{"args": ["x"]}]}]}`,
			contains: "name",
		},
	}

	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			_, err := Parse([]byte(tt.input), JSON)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.contains)
		})
	}
}

func TestParse_AllDefaultsAccepted(t *testing.T) {
	t.Parallel()

	for _, def := range []string{"y", "Y", "n", "N"} {
		_, err := Parse([]byte(`{"steps": [{"name": "a", "command": "echo", "default": "`+def+`"}]}`), JSON)
		assert.NoError(t, err, "default %q must be accepted", def)
	}
}

func TestLoad(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, ".ccinit.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"steps": [{"name": "a", "command": "echo"}]}`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, cfg.Steps, 1)
}

func TestLoad_Missing(t *testing.T) {
	t.Parallel()

	_, err := Load(filepath.Join(t.TempDir(), ".ccinit.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestLoad_SizeCap(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, ".ccinit.json")
	big := append([]byte(`{"steps": []}`), bytes.Repeat([]byte(" "), MaxConfigSize)...)
	require.NoError(t, os.WriteFile(path, big, 0o644))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "byte limit")
}

func TestFormatForPath(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		path     string
		expected Format
	}{
		"json":          {path: "/home/u/.ccinit.json", expected: JSON},
		"yaml":          {path: "/home/u/.ccinit.yaml", expected: YAML},
		"yml":           {path: "steps.yml", expected: YAML},
		"no extension":  {path: "ccinitrc", expected: JSON},
		"uppercase ext": {path: "steps.YAML", expected: YAML},
	}

	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, FormatForPath(tt.path))
		})
	}
}

func TestResolve(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	t.Run("override wins", func(t *testing.T) {
		path, err := Resolve("/tmp/custom.json")
		require.NoError(t, err)
		assert.Equal(t, "/tmp/custom.json", path)
	})

	t.Run("defaults to json when neither exists", func(t *testing.T) {
		path, err := Resolve("")
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(home, ".ccinit.json"), path)
	})

	t.Run("yaml fallback when only yaml exists", func(t *testing.T) {
		yamlPath := filepath.Join(home, ".ccinit.yaml")
		require.NoError(t, os.WriteFile(yamlPath, []byte("steps: []\n"), 0o644))
		path, err := Resolve("")
		require.NoError(t, err)
		assert.Equal(t, yamlPath, path)
	})

	t.Run("json preferred when both exist", func(t *testing.T) {
		jsonPath := filepath.Join(home, ".ccinit.json")
		require.NoError(t, os.WriteFile(jsonPath, []byte(`{"steps": []}`), 0o644))
		path, err := Resolve("")
		require.NoError(t, err)
		assert.Equal(t, jsonPath, path)
	})
}

func TestDefaultPath_UnresolvableHome(t *testing.T) {
	t.Setenv("HOME", "")

	_, err := DefaultPath()
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist, "an unlocatable config must map to the missing-config exit code")
}

func TestExampleJSONParses(t *testing.T) {
	t.Parallel()

	cfg, err := Parse([]byte(ExampleJSON), JSON)
	require.NoError(t, err)
	require.Len(t, cfg.Steps, 2)
	assert.Equal(t, Confirmation, cfg.Steps[0].Kind)
	assert.Equal(t, Selection, cfg.Steps[1].Kind)
}

func TestLoadSettings(t *testing.T) {
	t.Setenv("CCINIT_CONFIG", "/tmp/steps.json")
	t.Setenv("CCINIT_YES", "true")
	t.Setenv("CCINIT_NO_COLOR", "1")

	s, err := LoadSettings()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/steps.json", s.ConfigPath)
	assert.True(t, s.Yes)
	assert.True(t, s.NoColor)
}
