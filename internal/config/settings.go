package config

import (
	"strings"

	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"

	ccerrors "github.com/ccinit-cli/ccinit/internal/errors"
)

// envPrefix namespaces ccinit environment overrides.
const envPrefix = "CCINIT_"

// Settings holds run-level options that come from flags or CCINIT_*
// environment variables. Flags take precedence over the environment.
type Settings struct {
	// ConfigPath overrides the step file location (CCINIT_CONFIG).
	ConfigPath string `koanf:"config"`
	// Yes resolves all prompts to their defaults without touching the
	// terminal (CCINIT_YES).
	Yes bool `koanf:"yes"`
	// NoColor disables colored output (CCINIT_NO_COLOR).
	NoColor bool `koanf:"no_color"`
}

// LoadSettings reads CCINIT_* environment overrides.
func LoadSettings() (*Settings, error) {
	k := koanf.New(".")
	if err := k.Load(env.Provider(envPrefix, ".", envTransform), nil); err != nil {
		return nil, ccerrors.Wrap(err, ccerrors.Configuration, "loading environment overrides")
	}
	var s Settings
	if err := k.Unmarshal("", &s); err != nil {
		return nil, ccerrors.Wrap(err, ccerrors.Configuration, "decoding environment overrides")
	}
	return &s, nil
}

// envTransform maps CCINIT_NO_COLOR to no_color and so on.
func envTransform(key string) string {
	return strings.ToLower(strings.TrimPrefix(key, envPrefix))
}
