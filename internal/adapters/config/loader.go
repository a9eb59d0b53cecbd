// Package config loads the resolver defaults from the user's configuration
// file and the environment.
package config

import (
	"os"
	"path/filepath"

	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"

	"go.aurforge.dev/pkgsum/internal/core/domain"
	"go.aurforge.dev/pkgsum/internal/core/ports"
)

// ConfigFileName is the optional per-user defaults file, looked up under
// $XDG_CONFIG_HOME (or ~/.config).
const ConfigFileName = "pkgsum/pkgsum.yaml"

// fileDefaults is the YAML schema of the defaults file. Every key is
// optional; the environment and built-in fallbacks fill the rest.
type fileDefaults struct {
	Base      string `yaml:"base"`
	Owner     string `yaml:"owner"`
	TagPrefix string `yaml:"tag_prefix"`
}

// Loader builds domain.Defaults from file, environment, and fallbacks.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Load resolves the defaults. Precedence per key: environment variable, then
// the configuration file, then the built-in fallback. A missing file is not
// an error; a malformed one is.
func (l *Loader) Load() (domain.Defaults, error) {
	var file fileDefaults
	path, err := configPath()
	if err == nil {
		// #nosec G304 -- path is derived from the user's own config dir
		data, readErr := os.ReadFile(path)
		switch {
		case readErr == nil:
			if parseErr := yaml.Unmarshal(data, &file); parseErr != nil {
				return domain.Defaults{}, zerr.Wrap(parseErr, "failed to parse "+path)
			}
		case !os.IsNotExist(readErr):
			return domain.Defaults{}, zerr.Wrap(readErr, "failed to read "+path)
		}
	}

	d := domain.Defaults{
		Base:      firstNonEmpty(os.Getenv("AUR_BASE"), file.Base),
		Owner:     firstNonEmpty(os.Getenv("GITHUB_OWNER"), file.Owner),
		TagPrefix: firstNonEmpty(os.Getenv("TAG_PREFIX"), file.TagPrefix),
	}

	if d.Base == "" {
		home, homeErr := os.UserHomeDir()
		if homeErr != nil {
			return domain.Defaults{}, zerr.Wrap(homeErr, "failed to locate home directory")
		}
		d.Base = filepath.Join(home, "aur-packages")
	}
	if d.TagPrefix == "" {
		d.TagPrefix = "v"
	}
	return d, nil
}

func configPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, ConfigFileName), nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
