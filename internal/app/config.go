package app

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/ishnc/passforge/internal/domain"
)

const configFile = "config.yaml"

// Config holds runtime wiring options for building the app.
type Config struct {
	// Home is the config directory, e.g. $HOME/.passforge.
	Home string `yaml:"-"`

	// DefaultProfile names the profile used when --profile is not given.
	DefaultProfile string `yaml:"default_profile"`

	// Profiles are named generation presets.
	Profiles map[string]domain.Policy `yaml:"profiles"`

	// Passphrase overrides the built-in passphrase defaults.
	Passphrase *domain.WordlistPolicy `yaml:"passphrase"`
}

// LoadConfig reads <home>/config.yaml. A missing file is not an error; the
// returned Config then carries only Home.
func LoadConfig(home string) (Config, error) {
	cfg := Config{Home: home}

	data, err := os.ReadFile(filepath.Join(home, configFile))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse %s: %w", configFile, err)
	}
	cfg.Home = home

	if cfg.DefaultProfile != "" {
		if _, ok := cfg.Profiles[cfg.DefaultProfile]; !ok {
			return Config{}, fmt.Errorf("default_profile %q is not a configured profile", cfg.DefaultProfile)
		}
	}
	return cfg, nil
}

// WordlistPolicy returns the configured passphrase defaults, or the built-in
// ones.
func (c Config) WordlistPolicy() domain.WordlistPolicy {
	if c.Passphrase != nil {
		return *c.Passphrase
	}
	return domain.DefaultWordlistPolicy()
}
