// Package config provides configuration loading functionality.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/bmbouter/pulp-demos/internal/domain"
	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"
)

// ConfigFileName is the optional settings file in the config directory.
const ConfigFileName = "pulp-announce.toml"

// Ensure Loader implements domain.ConfigLoader.
var _ domain.ConfigLoader = (*Loader)(nil)

// Loader loads configuration from a TOML file merged over built-in defaults.
type Loader struct {
	confDir string // Directory holding pulp-announce.toml
}

// NewLoader creates a Loader using the default config directory.
func NewLoader() *Loader {
	return &Loader{confDir: defaultConfigDir()}
}

// NewLoaderWithDir creates a Loader with a custom config directory.
// This is useful for testing.
func NewLoaderWithDir(confDir string) *Loader {
	return &Loader{confDir: confDir}
}

// defaultConfigDir returns the XDG config directory for the tool.
func defaultConfigDir() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "pulp-announce")
}

// Load returns the merged configuration. A missing config file is not an
// error; the defaults are returned as-is.
func (l *Loader) Load() (*domain.Config, error) {
	base := domain.NewDefaultConfig()
	if l.confDir == "" {
		return base, nil
	}

	path := filepath.Join(l.confDir, ConfigFileName)
	data, err := os.ReadFile(path) //nolint:gosec // fixed well-known config path
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return base, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	var file domain.Config
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return mergeConfigs(base, &file), nil
}

// mergeConfigs overlays non-empty fields of override onto base.
func mergeConfigs(base, override *domain.Config) *domain.Config {
	merged := *base
	if override.TrackerURL != "" {
		merged.TrackerURL = override.TrackerURL
	}
	if override.DefaultAuthor != "" {
		merged.DefaultAuthor = override.DefaultAuthor
	}
	if override.YouTubeChannel != "" {
		merged.YouTubeChannel = override.YouTubeChannel
	}
	if override.ReposBaseURL != "" {
		merged.ReposBaseURL = override.ReposBaseURL
	}
	return &merged
}

// APIKeyEnv is the environment variable holding the Redmine API key.
const APIKeyEnv = "REDMINE_KEY"

// APIKey returns the Redmine API key from the environment. A .env file in
// the working directory is honoured for convenience; real environment
// variables take precedence.
func APIKey() string {
	_ = godotenv.Load()
	return os.Getenv(APIKeyEnv)
}
