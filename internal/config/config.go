// Package config loads the pw configuration file and resolves the
// password file location.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultStoreName is the password file looked up in the home directory
// when no other location is configured.
const DefaultStoreName = ".passfile"

// ErrNoStore is returned when no password file was given and the default
// one does not exist.
var ErrNoStore = errors.New("no default password file found in HOME/" + DefaultStoreName)

// Config is the persistent pw configuration.
type Config struct {
	Store       string `yaml:"store"`
	Generator   string `yaml:"generator"`
	LogLevel    string `yaml:"log_level"`
	MetricsFile string `yaml:"metrics_file"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		Generator: "pwgen",
		LogLevel:  "warn",
	}
}

// DefaultPath returns the config file location: $PW_CONFIG, or
// ~/.pw/config.yaml.
func DefaultPath() string {
	if v := os.Getenv("PW_CONFIG"); v != "" {
		return v
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".pw", "config.yaml")
}

// Load reads the config file at path, falling back to defaults when it does
// not exist, then applies PW_STORE, PW_PWGEN and PW_METRICS_FILE.
func Load(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config %s: %w", path, err)
		}
	case errors.Is(err, os.ErrNotExist):
		// Use defaults
	default:
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	if v := os.Getenv("PW_STORE"); v != "" {
		cfg.Store = v
	}
	if v := os.Getenv("PW_PWGEN"); v != "" {
		cfg.Generator = v
	}
	if v := os.Getenv("PW_METRICS_FILE"); v != "" {
		cfg.MetricsFile = v
	}
	if cfg.Generator == "" {
		cfg.Generator = "pwgen"
	}
	return cfg, nil
}

// ResolveStore picks the password file: explicit wins, then the configured
// store, then ~/.passfile if it is a regular file.
func (c *Config) ResolveStore(explicit string) (string, error) {
	if explicit != "" {
		return explicit, nil
	}
	if c.Store != "" {
		return expandHome(c.Store), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", ErrNoStore
	}
	path := filepath.Join(home, DefaultStoreName)
	fi, err := os.Stat(path)
	if err != nil || !fi.Mode().IsRegular() {
		return "", ErrNoStore
	}
	return path, nil
}

func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
