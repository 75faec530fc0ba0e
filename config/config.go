// Package config resolves orbit's process-wide settings from the
// environment and an optional YAML file, without ever printing secret
// material.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/raywall/orbit/envloader"
)

// Environment variable names.
const (
	EnvConnectionString = "ORBIT_COSMOS_CONNECTION_STRING"
	EnvEndpoint         = "ORBIT_COSMOS_ENDPOINT"
	EnvKey              = "ORBIT_COSMOS_KEY"
	EnvDatabaseName     = "ORBIT_DATABASE_NAME"
	EnvConfigFile       = "ORBIT_CONFIG"
)

// ErrAmbiguousAuth is returned when both a connection string and an
// endpoint/key pair are configured.
var ErrAmbiguousAuth = errors.New("ambiguous auth configuration: provide either a connection string or an endpoint/key pair")

// LogConfig controls the zerolog setup. Logging is on unless Quiet is set.
type LogConfig struct {
	Level  string `env:"ORBIT_LOG_LEVEL" envDefault:"info" yaml:"level"`
	Format string `env:"ORBIT_LOG_FORMAT" envDefault:"json" yaml:"format"`
	Quiet  bool   `env:"ORBIT_LOG_QUIET" yaml:"quiet"`
}

// Settings is orbit's immutable configuration. A connection string and an
// endpoint/key pair are mutually exclusive.
type Settings struct {
	ConnectionString string    `env:"ORBIT_COSMOS_CONNECTION_STRING" secret:"true" yaml:"connection_string"`
	Endpoint         string    `env:"ORBIT_COSMOS_ENDPOINT" yaml:"endpoint"`
	Key              string    `env:"ORBIT_COSMOS_KEY" secret:"true" yaml:"key"`
	DatabaseName     string    `env:"ORBIT_DATABASE_NAME" yaml:"database_name"`
	Log              LogConfig `yaml:"log"`
}

// Load resolves settings: an optional YAML file named by ORBIT_CONFIG
// first, environment variables on top (env wins when set).
func Load() (Settings, error) {
	var settings Settings

	if path := os.Getenv(EnvConfigFile); path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return Settings{}, fmt.Errorf("config: reading %s: %w", path, err)
		}
		if err := yaml.Unmarshal(raw, &settings); err != nil {
			return Settings{}, fmt.Errorf("config: parsing %s: %w", path, err)
		}
	}

	if err := envloader.Load(&settings); err != nil {
		return Settings{}, err
	}

	if err := settings.Validate(); err != nil {
		return Settings{}, err
	}
	return settings, nil
}

// Validate enforces the mutual exclusion between the two auth inputs.
func (s Settings) Validate() error {
	if s.ConnectionString != "" && (s.Endpoint != "" || s.Key != "") {
		return ErrAmbiguousAuth
	}
	return nil
}

// Redacted renders the settings for diagnostics with secrets masked.
func (s Settings) Redacted() map[string]string {
	mask := func(v string) string {
		if v == "" {
			return ""
		}
		return "***"
	}
	return map[string]string{
		"connection_string": mask(s.ConnectionString),
		"endpoint":          s.Endpoint,
		"key":               mask(s.Key),
		"database_name":     s.DatabaseName,
	}
}

var emulatorHostMarkers = []string{"localhost", "127.0.0.1"}

// IsEmulatorEndpoint reports whether an endpoint points at a local Cosmos
// emulator.
func IsEmulatorEndpoint(endpoint string) bool {
	if endpoint == "" {
		return false
	}
	lowered := strings.ToLower(endpoint)
	for _, marker := range emulatorHostMarkers {
		if strings.Contains(lowered, marker) {
			return true
		}
	}
	return false
}
