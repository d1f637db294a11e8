// Package config resolves where and how the task list is stored.
//
// Values come from, in increasing precedence: built-in defaults, the YAML
// config file, TODO_* environment variables, and command-line flags (applied
// by the caller).
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

const (
	// AppName is the application directory name.
	AppName = "todo"

	// ConfigFile is the config filename inside the config directory.
	ConfigFile = "config.yaml"

	// DatabaseFile is the default SQLite filename inside the config directory.
	DatabaseFile = "tasks.db"
)

// Backend names.
const (
	BackendSQLite = "sqlite"
	BackendRedis  = "redis"
	BackendMemory = "memory"
)

// ValidBackends defines the allowed storage backends.
var ValidBackends = []string{BackendSQLite, BackendRedis, BackendMemory}

// Config holds storage and logging settings.
type Config struct {
	// Backend selects the key-value store holding the slot.
	Backend string `yaml:"backend"`

	// Database is the SQLite file path (sqlite backend).
	Database string `yaml:"database"`

	// RedisURL is a redis:// URL (redis backend).
	RedisURL string `yaml:"redis_url"`

	// SlotKey names the slot holding the task list.
	SlotKey string `yaml:"slot_key"`

	// LogLevel is a logrus level name.
	LogLevel string `yaml:"log_level"`
}

// Default returns the built-in configuration rooted at dir.
func Default(dir string) Config {
	return Config{
		Backend:  BackendSQLite,
		Database: filepath.Join(dir, DatabaseFile),
		SlotKey:  "tasks",
		LogLevel: "warn",
	}
}

// DefaultDir returns the default configuration directory.
// Uses XDG_CONFIG_HOME if set, otherwise $HOME/.config.
func DefaultDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, AppName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		// Fallback to current directory if home can't be determined
		return AppName
	}
	return filepath.Join(home, ".config", AppName)
}

// DefaultPath returns the default config file path.
func DefaultPath() string {
	return filepath.Join(DefaultDir(), ConfigFile)
}

// Load reads the config file at path over the defaults, then applies
// environment overrides. A missing file is not an error. An empty path
// selects DefaultPath.
func Load(path string) (Config, error) {
	if path == "" {
		path = DefaultPath()
	}
	cfg := Default(filepath.Dir(path))

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	cfg.applyEnv()
	return cfg, nil
}

// applyEnv overrides fields from TODO_* environment variables.
func (c *Config) applyEnv() {
	overrides := map[string]*string{
		"TODO_BACKEND":   &c.Backend,
		"TODO_DB":        &c.Database,
		"TODO_REDIS_URL": &c.RedisURL,
		"TODO_SLOT_KEY":  &c.SlotKey,
		"TODO_LOG_LEVEL": &c.LogLevel,
	}
	for env, field := range overrides {
		if v, ok := os.LookupEnv(env); ok && v != "" {
			*field = v
		}
	}
}

// Validate checks that the configuration is usable.
func (c Config) Validate() error {
	switch c.Backend {
	case BackendSQLite:
		if c.Database == "" {
			return errors.New("sqlite backend requires a database path")
		}
	case BackendRedis:
		if c.RedisURL == "" {
			return errors.New("redis backend requires redis_url")
		}
	case BackendMemory:
	default:
		return fmt.Errorf("invalid backend %q: must be one of %v", c.Backend, ValidBackends)
	}
	if c.SlotKey == "" {
		return errors.New("slot_key must not be empty")
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log_level: %w", err)
	}
	return nil
}

// Level returns the parsed log level, falling back to warn.
func (c Config) Level() logrus.Level {
	lvl, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return logrus.WarnLevel
	}
	return lvl
}

// EnsureDir creates the directory holding the SQLite database.
// Directory is created with mode 0700.
func (c Config) EnsureDir() error {
	if c.Backend != BackendSQLite {
		return nil
	}
	return os.MkdirAll(filepath.Dir(c.Database), 0700)
}
