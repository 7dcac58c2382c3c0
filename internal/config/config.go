package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

// DefaultRestSeconds is used when neither the exercise nor the config sets
// a rest interval.
const DefaultRestSeconds = 90

type Config struct {
	Database DatabaseConfig `yaml:"database"`
	User     string         `yaml:"user"`
	Log      LogConfig      `yaml:"log"`
	Display  DisplayConfig  `yaml:"display"`
	Workout  WorkoutConfig  `yaml:"workout"`
}

type DatabaseConfig struct {
	Path string `yaml:"path"`
}

type LogConfig struct {
	UseCases bool `yaml:"use_cases"`
}

type DisplayConfig struct {
	NoColor bool `yaml:"no_color"`
}

type WorkoutConfig struct {
	RestSeconds int `yaml:"rest_seconds"`
}

// Default returns a Config rooted at ~/.liftlog.
func Default() (*Config, error) {
	dir, err := homeDir()
	if err != nil {
		return nil, err
	}
	return &Config{
		Database: DatabaseConfig{Path: filepath.Join(dir, "liftlog.db")},
		Workout:  WorkoutConfig{RestSeconds: DefaultRestSeconds},
	}, nil
}

// Load builds the effective config: defaults, then the YAML file, then
// environment overrides:
//
//	LIFTLOG_CONFIG, LIFTLOG_DB, LIFTLOG_USER,
//	LIFTLOG_LOG_USE_CASES, LIFTLOG_NO_COLOR, LIFTLOG_REST_SECONDS
//
// The file named by LIFTLOG_CONFIG must exist; the default
// ~/.liftlog/config.yaml is optional.
func Load() (*Config, error) {
	cfg, err := Default()
	if err != nil {
		return nil, err
	}

	path, required := os.Getenv("LIFTLOG_CONFIG"), true
	if path == "" {
		dir, err := homeDir()
		if err != nil {
			return nil, err
		}
		path, required = filepath.Join(dir, "config.yaml"), false
	}
	if err := cfg.mergeFile(path, required); err != nil {
		return nil, err
	}

	applyEnvOverrides(cfg)

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}
	return cfg, nil
}

func (c *Config) mergeFile(path string, required bool) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if !required && errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("reading config file: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parsing config file: %w", err)
	}
	return nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("LIFTLOG_DB"); v != "" {
		cfg.Database.Path = v
	}
	if v := os.Getenv("LIFTLOG_USER"); v != "" {
		cfg.User = v
	}
	if v := os.Getenv("LIFTLOG_LOG_USE_CASES"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Log.UseCases = b
		}
	}
	if v := os.Getenv("LIFTLOG_NO_COLOR"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Display.NoColor = b
		}
	}
	if v := os.Getenv("LIFTLOG_REST_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.Workout.RestSeconds = n
		}
	}
}

func (c *Config) validate() error {
	if c.Database.Path == "" {
		return fmt.Errorf("database.path is required")
	}
	if c.Workout.RestSeconds <= 0 {
		return fmt.Errorf("workout.rest_seconds must be positive")
	}
	return nil
}

func homeDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("finding home directory: %w", err)
	}
	return filepath.Join(home, ".liftlog"), nil
}
