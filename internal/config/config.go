// Package config loads cubeviz settings from a YAML file and the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// DirName is the per-user directory holding config, logs and the journal.
const DirName = ".cubeviz"

// Config represents the cubeviz configuration
type Config struct {
	AnimSpeed float64    `yaml:"anim_speed" env:"CUBEVIZ_ANIM_SPEED"` // degrees per second
	FPS       int        `yaml:"fps" env:"CUBEVIZ_FPS"`
	LogLevel  string     `yaml:"log_level" env:"CUBEVIZ_LOG_LEVEL"`
	LogDir    string     `yaml:"log_dir" env:"CUBEVIZ_LOG_DIR"`
	DBPath    string     `yaml:"db_path" env:"CUBEVIZ_DB_PATH"`
	Journal   bool       `yaml:"journal" env:"CUBEVIZ_JOURNAL"`
	View      ViewConfig `yaml:"view"`
}

// ViewConfig holds the initial viewpoint as whole-cube quarter turns.
type ViewConfig struct {
	Yaw   int `yaml:"yaw" env:"CUBEVIZ_VIEW_YAW"`
	Pitch int `yaml:"pitch" env:"CUBEVIZ_VIEW_PITCH"`
}

// DefaultDir returns ~/.cubeviz.
func DefaultDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, DirName), nil
}

// DefaultPath returns ~/.cubeviz/config.yaml.
func DefaultPath() (string, error) {
	dir, err := DefaultDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// Default returns the built-in settings rooted at dir.
func Default(dir string) Config {
	return Config{
		AnimSpeed: 360,
		FPS:       60,
		LogLevel:  "info",
		LogDir:    filepath.Join(dir, "logs"),
		DBPath:    filepath.Join(dir, "cubeviz.db"),
		Journal:   true,
	}
}

// Load reads the config at path on top of the defaults, then applies
// environment overrides. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := Default(filepath.Dir(path))

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("error reading config file: %w", err)
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("error parsing config file: %w", err)
		}
	}

	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadDefault loads ~/.cubeviz/config.yaml.
func LoadDefault() (*Config, error) {
	path, err := DefaultPath()
	if err != nil {
		return nil, err
	}
	return Load(path)
}

// Validate rejects settings the animation loop cannot run with.
func (c *Config) Validate() error {
	if c.AnimSpeed <= 0 {
		return fmt.Errorf("invalid config: anim_speed must be positive, got %v", c.AnimSpeed)
	}
	if c.FPS < 1 || c.FPS > 240 {
		return fmt.Errorf("invalid config: fps must be between 1 and 240, got %d", c.FPS)
	}
	return nil
}

// FrameInterval returns the duration of one frame.
func (c *Config) FrameInterval() time.Duration {
	return time.Second / time.Duration(c.FPS)
}

// Save writes the config as YAML.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}
