// Package config loads and persists the vtdemo program's user-facing
// settings: initial grid size, the shell to spawn, and the color theme
// used by the renderer.
package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config is the on-disk settings file, loaded from ~/.vtdemo.yaml.
type Config struct {
	Cols      int    `yaml:"cols"`
	Rows      int    `yaml:"rows"`
	Shell     string `yaml:"shell"`
	Theme     string `yaml:"theme"`
	ScrollBuf int    `yaml:"scroll_buffer_lines"`
}

const (
	minCols = 20
	maxCols = 500
	minRows = 5
	maxRows = 200
)

// DefaultConfig returns the settings used when no config file exists yet.
func DefaultConfig() Config {
	return Config{
		Cols:      80,
		Rows:      24,
		Shell:     defaultShell(),
		Theme:     "default",
		ScrollBuf: 2000,
	}
}

func defaultShell() string {
	if sh := os.Getenv("SHELL"); sh != "" {
		return sh
	}
	return "/bin/sh"
}

func configPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".vtdemo.yaml"), nil
}

// Load reads the config file, writing out defaults on first run, and
// clamps any out-of-range numeric fields read from disk.
func Load() (Config, error) {
	path, err := configPath()
	if err != nil {
		return DefaultConfig(), err
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		cfg := DefaultConfig()
		return cfg, writeDefaults(path, cfg)
	}
	if err != nil {
		return DefaultConfig(), err
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return DefaultConfig(), err
	}
	clamp(&cfg)
	return cfg, nil
}

func clamp(cfg *Config) {
	if cfg.Cols < minCols {
		cfg.Cols = minCols
	}
	if cfg.Cols > maxCols {
		cfg.Cols = maxCols
	}
	if cfg.Rows < minRows {
		cfg.Rows = minRows
	}
	if cfg.Rows > maxRows {
		cfg.Rows = maxRows
	}
	if cfg.ScrollBuf < 0 {
		cfg.ScrollBuf = 0
	}
	if cfg.Shell == "" {
		cfg.Shell = defaultShell()
	}
}

func writeDefaults(path string, cfg Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
