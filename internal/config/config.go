// Package config provides centralized configuration management using Viper.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/planterm/planterm/internal/logger"
)

// Config holds all configuration values for planterm.
type Config struct {
	Theme    string `mapstructure:"theme" yaml:"theme"`
	Output   string `mapstructure:"output" yaml:"output"`
	SaveDir  string `mapstructure:"save_dir" yaml:"save_dir"`
	DataDir  string `mapstructure:"data_dir" yaml:"data_dir"`
	LogLevel string `mapstructure:"log_level" yaml:"log_level"`
	LogFile  string `mapstructure:"log_file" yaml:"log_file"`
}

// Load loads configuration with full precedence:
// CLI flags > ENV vars > project config > XDG global config > defaults
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetConfigName("planterm")

	v.SetDefault("theme", "mocha")
	v.SetDefault("output", "yaml")
	v.SetDefault("save_dir", ".")
	v.SetDefault("data_dir", ".planterm")
	v.SetDefault("log_level", "info")
	v.SetDefault("log_file", "")

	// Setup ENV binding with PLANTERM_ prefix
	v.SetEnvPrefix("PLANTERM")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Explicit ENV bindings; BindEnv only fails on empty key names but
	// the errors are checked anyway
	if err := v.BindEnv("theme", "PLANTERM_THEME"); err != nil {
		return nil, fmt.Errorf("binding theme env: %w", err)
	}
	if err := v.BindEnv("output", "PLANTERM_OUTPUT"); err != nil {
		return nil, fmt.Errorf("binding output env: %w", err)
	}
	if err := v.BindEnv("save_dir", "PLANTERM_SAVE_DIR"); err != nil {
		return nil, fmt.Errorf("binding save_dir env: %w", err)
	}
	if err := v.BindEnv("data_dir", "PLANTERM_DATA_DIR"); err != nil {
		return nil, fmt.Errorf("binding data_dir env: %w", err)
	}
	if err := v.BindEnv("log_level", "PLANTERM_LOG_LEVEL"); err != nil {
		return nil, fmt.Errorf("binding log_level env: %w", err)
	}
	if err := v.BindEnv("log_file", "PLANTERM_LOG_FILE"); err != nil {
		return nil, fmt.Errorf("binding log_file env: %w", err)
	}

	// Load global config first (if exists)
	globalPath := GlobalPath()
	if fileExists(globalPath) {
		v.SetConfigFile(globalPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading global config: %w", err)
		}
	}

	// Merge project config on top (if exists)
	projectPath := ProjectPath()
	if fileExists(projectPath) {
		// Need to set config file explicitly for merge
		v.SetConfigFile(projectPath)
		if err := v.MergeInConfig(); err != nil {
			return nil, fmt.Errorf("merging project config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return &cfg, nil
}

// Validate rejects values no command could act on.
func (c *Config) Validate() error {
	switch c.Output {
	case "yaml", "json":
	default:
		return fmt.Errorf("invalid output format %q (want yaml or json)", c.Output)
	}
	if c.LogLevel != "" {
		if _, err := logger.ParseLevel(c.LogLevel); err != nil {
			return err
		}
	}
	return nil
}

// Exists returns true if any config file exists (global or project).
func Exists() bool {
	return fileExists(GlobalPath()) || fileExists(ProjectPath())
}

// GlobalPath returns the XDG global config path.
// Returns ~/.config/planterm/planterm.yml or $XDG_CONFIG_HOME/planterm/planterm.yml.
func GlobalPath() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "planterm", "planterm.yml")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "planterm", "planterm.yml")
}

// ProjectPath returns the project-local config path.
// Returns ./planterm.yml in the current working directory.
func ProjectPath() string {
	return "planterm.yml"
}

// WriteGlobal writes the config to the XDG global location.
func WriteGlobal(cfg *Config) error {
	path := GlobalPath()

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// WriteProject writes the config to the project-local location.
func WriteProject(cfg *Config) error {
	path := ProjectPath()

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// fileExists checks if a file exists.
func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
