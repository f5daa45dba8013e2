// Package config loads application configuration by layering defaults, an
// optional YAML file, and MOODLOG_-prefixed environment variables.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/abhisek/moodlog/internal/timewindow"
)

// Config contains process configuration.
type Config struct {
	// DBPath overrides the default database location when non-empty.
	DBPath string `koanf:"db_path"`

	// DefaultRange is the time-filter preset the history view opens with.
	DefaultRange string `koanf:"default_range"`

	// InstrumentsPath points at an optional user-defined instrument
	// catalog (JSON). Empty means built-in instruments only.
	InstrumentsPath string `koanf:"instruments_path"`
}

// Default returns the configuration used when nothing is overridden.
func Default() *Config {
	return &Config{
		DefaultRange: string(timewindow.AllTime),
	}
}

// Load builds a Config by layering, lowest precedence first:
//  1. defaults (Default())
//  2. YAML file: MOODLOG_CONFIG if set, else the XDG config path if present
//  3. env vars with prefix MOODLOG_ (MOODLOG_DB_PATH -> db_path, ...)
func Load() (*Config, error) {
	k := koanf.New(".")

	if path, ok := configFilePath(); ok {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("load config file %s: %w", path, err)
		}
	}

	envProvider := env.Provider("MOODLOG_", ".", func(s string) string {
		s = strings.ToLower(s)
		return strings.TrimPrefix(s, "moodlog_")
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("load env config: %w", err)
	}

	cfg := *Default()
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func validate(cfg *Config) error {
	for _, p := range timewindow.Presets() {
		if cfg.DefaultRange == string(p) {
			return nil
		}
	}
	return fmt.Errorf("default_range %q is not a known preset", cfg.DefaultRange)
}

// configFilePath returns the config file to load, if any. MOODLOG_CONFIG
// wins; otherwise the XDG path is used only when the file already exists.
func configFilePath() (string, bool) {
	if p := os.Getenv("MOODLOG_CONFIG"); p != "" {
		return p, true
	}

	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", false
		}
		configHome = filepath.Join(home, ".config")
	}

	p := filepath.Join(configHome, "moodlog", "config.yaml")
	if _, err := os.Stat(p); err != nil {
		return "", false
	}
	return p, true
}
