// Package config loads CLI configuration from YAML with environment
// overrides.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Defaults mirror the API's local development setup.
const (
	DefaultBaseURL   = "http://localhost:8000"
	DefaultTimeoutMS = 30000
	DefaultRenderer  = "term"
)

// Config is the resolved runtime configuration.
type Config struct {
	BaseURL   string    `yaml:"base_url"`
	TimeoutMS int       `yaml:"timeout_ms"`
	Renderer  string    `yaml:"renderer"`
	Theme     Theme     `yaml:"theme"`
	Log       LogConfig `yaml:"log"`
}

// Theme selects the design tokens applied by styling renderers.
type Theme struct {
	Name    string `yaml:"name"`
	Variant string `yaml:"variant"`
}

// LogConfig controls the transaction log destination.
type LogConfig struct {
	File  string `yaml:"file"`
	Level string `yaml:"level"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		BaseURL:   DefaultBaseURL,
		TimeoutMS: DefaultTimeoutMS,
		Renderer:  DefaultRenderer,
		Log:       LogConfig{Level: "info"},
	}
}

// Timeout converts the configured milliseconds into a Duration.
func (c Config) Timeout() time.Duration {
	if c.TimeoutMS <= 0 {
		return time.Duration(DefaultTimeoutMS) * time.Millisecond
	}
	return time.Duration(c.TimeoutMS) * time.Millisecond
}

// Load reads a YAML file, falls back to defaults when path is empty or
// missing, and applies environment overrides last.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
			// Missing file means defaults; an explicit bad path still
			// surfaces through the caller's later requests.
		case err != nil:
			return Config{}, fmt.Errorf("config: read %s: %w", path, err)
		default:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
			}
		}
	}

	applyEnv(&cfg)

	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Renderer == "" {
		cfg.Renderer = DefaultRenderer
	}
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("SRTM_BASE_URL"); v != "" {
		cfg.BaseURL = v
	}
	if v := os.Getenv("SRTM_TIMEOUT_MS"); v != "" {
		if ms, err := strconv.Atoi(v); err == nil && ms > 0 {
			cfg.TimeoutMS = ms
		}
	}
	if v := os.Getenv("SRTM_RENDERER"); v != "" {
		cfg.Renderer = v
	}
	if v := os.Getenv("SRTM_LOG_FILE"); v != "" {
		cfg.Log.File = v
	}
}
