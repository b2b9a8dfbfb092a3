// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides unified configuration loading and management for pelorus.
//
// Configuration sources (in order of precedence):
//   - PELORUS_* environment variables
//   - .env file in the working directory
//   - ~/.pelorus/config.toml
//   - Built-in defaults
package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// =============================================================================
// CONFIG STRUCTURES
// =============================================================================

// Config represents the complete pelorus configuration.
type Config struct {
	// API configures the backend gateway connection.
	API APIConfig `toml:"api"`

	// Voice configures speech capture and audio replies.
	Voice VoiceConfig `toml:"voice"`

	// UI configures presentation preferences.
	UI UIConfig `toml:"ui"`

	// Logging configures the request log file.
	Logging LoggingConfig `toml:"logging"`
}

// APIConfig contains backend gateway settings.
type APIConfig struct {
	// BaseURL is the gateway root, e.g. http://127.0.0.1:8000/api
	BaseURL string `toml:"base_url" envconfig:"API_URL"`
	// TimeoutSecs is the per-request timeout for ordinary calls.
	TimeoutSecs int `toml:"timeout_secs" envconfig:"API_TIMEOUT_SECS"`
	// QueryTimeoutSecs is the longer timeout for agent queries.
	QueryTimeoutSecs int `toml:"query_timeout_secs" envconfig:"API_QUERY_TIMEOUT_SECS"`
	// HealthIntervalSecs is the spacing between reachability checks.
	HealthIntervalSecs int `toml:"health_interval_secs" envconfig:"API_HEALTH_INTERVAL_SECS"`
}

// VoiceConfig contains voice interface settings.
type VoiceConfig struct {
	// Enabled turns spoken replies on.
	Enabled bool `toml:"enabled" envconfig:"VOICE_ENABLED"`
	// Language is the recognition language tag, e.g. "en-US".
	Language string `toml:"language" envconfig:"VOICE_LANGUAGE"`
}

// UIConfig contains presentation settings.
type UIConfig struct {
	// Theme selects the color theme: "dark" or "light".
	Theme string `toml:"theme" envconfig:"THEME"`
	// ShowTimestamps renders a timestamp next to each message.
	ShowTimestamps bool `toml:"show_timestamps" envconfig:"SHOW_TIMESTAMPS"`
	// MarkdownWidth is the wrap width for rendered answers, 0 = terminal width.
	MarkdownWidth int `toml:"markdown_width" envconfig:"MARKDOWN_WIDTH"`
}

// LoggingConfig contains request log settings.
type LoggingConfig struct {
	// Enabled turns request logging on.
	Enabled bool `toml:"enabled" envconfig:"LOG_ENABLED"`
	// Path is the log file location, empty = ~/.pelorus/pelorus.log.
	Path string `toml:"path" envconfig:"LOG_PATH"`
	// Level is the minimum level: "debug", "info", "warn", "error".
	Level string `toml:"level" envconfig:"LOG_LEVEL"`
}

// =============================================================================
// DEFAULTS
// =============================================================================

// Default returns a configuration with sensible defaults.
func Default() *Config {
	return &Config{
		API: APIConfig{
			BaseURL:            "http://127.0.0.1:8000/api",
			TimeoutSecs:        30,
			QueryTimeoutSecs:   60,
			HealthIntervalSecs: 30,
		},
		Voice: VoiceConfig{
			Enabled:  true,
			Language: "en-US",
		},
		UI: UIConfig{
			Theme:          "dark",
			ShowTimestamps: true,
		},
		Logging: LoggingConfig{
			Enabled: true,
			Level:   "info",
		},
	}
}

// Timeout returns the ordinary request timeout as a duration.
func (a APIConfig) Timeout() time.Duration {
	return time.Duration(a.TimeoutSecs) * time.Second
}

// QueryTimeout returns the agent query timeout as a duration.
func (a APIConfig) QueryTimeout() time.Duration {
	return time.Duration(a.QueryTimeoutSecs) * time.Second
}

// HealthInterval returns the reachability check spacing as a duration.
func (a APIConfig) HealthInterval() time.Duration {
	return time.Duration(a.HealthIntervalSecs) * time.Second
}

// =============================================================================
// PATHS
// =============================================================================

// ConfigDir returns the pelorus configuration directory (~/.pelorus).
func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".pelorus"), nil
}

// ConfigPath returns the TOML configuration file path.
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// DefaultLogPath returns the default request log location.
func DefaultLogPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "pelorus.log"), nil
}

// EnsureConfigDir creates the configuration directory if needed.
func EnsureConfigDir() error {
	dir, err := ConfigDir()
	if err != nil {
		return err
	}
	return os.MkdirAll(dir, 0o700)
}

// =============================================================================
// LOADING
// =============================================================================

// Load reads the configuration from all sources.
// Defaults, then ~/.pelorus/config.toml, then .env, then PELORUS_* variables.
func Load() (*Config, error) {
	// A .env file is optional; absence is not an error.
	_ = godotenv.Load()

	cfg := Default()

	path, err := ConfigPath()
	if err == nil {
		if _, statErr := os.Stat(path); statErr == nil {
			if err := LoadTOML(cfg, path); err != nil {
				return nil, err
			}
		}
	}

	if err := envconfig.Process("pelorus", cfg); err != nil {
		return nil, fmt.Errorf("failed to apply environment overrides: %w", err)
	}

	cfg.fillDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// LoadTOML loads configuration from a TOML file into cfg.
func LoadTOML(cfg *Config, path string) error {
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return fmt.Errorf("failed to decode TOML file: %w", err)
	}
	return nil
}

// LoadFromPath loads configuration from an explicit file, skipping the
// default search. Environment overrides still apply.
func LoadFromPath(path string) (*Config, error) {
	cfg := Default()
	if err := LoadTOML(cfg, path); err != nil {
		return nil, err
	}
	if err := envconfig.Process("pelorus", cfg); err != nil {
		return nil, fmt.Errorf("failed to apply environment overrides: %w", err)
	}
	cfg.fillDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// fillDefaults replaces zero values with defaults after file and env merge.
func (c *Config) fillDefaults() {
	def := Default()
	if c.API.BaseURL == "" {
		c.API.BaseURL = def.API.BaseURL
	}
	if c.API.TimeoutSecs <= 0 {
		c.API.TimeoutSecs = def.API.TimeoutSecs
	}
	if c.API.QueryTimeoutSecs <= 0 {
		c.API.QueryTimeoutSecs = def.API.QueryTimeoutSecs
	}
	if c.API.HealthIntervalSecs <= 0 {
		c.API.HealthIntervalSecs = def.API.HealthIntervalSecs
	}
	if c.Voice.Language == "" {
		c.Voice.Language = def.Voice.Language
	}
	if c.UI.Theme == "" {
		c.UI.Theme = def.UI.Theme
	}
	if c.Logging.Level == "" {
		c.Logging.Level = def.Logging.Level
	}
}

// =============================================================================
// SAVING
// =============================================================================

// Save writes the configuration to ~/.pelorus/config.toml.
func Save(cfg *Config) error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	return SaveTOML(cfg, path)
}

// SaveTOML writes the configuration to the given path.
func SaveTOML(cfg *Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	return nil
}

// =============================================================================
// VALIDATION
// =============================================================================

// Validate checks the configuration for inconsistencies.
func (c *Config) Validate() error {
	u, err := url.Parse(c.API.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("api.base_url %q is not a valid URL", c.API.BaseURL)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("api.base_url scheme must be http or https, got %q", u.Scheme)
	}
	switch c.UI.Theme {
	case "dark", "light":
	default:
		return fmt.Errorf("ui.theme must be \"dark\" or \"light\", got %q", c.UI.Theme)
	}
	switch strings.ToLower(c.Logging.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level %q is not a valid level", c.Logging.Level)
	}
	return nil
}

// =============================================================================
// GLOBAL CONFIG ACCESS
// =============================================================================

var (
	globalConfig     *Config
	globalConfigMu   sync.RWMutex
	globalConfigOnce sync.Once
)

// Global returns the shared configuration, loading it on first use.
func Global() *Config {
	globalConfigOnce.Do(func() {
		globalConfigMu.RLock()
		set := globalConfig != nil
		globalConfigMu.RUnlock()
		if set {
			return
		}
		cfg, err := Load()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: %v (using defaults)\n", err)
			cfg = Default()
		}
		globalConfigMu.Lock()
		globalConfig = cfg
		globalConfigMu.Unlock()
	})

	globalConfigMu.RLock()
	defer globalConfigMu.RUnlock()
	return globalConfig
}

// SetGlobal sets the global configuration instance. Thread-safe.
func SetGlobal(cfg *Config) {
	globalConfigMu.Lock()
	defer globalConfigMu.Unlock()
	globalConfig = cfg
}

// ResetGlobalForTesting resets the global config state between test runs.
func ResetGlobalForTesting() {
	globalConfigMu.Lock()
	defer globalConfigMu.Unlock()
	globalConfig = nil
	globalConfigOnce = sync.Once{}
}
