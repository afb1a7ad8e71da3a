// SeedShroud - Biome Obfuscation Against Seed Cracking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/seedshroud

package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"

	"github.com/tomtom215/seedshroud/internal/detection"
)

// DefaultConfigPaths lists the paths where config files are searched in order of priority.
// The first file found will be used.
var DefaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
	"/etc/seedshroud/config.yaml",
	"/etc/seedshroud/config.yml",
}

// ConfigPathEnvVar is the environment variable that can override the config file path.
const ConfigPathEnvVar = "CONFIG_PATH"

// defaultConfig returns a Config struct with all sensible default values.
// These defaults are applied first, then overridden by config file and env vars.
func defaultConfig() *Config {
	return &Config{
		Obfuscation: ObfuscationConfig{
			Enabled:                   false, // Operators opt in explicitly
			LoginProtectionDuration:   detection.DefaultLoginProtection.Milliseconds(),
			RespawnProtectionDuration: detection.DefaultRespawnProtection.Milliseconds(),
			LogObfuscatedChunks:       false,
		},
		Reaper: ReaperConfig{
			Interval: 5 * time.Minute,
		},
		Breaker: BreakerConfig{
			Enabled:      true,
			MinRequests:  20,
			FailureRatio: 0.5,
			Interval:     time.Minute,
			OpenTimeout:  30 * time.Second,
		},
		Admin: AdminConfig{
			Enabled:            true,
			Host:               "127.0.0.1", // Loopback only unless overridden
			Port:               9464,
			RateLimitPerMinute: 120,
			ShutdownTimeout:    10 * time.Second,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Caller: false,
		},
	}
}

// Default returns the built-in configuration, for hosts that embed the engine
// without loading a file.
func Default() *Config {
	return defaultConfig()
}

// LoadWithKoanf loads configuration using Koanf v2 with layered sources:
//  1. Defaults: Built-in sensible defaults
//  2. Config File: Optional YAML config file (if exists)
//  3. Environment Variables: Override any setting
func LoadWithKoanf() (*Config, error) {
	return loadFrom(findConfigFile())
}

// LoadFile loads configuration like LoadWithKoanf but reads the given file
// instead of searching DefaultConfigPaths. An empty path skips the file layer.
func LoadFile(path string) (*Config, error) {
	return loadFrom(path)
}

func loadFrom(configPath string) (*Config, error) {
	k := koanf.New(".")

	// Layer 1: Load defaults from struct
	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// Layer 2: Load config file (optional)
	if configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	}

	// Layer 3: Load environment variables (highest priority)
	// BIOME_OBFUSCATION_ENABLED -> biome_obfuscation.enabled
	// ADMIN_PORT -> admin.port
	if err := k.Load(env.Provider("", ".", envTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// FindConfigFile returns the config file LoadWithKoanf would read, or an
// empty string when none exists.
func FindConfigFile() string {
	return findConfigFile()
}

// findConfigFile searches for a config file in the default paths.
// Returns the path to the first file found, or empty string if none found.
func findConfigFile() string {
	// Check environment variable first
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}

	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}

// envMappings maps upper-cased environment variable names (lowercased here)
// to koanf paths. Keys not listed are ignored.
var envMappings = map[string]string{
	"biome_obfuscation_enabled":                     "biome_obfuscation.enabled",
	"biome_obfuscation_login_protection_duration":   "biome_obfuscation.login_protection_duration",
	"biome_obfuscation_respawn_protection_duration": "biome_obfuscation.respawn_protection_duration",
	"biome_obfuscation_log_obfuscated_chunks":       "biome_obfuscation.log_obfuscated_chunks",

	"reaper_interval": "reaper.interval",

	"breaker_enabled":       "breaker.enabled",
	"breaker_min_requests":  "breaker.min_requests",
	"breaker_failure_ratio": "breaker.failure_ratio",
	"breaker_interval":      "breaker.interval",
	"breaker_open_timeout":  "breaker.open_timeout",

	"admin_enabled":          "admin.enabled",
	"admin_host":             "admin.host",
	"admin_port":             "admin.port",
	"admin_rate_limit":       "admin.rate_limit_per_minute",
	"admin_shutdown_timeout": "admin.shutdown_timeout",

	"log_level":  "logging.level",
	"log_format": "logging.format",
	"log_caller": "logging.caller",
}

// envTransformFunc transforms environment variable names to koanf config paths.
//
// Examples:
//   - BIOME_OBFUSCATION_ENABLED -> biome_obfuscation.enabled
//   - REAPER_INTERVAL -> reaper.interval
//   - ADMIN_RATE_LIMIT -> admin.rate_limit_per_minute
//   - LOG_LEVEL -> logging.level
func envTransformFunc(key string) string {
	key = strings.ToLower(key)

	if mapped, ok := envMappings[key]; ok {
		return mapped
	}

	// For unmapped keys, return empty string to skip them
	// This prevents random environment variables from polluting config
	return ""
}

// WatchConfigFile sets up a file watcher for hot-reload capability.
// callback receives nil on change and the watcher error otherwise.
// The returned stop function releases the underlying fsnotify watcher.
func WatchConfigFile(path string, callback func(err error)) (stop func() error, err error) {
	provider := file.Provider(path)

	if err := provider.Watch(func(_ interface{}, err error) {
		callback(err)
	}); err != nil {
		return nil, fmt.Errorf("failed to watch config file %s: %w", path, err)
	}

	return provider.Unwatch, nil
}
