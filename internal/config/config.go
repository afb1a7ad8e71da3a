// SeedShroud - Biome Obfuscation Against Seed Cracking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/seedshroud

package config

import (
	"time"
)

// Config holds all application configuration loaded from config files and
// environment variables.
//
// Configuration Loading Order (Koanf v2):
//  1. Defaults: Built-in defaults for every setting
//  2. Config File: Optional YAML config file (config.yaml)
//  3. Environment Variables: Override any setting
//
// Configuration Categories:
//
//  1. Obfuscation: the biome_obfuscation section read on every packet
//  2. Housekeeping: reaper period
//  3. Resilience: transform circuit breaker
//  4. Observability: admin HTTP server and logging
//
// Example - Load configuration:
//
//	cfg, err := config.Load()
//	if err != nil {
//	    logging.Fatal().Err(err).Msg("Failed to load configuration")
//	}
//	store := config.NewStore(cfg.Obfuscation)
//
// Thread Safety:
// Config is immutable after Load(). The obfuscation section is published to
// the packet path through a Store so it can be swapped on reload.
type Config struct {
	Obfuscation ObfuscationConfig `koanf:"biome_obfuscation"`
	Reaper      ReaperConfig      `koanf:"reaper"`
	Breaker     BreakerConfig     `koanf:"breaker"`
	Admin       AdminConfig       `koanf:"admin"`
	Logging     LoggingConfig     `koanf:"logging"`
}

// ObfuscationConfig holds the settings consulted for every monitored packet.
// Durations are whole milliseconds to match the YAML layout server operators
// already use.
//
// Environment Variables:
//   - BIOME_OBFUSCATION_ENABLED: Master switch (default: false)
//   - BIOME_OBFUSCATION_LOGIN_PROTECTION_DURATION: ms after join (default: 10000)
//   - BIOME_OBFUSCATION_RESPAWN_PROTECTION_DURATION: ms after respawn (default: 5000)
//   - BIOME_OBFUSCATION_LOG_OBFUSCATED_CHUNKS: Log each obfuscated chunk (default: false)
type ObfuscationConfig struct {
	Enabled bool `koanf:"enabled"`

	// LoginProtectionDuration is the window after a player joins during which
	// every chunk is obfuscated, in milliseconds.
	LoginProtectionDuration int64 `koanf:"login_protection_duration" validate:"gte=0"`

	// RespawnProtectionDuration is the window after a respawn during which
	// every chunk is obfuscated, in milliseconds.
	RespawnProtectionDuration int64 `koanf:"respawn_protection_duration" validate:"gte=0"`

	LogObfuscatedChunks bool `koanf:"log_obfuscated_chunks"`
}

// LoginProtection returns LoginProtectionDuration as a time.Duration.
func (o ObfuscationConfig) LoginProtection() time.Duration {
	return time.Duration(o.LoginProtectionDuration) * time.Millisecond
}

// RespawnProtection returns RespawnProtectionDuration as a time.Duration.
func (o ObfuscationConfig) RespawnProtection() time.Duration {
	return time.Duration(o.RespawnProtectionDuration) * time.Millisecond
}

// ReaperConfig controls the background housekeeping pass.
//
// Environment Variables:
//   - REAPER_INTERVAL: Time between passes (default: 5m)
type ReaperConfig struct {
	Interval time.Duration `koanf:"interval" validate:"gte=1s"`
}

// BreakerConfig configures the circuit breaker guarding the obfuscation step.
// When the breaker is open, packets pass through unmodified.
//
// Environment Variables:
//   - BREAKER_ENABLED: Guard the transform with a breaker (default: true)
//   - BREAKER_MIN_REQUESTS: Attempts in the interval before tripping is considered (default: 20)
//   - BREAKER_FAILURE_RATIO: Failure ratio that opens the breaker (default: 0.5)
//   - BREAKER_OPEN_TIMEOUT: Time spent open before probing again (default: 30s)
type BreakerConfig struct {
	Enabled      bool          `koanf:"enabled"`
	MinRequests  uint32        `koanf:"min_requests" validate:"gte=1"`
	FailureRatio float64       `koanf:"failure_ratio" validate:"gt=0,lte=1"`
	Interval     time.Duration `koanf:"interval" validate:"gte=0"`
	OpenTimeout  time.Duration `koanf:"open_timeout" validate:"gte=1s"`
}

// AdminConfig configures the loopback admin HTTP server exposing health,
// statistics and Prometheus metrics.
//
// Environment Variables:
//   - ADMIN_ENABLED: Serve the admin API (default: true)
//   - ADMIN_HOST: Bind address (default: 127.0.0.1)
//   - ADMIN_PORT: Listen port (default: 9464)
//   - ADMIN_RATE_LIMIT: Requests per minute per client, 0 disables (default: 120)
//   - ADMIN_SHUTDOWN_TIMEOUT: Graceful shutdown timeout (default: 10s)
type AdminConfig struct {
	Enabled            bool          `koanf:"enabled"`
	Host               string        `koanf:"host" validate:"required"`
	Port               int           `koanf:"port" validate:"min=1,max=65535"`
	RateLimitPerMinute int           `koanf:"rate_limit_per_minute" validate:"gte=0"`
	ShutdownTimeout    time.Duration `koanf:"shutdown_timeout" validate:"gte=1s"`
}

// LoggingConfig holds logging settings.
//
// Environment Variables:
//   - LOG_LEVEL: trace, debug, info, warn, error (default: info)
//   - LOG_FORMAT: json or console (default: json)
//   - LOG_CALLER: Include caller file:line (default: false)
type LoggingConfig struct {
	// Level is the minimum log level: trace, debug, info, warn, error.
	// Default: info
	Level string `koanf:"level" validate:"oneof=trace debug info warn error fatal panic disabled"`

	// Format is the output format: json or console.
	// Default: json
	Format string `koanf:"format" validate:"oneof=json console"`

	// Caller includes caller file and line number in logs.
	// Default: false
	Caller bool `koanf:"caller"`
}

// Load reads configuration from defaults, the optional config file and the
// environment, then validates it.
func Load() (*Config, error) {
	return LoadWithKoanf()
}
