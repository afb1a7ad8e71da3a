// SeedShroud - Biome Obfuscation Against Seed Cracking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/seedshroud

package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/tomtom215/seedshroud/internal/validation"
)

// TestDefaultConfig verifies that defaultConfig() returns proper defaults
func TestDefaultConfig(t *testing.T) {
	cfg := defaultConfig()

	if cfg.Obfuscation.Enabled {
		t.Error("Obfuscation.Enabled should be false by default")
	}
	if cfg.Obfuscation.LoginProtectionDuration != 10000 {
		t.Errorf("LoginProtectionDuration = %d, want 10000", cfg.Obfuscation.LoginProtectionDuration)
	}
	if cfg.Obfuscation.RespawnProtectionDuration != 5000 {
		t.Errorf("RespawnProtectionDuration = %d, want 5000", cfg.Obfuscation.RespawnProtectionDuration)
	}
	if cfg.Obfuscation.LogObfuscatedChunks {
		t.Error("LogObfuscatedChunks should be false by default")
	}

	if cfg.Reaper.Interval != 5*time.Minute {
		t.Errorf("Reaper.Interval = %v, want 5m", cfg.Reaper.Interval)
	}

	if !cfg.Breaker.Enabled {
		t.Error("Breaker.Enabled should be true by default")
	}
	if cfg.Breaker.MinRequests != 20 {
		t.Errorf("Breaker.MinRequests = %d, want 20", cfg.Breaker.MinRequests)
	}
	if cfg.Breaker.OpenTimeout != 30*time.Second {
		t.Errorf("Breaker.OpenTimeout = %v, want 30s", cfg.Breaker.OpenTimeout)
	}

	if cfg.Admin.Host != "127.0.0.1" {
		t.Errorf("Admin.Host = %q, want 127.0.0.1", cfg.Admin.Host)
	}
	if cfg.Admin.Port != 9464 {
		t.Errorf("Admin.Port = %d, want 9464", cfg.Admin.Port)
	}

	if cfg.Logging.Level != "info" {
		t.Errorf("Logging.Level = %q, want info", cfg.Logging.Level)
	}
	if cfg.Logging.Format != "json" {
		t.Errorf("Logging.Format = %q, want json", cfg.Logging.Format)
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate, got %v", err)
	}
}

func TestEnvTransformFunc(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"BIOME_OBFUSCATION_ENABLED", "biome_obfuscation.enabled"},
		{"BIOME_OBFUSCATION_LOGIN_PROTECTION_DURATION", "biome_obfuscation.login_protection_duration"},
		{"BIOME_OBFUSCATION_RESPAWN_PROTECTION_DURATION", "biome_obfuscation.respawn_protection_duration"},
		{"BIOME_OBFUSCATION_LOG_OBFUSCATED_CHUNKS", "biome_obfuscation.log_obfuscated_chunks"},
		{"REAPER_INTERVAL", "reaper.interval"},
		{"BREAKER_ENABLED", "breaker.enabled"},
		{"BREAKER_FAILURE_RATIO", "breaker.failure_ratio"},
		{"ADMIN_PORT", "admin.port"},
		{"ADMIN_RATE_LIMIT", "admin.rate_limit_per_minute"},
		{"LOG_LEVEL", "logging.level"},
		{"LOG_FORMAT", "logging.format"},

		// Unknown (should return empty)
		{"RANDOM_VAR", ""},
		{"PATH", ""},
		{"HOME", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result := envTransformFunc(tt.input)
			if result != tt.expected {
				t.Errorf("envTransformFunc(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

// TestFindConfigFile verifies config file discovery
func TestFindConfigFile(t *testing.T) {
	tmpDir := t.TempDir()
	t.Chdir(tmpDir)

	t.Run("no config file exists", func(t *testing.T) {
		t.Setenv(ConfigPathEnvVar, "")
		if result := findConfigFile(); result != "" {
			t.Errorf("findConfigFile() = %q, want empty string", result)
		}
	})

	t.Run("config.yaml exists", func(t *testing.T) {
		configPath := filepath.Join(tmpDir, "config.yaml")
		if err := os.WriteFile(configPath, []byte("reaper:\n  interval: 1m\n"), 0o644); err != nil {
			t.Fatalf("Failed to create config file: %v", err)
		}
		defer os.Remove(configPath)

		t.Setenv(ConfigPathEnvVar, "")
		if result := findConfigFile(); result != "config.yaml" {
			t.Errorf("findConfigFile() = %q, want config.yaml", result)
		}
	})

	t.Run("CONFIG_PATH env var takes precedence", func(t *testing.T) {
		customPath := filepath.Join(tmpDir, "custom_config.yaml")
		if err := os.WriteFile(customPath, []byte("reaper:\n  interval: 1m\n"), 0o644); err != nil {
			t.Fatalf("Failed to create custom config file: %v", err)
		}

		t.Setenv(ConfigPathEnvVar, customPath)
		if result := FindConfigFile(); result != customPath {
			t.Errorf("FindConfigFile() = %q, want %q", result, customPath)
		}
	})

	t.Run("CONFIG_PATH env var with non-existent file", func(t *testing.T) {
		t.Setenv(ConfigPathEnvVar, "/non/existent/config.yaml")
		if result := findConfigFile(); result != "" {
			t.Errorf("findConfigFile() = %q, want empty string", result)
		}
	})
}

// TestLoadFileEnvVars tests loading configuration from environment variables
func TestLoadFileEnvVars(t *testing.T) {
	t.Setenv("BIOME_OBFUSCATION_ENABLED", "true")
	t.Setenv("BIOME_OBFUSCATION_LOGIN_PROTECTION_DURATION", "15000")
	t.Setenv("REAPER_INTERVAL", "30s")
	t.Setenv("ADMIN_PORT", "9000")
	t.Setenv("LOG_LEVEL", "DEBUG")

	cfg, err := LoadFile("")
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}

	if !cfg.Obfuscation.Enabled {
		t.Error("Obfuscation.Enabled = false, want true")
	}
	if cfg.Obfuscation.LoginProtection() != 15*time.Second {
		t.Errorf("LoginProtection() = %v, want 15s", cfg.Obfuscation.LoginProtection())
	}
	if cfg.Reaper.Interval != 30*time.Second {
		t.Errorf("Reaper.Interval = %v, want 30s", cfg.Reaper.Interval)
	}
	if cfg.Admin.Port != 9000 {
		t.Errorf("Admin.Port = %d, want 9000", cfg.Admin.Port)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q, want debug", cfg.Logging.Level)
	}

	// Defaults still apply for unset values
	if cfg.Obfuscation.RespawnProtection() != 5*time.Second {
		t.Errorf("RespawnProtection() = %v, want 5s (default)", cfg.Obfuscation.RespawnProtection())
	}
	if cfg.Admin.Host != "127.0.0.1" {
		t.Errorf("Admin.Host = %q, want 127.0.0.1 (default)", cfg.Admin.Host)
	}
}

// TestLoadFileConfigFile tests loading configuration from a YAML file
func TestLoadFileConfigFile(t *testing.T) {
	configContent := `
biome_obfuscation:
  enabled: true
  login_protection_duration: 20000
  respawn_protection_duration: 2500
  log_obfuscated_chunks: true
reaper:
  interval: 2m
admin:
  enabled: false
  port: 9500
logging:
  format: console
`
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(configPath, []byte(configContent), 0o644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	cfg, err := LoadFile(configPath)
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}

	if !cfg.Obfuscation.Enabled || !cfg.Obfuscation.LogObfuscatedChunks {
		t.Errorf("Obfuscation = %+v, want enabled with chunk logging", cfg.Obfuscation)
	}
	if cfg.Obfuscation.LoginProtectionDuration != 20000 {
		t.Errorf("LoginProtectionDuration = %d, want 20000", cfg.Obfuscation.LoginProtectionDuration)
	}
	if cfg.Obfuscation.RespawnProtection() != 2500*time.Millisecond {
		t.Errorf("RespawnProtection() = %v, want 2.5s", cfg.Obfuscation.RespawnProtection())
	}
	if cfg.Reaper.Interval != 2*time.Minute {
		t.Errorf("Reaper.Interval = %v, want 2m", cfg.Reaper.Interval)
	}
	if cfg.Admin.Enabled {
		t.Error("Admin.Enabled = true, want false")
	}
	if cfg.Admin.Port != 9500 {
		t.Errorf("Admin.Port = %d, want 9500", cfg.Admin.Port)
	}
	if cfg.Logging.Format != "console" {
		t.Errorf("Logging.Format = %q, want console", cfg.Logging.Format)
	}
}

// TestLoadFileEnvOverridesFile verifies that environment variables win over the file
func TestLoadFileEnvOverridesFile(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	content := "biome_obfuscation:\n  enabled: false\nadmin:\n  port: 9500\n"
	if err := os.WriteFile(configPath, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	t.Setenv("BIOME_OBFUSCATION_ENABLED", "true")
	t.Setenv("ADMIN_PORT", "9600")

	cfg, err := LoadFile(configPath)
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}

	if !cfg.Obfuscation.Enabled {
		t.Error("env should override file for biome_obfuscation.enabled")
	}
	if cfg.Admin.Port != 9600 {
		t.Errorf("Admin.Port = %d, want 9600 from env", cfg.Admin.Port)
	}
}

func TestLoadFileMissing(t *testing.T) {
	if _, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("LoadFile() with missing file should fail")
	}
}

// TestLoadFileValidation tests that invalid values are rejected
func TestLoadFileValidation(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		path string
	}{
		{"negative login protection", map[string]string{"BIOME_OBFUSCATION_LOGIN_PROTECTION_DURATION": "-1"}, "Obfuscation.LoginProtectionDuration"},
		{"negative respawn protection", map[string]string{"BIOME_OBFUSCATION_RESPAWN_PROTECTION_DURATION": "-5"}, "Obfuscation.RespawnProtectionDuration"},
		{"reaper interval too short", map[string]string{"REAPER_INTERVAL": "10ms"}, "Reaper.Interval"},
		{"admin port out of range", map[string]string{"ADMIN_PORT": "70000"}, "Admin.Port"},
		{"failure ratio above one", map[string]string{"BREAKER_FAILURE_RATIO": "1.5"}, "Breaker.FailureRatio"},
		{"unknown log level", map[string]string{"LOG_LEVEL": "verbose"}, "Logging.Level"},
		{"unknown log format", map[string]string{"LOG_FORMAT": "xml"}, "Logging.Format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := LoadFile("")
			if err == nil {
				t.Fatal("LoadFile() should fail validation")
			}
			var fieldErrs validation.Errors
			if !errors.As(err, &fieldErrs) {
				t.Fatalf("LoadFile() error = %v, want validation.Errors", err)
			}
			if !fieldErrs.Has(tt.path) {
				t.Errorf("expected error on %s, got %v", tt.path, err)
			}
		})
	}
}
