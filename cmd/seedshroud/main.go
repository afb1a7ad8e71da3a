// SeedShroud - Biome Obfuscation Against Seed Cracking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/seedshroud

// Package main runs the SeedShroud engine as a standalone process.
//
// The runner loads configuration, initializes logging, builds the engine and
// serves its supervisor tree (reaper, config watcher, admin API) until SIGINT
// or SIGTERM. Hosts that embed the engine in-process import the root package
// instead.
//
// # Configuration
//
// Configuration is loaded via Koanf v2 with layered sources (highest priority wins):
//   - Environment variables (BIOME_OBFUSCATION_ENABLED, ADMIN_PORT, LOG_LEVEL, ...)
//   - Config file (config.yaml, or the path in CONFIG_PATH)
//   - Built-in defaults
//
// When a config file is in use, edits to its biome_obfuscation section are
// applied without a restart.
//
// # Example Usage
//
//	export BIOME_OBFUSCATION_ENABLED=true
//	export LOG_FORMAT=console
//	./seedshroud
//
//	curl -s http://127.0.0.1:9464/api/v1/stats
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/tomtom215/seedshroud"
	"github.com/tomtom215/seedshroud/internal/config"
	"github.com/tomtom215/seedshroud/internal/logging"
)

func main() {
	// Load configuration first to get logging settings
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logCfg := logging.DefaultConfig()
	logCfg.Level = cfg.Logging.Level
	logCfg.Format = cfg.Logging.Format
	logCfg.Caller = cfg.Logging.Caller
	logging.Init(logCfg)

	configPath := config.FindConfigFile()
	logging.Info().
		Str("config_file", configPath).
		Bool("enabled", cfg.Obfuscation.Enabled).
		Int64("login_protection_ms", cfg.Obfuscation.LoginProtectionDuration).
		Int64("respawn_protection_ms", cfg.Obfuscation.RespawnProtectionDuration).
		Msg("Configuration loaded")

	var opts []seedshroud.Option
	if configPath != "" {
		opts = append(opts, seedshroud.WithConfigPath(configPath))
	}

	engine, err := seedshroud.New(cfg, opts...)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create engine")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := engine.Serve(ctx); err != nil && ctx.Err() == nil {
		logging.Error().Err(err).Msg("Supervisor tree error")
		stop()
		os.Exit(1)
	}

	logging.Info().Msg("SeedShroud stopped gracefully")
}
