// SeedShroud - Biome Obfuscation Against Seed Cracking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/seedshroud

/*
Package config provides centralized configuration management for SeedShroud.

Configuration is loaded with Koanf v2 from three layers, later layers winning:

 1. Built-in defaults (defaultConfig)
 2. An optional YAML file: CONFIG_PATH, then config.yaml, config.yml,
    /etc/seedshroud/config.yaml, /etc/seedshroud/config.yml
 3. Environment variables mapped by envTransformFunc

# Configuration Structure

  - ObfuscationConfig (biome_obfuscation): master switch, protection windows
    in milliseconds, per-chunk logging
  - ReaperConfig (reaper): housekeeping period
  - BreakerConfig (breaker): circuit breaker around the byte transform
  - AdminConfig (admin): loopback HTTP server for health, stats and metrics
  - LoggingConfig (logging): zerolog level, format and caller

Example YAML:

	biome_obfuscation:
	  enabled: true
	  login_protection_duration: 10000
	  respawn_protection_duration: 5000
	  log_obfuscated_chunks: false
	reaper:
	  interval: 5m
	admin:
	  port: 9464

# Live Settings

The packet path reads the biome_obfuscation section for every packet. It is
published through a Store (an atomic pointer) so a reload triggered by
WatchConfigFile replaces it without locking:

	store := config.NewStore(cfg.Obfuscation)
	settings := store.Obfuscation()

Only the biome_obfuscation section is hot-reloadable. Other sections take
effect on restart.

# Validation

Validate runs go-playground/validator struct tags through the validation
package and returns every failing field in one error.
*/
package config
