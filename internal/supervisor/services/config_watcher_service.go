// SeedShroud - Biome Obfuscation Against Seed Cracking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/seedshroud

package services

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/tomtom215/seedshroud/internal/config"
	"github.com/tomtom215/seedshroud/internal/logging"
	"github.com/tomtom215/seedshroud/internal/metrics"
)

// WatchFunc starts watching path and returns a function that stops it.
type WatchFunc func(path string, callback func(err error)) (stop func() error, err error)

// LoadFunc loads and validates the full configuration from path.
type LoadFunc func(path string) (*config.Config, error)

// ConfigWatcherService reloads the obfuscation settings when the config file
// changes.
//
// A reload that fails to parse or validate is logged and counted, and the
// previous settings stay in effect. The biome_obfuscation section and
// logging.level are applied live; the other sections take effect on restart.
type ConfigWatcherService struct {
	path  string
	store *config.Store
	watch WatchFunc
	load  LoadFunc
	log   zerolog.Logger
	name  string
}

// NewConfigWatcherService watches path and publishes reloads into store.
func NewConfigWatcherService(path string, store *config.Store) *ConfigWatcherService {
	return &ConfigWatcherService{
		path:  path,
		store: store,
		watch: config.WatchConfigFile,
		load:  config.LoadFile,
		log:   logging.WithComponent("config-watcher"),
		name:  "config-watcher",
	}
}

// Serve implements suture.Service.
func (s *ConfigWatcherService) Serve(ctx context.Context) error {
	// Bursts of writes collapse into a single pending reload.
	changed := make(chan error, 1)

	stop, err := s.watch(s.path, func(err error) {
		select {
		case changed <- err:
		default:
		}
	})
	if err != nil {
		return fmt.Errorf("config watcher: %w", err)
	}
	defer func() {
		if err := stop(); err != nil {
			s.log.Debug().Err(err).Msg("Failed to stop config watcher")
		}
	}()

	s.log.Info().Str("path", s.path).Msg("Watching config file")

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case err := <-changed:
			s.reload(err)
		}
	}
}

func (s *ConfigWatcherService) reload(watchErr error) {
	if watchErr != nil {
		metrics.RecordConfigReload(false)
		s.log.Warn().Err(watchErr).Str("path", s.path).Msg("Config watch error")
		return
	}

	cfg, err := s.load(s.path)
	if err != nil {
		metrics.RecordConfigReload(false)
		s.log.Warn().Err(err).Str("path", s.path).Msg("Config reload rejected, keeping previous settings")
		return
	}

	logging.SetLevelString(cfg.Logging.Level)
	s.store.Update(cfg.Obfuscation)
	metrics.RecordConfigReload(true)
	s.log.Info().
		Str("log_level", logging.GetLevel().String()).
		Bool("enabled", cfg.Obfuscation.Enabled).
		Int64("login_protection_ms", cfg.Obfuscation.LoginProtectionDuration).
		Int64("respawn_protection_ms", cfg.Obfuscation.RespawnProtectionDuration).
		Bool("log_obfuscated_chunks", cfg.Obfuscation.LogObfuscatedChunks).
		Msg("Config reloaded")
}

// String implements fmt.Stringer.
func (s *ConfigWatcherService) String() string {
	return s.name
}
