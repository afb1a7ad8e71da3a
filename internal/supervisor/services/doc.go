// SeedShroud - Biome Obfuscation Against Seed Cracking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/seedshroud

/*
Package services provides suture.Service wrappers for SeedShroud's background
components.

Each wrapper translates a component's lifecycle into suture's context-aware
Serve method and names itself via fmt.Stringer for supervisor log events.

# Available Services

ReaperService ("reaper"):
  - Wraps reaper.Reaper's RunWithContext loop
  - Evicts idle activity records and bounds the biome cache

ConfigWatcherService ("config-watcher"):
  - Watches the config file with koanf's file provider
  - Validates each reload and publishes biome_obfuscation into a config.Store
  - Keeps the previous settings when a reload is invalid

HTTPServerService ("admin-http"):
  - Wraps *http.Server for the admin API
  - Converts ListenAndServe into Serve with graceful Shutdown

# Return Values

Serve returns ctx.Err() on shutdown and a wrapped error when the component
fails, which makes the supervisor restart it.
*/
package services
