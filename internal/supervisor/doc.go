// SeedShroud - Biome Obfuscation Against Seed Cracking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/seedshroud

/*
Package supervisor provides process supervision for SeedShroud using suture v4.

The obfuscation hot path runs synchronously inside the host's packet pipeline
and is not supervised. Everything that runs in the background is: the reaper
that bounds per-player state, the config file watcher, and the optional admin
HTTP server.

# Overview

Services are split into two layers so that a failing admin server never
interrupts state reclamation:

	RootSupervisor ("seedshroud")
	├── HousekeepingSupervisor ("housekeeping-layer")
	│   ├── ReaperService
	│   └── ConfigWatcherService (when a config file is in use)
	└── AdminSupervisor ("admin-layer")
	    └── HTTPServerService (if admin.enabled)

Each layer counts failures independently. A crash restarts only the service
that crashed, with backoff once FailureThreshold is exceeded.

# Usage Example

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.DefaultTreeConfig())
	if err != nil {
	    return err
	}

	tree.AddHousekeepingService(services.NewReaperService(r))
	tree.AddAdminService(services.NewHTTPServerService(server, 10*time.Second))

	if err := tree.Serve(ctx); err != nil && !errors.Is(err, context.Canceled) {
	    logging.Error().Err(err).Msg("Supervisor stopped")
	}

# Configuration

TreeConfig controls restart behavior. Zero fields take the values from
DefaultTreeConfig:

  - FailureThreshold: 5 failures
  - FailureDecay: 30 seconds
  - FailureBackoff: 15 seconds
  - ShutdownTimeout: 10 seconds

# Service Interface

All services implement suture.Service:

	type Service interface {
	    Serve(ctx context.Context) error
	}

Returning nil stops the service for good, returning an error restarts it, and
a canceled context must make Serve return promptly.

# Debugging Shutdown Issues

UnstoppedServiceReport lists services that missed the shutdown timeout,
usually a goroutine that ignores its context.

# See Also

  - github.com/thejerf/suture/v4
  - internal/supervisor/services: service wrappers
  - internal/logging: slog adapter used for supervisor events
*/
package supervisor
