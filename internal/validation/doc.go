// SeedShroud - Biome Obfuscation Against Seed Cracking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/seedshroud

/*
Package validation provides struct validation using go-playground/validator v10.

It wraps a thread-safe singleton validator and converts field errors into
readable messages. The config package validates every loaded Config through
ValidateStruct, so invalid files or environment overrides are reported with
the field that failed and why.

Example usage:

	type ReaperConfig struct {
	    Interval time.Duration `koanf:"interval" validate:"gte=1s"`
	}

	if err := validation.ValidateStruct(&cfg); err != nil {
	    return fmt.Errorf("invalid configuration: %w", err)
	}

Error messages:

	Reaper.Interval must be greater than or equal to 1s
	Logging.Level must be one of: trace debug info warn error
	Admin.Port must be at most 65535
*/
package validation
