// SeedShroud - Biome Obfuscation Against Seed Cracking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/seedshroud

package config

import (
	"fmt"
	"strings"

	"github.com/tomtom215/seedshroud/internal/validation"
)

// Validate normalizes free-form fields and checks field constraints.
func (c *Config) Validate() error {
	c.normalizeLogging()

	if err := validation.ValidateStruct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// normalizeLogging makes "WARN", "warn" and "warning" equivalent.
func (c *Config) normalizeLogging() {
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "warning" {
		c.Logging.Level = "warn"
	}
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
}
