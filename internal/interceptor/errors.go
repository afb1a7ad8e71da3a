// SeedShroud - Biome Obfuscation Against Seed Cracking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/seedshroud

package interceptor

import "fmt"

// TransformError is a fault raised while obtaining or applying an
// obfuscation. Recovered panics are carried in Panic.
type TransformError struct {
	Err   error
	Panic any
}

func (e *TransformError) Error() string {
	if e.Panic != nil {
		return fmt.Sprintf("transform panicked: %v", e.Panic)
	}
	return fmt.Sprintf("transform failed: %v", e.Err)
}

func (e *TransformError) Unwrap() error {
	return e.Err
}
