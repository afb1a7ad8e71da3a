// SeedShroud - Biome Obfuscation Against Seed Cracking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/seedshroud

package detection

import (
	"time"

	"github.com/tomtom215/seedshroud/internal/activity"
)

// RapidRequestThreshold is the window size above which a player is treated as
// rapidly probing. The comparison is strict: 21 requests trip it, 20 do not.
const RapidRequestThreshold = 20

const (
	// DefaultLoginProtection is how long after joining every chunk is obfuscated.
	DefaultLoginProtection = 10000 * time.Millisecond

	// DefaultRespawnProtection is how long after a respawn every chunk is obfuscated.
	DefaultRespawnProtection = 5000 * time.Millisecond
)

// Reason identifies which rule flagged a request.
type Reason string

const (
	// ReasonNone means the request was not flagged.
	ReasonNone Reason = ""

	// ReasonRapidRequests flags players requesting chunks faster than normal play.
	ReasonRapidRequests Reason = "rapid_requests"

	// ReasonLoginProtection flags requests inside the post-join window.
	ReasonLoginProtection Reason = "login_protection"

	// ReasonRespawnProtection flags requests inside the post-respawn window.
	ReasonRespawnProtection Reason = "respawn_protection"
)

// Reasons lists every flagging reason in evaluation order.
var Reasons = []Reason{ReasonRapidRequests, ReasonLoginProtection, ReasonRespawnProtection}

// Thresholds holds the configurable protection windows.
type Thresholds struct {
	LoginProtection   time.Duration
	RespawnProtection time.Duration
}

// DefaultThresholds returns the stock protection windows.
func DefaultThresholds() Thresholds {
	return Thresholds{
		LoginProtection:   DefaultLoginProtection,
		RespawnProtection: DefaultRespawnProtection,
	}
}

// Verdict is the outcome of classifying a single request.
type Verdict struct {
	Suspicious bool
	Reason     Reason
}

// IsRapidRequesting reports whether the snapshot's window holds more than
// RapidRequestThreshold requests.
func IsRapidRequesting(snap activity.Snapshot) bool {
	return snap.RecentRequests > RapidRequestThreshold
}

// Classify evaluates the rules in order against the state of a player as it
// stood before the request being classified.
func Classify(snap activity.Snapshot, now time.Time, th Thresholds) Verdict {
	if IsRapidRequesting(snap) {
		return Verdict{Suspicious: true, Reason: ReasonRapidRequests}
	}

	if now.Sub(snap.JoinTime) < th.LoginProtection {
		return Verdict{Suspicious: true, Reason: ReasonLoginProtection}
	}

	if snap.HasRespawned() && now.Sub(snap.LastRespawn) < th.RespawnProtection {
		return Verdict{Suspicious: true, Reason: ReasonRespawnProtection}
	}

	return Verdict{}
}

// IsSuspicious is Classify reduced to its boolean outcome.
func IsSuspicious(snap activity.Snapshot, now time.Time, th Thresholds) bool {
	return Classify(snap, now, th).Suspicious
}
