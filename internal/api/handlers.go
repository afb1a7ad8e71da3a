// SeedShroud - Biome Obfuscation Against Seed Cracking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/seedshroud

package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// Stats is the engine-wide state reported by /api/v1/stats.
type Stats struct {
	Enabled             bool   `json:"enabled"`
	LoginProtectionMs   int64  `json:"login_protection_ms"`
	RespawnProtectionMs int64  `json:"respawn_protection_ms"`
	TrackedPlayers      int    `json:"tracked_players"`
	BiomeCacheEntries   int    `json:"biome_cache_entries"`
	BiomeCacheResets    int64  `json:"biome_cache_resets"`
	BreakerState        string `json:"breaker_state"`
}

// PlayerStatus is one player's activity and the verdict a chunk packet sent
// now would receive.
type PlayerStatus struct {
	PlayerID       uuid.UUID  `json:"player_id"`
	JoinTime       time.Time  `json:"join_time"`
	LastRequest    *time.Time `json:"last_request,omitempty"`
	LastRespawn    *time.Time `json:"last_respawn,omitempty"`
	RecentRequests int        `json:"recent_requests"`
	Suspicious     bool       `json:"suspicious"`
	Reason         string     `json:"reason,omitempty"`
}

// Backend supplies the state the admin API reports.
type Backend interface {
	Stats() Stats
	Player(id uuid.UUID) (PlayerStatus, bool)
}

// Handler serves the admin endpoints.
type Handler struct {
	backend Backend
}

// NewHandler creates a Handler over backend.
func NewHandler(backend Backend) *Handler {
	return &Handler{backend: backend}
}

// Healthz reports liveness. It does not touch engine state.
func (h *Handler) Healthz(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Stats reports engine-wide state.
func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	writeSuccess(w, r, h.backend.Stats())
}

// Player reports the activity snapshot for the player in the {id} path
// parameter.
func (h *Handler) Player(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, http.StatusBadRequest, ErrCodeBadRequest, "invalid player id: must be a UUID")
		return
	}

	status, ok := h.backend.Player(id)
	if !ok {
		writeError(w, r, http.StatusNotFound, ErrCodeNotFound, "player is not tracked")
		return
	}

	writeSuccess(w, r, status)
}
