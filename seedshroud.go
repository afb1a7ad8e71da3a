// SeedShroud - Biome Obfuscation Against Seed Cracking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/seedshroud

// Package seedshroud is the embedding surface of the biome obfuscation engine.
//
// A host server builds one Engine at startup, calls OnPacketSending for every
// outbound chunk packet and OnPlayerRespawn for every respawn event, and runs
// Serve in the background for housekeeping and the optional admin API.
//
//	engine, err := seedshroud.New(cfg)
//	if err != nil {
//	    return err
//	}
//	go engine.Serve(ctx)
//
//	// on every outbound packet, from any goroutine
//	engine.OnPacketSending(&seedshroud.Packet{
//	    Kind:     seedshroud.KindLevelChunkWithLight,
//	    Payloads: [][]byte{biomeData},
//	    ChunkX:   x, ChunkZ: z,
//	    PlayerID: id, World: "overworld",
//	})
package seedshroud

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/tomtom215/seedshroud/internal/activity"
	"github.com/tomtom215/seedshroud/internal/api"
	"github.com/tomtom215/seedshroud/internal/cache"
	"github.com/tomtom215/seedshroud/internal/config"
	"github.com/tomtom215/seedshroud/internal/detection"
	"github.com/tomtom215/seedshroud/internal/interceptor"
	"github.com/tomtom215/seedshroud/internal/logging"
	"github.com/tomtom215/seedshroud/internal/obfuscation"
	"github.com/tomtom215/seedshroud/internal/reaper"
	"github.com/tomtom215/seedshroud/internal/supervisor"
	"github.com/tomtom215/seedshroud/internal/supervisor/services"
)

// Packet is an outbound packet handed to the engine by the host.
type Packet = interceptor.Packet

// PacketKind identifies the protocol packet type.
type PacketKind = interceptor.PacketKind

// Result describes what the engine did with one packet.
type Result = interceptor.Result

// Stats is the engine-wide state snapshot.
type Stats = api.Stats

// PlayerStatus is one player's activity and current verdict.
type PlayerStatus = api.PlayerStatus

// Packet kinds.
const (
	KindOther               = interceptor.KindOther
	KindMapChunk            = interceptor.KindMapChunk
	KindLevelChunkWithLight = interceptor.KindLevelChunkWithLight
)

// Engine owns the shared per-player and per-chunk state and the components
// operating on it.
type Engine struct {
	cfg         *config.Config
	store       *config.Store
	tracker     *activity.Tracker
	biomes      *cache.BiomeCache
	interceptor *interceptor.Interceptor
	respawns    *interceptor.RespawnListener
	reaper      *reaper.Reaper
	admin       http.Handler
	configPath  string
	treeConfig  supervisor.TreeConfig
	clock       func() time.Time
}

type options struct {
	clock      func() time.Time
	rng        obfuscation.Rand
	shuffler   cache.Shuffler
	configPath string
	treeConfig supervisor.TreeConfig
}

// Option configures an Engine.
type Option func(*options)

// WithClock replaces time.Now for every component.
func WithClock(clock func() time.Time) Option {
	return func(o *options) {
		o.clock = clock
	}
}

// WithRand replaces the transform's random source.
func WithRand(rng obfuscation.Rand) Option {
	return func(o *options) {
		o.rng = rng
	}
}

// WithShuffler replaces the source used to generate chunk permutations.
func WithShuffler(s cache.Shuffler) Option {
	return func(o *options) {
		o.shuffler = s
	}
}

// WithConfigPath enables hot reload of the biome_obfuscation section from
// path while Serve runs.
func WithConfigPath(path string) Option {
	return func(o *options) {
		o.configPath = path
	}
}

// WithTreeConfig overrides the supervisor restart policy.
func WithTreeConfig(tc supervisor.TreeConfig) Option {
	return func(o *options) {
		o.treeConfig = tc
	}
}

// New builds an Engine from a validated configuration.
func New(cfg *config.Config, opts ...Option) (*Engine, error) {
	if cfg == nil {
		return nil, errors.New("seedshroud: nil config")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	o := options{
		clock:      time.Now,
		treeConfig: supervisor.DefaultTreeConfig(),
	}
	for _, opt := range opts {
		opt(&o)
	}

	store := config.NewStore(cfg.Obfuscation)
	tracker := activity.NewTracker()
	biomes := cache.NewBiomeCache(cache.WithShuffler(o.shuffler))

	icOpts := []interceptor.Option{
		interceptor.WithClock(o.clock),
		interceptor.WithBreaker(cfg.Breaker),
	}
	if o.rng != nil {
		icOpts = append(icOpts, interceptor.WithRand(o.rng))
	}
	ic := interceptor.New(tracker, biomes, store, icOpts...)

	e := &Engine{
		cfg:         cfg,
		store:       store,
		tracker:     tracker,
		biomes:      biomes,
		interceptor: ic,
		respawns:    interceptor.NewRespawnListener(ic),
		reaper: reaper.New(tracker, biomes,
			reaper.WithInterval(cfg.Reaper.Interval),
			reaper.WithClock(o.clock)),
		configPath: o.configPath,
		treeConfig: o.treeConfig,
		clock:      o.clock,
	}
	e.admin = api.NewRouter(e, cfg.Admin)

	return e, nil
}

// OnPacketSending inspects one outbound packet and obfuscates its biome
// payload in place when the receiving player looks like a seed cracker.
// Safe for concurrent use.
func (e *Engine) OnPacketSending(p *Packet) Result {
	return e.interceptor.OnPacketSending(p)
}

// OnPlayerRespawn records a respawn for playerID.
func (e *Engine) OnPlayerRespawn(playerID uuid.UUID) {
	e.respawns.OnRespawn(playerID)
}

// Settings returns the obfuscation settings currently in effect.
func (e *Engine) Settings() config.ObfuscationConfig {
	return e.store.Obfuscation()
}

// UpdateSettings replaces the obfuscation settings. Packets already being
// processed finish with the settings they started with.
func (e *Engine) UpdateSettings(s config.ObfuscationConfig) {
	e.store.Update(s)
}

// Stats returns engine-wide counters.
func (e *Engine) Stats() Stats {
	s := e.store.Obfuscation()
	return Stats{
		Enabled:             s.Enabled,
		LoginProtectionMs:   s.LoginProtectionDuration,
		RespawnProtectionMs: s.RespawnProtectionDuration,
		TrackedPlayers:      e.tracker.Len(),
		BiomeCacheEntries:   e.biomes.Len(),
		BiomeCacheResets:    e.biomes.Resets(),
		BreakerState:        e.interceptor.BreakerState(),
	}
}

// Player returns the activity of playerID and the verdict a chunk packet
// sent now would receive. It does not create a record.
func (e *Engine) Player(playerID uuid.UUID) (PlayerStatus, bool) {
	rec, ok := e.tracker.Get(playerID)
	if !ok {
		return PlayerStatus{}, false
	}

	now := e.clock()
	snap := rec.Snapshot(now)
	s := e.store.Obfuscation()
	verdict := detection.Classify(snap, now, detection.Thresholds{
		LoginProtection:   s.LoginProtection(),
		RespawnProtection: s.RespawnProtection(),
	})

	status := PlayerStatus{
		PlayerID:       snap.PlayerID,
		JoinTime:       snap.JoinTime,
		RecentRequests: snap.RecentRequests,
		Suspicious:     verdict.Suspicious,
		Reason:         string(verdict.Reason),
	}
	if !snap.LastRequest.IsZero() {
		t := snap.LastRequest
		status.LastRequest = &t
	}
	if snap.HasRespawned() {
		t := snap.LastRespawn
		status.LastRespawn = &t
	}
	return status, true
}

// AdminHandler returns the admin API handler, for hosts that mount it on
// their own server instead of letting Serve listen.
func (e *Engine) AdminHandler() http.Handler {
	return e.admin
}

// Serve runs the reaper, the config watcher and the admin server under a
// supervisor tree until ctx is canceled.
func (e *Engine) Serve(ctx context.Context) error {
	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), e.treeConfig)
	if err != nil {
		return fmt.Errorf("failed to create supervisor tree: %w", err)
	}

	tree.AddHousekeepingService(services.NewReaperService(e.reaper))

	if e.configPath != "" {
		tree.AddHousekeepingService(services.NewConfigWatcherService(e.configPath, e.store))
	}

	if e.cfg.Admin.Enabled {
		server := api.NewServer(e.admin, e.cfg.Admin)
		tree.AddAdminService(services.NewHTTPServerService(server, e.cfg.Admin.ShutdownTimeout))
		logging.Info().Str("addr", server.Addr).Msg("Admin API enabled")
	}

	logging.Info().
		Bool("enabled", e.store.Obfuscation().Enabled).
		Dur("reaper_interval", e.reaper.Interval()).
		Msg("Starting supervisor tree")

	err = tree.Serve(ctx)

	unstopped, _ := tree.UnstoppedServiceReport()
	for _, svc := range unstopped {
		logging.Warn().Str("service", svc.Name).Msg("Service failed to stop within timeout")
	}

	return err
}
