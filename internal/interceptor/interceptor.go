// SeedShroud - Biome Obfuscation Against Seed Cracking
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/seedshroud

package interceptor

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/tomtom215/seedshroud/internal/activity"
	"github.com/tomtom215/seedshroud/internal/cache"
	"github.com/tomtom215/seedshroud/internal/config"
	"github.com/tomtom215/seedshroud/internal/detection"
	"github.com/tomtom215/seedshroud/internal/logging"
	"github.com/tomtom215/seedshroud/internal/metrics"
	"github.com/tomtom215/seedshroud/internal/obfuscation"
)

// ConfigSource supplies the live obfuscation settings. *config.Store
// satisfies it.
type ConfigSource interface {
	Obfuscation() config.ObfuscationConfig
}

// Result describes what the interceptor did with one packet.
type Result struct {
	Outcome   string // one of the metrics.Outcome* labels
	Verdict   detection.Verdict
	Rewritten int // candidate words rewritten
	Err       error
}

// Interceptor decides per outbound chunk packet whether to obfuscate it.
// It is safe for concurrent use by every connection goroutine.
type Interceptor struct {
	tracker  *activity.Tracker
	cache    *cache.BiomeCache
	settings ConfigSource
	breaker  *transformBreaker
	rng      obfuscation.Rand
	clock    func() time.Time
	log      zerolog.Logger
}

// Option configures an Interceptor.
type Option func(*Interceptor)

// WithClock replaces time.Now.
func WithClock(clock func() time.Time) Option {
	return func(i *Interceptor) {
		i.clock = clock
	}
}

// WithRand replaces the random source used by the transform. The source must
// be safe for concurrent use if the interceptor is.
func WithRand(rng obfuscation.Rand) Option {
	return func(i *Interceptor) {
		i.rng = rng
	}
}

// WithBreaker guards the transform with a circuit breaker. Without it every
// suspicious packet attempts the transform.
func WithBreaker(cfg config.BreakerConfig) Option {
	return func(i *Interceptor) {
		if cfg.Enabled {
			i.breaker = newTransformBreaker(cfg)
		}
	}
}

// WithLogger replaces the component logger.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func WithLogger(l zerolog.Logger) Option {
	return func(i *Interceptor) {
		i.log = l
	}
}

// New creates an Interceptor over the shared tracker and cache.
func New(tracker *activity.Tracker, biomes *cache.BiomeCache, settings ConfigSource, opts ...Option) *Interceptor {
	i := &Interceptor{
		tracker:  tracker,
		cache:    biomes,
		settings: settings,
		rng:      obfuscation.DefaultRand(),
		clock:    time.Now,
		log:      logging.WithComponent("interceptor"),
	}
	for _, opt := range opts {
		opt(i)
	}
	return i
}

// OnPacketSending inspects an outbound packet and, when the player looks like
// an automated prober, obfuscates its first payload buffer in place. The
// packet is always left deliverable; faults are logged and swallowed.
func (i *Interceptor) OnPacketSending(p *Packet) Result {
	if p == nil || !p.Kind.Monitored() {
		kind := KindOther
		if p != nil {
			kind = p.Kind
		}
		metrics.RecordPacket(kind.String(), metrics.OutcomeIgnored)
		return Result{Outcome: metrics.OutcomeIgnored}
	}

	kind := p.Kind.String()
	settings := i.settings.Obfuscation()
	if !settings.Enabled {
		metrics.RecordPacket(kind, metrics.OutcomeDisabled)
		return Result{Outcome: metrics.OutcomeDisabled}
	}
	if p.PlayerID == uuid.Nil {
		metrics.RecordPacket(kind, metrics.OutcomeUnidentified)
		return Result{Outcome: metrics.OutcomeUnidentified}
	}

	now := i.clock()
	rec := i.tracker.GetOrCreate(p.PlayerID, now)

	// Classification sees the state before this request.
	snap := rec.Snapshot(now)
	defer rec.RecordRequest(now)

	verdict := detection.Classify(snap, now, thresholds(settings))
	if !verdict.Suspicious {
		metrics.RecordPacket(kind, metrics.OutcomeClean)
		return Result{Outcome: metrics.OutcomeClean, Verdict: verdict}
	}

	metrics.RecordSuspicious(string(verdict.Reason))
	if verdict.Reason == detection.ReasonRapidRequests {
		i.log.Info().
			Str("player", p.PlayerName).
			Str("player_id", p.PlayerID.String()).
			Int("recent_requests", snap.RecentRequests).
			Msg("Rapid chunk requests detected, possible seed cracking attempt")
	}

	res := Result{Verdict: verdict}
	res.Rewritten, res.Err = i.obfuscate(p)
	res.Outcome = i.report(p, settings, res)
	metrics.RecordPacket(kind, res.Outcome)
	return res
}

// OnPlayerRespawn records a respawn, creating the player's record if needed.
// Respawns are tracked even while obfuscation is disabled so enabling it
// mid-session sees accurate state.
func (i *Interceptor) OnPlayerRespawn(playerID uuid.UUID) {
	if playerID == uuid.Nil {
		return
	}
	now := i.clock()
	i.tracker.GetOrCreate(playerID, now).RecordRespawn(now)
	metrics.RecordRespawn()
	i.log.Debug().Str("player_id", playerID.String()).Msg("Player respawn recorded")
}

// BreakerState returns the transform breaker state, or "disabled".
func (i *Interceptor) BreakerState() string {
	if i.breaker == nil {
		return "disabled"
	}
	return i.breaker.State()
}

// obfuscate runs the transform, through the breaker when configured.
func (i *Interceptor) obfuscate(p *Packet) (int, error) {
	if i.breaker == nil {
		return i.transform(p)
	}
	return i.breaker.execute(func() (int, error) {
		return i.transform(p)
	})
}

// transform applies the chunk's permutation to the first payload buffer.
// The payload changes only if the whole transform succeeds. Panics are
// recovered into a TransformError.
func (i *Interceptor) transform(p *Packet) (n int, err error) {
	defer func() {
		if r := recover(); r != nil {
			n, err = 0, &TransformError{Panic: r}
		}
	}()

	buf, err := p.payload()
	if err != nil {
		return 0, err
	}

	perm := i.cache.GetOrGenerate(cache.ChunkKey{World: p.World, X: p.ChunkX, Z: p.ChunkZ})

	scratch := getScratch(len(buf))
	defer putScratch(scratch)
	work := (*scratch)[:len(buf)]
	copy(work, buf)

	start := time.Now()
	n, err = obfuscation.Apply(work, perm[:], i.rng)
	if err != nil {
		return 0, &TransformError{Err: err}
	}
	copy(buf, work)
	metrics.RecordTransform(n, time.Since(start))
	return n, nil
}

// scratchPool holds staging buffers so a transform that fails part way never
// leaves a partly rewritten payload.
var scratchPool = sync.Pool{
	New: func() any {
		b := make([]byte, 0, 16<<10)
		return &b
	},
}

func getScratch(size int) *[]byte {
	b, _ := scratchPool.Get().(*[]byte)
	if b == nil || cap(*b) < size {
		nb := make([]byte, size)
		return &nb
	}
	return b
}

func putScratch(b *[]byte) {
	if cap(*b) > 1<<20 {
		return
	}
	*b = (*b)[:0]
	scratchPool.Put(b)
}

// report logs the transform result and maps it to an outcome label.
func (i *Interceptor) report(p *Packet, settings config.ObfuscationConfig, res Result) string {
	switch {
	case res.Err == nil:
		if settings.LogObfuscatedChunks {
			i.log.Info().
				Str("world", p.World).
				Int32("chunk_x", p.ChunkX).
				Int32("chunk_z", p.ChunkZ).
				Str("player", p.PlayerName).
				Str("reason", string(res.Verdict.Reason)).
				Int("rewritten", res.Rewritten).
				Msg("Obfuscated chunk")
		}
		return metrics.OutcomeObfuscated

	case errors.Is(res.Err, obfuscation.ErrPayloadAccess):
		metrics.RecordTransformError("payload_access")
		i.log.Debug().Err(res.Err).
			Int32("chunk_x", p.ChunkX).
			Int32("chunk_z", p.ChunkZ).
			Msg("Skipping chunk, payload unavailable")
		return metrics.OutcomeUnavailable

	case isRejected(res.Err):
		return metrics.OutcomeRejected

	default:
		metrics.RecordTransformError("transform")
		i.log.Warn().Err(res.Err).
			Str("world", p.World).
			Int32("chunk_x", p.ChunkX).
			Int32("chunk_z", p.ChunkZ).
			Str("player", p.PlayerName).
			Msg("Failed to obfuscate chunk, sending unmodified")
		return metrics.OutcomeFailed
	}
}

func thresholds(settings config.ObfuscationConfig) detection.Thresholds {
	return detection.Thresholds{
		LoginProtection:   settings.LoginProtection(),
		RespawnProtection: settings.RespawnProtection(),
	}
}
