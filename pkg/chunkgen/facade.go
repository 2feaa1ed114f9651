package chunkgen

import (
	"log"
	"time"

	"github.com/przecze/rooms-of-roaming/pkg/chunkcache"
	"github.com/przecze/rooms-of-roaming/pkg/worldcfg"
)

// Facade is the single entry point a caller uses to fetch chunks: it
// owns one World's configuration and seed, and memoizes generated
// chunks behind a concurrent, capacity-bounded cache (spec §4.5).
//
// A Facade is safe for concurrent use by multiple goroutines.
type Facade struct {
	cfg       *worldcfg.Config
	worldSeed uint64
	cache     *chunkcache.Cache[cacheKey, *Chunk]
}

// cacheKey identifies one cached chunk. ConfigHash is folded in so a
// Facade rebuilt against a changed Config never serves a stale chunk
// generated under different room/opening/tablet parameters (spec §8
// Open Question: "do cached chunks survive a config change?" — no,
// they version off the hash instead).
type cacheKey struct {
	CX, CY     int
	ConfigHash uint64
}

// NewFacade constructs a Facade over cfg and worldSeed. cfg is not
// revalidated here; GetChunk surfaces ErrConfigurationInvalid lazily
// on first use, matching GenerateAt's contract.
func NewFacade(cfg *worldcfg.Config, worldSeed uint64) *Facade {
	return &Facade{
		cfg:       cfg,
		worldSeed: worldSeed,
		cache:     chunkcache.New[cacheKey, *Chunk](cfg.CacheCapacity),
	}
}

// GetChunk returns the chunk at (cx, cy), generating it on a cache
// miss. Concurrent requests for the same (cx, cy) coalesce into a
// single generation (spec §4.4/I7 — iteration order is unaffected by
// which caller actually triggers the build).
//
// The returned Chunk is shared across every caller that hits this
// cache entry and must be treated as read-only (spec §4.3 "Chunk is
// immutable once returned"); GetChunk never mutates a cached Chunk in
// place, so overhead timing is reported out of band via elapsed.
func (f *Facade) GetChunk(cx, cy int) (chunk *Chunk, elapsed time.Duration, err error) {
	overallStart := time.Now()

	key := cacheKey{CX: cx, CY: cy, ConfigHash: f.cfg.Hash()}
	chunk, err = f.cache.Get(key, func() (*Chunk, error) {
		log.Printf("chunkgen: cache miss for (%d, %d), generating", cx, cy)
		c, genErr := GenerateAt(f.cfg, f.worldSeed, cx, cy)
		if genErr != nil {
			log.Printf("chunkgen: generation failed for (%d, %d): %v", cx, cy, genErr)
		}
		return c, genErr
	})
	if err != nil {
		return nil, 0, err
	}
	return chunk, time.Since(overallStart), nil
}

// Config returns the Facade's configuration.
func (f *Facade) Config() *worldcfg.Config { return f.cfg }

// WorldSeed returns the Facade's world seed.
func (f *Facade) WorldSeed() uint64 { return f.worldSeed }

// CachedChunkCount returns the number of chunks currently memoized,
// mainly useful for tests and debug tooling.
func (f *Facade) CachedChunkCount() int { return f.cache.Len() }
