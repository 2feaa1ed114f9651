package chunkgen

import (
	"github.com/przecze/rooms-of-roaming/pkg/worldcfg"
	"github.com/przecze/rooms-of-roaming/pkg/wrng"
)

// EdgeProfile implements the Boundary Oracle (spec §4.2): given a side
// of chunk (cx, cy), it returns the deterministic opening profile
// shared with the neighbor across that edge. Both chunks incident to
// an edge compute the same canonical EdgeKey and therefore see the
// same Profile (the determinism guarantee underpinning I2/I3).
func EdgeProfile(cfg *worldcfg.Config, worldSeed uint64, side Side, cx, cy int) Profile {
	key := edgeKeyFor(side, cx, cy)

	countRNG := wrng.New(worldSeed, "edge:count", int64(key.Axis), int64(key.X), int64(key.Y))
	count := countRNG.IntRange(cfg.OpeningsMin, cfg.OpeningsMax)

	posRNG := wrng.New(worldSeed, "edge:positions", int64(key.Axis), int64(key.X), int64(key.Y))
	lo, hi := 2, cfg.ChunkSize-3
	const minGap = 2
	const maxAttempts = 200
	openings := posRNG.DistinctPositions(lo, hi, count, minGap, maxAttempts)

	return Profile{
		Openings: openings,
		Length:   cfg.ChunkSize,
	}
}
