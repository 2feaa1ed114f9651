package chunkgen

import (
	"fmt"
	"time"

	"github.com/przecze/rooms-of-roaming/pkg/chunkgrid"
	"github.com/przecze/rooms-of-roaming/pkg/worldcfg"
	"github.com/przecze/rooms-of-roaming/pkg/wrng"
)

// Generate runs the nine-phase pipeline of spec §4.3: it carves a full
// S×S chunk consistent with the four supplied boundary profiles, places
// tablets, and returns a Chunk with per-phase debug timings. Generate
// cannot fail on valid Config (cfg must already be Config.Validate()'d
// by the caller); any internal budget exhaustion degrades gracefully
// rather than aborting, except for the internal-consistency self-check,
// which returns ErrInternalConsistencyViolation on a correctness bug.
func Generate(cfg *worldcfg.Config, worldSeed uint64, cx, cy int, profiles [4]Profile) (*Chunk, error) {
	overallStart := time.Now()
	var timings ChunkTimings

	// Phase: setup
	phaseStart := time.Now()
	wave := computeWavelengths(worldSeed, cx, cy)
	chunkRNG := wrng.New(worldSeed, "chunk:rooms", int64(cx), int64(cy))
	hallwayRNG := wrng.New(worldSeed, "chunk:hallways", int64(cx), int64(cy))
	stubRNG := wrng.New(worldSeed, "chunk:stubs", int64(cx), int64(cy))
	tabletRNG := wrng.New(worldSeed, "chunk:tablets", int64(cx), int64(cy))
	timings.SetupMS = elapsedMS(phaseStart)

	// Phase: init
	phaseStart = time.Now()
	grid := chunkgrid.NewGrid(cfg.ChunkSize)
	stampBoundaries(grid, profiles)
	timings.InitMS = elapsedMS(phaseStart)

	// Phase: boundary_corridors
	phaseStart = time.Now()
	stubs := carveBoundaryCorridors(grid, profiles, stubRNG)
	timings.BoundaryCorridorsMS = elapsedMS(phaseStart)

	// Phase: room_generation
	phaseStart = time.Now()
	rooms := generateRooms(cfg, chunkRNG, wave, stubs)
	timings.RoomGenerationMS = elapsedMS(phaseStart)

	// Phase: room_floors
	phaseStart = time.Now()
	carveRooms(grid, rooms)
	timings.RoomFloorsMS = elapsedMS(phaseStart)

	// Phase: room_hallways
	phaseStart = time.Now()
	carveHallways(grid, rooms, wave, hallwayRNG)
	timings.RoomHallwaysMS = elapsedMS(phaseStart)

	// Phase: boundary_connections
	phaseStart = time.Now()
	connectBoundaries(grid, stubs, rooms, hallwayRNG)
	timings.BoundaryConnectionsMS = elapsedMS(phaseStart)

	// Phase: tablets
	tablets := placeTablets(grid, rooms, cfg, wave, tabletRNG)

	timings.TotalMS = elapsedMS(overallStart)

	chunk := &Chunk{
		CX: cx, CY: cy,
		Grid:        grid,
		Tablets:     tablets,
		Wavelengths: wave,
		Timings:     timings,
	}

	// Phase: finalize — self-check before this chunk is ever handed to
	// the cache for publication (spec §7: a failing chunk must not be
	// cached).
	if err := checkFrameIntegrity(grid, profiles); err != nil {
		return nil, err
	}
	if err := checkReachability(grid, profiles); err != nil {
		return nil, err
	}

	return chunk, nil
}

// GenerateAt is a convenience wrapper that computes all four boundary
// profiles via EdgeProfile before generating the chunk (spec §2 data
// flow). It is what the Facade calls on a cache miss.
func GenerateAt(cfg *worldcfg.Config, worldSeed uint64, cx, cy int) (*Chunk, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigurationInvalid, err)
	}

	var profiles [4]Profile
	profiles[North] = EdgeProfile(cfg, worldSeed, North, cx, cy)
	profiles[East] = EdgeProfile(cfg, worldSeed, East, cx, cy)
	profiles[South] = EdgeProfile(cfg, worldSeed, South, cx, cy)
	profiles[West] = EdgeProfile(cfg, worldSeed, West, cx, cy)

	return Generate(cfg, worldSeed, cx, cy, profiles)
}

func elapsedMS(start time.Time) int64 {
	return time.Since(start).Milliseconds()
}
