package chunkgen

import (
	"fmt"

	"github.com/przecze/rooms-of-roaming/pkg/chunkgrid"
)

// Side identifies one of the four edges of a chunk.
type Side int

const (
	North Side = iota
	East
	South
	West
)

// String returns the side's name.
func (s Side) String() string {
	switch s {
	case North:
		return "N"
	case East:
		return "E"
	case South:
		return "S"
	case West:
		return "W"
	default:
		return fmt.Sprintf("Unknown(%d)", s)
	}
}

// EdgeKey is the canonical, unordered identifier of an edge shared by
// two adjacent chunks (spec §3). Both chunks incident to an edge
// compute the identical EdgeKey, independent of which one is asking.
type EdgeKey struct {
	// Axis is 'H' for a horizontal edge (shared north/south boundary)
	// or 'V' for a vertical edge (shared east/west boundary).
	Axis byte
	X, Y int
}

// edgeKeyFor returns the canonical EdgeKey for one side of chunk
// (cx, cy), per spec §3/§4.2 step 1.
func edgeKeyFor(side Side, cx, cy int) EdgeKey {
	switch side {
	case North:
		return EdgeKey{Axis: 'H', X: cx, Y: cy}
	case South:
		return EdgeKey{Axis: 'H', X: cx, Y: cy + 1}
	case West:
		return EdgeKey{Axis: 'V', X: cx, Y: cy}
	case East:
		return EdgeKey{Axis: 'V', X: cx + 1, Y: cy}
	default:
		panic(fmt.Sprintf("chunkgen: unknown side %v", side))
	}
}

// Profile is the Boundary Oracle's output for one side of one chunk:
// the sorted positions of corridor openings along that edge.
type Profile struct {
	Openings []int // sorted, each in [2, S-3]
	Length   int   // S
}

// Count returns the number of openings in the profile.
func (p Profile) Count() int { return len(p.Openings) }

// TabletPos is a tablet's local coordinate within a chunk.
type TabletPos struct {
	X, Y int
}

// ChunkTimings records the wall-clock duration of each generation phase
// in milliseconds, matching spec §3/§6.1's debug_timings shape.
type ChunkTimings struct {
	SetupMS              int64
	InitMS               int64
	BoundaryCorridorsMS  int64
	RoomGenerationMS     int64
	RoomFloorsMS         int64
	RoomHallwaysMS       int64
	BoundaryConnectionsMS int64
	TotalMS              int64
	// TotalWithOverheadMS is not set by Generate or by the Facade and
	// stays zero; the Facade reports its cache-inclusive elapsed time as
	// GetChunk's second return value instead.
	TotalWithOverheadMS int64
}

// Wavelengths are the smooth scalar fields biasing a chunk's local
// style (spec §4.3 step "setup").
type Wavelengths struct {
	Alpha            float64
	Beta             float64
	SpatialVariation float64
	Descriptions     []string
}

// Chunk is a fully generated, immutable CHUNK_SIZE x CHUNK_SIZE grid
// fragment of the world, addressed by integer (cx, cy).
type Chunk struct {
	CX, CY      int
	Grid        *chunkgrid.Grid
	Tablets     []TabletPos
	Wavelengths Wavelengths
	Timings     ChunkTimings
}

// Rows returns the wire-format representation: S strings of length S,
// top row first (spec §6.1).
func (c *Chunk) Rows() []string {
	return c.Grid.Rows()
}
