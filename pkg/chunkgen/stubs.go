package chunkgen

import (
	"github.com/przecze/rooms-of-roaming/pkg/chunkgrid"
	"github.com/przecze/rooms-of-roaming/pkg/wrng"
)

// stubMaxLength is K in spec §4.3 step "boundary_corridors": stubs
// extend inward by a length drawn from [2, K].
const stubMaxLength = 6

// stub is a short, one-cell-wide corridor carved straight inward from
// a boundary opening. Its tip is the fixed anchor every later carving
// phase must eventually connect to (I3).
type stub struct {
	side         Side
	openingPos   int
	openX, openY int
	tipX, tipY   int
}

// stampBoundaries sets Floor at every opening position on every side
// (spec §4.3 step "init"). Every other frame cell is left Wall (I4).
func stampBoundaries(grid *chunkgrid.Grid, profiles [4]Profile) {
	size := grid.Size
	for side := North; side <= West; side++ {
		for _, p := range profiles[side].Openings {
			x, y := openingCell(side, p, size)
			grid.Set(x, y, chunkgrid.Floor)
		}
	}
}

// openingCell maps a profile position (along the edge) to the frame
// cell it names, for a given side of a size×size chunk.
func openingCell(side Side, pos, size int) (x, y int) {
	switch side {
	case North:
		return pos, 0
	case South:
		return pos, size - 1
	case West:
		return 0, pos
	case East:
		return size - 1, pos
	default:
		panic("chunkgen: unknown side")
	}
}

// carveBoundaryCorridors carves one inward stub per opening on every
// side (spec §4.3 step "boundary_corridors") and returns the stubs so
// later phases can connect to their tips.
func carveBoundaryCorridors(grid *chunkgrid.Grid, profiles [4]Profile, rng *wrng.RNG) []stub {
	size := grid.Size
	var stubs []stub

	for side := North; side <= West; side++ {
		for _, p := range profiles[side].Openings {
			ox, oy := openingCell(side, p, size)
			length := rng.IntRange(2, stubMaxLength)

			var tipX, tipY int
			switch side {
			case North:
				tipX, tipY = ox, oy+length
			case South:
				tipX, tipY = ox, oy-length
			case West:
				tipX, tipY = ox+length, oy
			case East:
				tipX, tipY = ox-length, oy
			}
			grid.DrawLine(ox, oy, tipX, tipY, chunkgrid.Floor)

			stubs = append(stubs, stub{
				side:       side,
				openingPos: p,
				openX:      ox, openY: oy,
				tipX: tipX, tipY: tipY,
			})
		}
	}
	return stubs
}
