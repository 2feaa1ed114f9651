package chunkgen

import (
	"github.com/przecze/rooms-of-roaming/pkg/chunkgrid"
	"github.com/przecze/rooms-of-roaming/pkg/wrng"
)

// carveHallways builds the internal connectivity graph: an L-shaped
// corridor between every consecutive pair of rooms (ordered by center,
// spec §4.3 step "room_hallways"), plus m extra edges scaled by beta
// for cycles.
func carveHallways(grid *chunkgrid.Grid, rooms []room, wave Wavelengths, rng *wrng.RNG) {
	if len(rooms) < 2 {
		return
	}

	for i := 0; i < len(rooms)-1; i++ {
		connectRooms(grid, rooms[i], rooms[i+1], rng)
	}

	extra := int(wave.Beta * float64(len(rooms)))
	for e := 0; e < extra; e++ {
		i := rng.Intn(len(rooms))
		j := rng.Intn(len(rooms))
		if i == j {
			continue
		}
		connectRooms(grid, rooms[i], rooms[j], rng)
	}
}

// connectRooms carves a single L-shaped corridor between two room
// centers, picking the bend order at random.
func connectRooms(grid *chunkgrid.Grid, a, b room, rng *wrng.RNG) {
	ax, ay := a.center()
	bx, by := b.center()
	grid.DrawLShape(ax, ay, bx, by, rng.Bool(), chunkgrid.Floor)
}

// manhattan returns |x1-x2| + |y1-y2|.
func manhattan(x1, y1, x2, y2 int) int {
	dx := x1 - x2
	if dx < 0 {
		dx = -dx
	}
	dy := y1 - y2
	if dy < 0 {
		dy = -dy
	}
	return dx + dy
}

// connectBoundaries carves a path from every stub tip to the nearest
// room center, by Manhattan distance (spec §4.3 step
// "boundary_connections"). This is what guarantees I3 and I5: every
// opening reaches the internal room graph, which is itself connected
// by carveHallways, so every opening is reachable from every other.
func connectBoundaries(grid *chunkgrid.Grid, stubs []stub, rooms []room, rng *wrng.RNG) {
	for _, s := range stubs {
		nearest := nearestRoomIndex(s.tipX, s.tipY, rooms)
		if nearest < 0 {
			continue
		}
		cx, cy := rooms[nearest].center()
		grid.DrawLShape(s.tipX, s.tipY, cx, cy, rng.Bool(), chunkgrid.Floor)
	}
}

func nearestRoomIndex(x, y int, rooms []room) int {
	best := -1
	bestDist := 0
	for i, r := range rooms {
		cx, cy := r.center()
		d := manhattan(x, y, cx, cy)
		if best == -1 || d < bestDist {
			best = i
			bestDist = d
		}
	}
	return best
}
