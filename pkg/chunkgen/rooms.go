package chunkgen

import (
	"sort"

	"github.com/przecze/rooms-of-roaming/pkg/chunkgrid"
	"github.com/przecze/rooms-of-roaming/pkg/worldcfg"
	"github.com/przecze/rooms-of-roaming/pkg/wrng"
)

// room is an axis-aligned rectangle in chunk-local coordinates. Rooms
// are kept in a flat slice and referenced by index — there is no need
// for a pointer graph (spec §9 design note).
type room struct {
	X, Y, W, H int
}

func (r room) center() (int, int) {
	return r.X + r.W/2, r.Y + r.H/2
}

// expanded returns the room's rectangle grown by margin cells on every
// side, used to enforce a minimum wall gap between rooms.
func (r room) expanded(margin int) room {
	return room{X: r.X - margin, Y: r.Y - margin, W: r.W + 2*margin, H: r.H + 2*margin}
}

func (r room) overlaps(o room) bool {
	return r.X < o.X+o.W && o.X < r.X+r.W && r.Y < o.Y+o.H && o.Y < r.Y+r.H
}

func (r room) containsPoint(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// generateRooms attempts cfg.PlacementAttempts rectangle placements,
// accepting one that lies entirely in the interior region, keeps at
// least one Wall cell of gap from every previously accepted room, and
// does not overlap any boundary stub (spec §4.3 step "room_generation").
// If none can be placed, it degrades to a single central room large
// enough to connect every stub (the degenerate-spatial-variation edge
// case), which still guarantees reachability (I5).
func generateRooms(cfg *worldcfg.Config, rng *wrng.RNG, wave Wavelengths, stubs []stub) []room {
	interior := interiorBounds(cfg.ChunkSize)

	target := cfg.RoomsMin
	if cfg.RoomsMax > cfg.RoomsMin {
		biased := float64(cfg.RoomsMin) + wave.Alpha*float64(cfg.RoomsMax-cfg.RoomsMin)
		target = int(biased)
		jitter := rng.IntRange(-1, 1)
		target += jitter
	}
	if target < cfg.RoomsMin {
		target = cfg.RoomsMin
	}
	if target > cfg.RoomsMax {
		target = cfg.RoomsMax
	}

	rooms := make([]room, 0, target)
	if target > 0 {
		for attempt := 0; attempt < cfg.PlacementAttempts && len(rooms) < target; attempt++ {
			w := rng.IntRange(cfg.RoomWidthMin, cfg.RoomWidthMax)
			h := rng.IntRange(cfg.RoomHeightMin, cfg.RoomHeightMax)
			if interior.hi-interior.lo+1 < w || interior.hi-interior.lo+1 < h {
				continue
			}
			x := rng.IntRange(interior.lo, interior.hi-w+1)
			y := rng.IntRange(interior.lo, interior.hi-h+1)
			candidate := room{X: x, Y: y, W: w, H: h}

			if !placementOK(candidate, rooms, stubs) {
				continue
			}
			rooms = append(rooms, candidate)
		}
	}

	if len(rooms) == 0 {
		rooms = append(rooms, fallbackCentralRoom(cfg.ChunkSize, stubs))
	}

	sort.Slice(rooms, func(i, j int) bool {
		ci, _ := rooms[i].center()
		cj, _ := rooms[j].center()
		return ci < cj
	})

	return rooms
}

func placementOK(candidate room, existing []room, stubs []stub) bool {
	grown := candidate.expanded(1)
	for _, r := range existing {
		if grown.overlaps(r.expanded(1)) {
			return false
		}
	}
	for _, s := range stubs {
		body := room{
			X: min(s.openX, s.tipX),
			Y: min(s.openY, s.tipY),
			W: max(s.openX, s.tipX) - min(s.openX, s.tipX) + 1,
			H: max(s.openY, s.tipY) - min(s.openY, s.tipY) + 1,
		}
		if candidate.overlaps(body) {
			return false
		}
	}
	return true
}

// fallbackCentralRoom builds a room spanning enough of the chunk's
// interior to reach every boundary stub tip directly, guaranteeing I5
// even when no randomized placement succeeds.
func fallbackCentralRoom(size int, stubs []stub) room {
	interior := interiorBounds(size)
	minX, minY := interior.hi, interior.hi
	maxX, maxY := interior.lo, interior.lo
	if len(stubs) == 0 {
		// No openings at all: a small central room still satisfies every
		// invariant that depends on there being at least one room.
		mid := size / 2
		return room{X: mid - 2, Y: mid - 2, W: 4, H: 4}
	}
	for _, s := range stubs {
		if s.tipX < minX {
			minX = s.tipX
		}
		if s.tipX > maxX {
			maxX = s.tipX
		}
		if s.tipY < minY {
			minY = s.tipY
		}
		if s.tipY > maxY {
			maxY = s.tipY
		}
	}
	// Pad by one cell and clamp into the interior so the room still
	// leaves a Wall frame (I4).
	x := clampInt(minX-1, interior.lo, interior.hi)
	y := clampInt(minY-1, interior.lo, interior.hi)
	w := clampInt(maxX-x+2, 2, interior.hi-x+1)
	h := clampInt(maxY-y+2, 2, interior.hi-y+1)
	return room{X: x, Y: y, W: w, H: h}
}

type bounds struct{ lo, hi int }

// interiorBounds returns the inclusive [2, S-3] sample domain used for
// both opening positions and room placement (spec §4.2 step 4, §4.3
// step "room_generation").
func interiorBounds(size int) bounds {
	return bounds{lo: 2, hi: size - 3}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// carveRooms stamps every accepted room rectangle to Floor (spec §4.3
// step "room_floors").
func carveRooms(grid *chunkgrid.Grid, rooms []room) {
	for _, r := range rooms {
		grid.FillRect(r.X, r.Y, r.W, r.H, chunkgrid.Floor)
	}
}
