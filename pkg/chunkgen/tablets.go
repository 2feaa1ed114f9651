package chunkgen

import (
	"github.com/przecze/rooms-of-roaming/pkg/chunkgrid"
	"github.com/przecze/rooms-of-roaming/pkg/worldcfg"
	"github.com/przecze/rooms-of-roaming/pkg/wrng"
)

// placeTablets marks up to cfg.TabletsMax Floor cells as Tablet, one
// candidate per room with probability cfg.TabletProb weighted by
// alpha (spec §4.3 step "tablets"). Tablets sit strictly interior and
// inside a room's own floor region, never on the chunk frame or
// blocking a stub/corridor (I6).
func placeTablets(grid *chunkgrid.Grid, rooms []room, cfg *worldcfg.Config, wave Wavelengths, rng *wrng.RNG) []TabletPos {
	var tablets []TabletPos
	prob := cfg.TabletProb * (0.5 + wave.Alpha)
	if prob > 1 {
		prob = 1
	}

	for _, r := range rooms {
		if len(tablets) >= cfg.TabletsMax {
			break
		}
		if rng.Float64() >= prob {
			continue
		}
		x, y, ok := pickFloorCellInRoom(grid, r, rng)
		if !ok {
			continue
		}
		grid.Set(x, y, chunkgrid.Tablet)
		tablets = append(tablets, TabletPos{X: x, Y: y})
	}
	return tablets
}

// pickFloorCellInRoom samples a Floor cell inside r, retrying a bounded
// number of times against the RNG stream already in use.
func pickFloorCellInRoom(grid *chunkgrid.Grid, r room, rng *wrng.RNG) (int, int, bool) {
	const maxAttempts = 20
	for attempt := 0; attempt < maxAttempts; attempt++ {
		x := r.X + rng.Intn(r.W)
		y := r.Y + rng.Intn(r.H)
		if x < 1 || y < 1 || x > grid.Size-2 || y > grid.Size-2 {
			continue
		}
		if grid.Get(x, y) == chunkgrid.Floor {
			return x, y, true
		}
	}
	return 0, 0, false
}
