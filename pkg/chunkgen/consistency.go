package chunkgen

import (
	"fmt"

	"github.com/katalvlaran/lvlath/gridgraph"
	"github.com/przecze/rooms-of-roaming/pkg/chunkgrid"
)

// checkReachability verifies the opening half of I5: every boundary
// opening lies in one connected component of the 4-connected Floor
// subgraph. Room floors are not checked, since the rooms are not passed
// in. It reuses gridgraph.ConnectedComponents rather than
// hand-rolling a second flood fill, since the chunk's grid is already
// exactly the [][]int shape gridgraph consumes.
func checkReachability(grid *chunkgrid.Grid, profiles [4]Profile) error {
	gg, err := gridgraph.NewGridGraph(grid.IntGrid(), gridgraph.DefaultGridOptions())
	if err != nil {
		return fmt.Errorf("%w: building grid graph: %v", ErrInternalConsistencyViolation, err)
	}

	components := gg.ConnectedComponents()
	land := components[1]
	if len(land) == 0 {
		return fmt.Errorf("%w: chunk has no floor cells", ErrInternalConsistencyViolation)
	}

	memberOf := make(map[[2]int]int, grid.Size*grid.Size)
	for ci, comp := range land {
		for _, cell := range comp {
			memberOf[[2]int{cell.X, cell.Y}] = ci
		}
	}

	var want = -1
	check := func(x, y int, what string) error {
		ci, ok := memberOf[[2]int{x, y}]
		if !ok {
			return fmt.Errorf("%w: %s at (%d,%d) is not a Floor cell", ErrInternalConsistencyViolation, what, x, y)
		}
		if want == -1 {
			want = ci
			return nil
		}
		if ci != want {
			return fmt.Errorf("%w: %s at (%d,%d) is unreachable from the rest of the chunk", ErrInternalConsistencyViolation, what, x, y)
		}
		return nil
	}

	for side := North; side <= West; side++ {
		for _, p := range profiles[side].Openings {
			x, y := openingCell(side, p, grid.Size)
			if err := check(x, y, fmt.Sprintf("opening %s@%d", side, p)); err != nil {
				return err
			}
		}
	}

	return nil
}

// checkFrameIntegrity is a defensive check that Generate runs on every
// chunk before returning it: given the four profiles the chunk was built
// from, it confirms the generator actually stamped Floor at every
// declared opening and Wall everywhere else on the frame, with no Tablet
// on the frame (I2/I4). Profile agreement across processes is guaranteed
// by the Boundary Oracle's determinism, not by this check, but it
// catches a generator bug that silently drops an opening.
func checkFrameIntegrity(grid *chunkgrid.Grid, profiles [4]Profile) error {
	size := grid.Size
	isOpening := make(map[[2]int]bool)
	for side := North; side <= West; side++ {
		for _, p := range profiles[side].Openings {
			x, y := openingCell(side, p, size)
			isOpening[[2]int{x, y}] = true
		}
	}

	checkCell := func(x, y int) error {
		cell := grid.Get(x, y)
		if cell == chunkgrid.Tablet {
			return fmt.Errorf("%w: tablet found on frame cell (%d,%d)", ErrInternalConsistencyViolation, x, y)
		}
		wantFloor := isOpening[[2]int{x, y}]
		if wantFloor && cell != chunkgrid.Floor {
			return fmt.Errorf("%w: declared opening (%d,%d) is not Floor", ErrInternalConsistencyViolation, x, y)
		}
		if !wantFloor && cell != chunkgrid.Wall {
			return fmt.Errorf("%w: non-opening frame cell (%d,%d) is not Wall", ErrInternalConsistencyViolation, x, y)
		}
		return nil
	}

	for x := 0; x < size; x++ {
		if err := checkCell(x, 0); err != nil {
			return err
		}
		if err := checkCell(x, size-1); err != nil {
			return err
		}
	}
	for y := 0; y < size; y++ {
		if err := checkCell(0, y); err != nil {
			return err
		}
		if err := checkCell(size-1, y); err != nil {
			return err
		}
	}
	return nil
}
