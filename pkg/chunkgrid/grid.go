package chunkgrid

import "fmt"

// Cell is one of the three glyphs a chunk's grid is made of.
type Cell byte

const (
	// Wall is solid, impassable rock. Non-opening frame cells are Wall (I4).
	Wall Cell = iota
	// Floor is walkable space.
	Floor
	// Tablet is a Floor cell additionally marked for the external text
	// store to key appendable content by (cx, cy, local_x, local_y).
	Tablet
)

// Glyph returns the wire-format character for a cell (spec §3, §6.1).
func (c Cell) Glyph() rune {
	switch c {
	case Wall:
		return '#'
	case Floor:
		return ' '
	case Tablet:
		return '◊'
	default:
		return '?'
	}
}

// String returns a human-readable name, matching the teacher's
// enum-to-string switch style.
func (c Cell) String() string {
	switch c {
	case Wall:
		return "Wall"
	case Floor:
		return "Floor"
	case Tablet:
		return "Tablet"
	default:
		return fmt.Sprintf("Unknown(%d)", c)
	}
}

// Grid is a square S×S flat, row-major array of cells.
type Grid struct {
	Size int
	data []Cell
}

// NewGrid allocates a size×size grid filled with Wall.
func NewGrid(size int) *Grid {
	data := make([]Cell, size*size)
	for i := range data {
		data[i] = Wall
	}
	return &Grid{Size: size, data: data}
}

// InBounds reports whether (x, y) lies within the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Size && y >= 0 && y < g.Size
}

// Get returns the cell at (x, y), or Wall if out of bounds.
func (g *Grid) Get(x, y int) Cell {
	if !g.InBounds(x, y) {
		return Wall
	}
	return g.data[y*g.Size+x]
}

// Set writes value at (x, y). Out-of-bounds writes are silently ignored
// so that carving code at the chunk's edges never needs its own bounds
// checks (idempotent no-op per spec §4.3 edge-case policy).
func (g *Grid) Set(x, y int, value Cell) {
	if !g.InBounds(x, y) {
		return
	}
	g.data[y*g.Size+x] = value
}

// FillRect fills the rectangle [x, x+w) × [y, y+h) with value.
func (g *Grid) FillRect(x, y, w, h int, value Cell) {
	for dy := 0; dy < h; dy++ {
		for dx := 0; dx < w; dx++ {
			g.Set(x+dx, y+dy, value)
		}
	}
}

// DrawLine draws a Bresenham line from (x0,y0) to (x1,y1), overwriting
// every cell it touches with value. Re-carving an already-carved cell
// is a no-op in effect (spec §4.3: "all path carving is idempotent").
func (g *Grid) DrawLine(x0, y0, x1, y1 int, value Cell) {
	dx := abs(x1 - x0)
	dy := abs(y1 - y0)

	sx := -1
	if x0 < x1 {
		sx = 1
	}
	sy := -1
	if y0 < y1 {
		sy = 1
	}

	err := dx - dy
	for {
		g.Set(x0, y0, value)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

// DrawLShape carves an L-shaped path between two points: first
// horizontal then vertical, or vice versa, as chosen by horizontalFirst.
func (g *Grid) DrawLShape(x0, y0, x1, y1 int, horizontalFirst bool, value Cell) {
	if horizontalFirst {
		g.DrawLine(x0, y0, x1, y0, value)
		g.DrawLine(x1, y0, x1, y1, value)
	} else {
		g.DrawLine(x0, y0, x0, y1, value)
		g.DrawLine(x0, y1, x1, y1, value)
	}
}

// FloodFill fills the 4-connected region matching the cell at (x, y)
// with value, returning the number of cells changed.
func (g *Grid) FloodFill(x, y int, value Cell) int {
	if !g.InBounds(x, y) {
		return 0
	}
	target := g.Get(x, y)
	if target == value {
		return 0
	}

	type point struct{ x, y int }
	queue := []point{{x, y}}
	visited := make(map[point]bool)
	changed := 0

	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		if visited[p] {
			continue
		}
		visited[p] = true
		if g.Get(p.x, p.y) != target {
			continue
		}
		g.Set(p.x, p.y, value)
		changed++

		for _, n := range [4]point{{p.x - 1, p.y}, {p.x + 1, p.y}, {p.x, p.y - 1}, {p.x, p.y + 1}} {
			if g.InBounds(n.x, n.y) && !visited[n] {
				queue = append(queue, n)
			}
		}
	}
	return changed
}

// Row returns a copy of row y as a string of glyphs, top row first —
// the wire format used by spec §6.1.
func (g *Grid) Row(y int) string {
	runes := make([]rune, g.Size)
	for x := 0; x < g.Size; x++ {
		runes[x] = g.Get(x, y).Glyph()
	}
	return string(runes)
}

// Rows returns every row as a glyph string, top row first.
func (g *Grid) Rows() []string {
	rows := make([]string, g.Size)
	for y := 0; y < g.Size; y++ {
		rows[y] = g.Row(y)
	}
	return rows
}

// IntGrid converts the cell grid into a [][]int suitable for
// github.com/katalvlaran/lvlath/gridgraph, where Floor and Tablet are
// both "land" (walkable) and Wall is "water".
func (g *Grid) IntGrid() [][]int {
	out := make([][]int, g.Size)
	for y := 0; y < g.Size; y++ {
		row := make([]int, g.Size)
		for x := 0; x < g.Size; x++ {
			if g.Get(x, y) == Wall {
				row[x] = 0
			} else {
				row[x] = 1
			}
		}
		out[y] = row
	}
	return out
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
