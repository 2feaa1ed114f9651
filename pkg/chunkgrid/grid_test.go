package chunkgrid

import "testing"

func TestNewGrid_AllWall(t *testing.T) {
	g := NewGrid(8)
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			if g.Get(x, y) != Wall {
				t.Fatalf("cell (%d,%d) = %v, want Wall", x, y, g.Get(x, y))
			}
		}
	}
}

func TestGet_OutOfBoundsIsWall(t *testing.T) {
	g := NewGrid(4)
	if g.Get(-1, 0) != Wall || g.Get(4, 0) != Wall || g.Get(0, 4) != Wall {
		t.Fatal("out-of-bounds reads must return Wall")
	}
}

func TestSet_OutOfBoundsIsNoOp(t *testing.T) {
	g := NewGrid(4)
	g.Set(-1, -1, Floor) // must not panic
	g.Set(100, 100, Floor)
}

func TestFillRect(t *testing.T) {
	g := NewGrid(10)
	g.FillRect(2, 2, 3, 3, Floor)
	for y := 2; y < 5; y++ {
		for x := 2; x < 5; x++ {
			if g.Get(x, y) != Floor {
				t.Fatalf("(%d,%d) not floor after FillRect", x, y)
			}
		}
	}
	if g.Get(1, 1) != Wall || g.Get(5, 5) != Wall {
		t.Fatal("FillRect leaked outside its rectangle")
	}
}

func TestDrawLine_Endpoints(t *testing.T) {
	g := NewGrid(10)
	g.DrawLine(0, 0, 5, 0, Floor)
	for x := 0; x <= 5; x++ {
		if g.Get(x, 0) != Floor {
			t.Fatalf("horizontal line missing cell at x=%d", x)
		}
	}
}

func TestFloodFill_CountsAndStops(t *testing.T) {
	g := NewGrid(6)
	g.FillRect(1, 1, 3, 3, Floor)
	changed := g.FloodFill(2, 2, Tablet)
	if changed != 9 {
		t.Fatalf("FloodFill changed %d cells, want 9", changed)
	}
	if g.Get(0, 0) != Wall {
		t.Fatal("FloodFill leaked into unrelated Wall region")
	}
}

func TestRows_GlyphsAndLength(t *testing.T) {
	g := NewGrid(5)
	g.Set(2, 2, Floor)
	g.Set(1, 1, Tablet)
	rows := g.Rows()
	if len(rows) != 5 {
		t.Fatalf("Rows() returned %d rows, want 5", len(rows))
	}
	for _, row := range rows {
		if len([]rune(row)) != 5 {
			t.Fatalf("row %q has wrong length", row)
		}
	}
	if []rune(rows[2])[2] != ' ' {
		t.Fatalf("floor glyph mismatch: %q", rows[2])
	}
	if []rune(rows[1])[1] != '◊' {
		t.Fatalf("tablet glyph mismatch: %q", rows[1])
	}
}

func TestIntGrid_WallIsZeroFloorIsOne(t *testing.T) {
	g := NewGrid(3)
	g.Set(1, 1, Floor)
	ig := g.IntGrid()
	if ig[1][1] != 1 {
		t.Fatal("floor cell should map to 1 in IntGrid")
	}
	if ig[0][0] != 0 {
		t.Fatal("wall cell should map to 0 in IntGrid")
	}
}
