package wrng

import "testing"

func TestNew_Determinism(t *testing.T) {
	r1 := New(123456789, "edge", 3, -4)
	r2 := New(123456789, "edge", 3, -4)

	if r1.Seed() != r2.Seed() {
		t.Fatalf("same inputs produced different seeds: %d vs %d", r1.Seed(), r2.Seed())
	}

	for i := 0; i < 100; i++ {
		a := r1.IntRange(0, 1<<30)
		b := r2.IntRange(0, 1<<30)
		if a != b {
			t.Fatalf("iteration %d: sequences diverged: %d vs %d", i, a, b)
		}
	}
}

func TestNew_DifferentTagsDiffer(t *testing.T) {
	a := New(42, "edge", 1, 2)
	b := New(42, "chunk", 1, 2)
	if a.Seed() == b.Seed() {
		t.Fatal("different tags produced identical seeds")
	}
}

func TestNew_DifferentCoordsDiffer(t *testing.T) {
	a := New(42, "chunk", 0, 0)
	b := New(42, "chunk", 0, 1)
	if a.Seed() == b.Seed() {
		t.Fatal("different coordinates produced identical seeds")
	}
}

func TestIntRange_Bounds(t *testing.T) {
	r := New(7, "test", 1)
	for i := 0; i < 1000; i++ {
		v := r.IntRange(2, 5)
		if v < 2 || v > 5 {
			t.Fatalf("IntRange(2,5) out of bounds: %d", v)
		}
	}
}

func TestIntRange_Equal(t *testing.T) {
	r := New(7, "test", 1)
	if v := r.IntRange(3, 3); v != 3 {
		t.Fatalf("IntRange(3,3) = %d, want 3", v)
	}
}

func TestDistinctPositions_Spacing(t *testing.T) {
	r := New(99, "edge:positions", 0, 0)
	positions := r.DistinctPositions(2, 45, 3, 2, 200)
	for i := 1; i < len(positions); i++ {
		if positions[i]-positions[i-1] < 2 {
			t.Fatalf("positions too close: %v", positions)
		}
	}
	for _, p := range positions {
		if p < 2 || p > 45 {
			t.Fatalf("position out of range: %d", p)
		}
	}
}

func TestDistinctPositions_DegradesOnExhaustedBudget(t *testing.T) {
	r := New(1, "edge:positions", 0, 0)
	// Ask for more positions than can fit with this spacing in this tiny
	// budget; the call must return fewer rather than hang or panic.
	positions := r.DistinctPositions(2, 4, 5, 2, 3)
	if len(positions) >= 5 {
		t.Fatalf("expected fewer than the 5 requested positions: %v", positions)
	}
}

func TestDistinctPositions_Sorted(t *testing.T) {
	r := New(55, "edge:positions", 1, 1)
	positions := r.DistinctPositions(2, 45, 3, 2, 200)
	for i := 1; i < len(positions); i++ {
		if positions[i] <= positions[i-1] {
			t.Fatalf("positions not strictly sorted: %v", positions)
		}
	}
}
