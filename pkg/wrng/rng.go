package wrng

import (
	"crypto/sha256"
	"encoding/binary"
	"math/rand"
)

// RNG is a deterministic pseudo-random stream addressed by a tag and a
// tuple of integer coordinates. The derivation follows:
//
//	seed = H(worldSeed, tag, coords...)
//
// where H is SHA-256 and the first 8 bytes of the digest become the
// uint64 seed for a math/rand source. Two RNGs built from equal
// (worldSeed, tag, coords) always produce equal output (I1).
type RNG struct {
	seed   uint64
	tag    string
	source *rand.Rand
}

// New derives a stream-specific RNG from the world seed, a tag
// identifying the decision being made (e.g. "edge", "chunk:rooms"), and
// the integer coordinates that address this particular draw. Distinct
// tags keep unrelated decisions from perturbing each other: changing how
// many rooms a chunk has must never change which cell its tablets land
// on, so each sub-decision uses its own tag.
func New(worldSeed uint64, tag string, coords ...int64) *RNG {
	h := sha256.New()

	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], worldSeed)
	h.Write(buf[:])

	h.Write([]byte(tag))

	for _, c := range coords {
		binary.BigEndian.PutUint64(buf[:], uint64(c))
		h.Write(buf[:])
	}

	digest := h.Sum(nil)
	derived := binary.BigEndian.Uint64(digest[:8])

	return &RNG{
		seed:   derived,
		tag:    tag,
		source: rand.New(rand.NewSource(int64(derived))),
	}
}

// Seed returns the derived seed for this stream. Useful for debug output.
func (r *RNG) Seed() uint64 { return r.seed }

// Tag returns the tag this stream was derived for.
func (r *RNG) Tag() string { return r.tag }

// Intn returns a pseudo-random integer in [0, n). Panics if n <= 0.
func (r *RNG) Intn(n int) int {
	return r.source.Intn(n)
}

// IntRange returns a pseudo-random integer in [lo, hi] inclusive.
// Panics if lo > hi.
func (r *RNG) IntRange(lo, hi int) int {
	if lo > hi {
		panic("wrng: IntRange lo must be <= hi")
	}
	if lo == hi {
		return lo
	}
	return lo + r.source.Intn(hi-lo+1)
}

// Float64 returns a pseudo-random float64 in [0.0, 1.0).
func (r *RNG) Float64() float64 {
	return r.source.Float64()
}

// Float64Range returns a pseudo-random float64 in [lo, hi). Panics if
// lo >= hi.
func (r *RNG) Float64Range(lo, hi float64) float64 {
	if lo >= hi {
		panic("wrng: Float64Range lo must be < hi")
	}
	return lo + r.source.Float64()*(hi-lo)
}

// Bool returns a pseudo-random boolean.
func (r *RNG) Bool() bool {
	return r.source.Intn(2) == 1
}

// Shuffle pseudo-randomizes the order of n elements via swap.
func (r *RNG) Shuffle(n int, swap func(i, j int)) {
	r.source.Shuffle(n, swap)
}

// Choice returns a pseudo-randomly chosen index in [0, n). It is a
// thin alias over Intn kept for call-site readability at choice points
// (picking a room, picking a carving direction).
func (r *RNG) Choice(n int) int {
	return r.Intn(n)
}

// DistinctPositions draws count distinct integers from [lo, hi] with a
// minimum pairwise spacing of minGap (a minGap below 1 lets a value be
// drawn more than once), using reject-and-redraw. It makes
// at most maxAttempts draws in total; if the budget is exhausted before
// count positions are accepted, it returns the positions accepted so
// far (fewer than count) rather than looping forever — callers that
// need an exact count must degrade gracefully, per the generator's
// failure semantics.
func (r *RNG) DistinctPositions(lo, hi, count, minGap, maxAttempts int) []int {
	if count <= 0 || lo > hi {
		return nil
	}
	positions := make([]int, 0, count)
	for attempt := 0; attempt < maxAttempts && len(positions) < count; attempt++ {
		candidate := r.IntRange(lo, hi)
		ok := true
		for _, p := range positions {
			d := p - candidate
			if d < 0 {
				d = -d
			}
			if d < minGap {
				ok = false
				break
			}
		}
		if ok {
			positions = append(positions, candidate)
		}
	}
	return sortedInts(positions)
}

func sortedInts(xs []int) []int {
	for i := 1; i < len(xs); i++ {
		v := xs[i]
		j := i - 1
		for j >= 0 && xs[j] > v {
			xs[j+1] = xs[j]
			j--
		}
		xs[j+1] = v
	}
	return xs
}
