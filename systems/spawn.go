package systems

import (
	"math/rand"
)

// Placement is one body's initial position and velocity.
type Placement struct {
	X, Y   float32
	VX, VY float32
}

// SpawnPlacer finds non-overlapping initial positions by rejection sampling.
// Placement is one-time and body counts are small, so candidates are checked
// pairwise against the already-placed set; no grid is involved here.
type SpawnPlacer struct {
	rng         *rand.Rand
	width       float32
	height      float32
	radius      float32
	speed       float32
	maxAttempts int

	// OnExhausted, if set, is called when a body runs out of placement
	// attempts and is placed overlapping at its last candidate.
	OnExhausted func(bodyIndex, attempts int)
}

// NewSpawnPlacer creates a placer for the given arena and common radius.
// Initial velocity components are drawn uniformly from [-speed, speed].
func NewSpawnPlacer(rng *rand.Rand, width, height, radius, speed float32, maxAttempts int) *SpawnPlacer {
	if maxAttempts < 1 {
		maxAttempts = 1
	}
	return &SpawnPlacer{
		rng:         rng,
		width:       width,
		height:      height,
		radius:      radius,
		speed:       speed,
		maxAttempts: maxAttempts,
	}
}

// PlaceAll produces n placements. Every position keeps the full circle inside
// the arena. Pairwise non-overlap is best effort: when the attempt budget for
// a body is exhausted, the last candidate is accepted even though it overlaps,
// so callers must not assume zero initial overlap for dense populations.
func (p *SpawnPlacer) PlaceAll(n int) []Placement {
	placements := make([]Placement, 0, n)

	for i := 0; i < n; i++ {
		var x, y float32
		placed := false

		for attempt := 0; attempt < p.maxAttempts; attempt++ {
			x = p.radius + p.rng.Float32()*(p.width-2*p.radius)
			y = p.radius + p.rng.Float32()*(p.height-2*p.radius)

			if !p.overlaps(placements, x, y) {
				placed = true
				break
			}
		}

		if !placed && p.OnExhausted != nil {
			p.OnExhausted(i, p.maxAttempts)
		}

		placements = append(placements, Placement{
			X:  x,
			Y:  y,
			VX: (p.rng.Float32()*2 - 1) * p.speed,
			VY: (p.rng.Float32()*2 - 1) * p.speed,
		})
	}

	return placements
}

// overlaps reports whether (x, y) is within two radii of any placed center.
func (p *SpawnPlacer) overlaps(placed []Placement, x, y float32) bool {
	minDist := p.radius * 2
	minDistSq := minDist * minDist

	for _, q := range placed {
		dx := x - q.X
		dy := y - q.Y
		if dx*dx+dy*dy < minDistSq {
			return true
		}
	}
	return false
}
