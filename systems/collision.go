package systems

import (
	"github.com/pthm-cable/smash/components"
)

// Pair is an unordered colliding body pair, reported with A.ID < B.ID.
type Pair struct {
	A, B GridBody
}

// CollisionDetector finds all colliding pairs exactly once per tick using the
// spatial grid as broad phase. Buffers are reused across ticks.
type CollisionDetector struct {
	seen      map[uint64]struct{}
	pairs     []Pair
	neighbors []GridBody
}

// NewCollisionDetector creates a detector with empty reusable buffers.
func NewCollisionDetector() *CollisionDetector {
	return &CollisionDetector{
		seen: make(map[uint64]struct{}, 64),
	}
}

// FindPairs returns all body pairs whose center distance is strictly below
// minDist. Cells are scanned in index order and every candidate pair is keyed
// by its ordered ID tuple, so a pair spanning several cells resolves once and
// the result order is deterministic for a deterministic grid fill. The
// returned slice is valid until the next call.
func (d *CollisionDetector) FindPairs(grid *SpatialGrid, minDist float32) []Pair {
	clear(d.seen)
	d.pairs = d.pairs[:0]

	minDistSq := minDist * minDist

	for idx, cell := range grid.cells {
		if len(cell) == 0 {
			continue
		}

		col := idx % grid.cols
		row := idx / grid.cols
		d.neighbors = grid.NeighborhoodInto(d.neighbors[:0], col, row)

		for _, a := range cell {
			for _, b := range d.neighbors {
				if a.ID == b.ID {
					continue
				}

				key := pairKey(a.ID, b.ID)
				if _, done := d.seen[key]; done {
					continue
				}
				d.seen[key] = struct{}{}

				dx := a.X - b.X
				dy := a.Y - b.Y
				if dx*dx+dy*dy < minDistSq {
					if a.ID < b.ID {
						d.pairs = append(d.pairs, Pair{A: a, B: b})
					} else {
						d.pairs = append(d.pairs, Pair{A: b, B: a})
					}
				}
			}
		}
	}

	return d.pairs
}

// pairKey builds the canonical map key for an unordered ID pair.
func pairKey(a, b uint32) uint64 {
	if a > b {
		a, b = b, a
	}
	return uint64(a)<<32 | uint64(b)
}

// ResolvePair applies the collision response to one confirmed pair: the two
// velocity vectors are exchanged (elastic, equal-effective-mass) and each
// power drops by 1, floored at 0. A body already at 0 still swaps velocity.
// No positional separation is performed; overlapping for a tick is accepted.
func ResolvePair(va, vb *components.Velocity, pa, pb *components.Power) {
	va.X, vb.X = vb.X, va.X
	va.Y, vb.Y = vb.Y, va.Y

	if pa.Value > 0 {
		pa.Value--
	}
	if pb.Value > 0 {
		pb.Value--
	}
}
