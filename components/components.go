// Package components defines the plain data structs stored per body in the ECS world.
package components

// Position represents a body's center in arena coordinates.
type Position struct {
	X, Y float32
}

// Velocity represents a body's per-tick displacement.
type Velocity struct {
	X, Y float32
}

// Body holds physical properties of a body. Radius is fixed at construction
// and identical for every body in a run.
type Body struct {
	Radius float32
}

// Power is the depletable collision counter. A body with Value 0 is culled at
// the end of the tick in which it reached 0.
type Power struct {
	Value int
	Max   int
}

// Alive reports whether the body is still in play.
func (p Power) Alive() bool {
	return p.Value > 0
}

// Ratio returns Value/Max for the renderer's health bar. The simulation never
// interprets this beyond computing it.
func (p Power) Ratio() float32 {
	if p.Max <= 0 {
		return 0
	}
	return float32(p.Value) / float32(p.Max)
}

// Sprite references the renderer's per-body image resource. The handle is
// opaque to the simulation: it is stored at spawn and echoed back in every
// frame snapshot.
type Sprite struct {
	Handle uint32
}

// Meta carries the stable per-run identity used for collision pair
// deduplication. IDs are dense spawn-order indices, not memory addresses.
type Meta struct {
	ID uint32
}
