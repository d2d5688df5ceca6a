// Package telemetry accumulates simulation events into windowed statistics
// and writes them to CSV.
package telemetry

// Collector accumulates events within tick windows and produces WindowStats.
type Collector struct {
	windowDurationTicks int32
	ticksPerSecond      int

	// Current window tracking
	windowStartTick int32

	// Event counters for current window
	collisions       int
	eliminations     int
	wallBounces      int
	spawnExhaustions int

	// Run totals
	totalCollisions   int
	totalEliminations int
}

// NewCollector creates a stats collector.
// windowDurationSec: how long each stats window lasts in simulation seconds
// ticksPerSecond: nominal tick rate (used only for tick-to-time conversion)
func NewCollector(windowDurationSec float64, ticksPerSecond int) *Collector {
	if ticksPerSecond < 1 {
		ticksPerSecond = 60
	}
	ticksPerWindow := int32(windowDurationSec * float64(ticksPerSecond))
	if ticksPerWindow < 1 {
		ticksPerWindow = 1
	}

	return &Collector{
		windowDurationTicks: ticksPerWindow,
		ticksPerSecond:      ticksPerSecond,
	}
}

// RecordCollision records one resolved body pair.
func (c *Collector) RecordCollision() {
	c.collisions++
	c.totalCollisions++
}

// RecordElimination records a body culled at zero power.
func (c *Collector) RecordElimination() {
	c.eliminations++
	c.totalEliminations++
}

// RecordWallBounce records a velocity flip at an arena boundary.
func (c *Collector) RecordWallBounce() {
	c.wallBounces++
}

// RecordSpawnExhaustion records a body placed overlapping after the spawn
// attempt budget ran out. Spawn exhaustion is not an error; this hook exists
// for diagnosis.
func (c *Collector) RecordSpawnExhaustion() {
	c.spawnExhaustions++
}

// TotalCollisions returns the number of pairs resolved since the run started.
func (c *Collector) TotalCollisions() int {
	return c.totalCollisions
}

// TotalEliminations returns the number of bodies culled since the run started.
func (c *Collector) TotalEliminations() int {
	return c.totalEliminations
}

// ShouldFlush returns true if enough ticks have passed to flush the window.
func (c *Collector) ShouldFlush(currentTick int32) bool {
	return currentTick-c.windowStartTick >= c.windowDurationTicks
}

// Flush produces a WindowStats and resets counters for the next window.
// aliveCount is the live-body count at window end; powerRatios holds each
// live body's power/max for distribution stats.
func (c *Collector) Flush(currentTick int32, aliveCount int, powerRatios []float64) WindowStats {
	stats := WindowStats{
		WindowStartTick:  c.windowStartTick,
		WindowEndTick:    currentTick,
		SimTimeSec:       float64(currentTick) / float64(c.ticksPerSecond),
		Alive:            aliveCount,
		Collisions:       c.collisions,
		Eliminations:     c.eliminations,
		WallBounces:      c.wallBounces,
		SpawnExhaustions: c.spawnExhaustions,
	}

	stats.PowerMean, stats.PowerStd, stats.PowerP50 = ComputePowerStats(powerRatios)

	// Reset for next window
	c.windowStartTick = currentTick
	c.collisions = 0
	c.eliminations = 0
	c.wallBounces = 0
	c.spawnExhaustions = 0

	return stats
}
