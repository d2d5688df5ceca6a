package game

import (
	"fmt"
	"log/slog"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/smash/systems"
	"github.com/pthm-cable/smash/telemetry"
)

// Update runs one update: input, stop polling, then one or more simulation
// steps. A headless game never touches the input layer.
func (g *Game) Update() {
	if g.headless {
		g.UpdateHeadless()
		return
	}

	g.handleInput()

	if g.stopRequested {
		g.state = StateTerminated
		return
	}
	if g.paused {
		return
	}

	for i := 0; i < g.stepsPerUpdate && g.state == StateRunning; i++ {
		g.simulationStep()
	}
}

// UpdateHeadless runs simulation steps without touching input or graphics.
// The core is cadence-agnostic; callers may invoke this as fast as possible.
func (g *Game) UpdateHeadless() {
	if g.stopRequested {
		g.state = StateTerminated
		return
	}

	for i := 0; i < g.stepsPerUpdate && g.state == StateRunning; i++ {
		g.simulationStep()
	}
}

// simulationStep runs a single tick. The phase order is fixed for
// reproducibility: integrate, wall bounce, grid rebuild, collision
// resolution, cull, termination check, snapshot.
func (g *Game) simulationStep() {
	if g.state == StateTerminated {
		return
	}

	g.perf.StartTick()

	g.perf.StartPhase(telemetry.PhaseIntegrate)
	g.integrateAndBounce()

	g.perf.StartPhase(telemetry.PhaseGrid)
	g.rebuildGrid()

	g.perf.StartPhase(telemetry.PhaseCollide)
	g.resolveCollisions()

	g.perf.StartPhase(telemetry.PhaseCull)
	g.cullDead()

	g.perf.StartPhase(telemetry.PhaseSnapshot)
	if g.alive <= 1 {
		g.state = StateTerminated
	}
	g.emitSnapshot()

	g.perf.EndTick()
	g.tick++

	g.flushTelemetry()
}

// integrateAndBounce advances every body and flips velocity components at the
// arena walls. Position is not clamped: a body may overshoot the boundary for
// a tick and the flipped velocity brings it back.
func (g *Game) integrateAndBounce() {
	query := g.bodyFilter.Query()
	for query.Next() {
		pos, vel, body, pow, _, _ := query.Get()

		if body.Radius <= 0 || pow.Value < 0 {
			panic(fmt.Sprintf("game: invariant violation at tick %d: radius=%v power=%d",
				g.tick, body.Radius, pow.Value))
		}

		pos.X += vel.X
		pos.Y += vel.Y

		if pos.X <= body.Radius || pos.X >= g.width-body.Radius {
			vel.X = -vel.X
			g.collector.RecordWallBounce()
		}
		if pos.Y <= body.Radius || pos.Y >= g.height-body.Radius {
			vel.Y = -vel.Y
			g.collector.RecordWallBounce()
		}
	}
}

// rebuildGrid refills the tick-local spatial index from current positions.
func (g *Game) rebuildGrid() {
	g.grid.Clear()

	query := g.bodyFilter.Query()
	for query.Next() {
		pos, _, _, _, _, meta := query.Get()
		g.grid.Insert(query.Entity(), meta.ID, pos.X, pos.Y)
	}
}

// resolveCollisions applies velocity exchange and power decrement to every
// colliding pair. Bodies that reached zero power earlier in this pass still
// participate; they are culled only at the end of the tick.
func (g *Game) resolveCollisions() {
	pairs := g.detector.FindPairs(g.grid, g.diameter)

	for _, p := range pairs {
		va := g.velMap.Get(p.A.Entity)
		vb := g.velMap.Get(p.B.Entity)
		pa := g.powMap.Get(p.A.Entity)
		pb := g.powMap.Get(p.B.Entity)

		systems.ResolvePair(va, vb, pa, pb)
		g.collector.RecordCollision()
	}
}

// cullDead removes all bodies at zero power. Collection completes before any
// removal so query iteration never observes a mutating store. Removal is
// final.
func (g *Game) cullDead() {
	var toRemove []ecs.Entity

	query := g.bodyFilter.Query()
	for query.Next() {
		_, _, _, pow, _, _ := query.Get()

		if !pow.Alive() {
			toRemove = append(toRemove, query.Entity())
		}
	}

	for _, entity := range toRemove {
		g.bodyMapper.Remove(entity)
		g.alive--
		g.collector.RecordElimination()
	}
}

// emitSnapshot rebuilds the renderable frame from surviving bodies.
func (g *Game) emitSnapshot() {
	g.frame = g.frame[:0]

	query := g.bodyFilter.Query()
	for query.Next() {
		pos, _, body, pow, sprite, _ := query.Get()

		g.frame = append(g.frame, BodyView{
			Handle:     sprite.Handle,
			X:          pos.X,
			Y:          pos.Y,
			Radius:     body.Radius,
			PowerRatio: pow.Ratio(),
		})
	}
}

// flushTelemetry emits window stats when the window elapses.
func (g *Game) flushTelemetry() {
	if !g.collector.ShouldFlush(g.tick) {
		return
	}

	g.ratios = g.ratios[:0]
	for _, bv := range g.frame {
		g.ratios = append(g.ratios, float64(bv.PowerRatio))
	}

	stats := g.collector.Flush(g.tick, g.alive, g.ratios)
	perfStats := g.perf.Stats()

	if g.logStats {
		stats.LogStats()
		perfStats.LogStats()
	}

	if g.output != nil {
		if err := g.output.WriteTelemetry(stats); err != nil {
			slog.Error("failed to write telemetry", "error", err)
		}
		if err := g.output.WritePerf(perfStats, stats.WindowEndTick); err != nil {
			slog.Error("failed to write perf", "error", err)
		}
	}
}
