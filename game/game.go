// Package game orchestrates the arena simulation: body storage, the per-tick
// stepper, input handling and rendering.
package game

import (
	"fmt"
	"log/slog"
	"math/rand"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/smash/components"
	"github.com/pthm-cable/smash/config"
	"github.com/pthm-cable/smash/systems"
	"github.com/pthm-cable/smash/telemetry"
)

// State is the simulation lifecycle state. There is no transition back from
// Terminated.
type State int

const (
	StateRunning State = iota
	StateTerminated
)

// BodyView is one live body in the per-tick frame snapshot handed to the
// renderer. Handle is the opaque sprite reference stored at spawn.
type BodyView struct {
	Handle     uint32
	X, Y       float32
	Radius     float32
	PowerRatio float32
}

// Options holds runtime settings not covered by the config file.
type Options struct {
	Seed           int64
	Headless       bool
	LogStats       bool
	OutputDir      string
	StepsPerUpdate int
}

// Game holds the complete simulation state. It exclusively owns all bodies;
// collaborators only ever see the frame snapshot.
type Game struct {
	world *ecs.World
	rng   *rand.Rand

	bodyMapper *ecs.Map6[
		components.Position,
		components.Velocity,
		components.Body,
		components.Power,
		components.Sprite,
		components.Meta,
	]
	bodyFilter *ecs.Filter6[
		components.Position,
		components.Velocity,
		components.Body,
		components.Power,
		components.Sprite,
		components.Meta,
	]

	// Individual component mappers for pair resolution
	velMap *ecs.Map1[components.Velocity]
	powMap *ecs.Map1[components.Power]

	grid     *systems.SpatialGrid
	detector *systems.CollisionDetector

	collector *telemetry.Collector
	perf      *telemetry.PerfCollector
	output    *telemetry.OutputManager
	logStats  bool

	// State
	tick           int32
	state          State
	stopRequested  bool
	paused         bool
	headless       bool
	stepsPerUpdate int
	alive          int
	nextID         uint32

	// Arena geometry, fixed for the run
	width    float32
	height   float32
	radius   float32
	diameter float32

	// Reused per-tick buffers
	frame  []BodyView
	ratios []float64
}

// DefaultHandles returns the identity handle set for headless runs, where no
// sprite resources exist behind the handles.
func DefaultHandles(n int) []uint32 {
	handles := make([]uint32, n)
	for i := range handles {
		handles[i] = uint32(i)
	}
	return handles
}

// NewGame validates the effective configuration, creates the world and spawns
// the initial population. handles supplies one opaque sprite reference per
// body; nil means identity handles.
func NewGame(opts Options, handles []uint32) (*Game, error) {
	cfg := config.Cfg()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	n := cfg.Body.Count
	if handles == nil {
		handles = DefaultHandles(n)
	}
	if len(handles) != n {
		return nil, fmt.Errorf("game: %d sprite handles for %d bodies", len(handles), n)
	}

	if opts.StepsPerUpdate < 1 {
		opts.StepsPerUpdate = 1
	}

	world := ecs.NewWorld()

	g := &Game{
		world: world,
		rng:   rand.New(rand.NewSource(opts.Seed)),
		bodyMapper: ecs.NewMap6[
			components.Position,
			components.Velocity,
			components.Body,
			components.Power,
			components.Sprite,
			components.Meta,
		](world),
		bodyFilter: ecs.NewFilter6[
			components.Position,
			components.Velocity,
			components.Body,
			components.Power,
			components.Sprite,
			components.Meta,
		](world),
		velMap: ecs.NewMap1[components.Velocity](world),
		powMap: ecs.NewMap1[components.Power](world),

		detector:       systems.NewCollisionDetector(),
		collector:      telemetry.NewCollector(cfg.Telemetry.StatsWindow, cfg.Screen.TargetFPS),
		perf:           telemetry.NewPerfCollector(cfg.Telemetry.PerfWindow),
		logStats:       opts.LogStats,
		headless:       opts.Headless,
		stepsPerUpdate: opts.StepsPerUpdate,

		width:    cfg.Derived.ArenaW,
		height:   cfg.Derived.ArenaH,
		radius:   cfg.Derived.Radius,
		diameter: cfg.Derived.Diameter,
	}

	g.grid = systems.NewSpatialGrid(g.width, g.height, g.diameter)

	if opts.OutputDir != "" {
		om, err := telemetry.NewOutputManager(opts.OutputDir)
		if err != nil {
			return nil, err
		}
		if err := om.WriteConfig(cfg); err != nil {
			return nil, err
		}
		g.output = om
	}

	g.spawnBodies(cfg, handles)
	g.emitSnapshot()

	return g, nil
}

// spawnBodies places the initial population via rejection sampling.
func (g *Game) spawnBodies(cfg *config.Config, handles []uint32) {
	placer := systems.NewSpawnPlacer(
		g.rng,
		g.width, g.height,
		g.radius,
		float32(cfg.Body.InitialSpeed),
		cfg.Spawn.MaxAttempts,
	)
	placer.OnExhausted = func(bodyIndex, attempts int) {
		slog.Warn("spawn attempts exhausted, placing body overlapping",
			"body", bodyIndex,
			"attempts", attempts,
		)
		g.collector.RecordSpawnExhaustion()
	}

	for i, pl := range placer.PlaceAll(cfg.Body.Count) {
		g.spawnBody(pl.X, pl.Y, pl.VX, pl.VY, handles[i], cfg.Body.Power)
	}
}

// spawnBody creates one body with the next stable ID.
func (g *Game) spawnBody(x, y, vx, vy float32, handle uint32, power int) ecs.Entity {
	pos := components.Position{X: x, Y: y}
	vel := components.Velocity{X: vx, Y: vy}
	body := components.Body{Radius: g.radius}
	pow := components.Power{Value: power, Max: power}
	sprite := components.Sprite{Handle: handle}
	meta := components.Meta{ID: g.nextID}
	g.nextID++

	entity := g.bodyMapper.NewEntity(&pos, &vel, &body, &pow, &sprite, &meta)
	g.alive++

	return entity
}

// RequestStop asks the simulation to terminate at the next tick boundary.
// Never takes effect mid-tick.
func (g *Game) RequestStop() {
	g.stopRequested = true
}

// Tick returns the current simulation tick.
func (g *Game) Tick() int32 {
	return g.tick
}

// State returns the lifecycle state.
func (g *Game) State() State {
	return g.state
}

// Terminated reports whether the simulation has ended.
func (g *Game) Terminated() bool {
	return g.state == StateTerminated
}

// Alive returns the current live-body count.
func (g *Game) Alive() int {
	return g.alive
}

// Paused reports whether graphical stepping is suspended.
func (g *Game) Paused() bool {
	return g.paused
}

// Frame returns the post-tick snapshot of live bodies. The slice is owned by
// the game and only valid until the next tick.
func (g *Game) Frame() []BodyView {
	return g.frame
}

// Close releases output resources.
func (g *Game) Close() {
	g.output.Close()
}
