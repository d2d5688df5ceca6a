// Package config provides configuration loading and access for the arena simulation.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Configuration errors surfaced by Validate before any tick runs.
var (
	ErrNoBodies = errors.New("config: body count must be at least 1")
	ErrBadArena = errors.New("config: arena cannot fit the derived body size")
	ErrBadPower = errors.New("config: power per body must be at least 1")
)

// Config holds all simulation configuration parameters.
type Config struct {
	Screen    ScreenConfig    `yaml:"screen"`
	Arena     ArenaConfig     `yaml:"arena"`
	Body      BodyConfig      `yaml:"body"`
	Spawn     SpawnConfig     `yaml:"spawn"`
	Sprites   SpritesConfig   `yaml:"sprites"`
	Recording RecordingConfig `yaml:"recording"`
	Telemetry TelemetryConfig `yaml:"telemetry"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// ScreenConfig holds display settings.
type ScreenConfig struct {
	Width     int `yaml:"width"`
	Height    int `yaml:"height"`
	TargetFPS int `yaml:"target_fps"`
}

// ArenaConfig holds simulation arena dimensions.
// The arena defaults to the screen size; the stepper never reads the screen directly.
type ArenaConfig struct {
	Width  int `yaml:"width"`  // Arena width in world units (0 = use screen width)
	Height int `yaml:"height"` // Arena height in world units (0 = use screen height)
}

// BodyConfig holds body creation parameters.
type BodyConfig struct {
	Count        int     `yaml:"count"`         // Body count for headless runs; graphical runs use the sprite count
	BaseSize     float64 `yaml:"base_size"`     // Radius = base_size / sqrt(count)
	Power        int     `yaml:"power"`         // Collisions a body survives before elimination
	InitialSpeed float64 `yaml:"initial_speed"` // Initial velocity components drawn from [-v, v]
}

// SpawnConfig holds initial placement parameters.
type SpawnConfig struct {
	MaxAttempts int `yaml:"max_attempts"` // Candidate positions tried per body before accepting overlap
}

// SpritesConfig holds sprite loading parameters.
type SpritesConfig struct {
	Folder string `yaml:"folder"`
}

// RecordingConfig holds video capture parameters.
type RecordingConfig struct {
	Enabled    bool   `yaml:"enabled"`
	OutputFile string `yaml:"output_file"`
}

// TelemetryConfig holds telemetry parameters.
type TelemetryConfig struct {
	StatsWindow float64 `yaml:"stats_window"` // Window size in seconds of simulated time
	PerfWindow  int     `yaml:"perf_window"`  // Ticks averaged by the perf collector
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	Radius   float32 // Common body radius
	Diameter float32 // 2 * Radius, also the spatial grid cell size
	ArenaW   float32 // Effective arena width
	ArenaH   float32 // Effective arena height
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if path is empty.
// Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// MustInit is like Init but panics on error.
func MustInit(path string) {
	if err := Init(path); err != nil {
		panic(fmt.Sprintf("config: failed to initialize: %v", err))
	}
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	// Start with embedded defaults
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	// Load user config if provided
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into same struct - only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	cfg.computeDerived()

	return cfg, nil
}

// SetBodyCount overrides the body count (graphical runs take it from the
// loaded sprite set) and recomputes the derived values that depend on it.
func (c *Config) SetBodyCount(n int) {
	c.Body.Count = n
	c.computeDerived()
}

// computeDerived calculates values derived from loaded config.
func (c *Config) computeDerived() {
	// Arena dimensions default to screen size if not specified
	arenaW := c.Arena.Width
	if arenaW == 0 {
		arenaW = c.Screen.Width
	}
	arenaH := c.Arena.Height
	if arenaH == 0 {
		arenaH = c.Screen.Height
	}
	c.Derived.ArenaW = float32(arenaW)
	c.Derived.ArenaH = float32(arenaH)

	if c.Body.Count > 0 {
		radius := c.Body.BaseSize / math.Sqrt(float64(c.Body.Count))
		c.Derived.Radius = float32(radius)
		c.Derived.Diameter = float32(radius * 2)
	} else {
		c.Derived.Radius = 0
		c.Derived.Diameter = 0
	}
}

// Validate checks the effective configuration. It runs once, before the first
// tick; the tick loop itself never surfaces errors.
func (c *Config) Validate() error {
	if c.Body.Count < 1 {
		return fmt.Errorf("%w: got %d", ErrNoBodies, c.Body.Count)
	}
	if c.Body.Power < 1 {
		return fmt.Errorf("%w: got %d", ErrBadPower, c.Body.Power)
	}
	if c.Derived.Diameter <= 0 {
		return fmt.Errorf("%w: base size %v yields non-positive cell size", ErrBadArena, c.Body.BaseSize)
	}
	// Spawn range [r, W-r] x [r, H-r] must be non-empty.
	if c.Derived.ArenaW < c.Derived.Diameter || c.Derived.ArenaH < c.Derived.Diameter {
		return fmt.Errorf("%w: arena %vx%v, body diameter %v",
			ErrBadArena, c.Derived.ArenaW, c.Derived.ArenaH, c.Derived.Diameter)
	}
	return nil
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
