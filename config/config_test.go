package config

import (
	"errors"
	"math"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") returned error: %v", err)
	}

	if cfg.Screen.Width != 1000 || cfg.Screen.Height != 700 {
		t.Errorf("default screen = %dx%d, want 1000x700", cfg.Screen.Width, cfg.Screen.Height)
	}
	if cfg.Body.Power != 7 {
		t.Errorf("default power = %d, want 7", cfg.Body.Power)
	}
	if cfg.Spawn.MaxAttempts != 500 {
		t.Errorf("default max attempts = %d, want 500", cfg.Spawn.MaxAttempts)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate, got: %v", err)
	}
}

func TestDerivedRadius(t *testing.T) {
	tests := []struct {
		name  string
		count int
		base  float64
		want  float64
	}{
		{"single body", 1, 150, 150},
		{"four bodies", 4, 150, 75},
		{"nine bodies", 9, 150, 50},
		{"sixteen bodies", 16, 120, 30},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Load("")
			if err != nil {
				t.Fatal(err)
			}
			cfg.Body.BaseSize = tt.base
			cfg.SetBodyCount(tt.count)

			if got := float64(cfg.Derived.Radius); math.Abs(got-tt.want) > 0.001 {
				t.Errorf("radius = %v, want %v", got, tt.want)
			}
			if got := float64(cfg.Derived.Diameter); math.Abs(got-2*tt.want) > 0.001 {
				t.Errorf("diameter = %v, want %v", got, 2*tt.want)
			}
		})
	}
}

func TestArenaDefaultsToScreen(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Derived.ArenaW != float32(cfg.Screen.Width) {
		t.Errorf("arena width = %v, want screen width %d", cfg.Derived.ArenaW, cfg.Screen.Width)
	}
	if cfg.Derived.ArenaH != float32(cfg.Screen.Height) {
		t.Errorf("arena height = %v, want screen height %d", cfg.Derived.ArenaH, cfg.Screen.Height)
	}
}

func TestValidateErrors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   error
	}{
		{"zero bodies", func(c *Config) { c.SetBodyCount(0) }, ErrNoBodies},
		{"negative bodies", func(c *Config) { c.SetBodyCount(-3) }, ErrNoBodies},
		{"zero power", func(c *Config) { c.Body.Power = 0 }, ErrBadPower},
		{"zero base size", func(c *Config) {
			c.Body.BaseSize = 0
			c.SetBodyCount(c.Body.Count)
		}, ErrBadArena},
		{"body larger than arena", func(c *Config) {
			c.Arena.Width = 100
			c.Arena.Height = 100
			c.SetBodyCount(1) // radius 150 in a 100x100 arena
		}, ErrBadArena},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Load("")
			if err != nil {
				t.Fatal(err)
			}
			tt.mutate(cfg)

			if err := cfg.Validate(); !errors.Is(err, tt.want) {
				t.Errorf("Validate() = %v, want %v", err, tt.want)
			}
		})
	}
}
