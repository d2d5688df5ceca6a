package main

import (
	"flag"
	"log/slog"
	"os"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/smash/config"
	"github.com/pthm-cable/smash/game"
	"github.com/pthm-cable/smash/renderer"
	"github.com/pthm-cable/smash/ui"
)

func main() {
	// CLI flags
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	headless := flag.Bool("headless", false, "Run without graphics")
	logStats := flag.Bool("log-stats", false, "Output window stats via slog")
	outputDir := flag.String("output-dir", "", "Output directory for CSV logs and config snapshot")
	seed := flag.Int64("seed", 0, "RNG seed (0 = time-based)")
	maxTicks := flag.Int("max-ticks", 0, "Stop after N ticks (0 = unlimited)")
	stepsPerUpdate := flag.Int("steps-per-update", 1, "Simulation ticks per update call (higher = faster headless runs)")
	sprites := flag.String("sprites", "", "Sprite folder (empty = use config)")
	record := flag.Bool("record", false, "Record the run to the configured mp4 file")

	flag.Parse()

	// Initialize config before anything else
	if err := config.Init(*configPath); err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	cfg := config.Cfg()

	// Set up seed
	rngSeed := *seed
	if rngSeed == 0 {
		rngSeed = time.Now().UnixNano()
	}

	// Set up slog (JSON to stdout for structured logging)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	opts := game.Options{
		Seed:           rngSeed,
		Headless:       *headless,
		LogStats:       *logStats,
		OutputDir:      *outputDir,
		StepsPerUpdate: *stepsPerUpdate,
	}

	if *headless {
		runHeadless(opts, rngSeed, *maxTicks)
		return
	}

	spriteFolder := cfg.Sprites.Folder
	if *sprites != "" {
		spriteFolder = *sprites
	}
	runGraphical(opts, rngSeed, *maxTicks, spriteFolder, *record)
}

// runHeadless runs the pure CPU simulation, no raylib involved.
func runHeadless(opts game.Options, seed int64, maxTicks int) {
	g, err := game.NewGame(opts, nil)
	if err != nil {
		slog.Error("failed to create simulation", "error", err)
		os.Exit(1)
	}
	defer g.Close()

	slog.Info("starting headless simulation",
		"seed", seed,
		"bodies", config.Cfg().Body.Count,
		"max_ticks", maxTicks,
	)

	for !g.Terminated() {
		g.UpdateHeadless()

		if maxTicks > 0 && int(g.Tick()) >= maxTicks {
			slog.Info("max ticks reached", "tick", g.Tick())
			return
		}
	}

	slog.Info("simulation ended", "tick", g.Tick(), "remaining", g.Alive())
}

// runGraphical runs the windowed simulation with optional video recording.
// The body count comes from the loaded sprite set, not the config.
func runGraphical(opts game.Options, seed int64, maxTicks int, spriteFolder string, record bool) {
	cfg := config.Cfg()

	paths, err := renderer.ListSprites(spriteFolder)
	if err != nil {
		slog.Error("failed to list sprites", "error", err)
		os.Exit(1)
	}
	cfg.SetBodyCount(len(paths))

	rl.InitWindow(int32(cfg.Screen.Width), int32(cfg.Screen.Height), "Image Smash Arena")
	defer rl.CloseWindow()
	rl.SetTargetFPS(int32(cfg.Screen.TargetFPS))

	atlas := renderer.LoadAtlas(paths, int32(cfg.Derived.Diameter))
	defer atlas.Unload()

	g, err := game.NewGame(opts, atlas.Handles())
	if err != nil {
		slog.Error("failed to create simulation", "error", err)
		os.Exit(1)
	}
	defer g.Close()

	var rec *renderer.Recorder
	if record || cfg.Recording.Enabled {
		rec, err = renderer.NewRecorder(cfg.Recording.OutputFile,
			cfg.Screen.Width, cfg.Screen.Height, cfg.Screen.TargetFPS)
		if err != nil {
			slog.Error("failed to start recorder", "error", err)
			os.Exit(1)
		}
	}

	slog.Info("starting simulation",
		"seed", seed,
		"bodies", atlas.Count(),
		"radius", cfg.Derived.Radius,
		"recording", rec != nil,
	)

	hud := ui.NewHUD()

	userQuit := false
	for !g.Terminated() {
		if rl.WindowShouldClose() {
			userQuit = true
			g.RequestStop()
		}

		g.Update()
		g.Draw(atlas, hud)

		if rec != nil {
			if err := rec.CaptureFrame(); err != nil {
				slog.Error("frame capture failed, recording stopped", "error", err)
				rec = nil
			}
		}

		if maxTicks > 0 && int(g.Tick()) >= maxTicks {
			break
		}
	}

	if rec != nil {
		if err := rec.Close(); err != nil {
			slog.Error("failed to finalize recording", "error", err)
		} else {
			slog.Info("video saved", "file", cfg.Recording.OutputFile)
		}
	}

	if userQuit {
		slog.Info("simulation stopped by user", "tick", g.Tick(), "remaining", g.Alive())
	} else {
		slog.Info("simulation ended", "tick", g.Tick(), "remaining", g.Alive())
	}
}
