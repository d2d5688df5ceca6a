package game

import rl "github.com/gen2brain/raylib-go/raylib"

// handleInput processes keyboard input.
func (g *Game) handleInput() {
	if rl.IsKeyPressed(rl.KeySpace) {
		g.paused = !g.paused
	}

	// Steps-per-update control with < > keys (comma and period)
	if rl.IsKeyPressed(rl.KeyComma) && g.stepsPerUpdate > 1 {
		g.stepsPerUpdate--
	}
	if rl.IsKeyPressed(rl.KeyPeriod) && g.stepsPerUpdate < 10 {
		g.stepsPerUpdate++
	}
}

// SetPaused sets the pause state (used by the on-screen controls).
func (g *Game) SetPaused(paused bool) {
	g.paused = paused
}

// StepsPerUpdate returns the current simulation speed multiplier.
func (g *Game) StepsPerUpdate() int {
	return g.stepsPerUpdate
}

// SetStepsPerUpdate sets the simulation speed multiplier, clamped to [1, 10].
func (g *Game) SetStepsPerUpdate(steps int) {
	if steps < 1 {
		steps = 1
	} else if steps > 10 {
		steps = 10
	}
	g.stepsPerUpdate = steps
}
