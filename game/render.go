package game

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/smash/config"
	"github.com/pthm-cable/smash/renderer"
	"github.com/pthm-cable/smash/ui"
)

// arenaBackground matches the near-black backdrop the sprites were tuned for.
var arenaBackground = rl.NewColor(10, 10, 15, 255)

// Power bar colors by remaining power ratio.
var (
	barBackground = rl.NewColor(40, 40, 40, 255)
	barHigh       = rl.NewColor(0, 255, 0, 255)
	barMid        = rl.NewColor(255, 165, 0, 255)
	barLow        = rl.NewColor(255, 0, 0, 255)
)

// Draw renders the current frame snapshot. The game core only supplies
// positions, radii and power ratios; all color and sprite decisions happen
// here.
func (g *Game) Draw(atlas *renderer.Atlas, hud *ui.HUD) {
	rl.BeginDrawing()
	rl.ClearBackground(arenaBackground)

	for _, bv := range g.frame {
		atlas.Draw(bv.Handle, bv.X, bv.Y)
		drawPowerBar(bv)
	}

	hud.Draw(ui.HUDData{
		Alive:      g.alive,
		Tick:       g.tick,
		Speed:      g.stepsPerUpdate,
		FPS:        rl.GetFPS(),
		Paused:     g.paused,
		Terminated: g.state == StateTerminated,
	})

	state := ui.DrawControls(ui.ControlState{
		Paused: g.paused,
		Steps:  g.stepsPerUpdate,
	}, int32(config.Cfg().Screen.Width))
	g.paused = state.Paused
	g.SetStepsPerUpdate(state.Steps)

	rl.EndDrawing()
}

// drawPowerBar draws the health bar above one body.
func drawPowerBar(bv BodyView) {
	barWidth := bv.Radius * 2
	const barHeight = 6

	barX := bv.X - bv.Radius
	barY := bv.Y - bv.Radius - 12

	rl.DrawRectangle(int32(barX), int32(barY), int32(barWidth), barHeight, barBackground)

	color := barLow
	switch {
	case bv.PowerRatio > 0.5:
		color = barHigh
	case bv.PowerRatio > 0.2:
		color = barMid
	}

	rl.DrawRectangle(int32(barX), int32(barY), int32(barWidth*bv.PowerRatio), barHeight, color)
}
