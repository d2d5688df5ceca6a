// Package ui renders the heads-up display and on-screen controls.
package ui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// HUDData holds the data needed to render the main HUD.
type HUDData struct {
	Alive      int
	Tick       int32
	Speed      int
	FPS        int32
	Paused     bool
	Terminated bool
}

// HUD renders the main heads-up display.
type HUD struct{}

// NewHUD creates a new HUD renderer.
func NewHUD() *HUD {
	return &HUD{}
}

// Draw renders the HUD.
func (h *HUD) Draw(data HUDData) {
	rl.DrawText(fmt.Sprintf("Alive: %d", data.Alive), 20, 20, 22, rl.White)
	rl.DrawText(
		fmt.Sprintf("Tick: %d | Speed: %dx [</>] | FPS: %d", data.Tick, data.Speed, data.FPS),
		20, 48, 16, rl.LightGray,
	)

	switch {
	case data.Terminated:
		rl.DrawText("FINISHED", 20, 70, 20, rl.Gold)
	case data.Paused:
		rl.DrawText("PAUSED", 20, 70, 20, rl.Yellow)
	}
}
