package ui

import (
	"fmt"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// ControlState mirrors the game settings the control panel can change.
type ControlState struct {
	Paused bool
	Steps  int
}

// DrawControls renders the control panel in the top-right corner and returns
// the possibly-updated state.
func DrawControls(state ControlState, screenWidth int32) ControlState {
	x := float32(screenWidth) - 130

	label := "Pause"
	if state.Paused {
		label = "Resume"
	}
	if gui.Button(rl.Rectangle{X: x, Y: 15, Width: 110, Height: 26}, label) {
		state.Paused = !state.Paused
	}

	steps := gui.SliderBar(
		rl.Rectangle{X: x, Y: 50, Width: 110, Height: 18},
		"1x", fmt.Sprintf("%dx", state.Steps),
		float32(state.Steps), 1, 10,
	)
	state.Steps = int(steps + 0.5)

	return state
}
