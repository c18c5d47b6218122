package game

import (
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/confetti/components"
)

// handleInput processes keyboard and mouse input.
func (g *Game) handleInput(now time.Time) {
	g.handleResize()

	if rl.IsKeyPressed(rl.KeyF11) {
		rl.ToggleFullscreen()
	}
	if rl.IsKeyPressed(rl.KeyS) {
		g.showStats = !g.showStats
	}

	// Button press is reported by the previous Draw
	if g.buttonPressed {
		g.buttonPressed = false
		g.trigger(now, g.session.DefaultOrigin(g.canvas()))
		return
	}

	if rl.IsKeyPressed(rl.KeySpace) {
		g.trigger(now, g.session.DefaultOrigin(g.canvas()))
		return
	}

	if rl.IsMouseButtonPressed(rl.MouseButtonLeft) {
		mouse := rl.GetMousePosition()
		if g.button.Contains(mouse, int32(g.screenWidth), int32(g.screenHeight)) {
			return
		}
		g.trigger(now, components.Vec2{X: float64(mouse.X), Y: float64(mouse.Y)})
	}
}

// handleResize checks for window resize and propagates new dimensions.
// A running burst keeps the canvas it was triggered with.
func (g *Game) handleResize() {
	if !rl.IsWindowResized() {
		return
	}
	w := float32(rl.GetScreenWidth())
	h := float32(rl.GetScreenHeight())
	if w == g.screenWidth && h == g.screenHeight {
		return
	}
	g.screenWidth = w
	g.screenHeight = h

	if g.statsPanel != nil {
		g.statsPanel.SetPosition(int32(w)-230, 10)
	}
}
