package game

import (
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/confetti/ui"
)

// Draw renders the current frame. It only reads simulation state.
func (g *Game) Draw() {
	w := int32(g.screenWidth)
	h := int32(g.screenHeight)

	rl.BeginDrawing()
	rl.ClearBackground(rl.Black)

	g.background.Draw(w, h)
	g.confetti.Draw(g.session.View())

	g.drawUI(w, h)

	rl.EndDrawing()
}

// drawUI renders the HUD, the stats panel and the trigger button.
func (g *Game) drawUI(w, h int32) {
	running := g.session.Running()
	var elapsed time.Duration
	if running {
		elapsed = g.session.Elapsed(time.Now())
	}

	g.hud.Draw(ui.HUDData{
		Title:    "Confetti",
		Running:  running,
		Session:  g.collector.Session(),
		Alive:    g.sim.Count(),
		Elapsed:  elapsed,
		Duration: g.session.Duration(),
		FPS:      rl.GetFPS(),
		Seed:     g.seed,
	})

	if g.showStats {
		g.statsPanel.Draw(g.lastStats)
	}

	if g.button.Draw(w, h) {
		g.buttonPressed = true
	}

	g.hud.DrawControls(h, "[Space] burst  [Click] burst at cursor  [S] stats  [F11] fullscreen")
}
