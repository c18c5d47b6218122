// Package renderer draws simulation state with raylib.
package renderer

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/confetti/components"
	"github.com/pthm-cable/confetti/shading"
)

// ConfettiRenderer renders confetti particles as tilted, shaded rectangles.
type ConfettiRenderer struct {
	params shading.Params
	quads  []shading.Quad // reused across frames
}

// NewConfettiRenderer creates a new confetti renderer.
func NewConfettiRenderer(params shading.Params) *ConfettiRenderer {
	return &ConfettiRenderer{
		params: params,
		quads:  make([]shading.Quad, 0, 128),
	}
}

// Draw renders all particles. It only reads them.
func (r *ConfettiRenderer) Draw(particles []components.Particle) {
	r.quads = shading.ProjectAll(r.quads[:0], particles, r.params)

	for i := range r.quads {
		q := &r.quads[i]
		if q.Alpha <= 0 {
			continue
		}

		w := float32(q.Width)
		h := float32(q.Height)
		rec := rl.Rectangle{X: float32(q.Center.X), Y: float32(q.Center.Y), Width: w, Height: h}
		color := rl.Color{R: q.R, G: q.G, B: q.B, A: uint8(q.Alpha * 255)}

		rl.DrawRectanglePro(rec, rl.Vector2{X: w / 2, Y: h / 2}, float32(q.Tilt*180/math.Pi), color)
	}
}

// Count returns how many quads were projected on the last Draw.
func (r *ConfettiRenderer) Count() int {
	return len(r.quads)
}
