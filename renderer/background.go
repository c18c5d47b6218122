package renderer

import rl "github.com/gen2brain/raylib-go/raylib"

// BackgroundRenderer fills the canvas with a vertical gradient derived from a base colour.
type BackgroundRenderer struct {
	top    rl.Color
	bottom rl.Color
}

// NewBackgroundRenderer creates a new background renderer.
func NewBackgroundRenderer(baseR, baseG, baseB uint8) *BackgroundRenderer {
	return &BackgroundRenderer{
		top:    rl.Color{R: baseR, G: baseG, B: baseB, A: 255},
		bottom: rl.Color{R: baseR / 2, G: baseG / 2, B: baseB / 2, A: 255},
	}
}

// Draw renders the gradient over the whole screen.
func (b *BackgroundRenderer) Draw(screenW, screenH int32) {
	rl.DrawRectangleGradientV(0, 0, screenW, screenH, b.top, b.bottom)
}
