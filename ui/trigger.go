package ui

import (
	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	buttonWidth  = 160
	buttonHeight = 44
	buttonMargin = 50 // distance from the bottom edge
)

// TriggerButton is the "Confetti!" button anchored bottom-centre.
type TriggerButton struct {
	Label string
}

// NewTriggerButton creates the trigger button.
func NewTriggerButton() *TriggerButton {
	return &TriggerButton{Label: "Confetti!"}
}

// Bounds returns the button rectangle for the given screen size.
func (b *TriggerButton) Bounds(screenW, screenH int32) rl.Rectangle {
	return rl.Rectangle{
		X:      float32(screenW-buttonWidth) / 2,
		Y:      float32(screenH - buttonMargin - buttonHeight),
		Width:  buttonWidth,
		Height: buttonHeight,
	}
}

// Contains reports whether a screen point lies on the button.
func (b *TriggerButton) Contains(pt rl.Vector2, screenW, screenH int32) bool {
	return rl.CheckCollisionPointRec(pt, b.Bounds(screenW, screenH))
}

// Draw renders the button and reports whether it was pressed this frame.
func (b *TriggerButton) Draw(screenW, screenH int32) bool {
	bounds := b.Bounds(screenW, screenH)

	// Gradient backdrop behind the raygui control
	rl.DrawRectangleGradientH(
		int32(bounds.X)-3, int32(bounds.Y)-3, int32(bounds.Width)+6, int32(bounds.Height)+6,
		rl.Color{R: 255, G: 107, B: 107, A: 255},
		rl.Color{R: 209, G: 102, B: 255, A: 255},
	)
	return gui.Button(bounds, b.Label)
}
