// Package components defines the plain data types shared by the simulation,
// projection and rendering packages.
package components

// RGB is a colour with channels in [0, 1].
type RGB struct {
	R, G, B float64
}

// Bytes returns the colour as 8-bit channels.
func (c RGB) Bytes() (r, g, b uint8) {
	return toByte(c.R), toByte(c.G), toByte(c.B)
}

func toByte(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v*255 + 0.5)
}

// Palette is the fixed set of confetti colours.
var Palette = [...]RGB{
	{R: 1.0, G: 0.42, B: 0.42}, // red
	{R: 1.0, G: 0.82, B: 0.4},  // orange
	{R: 1.0, G: 0.96, B: 0.4},  // yellow
	{R: 0.4, G: 0.96, B: 0.4},  // green
	{R: 0.4, G: 0.82, B: 1.0},  // blue
	{R: 0.82, G: 0.4, B: 1.0},  // purple
	{R: 1.0, G: 0.4, B: 0.82},  // pink
}

// Particle is one confetti rectangle.
type Particle struct {
	ID        uint64
	Pos       Vec2
	Vel       Vec2
	Color     RGB
	Rot       Rotation
	Body      Body
	Opacity   float64
	WindForce float64 // scales the shared wind signal, fixed at spawn
}
