// Package shading projects simulated particles onto flat drawable quads.
//
// The flutter effect is faked rather than projected: yaw shrinks the
// rectangle toward DepthMin of its size, pitch tilts it in-plane and fades
// it toward EdgeAlphaMin, and the back face is drawn darker.
package shading

import (
	"math"

	"github.com/crazy3lf/colorconv"

	"github.com/pthm-cable/confetti/components"
	"github.com/pthm-cable/confetti/config"
)

// Params controls the pseudo-3D projection.
type Params struct {
	DepthMin     float64
	TiltMax      float64 // radians
	EdgeAlphaMin float64
	BackShade    float64 // HSV value multiplier for the back face
}

// ParamsFromConfig builds projection parameters from a loaded config.
func ParamsFromConfig(cfg *config.Config) Params {
	return Params{
		DepthMin:     cfg.Render.DepthMin,
		TiltMax:      cfg.Render.TiltMax,
		EdgeAlphaMin: cfg.Render.EdgeAlphaMin,
		BackShade:    cfg.Render.BackShade,
	}
}

// Quad is a drawable rectangle centred on Center and rotated by Tilt.
type Quad struct {
	Center   components.Vec2
	Width    float64
	Height   float64
	Tilt     float64 // radians, clockwise in canvas space
	R, G, B  uint8
	Alpha    float64 // [0, 1]
	BackFace bool
}

// Project maps one particle to its quad. It never modifies p.
func Project(p components.Particle, prm Params) Quad {
	cosY := math.Cos(p.Rot.Y)
	cosX := math.Abs(math.Cos(p.Rot.X))

	depth := prm.DepthMin + (1-prm.DepthMin)*math.Abs(cosY)
	alpha := p.Opacity * (prm.EdgeAlphaMin + (1-prm.EdgeAlphaMin)*cosX)

	back := cosY < 0
	r, g, b := p.Color.Bytes()
	if back {
		r, g, b = Shade(r, g, b, prm.BackShade)
	}

	return Quad{
		Center:   p.Pos,
		Width:    p.Body.Width * depth,
		Height:   p.Body.Height * depth,
		Tilt:     math.Sin(p.Rot.X) * prm.TiltMax,
		R:        r,
		G:        g,
		B:        b,
		Alpha:    clamp01(alpha),
		BackFace: back,
	}
}

// ProjectAll appends the quads for particles to dst and returns it.
func ProjectAll(dst []Quad, particles []components.Particle, prm Params) []Quad {
	for i := range particles {
		dst = append(dst, Project(particles[i], prm))
	}
	return dst
}

// Shade scales the HSV value of a colour by factor, keeping hue and saturation.
func Shade(r, g, b uint8, factor float64) (uint8, uint8, uint8) {
	h, s, v := colorconv.RGBToHSV(r, g, b)
	sr, sg, sb, err := colorconv.HSVToRGB(h, s, clamp01(v*factor))
	if err != nil {
		return r, g, b
	}
	return sr, sg, sb
}

// Corners returns the quad's corners clockwise from top-left.
func (q Quad) Corners() [4]components.Vec2 {
	hw, hh := q.Width/2, q.Height/2
	sin, cos := math.Sincos(q.Tilt)
	local := [4]components.Vec2{{X: -hw, Y: -hh}, {X: hw, Y: -hh}, {X: hw, Y: hh}, {X: -hw, Y: hh}}

	var out [4]components.Vec2
	for i, c := range local {
		out[i] = components.Vec2{
			X: q.Center.X + c.X*cos - c.Y*sin,
			Y: q.Center.Y + c.X*sin + c.Y*cos,
		}
	}
	return out
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
