package shading

import (
	"math"
	"testing"

	"github.com/pthm-cable/confetti/components"
	"github.com/pthm-cable/confetti/config"
)

func testParams(t *testing.T) Params {
	t.Helper()
	config.MustInit("")
	return ParamsFromConfig(config.Cfg())
}

func particle(rotX, rotY, opacity float64) components.Particle {
	return components.Particle{
		ID:      1,
		Pos:     components.Vec2{X: 50, Y: 60},
		Color:   components.Palette[4],
		Rot:     components.Rotation{X: rotX, Y: rotY},
		Body:    components.Body{Width: 10, Height: 6},
		Opacity: opacity,
	}
}

func TestProjectDepthAndAlpha(t *testing.T) {
	prm := testParams(t)

	tests := []struct {
		name       string
		rotX, rotY float64
		opacity    float64
		wantScale  float64
		wantAlpha  float64
		wantTilt   float64
		wantBack   bool
	}{
		{"face on", 0, 0, 1, 1.0, 1.0, 0, false},
		{"edge on in yaw", 0, math.Pi / 2, 1, 0.5, 1.0, 0, false},
		{"back face", 0, math.Pi, 1, 1.0, 1.0, 0, true},
		{"edge on in pitch", math.Pi / 2, 0, 1, 1.0, 0.7, 0.3, false},
		{"half faded", 0, 0, 0.5, 1.0, 0.5, 0, false},
		{"unbounded angles", 4 * math.Pi, 6 * math.Pi, 1, 1.0, 1.0, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := particle(tt.rotX, tt.rotY, tt.opacity)
			q := Project(p, prm)

			if math.Abs(q.Width-10*tt.wantScale) > 1e-9 || math.Abs(q.Height-6*tt.wantScale) > 1e-9 {
				t.Errorf("size = %vx%v, want scale %v", q.Width, q.Height, tt.wantScale)
			}
			if math.Abs(q.Alpha-tt.wantAlpha) > 1e-9 {
				t.Errorf("alpha = %v, want %v", q.Alpha, tt.wantAlpha)
			}
			if math.Abs(q.Tilt-tt.wantTilt) > 1e-9 {
				t.Errorf("tilt = %v, want %v", q.Tilt, tt.wantTilt)
			}
			if q.BackFace != tt.wantBack {
				t.Errorf("back face = %v, want %v", q.BackFace, tt.wantBack)
			}
			if q.Center != p.Pos {
				t.Errorf("center = %v, want %v", q.Center, p.Pos)
			}
		})
	}
}

func TestProjectDoesNotMutate(t *testing.T) {
	prm := testParams(t)
	ps := []components.Particle{particle(1, 2, 0.8), particle(3, 4, 0.2)}
	before := append([]components.Particle(nil), ps...)

	quads := ProjectAll(nil, ps, prm)
	if len(quads) != 2 {
		t.Fatalf("got %d quads, want 2", len(quads))
	}
	for i := range ps {
		if ps[i] != before[i] {
			t.Fatalf("particle %d mutated: %+v", i, ps[i])
		}
	}
}

func TestShadeDarkensBackFace(t *testing.T) {
	prm := testParams(t)
	front := Project(particle(0, 0, 1), prm)
	back := Project(particle(0, math.Pi, 1), prm)

	if back.R > front.R || back.G > front.G || back.B > front.B {
		t.Errorf("back face %v,%v,%v brighter than front %v,%v,%v", back.R, back.G, back.B, front.R, front.G, front.B)
	}
	if back.B == front.B {
		t.Error("back face not shaded")
	}
}

func TestShadeIdentity(t *testing.T) {
	r, g, b := Shade(255, 107, 107, 1.0)
	if absDiff(r, 255) > 1 || absDiff(g, 107) > 1 || absDiff(b, 107) > 1 {
		t.Errorf("Shade(x, 1) = %d,%d,%d, want ~255,107,107", r, g, b)
	}
}

func TestCorners(t *testing.T) {
	q := Quad{Center: components.Vec2{X: 10, Y: 10}, Width: 4, Height: 2}
	c := q.Corners()
	want := [4]components.Vec2{{X: 8, Y: 9}, {X: 12, Y: 9}, {X: 12, Y: 11}, {X: 8, Y: 11}}
	for i := range c {
		if math.Abs(c[i].X-want[i].X) > 1e-9 || math.Abs(c[i].Y-want[i].Y) > 1e-9 {
			t.Errorf("corner %d = %v, want %v", i, c[i], want[i])
		}
	}

	q.Tilt = math.Pi / 2
	c = q.Corners()
	// A quarter turn swaps the extents.
	if math.Abs(c[0].X-11) > 1e-9 || math.Abs(c[0].Y-8) > 1e-9 {
		t.Errorf("rotated corner 0 = %v, want (11, 8)", c[0])
	}
}

func absDiff(a, b uint8) uint8 {
	if a > b {
		return a - b
	}
	return b - a
}
