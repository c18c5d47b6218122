package telemetry

import (
	"math"
	"testing"

	"github.com/pthm-cable/confetti/components"
)

func TestPercentile(t *testing.T) {
	tests := []struct {
		name   string
		sorted []float64
		p      float64
		want   float64
	}{
		{"empty slice", []float64{}, 0.5, 0},
		{"single element", []float64{5.0}, 0.5, 5.0},
		{"p0", []float64{1, 2, 3, 4, 5}, 0.0, 1.0},
		{"p100", []float64{1, 2, 3, 4, 5}, 1.0, 5.0},
		{"clamped below", []float64{1, 2, 3}, -0.5, 1.0},
		{"clamped above", []float64{1, 2, 3}, 1.5, 3.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Percentile(tt.sorted, tt.p)
			if math.Abs(got-tt.want) > 0.001 {
				t.Errorf("Percentile(%v, %v) = %v, want %v", tt.sorted, tt.p, got, tt.want)
			}
		})
	}
}

func TestPercentileOrdered(t *testing.T) {
	sorted := []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	p10 := Percentile(sorted, 0.1)
	p50 := Percentile(sorted, 0.5)
	p90 := Percentile(sorted, 0.9)

	if !(1 <= p10 && p10 <= p50 && p50 <= p90 && p90 <= 10) {
		t.Errorf("percentiles out of order: %v %v %v", p10, p50, p90)
	}
}

func TestComputeFrameStats(t *testing.T) {
	origin := components.Vec2{X: 0, Y: 0}
	canvas := components.Size{W: 100, H: 100}
	particles := []components.Particle{
		{Pos: components.Vec2{X: 10, Y: 0}, Vel: components.Vec2{X: 3, Y: 4}, Opacity: 1.0},
		{Pos: components.Vec2{X: -10, Y: 0}, Vel: components.Vec2{X: 0, Y: 10}, Opacity: 0.5},
		{Pos: components.Vec2{X: 30, Y: 40}, Vel: components.Vec2{}, Opacity: 0.75},
	}

	fs := ComputeFrameStats(particles, origin, canvas)

	if fs.Alive != 3 {
		t.Errorf("alive = %d, want 3", fs.Alive)
	}
	if fs.OnCanvas != 2 {
		t.Errorf("on canvas = %d, want 2", fs.OnCanvas)
	}
	if math.Abs(fs.OpacityMean-0.75) > 1e-9 {
		t.Errorf("opacity mean = %v, want 0.75", fs.OpacityMean)
	}
	wantStd := math.Sqrt((0.0625 + 0.0625 + 0) / 3)
	if math.Abs(fs.OpacityStd-wantStd) > 1e-9 {
		t.Errorf("opacity std = %v, want %v", fs.OpacityStd, wantStd)
	}
	if math.Abs(fs.SpeedMean-5) > 1e-9 || fs.SpeedMax != 10 {
		t.Errorf("speed mean/max = %v/%v, want 5/10", fs.SpeedMean, fs.SpeedMax)
	}
	if math.Abs(fs.CentroidX-10) > 1e-9 || math.Abs(fs.CentroidY-40.0/3) > 1e-9 {
		t.Errorf("centroid = (%v, %v)", fs.CentroidX, fs.CentroidY)
	}
	if fs.SpreadX != 40 {
		t.Errorf("spread x = %v, want 40", fs.SpreadX)
	}
	if math.Abs(fs.Drift-70.0/3) > 1e-9 {
		t.Errorf("drift = %v, want %v", fs.Drift, 70.0/3)
	}
	if fs.PosYP10 > fs.PosYP50 || fs.PosYP50 > fs.PosYP90 {
		t.Errorf("y percentiles out of order: %v %v %v", fs.PosYP10, fs.PosYP50, fs.PosYP90)
	}
}

func TestComputeFrameStatsEmpty(t *testing.T) {
	fs := ComputeFrameStats(nil, components.Vec2{}, components.Size{W: 1, H: 1})
	if fs != (FrameStats{}) {
		t.Errorf("empty frame stats = %+v, want zero", fs)
	}
}
