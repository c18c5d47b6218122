package telemetry

import (
	"log/slog"
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/pthm-cable/confetti/components"
)

// FrameStats holds aggregated statistics for one advanced frame.
type FrameStats struct {
	Session    int     `csv:"session"`
	Frame      int     `csv:"frame"`
	ElapsedSec float64 `csv:"elapsed"`

	Alive    int `csv:"alive"`
	OnCanvas int `csv:"on_canvas"`

	OpacityMean float64 `csv:"opacity_mean"`
	OpacityStd  float64 `csv:"opacity_std"`

	SpeedMean float64 `csv:"speed_mean"`
	SpeedMax  float64 `csv:"speed_max"`

	// Vertical distribution (canvas y grows downward)
	PosYP10 float64 `csv:"pos_y_p10"`
	PosYP50 float64 `csv:"pos_y_p50"`
	PosYP90 float64 `csv:"pos_y_p90"`

	CentroidX float64 `csv:"centroid_x"`
	CentroidY float64 `csv:"centroid_y"`
	SpreadX   float64 `csv:"spread_x"` // max x - min x

	// Mean distance from the burst origin
	Drift float64 `csv:"drift"`
}

// SessionStats summarises one burst from trigger to idle.
type SessionStats struct {
	Session    int     `csv:"session"`
	Seed       int64   `csv:"seed"`
	EndReason  string  `csv:"end_reason"`
	Frames     int     `csv:"frames"`
	ElapsedSec float64 `csv:"elapsed"`
	Spawned    int     `csv:"spawned"`
	FinalAlive int     `csv:"final_alive"`
	OriginX    float64 `csv:"origin_x"`
	OriginY    float64 `csv:"origin_y"`
	PeakRise   float64 `csv:"peak_rise"` // highest climb of the centroid above origin
	FinalDrift float64 `csv:"final_drift"`
	CentroidX  float64 `csv:"centroid_x"`
	CentroidY  float64 `csv:"centroid_y"`
}

// Percentile calculates the p-th percentile of a sorted slice.
// p should be in [0, 1]. Returns 0 if slice is empty.
func Percentile(sorted []float64, p float64) float64 {
	if len(sorted) == 0 {
		return 0
	}
	return stat.Quantile(math.Min(math.Max(p, 0), 1), stat.LinInterp, sorted, nil)
}

// ComputeFrameStats aggregates the particle set of one frame.
func ComputeFrameStats(particles []components.Particle, origin components.Vec2, canvas components.Size) FrameStats {
	n := len(particles)
	fs := FrameStats{Alive: n}
	if n == 0 {
		return fs
	}

	opacity := make([]float64, n)
	speed := make([]float64, n)
	xs := make([]float64, n)
	ys := make([]float64, n)
	drift := make([]float64, n)

	for i := range particles {
		p := &particles[i]
		opacity[i] = p.Opacity
		speed[i] = p.Vel.Len()
		xs[i] = p.Pos.X
		ys[i] = p.Pos.Y
		drift[i] = p.Pos.Sub(origin).Len()
		if canvas.Contains(p.Pos) {
			fs.OnCanvas++
		}
	}

	fs.OpacityMean, fs.OpacityStd = stat.PopMeanStdDev(opacity, nil)
	fs.SpeedMean = stat.Mean(speed, nil)
	fs.SpeedMax = floats.Max(speed)
	fs.CentroidX = stat.Mean(xs, nil)
	fs.CentroidY = stat.Mean(ys, nil)
	fs.SpreadX = floats.Max(xs) - floats.Min(xs)
	fs.Drift = stat.Mean(drift, nil)

	sort.Float64s(ys)
	fs.PosYP10 = Percentile(ys, 0.10)
	fs.PosYP50 = Percentile(ys, 0.50)
	fs.PosYP90 = Percentile(ys, 0.90)

	return fs
}

// LogValue implements slog.LogValuer for structured logging.
func (s FrameStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("session", s.Session),
		slog.Int("frame", s.Frame),
		slog.Float64("elapsed", s.ElapsedSec),
		slog.Int("alive", s.Alive),
		slog.Int("on_canvas", s.OnCanvas),
		slog.Float64("opacity_mean", s.OpacityMean),
		slog.Float64("speed_mean", s.SpeedMean),
		slog.Float64("speed_max", s.SpeedMax),
		slog.Float64("pos_y_p50", s.PosYP50),
		slog.Float64("centroid_x", s.CentroidX),
		slog.Float64("centroid_y", s.CentroidY),
		slog.Float64("drift", s.Drift),
	)
}

// LogStats logs the frame stats using slog.
func (s FrameStats) LogStats() {
	slog.Info("frame", "stats", s)
}

// LogValue implements slog.LogValuer for structured logging.
func (s SessionStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("session", s.Session),
		slog.Int64("seed", s.Seed),
		slog.String("end_reason", s.EndReason),
		slog.Int("frames", s.Frames),
		slog.Float64("elapsed", s.ElapsedSec),
		slog.Int("spawned", s.Spawned),
		slog.Int("final_alive", s.FinalAlive),
		slog.Float64("peak_rise", s.PeakRise),
		slog.Float64("final_drift", s.FinalDrift),
	)
}
