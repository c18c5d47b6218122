package systems

import "github.com/pthm-cable/confetti/config"

// Range is a half-open sampling interval [Min, Max).
type Range struct {
	Min, Max float64
}

// Lerp maps u in [0, 1) onto the range.
func (r Range) Lerp(u float64) float64 {
	return r.Min + u*(r.Max-r.Min)
}

// ConfettiParams holds everything the simulator needs from config,
// flattened so the per-particle loop does not chase config pointers.
type ConfettiParams struct {
	// Spawn ranges
	Angle       Range // radians, canvas y grows downward
	Speed       Range
	BaseSize    Range
	WidthScale  Range
	HeightScale Range
	RotXSpeed   Range
	RotYSpeed   Range
	WindForce   Range

	// Integration
	DT            float64
	VariableDT    bool
	MaxDT         float64
	Gravity       float64
	Drag          float64
	WindFrequency float64
	WindPhaseStep float64

	// Rotation couplings
	XVelCoupling      float64
	XWindCoupling     float64
	YVelCoupling      float64
	YWindCoupling     float64
	FallSpinThreshold float64
	FallSpinX         float64
	FallSpinY         float64

	// Fade
	FadeStart  float64 // seconds since trigger
	FadeWindow float64
}

// ParamsFromConfig builds simulator parameters from a loaded config.
func ParamsFromConfig(cfg *config.Config) ConfettiParams {
	b := cfg.Burst
	r := cfg.Rotation
	return ConfettiParams{
		Angle:       Range{cfg.Derived.AngleMin, cfg.Derived.AngleMax},
		Speed:       Range{b.SpeedMin, b.SpeedMax},
		BaseSize:    Range{b.SizeMin, b.SizeMax},
		WidthScale:  Range{b.WidthScaleMin, b.WidthScaleMax},
		HeightScale: Range{b.HeightScaleMin, b.HeightScaleMax},
		RotXSpeed:   Range{b.RotXSpeedMin, b.RotXSpeedMax},
		RotYSpeed:   Range{b.RotYSpeedMin, b.RotYSpeedMax},
		WindForce:   Range{-b.WindForceMax, b.WindForceMax},

		DT:            cfg.Derived.DT,
		VariableDT:    cfg.Physics.VariableDT,
		MaxDT:         cfg.Physics.MaxDT,
		Gravity:       cfg.Physics.Gravity,
		Drag:          cfg.Physics.Drag,
		WindFrequency: cfg.Physics.WindFrequency,
		WindPhaseStep: cfg.Physics.WindPhaseStep,

		XVelCoupling:      r.XVelocityCoupling,
		XWindCoupling:     r.XWindCoupling,
		YVelCoupling:      r.YVelocityCoupling,
		YWindCoupling:     r.YWindCoupling,
		FallSpinThreshold: r.FallSpinThreshold,
		FallSpinX:         r.FallSpinX,
		FallSpinY:         r.FallSpinY,

		FadeStart:  cfg.Derived.FadeStart,
		FadeWindow: cfg.Session.FadeWindow,
	}
}

// SessionParams holds the lifecycle settings of one burst.
type SessionParams struct {
	Count           int
	Duration        float64 // seconds
	OriginYFraction float64
}

// SessionParamsFromConfig builds session parameters from a loaded config.
func SessionParamsFromConfig(cfg *config.Config) SessionParams {
	return SessionParams{
		Count:           cfg.Burst.Count,
		Duration:        cfg.Session.Duration,
		OriginYFraction: cfg.Burst.OriginYFraction,
	}
}
