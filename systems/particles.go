package systems

import (
	"math"
	"time"

	"github.com/pthm-cable/confetti/components"
)

// RandSource is the random stream consumed by Spawn.
// *rand.Rand satisfies it.
type RandSource interface {
	Float64() float64
}

// ParticleSimulator owns the active confetti set.
// It is not safe for concurrent use; one caller advances it once per frame.
type ParticleSimulator struct {
	particles   []components.Particle
	params      ConfettiParams
	rng         RandSource
	nextID      uint64
	lastElapsed float64 // seconds, only used with VariableDT
}

// NewParticleSimulator creates a simulator drawing spawn parameters from rng.
func NewParticleSimulator(params ConfettiParams, rng RandSource) *ParticleSimulator {
	return &ParticleSimulator{
		particles: make([]components.Particle, 0, 128),
		params:    params,
		rng:       rng,
		nextID:    1,
	}
}

// Spawn replaces the active set with count new particles at origin.
func (s *ParticleSimulator) Spawn(origin components.Vec2, count int) {
	s.particles = s.particles[:0]
	s.lastElapsed = 0
	for i := 0; i < count; i++ {
		s.particles = append(s.particles, s.newParticle(origin))
	}
}

// newParticle draws one particle. The draw order is fixed so that a seeded
// source reproduces the same burst.
func (s *ParticleSimulator) newParticle(origin components.Vec2) components.Particle {
	p := &s.params

	angle := p.Angle.Lerp(s.rng.Float64())
	speed := p.Speed.Lerp(s.rng.Float64())

	base := p.BaseSize.Lerp(s.rng.Float64())
	width := base * p.WidthScale.Lerp(s.rng.Float64())
	height := base * p.HeightScale.Lerp(s.rng.Float64())

	colorIdx := int(s.rng.Float64() * float64(len(components.Palette)))
	if colorIdx >= len(components.Palette) {
		colorIdx = len(components.Palette) - 1
	}

	rot := components.Rotation{
		X: s.rng.Float64() * 2 * math.Pi,
		Y: s.rng.Float64() * 2 * math.Pi,
	}
	rot.XSpeed = p.RotXSpeed.Lerp(s.rng.Float64())
	rot.YSpeed = p.RotYSpeed.Lerp(s.rng.Float64())

	wind := p.WindForce.Lerp(s.rng.Float64())

	id := s.nextID
	s.nextID++

	return components.Particle{
		ID:        id,
		Pos:       origin,
		Vel:       components.Vec2{X: speed * math.Cos(angle), Y: speed * math.Sin(angle)},
		Color:     components.Palette[colorIdx],
		Rot:       rot,
		Body:      components.Body{Width: width, Height: height},
		Opacity:   1.0,
		WindForce: wind,
	}
}

// Advance steps every particle once and prunes the fully faded ones.
// elapsed is the time since the burst was triggered. Returns the number of
// particles removed.
func (s *ParticleSimulator) Advance(elapsed time.Duration) int {
	p := &s.params
	e := elapsed.Seconds()
	dt := s.stepDT(e)

	for i := range s.particles {
		pt := &s.particles[i]

		pt.Vel.Y += p.Gravity * dt

		wind := math.Sin(e*p.WindFrequency+float64(i)*p.WindPhaseStep) * pt.WindForce
		pt.Vel.X += wind * dt

		// Drag is per step, not scaled by dt
		pt.Vel.X *= p.Drag
		pt.Vel.Y *= p.Drag

		pt.Pos.X += pt.Vel.X * dt
		pt.Pos.Y += pt.Vel.Y * dt

		pt.Rot.X += (pt.Rot.XSpeed + pt.Vel.Y*p.XVelCoupling + wind*p.XWindCoupling) * dt
		pt.Rot.Y += (pt.Rot.YSpeed + pt.Vel.X*p.YVelCoupling + wind*p.YWindCoupling) * dt

		// Extra spin once falling fast
		if fall := math.Abs(pt.Vel.Y); fall > p.FallSpinThreshold {
			pt.Rot.X += fall * p.FallSpinX * dt
			pt.Rot.Y += fall * p.FallSpinY * dt
		}

		if e > p.FadeStart {
			pt.Opacity = FadeOpacity(e, p.FadeStart, p.FadeWindow)
		}
	}

	return s.prune()
}

// stepDT returns the integration step for this frame.
func (s *ParticleSimulator) stepDT(elapsed float64) float64 {
	if !s.params.VariableDT {
		return s.params.DT
	}
	dt := elapsed - s.lastElapsed
	s.lastElapsed = elapsed
	if dt < 0 {
		dt = 0
	}
	if s.params.MaxDT > 0 && dt > s.params.MaxDT {
		dt = s.params.MaxDT
	}
	return dt
}

// prune drops particles with no opacity left, keeping order.
func (s *ParticleSimulator) prune() int {
	alive := 0
	for i := range s.particles {
		if s.particles[i].Opacity <= 0 {
			continue
		}
		s.particles[alive] = s.particles[i]
		alive++
	}
	removed := len(s.particles) - alive
	s.particles = s.particles[:alive]
	return removed
}

// FadeOpacity is the linear fade applied once elapsed passes fadeStart.
func FadeOpacity(elapsed, fadeStart, fadeWindow float64) float64 {
	progress := (elapsed - fadeStart) / fadeWindow
	return math.Max(0, 1.0-progress)
}

// Particles returns a copy of the active set, safe to hold across frames.
func (s *ParticleSimulator) Particles() []components.Particle {
	out := make([]components.Particle, len(s.particles))
	copy(out, s.particles)
	return out
}

// View returns the active set without copying. Callers must not modify it
// or keep it past the next Spawn/Advance.
func (s *ParticleSimulator) View() []components.Particle {
	return s.particles
}

// Clear empties the active set.
func (s *ParticleSimulator) Clear() {
	s.particles = s.particles[:0]
}

// Count returns the current number of active particles.
func (s *ParticleSimulator) Count() int {
	return len(s.particles)
}
