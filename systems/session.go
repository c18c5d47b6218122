package systems

import (
	"time"

	"github.com/pthm-cable/confetti/components"
)

// TickResult reports what a Session.Tick call did.
type TickResult uint8

const (
	TickIdle     TickResult = iota // no session running
	TickAdvanced                   // particles stepped
	TickExpired                    // duration exceeded, session cleared
	TickDrained                    // particle set was already empty, session cleared
)

// String returns the name used in logs and CSV output.
func (r TickResult) String() string {
	switch r {
	case TickIdle:
		return "idle"
	case TickAdvanced:
		return "advanced"
	case TickExpired:
		return "expired"
	case TickDrained:
		return "drained"
	default:
		return "unknown"
	}
}

// Ended reports whether the tick closed the session.
func (r TickResult) Ended() bool {
	return r == TickExpired || r == TickDrained
}

// Session drives one burst from trigger to idle. It owns the start time and
// forwards each frame to the simulator.
type Session struct {
	sim      *ParticleSimulator
	params   SessionParams
	duration time.Duration

	start   time.Time
	running bool
	origin  components.Vec2
	canvas  components.Size
	frames  int
}

// NewSession creates an idle session around sim.
func NewSession(sim *ParticleSimulator, params SessionParams) *Session {
	return &Session{
		sim:      sim,
		params:   params,
		duration: time.Duration(params.Duration * float64(time.Second)),
	}
}

// Trigger starts a burst at origin, replacing any burst in flight.
func (s *Session) Trigger(now time.Time, origin components.Vec2, canvas components.Size) {
	s.start = now
	s.running = true
	s.origin = origin
	s.canvas = canvas
	s.frames = 0
	s.sim.Spawn(origin, s.params.Count)
}

// TriggerDefault starts a burst from the default origin of canvas.
func (s *Session) TriggerDefault(now time.Time, canvas components.Size) {
	s.Trigger(now, s.DefaultOrigin(canvas), canvas)
}

// DefaultOrigin returns the horizontal centre of canvas at the configured
// height fraction.
func (s *Session) DefaultOrigin(canvas components.Size) components.Vec2 {
	return components.Vec2{X: canvas.W / 2, Y: canvas.H * s.params.OriginYFraction}
}

// Tick advances the running burst to now. The session ends once more than
// the configured duration has passed, whatever the particles' opacity.
func (s *Session) Tick(now time.Time) (TickResult, time.Duration) {
	if !s.running {
		return TickIdle, 0
	}

	elapsed := now.Sub(s.start)
	if elapsed < 0 {
		elapsed = 0
	}

	if elapsed > s.duration {
		s.stop()
		return TickExpired, elapsed
	}
	if s.sim.Count() == 0 {
		s.stop()
		return TickDrained, elapsed
	}

	s.sim.Advance(elapsed)
	s.frames++
	return TickAdvanced, elapsed
}

func (s *Session) stop() {
	s.sim.Clear()
	s.running = false
	s.start = time.Time{}
}

// Running reports whether a burst is in flight.
func (s *Session) Running() bool {
	return s.running
}

// StartTime returns the trigger time and whether a burst is running.
func (s *Session) StartTime() (time.Time, bool) {
	return s.start, s.running
}

// Elapsed returns the time since trigger, or 0 when idle.
func (s *Session) Elapsed(now time.Time) time.Duration {
	if !s.running {
		return 0
	}
	return now.Sub(s.start)
}

// Duration returns the hard cutoff.
func (s *Session) Duration() time.Duration {
	return s.duration
}

// Frames returns the number of advanced frames in the current burst.
func (s *Session) Frames() int {
	return s.frames
}

// Origin returns the origin of the last trigger.
func (s *Session) Origin() components.Vec2 {
	return s.origin
}

// Canvas returns the canvas size recorded at the last trigger.
func (s *Session) Canvas() components.Size {
	return s.canvas
}

// Particles returns a snapshot of the active set for rendering.
func (s *Session) Particles() []components.Particle {
	return s.sim.Particles()
}

// View returns the active set without copying; see ParticleSimulator.View.
func (s *Session) View() []components.Particle {
	return s.sim.View()
}
