package telemetry

import (
	"time"

	"github.com/pthm-cable/confetti/components"
)

// Collector follows one burst at a time and produces FrameStats and
// SessionStats.
type Collector struct {
	windowFrames int

	// Current session tracking
	session  int
	seed     int64
	spawned  int
	origin   components.Vec2
	canvas   components.Size
	frames   int
	last     FrameStats
	peakRise float64
	active   bool
}

// NewCollector creates a new stats collector.
// windowFrames: how many advanced frames pass between logged samples.
func NewCollector(windowFrames int) *Collector {
	if windowFrames < 1 {
		windowFrames = 1
	}
	return &Collector{windowFrames: windowFrames}
}

// BeginSession starts tracking a new burst. A session still open is dropped.
func (c *Collector) BeginSession(seed int64, origin components.Vec2, canvas components.Size, spawned int) {
	c.session++
	c.seed = seed
	c.spawned = spawned
	c.origin = origin
	c.canvas = canvas
	c.frames = 0
	c.last = FrameStats{Session: c.session, Alive: spawned}
	c.peakRise = 0
	c.active = true
}

// RecordFrame aggregates one advanced frame of the current session.
func (c *Collector) RecordFrame(elapsed time.Duration, particles []components.Particle) FrameStats {
	c.frames++

	fs := ComputeFrameStats(particles, c.origin, c.canvas)
	fs.Session = c.session
	fs.Frame = c.frames
	fs.ElapsedSec = elapsed.Seconds()

	if fs.Alive > 0 {
		if rise := c.origin.Y - fs.CentroidY; rise > c.peakRise {
			c.peakRise = rise
		}
	}

	c.last = fs
	return fs
}

// ShouldFlush returns true on frames that close a logging window.
func (c *Collector) ShouldFlush() bool {
	return c.frames > 0 && c.frames%c.windowFrames == 0
}

// EndSession closes the current session. ok is false when no session is open.
func (c *Collector) EndSession(reason string, elapsed time.Duration) (SessionStats, bool) {
	if !c.active {
		return SessionStats{}, false
	}
	c.active = false

	return SessionStats{
		Session:    c.session,
		Seed:       c.seed,
		EndReason:  reason,
		Frames:     c.frames,
		ElapsedSec: elapsed.Seconds(),
		Spawned:    c.spawned,
		FinalAlive: c.last.Alive,
		OriginX:    c.origin.X,
		OriginY:    c.origin.Y,
		PeakRise:   c.peakRise,
		FinalDrift: c.last.Drift,
		CentroidX:  c.last.CentroidX,
		CentroidY:  c.last.CentroidY,
	}, true
}

// Active reports whether a session is being tracked.
func (c *Collector) Active() bool {
	return c.active
}

// Session returns the index of the current or last session, starting at 1.
func (c *Collector) Session() int {
	return c.session
}
