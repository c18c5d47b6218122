package telemetry

import (
	"testing"
	"time"

	"github.com/pthm-cable/confetti/components"
)

func TestCollectorSession(t *testing.T) {
	c := NewCollector(2)
	origin := components.Vec2{X: 100, Y: 100}
	c.BeginSession(42, origin, components.Size{W: 200, H: 200}, 2)

	frames := [][]components.Particle{
		{{Pos: components.Vec2{X: 100, Y: 90}, Opacity: 1}, {Pos: components.Vec2{X: 100, Y: 80}, Opacity: 1}},
		{{Pos: components.Vec2{X: 100, Y: 70}, Opacity: 1}, {Pos: components.Vec2{X: 100, Y: 70}, Opacity: 1}},
		{{Pos: components.Vec2{X: 100, Y: 95}, Opacity: 0.5}},
	}

	var flushed []int
	for i, ps := range frames {
		fs := c.RecordFrame(time.Duration(i+1)*time.Second/60, ps)
		if fs.Frame != i+1 || fs.Session != 1 {
			t.Fatalf("frame stats = %+v", fs)
		}
		if c.ShouldFlush() {
			flushed = append(flushed, fs.Frame)
		}
	}
	if len(flushed) != 1 || flushed[0] != 2 {
		t.Errorf("flushed frames = %v, want [2]", flushed)
	}

	ss, ok := c.EndSession("expired", 4*time.Second)
	if !ok {
		t.Fatal("EndSession reported no open session")
	}
	if ss.Session != 1 || ss.Seed != 42 || ss.Frames != 3 || ss.EndReason != "expired" {
		t.Errorf("session stats = %+v", ss)
	}
	if ss.Spawned != 2 || ss.FinalAlive != 1 {
		t.Errorf("spawned/final = %d/%d, want 2/1", ss.Spawned, ss.FinalAlive)
	}
	if ss.PeakRise != 30 {
		t.Errorf("peak rise = %v, want 30", ss.PeakRise)
	}
	if ss.FinalDrift != 5 {
		t.Errorf("final drift = %v, want 5", ss.FinalDrift)
	}

	if _, ok := c.EndSession("expired", 0); ok {
		t.Error("second EndSession reported an open session")
	}
	if c.Active() {
		t.Error("collector still active")
	}
}

func TestCollectorRestartsOnBegin(t *testing.T) {
	c := NewCollector(0)
	c.BeginSession(1, components.Vec2{}, components.Size{}, 5)
	c.RecordFrame(time.Second, nil)
	c.BeginSession(2, components.Vec2{}, components.Size{}, 5)

	if c.Session() != 2 {
		t.Errorf("session = %d, want 2", c.Session())
	}
	ss, _ := c.EndSession("drained", 0)
	if ss.Frames != 0 || ss.Seed != 2 || ss.FinalAlive != 5 {
		t.Errorf("restarted session stats = %+v", ss)
	}
}
