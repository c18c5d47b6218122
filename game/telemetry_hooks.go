package game

import (
	"log/slog"
	"time"

	"github.com/pthm-cable/confetti/telemetry"
)

// recordFrame aggregates the frame just advanced and flushes on window boundaries.
func (g *Game) recordFrame(elapsed time.Duration) {
	stats := g.collector.RecordFrame(elapsed, g.session.View())
	g.lastStats = stats

	g.perfCollector.StartPhase(telemetry.PhaseOutput)
	if err := g.outputManager.WriteFrame(stats); err != nil {
		slog.Error("failed to write frame", "error", err)
	}

	if g.logStats && g.collector.ShouldFlush() {
		stats.LogStats()
		slog.Info("perf", "stats", g.perfCollector.Stats())
	}
}

// endSession closes the tracked session and writes its summary.
func (g *Game) endSession(reason string, elapsed time.Duration) {
	stats, ok := g.collector.EndSession(reason, elapsed)
	if !ok {
		return
	}
	g.sessionsDone++

	slog.Info("session ended",
		"session", stats.Session,
		"reason", reason,
		"elapsed", elapsed.Seconds(),
		"frames", stats.Frames,
		"remaining", stats.FinalAlive,
	)
	if g.logStats {
		slog.Info("session", "stats", stats)
	}

	if err := g.outputManager.WriteSession(stats); err != nil {
		slog.Error("failed to write session", "error", err)
	}
	if err := g.outputManager.WritePerf(g.perfCollector.Stats(), stats.Session); err != nil {
		slog.Error("failed to write perf", "error", err)
	}
}
