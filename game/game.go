// Package game wires the confetti session to the clock, input, telemetry and
// rendering.
package game

import (
	"log/slog"
	"math/rand"
	"time"

	"github.com/pthm-cable/confetti/components"
	"github.com/pthm-cable/confetti/config"
	"github.com/pthm-cable/confetti/renderer"
	"github.com/pthm-cable/confetti/shading"
	"github.com/pthm-cable/confetti/systems"
	"github.com/pthm-cable/confetti/telemetry"
	"github.com/pthm-cable/confetti/ui"
)

// Options configures a game instance.
type Options struct {
	Seed       int64
	LogStats   bool   // output per-window frame stats via slog
	OutputDir  string // directory for CSV output (empty = disabled)
	Headless   bool   // no window, synthetic clock
	VariableDT bool   // integrate with the real frame delta
}

// Game holds the complete demo state.
type Game struct {
	cfg  *config.Config
	rng  *rand.Rand
	seed int64

	sim     *systems.ParticleSimulator
	session *systems.Session

	// Telemetry
	collector     *telemetry.Collector
	perfCollector *telemetry.PerfCollector
	outputManager *telemetry.OutputManager
	logStats      bool
	lastStats     telemetry.FrameStats

	// Clock
	headless bool
	clock    time.Time // synthetic, headless only
	frameDT  time.Duration

	frame        int
	sessionsDone int

	// Window dimensions
	screenWidth, screenHeight float32

	// Rendering (nil when headless)
	background     *renderer.BackgroundRenderer
	confetti       *renderer.ConfettiRenderer
	hud            *ui.HUD
	statsPanel     *ui.StatsPanel
	button         *ui.TriggerButton
	showStats      bool
	buttonPressed  bool
}

// NewGameWithOptions creates a new game with the given options.
// Uses config.Cfg() for all parameters.
func NewGameWithOptions(opts Options) *Game {
	cfg := config.Cfg()
	rng := rand.New(rand.NewSource(opts.Seed))

	params := systems.ParamsFromConfig(cfg)
	params.VariableDT = params.VariableDT || opts.VariableDT
	sim := systems.NewParticleSimulator(params, rng)

	g := &Game{
		cfg:           cfg,
		rng:           rng,
		seed:          opts.Seed,
		sim:           sim,
		session:       systems.NewSession(sim, systems.SessionParamsFromConfig(cfg)),
		collector:     telemetry.NewCollector(cfg.Telemetry.StatsWindow),
		perfCollector: telemetry.NewPerfCollector(cfg.Telemetry.PerfCollectorWindow),
		logStats:      opts.LogStats,
		headless:      opts.Headless,
		clock:         time.Unix(0, 0),
		frameDT:       time.Duration(cfg.Derived.DT * float64(time.Second)),
		screenWidth:   float32(cfg.Screen.Width),
		screenHeight:  float32(cfg.Screen.Height),
	}

	om, err := telemetry.NewOutputManager(opts.OutputDir)
	if err != nil {
		slog.Error("failed to create output manager", "error", err)
	}
	g.outputManager = om
	if err := om.WriteConfig(cfg); err != nil {
		slog.Error("failed to write config", "error", err)
	}

	if !opts.Headless {
		bg := cfg.Render.Background
		g.background = renderer.NewBackgroundRenderer(bg[0], bg[1], bg[2])
		g.confetti = renderer.NewConfettiRenderer(shading.ParamsFromConfig(cfg))
		g.hud = ui.NewHUD()
		g.statsPanel = ui.NewStatsPanel(int32(g.screenWidth)-230, 10, 220)
		g.button = ui.NewTriggerButton()
	}

	return g
}

// Update runs one graphical frame against the wall clock.
func (g *Game) Update() {
	g.perfCollector.MarkPresent()
	now := time.Now()
	g.handleInput(now)
	g.step(now)
}

// UpdateHeadless runs one frame on the synthetic clock, starting a new burst
// at the default origin whenever the previous one has ended.
func (g *Game) UpdateHeadless() {
	if !g.session.Running() {
		g.trigger(g.clock, g.session.DefaultOrigin(g.canvas()))
	}
	g.clock = g.clock.Add(g.frameDT)
	g.step(g.clock)
}

// step ticks the session and feeds telemetry.
func (g *Game) step(now time.Time) {
	g.perfCollector.BeginStep()

	g.perfCollector.StartPhase(telemetry.PhaseAdvance)
	advanced := g.sim.Count()
	result, elapsed := g.session.Tick(now)
	if result == systems.TickAdvanced {
		g.perfCollector.SetParticles(advanced)
	}

	g.perfCollector.StartPhase(telemetry.PhaseTelemetry)
	switch {
	case result == systems.TickAdvanced:
		g.recordFrame(elapsed)
	case result.Ended():
		g.endSession(result.String(), elapsed)
	}

	g.perfCollector.EndStep()
	g.frame++
}

// trigger starts a burst, closing any session still open.
func (g *Game) trigger(now time.Time, origin components.Vec2) {
	if g.collector.Active() {
		g.endSession("retriggered", g.session.Elapsed(now))
	}

	canvas := g.canvas()
	g.session.Trigger(now, origin, canvas)
	g.collector.BeginSession(g.seed, origin, canvas, g.sim.Count())
	g.lastStats = telemetry.FrameStats{Session: g.collector.Session(), Alive: g.sim.Count()}

	slog.Info("session started",
		"session", g.collector.Session(),
		"particles", g.sim.Count(),
		"origin_x", origin.X,
		"origin_y", origin.Y,
	)
}

func (g *Game) canvas() components.Size {
	return components.Size{W: float64(g.screenWidth), H: float64(g.screenHeight)}
}

// Unload releases resources.
func (g *Game) Unload() {
	if err := g.outputManager.Close(); err != nil {
		slog.Error("failed to close output", "error", err)
	}
}

// Frame returns the number of frames run so far.
func (g *Game) Frame() int {
	return g.frame
}

// SessionsDone returns how many bursts have ended.
func (g *Game) SessionsDone() int {
	return g.sessionsDone
}
