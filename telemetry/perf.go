package telemetry

import (
	"log/slog"
	"sort"
	"time"

	"gonum.org/v1/gonum/stat"
)

// Phase names for one simulation step.
const (
	PhaseAdvance   = "advance"
	PhaseTelemetry = "telemetry"
	PhaseOutput    = "output"
)

// perfSample is the timing of one step.
type perfSample struct {
	dur       time.Duration
	particles int
	phases    map[string]time.Duration
}

// PerfCollector times simulation steps over a rolling window of frames.
type PerfCollector struct {
	window  []perfSample
	next    int
	filled  int
	current perfSample

	stepStart  time.Time
	phaseStart time.Time
	phase      string

	// Presentation timing, graphics mode only
	lastPresent time.Time
	interval    time.Duration
}

// NewPerfCollector creates a collector averaging over windowSize steps.
func NewPerfCollector(windowSize int) *PerfCollector {
	if windowSize < 1 {
		windowSize = 60
	}
	return &PerfCollector{window: make([]perfSample, windowSize)}
}

// BeginStep starts timing a simulation step.
func (p *PerfCollector) BeginStep() {
	p.stepStart = time.Now()
	p.current = perfSample{phases: make(map[string]time.Duration, 3)}
	p.phase = ""
}

// StartPhase closes the running phase, if any, and opens the named one.
func (p *PerfCollector) StartPhase(phase string) {
	now := time.Now()
	p.closePhase(now)
	p.phaseStart = now
	p.phase = phase
}

func (p *PerfCollector) closePhase(now time.Time) {
	if p.phase != "" {
		p.current.phases[p.phase] += now.Sub(p.phaseStart)
	}
}

// SetParticles records how many particles the step advanced.
func (p *PerfCollector) SetParticles(n int) {
	p.current.particles = n
}

// EndStep closes the step and stores it in the window.
func (p *PerfCollector) EndStep() {
	now := time.Now()
	p.closePhase(now)
	p.phase = ""
	p.current.dur = now.Sub(p.stepStart)

	p.window[p.next] = p.current
	p.next = (p.next + 1) % len(p.window)
	if p.filled < len(p.window) {
		p.filled++
	}
}

// MarkPresent records the time between presented frames.
func (p *PerfCollector) MarkPresent() {
	now := time.Now()
	if !p.lastPresent.IsZero() {
		p.interval = now.Sub(p.lastPresent)
	}
	p.lastPresent = now
}

// PerfStats aggregates the steps currently in the window.
type PerfStats struct {
	AvgStep time.Duration
	P95Step time.Duration
	MaxStep time.Duration

	PhaseAvg map[string]time.Duration
	PhasePct map[string]float64 // share of the average step

	StepsPerSecond float64
	NsPerParticle  float64 // advance phase cost per particle

	FrameInterval time.Duration
	FPS           float64
}

// Stats computes aggregated statistics over the current window.
func (p *PerfCollector) Stats() PerfStats {
	s := PerfStats{
		PhaseAvg:      make(map[string]time.Duration),
		PhasePct:      make(map[string]float64),
		FrameInterval: p.interval,
	}
	if p.interval > 0 {
		s.FPS = float64(time.Second) / float64(p.interval)
	}
	if p.filled == 0 {
		return s
	}

	durs := make([]float64, p.filled)
	phaseSum := make(map[string]time.Duration)
	var total time.Duration
	var particles int
	for i, smp := range p.window[:p.filled] {
		durs[i] = float64(smp.dur)
		total += smp.dur
		particles += smp.particles
		for name, d := range smp.phases {
			phaseSum[name] += d
		}
	}
	sort.Float64s(durs)

	n := time.Duration(p.filled)
	s.AvgStep = total / n
	s.P95Step = time.Duration(stat.Quantile(0.95, stat.Empirical, durs, nil))
	s.MaxStep = time.Duration(durs[len(durs)-1])

	for name, sum := range phaseSum {
		s.PhaseAvg[name] = sum / n
		if s.AvgStep > 0 {
			s.PhasePct[name] = float64(s.PhaseAvg[name]) / float64(s.AvgStep) * 100
		}
	}
	if s.AvgStep > 0 {
		s.StepsPerSecond = float64(time.Second) / float64(s.AvgStep)
	}
	if particles > 0 {
		s.NsPerParticle = float64(phaseSum[PhaseAdvance].Nanoseconds()) / float64(particles)
	}
	return s
}

// LogValue implements slog.LogValuer for structured logging.
func (s PerfStats) LogValue() slog.Value {
	attrs := []slog.Attr{
		slog.Int64("avg_step_us", s.AvgStep.Microseconds()),
		slog.Int64("p95_step_us", s.P95Step.Microseconds()),
		slog.Int64("max_step_us", s.MaxStep.Microseconds()),
		slog.Float64("ns_per_particle", s.NsPerParticle),
	}
	if s.FPS > 0 {
		attrs = append(attrs, slog.Float64("fps", s.FPS))
	}
	for _, phase := range []string{PhaseAdvance, PhaseTelemetry, PhaseOutput} {
		if pct, ok := s.PhasePct[phase]; ok {
			attrs = append(attrs, slog.Float64(phase+"_pct", pct))
		}
	}
	return slog.GroupValue(attrs...)
}

// PerfRow is one perf.csv record, written when a session ends.
type PerfRow struct {
	Session       int     `csv:"session"`
	AvgStepUS     int64   `csv:"avg_step_us"`
	P95StepUS     int64   `csv:"p95_step_us"`
	MaxStepUS     int64   `csv:"max_step_us"`
	NsPerParticle float64 `csv:"ns_per_particle"`
	FPS           float64 `csv:"fps"`
	AdvancePct    float64 `csv:"advance_pct"`
	TelemetryPct  float64 `csv:"telemetry_pct"`
	OutputPct     float64 `csv:"output_pct"`
}

// Row flattens the stats for CSV output.
func (s PerfStats) Row(session int) PerfRow {
	return PerfRow{
		Session:       session,
		AvgStepUS:     s.AvgStep.Microseconds(),
		P95StepUS:     s.P95Step.Microseconds(),
		MaxStepUS:     s.MaxStep.Microseconds(),
		NsPerParticle: s.NsPerParticle,
		FPS:           s.FPS,
		AdvancePct:    s.PhasePct[PhaseAdvance],
		TelemetryPct:  s.PhasePct[PhaseTelemetry],
		OutputPct:     s.PhasePct[PhaseOutput],
	}
}
