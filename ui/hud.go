package ui

import (
	"fmt"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/confetti/telemetry"
)

// HUDData holds all the data needed to render the main HUD.
type HUDData struct {
	Title    string
	Running  bool
	Session  int
	Alive    int
	Elapsed  time.Duration
	Duration time.Duration
	FPS      int32
	Seed     int64
}

// HUD renders the main heads-up display.
type HUD struct {
	renderer *Renderer
}

// NewHUD creates a new HUD renderer.
func NewHUD() *HUD {
	return &HUD{renderer: NewRenderer()}
}

// Draw renders the HUD.
func (h *HUD) Draw(data HUDData) {
	rl.DrawText(data.Title, 10, 10, 20, rl.White)

	rl.DrawText(
		fmt.Sprintf("Session: %d | Particles: %d | FPS: %d | Seed: %d", data.Session, data.Alive, data.FPS, data.Seed),
		10, 35, 16, rl.LightGray,
	)

	status := "Idle"
	if data.Running {
		status = fmt.Sprintf("Running %.2fs / %.2fs", data.Elapsed.Seconds(), data.Duration.Seconds())
	}
	rl.DrawText(status, 10, 55, 16, rl.Yellow)
}

// DrawControls renders the control legend at the bottom of the screen.
func (h *HUD) DrawControls(screenHeight int32, controls string) {
	rl.DrawText(controls, 10, screenHeight-25, 14, rl.Gray)
}

var frameSections = []SectionDescriptor{
	{
		Title: "Burst",
		Fields: []FieldDescriptor{
			{Label: "Alive", Widget: WidgetText, Format: "%.0f", Getter: func(d any) float64 { return float64(d.(telemetry.FrameStats).Alive) }},
			{Label: "On canvas", Widget: WidgetText, Format: "%.0f", Getter: func(d any) float64 { return float64(d.(telemetry.FrameStats).OnCanvas) }},
			{Label: "Opacity", Widget: WidgetBar, Getter: func(d any) float64 { return d.(telemetry.FrameStats).OpacityMean }},
		},
	},
	{
		Title: "Motion",
		Fields: []FieldDescriptor{
			{Label: "Speed", Widget: WidgetText, Format: "%.2f", Getter: func(d any) float64 { return d.(telemetry.FrameStats).SpeedMean }},
			{Label: "Max speed", Widget: WidgetText, Format: "%.2f", Getter: func(d any) float64 { return d.(telemetry.FrameStats).SpeedMax }},
			{Label: "Drift", Widget: WidgetText, Format: "%.2f", Getter: func(d any) float64 { return d.(telemetry.FrameStats).Drift }},
			{Label: "Spread", Widget: WidgetText, Format: "%.2f", Getter: func(d any) float64 { return d.(telemetry.FrameStats).SpreadX }},
			{Label: "Centroid", Widget: WidgetText, TextGetter: func(d any) string {
				fs := d.(telemetry.FrameStats)
				return fmt.Sprintf("%.1f, %.1f", fs.CentroidX, fs.CentroidY)
			}},
		},
		Visible: func(d any) bool { return d.(telemetry.FrameStats).Alive > 0 },
	},
}

// StatsPanel renders the latest frame statistics.
type StatsPanel struct {
	renderer *Renderer
	x, y     int32
	width    int32
}

// NewStatsPanel creates a new stats panel.
func NewStatsPanel(x, y, width int32) *StatsPanel {
	return &StatsPanel{renderer: NewRenderer(), x: x, y: y, width: width}
}

// SetPosition updates the panel position.
func (p *StatsPanel) SetPosition(x, y int32) {
	p.x = x
	p.y = y
}

// Draw renders the panel for one frame's stats.
func (p *StatsPanel) Draw(stats telemetry.FrameStats) {
	r := p.renderer
	pad := r.Theme.Padding

	height := pad * 2
	for _, sd := range frameSections {
		height += r.SectionHeight(sd, stats)
	}
	r.DrawPanel(p.x, p.y, p.width, height)

	y := p.y + pad
	for _, sd := range frameSections {
		y = r.DrawSection(p.x+pad, y, sd, stats, p.width-pad*2)
	}
}
