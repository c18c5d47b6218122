// Package config provides configuration loading and access for the simulation.
package config

import (
	_ "embed"
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all simulation configuration parameters.
type Config struct {
	Screen    ScreenConfig    `yaml:"screen"`
	Burst     BurstConfig     `yaml:"burst"`
	Physics   PhysicsConfig   `yaml:"physics"`
	Rotation  RotationConfig  `yaml:"rotation"`
	Session   SessionConfig   `yaml:"session"`
	Render    RenderConfig    `yaml:"render"`
	Telemetry TelemetryConfig `yaml:"telemetry"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// ScreenConfig holds display settings.
type ScreenConfig struct {
	Width     int `yaml:"width"`
	Height    int `yaml:"height"`
	TargetFPS int `yaml:"target_fps"`
}

// BurstConfig holds the sampling ranges used when a burst is spawned.
// Every range is half-open: [min, max).
type BurstConfig struct {
	Count           int     `yaml:"count"`
	OriginYFraction float64 `yaml:"origin_y_fraction"`
	AngleCenterDeg  float64 `yaml:"angle_center_deg"`
	AngleSpreadDeg  float64 `yaml:"angle_spread_deg"`
	SpeedMin        float64 `yaml:"speed_min"`
	SpeedMax        float64 `yaml:"speed_max"`
	SizeMin         float64 `yaml:"size_min"`
	SizeMax         float64 `yaml:"size_max"`
	WidthScaleMin   float64 `yaml:"width_scale_min"`
	WidthScaleMax   float64 `yaml:"width_scale_max"`
	HeightScaleMin  float64 `yaml:"height_scale_min"`
	HeightScaleMax  float64 `yaml:"height_scale_max"`
	RotXSpeedMin    float64 `yaml:"rot_x_speed_min"`
	RotXSpeedMax    float64 `yaml:"rot_x_speed_max"`
	RotYSpeedMin    float64 `yaml:"rot_y_speed_min"`
	RotYSpeedMax    float64 `yaml:"rot_y_speed_max"`
	WindForceMax    float64 `yaml:"wind_force_max"` // windForce is drawn from [-max, max)
}

// PhysicsConfig holds integration parameters.
type PhysicsConfig struct {
	StepHz        float64 `yaml:"step_hz"`
	VariableDT    bool    `yaml:"variable_dt"`
	MaxDT         float64 `yaml:"max_dt"`
	Gravity       float64 `yaml:"gravity"`
	Drag          float64 `yaml:"drag"`
	WindFrequency float64 `yaml:"wind_frequency"`
	WindPhaseStep float64 `yaml:"wind_phase_step"`
}

// RotationConfig holds the couplings between motion and the two flutter axes.
type RotationConfig struct {
	XVelocityCoupling float64 `yaml:"x_velocity_coupling"` // pitch rate per unit of vertical velocity
	XWindCoupling     float64 `yaml:"x_wind_coupling"`
	YVelocityCoupling float64 `yaml:"y_velocity_coupling"` // yaw rate per unit of horizontal velocity
	YWindCoupling     float64 `yaml:"y_wind_coupling"`
	FallSpinThreshold float64 `yaml:"fall_spin_threshold"`
	FallSpinX         float64 `yaml:"fall_spin_x"`
	FallSpinY         float64 `yaml:"fall_spin_y"`
}

// SessionConfig holds burst lifetime parameters.
type SessionConfig struct {
	Duration   float64 `yaml:"duration"`    // seconds until the hard cutoff
	FadeWindow float64 `yaml:"fade_window"` // seconds of linear fade before the cutoff
}

// RenderConfig holds pseudo-3D projection parameters.
type RenderConfig struct {
	DepthMin     float64  `yaml:"depth_min"`
	TiltMax      float64  `yaml:"tilt_max"`
	EdgeAlphaMin float64  `yaml:"edge_alpha_min"`
	BackShade    float64  `yaml:"back_shade"`
	Background   [3]uint8 `yaml:"background"`
}

// TelemetryConfig holds telemetry parameters.
type TelemetryConfig struct {
	StatsWindow         int `yaml:"stats_window"`
	PerfCollectorWindow int `yaml:"perf_collector_window"`
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	DT          float64 // 1 / Physics.StepHz
	AngleMin    float64 // radians
	AngleMax    float64 // radians
	FadeStart   float64 // Session.Duration - Session.FadeWindow
	ScreenW     float64
	ScreenH     float64
	FramesTotal int // fixed steps in one full session
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if path is empty.
// Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// MustInit is like Init but panics on error.
func MustInit(path string) {
	if err := Init(path); err != nil {
		panic(fmt.Sprintf("config: failed to initialize: %v", err))
	}
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	cfg.computeDerived()

	return cfg, nil
}

// validate rejects values the simulation cannot run with.
func (c *Config) validate() error {
	switch {
	case c.Physics.StepHz <= 0:
		return fmt.Errorf("physics.step_hz must be positive, got %v", c.Physics.StepHz)
	case c.Session.Duration <= 0:
		return fmt.Errorf("session.duration must be positive, got %v", c.Session.Duration)
	case c.Session.FadeWindow <= 0 || c.Session.FadeWindow > c.Session.Duration:
		return fmt.Errorf("session.fade_window must be in (0, duration], got %v", c.Session.FadeWindow)
	case c.Burst.Count < 0:
		return fmt.Errorf("burst.count must not be negative, got %d", c.Burst.Count)
	case c.Burst.SizeMin <= 0 || c.Burst.WidthScaleMin <= 0 || c.Burst.HeightScaleMin <= 0:
		return fmt.Errorf("burst sizes and scales must be positive")
	}
	return nil
}

// computeDerived calculates values derived from loaded config.
func (c *Config) computeDerived() {
	c.Derived.DT = 1.0 / c.Physics.StepHz
	c.Derived.AngleMin = (c.Burst.AngleCenterDeg - c.Burst.AngleSpreadDeg) * math.Pi / 180
	c.Derived.AngleMax = (c.Burst.AngleCenterDeg + c.Burst.AngleSpreadDeg) * math.Pi / 180
	c.Derived.FadeStart = c.Session.Duration - c.Session.FadeWindow
	c.Derived.ScreenW = float64(c.Screen.Width)
	c.Derived.ScreenH = float64(c.Screen.Height)
	c.Derived.FramesTotal = int(math.Ceil(c.Session.Duration * c.Physics.StepHz))
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
