package config

import (
	"math"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Burst.Count != 100 {
		t.Errorf("burst.count = %d, want 100", cfg.Burst.Count)
	}
	if cfg.Session.Duration != 4.0 || cfg.Session.FadeWindow != 1.0 {
		t.Errorf("session = %+v", cfg.Session)
	}
	if cfg.Physics.Gravity != 0.5 || cfg.Physics.Drag != 0.998 {
		t.Errorf("physics = %+v", cfg.Physics)
	}
	if cfg.Derived.DT != 1.0/60.0 {
		t.Errorf("derived dt = %v, want 1/60", cfg.Derived.DT)
	}
	if math.Abs(cfg.Derived.AngleMin+math.Pi) > 1e-12 || math.Abs(cfg.Derived.AngleMax) > 1e-12 {
		t.Errorf("angle range = [%v, %v), want [-pi, 0)", cfg.Derived.AngleMin, cfg.Derived.AngleMax)
	}
	if cfg.Derived.FadeStart != 3.0 {
		t.Errorf("fade start = %v, want 3", cfg.Derived.FadeStart)
	}
	if cfg.Derived.FramesTotal != 240 {
		t.Errorf("frames total = %d, want 240", cfg.Derived.FramesTotal)
	}
}

func TestLoadOverridesOnlyPresentKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "override.yaml")
	data := []byte("burst:\n  count: 250\nsession:\n  duration: 6\n")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Burst.Count != 250 {
		t.Errorf("burst.count = %d, want 250", cfg.Burst.Count)
	}
	if cfg.Burst.SpeedMin != 20 || cfg.Burst.SpeedMax != 40 {
		t.Errorf("speed range lost defaults: %v..%v", cfg.Burst.SpeedMin, cfg.Burst.SpeedMax)
	}
	if cfg.Derived.FadeStart != 5.0 {
		t.Errorf("fade start = %v, want 5", cfg.Derived.FadeStart)
	}
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name string
		yaml string
	}{
		{"malformed", "burst: [\n"},
		{"zero step", "physics:\n  step_hz: 0\n"},
		{"fade longer than session", "session:\n  fade_window: 5\n"},
		{"negative count", "burst:\n  count: -1\n"},
		{"zero size", "burst:\n  size_min: 0\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, tt.name+".yaml")
			if err := os.WriteFile(path, []byte(tt.yaml), 0644); err != nil {
				t.Fatal(err)
			}
			if _, err := Load(path); err == nil {
				t.Errorf("Load(%q) succeeded, want error", tt.yaml)
			}
		})
	}

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("Load of missing file succeeded")
	}
}

func TestWriteYAMLReloads(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	cfg.Burst.Count = 42

	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := cfg.WriteYAML(path); err != nil {
		t.Fatalf("WriteYAML: %v", err)
	}

	reloaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load written config: %v", err)
	}
	if reloaded.Burst.Count != 42 {
		t.Errorf("reloaded count = %d, want 42", reloaded.Burst.Count)
	}
}

func TestCfgPanicsBeforeInit(t *testing.T) {
	saved := global
	global = nil
	defer func() {
		global = saved
		if recover() == nil {
			t.Error("Cfg() did not panic before Init")
		}
	}()
	Cfg()
}
