package config

import (
	"errors"
	"math"
	"path/filepath"
	"testing"

	"github.com/san-kum/zetalab/internal/series"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.View != "zeta" {
		t.Errorf("expected view zeta, got %s", cfg.View)
	}
	if cfg.Iterations <= 0 {
		t.Error("iterations should be positive")
	}
	if cfg.Strip.TEnd <= cfg.Strip.TStart {
		t.Error("default t range should be non-empty")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("zeta", "first-zeros")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.Strip.TStart != 10 || cfg.Strip.TEnd != 35 {
		t.Errorf("expected t range [10,35], got [%f,%f]", cfg.Strip.TStart, cfg.Strip.TEnd)
	}
	if cfg.Harmonics.Samples != DefaultSamples {
		t.Errorf("unset fields should fall back to defaults, got samples %d", cfg.Harmonics.Samples)
	}
}

func TestGetPresetReturnsCopy(t *testing.T) {
	cfg := GetPreset("mix", "first-three")
	cfg.Harmonics.Active[0] = 40

	again := GetPreset("mix", "first-three")
	if again.Harmonics.Active[0] != 0 {
		t.Error("mutating a preset copy changed the preset table")
	}
}

func TestGetPreset_NotFound(t *testing.T) {
	if cfg := GetPreset("zeta", "nonexistent"); cfg != nil {
		t.Error("expected nil for nonexistent preset")
	}
	if cfg := GetPreset("nonexistent", "first-zeros"); cfg != nil {
		t.Error("expected nil for nonexistent view")
	}
}

func TestListPresets(t *testing.T) {
	if presets := ListPresets("zeta"); len(presets) == 0 {
		t.Error("expected presets for zeta")
	}
	if presets := ListPresets("nonexistent"); presets != nil {
		t.Error("expected nil for nonexistent view")
	}
}

func TestPresetsValidate(t *testing.T) {
	for view := range Presets {
		for _, name := range ListPresets(view) {
			cfg := GetPreset(view, name)
			if cfg.View != view {
				t.Errorf("%s/%s: view field is %q", view, name, cfg.View)
			}
			if err := cfg.Validate(); err != nil {
				t.Errorf("%s/%s: %v", view, name, err)
			}
		}
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name  string
		mut   func(*Config)
		param string
	}{
		{"negative iterations", func(c *Config) { c.Iterations = -1 }, "iterations"},
		{"negative steps", func(c *Config) { c.Steps = -5 }, "steps"},
		{"too many harmonics", func(c *Config) { c.Harmonics.Count = 51 }, "harmonics.count"},
		{"negative terms", func(c *Config) { c.Strip.Terms = -2 }, "strip.terms"},
		{"huge x limit", func(c *Config) { c.Primes.XLimit = 1e15 }, "primes.x_limit"},
		{"infinite x limit", func(c *Config) { c.Primes.XLimit = math.Inf(1) }, "primes.x_limit"},
		{"NaN x limit", func(c *Config) { c.Primes.XLimit = math.NaN() }, "primes.x_limit"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mut(cfg)
			err := cfg.Validate()
			if !errors.Is(err, series.ErrInvalidParameter) {
				t.Fatalf("expected invalid parameter error, got %v", err)
			}
			var pe *series.ParamError
			if !errors.As(err, &pe) || pe.Param != tt.param {
				t.Errorf("expected param %s, got %v", tt.param, err)
			}
		})
	}
}

func TestActiveZeros(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Harmonics.Count = 4
	got := cfg.ActiveZeros()
	if len(got) != 4 || got[3] != 3 {
		t.Errorf("expected first four indices, got %v", got)
	}

	cfg.Harmonics.Active = []int{5, 2}
	got = cfg.ActiveZeros()
	if len(got) != 2 || got[0] != 5 || got[1] != 2 {
		t.Errorf("explicit active list should win, got %v", got)
	}
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.yaml")
	cfg := DefaultConfig()
	cfg.View = "synth"
	cfg.Harmonics.Count = 7
	cfg.Formula = "li(x) - x/ln(x)"

	if err := Save(path, cfg); err != nil {
		t.Fatalf("save: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if loaded.View != "synth" || loaded.Harmonics.Count != 7 || loaded.Formula != cfg.Formula {
		t.Errorf("round trip mismatch: %+v", loaded)
	}
}
