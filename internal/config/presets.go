package config

var Presets = map[string]map[string]*Config{
	"zeta": {
		"first-zeros": {
			View: "zeta", Iterations: 500, Steps: 400,
			Strip: StripConfig{TStart: 10, TEnd: 35},
		},
		"wide": {
			View: "zeta", Iterations: 1000, Steps: 1200,
			Strip: StripConfig{TStart: 0, TEnd: 100},
		},
		"precise": {
			View: "zeta", Iterations: 5000, Steps: 600,
			Strip: StripConfig{TStart: 14, TEnd: 15},
		},
	},
	"landscape": {
		"strip": {
			View: "landscape", Iterations: 300, Steps: 60,
			Strip: StripConfig{SigmaMin: 0, SigmaMax: 1, TStart: 0, TEnd: 40},
		},
		"beyond": {
			View: "landscape", Iterations: 300, Steps: 60,
			Strip: StripConfig{SigmaMin: -0.5, SigmaMax: 2, TStart: 0, TEnd: 30},
		},
	},
	"twist": {
		"base-two": {
			View: "twist", Steps: 400,
			Strip: StripConfig{Base: 2, Sigma: 0.5, TEnd: 30},
		},
		"fast-spin": {
			View: "twist", Steps: 800,
			Strip: StripConfig{Base: 7, Sigma: 0.5, TEnd: 60},
		},
	},
	"euler": {
		"basel": {
			View:  "euler",
			Strip: StripConfig{S: 2, Terms: 20},
		},
		"slow": {
			View:  "euler",
			Strip: StripConfig{S: 1.2, Terms: 100},
		},
	},
	"primes": {
		"hundred": {View: "primes", Primes: PrimesConfig{XLimit: 100}},
		"thousand": {View: "primes", Primes: PrimesConfig{XLimit: 1000}},
	},
	"synth": {
		"few": {
			View: "synth", Steps: 600,
			Primes:    PrimesConfig{XLimit: 50},
			Harmonics: HarmonicsConfig{Count: 3},
		},
		"sharp": {
			View: "synth", Steps: 1000,
			Primes:    PrimesConfig{XLimit: 50},
			Harmonics: HarmonicsConfig{Count: 50},
		},
	},
	"pulse": {
		"default": {
			View: "pulse", Steps: 1000,
			Primes:    PrimesConfig{XLimit: 40},
			Harmonics: HarmonicsConfig{Count: 50},
		},
	},
	"mix": {
		"first-three": {
			View: "mix", Steps: 800,
			Primes:    PrimesConfig{XLimit: 40},
			Harmonics: HarmonicsConfig{Active: []int{0, 1, 2}},
		},
	},
	"error": {
		"small": {
			View:      "error",
			Primes:    PrimesConfig{XLimit: 200},
			Harmonics: HarmonicsConfig{Count: 10},
		},
		"full": {
			View:      "error",
			Primes:    PrimesConfig{XLimit: 1000},
			Harmonics: HarmonicsConfig{Count: 50},
		},
	},
	"spectrum": {
		"lowest": {
			View:      "spectrum",
			Harmonics: HarmonicsConfig{Count: 3, UMin: 0.5, UMax: 8, Samples: 1024},
		},
	},
	"formula": {
		"gauss": {View: "formula", Formula: "x/log(x)", Primes: PrimesConfig{XLimit: 200}},
		"li":    {View: "formula", Formula: "li(x)", Primes: PrimesConfig{XLimit: 200}},
	},
}

// GetPreset returns a copy of the preset filled in with defaults for any
// field the preset leaves zero.
func GetPreset(view, preset string) *Config {
	viewPresets, ok := Presets[view]
	if !ok {
		return nil
	}
	cfg, ok := viewPresets[preset]
	if !ok {
		return nil
	}
	return withDefaults(cfg)
}

func ListPresets(view string) []string {
	viewPresets, ok := Presets[view]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(viewPresets))
	for name := range viewPresets {
		names = append(names, name)
	}
	return names
}

func withDefaults(p *Config) *Config {
	cfg := DefaultConfig()
	cfg.View = p.View
	if p.Iterations > 0 {
		cfg.Iterations = p.Iterations
	}
	if p.Steps > 0 {
		cfg.Steps = p.Steps
	}
	if p.Formula != "" {
		cfg.Formula = p.Formula
	}
	if p.Primes.XLimit > 0 {
		cfg.Primes.XLimit = p.Primes.XLimit
	}

	s := p.Strip
	if s.TStart != 0 || s.TEnd != 0 {
		cfg.Strip.TStart, cfg.Strip.TEnd = s.TStart, s.TEnd
	}
	if s.SigmaMin != 0 || s.SigmaMax != 0 {
		cfg.Strip.SigmaMin, cfg.Strip.SigmaMax = s.SigmaMin, s.SigmaMax
	}
	if s.Sigma != 0 {
		cfg.Strip.Sigma = s.Sigma
	}
	if s.Base != 0 {
		cfg.Strip.Base = s.Base
	}
	if s.S != 0 {
		cfg.Strip.S = s.S
	}
	if s.Terms != 0 {
		cfg.Strip.Terms = s.Terms
	}

	h := p.Harmonics
	if h.Count != 0 {
		cfg.Harmonics.Count = h.Count
	}
	if len(h.Active) > 0 {
		cfg.Harmonics.Active = append([]int(nil), h.Active...)
	}
	if h.UMin != 0 || h.UMax != 0 {
		cfg.Harmonics.UMin, cfg.Harmonics.UMax = h.UMin, h.UMax
	}
	if h.Samples != 0 {
		cfg.Harmonics.Samples = h.Samples
	}
	return cfg
}
