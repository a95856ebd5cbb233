package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/zetalab/internal/primes"
	"github.com/san-kum/zetalab/internal/series"
	"github.com/san-kum/zetalab/internal/zeros"
)

const (
	DefaultIterations = 500
	DefaultSteps      = 400
	DefaultTStart     = 0.0
	DefaultTEnd       = 50.0
	DefaultSigmaMin   = 0.0
	DefaultSigmaMax   = 1.0
	DefaultSigma      = 0.5
	DefaultBase       = 2
	DefaultS          = 2.0
	DefaultTerms      = 20
	DefaultXLimit     = 100.0
	DefaultHarmonics  = 10
	DefaultSamples    = 1024
)

type Config struct {
	View       string          `yaml:"view"`
	Iterations int             `yaml:"iterations"`
	Steps      int             `yaml:"steps"`
	Strip      StripConfig     `yaml:"strip"`
	Primes     PrimesConfig    `yaml:"primes"`
	Harmonics  HarmonicsConfig `yaml:"harmonics"`
	Formula    string          `yaml:"formula"`
}

// StripConfig covers the views over the complex plane.
type StripConfig struct {
	TStart   float64 `yaml:"t_start"`
	TEnd     float64 `yaml:"t_end"`
	SigmaMin float64 `yaml:"sigma_min"`
	SigmaMax float64 `yaml:"sigma_max"`
	Sigma    float64 `yaml:"sigma"`
	Base     int     `yaml:"base"`
	S        float64 `yaml:"s"`
	Terms    int     `yaml:"terms"`
}

type PrimesConfig struct {
	XLimit float64 `yaml:"x_limit"`
}

type HarmonicsConfig struct {
	Count int `yaml:"count"`
	// Active selects zero indices for the mixing board. Empty means the
	// first Count zeros.
	Active  []int   `yaml:"active"`
	UMin    float64 `yaml:"u_min"`
	UMax    float64 `yaml:"u_max"`
	Samples int     `yaml:"samples"`
}

func DefaultConfig() *Config {
	return &Config{
		View:       "zeta",
		Iterations: DefaultIterations,
		Steps:      DefaultSteps,
		Strip: StripConfig{
			TStart:   DefaultTStart,
			TEnd:     DefaultTEnd,
			SigmaMin: DefaultSigmaMin,
			SigmaMax: DefaultSigmaMax,
			Sigma:    DefaultSigma,
			Base:     DefaultBase,
			S:        DefaultS,
			Terms:    DefaultTerms,
		},
		Primes: PrimesConfig{XLimit: DefaultXLimit},
		Harmonics: HarmonicsConfig{
			Count:   DefaultHarmonics,
			UMin:    0.5,
			UMax:    8,
			Samples: DefaultSamples,
		},
		Formula: "x/log(x)",
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate rejects values no view can work with. Ranges that are merely
// empty (t_end < t_start, x_limit < 2) are left to the views, which answer
// them with empty series.
func (c *Config) Validate() error {
	switch {
	case c.Iterations < 0:
		return series.InvalidParam("iterations", float64(c.Iterations))
	case c.Steps < 0:
		return series.InvalidParam("steps", float64(c.Steps))
	case c.Harmonics.Count < 0 || c.Harmonics.Count > zeros.Count:
		return series.InvalidParam("harmonics.count", float64(c.Harmonics.Count))
	case c.Harmonics.Samples < 0:
		return series.InvalidParam("harmonics.samples", float64(c.Harmonics.Samples))
	case c.Strip.Terms < 0:
		return series.InvalidParam("strip.terms", float64(c.Strip.Terms))
	case !(c.Primes.XLimit <= primes.MaxLimit):
		return series.InvalidParam("primes.x_limit", c.Primes.XLimit)
	}
	return nil
}

// ActiveZeros returns the zero indices the harmonic views sum over.
func (c *Config) ActiveZeros() []int {
	if len(c.Harmonics.Active) > 0 {
		out := make([]int, len(c.Harmonics.Active))
		copy(out, c.Harmonics.Active)
		return out
	}
	n := c.Harmonics.Count
	if n > zeros.Count {
		n = zeros.Count
	}
	out := make([]int, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, i)
	}
	return out
}

// Params flattens the config into the metadata map stored with a run.
func (c *Config) Params() map[string]float64 {
	return map[string]float64{
		"iterations": float64(c.Iterations),
		"steps":      float64(c.Steps),
		"t_start":    c.Strip.TStart,
		"t_end":      c.Strip.TEnd,
		"sigma_min":  c.Strip.SigmaMin,
		"sigma_max":  c.Strip.SigmaMax,
		"sigma":      c.Strip.Sigma,
		"base":       float64(c.Strip.Base),
		"s":          c.Strip.S,
		"terms":      float64(c.Strip.Terms),
		"x_limit":    c.Primes.XLimit,
		"harmonics":  float64(c.Harmonics.Count),
		"u_min":      c.Harmonics.UMin,
		"u_max":      c.Harmonics.UMax,
		"samples":    float64(c.Harmonics.Samples),
	}
}
