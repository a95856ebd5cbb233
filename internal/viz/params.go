package viz

import (
	"math"

	"github.com/san-kum/zetalab/internal/config"
	"github.com/san-kum/zetalab/internal/zeros"
)

// param is one slider in the explorer.
type param struct {
	name    string
	step    float64
	integer bool
	text    bool
	get     func(*config.Config) float64
	set     func(*config.Config, float64)
}

var (
	pIterations = intParam("iterations", 50, func(c *config.Config) *int { return &c.Iterations })
	pSteps      = intParam("steps", 50, func(c *config.Config) *int { return &c.Steps })
	pTStart     = floatParam("t_start", 1, func(c *config.Config) *float64 { return &c.Strip.TStart })
	pTEnd       = floatParam("t_end", 1, func(c *config.Config) *float64 { return &c.Strip.TEnd })
	pSigmaMin   = floatParam("sigma_min", 0.05, func(c *config.Config) *float64 { return &c.Strip.SigmaMin })
	pSigmaMax   = floatParam("sigma_max", 0.05, func(c *config.Config) *float64 { return &c.Strip.SigmaMax })
	pSigma      = floatParam("sigma", 0.05, func(c *config.Config) *float64 { return &c.Strip.Sigma })
	pBase       = intParam("base", 1, func(c *config.Config) *int { return &c.Strip.Base })
	pS          = floatParam("s", 0.1, func(c *config.Config) *float64 { return &c.Strip.S })
	pTerms      = intParam("terms", 1, func(c *config.Config) *int { return &c.Strip.Terms })
	pXLimit     = floatParam("x_limit", 10, func(c *config.Config) *float64 { return &c.Primes.XLimit })
	pHarmonics  = intParam("harmonics", 1, func(c *config.Config) *int { return &c.Harmonics.Count })
	pUMin       = floatParam("u_min", 0.25, func(c *config.Config) *float64 { return &c.Harmonics.UMin })
	pUMax       = floatParam("u_max", 0.25, func(c *config.Config) *float64 { return &c.Harmonics.UMax })
	pSamples    = intParam("samples", 128, func(c *config.Config) *int { return &c.Harmonics.Samples })
	pFormula    = param{name: "formula", text: true}
)

var viewParams = map[string][]param{
	"zeta":      {pTStart, pTEnd, pIterations, pSteps},
	"landscape": {pSigmaMin, pSigmaMax, pTStart, pTEnd, pIterations, pSteps},
	"twist":     {pBase, pSigma, pTEnd, pSteps},
	"euler":     {pS, pTerms},
	"grid":      {pXLimit},
	"primes":    {pXLimit},
	"psi":       {pXLimit},
	"synth":     {pHarmonics, pXLimit, pSteps},
	"pulse":     {pHarmonics, pXLimit, pSteps},
	"mix":       {pXLimit, pSteps},
	"error":     {pHarmonics, pXLimit},
	"spectrum":  {pHarmonics, pUMin, pUMax, pSamples},
	"wave":      {pHarmonics, pUMin, pUMax, pSteps},
	"formula":   {pFormula, pXLimit, pSteps},
}

func intParam(name string, step float64, field func(*config.Config) *int) param {
	return param{
		name:    name,
		step:    step,
		integer: true,
		get:     func(c *config.Config) float64 { return float64(*field(c)) },
		set:     func(c *config.Config, v float64) { *field(c) = int(math.Round(v)) },
	}
}

func floatParam(name string, step float64, field func(*config.Config) *float64) param {
	return param{
		name: name,
		step: step,
		get:  func(c *config.Config) float64 { return *field(c) },
		set:  func(c *config.Config, v float64) { *field(c) = v },
	}
}

// nudge moves p by delta steps and keeps counts inside their usable range.
func (p param) nudge(c *config.Config, delta float64) {
	if p.text {
		return
	}
	v := p.get(c) + delta*p.step
	if p.integer && v < 0 {
		v = 0
	}
	switch p.name {
	case "harmonics":
		v = math.Min(v, zeros.Count)
	case "base":
		v = math.Max(v, 2)
	}
	p.set(c, v)
}
