package experiment

import (
	"context"
	"fmt"
	"math"

	"github.com/san-kum/zetalab/internal/config"
	"github.com/san-kum/zetalab/internal/explicit"
	"github.com/san-kum/zetalab/internal/formula"
	"github.com/san-kum/zetalab/internal/primes"
	"github.com/san-kum/zetalab/internal/series"
	"github.com/san-kum/zetalab/internal/zeros"
	"github.com/san-kum/zetalab/internal/zeta"
)

func zetaView(_ context.Context, cfg *config.Config) (*series.Set, error) {
	s := cfg.Strip
	scan := zeta.CriticalLine(s.TStart, s.TEnd, cfg.Steps, cfg.Iterations)

	mag := make([]float64, len(scan.Magnitude))
	for i, m := range scan.Magnitude {
		mag[i] = series.Clamp(m, zeta.DefaultCeiling)
	}

	set := &series.Set{Title: fmt.Sprintf("|ζ(1/2+it)|, t ∈ [%g, %g], %d terms", s.TStart, s.TEnd, cfg.Iterations)}
	set.Add(series.New("magnitude", scan.T, mag))
	set.Add(series.New("phase", scan.T, scan.Phase))

	labels := zeta.KnownZeroLabels(s.TStart, s.TEnd)
	known := series.Series{Name: "known zeros"}
	for _, l := range labels {
		known.X = append(known.X, l.T)
		known.Y = append(known.Y, 0)
	}
	set.Add(known)
	return set, nil
}

func landscapeView(ctx context.Context, cfg *config.Config) (*series.Set, error) {
	s := cfg.Strip
	sf := zeta.Landscape(s.SigmaMin, s.SigmaMax, s.TStart, s.TEnd, cfg.Steps, cfg.Iterations)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	set := &series.Set{Title: fmt.Sprintf("|ζ(σ+it)| on σ ∈ [%g, %g], t ∈ [%g, %g]", s.SigmaMin, s.SigmaMax, s.TStart, s.TEnd)}
	for i, sigma := range sf.Sigma {
		ys := make([]float64, len(sf.T))
		for j := range sf.T {
			ys[j] = sf.Magnitude[j][i]
		}
		set.Add(series.New(fmt.Sprintf("σ=%.3f", sigma), sf.T, ys))
	}
	return set, nil
}

func twistView(_ context.Context, cfg *config.Config) (*series.Set, error) {
	s := cfg.Strip
	if s.Base < 2 {
		return nil, series.InvalidParam("strip.base", float64(s.Base))
	}
	tr := zeta.Twist(float64(s.Base), s.Sigma, s.TEnd, cfg.Steps)

	set := &series.Set{Title: fmt.Sprintf("%d^(%g+iτ), τ ∈ [0, %g], radius %.4f", s.Base, s.Sigma, s.TEnd, tr.Magnitude)}
	set.Add(series.New("spiral", tr.X, tr.Y))
	set.Add(series.New("endpoint", []float64{tr.Point.Re}, []float64{tr.Point.Im}))
	return set, nil
}

func eulerView(_ context.Context, cfg *config.Config) (*series.Set, error) {
	s := cfg.Strip
	key := zeta.GoldenKey(s.S, s.Terms)

	set := &series.Set{Title: fmt.Sprintf("Σ n^-%g = %.6f vs Π (1-p^-%g)^-1 = %.6f", s.S, key.Sum, s.S, key.Product)}
	set.Add(cumulative("partial sum", key.SumTerms, func(acc, v float64) float64 { return acc + v }, 0))
	set.Add(cumulative("euler product", key.ProdTerms, func(acc, v float64) float64 { return acc * v }, 1))
	if !math.IsNaN(key.Benchmark) {
		n := math.Max(float64(len(key.SumTerms)), 1)
		set.Add(series.New("π²/6", []float64{1, n}, []float64{key.Benchmark, key.Benchmark}))
	}
	return set, nil
}

func cumulative(name string, terms []float64, op func(acc, v float64) float64, start float64) series.Series {
	out := series.Series{Name: name}
	acc := start
	for i, v := range terms {
		acc = op(acc, v)
		out.X = append(out.X, float64(i+1))
		out.Y = append(out.Y, acc)
	}
	return out
}

func gridView(_ context.Context, cfg *config.Config) (*series.Set, error) {
	g := primes.Grid(int(cfg.Primes.XLimit))
	set := &series.Set{Title: fmt.Sprintf("1..%d on a %d-wide grid", int(cfg.Primes.XLimit), g.Size)}
	set.Add(cells("primes", g.Primes))
	set.Add(cells("composites", g.Composites))
	return set, nil
}

func cells(name string, cs []primes.Cell) series.Series {
	out := series.Series{Name: name, X: make([]float64, len(cs)), Y: make([]float64, len(cs))}
	for i, c := range cs {
		out.X[i] = float64(c.X)
		out.Y[i] = float64(c.Y)
	}
	return out
}

func primesView(ctx context.Context, cfg *config.Config) (*series.Set, error) {
	limit := int(cfg.Primes.XLimit)
	counts, err := primes.PrimeCountSeriesContext(ctx, limit)
	if err != nil {
		return nil, err
	}

	xs := make([]float64, len(counts.X))
	pi := make([]float64, len(counts.X))
	for i := range counts.X {
		xs[i] = float64(counts.X[i])
		pi[i] = float64(counts.PiX[i])
	}

	li, err := primes.LogIntegralSeriesContext(ctx, xs)
	if err != nil {
		return nil, err
	}

	set := &series.Set{Title: fmt.Sprintf("π(x) for x ≤ %d", limit)}
	set.Add(series.New("π(x)", xs, pi))
	set.Add(series.New("x/ln x", xs, counts.GaussApprox))
	set.Add(series.New("Li(x)", xs, li))
	return set, nil
}

func psiView(ctx context.Context, cfg *config.Config) (*series.Set, error) {
	limit := int(cfg.Primes.XLimit)
	xs := series.IntRange(1, limit)
	psi, err := primes.PsiSeriesContext(ctx, xs)
	if err != nil {
		return nil, err
	}

	set := &series.Set{Title: fmt.Sprintf("ψ(x) for x ≤ %d", limit)}
	set.Add(series.New("ψ(x)", xs, psi))
	set.Add(series.New("x", xs, append([]float64(nil), xs...)))
	return set, nil
}

// harmonicGrid is the x grid shared by the explicit-formula views; it starts
// at 2 where ψ first jumps.
func harmonicGrid(cfg *config.Config) []float64 {
	if cfg.Primes.XLimit < 2 {
		return []float64{}
	}
	return series.Linspace(2, cfg.Primes.XLimit, cfg.Steps)
}

func synthView(ctx context.Context, cfg *config.Config) (*series.Set, error) {
	xs := harmonicGrid(cfg)
	psi, err := primes.PsiSeriesContext(ctx, xs)
	if err != nil {
		return nil, err
	}
	res := explicit.SynthesizeSubset(xs, zeros.All(), cfg.ActiveZeros())
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	set := &series.Set{Title: fmt.Sprintf("ψ(x) from %d zeros", len(res.Active))}
	set.Add(series.New("ψ(x)", xs, psi))
	set.Add(series.New("synthesized", xs, res.Synthesized))
	if n := len(res.Active); n > 0 {
		last := res.Active[n-1]
		gamma := zeros.Known[last]
		contrib := make([]float64, len(xs))
		for i, x := range xs {
			contrib[i] = explicit.HarmonicContribution(x, gamma)
		}
		set.Add(series.New(fmt.Sprintf("harmonic γ%d", last+1), xs, contrib))
	}
	return set, nil
}

func pulseView(_ context.Context, cfg *config.Config) (*series.Set, error) {
	xs := harmonicGrid(cfg)
	m := explicit.MixPulse(xs, zeros.All(), cfg.ActiveZeros())

	set := &series.Set{Title: fmt.Sprintf("density pulse, %d zeros", len(m.Active))}
	set.Add(series.New("pulse", xs, m.Sum))

	spikes := series.Series{Name: "spikes"}
	for _, x := range m.Spikes(1.5) {
		spikes.X = append(spikes.X, x)
		spikes.Y = append(spikes.Y, 0)
	}
	set.Add(spikes)
	return set, nil
}

func mixView(_ context.Context, cfg *config.Config) (*series.Set, error) {
	xs := harmonicGrid(cfg)
	m := explicit.MixPulse(xs, zeros.All(), cfg.ActiveZeros())

	set := &series.Set{Title: fmt.Sprintf("mixing board, active %v", m.Active)}
	set.Add(series.New("mix", xs, m.Sum))
	for _, j := range m.Active {
		set.Add(series.New(fmt.Sprintf("γ%d", j+1), xs, m.Waves[j]))
	}
	return set, nil
}

func errorView(ctx context.Context, cfg *config.Config) (*series.Set, error) {
	limit := int(cfg.Primes.XLimit)
	d, err := explicit.ErrorTermContext(ctx, limit, zeros.All(), cfg.Harmonics.Count)
	if err != nil {
		return nil, err
	}

	set := &series.Set{Title: fmt.Sprintf("π(x) − Li(x), %d zeros", cfg.Harmonics.Count)}
	set.Add(series.New("π(x) − Li(x)", d.X, d.Actual))
	set.Add(series.New("correction", d.X, d.Correction))
	set.Add(series.New("upper", d.X, d.Upper))
	set.Add(series.New("lower", d.X, d.Lower))
	return set, nil
}

func spectrumView(_ context.Context, cfg *config.Config) (*series.Set, error) {
	h := cfg.Harmonics
	sp := explicit.LogSpectrum(zeros.All(), h.Count, h.UMin, h.UMax, h.Samples)

	set := &series.Set{Title: fmt.Sprintf("spectrum of the pulse in ln x, dominant ω = %.3f", sp.Dominant())}
	set.Add(series.New("magnitude", sp.Omega, sp.Magnitude))
	return set, nil
}

func waveView(_ context.Context, cfg *config.Config) (*series.Set, error) {
	h := cfg.Harmonics
	set := &series.Set{Title: fmt.Sprintf("sin(γu) on u ∈ [%g, %g]", h.UMin, h.UMax)}
	for _, j := range cfg.ActiveZeros() {
		if j < 0 || j >= zeros.Count {
			continue
		}
		w := explicit.Wave(zeros.Known[j], h.UMax, h.UMax-h.UMin, cfg.Steps)
		w.Name = fmt.Sprintf("γ%d", j+1)
		set.Add(w)
	}
	return set, nil
}

// formulaView overlays the formula on π(x). A formula that does not parse
// leaves its own series empty and is reported as a warning; π(x) is still
// drawn.
func formulaView(ctx context.Context, cfg *config.Config) (*series.Set, error) {
	xs := harmonicGrid(cfg)
	table, err := primes.SieveContext(ctx, int(cfg.Primes.XLimit))
	if err != nil {
		return nil, err
	}
	pi := make([]float64, len(xs))
	count, next := 0, 2
	for i, x := range xs {
		for ; next <= int(x) && next < len(table); next++ {
			if table[next] {
				count++
			}
		}
		pi[i] = float64(count)
	}

	set := &series.Set{Title: fmt.Sprintf("%s against π(x)", cfg.Formula)}
	set.Add(series.New("π(x)", xs, pi))

	res := formula.Evaluate(cfg.Formula, xs)
	if !res.OK() {
		set.Warn(res.Err)
		set.Add(series.Series{Name: cfg.Formula})
		return set, nil
	}
	set.Add(res.Series(cfg.Formula))
	return set, nil
}
