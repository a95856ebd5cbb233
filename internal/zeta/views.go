package zeta

import (
	"fmt"
	"math"

	"github.com/san-kum/zetalab/internal/cnum"
	"github.com/san-kum/zetalab/internal/primes"
	"github.com/san-kum/zetalab/internal/series"
	"github.com/san-kum/zetalab/internal/zeros"
)

// DefaultCeiling caps plotted magnitudes so the pole does not flatten the
// rest of a chart.
const DefaultCeiling = 10.0

type LineScan struct {
	T         []float64
	Magnitude []float64
	Phase     []float64
}

// CriticalLine samples ζ(1/2 + it) for steps+1 values of t in [tStart, tEnd].
func CriticalLine(tStart, tEnd float64, steps, n int) LineScan {
	ts := series.Linspace(tStart, tEnd, steps)
	scan := LineScan{
		T:         ts,
		Magnitude: make([]float64, len(ts)),
		Phase:     make([]float64, len(ts)),
	}
	for i, t := range ts {
		z := Zeta(cnum.New(0.5, t), n)
		scan.Magnitude[i] = z.Abs()
		scan.Phase[i] = z.Arg()
	}
	return scan
}

// MinimaNear returns, for each local minimum of the magnitude scan below
// threshold, the t at which it occurs. These are the visual zero candidates.
func (s LineScan) MinimaNear(threshold float64) []float64 {
	var out []float64
	for i := 1; i+1 < len(s.Magnitude); i++ {
		m := s.Magnitude[i]
		if m < threshold && m <= s.Magnitude[i-1] && m <= s.Magnitude[i+1] {
			out = append(out, s.T[i])
		}
	}
	return out
}

type Label struct {
	T    float64
	Text string
}

// KnownZeroLabels returns the tabulated zeros with tStart ≤ γ ≤ tEnd.
func KnownZeroLabels(tStart, tEnd float64) []Label {
	var out []Label
	for i, g := range zeros.Known {
		if g >= tStart && g <= tEnd {
			out = append(out, Label{T: g, Text: fmt.Sprintf("γ%d", i+1)})
		}
	}
	return out
}

type Surface struct {
	Sigma []float64
	T     []float64
	// Magnitude[j][i] and Phase[j][i] belong to (Sigma[i], T[j]).
	Magnitude [][]float64
	Phase     [][]float64
}

// Landscape evaluates |ζ| (clamped at DefaultCeiling) and arg ζ on a grid of
// the strip sigmaMin ≤ σ ≤ sigmaMax, tStart ≤ t ≤ tEnd.
func Landscape(sigmaMin, sigmaMax, tStart, tEnd float64, steps, n int) Surface {
	sf := Surface{
		Sigma: series.Linspace(sigmaMin, sigmaMax, steps),
		T:     series.Linspace(tStart, tEnd, steps),
	}
	sf.Magnitude = make([][]float64, len(sf.T))
	sf.Phase = make([][]float64, len(sf.T))
	// Rows are independent; each worker owns a disjoint range of t.
	series.ParallelFor(len(sf.T), 8, func(lo, hi int) {
		for j := lo; j < hi; j++ {
			t := sf.T[j]
			rowM := make([]float64, len(sf.Sigma))
			rowP := make([]float64, len(sf.Sigma))
			for i, sigma := range sf.Sigma {
				z := Zeta(cnum.New(sigma, t), n)
				rowM[i] = series.Clamp(z.Abs(), DefaultCeiling)
				rowP[i] = z.Arg()
			}
			sf.Magnitude[j] = rowM
			sf.Phase[j] = rowP
		}
	})
	return sf
}

type Trace struct {
	X, Y      []float64
	Point     cnum.Complex
	Magnitude float64
}

// Twist traces n^(σ+iτ) for τ from 0 to t: a circle arc of radius n^σ swept
// through angle t·ln n.
func Twist(n, sigma, t float64, steps int) Trace {
	lnN := math.Log(n)
	mag := math.Pow(n, sigma)
	tr := Trace{Magnitude: mag}
	for _, tau := range series.Linspace(0, t, steps) {
		sin, cos := math.Sincos(tau * lnN)
		tr.X = append(tr.X, mag*cos)
		tr.Y = append(tr.Y, mag*sin)
	}
	sin, cos := math.Sincos(t * lnN)
	tr.Point = cnum.New(mag*cos, mag*sin)
	return tr
}

// goldenKeyPrimes bounds the Euler product the way the sum is bounded.
const goldenKeyPrimes = 500

type KeyResult struct {
	Sum       float64
	Product   float64
	SumTerms  []float64
	ProdTerms []float64
	// Benchmark is π²/6 when s = 2 and NaN otherwise.
	Benchmark float64
}

// GoldenKey compares the partial sum Σ_{n ≤ terms} n^(-s) with the Euler
// product over the first terms/2 primes.
func GoldenKey(s float64, terms int) KeyResult {
	res := KeyResult{Product: 1, Benchmark: math.NaN()}
	for n := 1; n <= terms; n++ {
		term := math.Pow(float64(n), -s)
		res.Sum += term
		res.SumTerms = append(res.SumTerms, term)
	}

	ps := primes.Primes(goldenKeyPrimes)
	if k := terms / 2; k < len(ps) {
		if k < 0 {
			k = 0
		}
		ps = ps[:k]
	}
	for _, p := range ps {
		factor := 1 / (1 - math.Pow(float64(p), -s))
		res.Product *= factor
		res.ProdTerms = append(res.ProdTerms, factor)
	}

	if s == 2 {
		res.Benchmark = math.Pi * math.Pi / 6
	}
	return res
}
