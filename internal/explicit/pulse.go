package explicit

import (
	"math"
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"

	"github.com/san-kum/zetalab/internal/series"
)

type Mix struct {
	X   []float64
	Sum []float64
	// Waves[j][i] is cos(γ_j ln x_i) for every zero passed in, active or not.
	Waves  [][]float64
	Active []int
}

// DensityPulse returns Σ_{j<k} cos(γ_j ln x)/√k at every x, or zeros when k
// is 0.
func DensityPulse(xs, zs []float64, k int) []float64 {
	return MixPulse(xs, zs, firstK(len(zs), k)).Sum
}

// MixPulse sums cos(γ ln x) over the active indices and divides by
// √(active count).
func MixPulse(xs, zs []float64, active []int) Mix {
	active = validIndices(len(zs), active)
	m := Mix{
		X:      append([]float64(nil), xs...),
		Sum:    make([]float64, len(xs)),
		Waves:  make([][]float64, len(zs)),
		Active: active,
	}
	for j := range zs {
		m.Waves[j] = make([]float64, len(xs))
	}
	on := make([]bool, len(zs))
	for _, idx := range active {
		on[idx] = true
	}

	norm := 0.0
	if len(active) > 0 {
		norm = 1 / math.Sqrt(float64(len(active)))
	}
	for i, x := range xs {
		lnX := math.Log(x)
		raw := 0.0
		for j, g := range zs {
			w := math.Cos(g * lnX)
			m.Waves[j][i] = w
			if on[j] {
				raw += w
			}
		}
		m.Sum[i] = raw * norm
	}
	return m
}

// Spikes returns the x positions where |pulse| has a local maximum above
// threshold. With this sign convention the prime-power spikes point down.
func (m Mix) Spikes(threshold float64) []float64 {
	var out []float64
	for i := 1; i+1 < len(m.Sum); i++ {
		v := math.Abs(m.Sum[i])
		if v > threshold && v >= math.Abs(m.Sum[i-1]) && v > math.Abs(m.Sum[i+1]) {
			out = append(out, m.X[i])
		}
	}
	return out
}

// Wave samples sin(γu) on [u0−width, u0], the trace of one zero's rotation
// in log space.
func Wave(gamma, u0, width float64, points int) series.Series {
	us := series.Linspace(u0-width, u0, points)
	ys := make([]float64, len(us))
	for i, u := range us {
		ys[i] = math.Sin(gamma * u)
	}
	return series.New("wave", us, ys)
}

type Spectrum struct {
	Omega     []float64
	Magnitude []float64
}

// LogSpectrum samples the density pulse of the first k zeros uniformly in
// u = ln x on [uMin, uMax] and returns its FFT magnitude against angular
// frequency. Each active zero shows up as a peak at ω = γ.
func LogSpectrum(zs []float64, k int, uMin, uMax float64, samples int) Spectrum {
	if samples < 2 || !(uMax > uMin) {
		return Spectrum{}
	}
	us := series.Linspace(uMin, uMax, samples-1)
	xs := make([]float64, len(us))
	for i, u := range us {
		xs[i] = math.Exp(u)
	}
	pulse := DensityPulse(xs, zs, k)

	coeffs := fft.FFTReal(pulse)
	du := us[1] - us[0]
	half := len(coeffs) / 2
	sp := Spectrum{Omega: make([]float64, half), Magnitude: make([]float64, half)}
	for j := 0; j < half; j++ {
		sp.Omega[j] = 2 * math.Pi * float64(j) / (float64(len(coeffs)) * du)
		sp.Magnitude[j] = cmplx.Abs(coeffs[j]) / float64(len(coeffs))
	}
	return sp
}

// Dominant returns the angular frequency of the largest non-DC bin.
func (s Spectrum) Dominant() float64 {
	best, at := -1.0, 0.0
	for j := 1; j < len(s.Magnitude); j++ {
		if s.Magnitude[j] > best {
			best, at = s.Magnitude[j], s.Omega[j]
		}
	}
	return at
}
