package explicit

import "math"

// Ln2Pi is the constant term ln(2π) of the explicit formula.
var Ln2Pi = math.Log(2 * math.Pi)

type Result struct {
	X           []float64
	Synthesized []float64
	// PerHarmonic[j][i] is the j-th active harmonic sin(γ_j ln x_i)/γ_j.
	PerHarmonic [][]float64
	Active      []int
}

// Synthesize sums the first k zeros; k is clamped to [0, len(zs)].
func Synthesize(xs, zs []float64, k int) Result {
	return SynthesizeSubset(xs, zs, firstK(len(zs), k))
}

// SynthesizeSubset sums only the zeros at the given indices. Indices out of
// range and repeats are ignored; the remaining order is preserved.
func SynthesizeSubset(xs, zs []float64, active []int) Result {
	active = validIndices(len(zs), active)
	res := Result{
		X:           append([]float64(nil), xs...),
		Synthesized: make([]float64, len(xs)),
		PerHarmonic: make([][]float64, len(active)),
		Active:      active,
	}
	for j := range active {
		res.PerHarmonic[j] = make([]float64, len(xs))
	}

	for i, x := range xs {
		lnX := math.Log(x)
		sum := 0.0
		for j, idx := range active {
			h := math.Sin(zs[idx]*lnX) / zs[idx]
			res.PerHarmonic[j][i] = h
			sum += h
		}
		res.Synthesized[i] = x - Ln2Pi - 2*math.Sqrt(x)*sum
	}
	return res
}

// Harmonic is the single term sin(γ ln x)/γ.
func Harmonic(x, gamma float64) float64 {
	return math.Sin(gamma*math.Log(x)) / gamma
}

// HarmonicContribution is what one zero adds to the synthesized ψ(x):
// −2√x·sin(γ ln x)/γ.
func HarmonicContribution(x, gamma float64) float64 {
	return -2 * math.Sqrt(x) * Harmonic(x, gamma)
}

func firstK(n, k int) []int {
	if k < 0 {
		k = 0
	}
	if k > n {
		k = n
	}
	idx := make([]int, k)
	for i := range idx {
		idx[i] = i
	}
	return idx
}

func validIndices(n int, active []int) []int {
	seen := make(map[int]bool, len(active))
	out := make([]int, 0, len(active))
	for _, idx := range active {
		if idx < 0 || idx >= n || seen[idx] {
			continue
		}
		seen[idx] = true
		out = append(out, idx)
	}
	return out
}
