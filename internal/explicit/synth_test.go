package explicit

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/zetalab/internal/primes"
	"github.com/san-kum/zetalab/internal/series"
	"github.com/san-kum/zetalab/internal/zeros"
)

func meanAbsError(xs, synth, target []float64) float64 {
	total := 0.0
	for i := range xs {
		total += math.Abs(synth[i] - target[i])
	}
	return total / float64(len(xs))
}

var _ = Describe("Synthesize", func() {
	zs := zeros.All()

	It("is the smooth main term with no zeros", func() {
		res := Synthesize([]float64{10}, zs, 0)
		Expect(res.Synthesized[0]).To(BeNumerically("~", 10-math.Log(2*math.Pi), 1e-12))
		Expect(res.PerHarmonic).To(BeEmpty())
	})

	It("moves by a bounded amount when the first zero is added", func() {
		for _, x := range series.Linspace(1.5, 50, 200) {
			k0 := Synthesize([]float64{x}, zs, 0).Synthesized[0]
			k1 := Synthesize([]float64{x}, zs, 1).Synthesized[0]
			Expect(math.Abs(k1 - k0)).To(BeNumerically("<=", 2*math.Sqrt(x)/zs[0]+1e-12))
		}
	})

	It("lands within 20% of ψ(30) with fifty zeros", func() {
		got := Synthesize([]float64{30}, zs, 50).Synthesized[0]
		want := primes.ChebyshevPsi(30)
		Expect(math.Abs(got - want)).To(BeNumerically("<", 0.2*want))
	})

	It("tracks the staircase more closely as zeros are added", func() {
		xs := series.Linspace(2, 50, 480)
		target := primes.PsiSeries(xs)
		e0 := meanAbsError(xs, Synthesize(xs, zs, 0).Synthesized, target)
		e10 := meanAbsError(xs, Synthesize(xs, zs, 10).Synthesized, target)
		e50 := meanAbsError(xs, Synthesize(xs, zs, 50).Synthesized, target)
		Expect(e10).To(BeNumerically("<", e0))
		Expect(e50).To(BeNumerically("<", e10))
	})

	It("exposes each harmonic separately", func() {
		xs := []float64{5, 17.5}
		res := Synthesize(xs, zs, 3)
		Expect(res.PerHarmonic).To(HaveLen(3))
		for j := 0; j < 3; j++ {
			for i, x := range xs {
				Expect(res.PerHarmonic[j][i]).To(BeNumerically("~", Harmonic(x, zs[j]), 1e-15))
			}
		}
		sum := 0.0
		for j := 0; j < 3; j++ {
			sum += HarmonicContribution(xs[1], zs[j])
		}
		Expect(res.Synthesized[1]).To(BeNumerically("~", xs[1]-Ln2Pi+sum, 1e-9))
	})

	It("clamps the zero count", func() {
		Expect(Synthesize([]float64{3}, zs, -2).PerHarmonic).To(BeEmpty())
		Expect(Synthesize([]float64{3}, zs, 500).PerHarmonic).To(HaveLen(len(zs)))
	})

	It("returns empty output for an empty grid", func() {
		res := Synthesize(nil, zs, 5)
		Expect(res.Synthesized).To(BeEmpty())
	})
})

var _ = Describe("SynthesizeSubset", func() {
	zs := zeros.First(10)

	It("matches Synthesize when the subset is a prefix", func() {
		xs := series.Linspace(2, 40, 50)
		a := Synthesize(xs, zs, 4)
		b := SynthesizeSubset(xs, zs, []int{0, 1, 2, 3})
		Expect(b.Synthesized).To(Equal(a.Synthesized))
	})

	It("drops invalid and repeated indices", func() {
		res := SynthesizeSubset([]float64{7}, zs, []int{2, 2, -1, 99, 5})
		Expect(res.Active).To(Equal([]int{2, 5}))
		Expect(res.PerHarmonic).To(HaveLen(2))
	})
})
