package explicit

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/zetalab/internal/series"
	"github.com/san-kum/zetalab/internal/zeros"
)

var _ = Describe("DensityPulse", func() {
	zs := zeros.All()

	It("is zero with no active zeros", func() {
		for _, v := range DensityPulse([]float64{2, 3, 4}, zs, 0) {
			Expect(v).To(BeZero())
		}
	})

	It("normalises by the square root of the active count", func() {
		x := 11.0
		raw := 0.0
		for _, g := range zs[:9] {
			raw += math.Cos(g * math.Log(x))
		}
		Expect(DensityPulse([]float64{x}, zs, 9)[0]).To(BeNumerically("~", raw/3, 1e-12))
	})

	It("spikes at prime powers with all fifty zeros", func() {
		xs := series.Linspace(2, 30, 2800)
		all := make([]int, len(zs))
		for i := range all {
			all[i] = i
		}
		spikes := MixPulse(xs, zs, all).Spikes(1.5)
		Expect(spikes).NotTo(BeEmpty())

		primePowers := []float64{2, 3, 4, 5, 7, 8, 9, 11, 13, 16, 17, 19, 23, 25, 27, 29}
		for _, at := range spikes {
			near := false
			for _, pp := range primePowers {
				if math.Abs(at-pp) < 0.35 {
					near = true
				}
			}
			Expect(near).To(BeTrue(), "spike at %v is not near a prime power", at)
		}
		for _, p := range []float64{5, 7, 11, 13} {
			found := false
			for _, at := range spikes {
				if math.Abs(at-p) < 0.35 {
					found = true
				}
			}
			Expect(found).To(BeTrue(), "no spike near %v in %v", p, spikes)
		}
	})
})

var _ = Describe("MixPulse", func() {
	zs := zeros.First(10)
	xs := series.Linspace(2, 60, 100)

	It("keeps every individual wave regardless of the selection", func() {
		mix := MixPulse(xs, zs, []int{1, 4})
		Expect(mix.Waves).To(HaveLen(10))
		for i, x := range xs {
			want := (math.Cos(zs[1]*math.Log(x)) + math.Cos(zs[4]*math.Log(x))) / math.Sqrt2
			Expect(mix.Sum[i]).To(BeNumerically("~", want, 1e-12))
			Expect(mix.Waves[7][i]).To(BeNumerically("~", math.Cos(zs[7]*math.Log(x)), 1e-12))
		}
	})

	It("ignores indices outside the table", func() {
		mix := MixPulse(xs, zs, []int{12, -3})
		Expect(mix.Active).To(BeEmpty())
		Expect(mix.Sum[0]).To(BeZero())
	})
})

var _ = Describe("LogSpectrum", func() {
	zs := zeros.All()

	It("puts the dominant peak at the first zero", func() {
		sp := LogSpectrum(zs, 1, 0, 40, 4096)
		Expect(sp.Dominant()).To(BeNumerically("~", zs[0], 0.3))
	})

	It("resolves separate peaks for separate zeros", func() {
		sp := LogSpectrum(zs, 3, 0, 40, 4096)
		for _, g := range zs[:3] {
			best := 0.0
			for j, w := range sp.Omega {
				if math.Abs(w-g) < 0.5 && sp.Magnitude[j] > best {
					best = sp.Magnitude[j]
				}
			}
			Expect(best).To(BeNumerically(">", 0.1), "no spectral line near %v", g)
		}
	})

	It("is empty for a degenerate window", func() {
		Expect(LogSpectrum(zs, 3, 5, 5, 64).Omega).To(BeEmpty())
		Expect(LogSpectrum(zs, 3, 0, 5, 1).Omega).To(BeEmpty())
	})
})

var _ = Describe("Wave", func() {
	It("samples sin(γu) over the window", func() {
		w := Wave(14.134725, 2, 1, 100)
		Expect(w.X).To(HaveLen(101))
		Expect(w.X[0]).To(BeNumerically("~", 1, 1e-12))
		Expect(w.Y[100]).To(BeNumerically("~", math.Sin(14.134725*2), 1e-12))
	})
})
