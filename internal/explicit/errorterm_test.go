package explicit

import (
	"context"
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/zetalab/internal/primes"
	"github.com/san-kum/zetalab/internal/zeros"
)

var _ = Describe("ErrorTerm", func() {
	zs := zeros.All()

	It("reports π(x) − Li(x) on the integers", func() {
		d := ErrorTerm(200, zs, 50)
		Expect(d.X).To(HaveLen(199))
		Expect(d.X[0]).To(Equal(2.0))
		Expect(d.PiX[98]).To(Equal(25.0))
		for i := range d.X {
			Expect(d.Actual[i]).To(BeNumerically("~", d.PiX[i]-primes.LogIntegral(d.X[i]), 1e-12))
			Expect(d.Upper[i]).To(Equal(-d.Lower[i]))
		}
	})

	It("has no correction without zeros", func() {
		d := ErrorTerm(50, zs, 0)
		for _, c := range d.Correction {
			Expect(c).To(BeZero())
		}
	})

	It("keeps the correction finite", func() {
		d := ErrorTerm(200, zs, 50)
		for _, c := range d.Correction {
			Expect(math.IsNaN(c) || math.IsInf(c, 0)).To(BeFalse())
		}
	})

	It("is empty below x = 2", func() {
		Expect(ErrorTerm(1, zs, 10).X).To(BeEmpty())
	})

	It("stops when its context is canceled", func() {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := ErrorTermContext(ctx, 100000, zs, 10)
		Expect(err).To(MatchError(context.Canceled))
	})
})
