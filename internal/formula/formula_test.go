package formula

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/zetalab/internal/primes"
	"github.com/san-kum/zetalab/internal/series"
)

var _ = Describe("Evaluate", func() {
	It("returns the identity over the grid", func() {
		res := Evaluate("x", []float64{1, 2, 3})
		Expect(res.OK()).To(BeTrue())
		Expect(res.Points).To(Equal([]series.Point{{X: 1, Y: 1}, {X: 2, Y: 2}, {X: 3, Y: 3}}))
	})

	It("skips division by zero", func() {
		res := Evaluate("1/0", []float64{1, 2, 3})
		Expect(res.Err).To(BeEmpty())
		Expect(res.Points).To(BeEmpty())
	})

	It("skips points outside the log domain", func() {
		res := Evaluate("log(x)", []float64{-1, 1, math.E})
		Expect(res.Points).To(HaveLen(2))
		Expect(res.Points[0].X).To(Equal(1.0))
		Expect(res.Points[1].Y).To(BeNumerically("~", 1, 1e-12))
	})

	It("reports syntax errors without points", func() {
		res := Evaluate("x +* (", []float64{1, 2})
		Expect(res.OK()).To(BeFalse())
		Expect(res.Err).To(ContainSubstring("syntax error"))
		Expect(res.Points).To(BeNil())
	})

	It("rejects unknown names", func() {
		res := Evaluate("x + y", []float64{1})
		Expect(res.Err).To(ContainSubstring("y"))
		Expect(res.Points).To(BeNil())
	})

	It("rejects wrong arity at compile time", func() {
		_, err := Compile("pow(x)")
		Expect(err).To(HaveOccurred())
		Expect(err.Error()).To(ContainSubstring("pow"))
	})

	It("rejects an empty expression", func() {
		res := Evaluate("   ", []float64{1})
		Expect(res.OK()).To(BeFalse())
	})
})

var _ = Describe("Formula", func() {
	DescribeTable("evaluates built-ins",
		func(src string, x, want float64) {
			f, err := Compile(src)
			Expect(err).NotTo(HaveOccurred())
			got, err := f.Eval(x)
			Expect(err).NotTo(HaveOccurred())
			Expect(got).To(BeNumerically("~", want, 1e-9))
		},
		Entry("caret power", "x^2", 3.0, 9.0),
		Entry("double star power", "x**3", 2.0, 8.0),
		Entry("ln alias", "ln(e)", 0.0, 1.0),
		Entry("log10", "log10(x)", 1000.0, 3.0),
		Entry("sqrt", "sqrt(x)", 16.0, 4.0),
		Entry("trig", "sin(pi/2) + cos(0)", 0.0, 2.0),
		Entry("abs", "abs(x)", -2.5, 2.5),
		Entry("pow", "pow(2, x)", 10.0, 1024.0),
		Entry("gauss", "x/log(x)", math.E, math.E),
		Entry("prime count", "pi_count(x)", 100.0, 25.0),
		Entry("chebyshev", "psi(x)", 10.0, 3*math.Ln2+2*math.Log(3)+math.Log(5)+math.Log(7)),
		Entry("integer literal division", "1/2", 0.0, 0.5),
	)

	It("tracks li against the prime count", func() {
		f, err := Compile("li(x) - pi_count(x)")
		Expect(err).NotTo(HaveOccurred())
		got, err := f.Eval(1000)
		Expect(err).NotTo(HaveOccurred())
		Expect(math.Abs(got)).To(BeNumerically("<", 20))
	})

	It("keeps the source text", func() {
		f, err := Compile("  sqrt(x) ")
		Expect(err).NotTo(HaveOccurred())
		Expect(f.String()).To(Equal("sqrt(x)"))
	})

	It("flags non-finite values", func() {
		f, err := Compile("1/(x-1)")
		Expect(err).NotTo(HaveOccurred())
		_, err = f.Eval(1)
		Expect(err).To(MatchError(ErrNonFinite))
	})

	It("skips arithmetic functions above the table limit", func() {
		var res Result
		Expect(func() {
			res = Evaluate("pi_count(x)", []float64{1e15, 100})
		}).NotTo(Panic())
		Expect(res.OK()).To(BeTrue())
		Expect(res.Points).To(Equal([]series.Point{{X: 100, Y: 25}}))

		f, err := Compile("psi(x*1e9)")
		Expect(err).NotTo(HaveOccurred())
		_, err = f.Eval(50)
		Expect(err).To(MatchError(ErrOutOfRange))
	})

	It("keeps its tables consistent as they grow", func() {
		f, err := Compile("pi_count(x) + psi(x)")
		Expect(err).NotTo(HaveOccurred())
		for _, x := range []float64{10, 5000, 30, 20000} {
			got, err := f.Eval(x)
			Expect(err).NotTo(HaveOccurred())
			want := float64(len(primes.Primes(int(x)))) + primes.ChebyshevPsi(x)
			Expect(got).To(BeNumerically("~", want, 1e-6))
		}
	})
})
