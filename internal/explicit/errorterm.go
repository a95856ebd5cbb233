package explicit

import (
	"context"
	"math"

	"github.com/san-kum/zetalab/internal/primes"
)

type ErrorData struct {
	X          []float64
	PiX        []float64
	Li         []float64
	Actual     []float64
	Correction []float64
	Upper      []float64
	Lower      []float64
}

// ErrorTerm compares π(x) with Li(x) at x = 2..xLimit. Correction is the
// oscillating part of the explicit formula scaled to π: −(2√x/ln x)·Σ
// sin(γ ln x)/γ over the first k zeros. Upper and Lower are the
// Riemann-hypothesis envelope ±√x·ln x/(8π).
func ErrorTerm(xLimit int, zs []float64, k int) ErrorData {
	d, _ := ErrorTermContext(context.Background(), xLimit, zs, k)
	return d
}

// ErrorTermContext is ErrorTerm with the sieve and the per-x pass
// interruptible.
func ErrorTermContext(ctx context.Context, xLimit int, zs []float64, k int) (ErrorData, error) {
	if xLimit < 2 {
		return ErrorData{}, nil
	}
	active := firstK(len(zs), k)
	table, err := primes.SieveContext(ctx, xLimit)
	if err != nil {
		return ErrorData{}, err
	}
	n := xLimit - 1
	d := ErrorData{
		X:          make([]float64, n),
		PiX:        make([]float64, n),
		Li:         make([]float64, n),
		Actual:     make([]float64, n),
		Correction: make([]float64, n),
		Upper:      make([]float64, n),
		Lower:      make([]float64, n),
	}

	count := 0
	for x := 2; x <= xLimit; x++ {
		if x%256 == 0 {
			if err := ctx.Err(); err != nil {
				return ErrorData{}, err
			}
		}
		if table[x] {
			count++
		}
		i := x - 2
		fx := float64(x)
		lnX := math.Log(fx)

		sum := 0.0
		for _, idx := range active {
			sum += Harmonic(fx, zs[idx])
		}

		d.X[i] = fx
		d.PiX[i] = float64(count)
		d.Li[i] = primes.LogIntegral(fx)
		d.Actual[i] = d.PiX[i] - d.Li[i]
		d.Correction[i] = -2 * math.Sqrt(fx) / lnX * sum
		bound := math.Sqrt(fx) * lnX / (8 * math.Pi)
		d.Upper[i] = bound
		d.Lower[i] = -bound
	}
	return d, nil
}
