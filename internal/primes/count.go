package primes

import (
	"context"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/integrate"
)

// LiSteps is the fixed number of trapezoid subintervals used by LogIntegral.
const LiSteps = 500

type CountSeries struct {
	X           []int
	PiX         []int
	GaussApprox []float64
}

// PrimeCountSeries returns π(x) and x/ln x for x = 1..max. Index i holds
// x = i+1, so PiX[99] is π(100).
func PrimeCountSeries(max int) CountSeries {
	cs, _ := PrimeCountSeriesContext(context.Background(), max)
	return cs
}

// PrimeCountSeriesContext is PrimeCountSeries with the sieve and the
// counting pass both interruptible.
func PrimeCountSeriesContext(ctx context.Context, max int) (CountSeries, error) {
	if max <= 0 {
		return CountSeries{X: []int{}, PiX: []int{}, GaussApprox: []float64{}}, nil
	}
	table, err := SieveContext(ctx, max)
	if err != nil {
		return CountSeries{}, err
	}
	return CountTable(ctx, table)
}

// CountTable turns a sieve table into the π(x) series for x = 1..len-1.
func CountTable(ctx context.Context, table []bool) (CountSeries, error) {
	max := len(table) - 1
	if max <= 0 {
		return CountSeries{X: []int{}, PiX: []int{}, GaussApprox: []float64{}}, nil
	}
	cs := CountSeries{
		X:           make([]int, max),
		PiX:         make([]int, max),
		GaussApprox: make([]float64, max),
	}
	count := 0
	for x := 1; x <= max; x++ {
		if x%checkEvery == 0 {
			if err := ctx.Err(); err != nil {
				return CountSeries{}, err
			}
		}
		if table[x] {
			count++
		}
		cs.X[x-1] = x
		cs.PiX[x-1] = count
		cs.GaussApprox[x-1] = Gauss(float64(x))
	}
	return cs, nil
}

// Gauss is the classical estimate x/ln x, 0 for x ≤ 1.
func Gauss(x float64) float64 {
	if x <= 1 {
		return 0
	}
	return x / math.Log(x)
}

// LogIntegral integrates 1/ln t from 2 to x with the trapezoidal rule over
// LiSteps subintervals. It is 0 for x ≤ 1.5 and negative on (1.5, 2).
func LogIntegral(x float64) float64 {
	if x <= 1.5 || x == 2 || math.IsNaN(x) {
		return 0
	}
	lo, hi, sign := 2.0, x, 1.0
	if x < 2 {
		lo, hi, sign = x, 2.0, -1.0
	}
	ts := floats.Span(make([]float64, LiSteps+1), lo, hi)
	fs := make([]float64, len(ts))
	for i, t := range ts {
		fs[i] = 1 / math.Log(t)
	}
	return sign * integrate.Trapezoidal(ts, fs)
}

func LogIntegralSeries(xs []float64) []float64 {
	out, _ := LogIntegralSeriesContext(context.Background(), xs)
	return out
}

func LogIntegralSeriesContext(ctx context.Context, xs []float64) ([]float64, error) {
	out := make([]float64, len(xs))
	for i, x := range xs {
		if i%psiCheckEvery == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}
		out[i] = LogIntegral(x)
	}
	return out, nil
}
