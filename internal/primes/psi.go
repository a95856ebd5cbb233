package primes

import (
	"context"
	"math"
)

const (
	psiCheckEvery = 256
	// checkEvery spaces context checks in the cheap linear passes.
	checkEvery = 1 << 16
)

// ChebyshevPsi returns ψ(x) = Σ_{n ≤ x} Λ(n); 0 for x < 2.
func ChebyshevPsi(x float64) float64 {
	v, _ := ChebyshevPsiContext(context.Background(), x)
	return v
}

// ChebyshevPsiContext is ChebyshevPsi with a cancellation check every
// psiCheckEvery integers.
func ChebyshevPsiContext(ctx context.Context, x float64) (float64, error) {
	if !(x >= 2) || math.IsInf(x, 1) {
		return 0, nil
	}
	limit := int(math.Floor(x))
	sum := 0.0
	for n := 2; n <= limit; n++ {
		if n%psiCheckEvery == 0 {
			select {
			case <-ctx.Done():
				return 0, ctx.Err()
			default:
			}
		}
		sum += VonMangoldt(n)
	}
	return sum, nil
}

// VonMangoldt returns ln p when n = p^k and 0 otherwise. The smallest trial
// divisor of n is its least prime factor; n is a prime power exactly when
// dividing that factor out completely leaves 1.
func VonMangoldt(n int) float64 {
	if n < 2 {
		return 0
	}
	for p := 2; p*p <= n; p++ {
		if n%p != 0 {
			continue
		}
		m := n
		for m%p == 0 {
			m /= p
		}
		if m == 1 {
			return math.Log(float64(p))
		}
		return 0
	}
	return math.Log(float64(n))
}

// PsiSeries evaluates ψ at every x of the grid with a single pass up to the
// largest x.
func PsiSeries(xs []float64) []float64 {
	out, _ := PsiSeriesContext(context.Background(), xs)
	return out
}

// PsiSeriesContext builds the running sum of Λ from a sieve: every prime
// power p^k gets ln p. The context is checked during the sieve and every
// checkEvery integers of the summing pass.
func PsiSeriesContext(ctx context.Context, xs []float64) ([]float64, error) {
	out := make([]float64, len(xs))
	maxN := 1
	for _, x := range xs {
		if x >= 2 && !math.IsInf(x, 1) && int(x) > maxN {
			maxN = int(math.Floor(x))
		}
	}
	table, err := SieveContext(ctx, maxN)
	if err != nil {
		return nil, err
	}

	lambda := make([]float64, maxN+1)
	for p := 2; p <= maxN; p++ {
		if !table[p] {
			continue
		}
		lnP := math.Log(float64(p))
		for pk := p; pk <= maxN; pk *= p {
			lambda[pk] = lnP
			if pk > maxN/p {
				break
			}
		}
	}

	cum := lambda
	for n := 2; n <= maxN; n++ {
		if n%checkEvery == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}
		cum[n] += cum[n-1]
	}
	for i, x := range xs {
		if !(x >= 2) || math.IsInf(x, 1) {
			continue
		}
		out[i] = cum[int(math.Floor(x))]
	}
	return out, nil
}
