// Package explicit rebuilds prime-counting step functions from a finite set
// of zeta zeros using the truncated explicit formula
//
//	ψ(x) ≈ x − ln(2π) − 2√x · Σ_k sin(γ_k ln x) / γ_k
//
// Each term sin(γ ln x)/γ is a harmonic that can be drawn on its own. The
// companion density pulse Σ cos(γ ln x) is divided by √K, K being the number
// of active zeros, so adding harmonics sharpens the peaks at the primes
// instead of growing the amplitude.
//
// Zeros are always summed in the order given, and a subset may be chosen by
// index for interference demos ([SynthesizeSubset], [MixPulse]).
package explicit
