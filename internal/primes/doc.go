// Package primes implements the prime-side quantities of the visualizer.
//
//   - [Sieve]: sieve of Eratosthenes presence table
//   - [PrimeCountSeries]: π(x) with the Gauss estimate x/ln x
//   - [LogIntegral]: Li(x) anchored at 2 (Gauss's form, not the principal value)
//   - [ChebyshevPsi]: ψ(x), the sum of ln p over prime powers p^k ≤ x
//
// Every function allocates its own result; nothing is cached between calls.
// The context variants check for cancellation at loop boundaries and are the
// ones to use when max or x is large.
package primes
