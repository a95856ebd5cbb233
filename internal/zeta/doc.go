// Package zeta approximates the Riemann zeta function away from its pole.
//
// The approximation goes through the alternating Dirichlet eta series,
//
//	η(s) = Σ (-1)^(n-1) n^(-s),   ζ(s) = η(s) / (1 - 2^(1-s)),
//
// truncated after a caller-chosen number of terms. It is valid for σ > 0
// except at s = 1, where the correction factor vanishes and [Zeta] returns
// the +Inf sentinel from [cnum.Div]. Convergence oscillates as the term
// count grows; no error bound is computed.
//
// Besides the point evaluation the package builds the sampled views drawn
// by the visualizer: [CriticalLine], [Landscape], [Twist] and [GoldenKey].
package zeta
