package zeta

import (
	"math"

	"github.com/san-kum/zetalab/internal/cnum"
)

// Eta returns the partial sum of the Dirichlet eta series with n terms.
func Eta(s cnum.Complex, n int) cnum.Complex {
	sigma, t := s.Re, s.Im
	var re, im float64
	for k := 1; k <= n; k++ {
		term := cnum.Rotation(math.Pow(float64(k), -sigma), t*math.Log(float64(k)))
		if k%2 == 0 {
			re -= term.Re
			im -= term.Im
		} else {
			re += term.Re
			im += term.Im
		}
	}
	return cnum.New(re, im)
}

// Correction returns 1 - 2^(1-s).
func Correction(s cnum.Complex) cnum.Complex {
	pow := cnum.Rotation(math.Pow(2, 1-s.Re), s.Im*math.Ln2)
	return cnum.Sub(cnum.New(1, 0), pow)
}

// Zeta approximates ζ(s) from n eta terms.
func Zeta(s cnum.Complex, n int) cnum.Complex {
	return cnum.Div(Eta(s, n), Correction(s))
}
