package cnum

import (
	"fmt"
	"math"
)

type Complex struct {
	Re float64
	Im float64
}

// Sentinel is returned by Div when the divisor is zero.
var Sentinel = Complex{Re: math.Inf(1), Im: math.Inf(1)}

func New(re, im float64) Complex { return Complex{Re: re, Im: im} }

func FromComplex128(z complex128) Complex { return Complex{Re: real(z), Im: imag(z)} }

func (z Complex) Complex128() complex128 { return complex(z.Re, z.Im) }

func Add(a, b Complex) Complex {
	return Complex{Re: a.Re + b.Re, Im: a.Im + b.Im}
}

func Sub(a, b Complex) Complex {
	return Complex{Re: a.Re - b.Re, Im: a.Im - b.Im}
}

func Mul(a, b Complex) Complex {
	return Complex{
		Re: a.Re*b.Re - a.Im*b.Im,
		Im: a.Re*b.Im + a.Im*b.Re,
	}
}

func Div(a, b Complex) Complex {
	den := b.Re*b.Re + b.Im*b.Im
	if den == 0 {
		return Sentinel
	}
	return Complex{
		Re: (a.Re*b.Re + a.Im*b.Im) / den,
		Im: (a.Im*b.Re - a.Re*b.Im) / den,
	}
}

func Abs(z Complex) float64 { return math.Sqrt(z.Re*z.Re + z.Im*z.Im) }

// Arg is in (-π, π].
func Arg(z Complex) float64 { return math.Atan2(z.Im, z.Re) }

func (z Complex) Abs() float64 { return Abs(z) }
func (z Complex) Arg() float64 { return Arg(z) }

func (z Complex) Scale(f float64) Complex { return Complex{Re: z.Re * f, Im: z.Im * f} }

func (z Complex) IsFinite() bool {
	return !math.IsNaN(z.Re) && !math.IsInf(z.Re, 0) && !math.IsNaN(z.Im) && !math.IsInf(z.Im, 0)
}

func (z Complex) String() string {
	if z.Im < 0 {
		return fmt.Sprintf("%.6f - %.6fi", z.Re, -z.Im)
	}
	return fmt.Sprintf("%.6f + %.6fi", z.Re, z.Im)
}

// Rotation returns r·(cos θ − i·sin θ), the form n^(-it) takes once the
// modulus n^(-σ) is pulled out.
func Rotation(r, theta float64) Complex {
	sin, cos := math.Sincos(theta)
	return Complex{Re: r * cos, Im: -r * sin}
}
