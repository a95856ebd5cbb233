package zeta

import (
	"math"
	"testing"

	"github.com/san-kum/zetalab/internal/cnum"
	"github.com/san-kum/zetalab/internal/zeros"
)

func TestZetaAtTwo(t *testing.T) {
	got := Zeta(cnum.New(2, 0), 500)
	want := math.Pi * math.Pi / 6
	if math.Abs(got.Re-want) > 1e-3 {
		t.Errorf("ζ(2) = %v, want %f", got, want)
	}
	if math.Abs(got.Im) > 1e-12 {
		t.Errorf("ζ(2) has imaginary part %g", got.Im)
	}
}

func TestZetaConvergesWithTerms(t *testing.T) {
	tests := []struct {
		s    cnum.Complex
		want float64
	}{
		{cnum.New(2, 0), math.Pi * math.Pi / 6},
		{cnum.New(4, 0), math.Pow(math.Pi, 4) / 90},
		{cnum.New(3, 0), 1.2020569031595942},
	}
	for _, tt := range tests {
		coarse := math.Abs(Zeta(tt.s, 5).Re - tt.want)
		fine := math.Abs(Zeta(tt.s, 500).Re - tt.want)
		if fine >= coarse {
			t.Errorf("s=%v: error did not shrink (%g with 5 terms, %g with 500)", tt.s, coarse, fine)
		}
		if fine > 1e-5 {
			t.Errorf("s=%v: error %g with 500 terms", tt.s, fine)
		}
	}
}

func TestZetaNegativeHalf(t *testing.T) {
	// ζ(1/2) ≈ -1.4603545, reached only through the eta continuation.
	got := Zeta(cnum.New(0.5, 0), 200000)
	if math.Abs(got.Re+1.4603545) > 1e-2 {
		t.Errorf("ζ(1/2) = %v", got)
	}
}

func TestZetaPole(t *testing.T) {
	got := Zeta(cnum.New(1, 0), 100)
	if got.IsFinite() {
		t.Errorf("ζ(1) should be the sentinel, got %v", got)
	}
	near := Zeta(cnum.New(1.0001, 0), 100)
	if near.Abs() < 1000 {
		t.Errorf("|ζ(1.0001)| = %f, expected to explode near the pole", near.Abs())
	}
}

func TestZetaNoTerms(t *testing.T) {
	for _, n := range []int{0, -4} {
		got := Zeta(cnum.New(2, 1), n)
		if got != cnum.New(0, 0) {
			t.Errorf("Zeta with %d terms = %v, want 0", n, got)
		}
	}
}

func TestZetaVanishesAtKnownZeros(t *testing.T) {
	for _, g := range zeros.First(3) {
		got := Zeta(cnum.New(0.5, g), 2000)
		if got.Abs() > 0.1 {
			t.Errorf("|ζ(1/2 + %fi)| = %f, expected near zero", g, got.Abs())
		}
	}
}

func TestCorrection(t *testing.T) {
	got := Correction(cnum.New(2, 0))
	if math.Abs(got.Re-0.5) > 1e-12 || math.Abs(got.Im) > 1e-12 {
		t.Errorf("1 - 2^(1-2) = %v, want 0.5", got)
	}
}
