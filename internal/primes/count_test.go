package primes

import (
	"context"
	"errors"
	"math"
	"testing"
)

func TestPrimeCountSeries(t *testing.T) {
	cs := PrimeCountSeries(100)
	if len(cs.X) != 100 || len(cs.PiX) != 100 || len(cs.GaussApprox) != 100 {
		t.Fatalf("unexpected lengths %d %d %d", len(cs.X), len(cs.PiX), len(cs.GaussApprox))
	}
	if cs.PiX[99] != 25 {
		t.Errorf("π(100) = %d, want 25", cs.PiX[99])
	}
	if cs.X[0] != 1 || cs.PiX[0] != 0 || cs.GaussApprox[0] != 0 {
		t.Errorf("x=1 sample wrong: x=%d π=%d gauss=%f", cs.X[0], cs.PiX[0], cs.GaussApprox[0])
	}
	if want := 100 / math.Log(100); math.Abs(cs.GaussApprox[99]-want) > 1e-12 {
		t.Errorf("gauss(100) = %f, want %f", cs.GaussApprox[99], want)
	}
	for i := 1; i < len(cs.PiX); i++ {
		if cs.PiX[i] < cs.PiX[i-1] {
			t.Fatalf("π decreased at x=%d", cs.X[i])
		}
	}
}

func TestPrimeCountSeriesEmpty(t *testing.T) {
	for _, max := range []int{0, -1} {
		cs := PrimeCountSeries(max)
		if len(cs.X) != 0 || len(cs.PiX) != 0 || len(cs.GaussApprox) != 0 {
			t.Errorf("PrimeCountSeries(%d) not empty", max)
		}
	}
}

func TestPrimeCountScales(t *testing.T) {
	cs := PrimeCountSeries(2000)
	if got := cs.PiX[len(cs.PiX)-1]; got != 303 {
		t.Errorf("π(2000) = %d, want 303", got)
	}
}

func TestLogIntegral(t *testing.T) {
	tests := []struct {
		x    float64
		want float64
		tol  float64
	}{
		{1.0, 0, 0},
		{1.5, 0, 0},
		{2, 0, 0},
		// li(x) - li(2) with li(2) ≈ 1.045164
		{10, 6.165600 - 1.045164, 1e-2},
		{100, 30.126142 - 1.045164, 1e-2},
	}
	for _, tt := range tests {
		got := LogIntegral(tt.x)
		if math.Abs(got-tt.want) > tt.tol {
			t.Errorf("LogIntegral(%v) = %f, want %f", tt.x, got, tt.want)
		}
	}
	if v := LogIntegral(1.8); v >= 0 {
		t.Errorf("LogIntegral(1.8) = %f, expected negative offset value", v)
	}
}

func TestLogIntegralIncreasing(t *testing.T) {
	prev := LogIntegral(2)
	for x := 3.0; x <= 200; x++ {
		v := LogIntegral(x)
		if v <= prev {
			t.Fatalf("Li not increasing at %v", x)
		}
		prev = v
	}
}

func TestGauss(t *testing.T) {
	if Gauss(1) != 0 || Gauss(0.5) != 0 {
		t.Error("Gauss should be 0 for x ≤ 1")
	}
	if got := Gauss(math.E); math.Abs(got-math.E) > 1e-12 {
		t.Errorf("Gauss(e) = %f, want e", got)
	}
}

func TestPrimeCountSeriesContextCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := PrimeCountSeriesContext(ctx, 100000); !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
	if _, err := LogIntegralSeriesContext(ctx, []float64{10, 20}); !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled from Li, got %v", err)
	}
}
