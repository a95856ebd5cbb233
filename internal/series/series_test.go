package series

import (
	"errors"
	"math"
	"sync/atomic"
	"testing"
)

func TestLinspace(t *testing.T) {
	xs := Linspace(0, 1, 4)
	if len(xs) != 5 || xs[0] != 0 || xs[4] != 1 || xs[2] != 0.5 {
		t.Errorf("Linspace(0, 1, 4) = %v", xs)
	}
	if got := Linspace(3, 9, 0); len(got) != 1 || got[0] != 3 {
		t.Errorf("zero steps = %v", got)
	}
	if got := Linspace(0, 1, -1); len(got) != 0 {
		t.Errorf("negative steps = %v", got)
	}
}

func TestIntRange(t *testing.T) {
	if got := IntRange(2, 5); len(got) != 4 || got[3] != 5 {
		t.Errorf("IntRange(2, 5) = %v", got)
	}
	if got := IntRange(5, 2); len(got) != 0 {
		t.Errorf("reversed range = %v", got)
	}
}

func TestFiniteAndBounds(t *testing.T) {
	s := New("s", []float64{1, 2, 3, 4}, []float64{5, math.NaN(), math.Inf(1), -1})
	f := s.Finite()
	if f.Len() != 2 || f.Y[1] != -1 {
		t.Errorf("Finite = %+v", f)
	}
	lo, hi, ok := s.Bounds()
	if !ok || lo != -1 || hi != 5 {
		t.Errorf("Bounds = %g, %g, %v", lo, hi, ok)
	}
	if _, _, ok := New("empty", nil, nil).Bounds(); ok {
		t.Error("empty series should have no bounds")
	}
}

func TestClamp(t *testing.T) {
	cases := []struct{ in, want float64 }{
		{3, 3},
		{12, 10},
		{math.Inf(1), 10},
		{math.NaN(), 10},
	}
	for _, c := range cases {
		if got := Clamp(c.in, 10); got != c.want {
			t.Errorf("Clamp(%g) = %g, want %g", c.in, got, c.want)
		}
	}
}

func TestSetLookup(t *testing.T) {
	set := &Set{}
	set.Add(New("a", nil, nil))
	set.Add(New("b", []float64{1}, []float64{2}))
	if b, ok := set.Get("b"); !ok || b.Len() != 1 {
		t.Error("Get(b) failed")
	}
	if _, ok := set.Get("c"); ok {
		t.Error("Get(c) should miss")
	}
	if names := set.Names(); len(names) != 2 || names[0] != "a" {
		t.Errorf("Names = %v", names)
	}
}

func TestInvalidParam(t *testing.T) {
	err := InvalidParam("strip.base", 1)
	if !errors.Is(err, ErrInvalidParameter) {
		t.Error("should wrap ErrInvalidParameter")
	}
	var pe *ParamError
	if !errors.As(err, &pe) || pe.Param != "strip.base" {
		t.Errorf("unexpected error %v", err)
	}
}

func TestParallelForCoversRange(t *testing.T) {
	for _, n := range []int{0, 1, 7, 100, 1001} {
		hits := make([]int32, n)
		var calls atomic.Int32
		ParallelFor(n, 4, func(lo, hi int) {
			calls.Add(1)
			for i := lo; i < hi; i++ {
				atomic.AddInt32(&hits[i], 1)
			}
		})
		for i, h := range hits {
			if h != 1 {
				t.Fatalf("n=%d: index %d visited %d times", n, i, h)
			}
		}
		if n == 0 && calls.Load() != 0 {
			t.Error("empty range should not call fn")
		}
	}
}
