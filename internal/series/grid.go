package series

import "gonum.org/v1/gonum/floats"

// Linspace returns steps+1 evenly spaced values from start to end inclusive.
// A negative step count yields an empty grid.
func Linspace(start, end float64, steps int) []float64 {
	if steps < 0 {
		return []float64{}
	}
	if steps == 0 {
		return []float64{start}
	}
	dst := make([]float64, steps+1)
	return floats.Span(dst, start, end)
}

// IntRange returns lo, lo+1, ..., hi as float64 values.
func IntRange(lo, hi int) []float64 {
	if hi < lo {
		return []float64{}
	}
	out := make([]float64, 0, hi-lo+1)
	for n := lo; n <= hi; n++ {
		out = append(out, float64(n))
	}
	return out
}
