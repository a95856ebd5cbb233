// Package zeros holds the imaginary parts of the first non-trivial zeros of
// the Riemann zeta function, ρ = 1/2 + iγ, in ascending order.
package zeros

// Count is the number of tabulated zeros.
const Count = 50

// Known lists γ₁ … γ₅₀ rounded to six decimals.
var Known = [Count]float64{
	14.134725, 21.022040, 25.010858, 30.424876, 32.935062,
	37.586178, 40.918719, 43.327073, 48.005151, 49.773832,
	52.970321, 56.446248, 59.347044, 60.831779, 65.112544,
	67.079811, 69.546402, 72.067158, 75.704691, 77.144840,
	79.337375, 82.910381, 84.735493, 87.425275, 88.809111,
	92.491899, 94.651344, 95.870634, 98.831194, 101.317851,
	103.725538, 105.446623, 107.168611, 111.029536, 111.874659,
	114.320221, 116.226680, 118.790783, 121.370125, 122.946829,
	124.256819, 127.516684, 129.578704, 131.087689, 133.497737,
	134.756510, 138.116042, 139.736209, 141.123707, 143.111846,
}

// First returns a copy of the first k zeros, with k clamped to [0, Count].
func First(k int) []float64 {
	if k < 0 {
		k = 0
	}
	if k > Count {
		k = Count
	}
	out := make([]float64, k)
	copy(out, Known[:k])
	return out
}

// All returns a copy of the whole table.
func All() []float64 { return First(Count) }
