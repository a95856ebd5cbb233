package primes

import (
	"context"
	"math"
)

// MaxLimit is the largest x the interactive layers hand to the sieve or to
// ψ. Above it a single table no longer fits comfortably in memory.
const MaxLimit = 10_000_000

// Sieve returns a table of length max+1 that is true exactly at the primes.
// A negative max gives an empty table.
func Sieve(max int) []bool {
	table, _ := SieveContext(context.Background(), max)
	return table
}

// SieveContext is Sieve with a cancellation check before each crossing-off
// pass.
func SieveContext(ctx context.Context, max int) ([]bool, error) {
	if max < 0 {
		return []bool{}, nil
	}
	isPrime := make([]bool, max+1)
	for i := 2; i <= max; i++ {
		isPrime[i] = true
	}

	for p := 2; p*p <= max; p++ {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}
		if !isPrime[p] {
			continue
		}
		for m := p * p; m <= max; m += p {
			isPrime[m] = false
		}
	}
	return isPrime, nil
}

// Primes lists the primes up to max in ascending order.
func Primes(max int) []int {
	table := Sieve(max)
	out := make([]int, 0)
	for n, ok := range table {
		if ok {
			out = append(out, n)
		}
	}
	return out
}

// IsPrime tests a single integer by 6k±1 trial division.
func IsPrime(n int) bool {
	if n < 2 {
		return false
	}
	if n == 2 || n == 3 {
		return true
	}
	if n%2 == 0 || n%3 == 0 {
		return false
	}
	for i := 5; i*i <= n; i += 6 {
		if n%i == 0 || n%(i+2) == 0 {
			return false
		}
	}
	return true
}

type Cell struct {
	N    int
	X, Y int
}

type GridLayout struct {
	Size       int
	Primes     []Cell
	Composites []Cell
}

// Grid lays 1..limit out row by row on a ⌊√limit⌋-wide square and splits the
// cells into primes and non-primes (1 counts as a non-prime).
func Grid(limit int) GridLayout {
	size := int(math.Sqrt(float64(limit)))
	if size < 1 {
		return GridLayout{}
	}
	g := GridLayout{Size: size}
	for n := 1; n <= limit; n++ {
		c := Cell{N: n, X: (n - 1) % size, Y: (n - 1) / size}
		if IsPrime(n) {
			g.Primes = append(g.Primes, c)
		} else {
			g.Composites = append(g.Composites, c)
		}
	}
	return g
}
