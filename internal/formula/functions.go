package formula

import (
	"fmt"
	"math"

	"github.com/Knetic/govaluate"

	"github.com/san-kum/zetalab/internal/primes"
	"github.com/san-kum/zetalab/internal/series"
)

func unary(name string, fn func(float64) float64) govaluate.ExpressionFunction {
	return func(args ...interface{}) (interface{}, error) {
		if len(args) != 1 {
			return nil, fmt.Errorf("%s takes 1 argument, got %d: %w", name, len(args), ErrArity)
		}
		v, ok := args[0].(float64)
		if !ok {
			return nil, ErrNotNumber
		}
		return fn(v), nil
	}
}

func binary(name string, fn func(a, b float64) float64) govaluate.ExpressionFunction {
	return func(args ...interface{}) (interface{}, error) {
		if len(args) != 2 {
			return nil, fmt.Errorf("%s takes 2 arguments, got %d: %w", name, len(args), ErrArity)
		}
		a, ok1 := args[0].(float64)
		b, ok2 := args[1].(float64)
		if !ok1 || !ok2 {
			return nil, ErrNotNumber
		}
		return fn(a, b), nil
	}
}

func checked(name string, fn func(float64) (float64, error)) govaluate.ExpressionFunction {
	return func(args ...interface{}) (interface{}, error) {
		if len(args) != 1 {
			return nil, fmt.Errorf("%s takes 1 argument, got %d: %w", name, len(args), ErrArity)
		}
		v, ok := args[0].(float64)
		if !ok {
			return nil, ErrNotNumber
		}
		return fn(v)
	}
}

// tables holds π and ψ at the integers 0..len-1. It grows on demand so a
// grid of points costs one sieve up to its largest x.
type tables struct {
	pi  []float64
	psi []float64
}

func (t *tables) at(name string, x float64) (int, error) {
	if !(x <= primes.MaxLimit) {
		return 0, fmt.Errorf("%s(%g) is above %d: %w", name, x, primes.MaxLimit, ErrOutOfRange)
	}
	n := int(math.Floor(x))
	if n >= len(t.pi) {
		t.grow(min(max(n+1, 2*len(t.pi), 1024), primes.MaxLimit+1))
	}
	return n, nil
}

func (t *tables) grow(size int) {
	sieve := primes.Sieve(size - 1)
	t.pi = make([]float64, size)
	count := 0
	for n, ok := range sieve {
		if ok {
			count++
		}
		t.pi[n] = float64(count)
	}
	t.psi = primes.PsiSeries(series.IntRange(0, size-1))
}

func (t *tables) primeCount(x float64) (float64, error) {
	if !(x >= 2) {
		return 0, nil
	}
	n, err := t.at("pi_count", x)
	if err != nil {
		return 0, err
	}
	return t.pi[n], nil
}

func (t *tables) chebyshev(x float64) (float64, error) {
	if !(x >= 2) {
		return 0, nil
	}
	n, err := t.at("psi", x)
	if err != nil {
		return 0, err
	}
	return t.psi[n], nil
}

func functions() map[string]govaluate.ExpressionFunction {
	t := &tables{}
	return map[string]govaluate.ExpressionFunction{
		"log":      unary("log", math.Log),
		"ln":       unary("ln", math.Log),
		"log10":    unary("log10", math.Log10),
		"sqrt":     unary("sqrt", math.Sqrt),
		"exp":      unary("exp", math.Exp),
		"sin":      unary("sin", math.Sin),
		"cos":      unary("cos", math.Cos),
		"tan":      unary("tan", math.Tan),
		"abs":      unary("abs", math.Abs),
		"li":       unary("li", primes.LogIntegral),
		"psi":      checked("psi", t.chebyshev),
		"pi_count": checked("pi_count", t.primeCount),
		"pow":      binary("pow", math.Pow),
	}
}
