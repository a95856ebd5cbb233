// Package formula compiles a user-typed arithmetic expression in x and
// evaluates it over a grid.
//
// Expressions are parsed once by govaluate. Every literal is a float64, so
// "1/0" is +Inf rather than an integer fault. The caret is accepted as the
// power operator and rewritten to "**" before parsing.
//
// Available names: x, pi, e. Functions: log and ln (natural), log10, sqrt,
// exp, sin, cos, tan, abs, pow(a, b), li(x), psi(x), pi_count(x). The
// arithmetic functions psi and pi_count skip points above primes.MaxLimit.
// A compiled Formula caches their tables and is not safe for concurrent use.
package formula

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/Knetic/govaluate"

	"github.com/san-kum/zetalab/internal/series"
)

var (
	// ErrArity indicates a function called with the wrong number of arguments.
	ErrArity = errors.New("formula: wrong number of arguments")

	// ErrNotNumber indicates an argument or result that is not a number.
	ErrNotNumber = errors.New("formula: value is not a number")

	// ErrNonFinite indicates the expression produced NaN or ±Inf at a point.
	ErrNonFinite = errors.New("formula: non-finite value")

	// ErrOutOfRange indicates a psi or pi_count argument above
	// primes.MaxLimit.
	ErrOutOfRange = errors.New("formula: argument out of range")
)

var constants = map[string]float64{
	"pi": math.Pi,
	"e":  math.E,
}

type Formula struct {
	src  string
	expr *govaluate.EvaluableExpression
}

// Compile parses src. The returned error is meant to be shown to the user.
func Compile(src string) (*Formula, error) {
	trimmed := strings.TrimSpace(src)
	if trimmed == "" {
		return nil, errors.New("syntax error: empty expression")
	}
	expr, err := govaluate.NewEvaluableExpressionWithFunctions(
		strings.ReplaceAll(trimmed, "^", "**"), functions())
	if err != nil {
		return nil, fmt.Errorf("syntax error: %v", err)
	}

	var unknown []string
	for _, v := range expr.Vars() {
		if _, ok := constants[v]; !ok && v != "x" {
			unknown = append(unknown, v)
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return nil, fmt.Errorf("syntax error: unknown name %s (only x, pi and e are defined)", strings.Join(unknown, ", "))
	}

	f := &Formula{src: trimmed, expr: expr}
	// A trial evaluation surfaces arity mistakes, which govaluate only
	// reports at run time.
	if _, err := f.Eval(2); errors.Is(err, ErrArity) {
		return nil, fmt.Errorf("syntax error: %v", err)
	}
	return f, nil
}

func (f *Formula) String() string { return f.src }

// Eval evaluates the formula at x. Non-finite results are reported as
// ErrNonFinite alongside the value.
func (f *Formula) Eval(x float64) (float64, error) {
	params := map[string]interface{}{"x": x}
	for k, v := range constants {
		params[k] = v
	}
	out, err := f.expr.Evaluate(params)
	if err != nil {
		return math.NaN(), err
	}
	v, ok := out.(float64)
	if !ok {
		return math.NaN(), ErrNotNumber
	}
	if !series.IsFinite(v) {
		return v, ErrNonFinite
	}
	return v, nil
}

type Result struct {
	Points []series.Point
	// Err is the parse error message, empty on success.
	Err string
}

func (r Result) OK() bool { return r.Err == "" }

func (r Result) Series(name string) series.Series {
	return series.FromPoints(name, r.Points)
}

// Evaluate compiles src and evaluates it at every x of the grid. A parse
// failure gives a nil point list and a message; points that fail to
// evaluate or come out non-finite are skipped.
func Evaluate(src string, xs []float64) Result {
	f, err := Compile(src)
	if err != nil {
		return Result{Err: err.Error()}
	}
	pts := make([]series.Point, 0, len(xs))
	for _, x := range xs {
		y, err := f.Eval(x)
		if err != nil {
			continue
		}
		pts = append(pts, series.Point{X: x, Y: y})
	}
	return Result{Points: pts}
}
