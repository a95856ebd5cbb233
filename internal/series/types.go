package series

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

type Point struct {
	X float64
	Y float64
}

type Series struct {
	Name string
	X    []float64
	Y    []float64
}

func New(name string, x, y []float64) Series {
	return Series{Name: name, X: x, Y: y}
}

// FromPoints splits points into a series; an empty input gives an empty
// series rather than a zero-filled one.
func FromPoints(name string, pts []Point) Series {
	s := Series{Name: name, X: make([]float64, len(pts)), Y: make([]float64, len(pts))}
	for i, p := range pts {
		s.X[i] = p.X
		s.Y[i] = p.Y
	}
	return s
}

func (s Series) Len() int {
	if len(s.X) < len(s.Y) {
		return len(s.X)
	}
	return len(s.Y)
}

func (s Series) Points() []Point {
	pts := make([]Point, s.Len())
	for i := range pts {
		pts[i] = Point{X: s.X[i], Y: s.Y[i]}
	}
	return pts
}

// Finite returns a copy without NaN or Inf samples.
func (s Series) Finite() Series {
	out := Series{Name: s.Name}
	for i := 0; i < s.Len(); i++ {
		if IsFinite(s.Y[i]) && IsFinite(s.X[i]) {
			out.X = append(out.X, s.X[i])
			out.Y = append(out.Y, s.Y[i])
		}
	}
	return out
}

// Bounds returns the min and max of the finite y values.
func (s Series) Bounds() (lo, hi float64, ok bool) {
	f := s.Finite()
	if f.Len() == 0 {
		return 0, 0, false
	}
	return floats.Min(f.Y), floats.Max(f.Y), true
}

type Set struct {
	Title  string
	Series []Series
	// Warnings are problems that left one series empty without failing the
	// whole set, such as a formula that does not parse.
	Warnings []string
}

func (s *Set) Add(ser Series) { s.Series = append(s.Series, ser) }

func (s *Set) Warn(msg string) { s.Warnings = append(s.Warnings, msg) }

func (s *Set) Get(name string) (Series, bool) {
	for _, ser := range s.Series {
		if ser.Name == name {
			return ser, true
		}
	}
	return Series{}, false
}

func (s *Set) Names() []string {
	names := make([]string, len(s.Series))
	for i, ser := range s.Series {
		names[i] = ser.Name
	}
	return names
}

func IsFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// Clamp caps v at ceiling; NaN and +Inf are mapped to ceiling as well so the
// pole of zeta plots as a flat top.
func Clamp(v, ceiling float64) float64 {
	if math.IsNaN(v) || v > ceiling {
		return ceiling
	}
	return v
}
