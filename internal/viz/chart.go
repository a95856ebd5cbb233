package viz

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/zetalab/internal/series"
)

type ChartOptions struct {
	Width     int
	Height    int
	Precision uint
	// Only limits the plotted series by name; empty plots everything.
	Only []string
}

func DefaultChartOptions() ChartOptions {
	return ChartOptions{Width: 80, Height: 15, Precision: 2}
}

// IsMarker reports whether a series is a list of positions rather than a
// curve: fewer than two samples, or every y exactly zero.
func IsMarker(s series.Series) bool {
	if s.Len() < 2 {
		return true
	}
	for _, y := range s.Y[:s.Len()] {
		if y != 0 {
			return false
		}
	}
	return true
}

// Chart draws the curves of set on a shared x axis. Each curve is resampled
// onto Width columns by linear interpolation; columns outside a curve's
// x range are left blank. Marker series are listed under the chart.
func Chart(set *series.Set, opts ChartOptions) string {
	if opts.Width <= 0 {
		opts.Width = 80
	}
	if opts.Height <= 0 {
		opts.Height = 15
	}

	var curves, markers []series.Series
	for _, s := range set.Series {
		if len(opts.Only) > 0 && !contains(opts.Only, s.Name) {
			continue
		}
		if IsMarker(s) {
			markers = append(markers, s)
		} else {
			curves = append(curves, s.Finite())
		}
	}

	var b strings.Builder
	if len(curves) > 0 {
		lo, hi := xRange(curves)
		data := make([][]float64, 0, len(curves))
		names := make([]string, 0, len(curves))
		for _, c := range curves {
			if c.Len() == 0 {
				continue
			}
			data = append(data, Resample(c, lo, hi, opts.Width))
			names = append(names, c.Name)
		}
		if len(data) > 0 {
			colors := CurrentTheme.Series
			seriesColors := make([]asciigraph.AnsiColor, len(data))
			for i := range data {
				seriesColors[i] = colors[i%len(colors)]
			}
			b.WriteString(asciigraph.PlotMany(data,
				asciigraph.Height(opts.Height),
				asciigraph.Precision(opts.Precision),
				asciigraph.Caption(fmt.Sprintf("%s   x ∈ [%.4g, %.4g]", set.Title, lo, hi)),
				asciigraph.SeriesColors(seriesColors...),
				asciigraph.SeriesLegends(names...),
			))
			b.WriteString("\n")
		}
	}
	if len(curves) == 0 && set.Title != "" {
		b.WriteString(Title.Render(set.Title) + "\n")
	}

	for _, m := range markers {
		b.WriteString(markerLine(m) + "\n")
	}
	return b.String()
}

func markerLine(m series.Series) string {
	parts := make([]string, 0, m.Len())
	for i := 0; i < m.Len(); i++ {
		if m.Y[i] == 0 {
			parts = append(parts, fmt.Sprintf("%.4g", m.X[i]))
		} else {
			parts = append(parts, fmt.Sprintf("(%.4g, %.4g)", m.X[i], m.Y[i]))
		}
	}
	if len(parts) == 0 {
		parts = append(parts, "none")
	}
	return Subtle.Render(m.Name+": ") + strings.Join(parts, ", ")
}

// Resample evaluates s at n evenly spaced x values on [lo, hi]. s must be
// sorted by x. Points outside s's own range become NaN, which asciigraph
// leaves blank.
func Resample(s series.Series, lo, hi float64, n int) []float64 {
	out := make([]float64, n)
	if s.Len() == 0 || n <= 0 {
		for i := range out {
			out[i] = math.NaN()
		}
		return out
	}
	xs, ys := s.X[:s.Len()], s.Y[:s.Len()]
	for i := range out {
		x := lo
		if n > 1 {
			x = lo + (hi-lo)*float64(i)/float64(n-1)
		}
		out[i] = interpolate(xs, ys, x)
	}
	return out
}

func interpolate(xs, ys []float64, x float64) float64 {
	if x < xs[0] || x > xs[len(xs)-1] {
		return math.NaN()
	}
	j := sort.SearchFloat64s(xs, x)
	if j < len(xs) && xs[j] == x {
		return ys[j]
	}
	if j == 0 {
		return ys[0]
	}
	x0, x1 := xs[j-1], xs[j]
	t := (x - x0) / (x1 - x0)
	return ys[j-1] + t*(ys[j]-ys[j-1])
}

func xRange(curves []series.Series) (lo, hi float64) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, c := range curves {
		if c.Len() == 0 {
			continue
		}
		lo = math.Min(lo, c.X[0])
		hi = math.Max(hi, c.X[c.Len()-1])
	}
	if lo > hi {
		return 0, 0
	}
	return lo, hi
}

func bounds(values []float64) (lo, hi float64, ok bool) {
	return series.New("", values, values).Bounds()
}

func finite(v float64) bool { return series.IsFinite(v) }

func contains(names []string, name string) bool {
	for _, n := range names {
		if n == name {
			return true
		}
	}
	return false
}
