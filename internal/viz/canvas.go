package viz

import (
	"fmt"
	"math"
	"strings"

	"github.com/san-kum/zetalab/internal/series"
)

// Braille cells hold 2x4 dots:
//
//	1 4
//	2 5
//	3 6
//	7 8
var pixelMap = [4][2]int{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

const brailleBlank = 0x2800

// Canvas is a grid of braille cells addressed in sub-pixels: Width*2 by
// Height*4.
type Canvas struct {
	Width, Height int
	Grid          [][]rune
}

func NewCanvas(w, h int) *Canvas {
	c := &Canvas{Width: w, Height: h, Grid: make([][]rune, h)}
	for i := range c.Grid {
		c.Grid[i] = make([]rune, w)
	}
	c.Clear()
	return c
}

func (c *Canvas) Set(x, y int) {
	if x < 0 || y < 0 {
		return
	}
	col, row := x/2, y/4
	if col >= c.Width || row >= c.Height {
		return
	}
	c.Grid[row][col] |= rune(pixelMap[y%4][x%2])
}

// Lit reports whether sub-pixel (x, y) is set.
func (c *Canvas) Lit(x, y int) bool {
	if x < 0 || y < 0 {
		return false
	}
	col, row := x/2, y/4
	if col >= c.Width || row >= c.Height {
		return false
	}
	return c.Grid[row][col]&rune(pixelMap[y%4][x%2]) != 0
}

func (c *Canvas) Clear() {
	for i := range c.Grid {
		for j := range c.Grid[i] {
			c.Grid[i][j] = brailleBlank
		}
	}
}

// DrawLine is Bresenham between two sub-pixels.
func (c *Canvas) DrawLine(x0, y0, x1, y1 int) {
	dx, dy := absInt(x1-x0), absInt(y1-y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx - dy
	for {
		c.Set(x0, y0)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

func (c *Canvas) String() string {
	var b strings.Builder
	for _, row := range c.Grid {
		b.WriteString(string(row))
		b.WriteByte('\n')
	}
	return b.String()
}

type ScatterOptions struct {
	Width, Height int
	Joined        bool
	Equal         bool
	// Only limits the drawn series by name; bounds still cover them all.
	Only []string
}

// Scatter plots every series of set in the plane, y up. With Joined the
// samples are connected as polylines. With Equal both axes share one scale,
// so circles stay round.
func Scatter(set *series.Set, opts ScatterOptions) string {
	c := ScatterCanvas(set, opts)
	if c == nil {
		return Title.Render(set.Title) + "\n" + Subtle.Render("no finite samples") + "\n"
	}
	xlo, xhi, ylo, yhi, _ := planeBounds(set)

	var b strings.Builder
	b.WriteString(Title.Render(set.Title) + "\n")
	b.WriteString(Subtitle.Render(c.String()))
	b.WriteString(Subtle.Render(fmt.Sprintf("x ∈ [%.4g, %.4g]  y ∈ [%.4g, %.4g]", xlo, xhi, ylo, yhi)) + "\n")
	return b.String()
}

// ScatterCanvas draws the plot of Scatter without decoration. It returns nil
// when set has no finite samples.
func ScatterCanvas(set *series.Set, opts ScatterOptions) *Canvas {
	if opts.Width <= 0 {
		opts.Width = 60
	}
	if opts.Height <= 0 {
		opts.Height = 20
	}

	xlo, xhi, ylo, yhi, ok := planeBounds(set)
	if !ok {
		return nil
	}
	pw, ph := float64(opts.Width*2-1), float64(opts.Height*4-1)
	sx, sy := pw/nonZero(xhi-xlo), ph/nonZero(yhi-ylo)
	if opts.Equal {
		// Terminal cells are about twice as tall as wide; a braille dot is
		// therefore close to square.
		s := math.Min(sx, sy)
		sx, sy = s, s
	}

	c := NewCanvas(opts.Width, opts.Height)
	toPixel := func(x, y float64) (int, int) {
		return int(math.Round((x - xlo) * sx)), int(math.Round(ph - (y-ylo)*sy))
	}

	for _, s := range set.Series {
		if len(opts.Only) > 0 && !contains(opts.Only, s.Name) {
			continue
		}
		f := s.Finite()
		for i := 0; i < f.Len(); i++ {
			px, py := toPixel(f.X[i], f.Y[i])
			if opts.Joined && i > 0 {
				qx, qy := toPixel(f.X[i-1], f.Y[i-1])
				c.DrawLine(qx, qy, px, py)
			} else {
				c.Set(px, py)
			}
		}
	}
	return c
}

func planeBounds(set *series.Set) (xlo, xhi, ylo, yhi float64, ok bool) {
	xlo, ylo = math.Inf(1), math.Inf(1)
	xhi, yhi = math.Inf(-1), math.Inf(-1)
	for _, s := range set.Series {
		f := s.Finite()
		for i := 0; i < f.Len(); i++ {
			xlo, xhi = math.Min(xlo, f.X[i]), math.Max(xhi, f.X[i])
			ylo, yhi = math.Min(ylo, f.Y[i]), math.Max(yhi, f.Y[i])
			ok = true
		}
	}
	return
}

func nonZero(v float64) float64 {
	if v == 0 {
		return 1
	}
	return v
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
