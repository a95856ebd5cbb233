package viz

import (
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/san-kum/zetalab/internal/series"
)

type Vec3 struct {
	X, Y, Z float64
}

func (v Vec3) Add(o Vec3) Vec3      { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }
func (v Vec3) Sub(o Vec3) Vec3      { return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }
func (v Vec3) Scale(s float64) Vec3 { return Vec3{v.X * s, v.Y * s, v.Z * s} }

// Camera looks down the -z axis from Distance and rotates the scene about
// its origin.
type Camera struct {
	Distance   float64
	RotX, RotY float64
	Zoom       float64
}

func NewCamera() *Camera {
	return &Camera{Distance: 50, RotX: -1.0, RotY: 0.6, Zoom: 1}
}

func (c *Camera) RotateX(a float64) { c.RotX += a }
func (c *Camera) RotateY(a float64) { c.RotY += a }
func (c *Camera) ZoomIn()           { c.Zoom = math.Min(10, c.Zoom*1.2) }
func (c *Camera) ZoomOut()          { c.Zoom = math.Max(0.1, c.Zoom/1.2) }

func (c *Camera) rotate(p Vec3) Vec3 {
	cx, sx := math.Cos(c.RotX), math.Sin(c.RotX)
	p.Y, p.Z = p.Y*cx-p.Z*sx, p.Y*sx+p.Z*cx
	cy, sy := math.Cos(c.RotY), math.Sin(c.RotY)
	p.X, p.Z = p.X*cy+p.Z*sy, -p.X*sy+p.Z*cy
	return p
}

// Project maps a scene point to canvas sub-pixels, with depth and whether
// the point lands on the canvas.
func (c *Camera) Project(p Vec3, sw, sh int) (int, int, float64, bool) {
	rot := c.rotate(p).Scale(c.Zoom)
	if rot.Z >= c.Distance-0.1 {
		return 0, 0, 0, false
	}
	scale := c.Distance / (c.Distance - rot.Z)
	unit := float64(min(sw, sh)) / 3
	sx := int(rot.X*scale*unit) + sw/2
	sy := int(-rot.Y*scale*unit) + sh/2
	return sx, sy, rot.Z, sx >= 0 && sx < sw && sy >= 0 && sy < sh
}

type Edge struct{ Start, End Vec3 }

type Wireframe struct{ Edges []Edge }

func (w *Wireframe) AddEdge(s, e Vec3) { w.Edges = append(w.Edges, Edge{s, e}) }

// SurfaceWireframe turns a landscape set (one series per σ, x = t,
// y = |ζ|) into a mesh centred on the origin with every axis scaled to
// [-1, 1]. The σ value is read from the series name "σ=<value>"; series
// whose name does not parse are spaced evenly.
func SurfaceWireframe(set *series.Set) *Wireframe {
	w := &Wireframe{}
	cols := len(set.Series)
	if cols == 0 {
		return w
	}

	sigmas := make([]float64, cols)
	for i, s := range set.Series {
		v, err := strconv.ParseFloat(strings.TrimPrefix(s.Name, "σ="), 64)
		if err != nil {
			v = float64(i)
		}
		sigmas[i] = v
	}
	slo, shi := sigmas[0], sigmas[cols-1]
	tlo, thi := 0.0, 0.0
	if n := set.Series[0].Len(); n > 0 {
		tlo, thi = set.Series[0].X[0], set.Series[0].X[n-1]
	}
	zlo, zhi := math.Inf(1), math.Inf(-1)
	for _, s := range set.Series {
		if l, h, ok := s.Bounds(); ok {
			zlo, zhi = math.Min(zlo, l), math.Max(zhi, h)
		}
	}
	if zlo > zhi {
		return w
	}

	norm := func(v, lo, hi float64) float64 { return 2*(v-lo)/nonZero(hi-lo) - 1 }
	point := func(i, j int) (Vec3, bool) {
		s := set.Series[i]
		if j >= s.Len() || !series.IsFinite(s.Y[j]) {
			return Vec3{}, false
		}
		return Vec3{
			X: norm(sigmas[i], slo, shi),
			Y: norm(s.Y[j], zlo, zhi) * 0.6,
			Z: norm(s.X[j], tlo, thi),
		}, true
	}

	for i := range set.Series {
		for j := 0; j < set.Series[i].Len(); j++ {
			p, ok := point(i, j)
			if !ok {
				continue
			}
			if q, ok := point(i, j+1); ok {
				w.AddEdge(p, q)
			}
			if i+1 < cols {
				if q, ok := point(i+1, j); ok {
					w.AddEdge(p, q)
				}
			}
		}
	}
	return w
}

type projectedEdge struct {
	x1, y1, x2, y2 int
	depth          float64
}

// Render3D draws the wireframe far-to-near onto the canvas.
func Render3D(c *Canvas, w *Wireframe, cam *Camera) {
	if c == nil || w == nil || cam == nil {
		return
	}
	pw, ph := c.Width*2, c.Height*4
	proj := make([]projectedEdge, 0, len(w.Edges))
	for _, e := range w.Edges {
		x1, y1, d1, v1 := cam.Project(e.Start, pw, ph)
		x2, y2, d2, v2 := cam.Project(e.End, pw, ph)
		if v1 || v2 {
			proj = append(proj, projectedEdge{x1, y1, x2, y2, (d1 + d2) / 2})
		}
	}
	sort.Slice(proj, func(i, j int) bool { return proj[i].depth < proj[j].depth })
	for _, e := range proj {
		c.DrawLine(e.x1, e.y1, e.x2, e.y2)
	}
}

// RenderSurface draws a landscape set as a wireframe seen from cam.
func RenderSurface(set *series.Set, width, height int, cam *Camera) string {
	c := NewCanvas(width, height)
	Render3D(c, SurfaceWireframe(set), cam)
	return Title.Render(set.Title) + "\n" + Subtitle.Render(c.String())
}
