package experiment

import (
	"context"
	"fmt"
	"sort"

	"github.com/san-kum/zetalab/internal/config"
	"github.com/san-kum/zetalab/internal/series"
)

// View is one named computation producing a set of series.
type View struct {
	Name        string
	Description string
	Compute     func(ctx context.Context, cfg *config.Config) (*series.Set, error)
}

type Registry struct {
	views map[string]View
}

func NewRegistry() *Registry {
	r := &Registry{views: make(map[string]View)}

	r.register("zeta", "|ζ(1/2+it)| and its phase along the critical line", zetaView)
	r.register("landscape", "clamped |ζ| over the critical strip, one series per σ", landscapeView)
	r.register("twist", "spiral traced by n^(σ+iτ) for τ in [0,t]", twistView)
	r.register("euler", "Dirichlet partial sums against the Euler product", eulerView)
	r.register("grid", "1..x on a square grid, primes separated out", gridView)
	r.register("primes", "π(x) against x/ln x and Li(x)", primesView)
	r.register("psi", "Chebyshev ψ(x) against x", psiView)
	r.register("synth", "ψ(x) rebuilt from the first k zeros", synthView)
	r.register("pulse", "prime density pulse Σcos(γ ln x)/√k", pulseView)
	r.register("mix", "mixing board over a chosen set of zeros", mixView)
	r.register("error", "π(x) − Li(x) with the zero correction and RH bounds", errorView)
	r.register("spectrum", "FFT of the pulse in u = ln x", spectrumView)
	r.register("wave", "sin(γu) traces for the active zeros", waveView)
	r.register("formula", "custom formula against π(x)", formulaView)

	return r
}

func (r *Registry) register(name, desc string, fn func(context.Context, *config.Config) (*series.Set, error)) {
	r.views[name] = View{Name: name, Description: desc, Compute: fn}
}

func (r *Registry) Get(name string) (View, error) {
	v, ok := r.views[name]
	if !ok {
		return View{}, fmt.Errorf("%w: %s", series.ErrUnknownView, name)
	}
	return v, nil
}

// ListViews returns the registered view names in sorted order.
func (r *Registry) ListViews() []string {
	names := make([]string, 0, len(r.views))
	for name := range r.views {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
