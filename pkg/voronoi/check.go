package voronoi

import (
	"github.com/pkg/errors"
	"go.uber.org/multierr"
)

const boundsTolerance = 1e-9

// Check verifies the structural invariants of a built diagram and returns
// every violation found.
func (d *Diagram) Check() error {
	var errs error

	type pair struct{ a, b *Site }
	seen := make(map[pair]int, len(d.edges))
	for _, e := range d.edges {
		l, r := e.sites[Left], e.sites[Right]
		switch {
		case l == nil || r == nil:
			errs = multierr.Append(errs, errors.Errorf("edge %d: missing site", e.index))
			continue
		case l == r:
			errs = multierr.Append(errs, errors.Errorf("edge %d: both sides are %v", e.index, l))
			continue
		}
		key := pair{l, r}
		if l.index > r.index {
			key = pair{r, l}
		}
		if prev, ok := seen[key]; ok {
			errs = multierr.Append(errs, errors.Errorf("edges %d and %d separate the same sites", prev, e.index))
		}
		seen[key] = e.index

		if e.clipped {
			for _, p := range e.clippedEnds {
				if p.X < d.bounds.Left()-boundsTolerance || p.X > d.bounds.Right()+boundsTolerance ||
					p.Y < d.bounds.Top()-boundsTolerance || p.Y > d.bounds.Bottom()+boundsTolerance {
					errs = multierr.Append(errs, errors.Errorf("edge %d: clipped end (%g, %g) outside bounds", e.index, p.X, p.Y))
				}
			}
		}
	}

	stats := d.pools.Stats()
	if stats.Halfedges.Live != 0 {
		errs = multierr.Append(errs, errors.Errorf("%d halfedges still live", stats.Halfedges.Live))
	}
	if stats.Vertices.Live != 0 {
		errs = multierr.Append(errs, errors.Errorf("%d vertices still live", stats.Vertices.Live))
	}
	return errs
}
