package voronoi

import "github.com/pkg/errors"

var (
	// ErrDegenerateGeometry is returned for a region that cannot be built:
	// its edges touch the vertex at infinity, do not chain, or are not visible.
	ErrDegenerateGeometry = errors.New("voronoi: degenerate geometry")

	// ErrNoSite is returned when a query names a site the diagram does not have.
	ErrNoSite = errors.New("voronoi: no such site")
)
