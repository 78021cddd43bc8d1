package voronoi

import (
	"fmt"

	"github.com/0x0FACED/go-delaunay/pkg/geom"
)

// Site is an input point together with the edges bounding its region.
type Site struct {
	poolTag

	index  int
	coord  geom.Point
	weight float64
	edges  []*Edge

	// scratch for region construction
	ordered      []*Edge
	orientations []Side
	region       geom.Polygon
}

func (s *Site) tag() *poolTag { return &s.poolTag }

func (s *Site) reset() {
	clear(s.edges)
	clear(s.ordered)
	s.edges = s.edges[:0]
	s.ordered = s.ordered[:0]
	s.orientations = s.orientations[:0]
	s.region = s.region[:0]
	s.index = 0
	s.coord = geom.Point{}
	s.weight = 0
}

// Index is the position of the site's point in the input.
func (s *Site) Index() int { return s.index }

func (s *Site) Coord() geom.Point { return s.coord }

// Weight is carried along with the site; no geometry reads it.
func (s *Site) Weight() float64 { return s.weight }

// Edges returns the edges bounding the site's region, in creation order.
func (s *Site) Edges() []*Edge { return s.edges }

func (s *Site) Dist(p geom.Point) float64 {
	return geom.Dist(s.coord, p)
}

// NeighborSites returns the sites sharing an edge with s.
func (s *Site) NeighborSites() []*Site {
	out := make([]*Site, 0, len(s.edges))
	for _, e := range s.edges {
		if n := e.neighbor(s); n != nil {
			out = append(out, n)
		}
	}
	return out
}

func (s *Site) addEdge(e *Edge) {
	s.edges = append(s.edges, e)
}

func (s *Site) String() string {
	return fmt.Sprintf("site %d (%g, %g)", s.index, s.coord.X, s.coord.Y)
}
