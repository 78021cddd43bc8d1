package voronoi

import (
	"fmt"
	"math"

	"github.com/0x0FACED/go-delaunay/pkg/geom"
)

// Edge is the bisector of two sites, stored as the line ax + by = c. The
// segment between its two sites is a Delaunay edge; the part of the line
// between its two vertices is a Voronoi edge.
type Edge struct {
	poolTag

	index   int
	a, b, c float64

	sites    [2]*Site
	vertices [2]Vertex

	clipped     bool
	clippedEnds [2]geom.Point
}

func (e *Edge) tag() *poolTag { return &e.poolTag }

func (e *Edge) reset() {
	*e = Edge{poolTag: e.poolTag}
}

// bisect sets up e as the perpendicular bisector of s0 and s1. Either a or b
// is normalized to 1.
func (e *Edge) bisect(s0, s1 *Site) {
	dx := s1.coord.X - s0.coord.X
	dy := s1.coord.Y - s0.coord.Y
	c := s0.coord.X*dx + s0.coord.Y*dy + (dx*dx+dy*dy)*0.5

	if math.Abs(dx) > math.Abs(dy) {
		e.a, e.b, e.c = 1, dy/dx, c/dx
	} else {
		e.a, e.b, e.c = dx/dy, 1, c/dy
	}
	e.sites = [2]*Site{s0, s1}
}

func (e *Edge) Index() int { return e.index }

// Line returns the coefficients of ax + by = c.
func (e *Edge) Line() (a, b, c float64) { return e.a, e.b, e.c }

func (e *Edge) Site(side Side) *Site { return e.sites[side] }
func (e *Edge) LeftSite() *Site      { return e.sites[Left] }
func (e *Edge) RightSite() *Site     { return e.sites[Right] }

func (e *Edge) Vertex(side Side) Vertex { return e.vertices[side] }
func (e *Edge) LeftVertex() Vertex      { return e.vertices[Left] }
func (e *Edge) RightVertex() Vertex     { return e.vertices[Right] }

func (e *Edge) SetVertex(side Side, v Vertex) {
	e.vertices[side] = v
}

// IsPartOfConvexHull reports whether the edge is unbounded, which is the case
// exactly when its two sites are neighbors on the convex hull.
func (e *Edge) IsPartOfConvexHull() bool {
	return e.vertices[Left].IsNone() || e.vertices[Right].IsNone()
}

func (e *Edge) SitesDistance() float64 {
	return geom.Dist(e.sites[Left].coord, e.sites[Right].coord)
}

// DelaunayLine is the segment between the two sites.
func (e *Edge) DelaunayLine() geom.Segment {
	return geom.Segment{A: e.sites[Left].coord, B: e.sites[Right].coord}
}

// VoronoiSegment is the visible part of the edge. The second result is false
// when no part of the edge lies inside the plot bounds.
func (e *Edge) VoronoiSegment() (geom.Segment, bool) {
	if !e.clipped {
		return geom.Segment{}, false
	}
	return geom.Segment{A: e.clippedEnds[Left], B: e.clippedEnds[Right]}, true
}

func (e *Edge) Clipped() bool { return e.clipped }

// ClippedEnds holds the visible ends, indexed by Side. Meaningless unless Clipped.
func (e *Edge) ClippedEnds() [2]geom.Point { return e.clippedEnds }

func (e *Edge) neighbor(s *Site) *Site {
	switch s {
	case e.sites[Left]:
		return e.sites[Right]
	case e.sites[Right]:
		return e.sites[Left]
	}
	return nil
}

// ClipVertices computes the part of the edge visible inside bounds. If the
// edge misses bounds it stays unclipped.
func (e *Edge) ClipVertices(bounds geom.Rect) {
	e.clipped = false

	xmin, ymin := bounds.Left(), bounds.Top()
	xmax, ymax := bounds.Right(), bounds.Bottom()
	a, b, c := e.a, e.b, e.c

	var v0, v1 Vertex
	if a == 1 && b >= 0 {
		v0, v1 = e.vertices[Right], e.vertices[Left]
	} else {
		v0, v1 = e.vertices[Left], e.vertices[Right]
	}

	var x0, y0, x1, y1 float64
	if a == 1 {
		y0 = ymin
		if v0.IsFinite() && v0.coord.Y > ymin {
			y0 = v0.coord.Y
		}
		if y0 > ymax {
			return
		}
		x0 = c - b*y0

		y1 = ymax
		if v1.IsFinite() && v1.coord.Y < ymax {
			y1 = v1.coord.Y
		}
		if y1 < ymin {
			return
		}
		x1 = c - b*y1

		if (x0 > xmax && x1 > xmax) || (x0 < xmin && x1 < xmin) {
			return
		}

		if x0 > xmax {
			x0 = xmax
			y0 = (c - x0) / b
		} else if x0 < xmin {
			x0 = xmin
			y0 = (c - x0) / b
		}
		if x1 > xmax {
			x1 = xmax
			y1 = (c - x1) / b
		} else if x1 < xmin {
			x1 = xmin
			y1 = (c - x1) / b
		}
	} else {
		x0 = xmin
		if v0.IsFinite() && v0.coord.X > xmin {
			x0 = v0.coord.X
		}
		if x0 > xmax {
			return
		}
		y0 = c - a*x0

		x1 = xmax
		if v1.IsFinite() && v1.coord.X < xmax {
			x1 = v1.coord.X
		}
		if x1 < xmin {
			return
		}
		y1 = c - a*x1

		if (y0 > ymax && y1 > ymax) || (y0 < ymin && y1 < ymin) {
			return
		}

		if y0 > ymax {
			y0 = ymax
			x0 = (c - y0) / a
		} else if y0 < ymin {
			y0 = ymin
			x0 = (c - y0) / a
		}
		if y1 > ymax {
			y1 = ymax
			x1 = (c - y1) / a
		} else if y1 < ymin {
			y1 = ymin
			x1 = (c - y1) / a
		}
	}

	e.clipped = true
	if v0.Same(e.vertices[Left]) {
		e.clippedEnds[Left] = geom.Pt(x0, y0)
		e.clippedEnds[Right] = geom.Pt(x1, y1)
	} else {
		e.clippedEnds[Right] = geom.Pt(x0, y0)
		e.clippedEnds[Left] = geom.Pt(x1, y1)
	}
}

func (e *Edge) String() string {
	return fmt.Sprintf("edge %d; sites %v, %v; vertices %v, %v", e.index,
		e.sites[Left], e.sites[Right], e.vertices[Left], e.vertices[Right])
}
