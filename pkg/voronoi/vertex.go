package voronoi

import (
	"fmt"
	"math"

	"github.com/0x0FACED/go-delaunay/pkg/geom"
)

// Side picks one of the two ends of an edge, or one of the two sites it
// separates.
type Side uint8

const (
	Left Side = iota
	Right
)

func (s Side) Other() Side {
	return 1 - s
}

func (s Side) String() string {
	if s == Left {
		return "left"
	}
	return "right"
}

type vertexKind uint8

const (
	vertexNone vertexKind = iota
	vertexFinite
	vertexAtInfinity
)

// Vertex is an end of a Voronoi edge. The zero Vertex is "none": the edge
// runs off to infinity on that side.
type Vertex struct {
	kind  vertexKind
	index int
	coord geom.Point
}

// AtInfinity marks an intersection that could not be resolved.
var AtInfinity = Vertex{kind: vertexAtInfinity, index: -1, coord: geom.Pt(math.NaN(), math.NaN())}

func finiteVertex(p geom.Point, index int) Vertex {
	return Vertex{kind: vertexFinite, index: index, coord: p}
}

func (v Vertex) IsNone() bool       { return v.kind == vertexNone }
func (v Vertex) IsFinite() bool     { return v.kind == vertexFinite }
func (v Vertex) IsAtInfinity() bool { return v.kind == vertexAtInfinity }

// Index is the order in which the sweep resolved the vertex.
func (v Vertex) Index() int { return v.index }

func (v Vertex) Coord() geom.Point { return v.coord }

// Same reports whether v and o are the same vertex. Two "none" ends are the same.
func (v Vertex) Same(o Vertex) bool {
	if v.kind != o.kind {
		return false
	}
	return v.kind != vertexFinite || v.index == o.index
}

func (v Vertex) String() string {
	switch v.kind {
	case vertexFinite:
		return fmt.Sprintf("vertex %d (%g, %g)", v.index, v.coord.X, v.coord.Y)
	case vertexAtInfinity:
		return "vertex at infinity"
	}
	return "no vertex"
}

const parallelEpsilon = 1e-10

// intersect returns the point where the bisectors of h0 and h1 cross, if it
// lies on the part of the line that the halfedges still own.
func intersect(h0, h1 *halfedge) (Vertex, bool) {
	e0, e1 := h0.edge, h1.edge
	if e0 == nil || e1 == nil {
		return Vertex{}, false
	}
	if e0.sites[Right] == e1.sites[Right] {
		return Vertex{}, false
	}

	det := e0.a*e1.b - e0.b*e1.a
	if math.Abs(det) < parallelEpsilon {
		return Vertex{}, false
	}
	x := (e0.c*e1.b - e1.c*e0.b) / det
	y := (e1.c*e0.a - e0.c*e1.a) / det

	h, e := h1, e1
	if geom.CompareByYThenX(e0.sites[Right].coord, e1.sites[Right].coord) < 0 {
		h, e = h0, e0
	}
	rightOfSite := x >= e.sites[Right].coord.X
	if (rightOfSite && h.side == Left) || (!rightOfSite && h.side == Right) {
		return Vertex{}, false
	}

	if math.IsNaN(x) || math.IsNaN(y) {
		return AtInfinity, true
	}
	return finiteVertex(geom.Pt(x, y), -1), true
}
