package voronoi

import "github.com/0x0FACED/go-delaunay/pkg/geom"

// halfedge is a directed view of an edge that exists only during the sweep.
// It is linked into the beach line and, while it carries a pending circle
// event, into the event queue. Links are arena slot indices; -1 means none.
// A halfedge without an edge is a beach line sentinel.
type halfedge struct {
	edge   *Edge
	side   Side
	vertex Vertex
	ystar  float64

	left, right int32
	next        int32
	inQueue     bool
}

func (h *halfedge) listed() bool {
	return h.left >= 0 || h.right >= 0
}

func (h *halfedge) linked() bool {
	return h.listed() || h.inQueue
}

// leftRegion is the site on the side the halfedge points to, or bottom for a
// sentinel.
func (h *halfedge) leftRegion(bottom *Site) *Site {
	if h.edge == nil {
		return bottom
	}
	return h.edge.sites[h.side]
}

func (h *halfedge) rightRegion(bottom *Site) *Site {
	if h.edge == nil {
		return bottom
	}
	return h.edge.sites[h.side.Other()]
}

// isLeftOf reports whether p lies to the right of the halfedge's bisector
// on the beach line, i.e. whether the halfedge is left of p.
func (h *halfedge) isLeftOf(p geom.Point) bool {
	e := h.edge
	top := e.sites[Right].coord

	rightOfSite := p.X > top.X
	if rightOfSite && h.side == Left {
		return true
	}
	if !rightOfSite && h.side == Right {
		return false
	}

	var above bool
	if e.a == 1 {
		dyp := p.Y - top.Y
		dxp := p.X - top.X
		fast := false
		if (!rightOfSite && e.b < 0) || (rightOfSite && e.b >= 0) {
			above = dyp >= e.b*dxp
			fast = above
		} else {
			above = p.X+p.Y*e.b > e.c
			if e.b < 0 {
				above = !above
			}
			if !above {
				fast = true
			}
		}
		if !fast {
			dxs := top.X - e.sites[Left].coord.X
			above = e.b*(dxp*dxp-dyp*dyp) < dxs*dyp*(1+2*dxp/dxs+e.b*e.b)
			if e.b < 0 {
				above = !above
			}
		}
	} else {
		y1 := e.c - e.a*p.X
		t1 := p.Y - y1
		t2 := p.X - top.X
		t3 := y1 - top.Y
		above = t1*t1 > t2*t2+t3*t3
	}

	if h.side == Left {
		return above
	}
	return !above
}
