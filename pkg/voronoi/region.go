package voronoi

import (
	"math"

	"github.com/0x0FACED/go-delaunay/pkg/geom"
	"github.com/pkg/errors"
)

// buildRegion builds the site's region clipped to bounds. The polygon is
// counter-clockwise and lives in the site's scratch buffer. A site without
// edges has no region and no error.
func (s *Site) buildRegion(bounds geom.Rect, r *EdgeReorderer) (geom.Polygon, error) {
	if len(s.edges) == 0 {
		return nil, nil
	}
	edges, sides, err := r.Reorder(s.edges, ByVertex)
	if err != nil {
		return nil, errors.Wrapf(err, "site %d", s.index)
	}
	s.ordered = append(s.ordered[:0], edges...)
	s.orientations = append(s.orientations[:0], sides...)

	pts := s.clipToBounds(bounds)
	if len(pts) < 3 {
		return nil, errors.Wrapf(ErrDegenerateGeometry, "site %d: region has %d points", s.index, len(pts))
	}
	if pts.Winding() == geom.Clockwise {
		pts.Reverse()
	}
	return pts, nil
}

func (s *Site) clipToBounds(bounds geom.Rect) geom.Polygon {
	pts := s.region[:0]

	n := len(s.ordered)
	i := 0
	for i < n && !s.ordered[i].clipped {
		i++
	}
	if i == n {
		s.region = pts
		return pts
	}

	e := s.ordered[i]
	side := s.orientations[i]
	start, end := e.clippedEnds[side], e.clippedEnds[side.Other()]
	ref := end.Sub(start).Cross(s.coord.Sub(start))
	pts = append(pts, start)
	pts = appendDistinct(pts, end)

	for j := i + 1; j < n; j++ {
		e := s.ordered[j]
		if !e.clipped {
			continue
		}
		side := s.orientations[j]
		if e.vertices[Left].IsNone() && e.vertices[Right].IsNone() {
			side = s.orientLine(e, side, ref)
		}
		pts = s.connect(pts, e.clippedEnds[side], bounds)
		pts = appendDistinct(pts, e.clippedEnds[side.Other()])
	}

	pts = s.connect(pts, pts[0], bounds)
	for len(pts) > 1 && geom.CloseEnough(pts[len(pts)-1], pts[0]) {
		pts = pts[:len(pts)-1]
	}
	s.region = pts
	return pts
}

// orientLine picks the traversal direction of an edge with no vertices at
// all. Vertex matching cannot tell its ends apart, so it is walked with the
// site on the same side as the first edge.
func (s *Site) orientLine(e *Edge, side Side, ref float64) Side {
	start, end := e.clippedEnds[side], e.clippedEnds[side.Other()]
	c := end.Sub(start).Cross(s.coord.Sub(start))
	if ref != 0 && c != 0 && (c > 0) != (ref > 0) {
		return side.Other()
	}
	return side
}

func appendDistinct(pts geom.Polygon, p geom.Point) geom.Polygon {
	if len(pts) > 0 && geom.CloseEnough(pts[len(pts)-1], p) {
		return pts
	}
	return append(pts, p)
}

// connect appends next, preceded by the rectangle corners needed to reach it
// from the last point along the border.
func (s *Site) connect(pts geom.Polygon, next geom.Point, bounds geom.Rect) geom.Polygon {
	last := pts[len(pts)-1]
	if geom.CloseEnough(last, next) {
		return pts
	}
	pts = s.appendCorners(pts, last, next, bounds)
	return appendDistinct(pts, next)
}

func (s *Site) appendCorners(pts geom.Polygon, last, next geom.Point, bounds geom.Rect) geom.Polygon {
	lb, nb := geom.CheckBorders(last, bounds), geom.CheckBorders(next, bounds)
	if lb == 0 || nb == 0 || lb&nb != 0 {
		return pts
	}
	tl, ok1 := geom.PerimeterParam(last, bounds)
	tn, ok2 := geom.PerimeterParam(next, bounds)
	if !ok1 || !ok2 {
		return pts
	}
	corners := bounds.Corners()

	var fwd, bwd [4]geom.Point
	nf, nbw := 0, 0
	stop := tn
	if stop <= tl {
		stop += 4
	}
	for k := math.Floor(tl) + 1; k < stop && nf < 4; k++ {
		fwd[nf] = corners[int(k)%4]
		nf++
	}
	stop = tn
	if stop >= tl {
		stop -= 4
	}
	for k := math.Ceil(tl) - 1; k > stop && nbw < 4; k-- {
		bwd[nbw] = corners[(int(k)%4+4)%4]
		nbw++
	}

	path := fwd[:nf]
	want := s.borderSide(pts, last, next)
	fs := sideOf(last, next, fwd[:nf])
	bs := sideOf(last, next, bwd[:nbw])
	switch {
	case want != 0:
		if fs != want && bs == want {
			path = bwd[:nbw]
		}
	case pathLength(last, next, bwd[:nbw]) < pathLength(last, next, fwd[:nf]):
		path = bwd[:nbw]
	}
	for _, c := range path {
		pts = appendDistinct(pts, c)
	}
	return pts
}

// borderSide returns the side of the chord last->next (as the sign of a cross
// product) on which the missing stretch of border lies. The region is convex,
// so that is the side opposite the points already collected. If they all lie
// on the chord, the site decides. Zero means undecided.
func (s *Site) borderSide(pts geom.Polygon, last, next geom.Point) int {
	d := next.Sub(last)
	eps := 1e-9 * d.Norm()

	var best float64
	for _, p := range pts {
		if c := d.Cross(p.Sub(last)); math.Abs(c) > math.Abs(best) {
			best = c
		}
	}
	if math.Abs(best) > eps {
		return -sign(best)
	}
	c := d.Cross(s.coord.Sub(last))
	if math.Abs(c) > eps {
		return sign(c)
	}
	return 0
}

// sideOf returns the side of the chord a->b of the first point of path that
// is off the chord.
func sideOf(a, b geom.Point, path []geom.Point) int {
	d := b.Sub(a)
	eps := 1e-9 * d.Norm()
	for _, p := range path {
		if c := d.Cross(p.Sub(a)); math.Abs(c) > eps {
			return sign(c)
		}
	}
	return 0
}

func pathLength(a, b geom.Point, via []geom.Point) float64 {
	var l float64
	prev := a
	for _, p := range via {
		l += geom.Dist(prev, p)
		prev = p
	}
	return l + geom.Dist(prev, b)
}

func sign(v float64) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}
