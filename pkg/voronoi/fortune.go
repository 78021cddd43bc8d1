package voronoi

import (
	"math"

	"github.com/0x0FACED/go-delaunay/pkg/geom"
	"github.com/golang/geo/r2"
	"go.uber.org/zap"
)

// Triangle is the Delaunay triangle of the three sites meeting at a circle
// event.
type Triangle struct {
	Sites [3]*Site
}

// sweepState tracks what a single sweep took from the pools.
type sweepState struct {
	halfedges []handle
	vertices  []handle
	nVertices int
}

func (d *Diagram) he(i int32) *halfedge {
	return d.pools.halfedges.at(i)
}

func (d *Diagram) newHalfedge(e *Edge, side Side) handle {
	h, he := d.pools.halfedges.alloc()
	*he = halfedge{edge: e, side: side, left: -1, right: -1, next: -1}
	d.run.halfedges = append(d.run.halfedges, h)
	return h
}

// disposeHalfedge returns i to the pool unless it is still linked into the
// beach line or the queue.
func (d *Diagram) disposeHalfedge(i int32) {
	if d.he(i).linked() {
		return
	}
	d.pools.halfedges.release(d.pools.halfedges.handleAt(i))
}

func (d *Diagram) dequeue(i int32) {
	if d.events.remove(i) {
		d.disposeHalfedge(i)
	}
}

func (d *Diagram) newVertex(v Vertex) Vertex {
	h, p := d.pools.vertices.alloc()
	*p = v.coord
	d.run.vertices = append(d.run.vertices, h)
	return v
}

func (d *Diagram) newBisector(s0, s1 *Site) *Edge {
	e := d.pools.edges.get()
	e.bisect(s0, s1)
	e.index = len(d.edges)
	s0.addEdge(e)
	s1.addEdge(e)
	d.edges = append(d.edges, e)
	return e
}

// circleEvent tries to intersect the bisectors of lb and rb. On success the
// halfedge at target gets the vertex and its circle event is queued.
func (d *Diagram) circleEvent(lb, rb, target int32, site *Site) {
	v, ok := intersect(d.he(lb), d.he(rb))
	if !ok || !v.IsFinite() {
		return
	}
	v = d.newVertex(v)
	d.dequeue(target)
	h := d.he(target)
	h.vertex = v
	h.ystar = v.coord.Y + site.Dist(v.coord)
	d.events.insert(target)
	d.log.Debug("[f-circle] queued", zap.Float64("x", v.coord.X), zap.Float64("y", v.coord.Y), zap.Float64("ystar", h.ystar))
}

func siteBounds(sites []*Site) r2.Rect {
	r := r2.EmptyRect()
	for _, s := range sites {
		r = r.AddPoint(s.coord)
	}
	return r
}

// fortune runs the sweep over d.sites, which must be sorted by y then x,
// clips the resulting edges and returns every halfedge and vertex to the
// pools.
func (d *Diagram) fortune() {
	n := len(d.sites)
	if n == 0 {
		return
	}
	d.log.Info("[f] sweep started", zap.Int("sites", n))

	d.run.halfedges = d.run.halfedges[:0]
	d.run.vertices = d.run.vertices[:0]
	d.run.nVertices = 0

	data := siteBounds(d.sites)
	sqrtN := int(math.Sqrt(float64(n + 4)))
	d.events.reset(&d.pools.halfedges, data.Y.Lo, data.Y.Length(), sqrtN)
	leftEnd := d.newHalfedge(nil, Left)
	rightEnd := d.newHalfedge(nil, Left)
	d.beach.reset(&d.pools.halfedges, data.X.Lo, data.X.Length(), sqrtN, leftEnd, rightEnd)

	next := 0
	var prev geom.Point
	nextSite := func() *Site {
		for next < n {
			s := d.sites[next]
			next++
			if next > 1 && s.coord == prev {
				d.log.Error("[f-site] duplicate site skipped", zap.Int("index", s.index), zap.Float64("x", s.coord.X), zap.Float64("y", s.coord.Y))
				continue
			}
			prev = s.coord
			return s
		}
		return nil
	}

	bottomMost := nextSite()
	newSite := nextSite()

	var star geom.Point
	for {
		if !d.events.empty() {
			star = d.events.min()
		}

		if newSite != nil && (d.events.empty() || geom.CompareByYThenX(newSite.coord, star) <= 0) {
			d.siteEvent(newSite, bottomMost)
			newSite = nextSite()
		} else if !d.events.empty() {
			d.circle(bottomMost)
		} else {
			break
		}
	}

	// Halfedges of unbounded edges are still on the beach line.
	for _, h := range d.run.halfedges {
		if d.pools.halfedges.alive(h) {
			d.pools.halfedges.release(h)
		}
	}
	d.run.halfedges = d.run.halfedges[:0]

	d.log.Info("[f] sweep finished", zap.Int("edges", len(d.edges)), zap.Int("vertices", d.run.nVertices))

	clipped := 0
	for _, e := range d.edges {
		e.ClipVertices(d.bounds)
		if e.clipped {
			clipped++
		}
	}
	d.log.Info("[clip] edges clipped", zap.Int("visible", clipped), zap.Int("hidden", len(d.edges)-clipped))

	for _, h := range d.run.vertices {
		d.pools.vertices.release(h)
	}
	d.run.vertices = d.run.vertices[:0]
}

func (d *Diagram) siteEvent(site, bottomMost *Site) {
	d.log.Debug("[f-site] event", zap.Int("index", site.index), zap.Float64("x", site.coord.X), zap.Float64("y", site.coord.Y))

	lbnd := d.beach.leftNeighbor(site.coord)
	rbnd := d.beach.rightOf(lbnd)
	bottom := d.he(lbnd).rightRegion(bottomMost)

	edge := d.newBisector(bottom, site)

	bisector := d.newHalfedge(edge, Left).idx
	d.beach.insert(lbnd, bisector)
	d.circleEvent(lbnd, bisector, lbnd, site)

	lbnd = bisector
	bisector = d.newHalfedge(edge, Right).idx
	d.beach.insert(lbnd, bisector)
	d.circleEvent(bisector, rbnd, bisector, site)
}

func (d *Diagram) circle(bottomMost *Site) {
	lbnd := d.events.extractMin()
	llbnd := d.beach.leftOf(lbnd)
	rbnd := d.beach.rightOf(lbnd)
	rrbnd := d.beach.rightOf(rbnd)

	l, r := d.he(lbnd), d.he(rbnd)
	bottom := l.leftRegion(bottomMost)
	top := r.rightRegion(bottomMost)
	if d.opts.triangles {
		d.triangles = append(d.triangles, Triangle{Sites: [3]*Site{bottom, top, l.rightRegion(bottomMost)}})
	}

	v := l.vertex
	v.index = d.run.nVertices
	d.run.nVertices++
	l.edge.SetVertex(l.side, v)
	r.edge.SetVertex(r.side, v)
	d.log.Debug("[f-circle] event", zap.Int("vertex", v.index), zap.Float64("x", v.coord.X), zap.Float64("y", v.coord.Y))

	d.beach.remove(lbnd)
	d.disposeHalfedge(lbnd)
	d.dequeue(rbnd)
	d.beach.remove(rbnd)
	d.disposeHalfedge(rbnd)

	side := Left
	if bottom.coord.Y > top.coord.Y {
		bottom, top = top, bottom
		side = Right
	}
	edge := d.newBisector(bottom, top)
	bisector := d.newHalfedge(edge, side).idx
	d.beach.insert(llbnd, bisector)
	edge.SetVertex(side.Other(), v)

	d.circleEvent(llbnd, bisector, llbnd, bottom)
	d.circleEvent(bisector, rrbnd, bisector, bottom)
}
