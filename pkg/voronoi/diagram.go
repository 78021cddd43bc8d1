// Package voronoi builds Voronoi diagrams and their dual Delaunay
// triangulations with Fortune's sweep, clips them to a rectangle and
// relaxes them with Lloyd's algorithm.
//
// A Diagram and the Pools it draws from are not safe for concurrent use.
package voronoi

import (
	"slices"

	"github.com/0x0FACED/go-delaunay/pkg/geom"
	"github.com/0x0FACED/go-delaunay/pkg/logger"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

type Diagram struct {
	sites      []*Site
	edges      []*Edge
	bounds     geom.Rect
	byLocation map[geom.Point]*Site
	triangles  []Triangle

	opts      options
	log       *logger.ZapLogger
	pools     *Pools
	reorderer *EdgeReorderer

	beach  edgeList
	events eventQueue
	run    sweepState

	lloydPoints  []geom.Point
	lloydWeights []float64
}

// New builds the diagram of points inside bounds. Points with NaN or
// infinite coordinates are skipped. An empty point set gives an empty
// diagram.
func New(points []geom.Point, bounds geom.Rect, opts ...Option) *Diagram {
	o := buildOptions(opts)
	d := &Diagram{
		opts:       o,
		log:        o.log,
		pools:      o.pools,
		reorderer:  NewEdgeReorderer(),
		byLocation: make(map[geom.Point]*Site, len(points)),
	}
	d.init(points, o.weights, bounds)
	return d
}

// NewRelaxed builds the diagram and runs n Lloyd steps on it.
func NewRelaxed(points []geom.Point, bounds geom.Rect, n int, opts ...Option) *Diagram {
	d := New(points, bounds, opts...)
	d.LloydRelaxation(n)
	return d
}

// Redo rebuilds the diagram in place for a new point set.
func (d *Diagram) Redo(points []geom.Point, bounds geom.Rect) {
	d.Clear()
	d.init(points, d.opts.weights, bounds)
}

func (d *Diagram) init(points []geom.Point, weights []float64, bounds geom.Rect) {
	d.bounds = bounds
	for i, p := range points {
		if !geom.IsFinite(p) {
			d.log.Warn("[f] point rejected", zap.Int("index", i), zap.Float64("x", p.X), zap.Float64("y", p.Y))
			continue
		}
		var w float64
		if i < len(weights) {
			w = weights[i]
		} else {
			w = d.opts.rng.Float64() * 100
		}

		s := d.pools.sites.get()
		if s.edges == nil {
			s.edges = make([]*Edge, 0, d.edgesPerSite())
		}
		s.index, s.coord, s.weight = i, p, w
		d.sites = append(d.sites, s)
		if _, ok := d.byLocation[p]; !ok {
			d.byLocation[p] = s
		}
	}
	slices.SortStableFunc(d.sites, func(a, b *Site) int {
		return geom.CompareByYThenX(a.coord, b.coord)
	})
	d.fortune()
}

func (d *Diagram) edgesPerSite() int {
	if d.pools.edgesPerSite > 0 {
		return d.pools.edgesPerSite
	}
	return defaultEdgesPerSite
}

// Clear returns every edge and site to the pools and empties the diagram.
func (d *Diagram) Clear() {
	for i, e := range d.edges {
		d.pools.edges.put(e)
		d.edges[i] = nil
	}
	d.edges = d.edges[:0]
	for i, s := range d.sites {
		d.pools.sites.put(s)
		d.sites[i] = nil
	}
	d.sites = d.sites[:0]
	clear(d.triangles)
	d.triangles = d.triangles[:0]
	clear(d.byLocation)
	d.bounds = geom.Rect{}
}

// Edges returns every edge produced by the sweep. The slice must not be
// modified.
func (d *Diagram) Edges() []*Edge { return d.edges }

// Sites returns the sites sorted by y, then x.
func (d *Diagram) Sites() []*Site { return d.sites }

func (d *Diagram) PlotBounds() geom.Rect { return d.bounds }

// SiteLocationIndex maps a point to its site. When two sites share a point
// the first one in sweep order wins.
func (d *Diagram) SiteLocationIndex() map[geom.Point]*Site { return d.byLocation }

func (d *Diagram) SiteAt(p geom.Point) (*Site, bool) {
	s, ok := d.byLocation[p]
	return s, ok
}

// Triangles returns the recorded Delaunay triangles. It is empty unless the
// diagram was built WithTriangles.
func (d *Diagram) Triangles() []Triangle { return d.triangles }

func (d *Diagram) InitPools(halfedgeCap, edgeCap, edgesPerSiteCap, vertexCap int) {
	d.pools.Init(halfedgeCap, edgeCap, edgesPerSiteCap, vertexCap)
}

func (d *Diagram) FlushPools() {
	d.pools.Flush()
	d.log.Info("[pool] flushed", zap.Stringer("pools", d.pools))
}

func (d *Diagram) Stats() PoolStats { return d.pools.Stats() }

// Region returns the counter-clockwise polygon of site's region clipped to
// the plot bounds, or nil if the site has no edges.
func (d *Diagram) Region(site *Site) (geom.Polygon, error) {
	if site == nil || site.pooled {
		return nil, ErrNoSite
	}
	region, err := site.buildRegion(d.bounds, d.reorderer)
	if err != nil || region == nil {
		return nil, err
	}
	return slices.Clone(region), nil
}

// Regions returns the region of every site in Sites order. Degenerate
// regions are nil and their errors are combined.
func (d *Diagram) Regions() ([]geom.Polygon, error) {
	out := make([]geom.Polygon, len(d.sites))
	var errs error
	for i, s := range d.sites {
		region, err := d.Region(s)
		errs = multierr.Append(errs, err)
		out[i] = region
	}
	return out, errs
}

// AllClippedSegments returns the visible part of every edge. Edges that
// clip to a single point are left out.
func (d *Diagram) AllClippedSegments() []geom.Segment {
	out := make([]geom.Segment, 0, len(d.edges))
	for _, e := range d.edges {
		if seg, ok := e.VoronoiSegment(); ok && !seg.Degenerate() {
			out = append(out, seg)
		}
	}
	return out
}

func (d *Diagram) siteAt(p geom.Point) (*Site, error) {
	s, ok := d.byLocation[p]
	if !ok {
		return nil, ErrNoSite
	}
	return s, nil
}

// NeighborSites returns the points of the sites sharing an edge with the
// site at p.
func (d *Diagram) NeighborSites(p geom.Point) ([]geom.Point, error) {
	s, err := d.siteAt(p)
	if err != nil {
		return nil, err
	}
	neighbors := s.NeighborSites()
	out := make([]geom.Point, len(neighbors))
	for i, n := range neighbors {
		out[i] = n.coord
	}
	return out, nil
}

// VoronoiBoundaryForSite returns the visible edges around the site at p.
func (d *Diagram) VoronoiBoundaryForSite(p geom.Point) ([]geom.Segment, error) {
	s, err := d.siteAt(p)
	if err != nil {
		return nil, err
	}
	var out []geom.Segment
	for _, e := range s.edges {
		if seg, ok := e.VoronoiSegment(); ok {
			out = append(out, seg)
		}
	}
	return out, nil
}

// DelaunayLinesForSite returns the Delaunay edges from the site at p.
func (d *Diagram) DelaunayLinesForSite(p geom.Point) ([]geom.Segment, error) {
	s, err := d.siteAt(p)
	if err != nil {
		return nil, err
	}
	out := make([]geom.Segment, len(s.edges))
	for i, e := range s.edges {
		out[i] = e.DelaunayLine()
	}
	return out, nil
}

// HullEdges returns the edges between neighboring convex hull sites.
func (d *Diagram) HullEdges() []*Edge {
	var out []*Edge
	for _, e := range d.edges {
		if e.IsPartOfConvexHull() {
			out = append(out, e)
		}
	}
	return out
}

// HullPointsInOrder walks the convex hull and returns its sites' points.
func (d *Diagram) HullPointsInOrder() ([]geom.Point, error) {
	hull := d.HullEdges()
	if len(hull) == 0 {
		return nil, nil
	}
	edges, sides, err := d.reorderer.Reorder(hull, BySite)
	if err != nil {
		return nil, err
	}
	out := make([]geom.Point, len(edges))
	for i, e := range edges {
		out[i] = e.Site(sides[i]).coord
	}
	return out, nil
}
