package voronoi

import (
	"fmt"

	"github.com/0x0FACED/go-delaunay/pkg/geom"
	"github.com/pkg/errors"
)

type poolTag struct {
	pooled bool
}

// recyclable is an object kept on a freeList.
type recyclable[T any] interface {
	*T
	tag() *poolTag
	reset()
}

// freeList recycles pointer-stable objects that are handed out through the
// public API (edges and sites).
type freeList[T any, P recyclable[T]] struct {
	all  []P
	free []P

	nLive int
	high  int
}

func (f *freeList[T, P]) get() P {
	var p, zero P
	if n := len(f.free); n > 0 {
		p = f.free[n-1]
		f.free[n-1] = zero
		f.free = f.free[:n-1]
	} else {
		p = P(new(T))
		f.all = append(f.all, p)
	}
	p.tag().pooled = false
	f.nLive++
	if f.nLive > f.high {
		f.high = f.nLive
	}
	return p
}

func (f *freeList[T, P]) put(p P) {
	t := p.tag()
	if t.pooled {
		panic(errors.Errorf("voronoi: %T disposed twice", p))
	}
	p.reset()
	t.pooled = true
	f.free = append(f.free, p)
	f.nLive--
}

func (f *freeList[T, P]) warm(n int) {
	for len(f.all) < n {
		p := P(new(T))
		p.tag().pooled = true
		f.all = append(f.all, p)
		f.free = append(f.free, p)
	}
}

// flush forgets every pooled object. Live objects stay tracked.
func (f *freeList[T, P]) flush() {
	kept := f.all[:0]
	for _, p := range f.all {
		if !p.tag().pooled {
			kept = append(kept, p)
		}
	}
	clear(f.all[len(kept):])
	f.all = kept
	f.free = nil
	f.high = f.nLive
}

func (f *freeList[T, P]) stat() PoolStat {
	return PoolStat{Live: f.nLive, Capacity: len(f.all), HighWater: f.high}
}

// Pools holds the recycled entities of one or more diagrams. A Pools value
// must not be used by two goroutines at once.
type Pools struct {
	halfedges arena[halfedge]
	vertices  arena[geom.Point]
	edges     freeList[Edge, *Edge]
	sites     freeList[Site, *Site]

	edgesPerSite int
}

const defaultEdgesPerSite = 10

func NewPools() *Pools {
	return &Pools{edgesPerSite: defaultEdgesPerSite}
}

// Init pre-warms the pools. The values are sizing hints only.
func (p *Pools) Init(halfedgeCap, edgeCap, edgesPerSiteCap, vertexCap int) {
	p.halfedges.reserve(halfedgeCap)
	p.vertices.reserve(vertexCap)
	p.edges.warm(edgeCap)
	if edgesPerSiteCap > 0 {
		p.edgesPerSite = edgesPerSiteCap
	}
}

// Flush releases the unused entries. Halfedges and vertices only live during
// a sweep, so flushing while any of them is live panics.
func (p *Pools) Flush() {
	p.halfedges.flush()
	p.vertices.flush()
	p.edges.flush()
	p.sites.flush()
}

// PoolStat describes one pool. Capacity counts live and free entries.
type PoolStat struct {
	Live      int
	Capacity  int
	HighWater int
}

type PoolStats struct {
	Halfedges PoolStat
	Vertices  PoolStat
	Edges     PoolStat
	Sites     PoolStat
}

func (p *Pools) Stats() PoolStats {
	return PoolStats{
		Halfedges: p.halfedges.stat(),
		Vertices:  p.vertices.stat(),
		Edges:     p.edges.stat(),
		Sites:     p.sites.stat(),
	}
}

func (p *Pools) String() string {
	s := p.Stats()
	return fmt.Sprintf("halfedges %s, vertices %s, edges %s, sites %s (edges per site %d)",
		s.Halfedges, s.Vertices, s.Edges, s.Sites, p.edgesPerSite)
}

func (s PoolStat) String() string {
	return fmt.Sprintf("%d/%d max %d", s.Live, s.Capacity, s.HighWater)
}
