package voronoi

import (
	"testing"

	"github.com/0x0FACED/go-delaunay/pkg/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func site(x, y float64, index int) *Site {
	return &Site{index: index, coord: geom.Pt(x, y)}
}

func bisector(s0, s1 *Site) *Edge {
	e := &Edge{}
	e.bisect(s0, s1)
	return e
}

func TestBisect(t *testing.T) {
	tests := []struct {
		name    string
		s0, s1  *Site
		a, b, c float64
	}{
		{"horizontal pair", site(0, 0, 0), site(2, 0, 1), 1, 0, 1},
		{"vertical pair", site(0, 0, 0), site(0, 2, 1), 0, 1, 1},
		{"diagonal pair", site(0, 0, 0), site(2, 2, 1), 1, 1, 2},
		{"steep pair", site(1, 1, 0), site(2, 3, 1), 0.5, 1, 2.75},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := bisector(tt.s0, tt.s1)
			a, b, c := e.Line()
			assert.InDelta(t, tt.a, a, 1e-12)
			assert.InDelta(t, tt.b, b, 1e-12)
			assert.InDelta(t, tt.c, c, 1e-12)
			assert.Same(t, tt.s0, e.LeftSite())
			assert.Same(t, tt.s1, e.RightSite())
			assert.True(t, e.IsPartOfConvexHull())
		})
	}
}

func TestClipVertices(t *testing.T) {
	bounds := squareBounds()

	t.Run("unbounded line", func(t *testing.T) {
		e := bisector(site(0.5, 1, 0), site(1.2, 1, 1))
		e.ClipVertices(bounds)
		require.True(t, e.Clipped())
		ends := e.ClippedEnds()
		assert.InDelta(t, 0.85, ends[Left].X, 1e-12)
		assert.InDelta(t, 0, ends[Left].Y, 1e-12)
		assert.InDelta(t, 0.85, ends[Right].X, 1e-12)
		assert.InDelta(t, 2, ends[Right].Y, 1e-12)
	})

	t.Run("ray from a vertex", func(t *testing.T) {
		e := bisector(site(0, 0, 0), site(2, 0, 1))
		e.SetVertex(Left, finiteVertex(geom.Pt(1, 1), 0))
		e.ClipVertices(bounds)
		require.True(t, e.Clipped())
		seg, ok := e.VoronoiSegment()
		require.True(t, ok)
		assert.Equal(t, geom.Segment{A: geom.Pt(1, 1), B: geom.Pt(1, 0)}, seg)
	})

	t.Run("cut by a corner", func(t *testing.T) {
		e := bisector(site(1, 1, 0), site(1.8, 1.8, 1))
		e.ClipVertices(bounds)
		require.True(t, e.Clipped())
		ends := e.ClippedEnds()
		assert.InDelta(t, 2, ends[Left].X, 1e-9)
		assert.InDelta(t, 0.8, ends[Left].Y, 1e-9)
		assert.InDelta(t, 0.8, ends[Right].X, 1e-9)
		assert.InDelta(t, 2, ends[Right].Y, 1e-9)
	})

	t.Run("outside bounds", func(t *testing.T) {
		e := bisector(site(4, 0, 0), site(6, 0, 1))
		e.ClipVertices(bounds)
		assert.False(t, e.Clipped())
		_, ok := e.VoronoiSegment()
		assert.False(t, ok)
	})

	t.Run("clipping again gives the same ends", func(t *testing.T) {
		e := bisector(site(0.2, 0.3, 0), site(1.7, 1.1, 1))
		e.ClipVertices(bounds)
		first := e.ClippedEnds()
		e.ClipVertices(bounds)
		assert.Equal(t, first, e.ClippedEnds())
		assert.True(t, e.Clipped())
	})
}

func TestIntersect(t *testing.T) {
	s0, s1, s2 := site(0, 0, 0), site(2, 0, 1), site(0, 2, 2)
	vertical := bisector(s0, s1)
	horizontal := bisector(s0, s2)

	v, ok := intersect(&halfedge{edge: horizontal, side: Right}, &halfedge{edge: vertical, side: Left})
	require.True(t, ok)
	assert.True(t, v.IsFinite())
	assert.Equal(t, geom.Pt(1, 1), v.Coord())

	_, ok = intersect(&halfedge{edge: horizontal, side: Right}, &halfedge{edge: vertical, side: Right})
	assert.False(t, ok, "the controlling halfedge no longer owns the crossing")

	parallel := bisector(s1, site(4, 0, 3))
	_, ok = intersect(&halfedge{edge: vertical, side: Left}, &halfedge{edge: parallel, side: Left})
	assert.False(t, ok)

	_, ok = intersect(&halfedge{edge: vertical, side: Left}, &halfedge{edge: vertical, side: Right})
	assert.False(t, ok, "same right site")

	_, ok = intersect(&halfedge{}, &halfedge{edge: vertical})
	assert.False(t, ok, "sentinel")
}

func TestHalfedgeIsLeftOf(t *testing.T) {
	e := bisector(site(0, 0, 0), site(2, 0, 1))
	left := &halfedge{edge: e, side: Left}
	right := &halfedge{edge: e, side: Right}

	assert.True(t, left.isLeftOf(geom.Pt(1.5, 5)))
	assert.False(t, left.isLeftOf(geom.Pt(0.5, 5)))
	assert.True(t, left.isLeftOf(geom.Pt(3, 1)))
	assert.False(t, right.isLeftOf(geom.Pt(1.5, 5)))
}

func TestVertexSame(t *testing.T) {
	a := finiteVertex(geom.Pt(1, 1), 3)
	b := finiteVertex(geom.Pt(1, 1), 4)

	assert.True(t, a.Same(a))
	assert.False(t, a.Same(b), "vertices are told apart by index")
	assert.True(t, Vertex{}.Same(Vertex{}))
	assert.False(t, Vertex{}.Same(a))
	assert.True(t, AtInfinity.Same(AtInfinity))
	assert.False(t, AtInfinity.Same(Vertex{}))
	assert.Equal(t, Right, Left.Other())
	assert.Equal(t, "no vertex", Vertex{}.String())
}
