package voronoi

import (
	"testing"

	"github.com/0x0FACED/go-delaunay/pkg/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertPolygon(t *testing.T, want, got geom.Polygon) {
	t.Helper()
	require.Len(t, got, len(want))
	for i := range want {
		assert.InDelta(t, want[i].X, got[i].X, 1e-9, "point %d", i)
		assert.InDelta(t, want[i].Y, got[i].Y, 1e-9, "point %d", i)
	}
}

func regionAt(t *testing.T, d *Diagram, p geom.Point) geom.Polygon {
	t.Helper()
	s, ok := d.SiteAt(p)
	require.True(t, ok)
	region, err := d.Region(s)
	require.NoError(t, err)
	return region
}

func TestRegionTwoSites(t *testing.T) {
	d := New([]geom.Point{geom.Pt(0.5, 1), geom.Pt(1.2, 1)}, squareBounds())

	left := regionAt(t, d, geom.Pt(0.5, 1))
	assertPolygon(t, geom.Polygon{geom.Pt(0.85, 0), geom.Pt(0.85, 2), geom.Pt(0, 2), geom.Pt(0, 0)}, left)
	assert.InDelta(t, 1.7, left.SignedArea(), 1e-9)

	right := regionAt(t, d, geom.Pt(1.2, 1))
	assert.InDelta(t, 2.3, right.SignedArea(), 1e-9)
}

func TestRegionWrapsThreeCorners(t *testing.T) {
	d := New([]geom.Point{geom.Pt(1, 1), geom.Pt(1.8, 1.8)}, squareBounds())

	big := regionAt(t, d, geom.Pt(1, 1))
	assertPolygon(t, geom.Polygon{geom.Pt(2, 0.8), geom.Pt(0.8, 2), geom.Pt(0, 2), geom.Pt(0, 0), geom.Pt(2, 0)}, big)
	assert.InDelta(t, 3.28, big.SignedArea(), 1e-9)

	small := regionAt(t, d, geom.Pt(1.8, 1.8))
	require.Len(t, small, 3)
	assert.InDelta(t, 0.72, small.SignedArea(), 1e-9)
}

func TestRegionStripBetweenParallelEdges(t *testing.T) {
	d := New([]geom.Point{geom.Pt(0.5, 1), geom.Pt(1, 1), geom.Pt(1.5, 1)}, squareBounds())
	require.Len(t, d.Edges(), 2)

	middle := regionAt(t, d, geom.Pt(1, 1))
	require.Len(t, middle, 4)
	assert.Equal(t, geom.CounterClockwise, middle.Winding())
	assert.InDelta(t, 1, middle.SignedArea(), 1e-9)

	assert.InDelta(t, 1.5, regionAt(t, d, geom.Pt(0.5, 1)).SignedArea(), 1e-9)
	assert.InDelta(t, 1.5, regionAt(t, d, geom.Pt(1.5, 1)).SignedArea(), 1e-9)
}

func TestRegionIsACopy(t *testing.T) {
	d := New(squarePoints(), squareBounds())
	s := d.Sites()[0]

	first, err := d.Region(s)
	require.NoError(t, err)
	first[0] = geom.Pt(-1, -1)

	second, err := d.Region(s)
	require.NoError(t, err)
	assert.NotEqual(t, first[0], second[0])
}

func TestRegionOfEdgeAtInfinity(t *testing.T) {
	s := site(1, 1, 0)
	e := bisector(s, site(2, 1, 1))
	e.SetVertex(Left, AtInfinity)
	s.edges = []*Edge{e}

	_, err := s.buildRegion(squareBounds(), NewEdgeReorderer())
	assert.ErrorIs(t, err, ErrDegenerateGeometry)
}

func TestRegionOfInvisibleSite(t *testing.T) {
	s := site(5, 1, 0)
	e := bisector(s, site(6, 1, 1))
	e.ClipVertices(squareBounds())
	require.False(t, e.Clipped())
	s.edges = []*Edge{e}

	_, err := s.buildRegion(squareBounds(), NewEdgeReorderer())
	assert.ErrorIs(t, err, ErrDegenerateGeometry)
}
