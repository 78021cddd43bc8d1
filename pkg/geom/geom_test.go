package geom

import (
	"testing"

	"github.com/golang/geo/r2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRectSides(t *testing.T) {
	r := NewRect(1, 2, 3, 4)
	assert.Equal(t, 1.0, r.Left())
	assert.Equal(t, 4.0, r.Right())
	assert.Equal(t, 2.0, r.Top())
	assert.Equal(t, 6.0, r.Bottom())
	assert.True(t, r.Contains(Pt(4, 6)))
	assert.False(t, r.Contains(Pt(4.1, 6)))
}

func TestRectR2RoundTrip(t *testing.T) {
	r := NewRect(-1, 0.5, 2, 3)
	assert.Equal(t, r, RectFromR2(r.R2()))
	assert.Equal(t, Rect{}, RectFromR2(r2.EmptyRect()))

	bounds := RectFromR2(r2.RectFromPoints(Pt(3, 1), Pt(0, 4), Pt(1, 2)))
	assert.Equal(t, NewRect(0, 1, 3, 3), bounds)
}

func TestCheckBorders(t *testing.T) {
	r := NewRect(0, 0, 2, 2)
	assert.Equal(t, BorderTop|BorderLeft, CheckBorders(Pt(0, 0), r))
	assert.Equal(t, BorderBottom, CheckBorders(Pt(1, 2), r))
	assert.Equal(t, BorderRight, CheckBorders(Pt(2, 0.5), r))
	assert.Equal(t, Border(0), CheckBorders(Pt(1, 1), r))
}

func TestPerimeterParam(t *testing.T) {
	r := NewRect(0, 0, 2, 2)
	for i, c := range r.Corners() {
		p, ok := PerimeterParam(c, r)
		require.True(t, ok)
		assert.InDelta(t, float64(i), p, 1e-12, "corner %d", i)
	}

	p, ok := PerimeterParam(Pt(0.85, 2), r)
	require.True(t, ok)
	assert.InDelta(t, 2.575, p, 1e-12)

	_, ok = PerimeterParam(Pt(1, 1), r)
	assert.False(t, ok)
	_, ok = PerimeterParam(Pt(0, 0), NewRect(0, 0, 0, 2))
	assert.False(t, ok)
}

func TestCompareByYThenX(t *testing.T) {
	assert.Equal(t, -1, CompareByYThenX(Pt(5, 0), Pt(0, 1)))
	assert.Equal(t, 1, CompareByYThenX(Pt(0, 2), Pt(5, 1)))
	assert.Equal(t, -1, CompareByYThenX(Pt(0, 1), Pt(1, 1)))
	assert.Equal(t, 0, CompareByYThenX(Pt(1, 1), Pt(1, 1)))
}

func TestPolygonArea(t *testing.T) {
	square := Polygon{Pt(0, 0), Pt(1, 0), Pt(1, 1), Pt(0, 1)}
	assert.InDelta(t, 1, square.SignedArea(), 1e-12)
	assert.Equal(t, CounterClockwise, square.Winding())

	square.Reverse()
	assert.InDelta(t, -1, square.SignedArea(), 1e-12)
	assert.Equal(t, Clockwise, square.Winding())

	assert.Equal(t, WindingNone, Polygon{Pt(0, 0), Pt(1, 1)}.Winding())
}

func TestPolygonCentroid(t *testing.T) {
	rect := Polygon{Pt(0.85, 0), Pt(0.85, 2), Pt(0, 2), Pt(0, 0)}
	c, ok := rect.Centroid()
	require.True(t, ok)
	assert.InDelta(t, 0.425, c.X, 1e-12)
	assert.InDelta(t, 1, c.Y, 1e-12)

	// orientation does not change the centroid
	rect.Reverse()
	c2, ok := rect.Centroid()
	require.True(t, ok)
	assert.InDelta(t, c.X, c2.X, 1e-12)
	assert.InDelta(t, c.Y, c2.Y, 1e-12)

	_, ok = Polygon{Pt(0, 0), Pt(1, 1), Pt(2, 2)}.Centroid()
	assert.False(t, ok)
}

func TestSegment(t *testing.T) {
	assert.InDelta(t, 5, Segment{Pt(0, 0), Pt(3, 4)}.Length(), 1e-12)
	assert.True(t, Segment{Pt(1, 1), Pt(1, 1)}.Degenerate())
	assert.True(t, CloseEnough(Pt(1, 1), Pt(1.001, 1)))
	assert.False(t, CloseEnough(Pt(1, 1), Pt(1.01, 1)))
}
