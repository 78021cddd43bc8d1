// Package geom holds the small set of planar primitives the diagram code is
// built on: points, axis-aligned rectangles, segments and polygons.
package geom

import (
	"math"

	"github.com/golang/geo/r2"
)

// Point is a 2-D point or vector. It is comparable and can be used as a map key.
type Point = r2.Point

// Epsilon is the distance under which two region points are treated as one.
const Epsilon = 0.005

func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Dist returns the euclidean distance between a and b.
func Dist(a, b Point) float64 {
	return a.Sub(b).Norm()
}

// CloseEnough reports whether a and b are within Epsilon of each other.
func CloseEnough(a, b Point) bool {
	return Dist(a, b) < Epsilon
}

// IsFinite reports whether both coordinates are neither NaN nor infinite.
func IsFinite(p Point) bool {
	return !math.IsNaN(p.X) && !math.IsNaN(p.Y) && !math.IsInf(p.X, 0) && !math.IsInf(p.Y, 0)
}

// CompareByYThenX orders points by y, then by x. It returns -1, 0 or 1.
func CompareByYThenX(a, b Point) int {
	switch {
	case a.Y < b.Y:
		return -1
	case a.Y > b.Y:
		return 1
	case a.X < b.X:
		return -1
	case a.X > b.X:
		return 1
	}
	return 0
}

// Segment is a straight line segment between two points.
type Segment struct {
	A, B Point
}

func (s Segment) Length() float64 {
	return Dist(s.A, s.B)
}

// Degenerate reports whether both ends of the segment coincide.
func (s Segment) Degenerate() bool {
	return math.Abs(s.A.X-s.B.X) < 1e-9 && math.Abs(s.A.Y-s.B.Y) < 1e-9
}
