package geom

import "math"

// Winding is the orientation of a closed polygon.
type Winding int

const (
	WindingNone Winding = iota
	Clockwise
	CounterClockwise
)

func (w Winding) String() string {
	switch w {
	case Clockwise:
		return "clockwise"
	case CounterClockwise:
		return "counter-clockwise"
	}
	return "none"
}

// Polygon is a closed ring of points. The last point connects back to the first.
type Polygon []Point

// SignedArea returns the shoelace area. Counter-clockwise rings (in the usual
// y-up orientation) have positive area.
func (p Polygon) SignedArea() float64 {
	n := len(p)
	if n < 3 {
		return 0
	}
	var sum float64
	for i := 0; i < n; i++ {
		a, b := p[i], p[(i+1)%n]
		sum += a.Cross(b)
	}
	return sum / 2
}

func (p Polygon) Winding() Winding {
	area := p.SignedArea()
	switch {
	case area < 0:
		return Clockwise
	case area > 0:
		return CounterClockwise
	}
	return WindingNone
}

// Reverse flips the ring in place.
func (p Polygon) Reverse() {
	for i, j := 0, len(p)-1; i < j; i, j = i+1, j-1 {
		p[i], p[j] = p[j], p[i]
	}
}

// Centroid returns the area centroid of the ring. The second result is false
// when the ring has (almost) no area.
func (p Polygon) Centroid() (Point, bool) {
	n := len(p)
	if n < 3 {
		return Point{}, false
	}
	var area, cx, cy float64
	for i := 0; i < n; i++ {
		x0, y0 := p[i].X, p[i].Y
		x1, y1 := p[(i+1)%n].X, p[(i+1)%n].Y
		a := x0*y1 - x1*y0
		area += a
		cx += (x0 + x1) * a
		cy += (y0 + y1) * a
	}
	area *= 0.5
	if math.Abs(area) < 1e-12 {
		return Point{}, false
	}
	return Point{X: cx / (6 * area), Y: cy / (6 * area)}, true
}
