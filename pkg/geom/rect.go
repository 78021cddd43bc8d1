package geom

import (
	"github.com/golang/geo/r1"
	"github.com/golang/geo/r2"
)

// Rect is an axis-aligned rectangle in screen orientation: Top is the minimum
// y and Bottom the maximum y.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

func NewRect(x, y, width, height float64) Rect {
	return Rect{X: x, Y: y, Width: width, Height: height}
}

// RectFromR2 converts a golang/geo rectangle. An empty r2.Rect gives the zero Rect.
func RectFromR2(r r2.Rect) Rect {
	if r.IsEmpty() {
		return Rect{}
	}
	return Rect{X: r.X.Lo, Y: r.Y.Lo, Width: r.X.Length(), Height: r.Y.Length()}
}

// R2 returns the same rectangle as an r2.Rect.
func (r Rect) R2() r2.Rect {
	return r2.Rect{
		X: r1.Interval{Lo: r.Left(), Hi: r.Right()},
		Y: r1.Interval{Lo: r.Top(), Hi: r.Bottom()},
	}
}

func (r Rect) Left() float64   { return r.X }
func (r Rect) Right() float64  { return r.X + r.Width }
func (r Rect) Top() float64    { return r.Y }
func (r Rect) Bottom() float64 { return r.Y + r.Height }

// Contains reports whether p lies inside r, borders included.
func (r Rect) Contains(p Point) bool {
	return r.R2().ContainsPoint(p)
}

// Corners returns the four corners, walking top-left, top-right,
// bottom-right, bottom-left.
func (r Rect) Corners() [4]Point {
	return [4]Point{
		{X: r.Left(), Y: r.Top()},
		{X: r.Right(), Y: r.Top()},
		{X: r.Right(), Y: r.Bottom()},
		{X: r.Left(), Y: r.Bottom()},
	}
}

// Border is a set of rectangle sides a point lies on.
type Border uint8

const (
	BorderTop Border = 1 << iota
	BorderBottom
	BorderLeft
	BorderRight
)

// CheckBorders returns the sides of r that p lies exactly on.
func CheckBorders(p Point, r Rect) Border {
	var b Border
	if p.X == r.Left() {
		b |= BorderLeft
	}
	if p.X == r.Right() {
		b |= BorderRight
	}
	if p.Y == r.Top() {
		b |= BorderTop
	}
	if p.Y == r.Bottom() {
		b |= BorderBottom
	}
	return b
}

// PerimeterParam maps a point lying on the border of r to a position in [0, 4)
// along the perimeter. Corner i of Corners sits at position i. The second
// result is false for points that are not on the border or when r has no area.
func PerimeterParam(p Point, r Rect) (float64, bool) {
	if r.Width <= 0 || r.Height <= 0 {
		return 0, false
	}
	b := CheckBorders(p, r)
	switch {
	case b&BorderTop != 0:
		return (p.X - r.Left()) / r.Width, true
	case b&BorderRight != 0:
		return 1 + (p.Y-r.Top())/r.Height, true
	case b&BorderBottom != 0:
		return 2 + (r.Right()-p.X)/r.Width, true
	case b&BorderLeft != 0:
		return 3 + (r.Bottom()-p.Y)/r.Height, true
	}
	return 0, false
}
