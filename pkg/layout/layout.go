// Package layout generates site sets for the demo commands.
package layout

import (
	"math"
	"math/rand"

	"github.com/0x0FACED/go-delaunay/pkg/geom"
)

// Random scatters n points uniformly over bounds.
func Random(rng *rand.Rand, n int, bounds geom.Rect) []geom.Point {
	points := make([]geom.Point, n)
	for i := range points {
		points[i] = geom.Pt(
			bounds.Left()+rng.Float64()*bounds.Width,
			bounds.Top()+rng.Float64()*bounds.Height,
		)
	}
	return points
}

// Grid puts n points at the cell centers of a near-square grid over bounds,
// filling it row by row. The last row may be partial.
func Grid(n int, bounds geom.Rect) []geom.Point {
	if n <= 0 {
		return nil
	}
	points := make([]geom.Point, 0, n)

	rows := int(math.Sqrt(float64(n)))
	cols := (n + rows - 1) / rows

	xStep := bounds.Width / float64(cols)
	yStep := bounds.Height / float64(rows)

	for i := 0; i < rows && len(points) < n; i++ {
		for j := 0; j < cols && len(points) < n; j++ {
			points = append(points, geom.Pt(
				bounds.Left()+xStep/2+float64(j)*xStep,
				bounds.Top()+yStep/2+float64(i)*yStep,
			))
		}
	}
	return points
}

// Jitter moves every point by up to amount in each direction, keeping it
// inside bounds. Grid layouts are fully degenerate for the sweep (every
// circle event is cocircular); a little jitter avoids that when wanted.
func Jitter(rng *rand.Rand, points []geom.Point, amount float64, bounds geom.Rect) {
	for i, p := range points {
		x := p.X + (rng.Float64()*2-1)*amount
		y := p.Y + (rng.Float64()*2-1)*amount
		points[i] = geom.Pt(
			math.Min(math.Max(x, bounds.Left()), bounds.Right()),
			math.Min(math.Max(y, bounds.Top()), bounds.Bottom()),
		)
	}
}
