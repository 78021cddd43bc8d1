package voronoi

import (
	"github.com/0x0FACED/go-delaunay/pkg/geom"
	"go.uber.org/zap"
)

// LloydStep moves every site to the centroid of its region and rebuilds the
// diagram from the moved points. It returns the sum of squared displacements.
// Sites without a usable region are kept or dropped according to the
// diagram's DegeneratePolicy.
func (d *Diagram) LloydStep() float64 {
	points := d.lloydPoints[:0]
	weights := d.lloydWeights[:0]
	var moved float64
	kept, dropped := 0, 0

	for _, s := range d.sites {
		centroid, ok := d.centroid(s)
		if !ok {
			if d.opts.policy == DropDegenerate {
				dropped++
				continue
			}
			kept++
			centroid = s.coord
		}
		delta := centroid.Sub(s.coord)
		moved += delta.Dot(delta)
		points = append(points, centroid)
		weights = append(weights, s.weight)
	}
	d.lloydPoints, d.lloydWeights = points, weights

	d.log.Info("[lloyd] step", zap.Int("sites", len(points)), zap.Float64("moved", moved),
		zap.Int("degenerate_kept", kept), zap.Int("degenerate_dropped", dropped))

	bounds := d.bounds
	d.Clear()
	d.init(points, weights, bounds)
	return moved
}

// LloydRelaxation runs n Lloyd steps and returns the displacement of each.
func (d *Diagram) LloydRelaxation(n int) []float64 {
	history := make([]float64, 0, n)
	for i := 0; i < n; i++ {
		history = append(history, d.LloydStep())
	}
	return history
}

func (d *Diagram) centroid(s *Site) (geom.Point, bool) {
	region, err := s.buildRegion(d.bounds, d.reorderer)
	if err != nil {
		d.log.Warn("[lloyd] degenerate region", zap.Int("site", s.index), zap.Error(err))
		return geom.Point{}, false
	}
	if region == nil {
		return geom.Point{}, false
	}
	return region.Centroid()
}
