package voronoi

import (
	"math/rand"
	"time"

	"github.com/0x0FACED/go-delaunay/pkg/logger"
)

// DegeneratePolicy says what Lloyd relaxation does with a site whose region
// has no usable centroid.
type DegeneratePolicy int

const (
	// KeepDegenerate leaves the site where it is.
	KeepDegenerate DegeneratePolicy = iota
	// DropDegenerate removes the site from the next iteration.
	DropDegenerate
)

type options struct {
	log       *logger.ZapLogger
	pools     *Pools
	rng       *rand.Rand
	weights   []float64
	triangles bool
	policy    DegeneratePolicy
}

type Option func(*options)

func WithLogger(log *logger.ZapLogger) Option {
	return func(o *options) { o.log = log }
}

// WithPools makes the diagram take its entities from p instead of a private
// pool set.
func WithPools(p *Pools) Option {
	return func(o *options) { o.pools = p }
}

// WithRand sets the source of the random site weights.
func WithRand(r *rand.Rand) Option {
	return func(o *options) { o.rng = r }
}

// WithWeights gives the weight of each input point by index. Points past the
// end of w get a random weight.
func WithWeights(w []float64) Option {
	return func(o *options) { o.weights = w }
}

// WithTriangles records the Delaunay triangle of every circle event.
func WithTriangles() Option {
	return func(o *options) { o.triangles = true }
}

func WithDegeneratePolicy(p DegeneratePolicy) Option {
	return func(o *options) { o.policy = p }
}

func buildOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if o.log == nil {
		o.log = logger.NewNop()
	}
	if o.pools == nil {
		o.pools = NewPools()
	}
	if o.rng == nil {
		o.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return o
}
