package main

import (
	"math/rand"
	"os"
	"time"

	"github.com/0x0FACED/go-delaunay/pkg/geom"
	"github.com/0x0FACED/go-delaunay/pkg/layout"
	"github.com/0x0FACED/go-delaunay/pkg/logger"
	"github.com/0x0FACED/go-delaunay/pkg/render"
	"github.com/0x0FACED/go-delaunay/pkg/voronoi"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/image/colornames"
	"gopkg.in/alecthomas/kingpin.v2"
)

var (
	numSites = kingpin.Flag("sites", "Number of sites.").Short('n').Default("100").Int()
	width    = kingpin.Flag("width", "Image width in pixels.").Short('w').Default("1000").Int()
	height   = kingpin.Flag("height", "Image height in pixels.").Short('h').Default("1000").Int()
	seed     = kingpin.Flag("seed", "Random seed. Zero picks one from the clock.").Default("0").Int64()
	grid     = kingpin.Flag("grid", "Place the sites on a jittered grid instead of at random.").Bool()
	lloyd    = kingpin.Flag("lloyd", "Lloyd relaxation steps.").Default("0").Int()
	delaunay = kingpin.Flag("delaunay", "Draw the Delaunay triangulation too.").Bool()
	out      = kingpin.Flag("out", "Output PNG path.").Short('o').Default("voronoi.png").String()
	verbose  = kingpin.Flag("verbose", "Log every sweep event.").Short('v').Bool()
)

func main() {
	kingpin.HelpFlag.Short('?')
	kingpin.Parse()

	level := zapcore.InfoLevel
	if *verbose {
		level = zapcore.DebugLevel
	}
	log := logger.NewWriter(zapcore.Lock(os.Stderr), level)
	defer log.Sync()

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(*seed))

	bounds := geom.NewRect(0, 0, float64(*width), float64(*height))
	var points []geom.Point
	if *grid {
		points = layout.Grid(*numSites, bounds)
		layout.Jitter(rng, points, 0.01*float64(min(*width, *height)), bounds)
	} else {
		points = layout.Random(rng, *numSites, bounds)
	}
	log.Info("sites generated", zap.Int("sites", len(points)), zap.Int64("seed", *seed), zap.Bool("grid", *grid))

	d := voronoi.NewRelaxed(points, bounds, *lloyd, voronoi.WithLogger(log), voronoi.WithRand(rng))
	if err := d.Check(); err != nil {
		log.Warn("diagram check failed", zap.Error(err))
	}
	log.Debug("pools", zap.Any("pools", d.Stats()))

	style := render.DefaultStyle()
	if *delaunay {
		style.Delaunay = colornames.Dimgray
	}
	err := render.SavePNG(*out, d, *width, *height, style)
	kingpin.FatalIfError(err, "render")
	log.Info("image written", zap.String("path", *out))
}
