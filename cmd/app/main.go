package main

import (
	"fmt"
	"math/rand"
	"net/http"
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/0x0FACED/go-delaunay/pkg/geom"
	"github.com/0x0FACED/go-delaunay/pkg/layout"
	"github.com/0x0FACED/go-delaunay/pkg/logger"
	"github.com/0x0FACED/go-delaunay/pkg/voronoi"
	"github.com/0x0FACED/go-delaunay/static"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

var (
	addr     = kingpin.Flag("addr", "Address to listen on.").Default(":8080").String()
	maxSites = kingpin.Flag("max-sites", "Upper limit for the site count accepted from the form.").Default("2000").Int()
	maxLloyd = kingpin.Flag("max-lloyd", "Upper limit for Lloyd steps accepted from the form.").Default("50").Int()
)

// params is what the form asks for.
type params struct {
	width, height int
	sites         int
	random        bool
	lloyd         int
}

func defaultParams() params {
	return params{width: 1000, height: 1000, sites: 12}
}

// formInt reads a form field, falling back to def when it is missing or not
// a number, and clamps it to [lo, hi].
func formInt(r *http.Request, name string, def, lo, hi int) int {
	v, err := strconv.Atoi(r.FormValue(name))
	if err != nil {
		return def
	}
	return max(lo, min(v, hi))
}

func parseParams(r *http.Request) params {
	p := defaultParams()
	if r.Method != http.MethodPost {
		return p
	}
	if err := r.ParseForm(); err != nil {
		return p
	}
	p.width = formInt(r, "width", p.width, 100, 5000)
	p.height = formInt(r, "height", p.height, 100, 5000)
	p.sites = formInt(r, "stations", p.sites, 1, *maxSites)
	p.lloyd = formInt(r, "lloyd", 0, 0, *maxLloyd)
	p.random = r.FormValue("random") == "true"
	return p
}

func prepareScatter(scatter *charts.Scatter) {
	scatter.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Height: "580px",
			Width:  "1020px",
		}),
		charts.WithLegendOpts(opts.Legend{
			TextStyle: &opts.TextStyle{
				Color: "white",
			},
			Right: "10%",
		}),
		charts.WithTitleOpts(opts.Title{
			Title:                "Voronoi diagram (Fortune sweep)",
			TitleBackgroundColor: "white",
			Left:                 "10%",
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Type: "value",
			Name: "Width",
			AxisLabel: &opts.AxisLabel{
				Color: "white",
			},
			SplitLine: &opts.SplitLine{
				Show: opts.Bool(false),
			},
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Type: "value",
			Name: "Height",
			AxisLabel: &opts.AxisLabel{
				Color: "white",
			},
			SplitLine: &opts.SplitLine{
				Show: opts.Bool(false),
			},
		}),
		charts.WithDataZoomOpts(opts.DataZoom{
			Type:       "inside",
			Start:      0,
			End:        100,
			FilterMode: "none",
			Orient:     "horizontal",
		}),
		charts.WithDataZoomOpts(opts.DataZoom{
			Type:       "inside",
			Start:      0,
			End:        100,
			FilterMode: "none",
			Orient:     "vertical",
		}),
	)
}

// diagramToEcharts draws the sites as a scatter series with every visible
// Voronoi edge overlapped as a two-point line.
func diagramToEcharts(d *voronoi.Diagram) *charts.Scatter {
	scatter := charts.NewScatter()

	points := make([]opts.ScatterData, 0, len(d.Sites()))
	for _, s := range d.Sites() {
		c := s.Coord()
		points = append(points, opts.ScatterData{
			Value: []float64{c.X, c.Y},
		})
	}

	prepareScatter(scatter)

	scatter.AddSeries("Sites", points).
		SetSeriesOptions(
			charts.WithItemStyleOpts(opts.ItemStyle{
				Color: "lightgreen",
			}),
		)

	for _, seg := range d.AllClippedSegments() {
		line := charts.NewLine()
		line.SetGlobalOptions(
			charts.WithXAxisOpts(opts.XAxis{Show: opts.Bool(true)}),
			charts.WithYAxisOpts(opts.YAxis{Show: opts.Bool(true)}),
		)

		line.AddSeries("Edges", []opts.LineData{
			{Value: []float64{seg.A.X, seg.A.Y}},
			{Value: []float64{seg.B.X, seg.B.Y}},
		}).SetSeriesOptions(
			charts.WithLineStyleOpts(opts.LineStyle{
				Width: 2,
			}),
		)

		scatter.Overlap(line)
	}

	return scatter
}

// server shares one pool set across requests. Pools are single-threaded, so
// requests build their diagrams one at a time.
type server struct {
	log *logger.ZapLogger

	mu    sync.Mutex
	pools *voronoi.Pools
	rng   *rand.Rand
}

func newServer(log *logger.ZapLogger, seed int64) *server {
	return &server{
		log:   log,
		pools: voronoi.NewPools(),
		rng:   rand.New(rand.NewSource(seed)),
	}
}

// diagramHandler serves the page with the diagram, the form and the logs of
// the run.
func (s *server) diagramHandler(w http.ResponseWriter, r *http.Request) {
	p := parseParams(r)
	bounds := geom.NewRect(0, 0, float64(p.width), float64(p.height))

	s.mu.Lock()
	defer s.mu.Unlock()

	var points []geom.Point
	if p.random {
		points = layout.Random(s.rng, p.sites, bounds)
	} else {
		points = layout.Grid(p.sites, bounds)
	}

	runLog := logger.New()
	defer runLog.ClearLogs()

	d := voronoi.NewRelaxed(points, bounds, p.lloyd,
		voronoi.WithLogger(runLog),
		voronoi.WithPools(s.pools),
		voronoi.WithRand(s.rng),
	)
	defer d.Clear()

	if err := d.Check(); err != nil {
		runLog.Warn("diagram check failed", zap.Error(err))
	}
	s.log.Info("diagram built",
		zap.Int("sites", len(d.Sites())),
		zap.Int("edges", len(d.Edges())),
		zap.Int("lloyd", p.lloyd),
		zap.Stringer("pools", s.pools),
	)

	scatter := diagramToEcharts(d)

	fmt.Fprintln(w, static.Part1)

	if err := scatter.Render(w); err != nil {
		s.log.Error("chart render failed", zap.Error(err))
	}

	fmt.Fprintln(w, static.Part2)
	fmt.Fprintln(w, runLog.HTML())
	fmt.Fprintln(w, static.Part3)
}

func main() {
	kingpin.Parse()

	log := logger.NewWriter(zapcore.Lock(os.Stdout), zapcore.InfoLevel)
	defer log.Sync()

	s := newServer(log, time.Now().UnixNano())

	mux := http.NewServeMux()
	mux.HandleFunc("/", s.diagramHandler)

	log.Info("server started", zap.String("addr", *addr))
	err := http.ListenAndServe(*addr, mux)
	kingpin.FatalIfError(err, "listen")
}
