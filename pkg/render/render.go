// Package render rasterizes a diagram with fogleman/gg.
package render

import (
	"image"
	"image/color"

	"github.com/0x0FACED/go-delaunay/pkg/geom"
	"github.com/0x0FACED/go-delaunay/pkg/voronoi"
	"github.com/fogleman/gg"
	"github.com/pkg/errors"
	"golang.org/x/image/colornames"
)

// Style defines how the parts of a diagram are colored. A nil color skips
// that layer.
type Style struct {
	Background color.Color
	Regions    []color.Color
	Edges      color.Color
	Delaunay   color.Color
	Hull       color.Color
	Sites      color.Color

	EdgeWidth  float64
	SiteRadius float64
}

// DefaultStyle returns a reasonable default Style.
func DefaultStyle() *Style {
	return &Style{
		Background: colornames.White,
		Regions: []color.Color{
			colornames.Lightgreen,
			colornames.Steelblue,
			colornames.Gold,
			colornames.Salmon,
			colornames.Plum,
			colornames.Khaki,
			colornames.Lightblue,
			colornames.Wheat,
			colornames.Mediumturquoise,
			colornames.Hotpink,
		},
		Edges:      colornames.Black,
		Hull:       colornames.Crimson,
		Sites:      colornames.Darkslateblue,
		EdgeWidth:  1.5,
		SiteRadius: 3,
	}
}

// Draw paints d into a width x height image. The diagram's plot bounds are
// stretched over the whole image. Regions that cannot be built are left
// unfilled.
func Draw(d *voronoi.Diagram, width, height int, style *Style) (image.Image, error) {
	if width <= 0 || height <= 0 {
		return nil, errors.Errorf("render: bad image size %dx%d", width, height)
	}
	bounds := d.PlotBounds()
	if bounds.Width <= 0 || bounds.Height <= 0 {
		return nil, errors.New("render: diagram has empty plot bounds")
	}
	if style == nil {
		style = DefaultStyle()
	}

	p := painter{
		ctx:    gg.NewContext(width, height),
		bounds: bounds,
		sx:     float64(width) / bounds.Width,
		sy:     float64(height) / bounds.Height,
	}

	if style.Background != nil {
		p.ctx.SetColor(style.Background)
		p.ctx.Clear()
	}

	if len(style.Regions) > 0 {
		// degenerate regions come back nil
		regions, _ := d.Regions()
		for i, s := range d.Sites() {
			if regions[i] == nil {
				continue
			}
			p.polygon(regions[i])
			p.ctx.SetColor(style.Regions[s.Index()%len(style.Regions)])
			p.ctx.Fill()
		}
	}

	if style.Delaunay != nil {
		p.ctx.SetColor(style.Delaunay)
		p.ctx.SetLineWidth(style.EdgeWidth / 2)
		for _, e := range d.Edges() {
			p.segment(e.DelaunayLine())
		}
	}

	if style.Edges != nil {
		p.ctx.SetColor(style.Edges)
		p.ctx.SetLineWidth(style.EdgeWidth)
		for _, seg := range d.AllClippedSegments() {
			p.segment(seg)
		}
	}

	if style.Hull != nil {
		if hull, err := d.HullPointsInOrder(); err == nil && len(hull) > 1 {
			p.polygon(hull)
			p.ctx.SetColor(style.Hull)
			p.ctx.SetLineWidth(style.EdgeWidth)
			p.ctx.Stroke()
		}
	}

	if style.Sites != nil {
		p.ctx.SetColor(style.Sites)
		for _, s := range d.Sites() {
			x, y := p.pixel(s.Coord())
			p.ctx.DrawCircle(x, y, style.SiteRadius)
			p.ctx.Fill()
		}
	}

	return p.ctx.Image(), nil
}

// SavePNG draws d and writes it to path.
func SavePNG(path string, d *voronoi.Diagram, width, height int, style *Style) error {
	im, err := Draw(d, width, height, style)
	if err != nil {
		return err
	}
	return errors.Wrapf(gg.SavePNG(path, im), "render: save %s", path)
}

// painter maps plot coordinates to pixels. Line widths and site radii stay
// in pixels, so the mapping is done by hand rather than with the context
// matrix.
type painter struct {
	ctx    *gg.Context
	bounds geom.Rect
	sx, sy float64
}

func (p *painter) pixel(pt geom.Point) (float64, float64) {
	return (pt.X - p.bounds.Left()) * p.sx, (pt.Y - p.bounds.Top()) * p.sy
}

func (p *painter) segment(s geom.Segment) {
	x0, y0 := p.pixel(s.A)
	x1, y1 := p.pixel(s.B)
	p.ctx.DrawLine(x0, y0, x1, y1)
	p.ctx.Stroke()
}

func (p *painter) polygon(pts []geom.Point) {
	p.ctx.NewSubPath()
	for i, pt := range pts {
		x, y := p.pixel(pt)
		if i == 0 {
			p.ctx.MoveTo(x, y)
		} else {
			p.ctx.LineTo(x, y)
		}
	}
	p.ctx.ClosePath()
}
