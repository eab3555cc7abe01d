package render

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"

	"github.com/llgcode/draw2d/draw2dimg"
	colorful "github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// RasterCanvas renders primitives into an RGBA image for PNG output.
//
// The canvas applies a uniform scale factor so that plots keep their
// canvas-unit geometry while producing higher-resolution pixels. Labels
// use a fixed-size bitmap face and do not scale.
type RasterCanvas struct {
	width  float64
	height float64
	scale  float64
	img    *image.RGBA
	gc     *draw2dimg.GraphicContext
}

// NewRaster creates a raster canvas of width x height canvas units,
// rasterized at the given scale factor (2.0 doubles the pixel density).
// Scale values <= 0 fall back to 1. The background is filled white.
func NewRaster(width, height, scale float64) *RasterCanvas {
	if scale <= 0 {
		scale = 1
	}
	img := image.NewRGBA(image.Rect(0, 0,
		int(math.Ceil(width*scale)), int(math.Ceil(height*scale))))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)
	return &RasterCanvas{
		width:  width,
		height: height,
		scale:  scale,
		img:    img,
		gc:     draw2dimg.NewGraphicContext(img),
	}
}

// Size returns the canvas dimensions in canvas units.
func (c *RasterCanvas) Size() (float64, float64) { return c.width, c.height }

// Image returns the backing image.
func (c *RasterCanvas) Image() image.Image { return c.img }

// EncodePNG writes the canvas as PNG.
func (c *RasterCanvas) EncodePNG(w io.Writer) error {
	return png.Encode(w, c.img)
}

// Line implements [Canvas].
func (c *RasterCanvas) Line(x1, y1, x2, y2 float64, s Style) {
	c.Polyline([]Point{{x1, y1}, {x2, y2}}, s)
}

// Rect implements [Canvas].
func (c *RasterCanvas) Rect(x, y, w, h float64, s Style) {
	c.path([]Point{{x, y}, {x + w, y}, {x + w, y + h}, {x, y + h}}, true, s)
}

// Circle implements [Canvas].
func (c *RasterCanvas) Circle(cx, cy, r float64, s Style) {
	k := c.scale
	c.gc.BeginPath()
	c.gc.MoveTo(cx*k-r*k, cy*k)
	c.gc.ArcTo(cx*k, cy*k, r*k, r*k, 0, 2*math.Pi)
	c.gc.Close()
	c.paint(s)
}

// Polyline implements [Canvas].
func (c *RasterCanvas) Polyline(pts []Point, s Style) {
	if len(pts) < 2 {
		return
	}
	s.Fill = ""
	c.path(pts, false, s)
}

// Polygon implements [Canvas].
func (c *RasterCanvas) Polygon(pts []Point, s Style) {
	if len(pts) < 3 {
		return
	}
	c.path(pts, true, s)
}

// Text implements [Canvas].
func (c *RasterCanvas) Text(x, y float64, text string, s TextStyle) {
	face := basicfont.Face7x13
	d := &font.Drawer{
		Dst:  c.img,
		Src:  image.NewUniform(parseColor(s.Fill, 1)),
		Face: face,
	}
	width := d.MeasureString(text)
	px := fixed.Int26_6(x * c.scale * 64)
	switch s.Anchor {
	case AnchorMiddle:
		px -= width / 2
	case AnchorEnd:
		px -= width
	}
	d.Dot = fixed.Point26_6{X: px, Y: fixed.Int26_6(y * c.scale * 64)}
	d.DrawString(text)
}

func (c *RasterCanvas) path(pts []Point, closed bool, s Style) {
	k := c.scale
	c.gc.BeginPath()
	c.gc.MoveTo(pts[0].X*k, pts[0].Y*k)
	for _, p := range pts[1:] {
		c.gc.LineTo(p.X*k, p.Y*k)
	}
	if closed {
		c.gc.Close()
	}
	c.paint(s)
}

func (c *RasterCanvas) paint(s Style) {
	op := opacityOf(s)
	switch {
	case s.Fill != "" && s.Stroke != "":
		c.gc.SetFillColor(parseColor(s.Fill, op))
		c.gc.SetStrokeColor(parseColor(s.Stroke, op))
		c.gc.SetLineWidth(strokeWidth(s) * c.scale)
		c.gc.FillStroke()
	case s.Fill != "":
		c.gc.SetFillColor(parseColor(s.Fill, op))
		c.gc.Fill()
	case s.Stroke != "":
		c.gc.SetStrokeColor(parseColor(s.Stroke, op))
		c.gc.SetLineWidth(strokeWidth(s) * c.scale)
		c.gc.Stroke()
	}
}

func strokeWidth(s Style) float64 {
	if s.StrokeWidth <= 0 {
		return 1
	}
	return s.StrokeWidth
}

// parseColor converts "#rrggbb" hex to an RGBA color with the given
// opacity. Unparseable colors render black so that a bad input stays
// visible instead of vanishing.
func parseColor(hex string, opacity float64) color.Color {
	if hex == "" {
		hex = "#000000"
	}
	c, err := colorful.Hex(hex)
	if err != nil {
		c = colorful.Color{}
	}
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: uint8(opacity * 255)}
}

var _ Canvas = (*RasterCanvas)(nil)
