package render

import (
	"bytes"
	"fmt"
	"strings"
)

// SVGCanvas renders primitives as SVG elements into a buffer.
//
// Elements are emitted in call order, so later draws paint over earlier
// ones. The canvas is not safe for concurrent use.
type SVGCanvas struct {
	width  float64
	height float64
	buf    bytes.Buffer
}

// NewSVG creates an SVG canvas with the given dimensions in pixels.
func NewSVG(width, height float64) *SVGCanvas {
	return &SVGCanvas{width: width, height: height}
}

// Size returns the canvas dimensions.
func (c *SVGCanvas) Size() (float64, float64) { return c.width, c.height }

// Bytes returns the complete SVG document.
func (c *SVGCanvas) Bytes() []byte {
	var out bytes.Buffer
	fmt.Fprintf(&out, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		c.width, c.height, c.width, c.height)
	out.Write(c.buf.Bytes())
	out.WriteString("</svg>\n")
	return out.Bytes()
}

// Line implements [Canvas].
func (c *SVGCanvas) Line(x1, y1, x2, y2 float64, s Style) {
	fmt.Fprintf(&c.buf, `<line x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f"%s/>`+"\n",
		x1, y1, x2, y2, paintAttrs(s))
}

// Rect implements [Canvas].
func (c *SVGCanvas) Rect(x, y, w, h float64, s Style) {
	fmt.Fprintf(&c.buf, `<rect x="%.2f" y="%.2f" width="%.2f" height="%.2f"%s/>`+"\n",
		x, y, w, h, paintAttrs(s))
}

// Circle implements [Canvas].
func (c *SVGCanvas) Circle(cx, cy, r float64, s Style) {
	fmt.Fprintf(&c.buf, `<circle cx="%.2f" cy="%.2f" r="%.2f"%s/>`+"\n",
		cx, cy, r, paintAttrs(s))
}

// Polyline implements [Canvas].
func (c *SVGCanvas) Polyline(pts []Point, s Style) {
	if len(pts) < 2 {
		return
	}
	// Polylines are strokes; never let a fill default leak in.
	fill := s.Fill
	s.Fill = ""
	fmt.Fprintf(&c.buf, `<polyline points="%s"%s/>`+"\n", pointList(pts), paintAttrs(s))
	s.Fill = fill
}

// Polygon implements [Canvas].
func (c *SVGCanvas) Polygon(pts []Point, s Style) {
	if len(pts) < 3 {
		return
	}
	fmt.Fprintf(&c.buf, `<polygon points="%s"%s/>`+"\n", pointList(pts), paintAttrs(s))
}

// Text implements [Canvas].
func (c *SVGCanvas) Text(x, y float64, text string, s TextStyle) {
	anchor := "start"
	switch s.Anchor {
	case AnchorMiddle:
		anchor = "middle"
	case AnchorEnd:
		anchor = "end"
	}
	fill := s.Fill
	if fill == "" {
		fill = "#000000"
	}
	size := s.Size
	if size <= 0 {
		size = 12
	}
	fmt.Fprintf(&c.buf,
		`<text x="%.2f" y="%.2f" font-size="%.1f" text-anchor="%s" fill="%s" font-family="sans-serif">%s</text>`+"\n",
		x, y, size, anchor, fill, escapeText(text))
}

func pointList(pts []Point) string {
	var b strings.Builder
	for i, p := range pts {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%.2f,%.2f", p.X, p.Y)
	}
	return b.String()
}

func paintAttrs(s Style) string {
	var b strings.Builder
	if s.Fill != "" {
		fmt.Fprintf(&b, ` fill="%s"`, s.Fill)
	} else {
		b.WriteString(` fill="none"`)
	}
	if s.Stroke != "" {
		fmt.Fprintf(&b, ` stroke="%s"`, s.Stroke)
		w := s.StrokeWidth
		if w <= 0 {
			w = 1
		}
		fmt.Fprintf(&b, ` stroke-width="%.2f"`, w)
	}
	if op := opacityOf(s); op < 1 {
		fmt.Fprintf(&b, ` opacity="%.2f"`, op)
	}
	return b.String()
}

func escapeText(s string) string {
	r := strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")
	return r.Replace(s)
}

var _ Canvas = (*SVGCanvas)(nil)
