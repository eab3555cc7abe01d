package render

// Point is a position in canvas coordinates. The origin is the top-left
// corner; y grows downward, matching both SVG and raster conventions.
type Point struct {
	X, Y float64
}

// Anchor controls horizontal text alignment relative to the text position.
type Anchor int

const (
	AnchorStart Anchor = iota
	AnchorMiddle
	AnchorEnd
)

// Style describes how a shape is painted. Fill and Stroke are "#rrggbb"
// hex colors; an empty string disables that paint.
type Style struct {
	Fill        string
	Stroke      string
	StrokeWidth float64
	Opacity     float64 // 0 means fully opaque (treated as 1)
}

// TextStyle describes label rendering.
type TextStyle struct {
	Fill   string
	Size   float64 // font size in canvas units
	Anchor Anchor
}

// Canvas is the drawing surface the plot layer paints onto. Implementations
// translate these primitives into a concrete output format; the plot layer
// never touches a backend directly.
type Canvas interface {
	// Size returns the canvas dimensions in canvas units.
	Size() (w, h float64)
	// Line draws a straight segment.
	Line(x1, y1, x2, y2 float64, s Style)
	// Rect draws an axis-aligned rectangle with top-left corner (x, y).
	Rect(x, y, w, h float64, s Style)
	// Circle draws a circle centered at (cx, cy).
	Circle(cx, cy, r float64, s Style)
	// Polyline draws an open path through pts.
	Polyline(pts []Point, s Style)
	// Polygon draws a closed path through pts.
	Polygon(pts []Point, s Style)
	// Text draws a label with its baseline at (x, y).
	Text(x, y float64, text string, s TextStyle)
}

func opacityOf(s Style) float64 {
	if s.Opacity <= 0 || s.Opacity > 1 {
		return 1
	}
	return s.Opacity
}
