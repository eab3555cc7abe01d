package plot

import "github.com/bio-traven/karyoploteR/pkg/render"

// linkSamples is the number of points each link arc is sampled at.
const linkSamples = 50

// cubicBez is a cubic Bezier segment in canvas coordinates.
type cubicBez struct {
	p0, p1, p2, p3 render.Point
}

// eval returns the point at parameter t using the de Casteljau form
// expanded into the monomial basis.
func (cb cubicBez) eval(t float64) render.Point {
	mt := 1 - t
	a := mt * mt * mt
	b := 3 * mt * mt * t
	c := 3 * mt * t * t
	d := t * t * t
	return render.Point{
		X: a*cb.p0.X + b*cb.p1.X + c*cb.p2.X + d*cb.p3.X,
		Y: a*cb.p0.Y + b*cb.p1.Y + c*cb.p2.Y + d*cb.p3.Y,
	}
}

// sample evaluates the curve at n parameter steps from 0 to 1 inclusive.
func (cb cubicBez) sample(n int) []render.Point {
	if n < 2 {
		n = 2
	}
	pts := make([]render.Point, n)
	for i := 0; i < n; i++ {
		pts[i] = cb.eval(float64(i) / float64(n-1))
	}
	return pts
}

// arc builds the cubic used for link rendering: endpoints a and b with
// both control points displaced vertically by dy, giving the flat-topped
// arch shape links are drawn with.
func arc(a, b render.Point, dy float64) cubicBez {
	return cubicBez{
		p0: a,
		p1: render.Point{X: a.X, Y: a.Y + dy},
		p2: render.Point{X: b.X, Y: b.Y + dy},
		p3: b,
	}
}
