// Package bezier evaluates Bézier curves of arbitrary degree.
package bezier

import "github.com/matt-g-everett/ledanim/easing"

// Point is a position in 2D space.
type Point [2]float64

// Position returns the point at t ∈ [0,1] on the curve spanned by the control
// points, collapsing the control polygon by repeated linear interpolation.
// The points slice is left untouched. An empty slice yields the origin.
func Position(points []Point, t float64) Point {
	n := len(points)
	if n == 0 {
		return Point{}
	}
	tmp := make([]Point, n)
	copy(tmp, points)
	for k := 1; k < n; k++ {
		for i := 0; i < n-k; i++ {
			tmp[i][0] = (1-t)*tmp[i][0] + t*tmp[i+1][0]
			tmp[i][1] = (1-t)*tmp[i][1] + t*tmp[i+1][1]
		}
	}
	return tmp[0]
}

// A Path moves along a curve, spacing progress with an easing function.
type Path struct {
	Points []Point
	Method easing.Func
}

// NewPath creates a Path through the given control points. A nil method
// moves linearly.
func NewPath(method easing.Func, points ...Point) *Path {
	p := new(Path)
	p.Points = points
	p.Method = method
	if p.Method == nil {
		p.Method = easing.Linear
	}
	return p
}

// At returns the position for frame t of d.
func (p *Path) At(t, d float64) Point {
	if d <= 0 {
		return Position(p.Points, 1)
	}
	return Position(p.Points, p.Method(t, 0, 1, d))
}
