package paint

import "math"

// Point is a position in canvas space.
type Point struct {
	X, Y float64
}

// Pt is a convenience constructor for Point.
func Pt(x, y float64) Point { return Point{X: x, Y: y} }

// Surface is the raster target shapes render onto. Implementations must
// accept negative width/height in FillRect and treat them as an offset in
// the opposite direction, equivalent to normalizing the corners first.
type Surface interface {
	ClearRect(x, y, w, h float64)
	FillRect(x, y, w, h float64, c Color)
	FillArc(cx, cy, r, start, end float64, c Color)
}

// ShapeKind discriminates the closed set of shape variants.
type ShapeKind int

const (
	ShapeCircle ShapeKind = iota
	ShapeRect
)

// Shape is a committed drawable primitive. Shapes are immutable values;
// they are created when a gesture commits and are owned by exactly one
// history stack at any moment.
type Shape struct {
	Kind ShapeKind
	// P1 is the circle center or the first rectangle corner.
	P1 Point
	// P2 is the second rectangle corner; unused by circles.
	P2     Point
	Radius float64
	Color  Color
}

// Circle returns a filled-disc shape centered at p.
func Circle(p Point, radius float64, c Color) Shape {
	return Shape{Kind: ShapeCircle, P1: p, Radius: radius, Color: c}
}

// Rect returns a filled axis-aligned box spanning the two corners. The
// corners may arrive in any order; normalization happens at render time.
func Rect(c1, c2 Point, c Color) Shape {
	return Shape{Kind: ShapeRect, P1: c1, P2: c2, Color: c}
}

// Render draws the shape onto dst. Zero radius or extent is legal and
// produces no visible pixels.
func (s Shape) Render(dst Surface) {
	switch s.Kind {
	case ShapeCircle:
		dst.FillArc(s.P1.X, s.P1.Y, s.Radius, 0, 2*math.Pi, s.Color)
	case ShapeRect:
		dst.FillRect(s.P1.X, s.P1.Y, s.P2.X-s.P1.X, s.P2.Y-s.P1.Y, s.Color)
	}
}
