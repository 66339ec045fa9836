package blit

// Point is an integer 2D coordinate. The zero value is the origin.
type Point struct {
	X, Y int
}

// Pt is a convenience function to create a Point.
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

// Add returns the component-wise sum of two points.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the component-wise difference of two points.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Size is the extent of a rectangular region. A zero width or height is
// valid and denotes an empty region.
type Size struct {
	W, H int
}

// Sz is a convenience function to create a Size.
func Sz(w, h int) Size {
	return Size{W: w, H: h}
}

// IsEmpty reports whether the size spans no elements.
func (s Size) IsEmpty() bool {
	return s.W <= 0 || s.H <= 0
}

// Min returns the component-wise minimum of two sizes.
func (s Size) Min(t Size) Size {
	if t.W < s.W {
		s.W = t.W
	}
	if t.H < s.H {
		s.H = t.H
	}
	return s
}
