package entity

// Rect is a tile's position and size, expressed as percentages of the canvas (0-100).
type Rect struct {
	X, Y          float64 // Top-left corner
	Width, Height float64
}

// Right returns the x coordinate of the right edge.
func (r Rect) Right() float64 {
	return r.X + r.Width
}

// Bottom returns the y coordinate of the bottom edge.
func (r Rect) Bottom() float64 {
	return r.Y + r.Height
}

// Area returns Width*Height.
func (r Rect) Area() float64 {
	return r.Width * r.Height
}

// Center returns the center point of the rectangle.
func (r Rect) Center() (cx, cy float64) {
	return r.X + r.Width/2, r.Y + r.Height/2
}

// Inset shrinks the rectangle by d on all four sides.
func (r Rect) Inset(d float64) Rect {
	return Rect{X: r.X + d, Y: r.Y + d, Width: r.Width - 2*d, Height: r.Height - 2*d}
}

// Intersects reports whether the two rectangles overlap by more than eps on both axes.
// Touching edges do not count as an overlap.
func (r Rect) Intersects(o Rect, eps float64) bool {
	overlapX := min(r.Right(), o.Right()) - max(r.X, o.X)
	overlapY := min(r.Bottom(), o.Bottom()) - max(r.Y, o.Y)
	return overlapX > eps && overlapY > eps
}

// Canvas is the full layout area in percentage units.
var Canvas = Rect{X: 0, Y: 0, Width: 100, Height: 100}
