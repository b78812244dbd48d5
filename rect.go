package plotdraw

// Rect is an axis-aligned rectangle in data space, used for canvas view
// bounds. Min is the bottom-left corner, Max the top-right.
type Rect struct {
	Min, Max Point
}

// RectWH creates a Rect from its bottom-left corner and extents.
func RectWH(x, y, w, h float64) Rect {
	return Rect{Min: Pt(x, y), Max: Pt(x+w, y+h)}
}

// W returns the horizontal extent of the rectangle.
func (r Rect) W() float64 {
	return r.Max.X - r.Min.X
}

// H returns the vertical extent of the rectangle.
func (r Rect) H() float64 {
	return r.Max.Y - r.Min.Y
}

// Center returns the center point of the rectangle.
func (r Rect) Center() Point {
	return Pt((r.Min.X+r.Max.X)/2, (r.Min.Y+r.Max.Y)/2)
}

// IsEmpty reports whether the rectangle has non-positive extent in either
// dimension.
func (r Rect) IsEmpty() bool {
	return r.W() <= 0 || r.H() <= 0
}
