package plotdraw

import "math"

// NewPolygon creates a filled polygon patch from a closed vertex loop.
func NewPolygon(verts ...Point) *Patch {
	return NewPatch(verts)
}

// NewRectangle creates a rectangle patch with bottom-left corner (x, y).
func NewRectangle(x, y, w, h float64) *Patch {
	return NewPatch([]Point{
		Pt(x, y),
		Pt(x+w, y),
		Pt(x+w, y+h),
		Pt(x, y+h),
	})
}

// NewArrow creates an arrow patch from (x, y) along the vector (dx, dy) with
// the given shaft width. The head is three shaft widths wide and one and a
// half head widths long, clamped to the arrow's length.
//
// Instantiate arrows at x = 0 when they are meant to be grouped into a
// Drawing, so positioning and scaling behave well.
func NewArrow(x, y, dx, dy, width float64) *Patch {
	tail := Pt(x, y)
	dir := Pt(dx, dy)
	length := dir.Length()

	u := dir.Normalize()
	n := u.Perp()

	headWidth := 3 * width
	headLength := math.Min(1.5*headWidth, length)
	base := tail.Add(u.Mul(length - headLength))

	return NewPatch([]Point{
		tail.Add(n.Mul(-width / 2)),
		tail.Add(n.Mul(width / 2)),
		base.Add(n.Mul(width / 2)),
		base.Add(n.Mul(headWidth / 2)),
		tail.Add(dir),
		base.Add(n.Mul(-headWidth / 2)),
		base.Add(n.Mul(-width / 2)),
	})
}

// NewCircle creates a circle patch centered at (cx, cy), approximated by a
// 64-gon.
func NewCircle(cx, cy, r float64) *Patch {
	const segments = 64
	verts := make([]Point, segments)
	for i := 0; i < segments; i++ {
		a := 2 * math.Pi * float64(i) / segments
		verts[i] = Pt(cx+r*math.Cos(a), cy+r*math.Sin(a))
	}
	return NewPatch(verts)
}
