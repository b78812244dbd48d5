package plotdraw

import "image/color"

// Primitive is a single drawable shape. Drawings treat primitives as an
// opaque capability set: untransformed geometry for extent computation, and
// an assignable composite transform.
type Primitive interface {
	// Vertices returns the primitive's untransformed vertex coordinates.
	// The returned slice must not be modified.
	Vertices() []Point

	// SetTransform assigns the composite transform applied at render time.
	SetTransform(m Matrix)

	// Transform returns the currently assigned transform.
	Transform() Matrix
}

// Patch is a filled polygon primitive defined by a closed vertex loop.
// It is the package's concrete Primitive; the shape constructors (NewArrow,
// NewPolygon, ...) all produce Patches.
type Patch struct {
	verts     []Point
	transform Matrix
	fill      color.Color
}

// NewPatch creates a Patch from a vertex loop. The loop is implicitly closed;
// the last vertex does not need to repeat the first.
func NewPatch(verts []Point) *Patch {
	return &Patch{
		verts:     verts,
		transform: Identity(),
		fill:      color.Black,
	}
}

// Vertices returns the untransformed vertex loop.
func (p *Patch) Vertices() []Point {
	return p.verts
}

// SetTransform assigns the composite transform applied at render time.
func (p *Patch) SetTransform(m Matrix) {
	p.transform = m
}

// Transform returns the currently assigned transform.
func (p *Patch) Transform() Matrix {
	return p.transform
}

// SetFill sets the fill color used when the patch is rasterized.
func (p *Patch) SetFill(c color.Color) {
	p.fill = c
}

// Fill returns the patch's fill color.
func (p *Patch) Fill() color.Color {
	return p.fill
}
