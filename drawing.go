package plotdraw

import "math"

// Empirical visual-balance tuning for the auto-scale formula in scaling().
// Do not adjust without comparing rendered output.
const (
	scaleHeightRef = 0.2
	scaleExponent  = 3.0 / 4.0
)

// Drawing is a composite of primitives treated as one positionable,
// auto-scaling unit. The component set is fixed at construction; the drawing
// is applied to a canvas once, repositioned any number of times through
// Update, and finally removed.
//
// The component primitives should be instantiated at x = 0 to allow for
// proper positioning and scaling.
type Drawing struct {
	components []Primitive

	canvas Canvas
	pos    Point
}

// New creates a Drawing from its component primitives. The drawing holds no
// canvas association until ApplyTo is called.
func New(components ...Primitive) *Drawing {
	return &Drawing{components: components}
}

// UpdateOption overrides one coordinate of a drawing's position for a single
// Update call. Coordinates without an override retain their previous value.
type UpdateOption func(*updateOptions)

type updateOptions struct {
	x, y *float64
}

// AtX overrides the drawing's x position.
func AtX(x float64) UpdateOption {
	return func(o *updateOptions) { o.x = &x }
}

// AtY overrides the drawing's y position.
func AtY(y float64) UpdateOption {
	return func(o *updateOptions) { o.y = &y }
}

// ApplyTo applies the drawing on a canvas at position (x, y) in data units,
// computes the initial transform, and registers every component with the
// canvas for rendering.
//
// A drawing is applied to one canvas at a time. Applying to a second canvas
// without an intervening Remove is undefined.
func (d *Drawing) ApplyTo(c Canvas, x, y float64) {
	d.canvas = c
	d.pos = Pt(x, y)

	d.Update()

	for _, component := range d.components {
		d.canvas.AddPrimitive(component)
	}

	Logger().Debug("drawing applied",
		"x", x, "y", y, "components", len(d.components))
}

// Update recomputes the drawing's position and scaling from the canvas's
// current view extents and reapplies the composed transform to every
// component. With no options it retains the last-set position, so it can be
// invoked from a view-change callback to keep the drawing's apparent size
// constant across zooms. Calling Update with the same position and view
// bounds is idempotent.
//
// Update panics if the drawing has not been applied to a canvas.
func (d *Drawing) Update(opts ...UpdateOption) {
	var o updateOptions
	for _, opt := range opts {
		opt(&o)
	}
	if o.x != nil {
		d.pos.X = *o.x
	}
	if o.y != nil {
		d.pos.Y = *o.y
	}

	sx, sy := d.scaling()

	// Scale first, then place, then map into screen space.
	m := d.canvas.DataTransform().
		Multiply(Translate(d.pos.X, d.pos.Y)).
		Multiply(Scale(sx, sy))

	for _, component := range d.components {
		component.SetTransform(m)
	}

	Logger().Debug("drawing updated", "x", d.pos.X, "y", d.pos.Y, "sx", sx)
}

// scaling computes the scale factors that keep the drawing's apparent width
// constant relative to the view window. The vertical scale is fixed at 1;
// the horizontal scale follows an empirical formula tuned for visual balance.
func (d *Drawing) scaling() (sx, sy float64) {
	view := d.canvas.ViewBounds()

	heightFactor := d.Height() / view.H()
	sx = view.W() * math.Pow(heightFactor/scaleHeightRef, scaleExponent)

	return sx, 1
}

// Height returns the drawing's intrinsic vertical extent: the difference
// between the highest and lowest untransformed vertex over all components.
// It is unaffected by any transforms applied so far.
//
// Height is undefined for a drawing with no components.
func (d *Drawing) Height() float64 {
	top := math.Inf(-1)
	bottom := math.Inf(1)

	for _, component := range d.components {
		for _, v := range component.Vertices() {
			top = math.Max(top, v.Y)
			bottom = math.Min(bottom, v.Y)
		}
	}

	return top - bottom
}

// Remove deregisters every component from the canvas. The drawing is
// unusable afterwards; construct a new one to re-apply.
func (d *Drawing) Remove() {
	for _, component := range d.components {
		d.canvas.RemovePrimitive(component)
	}

	Logger().Debug("drawing removed", "components", len(d.components))
}
