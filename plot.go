package plotdraw

import "fmt"

// Plot is the built-in Canvas implementation: a fixed pixel surface with a
// mutable data-space view window. It keeps the registered primitives in add
// order and notifies view-change callbacks after every zoom, pan, or explicit
// view-bounds change, which is the hook Drawings use to auto-rescale.
type Plot struct {
	width  int
	height int
	view   Rect

	primitives   []Primitive
	onViewChange []func()
}

// PlotOption configures a Plot during creation.
type PlotOption func(*plotOptions)

type plotOptions struct {
	view Rect
}

// WithViewBounds sets the initial data-space view bounds.
// The default view spans one data unit per pixel from the origin.
func WithViewBounds(r Rect) PlotOption {
	return func(o *plotOptions) {
		o.view = r
	}
}

// NewPlot creates a plot with the given pixel dimensions.
func NewPlot(width, height int, opts ...PlotOption) *Plot {
	o := plotOptions{
		view: RectWH(0, 0, float64(width), float64(height)),
	}
	for _, opt := range opts {
		opt(&o)
	}

	return &Plot{
		width:  width,
		height: height,
		view:   o.view,
	}
}

// Width returns the plot's pixel width.
func (p *Plot) Width() int { return p.width }

// Height returns the plot's pixel height.
func (p *Plot) Height() int { return p.height }

// ViewBounds returns the currently visible data-space extents.
func (p *Plot) ViewBounds() Rect {
	return p.view
}

// SetViewBounds replaces the visible data-space window and notifies
// view-change callbacks.
func (p *Plot) SetViewBounds(r Rect) error {
	if r.IsEmpty() {
		return fmt.Errorf("plotdraw: view bounds must have positive extent, got %gx%g", r.W(), r.H())
	}

	p.view = r
	p.notifyViewChange()
	return nil
}

// Zoom scales the view window about its center. Factors above 1 zoom in
// (smaller visible extent), factors below 1 zoom out.
func (p *Plot) Zoom(factor float64) error {
	if factor <= 0 {
		return fmt.Errorf("plotdraw: zoom factor must be positive, got %g", factor)
	}

	c := p.view.Center()
	halfW := p.view.W() / (2 * factor)
	halfH := p.view.H() / (2 * factor)
	p.view = Rect{
		Min: Pt(c.X-halfW, c.Y-halfH),
		Max: Pt(c.X+halfW, c.Y+halfH),
	}
	p.notifyViewChange()
	return nil
}

// Pan shifts the view window by (dx, dy) data units.
func (p *Plot) Pan(dx, dy float64) {
	p.view.Min = p.view.Min.Add(Pt(dx, dy))
	p.view.Max = p.view.Max.Add(Pt(dx, dy))
	p.notifyViewChange()
}

// OnViewChange registers a callback invoked after every view-bounds change.
// Callbacks run synchronously, in registration order.
func (p *Plot) OnViewChange(fn func()) {
	p.onViewChange = append(p.onViewChange, fn)
}

func (p *Plot) notifyViewChange() {
	Logger().Debug("view changed",
		"xmin", p.view.Min.X, "ymin", p.view.Min.Y,
		"xmax", p.view.Max.X, "ymax", p.view.Max.Y)

	for _, fn := range p.onViewChange {
		fn()
	}
}

// DataTransform returns the transform from data space onto the pixel grid.
// The view bounds map to the full surface, with y flipped so that screen y
// grows downward.
func (p *Plot) DataTransform() Matrix {
	sx := float64(p.width) / p.view.W()
	sy := float64(p.height) / p.view.H()

	return Matrix{
		A: sx, B: 0, C: -p.view.Min.X * sx,
		D: 0, E: -sy, F: p.view.Max.Y * sy,
	}
}

// AddPrimitive registers a primitive for rendering. Add order is draw order.
func (p *Plot) AddPrimitive(prim Primitive) {
	p.primitives = append(p.primitives, prim)
}

// RemovePrimitive deregisters a primitive. Removing a primitive that was
// never added is a no-op.
func (p *Plot) RemovePrimitive(prim Primitive) {
	for i, existing := range p.primitives {
		if existing == prim {
			p.primitives = append(p.primitives[:i], p.primitives[i+1:]...)
			return
		}
	}
}

// Primitives returns the registered primitives in draw order.
// The returned slice must not be modified.
func (p *Plot) Primitives() []Primitive {
	return p.primitives
}
