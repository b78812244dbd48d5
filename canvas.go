package plotdraw

// Canvas is the rendering surface a Drawing is applied to. It is the minimal
// capability set the package needs from a plotting backend: view-extent
// queries, a data-to-screen mapping, and primitive registration. Plot is the
// built-in implementation; any backend exposing these four operations works.
type Canvas interface {
	// ViewBounds returns the currently visible data-space extents.
	ViewBounds() Rect

	// DataTransform returns the transform from data space to screen space.
	DataTransform() Matrix

	// AddPrimitive registers a primitive for rendering.
	AddPrimitive(p Primitive)

	// RemovePrimitive deregisters a previously added primitive.
	// Removing a primitive that was never added is a no-op.
	RemovePrimitive(p Primitive)
}
