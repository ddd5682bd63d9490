package core

import "image"

// Surface is a 2D raster drawing target measured in pixels.
// The render step draws through it without knowing whether the pixels end up
// in a terminal, an in-memory image or a GPU-backed window.
//
// Coordinates passed to drawing methods are shifted by the sum of all pushed
// offsets. Implementations clip silently; nothing here returns an error.
type Surface interface {
	// Size returns the drawable width and height in pixels.
	Size() (w, h float64)

	// Clear fills the whole surface with c, ignoring offsets.
	Clear(c Color)

	FillRect(x, y, w, h float64, c Color)
	StrokeRect(x, y, w, h, width float64, c Color)
	FillCircle(cx, cy, r float64, c Color)
	Line(x0, y0, x1, y1, width float64, c Color)

	// Text draws a short label whose horizontal center is cx and whose
	// baseline is y.
	Text(cx, y float64, s string, c Color)

	// DrawImage scales img into the destination rectangle, blended with the
	// given opacity in [0, 1].
	DrawImage(img image.Image, x, y, w, h, alpha float64)

	// PushOffset translates subsequent drawing by (dx, dy).
	PushOffset(dx, dy float64)
	// PopOffset undoes the most recent PushOffset.
	PopOffset()
}

// OffsetStack is a helper for Surface implementations that tracks the
// cumulative translation.
type OffsetStack struct {
	stack  [][2]float64
	dx, dy float64
}

// Push adds a translation.
func (o *OffsetStack) Push(dx, dy float64) {
	o.stack = append(o.stack, [2]float64{dx, dy})
	o.dx += dx
	o.dy += dy
}

// Pop removes the most recent translation. Popping an empty stack is a no-op.
func (o *OffsetStack) Pop() {
	if len(o.stack) == 0 {
		return
	}
	last := o.stack[len(o.stack)-1]
	o.stack = o.stack[:len(o.stack)-1]
	o.dx -= last[0]
	o.dy -= last[1]
}

// Apply translates a point by the current offset.
func (o *OffsetStack) Apply(x, y float64) (float64, float64) {
	return x + o.dx, y + o.dy
}

// Depth returns the number of pushed offsets.
func (o *OffsetStack) Depth() int {
	return len(o.stack)
}
