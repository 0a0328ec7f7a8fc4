package raycast

import "image/color"

// Surface is the drawing target the engine renders into. Coordinates are in
// world units; hosts scale them as they see fit.
type Surface interface {
	// Clear erases the given region.
	Clear(x, y, w, h float64)
	FillRect(x, y, w, h float64, clr color.Color)
	StrokeRect(x, y, w, h float64, clr color.Color)
	FillCircle(cx, cy, r float64, clr color.Color)
	StrokeCircle(cx, cy, r float64, clr color.Color)
	StrokeLine(x0, y0, x1, y1 float64, clr color.Color)
}
