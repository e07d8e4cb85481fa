package mandelbrot

import "github.com/gogpu/gg"

// Viewport is the rectangle of the complex plane mapped onto the screen.
// Extent is the (width, height) of the rectangle in plane units and Center
// its midpoint. Zoom scales both extent components by the same factor.
type Viewport struct {
	Extent gg.Point
	Center gg.Point
}

// PixelToPlane maps the pixel (px, py) of a width x height screen to the
// complex plane. The screen center pixel (width/2, height/2) maps exactly
// to Center.
func (v Viewport) PixelToPlane(px, py, width, height int) (re, im float64) {
	nx := float64(px-width/2) / float64(width)
	ny := float64(py-height/2) / float64(height)
	return nx*v.Extent.X + v.Center.X, ny*v.Extent.Y + v.Center.Y
}

// PlaneToPixel is the inverse of PixelToPlane. The result is fractional;
// callers round or truncate as needed.
func (v Viewport) PlaneToPixel(re, im float64, width, height int) (px, py float64) {
	px = (re-v.Center.X)/v.Extent.X*float64(width) + float64(width/2)
	py = (im-v.Center.Y)/v.Extent.Y*float64(height) + float64(height/2)
	return px, py
}

// Pan moves the center by d, given in fractions of the extent.
func (v *Viewport) Pan(d gg.Point) {
	v.Center.X += d.X * v.Extent.X
	v.Center.Y += d.Y * v.Extent.Y
}

// ZoomIn multiplies the extent by factor.
func (v *Viewport) ZoomIn(factor float64) {
	v.Extent = v.Extent.Mul(factor)
}

// ZoomOut divides the extent by factor.
func (v *Viewport) ZoomOut(factor float64) {
	v.Extent = v.Extent.Div(factor)
}

// Bounds returns the plane coordinates of the top-left and bottom-right
// screen corners.
func (v Viewport) Bounds() (minPt, maxPt gg.Point) {
	half := v.Extent.Mul(0.5)
	return v.Center.Sub(half), v.Center.Add(half)
}
