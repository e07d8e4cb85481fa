package mandelbrot

import "math"

// escapeRadiusSq is the squared escape radius.
const escapeRadiusSq = 4.0

// EscapeTime iterates z = z² + c from z = 0 for c = re + im·i and returns
// the number of steps whose result stayed within radius 2. A point that
// never escapes returns maxIter; a point outside the radius returns 0.
func EscapeTime(re, im float64, maxIter int) int {
	var x, y, x2, y2 float64
	n := 0
	for n < maxIter {
		y = 2*x*y + im
		x = x2 - y2 + re
		x2 = x * x
		y2 = y * y
		if x2+y2 > escapeRadiusSq {
			break
		}
		n++
	}
	return n
}

// Escape returns the shading intensity of c = re + im·i:
// round(EscapeTime/maxIter * 255), half away from zero. A bounded point
// yields exactly 255. maxIter < 1 yields 0.
func Escape(re, im float64, maxIter int) uint8 {
	if maxIter < 1 {
		return 0
	}
	n := EscapeTime(re, im, maxIter)
	return uint8(math.Round(float64(n) / float64(maxIter) * 255))
}
