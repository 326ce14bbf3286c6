package systems

import "math"

// wrapCentered wraps x into [-size/2, size/2). A non-positive size leaves x
// unchanged.
func wrapCentered(x, size float64) float64 {
	if size <= 0 {
		return x
	}
	half := size / 2
	r := math.Mod(x+half, size)
	if r < 0 {
		r += size
	}
	if r >= size {
		r = 0
	}
	return r - half
}
