// Package physics provides overlap tests and clamping helpers.
package physics

// PointInRect checks if a point lies inside (or on the edge of) a rectangle.
func PointInRect(px, py, x, y, w, h float64) bool {
	return px >= x && px <= x+w && py >= y && py <= y+h
}

// CircleReachesRect checks whether a falling circle has reached the top edge of
// a rectangle while overlapping it horizontally. The radius is used as the
// circle's half-extent, so this is a box test rather than an exact one.
func CircleReachesRect(cx, cy, r, x, y, w float64) bool {
	return cy+r >= y && cx+r >= x && cx-r <= x+w
}

// Clamp limits v to [lo, hi]. If hi < lo, lo wins.
func Clamp(v, lo, hi float64) float64 {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}

// Clamp01 limits v to [0, 1].
func Clamp01(v float64) float64 {
	return Clamp(v, 0, 1)
}
