package game

import "github.com/tomz197/catcher/internal/physics"

// Surface is the logical drawing area the game runs in.
type Surface struct {
	Width  float64
	Height float64
}

// Rect is an axis-aligned rectangle in surface coordinates.
type Rect struct {
	X, Y, W, H float64
}

// Contains reports whether the point lies inside the rectangle.
func (r Rect) Contains(x, y float64) bool {
	return physics.PointInRect(x, y, r.X, r.Y, r.W, r.H)
}

// Center returns the rectangle's midpoint.
func (r Rect) Center() (x, y float64) {
	return r.X + r.W/2, r.Y + r.H/2
}

// FitSurface returns the largest 3:4 (width:height) area that fits the viewport.
func FitSurface(viewWidth, viewHeight float64) Surface {
	if viewWidth <= 0 || viewHeight <= 0 {
		return Surface{}
	}
	w, h := viewWidth, viewHeight
	if w/h > AspectRatio {
		w = h * AspectRatio
	} else {
		h = w / AspectRatio
	}
	return Surface{Width: w, Height: h}
}

// SaveButton returns the game-over "save score" control region.
func (s Surface) SaveButton() Rect {
	return Rect{
		X: s.Width/2 - SaveButtonWidth/2,
		Y: s.Height/2 + saveButtonOffsetY,
		W: SaveButtonWidth,
		H: SaveButtonHeight,
	}
}
