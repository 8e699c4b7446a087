package game

import (
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/tomz197/catcher/internal/physics"
)

// Background blends from Current toward Next as Progress goes from 0 to 1.
type Background struct {
	Current  colorful.Color
	Next     colorful.Color
	Progress float64
}

func newBackground() Background {
	return Background{
		Current: BackgroundPalette[0],
		Next:    BackgroundPalette[1],
	}
}

// Color returns the blended background color.
func (b Background) Color() colorful.Color {
	return b.Current.BlendRgb(b.Next, physics.Clamp01(b.Progress)).Clamped()
}

// rotate makes the previous target current and picks a new target.
func (b *Background) rotate(rng Rand) {
	b.Current = b.Next
	b.Next = pickBackground(rng)
	b.Progress = 0
}

func (b *Background) advance() {
	b.Progress = physics.Clamp01(b.Progress + BackgroundStep)
}
