// Package theme holds the colours and glyphs shared by every renderer.
package theme

import (
	"strings"

	"github.com/tomz197/catcher/internal/game"
)

var (
	Text       = game.MustHex("#000000")
	Screen     = game.MustHex("#ffffff")
	MenuBG     = game.MustHex("#d3d3d3")
	Particle   = game.MustHex("#ffffff")
	Halo       = game.MustHex("#ffd700")
	LevelUp    = game.MustHex("#3366ff")
	Banner     = game.MustHex("#ffeb3b")
	SaveButton = game.MustHex("#99ccff")
	Flash      = game.MustHex("#ff0000")
	Double     = game.MustHex("#ffd700")
	Control    = game.MustHex("#000000")
)

const (
	HaloAlpha     = 0.4
	HaloPadding   = 5 // Logical units around a power-up ball
	ParticleSize  = 2
	FlashAlpha    = 0.3 // Strength of the miss flash right after a miss
	ControlAlpha  = 0.15
	BannerWidth   = 300
	BannerHeight  = 40
	LevelUpOffset = 100 // Level Up text sits this far above the centre
)

// Icon is the glyph drawn on a power-up ball.
func Icon(p game.PowerType) string {
	switch p {
	case game.PowerSlow:
		return "*"
	case game.PowerLife:
		return "+"
	case game.PowerDouble:
		return "2"
	}
	return ""
}

// Achievements lists unlocked achievements for the game over screen.
// It returns "" when nothing is unlocked.
func Achievements(unlocked []game.Achievement) string {
	if len(unlocked) == 0 {
		return ""
	}
	names := make([]string, len(unlocked))
	for i, a := range unlocked {
		names[i] = strings.TrimSuffix(a.String(), "!")
	}
	return "Achievements: " + strings.Join(names, ", ")
}

// Title and help lines for the start screen.
const (
	Title    = "Color Catcher"
	Tagline  = "Catch balls matching your basket!"
	SaveText = "Save High Score"
)
