package game

import (
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Rand is the random source used by the game. *rand.Rand satisfies it.
type Rand interface {
	Float64() float64
	Intn(n int) int
}

// Color identifies a named color used by balls and the basket.
type Color int

const (
	ColorNone Color = iota
	Red
	Blue
	Green
	Purple
	Orange
	Maroon
	LightBlue
	LimeGreen
	Gold
)

var colorNames = [...]string{
	ColorNone: "none",
	Red:       "red",
	Blue:      "blue",
	Green:     "green",
	Purple:    "purple",
	Orange:    "orange",
	Maroon:    "maroon",
	LightBlue: "lightblue",
	LimeGreen: "limegreen",
	Gold:      "gold",
}

// CSS values of the named colors.
var colorHex = [...]string{
	ColorNone: "#000000",
	Red:       "#ff0000",
	Blue:      "#0000ff",
	Green:     "#008000",
	Purple:    "#800080",
	Orange:    "#ffa500",
	Maroon:    "#800000",
	LightBlue: "#add8e6",
	LimeGreen: "#32cd32",
	Gold:      "#ffd700",
}

func (c Color) String() string {
	if c < 0 || int(c) >= len(colorNames) {
		return "unknown"
	}
	return colorNames[c]
}

// RGB returns the color as a colorful.Color.
func (c Color) RGB() colorful.Color {
	if c < 0 || int(c) >= len(colorHex) {
		c = ColorNone
	}
	return MustHex(colorHex[c])
}

// MustHex parses a "#rrggbb" color and panics on malformed input.
func MustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Palette is the set of colors a basket or normal ball can take.
var Palette = []Color{Red, Blue, Green, Purple, Orange, Maroon}

// BackgroundPalette holds the pastel backdrop colors the background cycles through.
var BackgroundPalette = []colorful.Color{
	MustHex("#e0f7fa"),
	MustHex("#e8f5e9"),
	MustHex("#f3e5f5"),
	MustHex("#fff3e0"),
}

// PickExcluding returns a uniformly chosen palette color other than excluded.
// ColorNone excludes nothing.
func PickExcluding(rng Rand, palette []Color, excluded Color) Color {
	n := 0
	for _, c := range palette {
		if c != excluded {
			n++
		}
	}
	if n == 0 {
		return excluded
	}
	idx := rng.Intn(n)
	for _, c := range palette {
		if c == excluded {
			continue
		}
		if idx == 0 {
			return c
		}
		idx--
	}
	return excluded
}

// PickPowerType returns a uniformly chosen power-up type.
func PickPowerType(rng Rand) PowerType {
	return powerTypes[rng.Intn(len(powerTypes))]
}

func pickBackground(rng Rand) colorful.Color {
	return BackgroundPalette[rng.Intn(len(BackgroundPalette))]
}
