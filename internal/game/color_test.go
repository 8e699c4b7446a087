package game

import (
	"math/rand"
	"testing"
)

func TestPickExcludingNeverReturnsExcluded(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	seen := make(map[Color]int)
	for i := 0; i < 6000; i++ {
		c := PickExcluding(rng, Palette, Blue)
		if c == Blue {
			t.Fatalf("PickExcluding returned the excluded color")
		}
		seen[c]++
	}
	if len(seen) != len(Palette)-1 {
		t.Fatalf("picked %d distinct colors, want %d", len(seen), len(Palette)-1)
	}
	for c, n := range seen {
		if n < 1000 || n > 1400 {
			t.Errorf("color %v picked %d times, want roughly 1200", c, n)
		}
	}
}

func TestPickExcludingNoneUsesWholePalette(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	seen := make(map[Color]bool)
	for i := 0; i < 1000; i++ {
		seen[PickExcluding(rng, Palette, ColorNone)] = true
	}
	if len(seen) != len(Palette) {
		t.Fatalf("picked %d distinct colors, want %d", len(seen), len(Palette))
	}
}

func TestPickPowerTypeCoversAllTypes(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	seen := make(map[PowerType]bool)
	for i := 0; i < 300; i++ {
		p := PickPowerType(rng)
		if p == PowerNone {
			t.Fatal("PickPowerType returned PowerNone")
		}
		seen[p] = true
	}
	if len(seen) != 3 {
		t.Fatalf("picked %d power types, want 3", len(seen))
	}
}

func TestPowerColors(t *testing.T) {
	tests := []struct {
		power PowerType
		want  Color
	}{
		{PowerSlow, LightBlue},
		{PowerLife, LimeGreen},
		{PowerDouble, Gold},
	}
	for _, tt := range tests {
		if got := tt.power.Color(); got != tt.want {
			t.Errorf("%v color = %v, want %v", tt.power, got, tt.want)
		}
	}
}

func TestColorRGB(t *testing.T) {
	r, g, b := Gold.RGB().RGB255()
	if r != 0xff || g != 0xd7 || b != 0x00 {
		t.Fatalf("gold = #%02x%02x%02x, want #ffd700", r, g, b)
	}
}

func TestMustHex(t *testing.T) {
	r, g, b := MustHex("#3366ff").RGB255()
	if r != 0x33 || g != 0x66 || b != 0xff {
		t.Fatalf("got #%02x%02x%02x, want #3366ff", r, g, b)
	}
	for _, c := range BackgroundPalette {
		if !c.IsValid() {
			t.Errorf("background %v out of range", c)
		}
	}

	defer func() {
		if recover() == nil {
			t.Error("malformed hex did not panic")
		}
	}()
	MustHex("not a color")
}
