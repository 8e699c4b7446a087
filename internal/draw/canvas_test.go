package draw

import (
	"bytes"
	"math"
	"strings"
	"testing"

	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/termenv"
)

var (
	white = colorful.Color{R: 1, G: 1, B: 1}
	red   = colorful.Color{R: 1}
	black = colorful.Color{}
)

func TestFillCircleStaysInside(t *testing.T) {
	c := NewCanvas(20, 10, 100, 100, termenv.TrueColor)
	c.Fill(white)
	c.FillCircle(50, 50, 20, red)

	if got := c.pixels[10*20+10]; got != red {
		t.Fatalf("centre pixel = %v, want red", got)
	}
	if got := c.pixels[0]; got != white {
		t.Fatalf("corner pixel = %v, want white", got)
	}
}

func TestBlendRectMixes(t *testing.T) {
	c := NewCanvas(4, 2, 4, 4, termenv.TrueColor)
	c.Fill(black)
	c.BlendRect(0, 0, 4, 4, white, 0.5)
	r, g, b := c.pixels[5].RGB255()
	if r < 120 || r > 135 || r != g || g != b {
		t.Fatalf("blended pixel = %d,%d,%d, want mid grey", r, g, b)
	}
}

func TestRenderDiffsFrames(t *testing.T) {
	c := NewCanvas(4, 2, 4, 4, termenv.TrueColor)
	c.Fill(white)

	var first bytes.Buffer
	if err := c.Render(&first); err != nil {
		t.Fatal(err)
	}
	if n := strings.Count(first.String(), string(BlockUpperHalf)); n != 8 {
		t.Fatalf("first frame drew %d cells, want 8", n)
	}

	var second bytes.Buffer
	c.Fill(white)
	c.Render(&second)
	if second.Len() != 0 {
		t.Fatalf("unchanged frame wrote %q", second.String())
	}

	var third bytes.Buffer
	c.Fill(white)
	c.Text(2, 1, "A", red)
	c.Render(&third)
	out := third.String()
	if !strings.Contains(out, "\x1b[1;2H") || !strings.Contains(out, "A") {
		t.Fatalf("changed cell not redrawn: %q", out)
	}
	if strings.Contains(out, string(BlockUpperHalf)) {
		t.Fatalf("unchanged cells redrawn: %q", out)
	}
	if !strings.Contains(out, "38;2;255;0;0") {
		t.Fatalf("text colour missing: %q", out)
	}

	c.ForceRedraw()
	var fourth bytes.Buffer
	c.Render(&fourth)
	if n := strings.Count(fourth.String(), string(BlockUpperHalf)); n != 7 {
		t.Fatalf("forced redraw drew %d blocks, want 7", n)
	}
}

func TestRenderAppliesOffset(t *testing.T) {
	c := NewCanvas(2, 1, 2, 2, termenv.TrueColor)
	c.SetOffset(5, 3)
	c.Fill(white)
	var buf bytes.Buffer
	c.Render(&buf)
	if !strings.HasPrefix(buf.String(), "\x1b[4;6H") {
		t.Fatalf("render did not start at the offset: %q", buf.String())
	}
}

func TestTerminalToLogical(t *testing.T) {
	c := NewCanvas(60, 40, 600, 800, termenv.TrueColor)
	c.SetOffset(10, 2)

	x, y, ok := c.TerminalToLogical(11, 3)
	if !ok || math.Abs(x-5) > 1e-9 || math.Abs(y-10) > 1e-9 {
		t.Fatalf("top-left cell = (%v, %v, %v), want (5, 10, true)", x, y, ok)
	}
	if _, _, ok := c.TerminalToLogical(10, 3); ok {
		t.Fatal("cell left of the canvas reported inside")
	}
	if _, _, ok := c.TerminalToLogical(71, 42); ok {
		t.Fatal("cell past the canvas reported inside")
	}

	col, row := c.LogicalToCell(x, y)
	if col != 1 || row != 1 {
		t.Fatalf("LogicalToCell = (%d, %d), want (1, 1)", col, row)
	}
}

func TestTextClipsToCanvas(t *testing.T) {
	c := NewCanvas(3, 1, 3, 2, termenv.TrueColor)
	c.Fill(black)
	c.Text(2, 1, "abcd", white)
	c.Text(1, 2, "x", white)
	if c.text[0].ch != 0 || c.text[1].ch != 'a' || c.text[2].ch != 'b' {
		t.Fatalf("text overlay = %+v", c.text)
	}
}

func TestPanel(t *testing.T) {
	rows := Panel("GAME OVER", "Score: 12", "Best: 30")
	if len(rows) != 6 {
		t.Fatalf("panel has %d rows, want 6: %q", len(rows), rows)
	}
	if !strings.HasPrefix(rows[0], "╭") || !strings.HasSuffix(rows[len(rows)-1], "╯") {
		t.Fatalf("panel border missing: %q", rows)
	}
	for _, r := range rows {
		if strings.Contains(r, "\x1b") {
			t.Fatalf("panel row carries escape codes: %q", r)
		}
	}
	if PanelWidth(rows) != len([]rune(rows[0])) {
		t.Fatalf("PanelWidth = %d, want %d", PanelWidth(rows), len([]rune(rows[0])))
	}

	c := NewCanvas(40, 10, 40, 20, termenv.TrueColor)
	c.Fill(black)
	c.DrawPanel(2, rows, white)
	col := (40-PanelWidth(rows))/2 + 1
	if c.text[1*40+col-1].ch != '╭' {
		t.Fatal("panel not drawn at the centred column")
	}
}
