// Package draw renders colour graphics into a terminal using half-block cells.
package draw

import (
	"io"
	"math"
	"strconv"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/termenv"
)

// BlockUpperHalf draws the top pixel of a cell in the foreground colour and
// the bottom pixel in the background colour.
const BlockUpperHalf = '▀'

type rgb [3]uint8

func toRGB(c colorful.Color) rgb {
	r, g, b := c.Clamped().RGB255()
	return rgb{r, g, b}
}

func (c rgb) hex() string {
	return colorful.Color{R: float64(c[0]) / 255, G: float64(c[1]) / 255, B: float64(c[2]) / 255}.Hex()
}

// cell is what one terminal position shows.
type cell struct {
	ch rune
	fg rgb
	bg rgb
}

// Canvas is a colour drawing buffer with 2x vertical resolution.
// Shapes use logical coordinates that are scaled to pixels; text uses
// 1-based cell coordinates inside the canvas.
type Canvas struct {
	cols, rows int
	pixels     []colorful.Color // [y * cols + x], rows*2 pixel lines
	text       []cell           // overlay, ch == 0 means empty

	logicalWidth  float64
	logicalHeight float64
	scaleX        float64
	scaleY        float64

	offsetCol int
	offsetRow int

	profile termenv.Profile
	prev    []cell // last rendered frame, nil forces a full redraw
	cur     []cell
	buf     strings.Builder
}

// NewCanvas creates a canvas of cols x rows cells showing a logical area.
func NewCanvas(cols, rows int, logicalWidth, logicalHeight float64, profile termenv.Profile) *Canvas {
	c := &Canvas{
		logicalWidth:  logicalWidth,
		logicalHeight: logicalHeight,
		profile:       profile,
	}
	c.Resize(cols, rows)
	return c
}

// Resize changes the cell dimensions while keeping the logical size.
func (c *Canvas) Resize(cols, rows int) {
	cols, rows = max(cols, 1), max(rows, 1)
	if cols != c.cols || rows != c.rows {
		c.cols, c.rows = cols, rows
		c.pixels = make([]colorful.Color, cols*rows*2)
		c.text = make([]cell, cols*rows)
		c.cur = make([]cell, cols*rows)
		c.prev = nil
	}
	c.scaleX = float64(cols) / c.logicalWidth
	c.scaleY = float64(rows*2) / c.logicalHeight
}

// SetOffset positions the canvas inside the terminal. Offsets are 0-based.
func (c *Canvas) SetOffset(col, row int) {
	if col != c.offsetCol || row != c.offsetRow {
		c.prev = nil
	}
	c.offsetCol = col
	c.offsetRow = row
}

func (c *Canvas) OffsetCol() int { return c.offsetCol }
func (c *Canvas) OffsetRow() int { return c.offsetRow }
func (c *Canvas) Cols() int      { return c.cols }
func (c *Canvas) Rows() int      { return c.rows }

// ForceRedraw makes the next Render repaint every cell.
func (c *Canvas) ForceRedraw() {
	c.prev = nil
}

// Fill paints every pixel and clears the text overlay.
func (c *Canvas) Fill(col colorful.Color) {
	for i := range c.pixels {
		c.pixels[i] = col
	}
	clear(c.text)
}

func (c *Canvas) blendPixel(x, y int, col colorful.Color, alpha float64) {
	if x < 0 || x >= c.cols || y < 0 || y >= c.rows*2 {
		return
	}
	i := y*c.cols + x
	if alpha >= 1 {
		c.pixels[i] = col
		return
	}
	c.pixels[i] = c.pixels[i].BlendRgb(col, alpha)
}

// FillRect paints a logical rectangle.
func (c *Canvas) FillRect(x, y, w, h float64, col colorful.Color) {
	c.BlendRect(x, y, w, h, col, 1)
}

// BlendRect mixes col into a logical rectangle with the given opacity.
func (c *Canvas) BlendRect(x, y, w, h float64, col colorful.Color, alpha float64) {
	if alpha <= 0 {
		return
	}
	x0 := int(math.Round(x * c.scaleX))
	y0 := int(math.Round(y * c.scaleY))
	x1 := int(math.Round((x + w) * c.scaleX))
	y1 := int(math.Round((y + h) * c.scaleY))
	if x1 == x0 {
		x1++
	}
	if y1 == y0 {
		y1++
	}
	for py := y0; py < y1; py++ {
		for px := x0; px < x1; px++ {
			c.blendPixel(px, py, col, alpha)
		}
	}
}

// FillCircle paints a logical disc. Tiny discs still cover one pixel.
func (c *Canvas) FillCircle(cx, cy, r float64, col colorful.Color) {
	c.BlendCircle(cx, cy, r, col, 1)
}

// BlendCircle mixes col into a logical disc with the given opacity.
func (c *Canvas) BlendCircle(cx, cy, r float64, col colorful.Color, alpha float64) {
	if alpha <= 0 {
		return
	}
	pcx, pcy := cx*c.scaleX, cy*c.scaleY
	rx, ry := r*c.scaleX, r*c.scaleY
	if rx < 0.5 || ry < 0.5 {
		c.blendPixel(int(pcx), int(pcy), col, alpha)
		return
	}
	for py := int(math.Floor(pcy - ry)); py <= int(math.Ceil(pcy+ry)); py++ {
		for px := int(math.Floor(pcx - rx)); px <= int(math.Ceil(pcx+rx)); px++ {
			dx := (float64(px) + 0.5 - pcx) / rx
			dy := (float64(py) + 0.5 - pcy) / ry
			if dx*dx+dy*dy <= 1 {
				c.blendPixel(px, py, col, alpha)
			}
		}
	}
}

// Tint mixes col over the whole canvas.
func (c *Canvas) Tint(col colorful.Color, alpha float64) {
	if alpha <= 0 {
		return
	}
	for i := range c.pixels {
		c.pixels[i] = c.pixels[i].BlendRgb(col, math.Min(alpha, 1))
	}
}

// Text writes s starting at a 1-based cell. Characters outside the canvas are dropped.
func (c *Canvas) Text(col, row int, s string, fg colorful.Color) {
	if row < 1 || row > c.rows {
		return
	}
	fgc := toRGB(fg)
	for _, r := range s {
		if col >= 1 && col <= c.cols {
			c.text[(row-1)*c.cols+col-1] = cell{ch: r, fg: fgc}
		}
		col++
	}
}

// TextCentered writes s centred horizontally on row.
func (c *Canvas) TextCentered(row int, s string, fg colorful.Color) {
	width := len([]rune(s))
	c.Text((c.cols-width)/2+1, row, s, fg)
}

// LogicalToCell converts logical coordinates to a 1-based cell inside the canvas.
func (c *Canvas) LogicalToCell(x, y float64) (col, row int) {
	px := int(math.Floor(x * c.scaleX))
	py := int(math.Floor(y * c.scaleY))
	return px + 1, py/2 + 1
}

// TerminalToLogical converts a 1-based terminal cell (as reported by mouse
// events) to the logical coordinates of its centre. ok is false outside the canvas.
func (c *Canvas) TerminalToLogical(termCol, termRow int) (x, y float64, ok bool) {
	col := termCol - 1 - c.offsetCol
	row := termRow - 1 - c.offsetRow
	if col < 0 || col >= c.cols || row < 0 || row >= c.rows {
		return 0, 0, false
	}
	x = (float64(col) + 0.5) / c.scaleX
	y = (float64(row*2) + 1) / c.scaleY
	return x, y, true
}

func (c *Canvas) compose() {
	for row := 0; row < c.rows; row++ {
		for col := 0; col < c.cols; col++ {
			i := row*c.cols + col
			top := toRGB(c.pixels[row*2*c.cols+col])
			bottom := toRGB(c.pixels[(row*2+1)*c.cols+col])
			if t := c.text[i]; t.ch != 0 {
				c.cur[i] = cell{ch: t.ch, fg: t.fg, bg: top}
				continue
			}
			c.cur[i] = cell{ch: BlockUpperHalf, fg: top, bg: bottom}
		}
	}
}

// Render writes the cells that changed since the previous Render.
func (c *Canvas) Render(w io.Writer) error {
	c.compose()

	c.buf.Reset()
	full := c.prev == nil
	var lastFG, lastBG rgb
	styled := false
	for row := 0; row < c.rows; row++ {
		cursorAt := -1
		for col := 0; col < c.cols; col++ {
			i := row*c.cols + col
			cl := c.cur[i]
			if !full && c.prev[i] == cl {
				continue
			}
			if cursorAt != col {
				c.moveCursor(col+1+c.offsetCol, row+1+c.offsetRow)
			}
			if !styled || cl.fg != lastFG || cl.bg != lastBG {
				c.setColors(cl.fg, cl.bg)
				lastFG, lastBG, styled = cl.fg, cl.bg, true
			}
			c.buf.WriteRune(cl.ch)
			cursorAt = col + 1
		}
	}
	if styled {
		c.buf.WriteString(termenv.CSI + termenv.ResetSeq + "m")
	}

	if c.prev == nil {
		c.prev = make([]cell, len(c.cur))
	}
	copy(c.prev, c.cur)

	_, err := io.WriteString(w, c.buf.String())
	return err
}

func (c *Canvas) moveCursor(col, row int) {
	c.buf.WriteString(termenv.CSI)
	c.buf.WriteString(strconv.Itoa(row))
	c.buf.WriteByte(';')
	c.buf.WriteString(strconv.Itoa(col))
	c.buf.WriteByte('H')
}

func (c *Canvas) setColors(fg, bg rgb) {
	c.buf.WriteString(termenv.CSI + termenv.ResetSeq)
	for i, col := range [2]rgb{fg, bg} {
		if seq := c.profile.Color(col.hex()).Sequence(i == 1); seq != "" {
			c.buf.WriteByte(';')
			c.buf.WriteString(seq)
		}
	}
	c.buf.WriteByte('m')
}
