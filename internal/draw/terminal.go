package draw

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// maxChunkSize is the maximum bytes to write at once, close to a typical MTU
// so frames stream smoothly over SSH.
const maxChunkSize = 1400

// ChunkWriter accumulates a frame of terminal output and writes it in chunks.
type ChunkWriter struct {
	buf  strings.Builder
	bufw *bufio.Writer
}

func NewChunkWriter(w io.Writer) *ChunkWriter {
	return &ChunkWriter{bufw: bufio.NewWriterSize(w, 8192)}
}

// Write implements io.Writer for Canvas.Render.
func (cw *ChunkWriter) Write(p []byte) (n int, err error) {
	return cw.buf.Write(p)
}

func (cw *ChunkWriter) WriteString(s string) (n int, err error) {
	return cw.buf.WriteString(s)
}

// Flush writes the accumulated frame to the underlying writer and resets the buffer.
func (cw *ChunkWriter) Flush() error {
	data := cw.buf.String()
	cw.buf.Reset()
	for len(data) > 0 {
		chunk := data
		if len(chunk) > maxChunkSize {
			chunk = data[:maxChunkSize]
		}
		if _, err := cw.bufw.WriteString(chunk); err != nil {
			return err
		}
		data = data[len(chunk):]
	}
	return cw.bufw.Flush()
}

var _ io.Writer = (*ChunkWriter)(nil)

// TermSizeFunc is a function that returns the terminal dimensions.
type TermSizeFunc func() (width, height int, err error)

// DefaultTermSizeFunc returns terminal size from os.Stdout.
var DefaultTermSizeFunc TermSizeFunc = func() (int, int, error) {
	return term.GetSize(int(os.Stdout.Fd()))
}

const (
	seqClear        = termenv.CSI + "2J" + termenv.CSI + "H"
	seqMouseOn      = termenv.CSI + "?1000h" + termenv.CSI + "?1006h"
	seqMouseOff     = termenv.CSI + "?1006l" + termenv.CSI + "?1000l"
	seqAltScreenOn  = termenv.CSI + termenv.AltScreenSeq
	seqAltScreenOff = termenv.CSI + termenv.ExitAltScreenSeq
)

// ClearScreen clears the terminal and moves cursor to top-left.
func ClearScreen(w io.Writer) {
	io.WriteString(w, seqClear)
}

func HideCursor(w io.Writer) {
	io.WriteString(w, termenv.CSI+termenv.HideCursorSeq)
}

func ShowCursor(w io.Writer) {
	io.WriteString(w, termenv.CSI+termenv.ShowCursorSeq)
}

// EnableMouse turns on button reporting in SGR (1006) format.
func EnableMouse(w io.Writer) {
	io.WriteString(w, seqMouseOn)
}

func DisableMouse(w io.Writer) {
	io.WriteString(w, seqMouseOff)
}

// Setup prepares the terminal for a game and returns a function undoing it.
func Setup(w io.Writer) (restore func()) {
	io.WriteString(w, seqAltScreenOn)
	HideCursor(w)
	EnableMouse(w)
	ClearScreen(w)
	return func() {
		DisableMouse(w)
		ShowCursor(w)
		io.WriteString(w, seqAltScreenOff)
	}
}
