// Package input turns a raw terminal byte stream into per-frame game input.
package input

import (
	"bufio"
	"strconv"
	"time"
	"unicode/utf8"
)

// keyHoldDuration is how long a direction counts as held after its last byte.
// Terminals send no key-up, so held keys are inferred from auto-repeat.
const keyHoldDuration = 90 * time.Millisecond

// escapeTimeout is how long an unfinished escape sequence waits for the rest
// of its bytes. A bare ESC becomes the Escape key once it runs out.
const escapeTimeout = 50 * time.Millisecond

// Click is a left mouse press at a 1-based terminal cell.
type Click struct {
	Col, Row int
}

// Input is one frame's worth of input. Left and Right are held state;
// every other field only reports what arrived since the previous frame.
type Input struct {
	Left  bool
	Right bool

	Primary   bool // Space
	Enter     bool
	Pause     bool
	Save      bool
	Quit      bool
	Interrupt bool // Ctrl-C or Ctrl-D
	Backspace bool
	Escape    bool

	Typed   []rune
	Clicks  []Click
	Pressed []byte
}

// Any reports whether anything arrived this frame.
func (in Input) Any() bool {
	return len(in.Pressed) > 0
}

// Stream delivers input bytes via a channel and tracks held directions.
type Stream struct {
	ch     chan byte
	closed bool
	left   time.Time
	right  time.Time

	pending   []byte // Unfinished escape sequence from an earlier frame
	pendingAt time.Time
}

func newStream() *Stream {
	return &Stream{ch: make(chan byte, 256)}
}

// StartStream spawns a goroutine that reads from r and sends bytes to the stream.
func StartStream(r *bufio.Reader) *Stream {
	s := newStream()
	go func() {
		for {
			b, err := r.ReadByte()
			if err != nil {
				close(s.ch)
				return
			}
			s.ch <- b
		}
	}()
	return s
}

// Closed reports whether the underlying reader has ended.
func (s *Stream) Closed() bool {
	return s.closed
}

// Reset forgets held directions, e.g. when a new run starts.
func (s *Stream) Reset() {
	s.left = time.Time{}
	s.right = time.Time{}
}

// ReadInput drains all available bytes from the stream without blocking.
func ReadInput(s *Stream) Input {
	var buf []byte
drain:
	for {
		select {
		case b, ok := <-s.ch:
			if !ok {
				s.closed = true
				break drain
			}
			buf = append(buf, b)
		default:
			break drain
		}
	}
	return s.parse(buf, time.Now())
}

func (s *Stream) parse(buf []byte, now time.Time) Input {
	in := Input{Pressed: buf}

	final := false
	if len(s.pending) > 0 {
		if len(buf) == 0 {
			if now.Sub(s.pendingAt) < escapeTimeout {
				s.held(&in, now)
				return in
			}
			final = true
		}
		buf = append(s.pending, buf...)
		s.pending = nil
	}

	for i := 0; i < len(buf); i++ {
		b := buf[i]

		if b == '\x1b' {
			n, ok := s.parseEscape(buf[i:], now, &in)
			if ok {
				i += n - 1
				continue
			}
			// The sequence runs to the end of buf.
			if !final {
				s.pending = append([]byte(nil), buf[i:]...)
				s.pendingAt = now
			} else if i == len(buf)-1 {
				in.Escape = true
			}
			break
		}

		switch b {
		case 'a', 'A', 'j', 'J':
			s.left = now
		case 'd', 'D', 'l', 'L':
			s.right = now
		case 'p', 'P':
			in.Pause = true
		case 's', 'S':
			in.Save = true
		case 'q', 'Q':
			in.Quit = true
		case ' ':
			in.Primary = true
		case '\r', '\n':
			in.Enter = true
		case '\b', '\x7f':
			in.Backspace = true
		case '\x03', '\x04':
			in.Interrupt = true
		}

		if b > ' ' && b < '\x7f' {
			in.Typed = append(in.Typed, rune(b))
		} else if b >= utf8.RuneSelf {
			r, size := utf8.DecodeRune(buf[i:])
			if r != utf8.RuneError {
				in.Typed = append(in.Typed, r)
			}
			i += size - 1
		}
	}

	s.held(&in, now)
	return in
}

func (s *Stream) held(in *Input, now time.Time) {
	in.Left = now.Sub(s.left) < keyHoldDuration
	in.Right = now.Sub(s.right) < keyHoldDuration
}

// parseEscape consumes one escape sequence at the start of buf and returns
// its length. ok is false when buf ends before the sequence does.
// ESC followed by anything but [ or O is the Escape key.
func (s *Stream) parseEscape(buf []byte, now time.Time, in *Input) (n int, ok bool) {
	if len(buf) < 2 {
		return 0, false
	}
	if buf[1] != '[' && buf[1] != 'O' {
		in.Escape = true
		return 1, true
	}
	if len(buf) < 3 {
		return 0, false
	}

	switch buf[2] {
	case 'C':
		s.right = now
		return 3, true
	case 'D':
		s.left = now
		return 3, true
	case 'A', 'B':
		return 3, true
	case '<':
		if buf[1] == '[' {
			return parseMouse(buf, in)
		}
	}

	// Unknown CSI: skip to its final byte.
	for j := 2; j < len(buf); j++ {
		if buf[j] >= 0x40 && buf[j] <= 0x7e {
			return j + 1, true
		}
	}
	return 0, false
}

// parseMouse reads an SGR (1006) mouse report: ESC [ < b ; col ; row (M|m).
func parseMouse(buf []byte, in *Input) (int, bool) {
	var fields [3]int
	field, start := 0, 3
	for j := 3; j < len(buf); j++ {
		c := buf[j]
		if c >= '0' && c <= '9' {
			continue
		}
		if c != ';' && c != 'M' && c != 'm' {
			return j + 1, true
		}
		n, err := strconv.Atoi(string(buf[start:j]))
		if err != nil || field > 2 {
			return j + 1, true
		}
		fields[field] = n
		field++
		start = j + 1
		if c == ';' {
			continue
		}

		button := fields[0]
		// Left button press only: no motion, wheel or release.
		if c == 'M' && field == 3 && button&3 == 0 && button&(32|64) == 0 {
			in.Clicks = append(in.Clicks, Click{Col: fields[1], Row: fields[2]})
		}
		return j + 1, true
	}
	return 0, false
}
