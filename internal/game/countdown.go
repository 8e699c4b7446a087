package game

import "time"

// Countdown is a cancellable real-time countdown polled from the frame loop.
// Once stopped it never fires, so a skipped countdown cannot change the mode later.
type Countdown struct {
	remaining int
	step      time.Duration
	next      time.Time
	stopped   bool
}

// NewCountdown starts a countdown of steps, each lasting step, at now.
func NewCountdown(now time.Time, steps int, step time.Duration) *Countdown {
	return &Countdown{
		remaining: steps,
		step:      step,
		next:      now.Add(step),
	}
}

// Remaining returns the number of steps left.
func (c *Countdown) Remaining() int {
	if c == nil {
		return 0
	}
	return c.remaining
}

// Stop cancels the countdown.
func (c *Countdown) Stop() {
	if c != nil {
		c.stopped = true
	}
}

// Stopped reports whether the countdown was cancelled or has finished.
func (c *Countdown) Stopped() bool {
	return c == nil || c.stopped
}

// Poll consumes every step that elapsed by now and reports whether the
// countdown just finished. A stopped countdown always reports false.
func (c *Countdown) Poll(now time.Time) bool {
	if c.Stopped() {
		return false
	}
	for c.remaining > 0 && !now.Before(c.next) {
		c.remaining--
		c.next = c.next.Add(c.step)
	}
	if c.remaining <= 0 {
		c.stopped = true
		return true
	}
	return false
}
