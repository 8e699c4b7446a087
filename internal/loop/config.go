package loop

import "time"

// Frame pacing
const (
	targetFPS       = 60
	targetFrameTime = time.Second / targetFPS
)

// Largest render area in terminal cells; bigger terminals get a centred board.
const (
	maxTermWidth  = 90
	maxTermHeight = 60
)

// Shutdown
const (
	shutdownDisplay = 10 * time.Second // How long the shutdown notice stays before disconnecting
)

// Notices and idle handling
const (
	noticeDuration = 4 * time.Second
	idleWarnShare  = 0.75 // Warn after this share of the idle timeout
)
