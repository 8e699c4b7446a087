package loop

import (
	"time"

	"github.com/tomz197/catcher/internal/game"
)

// nameEntry is the in-progress "save high score" prompt.
type nameEntry struct {
	score int
	name  []rune
}

func (n *nameEntry) String() string {
	return string(n.name)
}

func (n *nameEntry) typeRune(r rune) {
	if len(n.name) >= game.MaxNameLength || r == ' ' {
		return
	}
	n.name = []rune(game.NormalizeName(string(append(n.name, r))))
}

func (n *nameEntry) backspace() {
	if len(n.name) > 0 {
		n.name = n.name[:len(n.name)-1]
	}
}

// notice is a transient message shown at the bottom of the board.
type notice struct {
	text  string
	until time.Time
	err   bool
}

func (n notice) visible(now time.Time) bool {
	return n.text != "" && now.Before(n.until)
}

// sessionState is everything a terminal session tracks around the game.
type sessionState struct {
	running   bool
	snap      game.Snapshot
	naming    *nameEntry
	notice    notice
	lastInput time.Time
	inactive  bool

	shuttingDown bool
	shutdownAt   time.Time
}
