package gfx

import (
	"time"

	"github.com/tomz197/catcher/internal/game"
	"github.com/tomz197/catcher/internal/store"
)

// Point is a position in surface coordinates.
type Point struct {
	X, Y float64
}

// Controls is one frame of desktop input, already mapped to the surface.
type Controls struct {
	Left, Right bool // Held keys

	Pause, Primary, Save, Quit bool
	Enter, Backspace, Escape   bool

	Chars   []rune  // Text typed this frame
	Taps    []Point // New mouse or touch presses
	Touches []Point // Touches currently held
}

const (
	buttonSize   = 70
	buttonMargin = 10
)

// directionButtons returns the on-screen left and right touch buttons.
func directionButtons(s game.Surface) (left, right game.Rect) {
	y := s.Height - buttonSize - buttonMargin
	left = game.Rect{X: buttonMargin, Y: y, W: buttonSize, H: buttonSize}
	right = game.Rect{X: s.Width - buttonSize - buttonMargin, Y: y, W: buttonSize, H: buttonSize}
	return left, right
}

func (g *Game) apply(c Controls, now time.Time) {
	if g.naming != nil {
		g.applyNaming(c, now)
	} else {
		g.applyPlay(c, now)
	}
	g.core.Frame(now)
	g.drainEvents()
}

func (g *Game) applyPlay(c Controls, now time.Time) {
	if c.Quit {
		g.quit = true
		return
	}

	playing := g.core.Mode() == game.ModePlaying
	left, right := c.Left, c.Right
	if playing {
		lb, rb := directionButtons(g.snap.Surface)
		for _, t := range c.Touches {
			left = left || lb.Contains(t.X, t.Y)
			right = right || rb.Contains(t.X, t.Y)
		}
	}
	g.core.SetControls(left, right)

	if c.Pause {
		g.core.TogglePause()
	}
	if c.Save && g.core.Mode() == game.ModeGameOver {
		x, y := g.snap.SaveButton.Center()
		g.core.PointerDown(x, y, now)
	}
	if c.Primary || c.Enter {
		g.core.PointerDown(-1, -1, now)
	}
	lb, rb := directionButtons(g.snap.Surface)
	for _, t := range c.Taps {
		if playing && (lb.Contains(t.X, t.Y) || rb.Contains(t.X, t.Y)) {
			continue
		}
		g.core.PointerDown(t.X, t.Y, now)
	}
}

func (g *Game) applyNaming(c Controls, now time.Time) {
	g.core.SetControls(false, false)
	for _, r := range c.Chars {
		if len(g.naming.name) < game.MaxNameLength && r != ' ' {
			g.naming.name = []rune(game.NormalizeName(string(append(g.naming.name, r))))
		}
	}
	if c.Backspace && len(g.naming.name) > 0 {
		g.naming.name = g.naming.name[:len(g.naming.name)-1]
	}

	switch {
	case c.Escape:
		g.naming = nil
	case c.Enter:
		g.export(string(g.naming.name), g.naming.score, now)
		g.naming = nil
	}
}

func (g *Game) export(name string, score int, now time.Time) {
	name = game.NormalizeName(name)
	g.noticeUntil = now.Add(noticeDuration)
	if g.exporter == nil {
		g.notice, g.noticeErr = "Saving is not available here", true
		return
	}
	path, err := g.exporter.Export(name, score)
	if err != nil {
		g.logger.Error("export high score", "err", err)
		g.notice, g.noticeErr = "Could not save your score", true
		return
	}
	g.logger.Info("exported high score", "name", name, "score", score, "path", path)
	g.notice, g.noticeErr = "Saved "+store.ExportFileName+" to "+path, false
}

func (g *Game) drainEvents() {
	for _, e := range g.core.Events() {
		g.cues.Play(e)
		switch e.Type {
		case game.EventSaveRequested:
			g.naming = &nameEntry{score: e.Score}
		case game.EventGameOver:
			g.logger.Info("game over", "score", e.Score)
		case game.EventNewBest:
			g.logger.Info("new best score", "score", e.Score)
		}
	}
	g.core.Snapshot(&g.snap)
}
