// Package gfx is the desktop window frontend, built on ebiten.
package gfx

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/tomz197/catcher/internal/audio"
	"github.com/tomz197/catcher/internal/game"
	"github.com/tomz197/catcher/internal/store"
)

const noticeDuration = 4 * time.Second

// Options configures the desktop game.
type Options struct {
	Scores   game.ScoreStore
	Exporter store.Exporter
	Cues     audio.Cues
	Logger   *log.Logger
	Rand     game.Rand
}

type nameEntry struct {
	score int
	name  []rune
}

// Game implements ebiten.Game around the catcher core.
type Game struct {
	core     *game.Game
	snap     game.Snapshot
	cues     audio.Cues
	exporter store.Exporter
	logger   *log.Logger

	naming      *nameEntry
	notice      string
	noticeErr   bool
	noticeUntil time.Time

	layout game.Surface // Latest size from Layout, applied on Update
	quit   bool
}

func New(opts Options) *Game {
	if opts.Cues == nil {
		opts.Cues = audio.Nop{}
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	g := &Game{
		cues:     opts.Cues,
		exporter: opts.Exporter,
		logger:   opts.Logger,
		core: game.New(game.Options{
			Rand:   opts.Rand,
			Scores: opts.Scores,
			Logger: opts.Logger,
		}),
	}
	g.core.Snapshot(&g.snap)
	return g
}

// Update polls input and advances the game by one tick.
func (g *Game) Update() error {
	g.applyLayout()
	g.apply(g.poll(), time.Now())
	if g.quit {
		return ebiten.Termination
	}
	return nil
}

func (g *Game) applyLayout() {
	if g.layout.Width > 0 && g.layout != g.snap.Surface {
		g.core.Resize(g.layout)
		g.core.Snapshot(&g.snap)
	}
}

// Layout keeps the 3:4 board and lets ebiten letterbox the rest.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := game.FitSurface(float64(outsideWidth), float64(outsideHeight))
	if s.Width < 1 || s.Height < 1 {
		s = game.Surface{Width: game.DefaultWidth, Height: game.DefaultHeight}
	}
	g.layout = game.Surface{Width: float64(int(s.Width)), Height: float64(int(s.Height))}
	return int(g.layout.Width), int(g.layout.Height)
}

func anyKeyJustPressed(keys ...ebiten.Key) bool {
	for _, k := range keys {
		if inpututil.IsKeyJustPressed(k) {
			return true
		}
	}
	return false
}

func anyKeyPressed(keys ...ebiten.Key) bool {
	for _, k := range keys {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	return false
}

// poll reads ebiten's input state into Controls.
func (g *Game) poll() Controls {
	c := Controls{
		Enter:     anyKeyJustPressed(ebiten.KeyEnter, ebiten.KeyNumpadEnter),
		Backspace: inpututil.IsKeyJustPressed(ebiten.KeyBackspace),
		Escape:    inpututil.IsKeyJustPressed(ebiten.KeyEscape),
	}
	if g.naming != nil {
		c.Chars = ebiten.AppendInputChars(nil)
		return c
	}

	c.Left = anyKeyPressed(ebiten.KeyArrowLeft, ebiten.KeyA)
	c.Right = anyKeyPressed(ebiten.KeyArrowRight, ebiten.KeyD)
	c.Pause = inpututil.IsKeyJustPressed(ebiten.KeyP)
	c.Primary = inpututil.IsKeyJustPressed(ebiten.KeySpace)
	c.Save = inpututil.IsKeyJustPressed(ebiten.KeyS)
	c.Quit = anyKeyJustPressed(ebiten.KeyQ, ebiten.KeyEscape)

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		c.Taps = append(c.Taps, Point{float64(x), float64(y)})
	}
	for _, id := range inpututil.AppendJustPressedTouchIDs(nil) {
		x, y := ebiten.TouchPosition(id)
		c.Taps = append(c.Taps, Point{float64(x), float64(y)})
	}
	for _, id := range ebiten.AppendTouchIDs(nil) {
		x, y := ebiten.TouchPosition(id)
		c.Touches = append(c.Touches, Point{float64(x), float64(y)})
	}
	return c
}
