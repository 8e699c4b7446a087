// Package game implements the color catcher rules: spawning, catching,
// scoring, power-ups, achievements and the screen state machine.
// It has no I/O of its own; frontends feed it input and render snapshots.
package game

import (
	"io"
	"math/rand"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/charmbracelet/log"

	"github.com/tomz197/catcher/internal/physics"
)

// ScoreStore persists the best score between sessions.
type ScoreStore interface {
	Load() (int, error)
	Save(score int) error
}

// Options configures a Game. Zero values pick sensible defaults.
type Options struct {
	Rand          Rand
	Scores        ScoreStore
	Logger        *log.Logger
	Surface       Surface
	CountdownStep time.Duration // Duration of one countdown step (default 1s)
}

// Game owns the session state and advances it one frame at a time.
type Game struct {
	state         State
	rng           Rand
	scores        ScoreStore
	logger        *log.Logger
	countdownStep time.Duration

	events  []Event
	drained []Event
}

// New creates a game sitting on the menu screen.
func New(opts Options) *Game {
	g := &Game{
		rng:           opts.Rand,
		scores:        opts.Scores,
		logger:        opts.Logger,
		countdownStep: opts.CountdownStep,
	}
	if g.rng == nil {
		g.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if g.logger == nil {
		g.logger = log.New(io.Discard)
	}
	if g.countdownStep <= 0 {
		g.countdownStep = time.Second
	}

	surface := opts.Surface
	if surface.Width <= 0 || surface.Height <= 0 {
		surface = Surface{Width: DefaultWidth, Height: DefaultHeight}
	}
	g.state.Surface = surface
	g.state.Basket = Basket{
		Width:  BasketWidth,
		Height: BasketHeight,
		Speed:  BasketSpeed,
	}
	g.state.Balls = make([]Ball, 0, MaxBalls)
	g.state.BestScore = g.loadBestScore()
	g.state.Achievements.Y = AchievementHiddenY

	g.reset()
	g.state.Mode = ModeMenu
	return g
}

func (g *Game) loadBestScore() int {
	if g.scores == nil {
		return 0
	}
	best, err := g.scores.Load()
	if err != nil {
		g.logger.Warn("could not read best score, starting from 0", "err", err)
		return 0
	}
	if best < 0 {
		return 0
	}
	return best
}

// reset prepares a fresh session. Achievements and the best score survive.
func (g *Game) reset() {
	s := &g.state
	s.Countdown.Stop()
	s.Countdown = nil

	s.Score = 0
	s.Catches = 0
	s.Lives = InitialLives
	s.BasketChanges = 0
	s.Paused = false
	s.DoublePointsTimer = 0
	s.ActivePowerUp = PowerNone
	s.LevelUpOpacity = 0
	s.FlashTimer = 0
	s.Achievements.hide()

	s.Basket.Y = s.Surface.Height - BasketBottom
	s.Basket.X = g.clampBasketX(s.Surface.Width/2 - basketOffsetX)

	s.Balls = append(s.Balls[:0], g.newBall(false))
	s.Basket.Color = PickExcluding(g.rng, Palette, ColorNone)
	g.resetBalls()

	clear(s.Particles)
	s.Particles = s.Particles[:0]
	s.Background = newBackground()
}

func (g *Game) clampBasketX(x float64) float64 {
	return physics.Clamp(x, 0, g.state.Surface.Width-g.state.Basket.Width)
}

func (g *Game) startCountdown(now time.Time) {
	g.state.Mode = ModeCountdown
	g.state.Countdown = NewCountdown(now, CountdownSteps, g.countdownStep)
}

// play cancels any pending countdown and starts play in the same update.
func (g *Game) play() {
	g.state.Countdown.Stop()
	g.state.Countdown = nil
	g.state.Mode = ModePlaying
	g.emit(Event{Type: EventCountdownDone})
}

// Mode returns the current screen.
func (g *Game) Mode() Mode {
	return g.state.Mode
}

// Paused reports whether play is paused.
func (g *Game) Paused() bool {
	return g.state.Paused
}

// Score returns the current score.
func (g *Game) Score() int {
	return g.state.Score
}

// BestScore returns the best score seen so far.
func (g *Game) BestScore() int {
	return g.state.BestScore
}

// SetControls sets the held state of the direction controls.
func (g *Game) SetControls(left, right bool) {
	g.state.Left = left
	g.state.Right = right
}

// TogglePause flips the paused flag. It only has an effect while playing.
func (g *Game) TogglePause() bool {
	if g.state.Mode != ModePlaying {
		return false
	}
	g.state.Paused = !g.state.Paused
	return true
}

// PointerDown handles the primary click/tap at surface coordinates (x, y).
// Its meaning depends on the current mode.
func (g *Game) PointerDown(x, y float64, now time.Time) {
	s := &g.state
	switch s.Mode {
	case ModeMenu:
		g.reset()
		g.startCountdown(now)
	case ModeCountdown:
		g.play()
	case ModeGameOver:
		if s.Surface.SaveButton().Contains(x, y) {
			g.emit(Event{Type: EventSaveRequested})
			return
		}
		g.reset()
		g.startCountdown(now)
	}
}

// Frame advances the game by one rendered frame. now drives the countdown;
// gameplay itself advances one tick per call.
func (g *Game) Frame(now time.Time) {
	s := &g.state
	switch s.Mode {
	case ModeCountdown:
		if s.Countdown == nil || s.Countdown.Poll(now) {
			g.play()
		}
	case ModePlaying:
		if !s.Paused {
			g.tick()
		}
	}
}

// Resize changes the logical surface. The basket follows the bottom edge
// and stays inside the new bounds.
func (g *Game) Resize(surface Surface) {
	if surface.Width <= 0 || surface.Height <= 0 {
		return
	}
	s := &g.state
	s.Surface = surface
	s.Basket.Y = surface.Height - BasketBottom
	s.Basket.X = g.clampBasketX(s.Basket.X)
}

// NormalizeName upper-cases a player name and keeps at most MaxNameLength runes.
// Empty names are allowed.
func NormalizeName(name string) string {
	name = strings.ToUpper(strings.TrimSpace(name))
	if utf8.RuneCountInString(name) <= MaxNameLength {
		return name
	}
	return string([]rune(name)[:MaxNameLength])
}
