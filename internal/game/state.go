package game

import (
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Mode is the current screen of the game.
type Mode int

const (
	ModeMenu      Mode = iota // Title screen
	ModeCountdown             // 3-2-1 before play
	ModePlaying               // Active gameplay (may be paused)
	ModeGameOver              // Out of lives, show restart and save prompt
)

func (m Mode) String() string {
	switch m {
	case ModeMenu:
		return "menu"
	case ModeCountdown:
		return "countdown"
	case ModePlaying:
		return "playing"
	case ModeGameOver:
		return "gameover"
	default:
		return "unknown"
	}
}

// State holds all mutable session state. It is owned by Game and only
// mutated from Game methods on the frame loop.
type State struct {
	Mode      Mode
	Paused    bool       // Only meaningful while playing
	Countdown *Countdown // Non-nil only while counting down

	Surface   Surface
	Basket    Basket
	Balls     []Ball // Arena of up to MaxBalls slots; never shrinks during a session
	Particles []Particle

	Score         int
	Catches       int
	Lives         int
	BestScore     int
	BasketChanges int

	DoublePointsTimer int
	ActivePowerUp     PowerType

	Background     Background
	Achievements   Achievements
	LevelUpOpacity float64
	FlashTimer     int

	Left, Right bool // Held direction controls
}

// Snapshot is a read-only copy of the state handed to renderers.
type Snapshot struct {
	Mode       Mode
	Paused     bool
	Countdown  int
	Surface    Surface
	SaveButton Rect

	Basket    Basket
	Balls     []Ball
	Particles []Particle

	Score     int
	Catches   int
	Lives     int
	BestScore int
	Level     int // Ball pool size

	DoublePointsTimer int
	ActivePowerUp     PowerType

	Background     colorful.Color
	LevelUpOpacity float64
	Flash          float64 // 1 right after a miss, fades to 0

	Achievement       Achievement
	AchievementActive bool
	AchievementY      float64
	Unlocked          []Achievement
}

// DoublePoints reports whether catches currently score double.
func (s *Snapshot) DoublePoints() bool {
	return s.DoublePointsTimer > 0
}

// Snapshot copies the current state into dst, reusing its slices.
func (g *Game) Snapshot(dst *Snapshot) {
	s := &g.state
	dst.Mode = s.Mode
	dst.Paused = s.Paused
	dst.Countdown = s.Countdown.Remaining()
	dst.Surface = s.Surface
	dst.SaveButton = s.Surface.SaveButton()
	dst.Basket = s.Basket
	dst.Balls = append(dst.Balls[:0], s.Balls...)
	dst.Particles = append(dst.Particles[:0], s.Particles...)
	dst.Score = s.Score
	dst.Catches = s.Catches
	dst.Lives = s.Lives
	dst.BestScore = s.BestScore
	dst.Level = len(s.Balls)
	dst.DoublePointsTimer = s.DoublePointsTimer
	dst.ActivePowerUp = s.ActivePowerUp
	dst.Background = s.Background.Color()
	dst.LevelUpOpacity = s.LevelUpOpacity
	dst.Flash = float64(s.FlashTimer) / FlashTicks
	dst.Achievement = s.Achievements.Banner
	dst.AchievementActive = s.Achievements.Active
	dst.AchievementY = s.Achievements.Y
	dst.Unlocked = append(dst.Unlocked[:0], s.Achievements.List()...)
}
