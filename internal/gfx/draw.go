package gfx

import (
	"fmt"
	"image/color"
	"strconv"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	colorful "github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/font/basicfont"

	"github.com/tomz197/catcher/internal/game"
	"github.com/tomz197/catcher/internal/physics"
	"github.com/tomz197/catcher/internal/theme"
)

var face = basicfont.Face7x13

const lineHeight = 16

func nrgba(c colorful.Color, alpha float64) color.NRGBA {
	r, g, b := c.Clamped().RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: uint8(physics.Clamp01(alpha) * 255)}
}

func fillRect(dst *ebiten.Image, x, y, w, h float64, c colorful.Color, alpha float64) {
	vector.DrawFilledRect(dst, float32(x), float32(y), float32(w), float32(h), nrgba(c, alpha), false)
}

func fillCircle(dst *ebiten.Image, x, y, r float64, c colorful.Color, alpha float64) {
	vector.DrawFilledCircle(dst, float32(x), float32(y), float32(r), nrgba(c, alpha), true)
}

// drawText draws s with its top left corner at x, y.
func drawText(dst *ebiten.Image, s string, x, y float64, c colorful.Color) {
	b := text.BoundString(face, s)
	text.Draw(dst, s, face, int(x), int(y)-b.Min.Y, nrgba(c, 1))
}

// drawCentered draws s centred on the point x, y.
func drawCentered(dst *ebiten.Image, s string, x, y float64, c colorful.Color) {
	b := text.BoundString(face, s)
	w, h := b.Dx(), b.Dy()
	text.Draw(dst, s, face, int(x)-w/2, int(y)-h/2-b.Min.Y, nrgba(c, 1))
}

// Draw renders the latest snapshot.
func (g *Game) Draw(screen *ebiten.Image) {
	g.drawAt(screen, time.Now())
}

func (g *Game) drawAt(screen *ebiten.Image, now time.Time) {
	snap := &g.snap
	switch snap.Mode {
	case game.ModeMenu:
		g.drawStartScreen(screen, now)
	case game.ModeCountdown:
		screen.Fill(theme.Screen)
		drawCentered(screen, strconv.Itoa(snap.Countdown), snap.Surface.Width/2, snap.Surface.Height/2, theme.Text)
	case game.ModePlaying:
		drawWorld(screen, snap)
		g.drawHUD(screen)
	case game.ModeGameOver:
		g.drawGameOver(screen, now)
	}

	if g.notice != "" && now.Before(g.noticeUntil) {
		fg := theme.Text
		if g.noticeErr {
			fg = theme.Flash
		}
		drawCentered(screen, g.notice, snap.Surface.Width/2, snap.Surface.Height-lineHeight, fg)
	}
}

func drawWorld(dst *ebiten.Image, snap *game.Snapshot) {
	dst.Fill(snap.Background)

	b := snap.Basket
	fillRect(dst, b.X, b.Y, b.Width, b.Height, b.Color.RGB(), 1)

	for _, ball := range snap.Balls {
		if ball.PowerUp {
			fillCircle(dst, ball.X, ball.Y, ball.Radius+theme.HaloPadding, theme.Halo, theme.HaloAlpha)
		}
		fillCircle(dst, ball.X, ball.Y, ball.Radius, ball.Color.RGB(), 1)
		if ball.PowerUp {
			drawCentered(dst, theme.Icon(ball.Power), ball.X, ball.Y, theme.Screen)
		}
	}

	for _, p := range snap.Particles {
		fillCircle(dst, p.X, p.Y, theme.ParticleSize, theme.Particle, p.Alpha)
	}

	if snap.Flash > 0 {
		fillRect(dst, 0, 0, snap.Surface.Width, snap.Surface.Height, theme.Flash, snap.Flash*theme.FlashAlpha)
	}

	left, right := directionButtons(snap.Surface)
	for _, r := range []game.Rect{left, right} {
		fillRect(dst, r.X, r.Y, r.W, r.H, theme.Control, theme.ControlAlpha)
	}
	lx, ly := left.Center()
	rx, ry := right.Center()
	drawCentered(dst, "<", lx, ly, theme.Screen)
	drawCentered(dst, ">", rx, ry, theme.Screen)
}

func (g *Game) drawHUD(dst *ebiten.Image) {
	snap := &g.snap
	w, h := snap.Surface.Width, snap.Surface.Height

	drawText(dst, fmt.Sprintf("Score: %d", snap.Score), 10, 10, theme.Text)
	drawText(dst, fmt.Sprintf("Lives: %d", snap.Lives), 10, 10+lineHeight, theme.Text)
	drawText(dst, fmt.Sprintf("Level: %d", snap.Level), 10, 10+2*lineHeight, theme.Text)
	drawText(dst, fmt.Sprintf("Best: %d", snap.BestScore), 10, 10+3*lineHeight, theme.Text)

	if snap.DoublePoints() {
		label := "2X!"
		drawText(dst, label, w-10-float64(text.BoundString(face, label).Dx()), 10, theme.Double)
	}

	if snap.LevelUpOpacity > 0 {
		fg := snap.Background.BlendRgb(theme.LevelUp, snap.LevelUpOpacity)
		drawCentered(dst, "Level Up!", w/2, h/2-theme.LevelUpOffset, fg)
	}

	if snap.AchievementActive {
		fillRect(dst, w/2-theme.BannerWidth/2, snap.AchievementY, theme.BannerWidth, theme.BannerHeight, theme.Banner, 1)
		drawCentered(dst, snap.Achievement.String(), w/2, snap.AchievementY+theme.BannerHeight/2, theme.Text)
	}

	if snap.Paused {
		fillRect(dst, 0, 0, w, h, theme.Text, 0.3)
		drawCentered(dst, "Paused", w/2, h/2, theme.Screen)
	}
}

func (g *Game) drawStartScreen(dst *ebiten.Image, now time.Time) {
	snap := &g.snap
	dst.Fill(theme.MenuBG)
	cx, cy := snap.Surface.Width/2, snap.Surface.Height/2

	lines := []string{
		theme.Title,
		"",
		theme.Tagline,
		"",
		"Move: arrows, A D or the buttons",
		"Pause: P    Quit: ESC",
	}
	if snap.BestScore > 0 {
		lines = append(lines, "", fmt.Sprintf("Best: %d", snap.BestScore))
	}
	top := cy - float64(len(lines)*lineHeight)/2 - 40
	for i, l := range lines {
		drawCentered(dst, l, cx, top+float64(i*lineHeight), theme.Text)
	}
	if now.UnixMilli()/600%2 == 0 {
		drawCentered(dst, "Click or press SPACE to start", cx, top+float64((len(lines)+1)*lineHeight), theme.Text)
	}
}

func (g *Game) drawGameOver(dst *ebiten.Image, now time.Time) {
	snap := &g.snap
	dst.Fill(theme.Screen)
	cx, cy := snap.Surface.Width/2, snap.Surface.Height/2

	drawCentered(dst, "Game Over", cx, cy-40, theme.Text)
	if line := theme.Achievements(snap.Unlocked); line != "" {
		drawCentered(dst, line, cx, cy-80, theme.Text)
	}
	drawCentered(dst, fmt.Sprintf("Final Score: %d", snap.Score), cx, cy, theme.Text)
	drawCentered(dst, fmt.Sprintf("Best: %d", snap.BestScore), cx, cy+lineHeight, theme.Text)
	if now.UnixMilli()/600%2 == 0 {
		drawCentered(dst, "Click or press SPACE to restart", cx, cy+40, theme.Text)
	}

	btn := snap.SaveButton
	fillRect(dst, btn.X, btn.Y, btn.W, btn.H, theme.SaveButton, 1)
	bx, by := btn.Center()
	drawCentered(dst, theme.SaveText, bx, by, theme.Text)

	if g.naming != nil {
		name := string(g.naming.name)
		for len([]rune(name)) < game.MaxNameLength {
			name += "_"
		}
		fillRect(dst, cx-120, cy-200, 240, 90, theme.MenuBG, 1)
		drawCentered(dst, "Enter your name", cx, cy-180, theme.Text)
		drawCentered(dst, name, cx, cy-155, theme.Text)
		drawCentered(dst, "ENTER save  ESC cancel", cx, cy-130, theme.Text)
	}
}
