package loop

import (
	"fmt"
	"strconv"
	"time"

	"github.com/tomz197/catcher/internal/draw"
	"github.com/tomz197/catcher/internal/game"
	"github.com/tomz197/catcher/internal/theme"
)

// drawFrame renders the current snapshot and overlays, then flushes the frame.
func (s *Session) drawFrame(now time.Time) error {
	snap := &s.state.snap
	s.game.Snapshot(snap)
	c := s.canvas

	switch snap.Mode {
	case game.ModeMenu:
		s.drawStartScreen(now)
	case game.ModeCountdown:
		c.Fill(theme.Screen)
		c.TextCentered(c.Rows()/2, strconv.Itoa(snap.Countdown), theme.Text)
	case game.ModePlaying:
		drawWorld(c, snap)
		s.drawPlayingHUD()
	case game.ModeGameOver:
		s.drawGameOverScreen(now)
	}

	if s.state.notice.visible(now) {
		s.drawNotice()
	}
	if s.state.inactive {
		s.drawInactivityScreen(now)
	}
	if s.state.shuttingDown {
		s.drawShutdownScreen(now)
	}

	if err := c.Render(s.cw); err != nil {
		return err
	}
	return s.cw.Flush()
}

// rowAt returns the canvas row showing logical height y.
func (s *Session) rowAt(y float64) int {
	_, row := s.canvas.LogicalToCell(0, y)
	return row
}

func (s *Session) drawStartScreen(now time.Time) {
	c := s.canvas
	c.Fill(theme.MenuBG)

	lines := []string{
		theme.Tagline,
		"",
		"Move  . . . . <- -> / A D",
		"Pause . . . . . . . . . P",
		"Quit  . . . . . . . . . Q",
	}
	if s.state.snap.BestScore > 0 {
		lines = append(lines, "", fmt.Sprintf("Best: %d", s.state.snap.BestScore))
	}
	panel := draw.Panel(theme.Title, lines...)
	top := max((c.Rows()-len(panel))/2-2, 1)
	c.DrawPanel(top, panel, theme.Text)

	// Blinking start prompt
	if now.UnixMilli()/600%2 == 0 {
		c.TextCentered(top+len(panel)+1, "Click or press SPACE to start", theme.Text)
	}
}

// drawPlayingHUD draws score, lives, level and best plus the in-play banners.
func (s *Session) drawPlayingHUD() {
	c := s.canvas
	snap := &s.state.snap

	c.Text(2, 1, fmt.Sprintf("Score: %d", snap.Score), theme.Text)
	c.Text(2, 2, fmt.Sprintf("Lives: %d", snap.Lives), theme.Text)
	c.Text(2, 3, fmt.Sprintf("Level: %d", snap.Level), theme.Text)
	c.Text(2, 4, fmt.Sprintf("Best: %d", snap.BestScore), theme.Text)

	if snap.DoublePoints() {
		label := "2X!"
		c.Text(c.Cols()-len(label), 1, label, theme.Double)
	}

	if snap.LevelUpOpacity > 0 {
		fg := snap.Background.BlendRgb(theme.LevelUp, snap.LevelUpOpacity)
		c.TextCentered(s.rowAt(snap.Surface.Height/2-theme.LevelUpOffset), "Level Up!", fg)
	}

	if snap.AchievementActive {
		w := snap.Surface.Width
		c.FillRect(w/2-theme.BannerWidth/2, snap.AchievementY, theme.BannerWidth, theme.BannerHeight, theme.Banner)
		mid := snap.AchievementY + theme.BannerHeight/2
		if mid >= 0 {
			c.TextCentered(s.rowAt(mid), snap.Achievement.String(), theme.Text)
		}
	}

	if snap.Paused {
		c.TextCentered(c.Rows()/2, "Paused", theme.Text)
	}
}

func (s *Session) drawGameOverScreen(now time.Time) {
	c := s.canvas
	snap := &s.state.snap
	c.Fill(theme.Screen)

	mid := c.Rows() / 2
	c.TextCentered(s.rowAt(snap.Surface.Height/2-40), "Game Over", theme.Text)
	if line := theme.Achievements(snap.Unlocked); line != "" {
		c.TextCentered(s.rowAt(snap.Surface.Height/2-40)-2, line, theme.Text)
	}
	c.TextCentered(s.rowAt(snap.Surface.Height/2), fmt.Sprintf("Final Score: %d", snap.Score), theme.Text)
	c.TextCentered(s.rowAt(snap.Surface.Height/2)+1, fmt.Sprintf("Best: %d", snap.BestScore), theme.Text)
	if now.UnixMilli()/600%2 == 0 {
		c.TextCentered(s.rowAt(snap.Surface.Height/2+40), "Click or press SPACE to restart", theme.Text)
	}

	btn := snap.SaveButton
	c.FillRect(btn.X, btn.Y, btn.W, btn.H, theme.SaveButton)
	_, by := btn.Center()
	c.TextCentered(s.rowAt(by), theme.SaveText+" [S]", theme.Text)

	if s.state.naming != nil {
		name := s.state.naming.String()
		for len([]rune(name)) < game.MaxNameLength {
			name += "_"
		}
		panel := draw.Panel("Enter your name", name, "", "ENTER save  ESC cancel")
		c.DrawPanel(max(mid-len(panel)/2, 1), panel, theme.Text)
	}
}

func (s *Session) drawNotice() {
	n := s.state.notice
	fg := theme.Text
	if n.err {
		fg = theme.Flash
	}
	c := s.canvas
	c.TextCentered(c.Rows()-1, n.text, fg)
}

func (s *Session) drawInactivityScreen(now time.Time) {
	left := s.opts.IdleTimeout - now.Sub(s.state.lastInput)
	panel := draw.Panel("INACTIVITY WARNING",
		fmt.Sprintf("Disconnecting in %d seconds", int(left.Seconds())+1),
		"Press any key to continue")
	c := s.canvas
	c.DrawPanel(max((c.Rows()-len(panel))/2, 1), panel, theme.Text)
}

func (s *Session) drawShutdownScreen(now time.Time) {
	left := s.state.shutdownAt.Sub(now)
	panel := draw.Panel("SERVER SHUTTING DOWN",
		"Please reconnect in a moment.",
		fmt.Sprintf("Disconnecting in %d seconds...", int(left.Seconds())+1),
		"Press Q to disconnect now")
	c := s.canvas
	c.DrawPanel(max((c.Rows()-len(panel))/2, 1), panel, theme.Text)
}
