package loop

import (
	"github.com/tomz197/catcher/internal/draw"
	"github.com/tomz197/catcher/internal/game"
	"github.com/tomz197/catcher/internal/theme"
)

// drawWorld paints the playfield: background, basket, balls and particles.
func drawWorld(c *draw.Canvas, snap *game.Snapshot) {
	c.Fill(snap.Background)

	b := snap.Basket
	c.FillRect(b.X, b.Y, b.Width, b.Height, b.Color.RGB())

	for _, ball := range snap.Balls {
		if ball.PowerUp {
			c.BlendCircle(ball.X, ball.Y, ball.Radius+theme.HaloPadding, theme.Halo, theme.HaloAlpha)
		}
		c.FillCircle(ball.X, ball.Y, ball.Radius, ball.Color.RGB())
	}

	for _, p := range snap.Particles {
		c.BlendCircle(p.X, p.Y, theme.ParticleSize, theme.Particle, p.Alpha)
	}

	c.Tint(theme.Flash, snap.Flash*theme.FlashAlpha)

	for _, ball := range snap.Balls {
		if ball.PowerUp {
			col, row := c.LogicalToCell(ball.X, ball.Y)
			c.Text(col, row, theme.Icon(ball.Power), theme.Screen)
		}
	}
}
