package game

// PowerType identifies the effect of a power-up ball.
type PowerType int

const (
	PowerNone   PowerType = iota
	PowerSlow             // Slows every ball down
	PowerLife             // Grants an extra life
	PowerDouble           // Doubles points for a while
)

var powerTypes = []PowerType{PowerSlow, PowerLife, PowerDouble}

func (p PowerType) String() string {
	switch p {
	case PowerSlow:
		return "slow"
	case PowerLife:
		return "life"
	case PowerDouble:
		return "double"
	default:
		return "none"
	}
}

// Color returns the fixed color of a power-up ball of this type.
func (p PowerType) Color() Color {
	switch p {
	case PowerSlow:
		return LightBlue
	case PowerLife:
		return LimeGreen
	default:
		return Gold
	}
}

// Basket is the player-controlled catcher.
type Basket struct {
	X, Y          float64
	Width, Height float64
	Speed         float64
	Color         Color
}

// Ball is a falling entity. Balls are recycled in place instead of removed.
type Ball struct {
	X, Y    float64
	Radius  float64
	Speed   float64
	Color   Color
	PowerUp bool
	Power   PowerType // PowerNone unless PowerUp is set
}

// newBall creates a ball at the top of the surface.
// Normal balls never share the basket color when created.
func (g *Game) newBall(powerUp bool) Ball {
	b := Ball{
		X:      g.spawnX(),
		Y:      0,
		Radius: BallRadius,
		Speed:  BallBaseSpeed + g.rng.Float64(),
	}
	if powerUp {
		b.makePowerUp(PickPowerType(g.rng))
	} else {
		b.Color = PickExcluding(g.rng, Palette, g.state.Basket.Color)
	}
	return b
}

func (b *Ball) makePowerUp(p PowerType) {
	b.PowerUp = true
	b.Power = p
	b.Color = p.Color()
}

func (b *Ball) makeNormal(c Color) {
	b.PowerUp = false
	b.Power = PowerNone
	b.Color = c
}

func (g *Game) spawnX() float64 {
	span := g.state.Surface.Width - ballSpawnInset
	if span < 0 {
		span = 0
	}
	return g.rng.Float64() * span
}

// resetBall moves ball i back to the top and picks its next look.
func (g *Game) resetBall(i int) {
	b := &g.state.Balls[i]
	b.X = g.spawnX()
	b.Y = 0
	g.recolor(b)
	g.ensureCatchable(i)
}

// recolor picks a recycled ball's color and power-up status. A lone ball
// usually takes the basket color; in a larger pool some balls become power-ups.
func (g *Game) recolor(b *Ball) {
	basket := g.state.Basket.Color
	switch {
	case len(g.state.Balls) == 1:
		if g.rng.Float64() < singleBallMatchChance {
			b.makeNormal(basket)
		} else {
			b.makeNormal(PickExcluding(g.rng, Palette, basket))
		}
	case g.rng.Float64() < powerUpResetChance:
		b.makePowerUp(PickPowerType(g.rng))
	default:
		b.makeNormal(PickExcluding(g.rng, Palette, basket))
	}
}

// ensureCatchable recolors ball i to the basket color when no normal ball
// in the pool matches the basket.
func (g *Game) ensureCatchable(i int) {
	if g.state.hasCatchable() {
		return
	}
	g.state.Balls[i].makeNormal(g.state.Basket.Color)
}

// hasCatchable reports whether a normal ball matches the basket color.
func (s *State) hasCatchable() bool {
	for _, b := range s.Balls {
		if !b.PowerUp && b.Color == s.Basket.Color {
			return true
		}
	}
	return false
}

// resetBalls recycles the whole pool.
func (g *Game) resetBalls() {
	for i := range g.state.Balls {
		g.resetBall(i)
	}
}
