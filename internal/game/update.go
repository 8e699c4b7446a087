package game

import "github.com/tomz197/catcher/internal/physics"

// tick advances gameplay by one step.
func (g *Game) tick() {
	s := &g.state

	g.moveBasket()

	for i := range s.Balls {
		b := &s.Balls[i]
		b.Y += b.Speed

		if physics.CircleReachesRect(b.X, b.Y, b.Radius, s.Basket.X, s.Basket.Y, s.Basket.Width) {
			g.resolveCatch(i)
			if s.Mode != ModePlaying {
				return // Game over; the rest of the tick is dropped
			}
			continue
		}

		if b.Y > s.Surface.Height {
			g.resetBall(i)
		}
	}

	if s.DoublePointsTimer > 0 {
		s.DoublePointsTimer--
	}
	if s.DoublePointsTimer == 0 && s.ActivePowerUp == PowerDouble {
		s.ActivePowerUp = PowerNone
	}

	s.updateParticles()
	s.Background.advance()
	s.Achievements.animate()

	s.LevelUpOpacity = physics.Clamp01(s.LevelUpOpacity - LevelUpFade)
	if s.FlashTimer > 0 {
		s.FlashTimer--
	}
}

func (g *Game) moveBasket() {
	s := &g.state
	x := s.Basket.X
	if s.Left {
		x -= s.Basket.Speed
	}
	if s.Right {
		x += s.Basket.Speed
	}
	s.Basket.X = g.clampBasketX(x)
}

// resolveCatch handles ball i landing in the basket.
func (g *Game) resolveCatch(i int) {
	s := &g.state
	b := s.Balls[i]

	switch {
	case b.PowerUp:
		g.applyPowerUp(b.Power)
		g.resetBall(i)
		g.emit(Event{Type: EventPowerUp, Power: b.Power})

	case b.Color == s.Basket.Color:
		g.catchBall(i)

	default:
		g.missBall(i)
	}
}

func (g *Game) catchBall(i int) {
	s := &g.state
	caught := s.Balls[i]

	if s.DoublePointsTimer > 0 {
		s.Score += 2
	} else {
		s.Score++
	}
	s.Catches++
	g.burst(caught)
	g.resetBall(i)
	g.emit(Event{Type: EventCatch})

	if kind, ok := s.Achievements.check(s.Catches, s.Score); ok {
		g.emit(Event{Type: EventAchievement, Achievement: kind})
	}

	if s.Catches%CatchesPerRotation == 0 {
		g.rotateBasket(i)
	}

	if s.Score%SpeedRampEvery == 0 {
		for j := range s.Balls {
			s.Balls[j].Speed += SpeedRampStep
		}
	}
}

// rotateBasket gives the basket a new color and, every few rotations, grows
// the ball pool. reset is the index of the ball that was just recycled.
func (g *Game) rotateBasket(reset int) {
	s := &g.state
	s.Basket.Color = PickExcluding(g.rng, Palette, s.Basket.Color)
	s.BasketChanges++
	s.Background.rotate(g.rng)

	// The recycled ball is at the top, so recoloring it keeps the level completable.
	g.ensureCatchable(reset)

	if s.BasketChanges%RotationsPerLevelUp == 0 && len(s.Balls) < MaxBalls {
		powerUp := len(s.Balls) > 1 && g.rng.Float64() < powerUpSpawnChance
		s.Balls = append(s.Balls, g.newBall(powerUp))
		s.LevelUpOpacity = 1
		g.emit(Event{Type: EventLevelUp})
	}
}

func (g *Game) missBall(i int) {
	s := &g.state
	g.emit(Event{Type: EventMiss})
	if s.Lives > 0 {
		s.Lives--
	}
	s.FlashTimer = FlashTicks

	if s.Lives == 0 {
		g.gameOver()
	}
	g.resetBall(i)
}

func (g *Game) gameOver() {
	s := &g.state
	if s.Score > s.BestScore {
		s.BestScore = s.Score
		g.saveBestScore()
		g.emit(Event{Type: EventNewBest})
	}
	s.Mode = ModeGameOver
	s.Paused = false
	g.emit(Event{Type: EventGameOver})
}

func (g *Game) saveBestScore() {
	if g.scores == nil {
		return
	}
	if err := g.scores.Save(g.state.BestScore); err != nil {
		g.logger.Warn("could not store best score", "score", g.state.BestScore, "err", err)
	}
}
