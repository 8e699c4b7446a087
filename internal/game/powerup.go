package game

// applyPowerUp applies the effect of a collected power-up.
func (g *Game) applyPowerUp(p PowerType) {
	s := &g.state
	switch p {
	case PowerSlow:
		for j := range s.Balls {
			s.Balls[j].Speed -= SlowPowerStep
			if s.Balls[j].Speed < MinBallSpeed {
				s.Balls[j].Speed = MinBallSpeed
			}
		}
	case PowerLife:
		s.Lives++
	case PowerDouble:
		s.DoublePointsTimer = DoublePointsTicks
		s.ActivePowerUp = PowerDouble
	}
}
