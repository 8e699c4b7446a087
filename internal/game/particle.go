package game

// Particle is a short-lived visual dot emitted when a ball is caught.
type Particle struct {
	X, Y   float64
	VX, VY float64
	Alpha  float64
}

// burst emits BurstSize particles at the ball's position.
func (g *Game) burst(b Ball) {
	for i := 0; i < BurstSize; i++ {
		g.state.Particles = append(g.state.Particles, Particle{
			X:     b.X,
			Y:     b.Y,
			VX:    (g.rng.Float64() - 0.5) * ParticleSpread,
			VY:    (g.rng.Float64() - 0.5) * ParticleSpread,
			Alpha: 1,
		})
	}
}

// updateParticles moves and fades particles, dropping the faded ones.
func (s *State) updateParticles() {
	kept := s.Particles[:0] // reuse backing array
	for _, p := range s.Particles {
		p.X += p.VX
		p.Y += p.VY
		p.Alpha -= ParticleFade
		if p.Alpha > 0 {
			kept = append(kept, p)
		}
	}
	clear(s.Particles[len(kept):])
	s.Particles = kept
}
