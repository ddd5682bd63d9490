package runner

import (
	"github.com/vovakirdan/groove-run/internal/core"
)

// Step advances the session by one tick. It does nothing unless the session
// is playing. Pending commands are applied first, in arrival order.
func (s *Session) Step() {
	commands := s.commands.Drain()
	if s.state != StatePlaying {
		return
	}
	for _, c := range commands {
		s.apply(c)
	}

	s.tick++

	s.updatePlayer()
	s.updateParticles()
	s.updateShake()

	if every := s.cfg.Obstacles.Every; every > 0 && s.tick%every == 0 {
		s.spawnObstacle()
	}
	if every := s.cfg.Tokens.Every; every > 0 && s.tick%every == 0 {
		s.spawnCollectible()
	}

	s.updateObstacles()
	if s.state != StatePlaying {
		// Collision ended the run; nothing else scores this tick.
		return
	}
	s.updateCollectibles()

	s.speed = s.ramp.Next(s.speed, s.tick)
}

// apply executes one queued command.
func (s *Session) apply(c core.Command) {
	switch c {
	case core.CommandJump:
		s.jump()
	}
}

// jump launches the player. Ignored while airborne.
func (s *Session) jump() {
	p := &s.world.Player
	if p.Airborne {
		return
	}
	p.VY = s.cfg.Physics.JumpImpulse
	p.Airborne = true
	s.play(CueJump)
}

// updatePlayer integrates gravity, clamps to the ground and advances the
// sprite animation.
func (s *Session) updatePlayer() {
	p := &s.world.Player

	p.VY += s.cfg.Physics.Gravity
	p.Y += p.VY

	if ground := s.groundY(); p.Y >= ground {
		p.Y = ground
		p.VY = 0
		p.Airborne = false
	}

	p.FrameTimer++
	if every := s.cfg.Player.FrameEvery; every > 0 && p.FrameTimer >= every {
		p.FrameTimer = 0
		if frames := s.cfg.Player.Frames; frames > 0 {
			p.Frame = (p.Frame + 1) % frames
		}
	}
}

// updateParticles moves particles, applies gravity and drops dead ones.
func (s *Session) updateParticles() {
	cfg := s.cfg.Particles
	alive := s.world.Particles[:0]
	for _, p := range s.world.Particles {
		p.X += p.VX
		p.Y += p.VY
		p.VY += cfg.Gravity
		p.Life -= cfg.Decay
		if p.Life > 0 {
			alive = append(alive, p)
		}
	}
	s.world.Particles = alive
}

// updateShake jitters the frame offset and decays the intensity.
func (s *Session) updateShake() {
	sh := &s.world.Shake
	if sh.Intensity <= 0 {
		return
	}

	sh.X = (s.rng.Float64() - 0.5) * sh.Intensity
	sh.Y = (s.rng.Float64() - 0.5) * sh.Intensity
	sh.Intensity *= s.cfg.Shake.Decay

	if sh.Intensity < s.cfg.Shake.Cutoff {
		*sh = Shake{}
	}
}

// updateObstacles scrolls obstacles, resolves collision and scoring, and
// drops obstacles that left the surface.
func (s *Session) updateObstacles() {
	player := s.world.Player
	playerBox := player.Box()

	kept := s.world.Obstacles[:0]
	for _, o := range s.world.Obstacles {
		o.X -= s.speed

		if s.state == StatePlaying {
			if o.Box().Overlaps(playerBox) {
				s.crash()
			} else if !o.Scored && o.Box().Right() < player.X {
				o.Scored = true
				s.score += s.cfg.Scoring.ObstaclePoints
				s.emitScore()
			}
		}

		if o.Box().Right() >= 0 {
			kept = append(kept, o)
		}
	}
	s.world.Obstacles = kept
}

// updateCollectibles scrolls tokens and collects the ones the player touches.
func (s *Session) updateCollectibles() {
	playerBox := s.world.Player.Box()

	kept := s.world.Collectibles[:0]
	for _, c := range s.world.Collectibles {
		c.X -= s.speed

		if !c.Collected && c.Box().Overlaps(playerBox) {
			c.Collected = true
			s.tokens++
			s.score += s.cfg.Scoring.TokenPoints
			cx, cy := c.Box().Center()
			s.burst(cx, cy, s.cfg.Particles.TokenCount, core.ColorGold)
			s.emitScore()
			continue
		}

		if c.Box().Right() >= 0 {
			kept = append(kept, c)
		}
	}
	s.world.Collectibles = kept
}

// crash shakes the screen, bursts particles at the player and ends the run.
func (s *Session) crash() {
	s.world.Shake.Intensity = s.cfg.Shake.HitIntensity
	cx, cy := s.world.Player.Box().Center()
	s.burst(cx, cy, s.cfg.Particles.HitCount, core.ColorRed)
	//nolint:errcheck // Always playing here
	s.RecordGameOver()
}
