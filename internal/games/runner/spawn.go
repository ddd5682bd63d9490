package runner

import "github.com/vovakirdan/groove-run/internal/core"

// spawnObstacle appends an obstacle at the right edge of the surface.
// The kind is uniform over all kinds; flyers pick a height band uniformly.
func (s *Session) spawnObstacle() {
	cfg := s.cfg.Obstacles
	h := s.runtime.SurfaceH

	kind := Kind(s.rng.Intn(kindCount))
	o := Obstacle{
		X:    s.runtime.SurfaceW,
		Kind: kind,
	}

	if kind.Flying() && len(cfg.FlyingBands) > 0 {
		band := cfg.FlyingBands[s.rng.Intn(len(cfg.FlyingBands))]
		o.Y = h - band
		o.W = cfg.FlyingWidth
		o.H = cfg.FlyingHeight
	} else {
		o.Y = h - cfg.GroundRise
		o.W = cfg.GroundWidth
		o.H = cfg.GroundHeight
	}

	s.world.Obstacles = append(s.world.Obstacles, o)
}

// spawnCollectible appends a token at a random height above the ground.
func (s *Session) spawnCollectible() {
	cfg := s.cfg.Tokens
	s.world.Collectibles = append(s.world.Collectibles, Collectible{
		X: s.runtime.SurfaceW,
		Y: s.runtime.SurfaceH - cfg.BandBase - s.rng.Float64()*cfg.BandRange,
		W: cfg.Size,
		H: cfg.Size,
	})
}

// burst emits count particles at (x, y) with random velocities.
func (s *Session) burst(x, y float64, count int, c core.Color) {
	spread := s.cfg.Particles.Spread
	for i := 0; i < count; i++ {
		s.world.Particles = append(s.world.Particles, Particle{
			X:     x,
			Y:     y,
			VX:    (s.rng.Float64() - 0.5) * spread,
			VY:    (s.rng.Float64() - 0.5) * spread,
			Life:  1,
			Color: c,
		})
	}
}
