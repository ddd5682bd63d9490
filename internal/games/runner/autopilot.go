package runner

// autopilotReach is how far ahead of the player an obstacle triggers a jump.
const autopilotReach = 120

// Autopilot queues a jump when an obstacle is within reach ahead of the
// player. Headless runs use it in place of a human.
func Autopilot(s *Session) {
	p := s.Player()
	for _, o := range s.Obstacles() {
		if o.X > p.X && o.X-p.X < autopilotReach {
			s.RequestJump()
			return
		}
	}
}
