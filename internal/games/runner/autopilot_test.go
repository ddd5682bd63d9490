package runner

import "testing"

func TestAutopilot(t *testing.T) {
	tests := []struct {
		name     string
		x        float64
		wantJump bool
	}{
		{"far ahead", 400, false},
		{"within reach", 180, true},
		{"behind the player", 60, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := startedSession(t, quietConfig())
			s.speed = 0
			s.world.Obstacles = append(s.world.Obstacles, Obstacle{X: tt.x, Y: 380, W: 35, H: 50, Scored: true})

			Autopilot(s)
			s.Step()
			if s.Player().Airborne != tt.wantJump {
				t.Errorf("Airborne = %v, want %v", s.Player().Airborne, tt.wantJump)
			}
		})
	}
}
