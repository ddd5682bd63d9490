package config

import "testing"

func TestSpeedRampSchedule(t *testing.T) {
	ramp := NewSpeedRamp(3, DifficultyConfig{
		Enabled:   true,
		RampEvery: 800,
		Increment: 0.3,
		MaxSpeed:  8,
	})

	if got := ramp.Next(3, 799); got != 3 {
		t.Errorf("Next before interval = %f, expected 3", got)
	}
	if got := ramp.Next(3, 800); got != 3.3 {
		t.Errorf("Next on interval = %f, expected 3.3", got)
	}
	if got := ramp.Next(3, 0); got != 3 {
		t.Errorf("Next on tick 0 = %f, expected 3", got)
	}
}

func TestSpeedRampCeiling(t *testing.T) {
	ramp := NewSpeedRamp(3, DifficultyConfig{
		Enabled:   true,
		RampEvery: 1,
		Increment: 0.3,
		MaxSpeed:  8,
	})

	speed := ramp.Initial()
	prev := speed
	for tick := 1; tick <= 100; tick++ {
		speed = ramp.Next(speed, tick)
		if speed < prev {
			t.Fatalf("speed decreased at tick %d: %f -> %f", tick, prev, speed)
		}
		if speed > ramp.Ceiling() {
			t.Fatalf("speed %f exceeded ceiling %f at tick %d", speed, ramp.Ceiling(), tick)
		}
		prev = speed
	}
	if speed != 8 {
		t.Errorf("speed should settle at the ceiling, got %f", speed)
	}
}

func TestSpeedRampDisabled(t *testing.T) {
	ramp := NewSpeedRamp(3, DifficultyConfig{Enabled: false, RampEvery: 800, Increment: 0.3, MaxSpeed: 8})

	if ramp.IsEnabled() {
		t.Error("ramp should report disabled")
	}
	if got := ramp.Next(3, 800); got != 3 {
		t.Errorf("disabled ramp changed speed to %f", got)
	}
}

func TestSpeedRampBaseAboveMax(t *testing.T) {
	ramp := NewSpeedRamp(9, DifficultyConfig{Enabled: true, RampEvery: 10, Increment: 1, MaxSpeed: 8})

	if ramp.Initial() != 9 || ramp.Ceiling() != 9 {
		t.Errorf("Initial/Ceiling = %f/%f, expected 9/9", ramp.Initial(), ramp.Ceiling())
	}
	if got := ramp.Next(9, 10); got != 9 {
		t.Errorf("Next = %f, expected 9", got)
	}
}
