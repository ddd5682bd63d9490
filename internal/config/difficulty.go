package config

import "math"

// SpeedRamp raises the scroll speed in fixed steps on a tick schedule.
// Speed never decreases and never exceeds the ceiling.
type SpeedRamp struct {
	cfg  DifficultyConfig
	base float64
}

// NewSpeedRamp creates a ramp starting at base speed.
func NewSpeedRamp(base float64, cfg DifficultyConfig) *SpeedRamp {
	return &SpeedRamp{
		cfg:  cfg,
		base: base,
	}
}

// IsEnabled returns whether the ramp will ever change speed.
func (r *SpeedRamp) IsEnabled() bool {
	return r.cfg.Enabled && r.cfg.RampEvery > 0 && r.cfg.Increment > 0
}

// Initial returns the speed a fresh session starts at.
func (r *SpeedRamp) Initial() float64 {
	return math.Min(r.base, r.Ceiling())
}

// Ceiling returns the maximum speed. A base speed above the configured
// maximum becomes the ceiling itself so the ramp is a no-op.
func (r *SpeedRamp) Ceiling() float64 {
	return math.Max(r.cfg.MaxSpeed, r.base)
}

// Next returns the speed after the given tick. It changes only on ticks that
// are multiples of the ramp interval.
func (r *SpeedRamp) Next(speed float64, tick int) float64 {
	if !r.IsEnabled() || tick <= 0 || tick%r.cfg.RampEvery != 0 {
		return speed
	}
	ceiling := r.Ceiling()
	if speed >= ceiling {
		return speed
	}
	return math.Min(speed+r.cfg.Increment, ceiling)
}
