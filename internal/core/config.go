package core

// RuntimeConfig contains configuration passed to the runner at initialization.
// The host derives the surface size from its window or terminal; the
// simulation works in surface pixels.
type RuntimeConfig struct {
	SurfaceW float64 // Drawing surface width in pixels
	SurfaceH float64 // Drawing surface height in pixels
	TickRate int     // Host frame callbacks per second (default 60)
	Seed     int64   // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		SurfaceW: 800,
		SurfaceH: 480,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}
