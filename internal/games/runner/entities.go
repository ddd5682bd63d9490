package runner

import (
	"github.com/vovakirdan/groove-run/internal/assets"
	"github.com/vovakirdan/groove-run/internal/core"
)

// Kind identifies an obstacle type.
type Kind int

const (
	KindFUD  Kind = iota // Ground hazard
	KindBear             // Ground hazard
	KindFOMO             // Flyer
	KindRug              // Flyer

	kindCount = 4
)

// Flying reports whether the kind spawns in one of the air bands.
func (k Kind) Flying() bool {
	return k == KindFOMO || k == KindRug
}

// Label returns the text drawn above the obstacle.
func (k Kind) Label() string {
	switch k {
	case KindFUD:
		return "FUD"
	case KindBear:
		return "BEAR"
	case KindFOMO:
		return "FOMO"
	case KindRug:
		return "RUG"
	default:
		return "?"
	}
}

// Color returns the fill colour of the obstacle.
func (k Kind) Color() core.Color {
	switch k {
	case KindFUD:
		return core.ColorFUD
	case KindBear:
		return core.ColorBear
	case KindFOMO:
		return core.ColorFOMO
	case KindRug:
		return core.ColorRug
	default:
		return core.ColorWhite
	}
}

// Player is the runner character. Y is the top edge of the hitbox and never
// goes below the ground line.
type Player struct {
	X, Y       float64
	VY         float64
	W, H       float64
	Airborne   bool
	Frame      int // Current animation frame within the active set
	FrameTimer int // Ticks since the last frame change
}

// Box returns the player's hitbox.
func (p Player) Box() core.Box {
	return core.Box{X: p.X, Y: p.Y, W: p.W, H: p.H}
}

// Animation returns the frame set matching the player's state.
func (p Player) Animation() assets.Animation {
	if p.Airborne {
		return assets.AnimJump
	}
	return assets.AnimRun
}

// Obstacle is a hazard scrolling towards the player.
type Obstacle struct {
	X, Y   float64
	W, H   float64
	Kind   Kind
	Scored bool // Set once, when the trailing edge passes the player
}

// Box returns the obstacle's hitbox.
func (o Obstacle) Box() core.Box {
	return core.Box{X: o.X, Y: o.Y, W: o.W, H: o.H}
}

// Collectible is a token worth bonus points.
type Collectible struct {
	X, Y      float64
	W, H      float64
	Collected bool
}

// Box returns the collectible's hitbox.
func (c Collectible) Box() core.Box {
	return core.Box{X: c.X, Y: c.Y, W: c.W, H: c.H}
}

// Particle is a short-lived burst fragment.
type Particle struct {
	X, Y   float64
	VX, VY float64
	Life   float64 // Remaining life in (0, 1]
	Color  core.Color
}

// Shake is the screen shake applied to the whole frame.
type Shake struct {
	X, Y      float64
	Intensity float64
}

// World holds every simulated entity. Each entity lives in exactly one
// collection.
type World struct {
	Player       Player
	Obstacles    []Obstacle
	Collectibles []Collectible
	Particles    []Particle
	Shake        Shake
}

// clear drops all transient entities.
func (w *World) clear() {
	w.Obstacles = w.Obstacles[:0]
	w.Collectibles = w.Collectibles[:0]
	w.Particles = w.Particles[:0]
	w.Shake = Shake{}
}
