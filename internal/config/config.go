// Package config provides YAML-based tuning for the runner and the speed
// ramp that drives its difficulty.
package config

// RunnerConfig contains all tuning for the runner. Every distance is in
// surface pixels and every rate is per tick.
type RunnerConfig struct {
	Physics    RunnerPhysics    `yaml:"physics"`
	Player     RunnerPlayer     `yaml:"player"`
	Obstacles  RunnerObstacles  `yaml:"obstacles"`
	Tokens     RunnerTokens     `yaml:"tokens"`
	Particles  RunnerParticles  `yaml:"particles"`
	Shake      RunnerShake      `yaml:"shake"`
	Scoring    RunnerScoring    `yaml:"scoring"`
	Surface    RunnerSurface    `yaml:"surface"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
	Loop       LoopConfig       `yaml:"loop"`
}

// RunnerPhysics defines player physics and scroll speed.
type RunnerPhysics struct {
	Gravity     float64 `yaml:"gravity"`
	JumpImpulse float64 `yaml:"jump_impulse"` // Negative = up
	BaseSpeed   float64 `yaml:"base_speed"`
}

// RunnerPlayer defines the player hitbox, sprite size and animation pacing.
type RunnerPlayer struct {
	X            float64 `yaml:"x"`
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	SpriteWidth  float64 `yaml:"sprite_width"`
	SpriteHeight float64 `yaml:"sprite_height"`
	FrameEvery   int     `yaml:"frame_every"` // Ticks per animation frame
	Frames       int     `yaml:"frames"`      // Frames per animation set
}

// RunnerObstacles defines obstacle spawning and sizes.
type RunnerObstacles struct {
	Every        int       `yaml:"every"` // Spawn interval in ticks
	GroundWidth  float64   `yaml:"ground_width"`
	GroundHeight float64   `yaml:"ground_height"`
	GroundRise   float64   `yaml:"ground_rise"` // Top edge = surface height - rise
	FlyingWidth  float64   `yaml:"flying_width"`
	FlyingHeight float64   `yaml:"flying_height"`
	FlyingBands  []float64 `yaml:"flying_bands"` // Top edges as surface height - band
}

// RunnerTokens defines collectible spawning.
type RunnerTokens struct {
	Every     int     `yaml:"every"`
	Size      float64 `yaml:"size"`
	BandBase  float64 `yaml:"band_base"`  // Lowest top edge = surface height - base
	BandRange float64 `yaml:"band_range"` // Random extra rise
}

// RunnerParticles defines burst particles.
type RunnerParticles struct {
	Gravity    float64 `yaml:"gravity"`
	Decay      float64 `yaml:"decay"`
	Spread     float64 `yaml:"spread"` // Velocity range per axis, centered on 0
	Radius     float64 `yaml:"radius"`
	HitCount   int     `yaml:"hit_count"`
	TokenCount int     `yaml:"token_count"`
}

// RunnerShake defines the collision screen shake.
type RunnerShake struct {
	HitIntensity float64 `yaml:"hit_intensity"`
	Decay        float64 `yaml:"decay"`
	Cutoff       float64 `yaml:"cutoff"`
}

// RunnerScoring defines point values.
type RunnerScoring struct {
	ObstaclePoints int `yaml:"obstacle_points"`
	TokenPoints    int `yaml:"token_points"`
}

// RunnerSurface defines fixed layout of the drawing surface.
type RunnerSurface struct {
	GroundHeight float64 `yaml:"ground_height"`
}

// DifficultyConfig defines the stepwise speed ramp.
type DifficultyConfig struct {
	Enabled   bool    `yaml:"enabled"`
	RampEvery int     `yaml:"ramp_every"` // Ticks between speed increases
	Increment float64 `yaml:"increment"`
	MaxSpeed  float64 `yaml:"max_speed"`
}

// LoopConfig selects how host frames map to simulation ticks.
type LoopConfig struct {
	// FixedTimestep decouples simulation from the host refresh rate. When
	// false, each host frame runs exactly one tick.
	FixedTimestep bool `yaml:"fixed_timestep"`
	StepHz        int  `yaml:"step_hz"`
	MaxCatchUp    int  `yaml:"max_catch_up"` // Max ticks per frame when behind
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset maps a CLI string to a preset. Unknown values return "".
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return ""
	}
}
