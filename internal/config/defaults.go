package config

import (
	_ "embed"
)

//go:embed defaults/runner.yaml
var defaultRunnerYAML []byte

// DefaultRunnerConfig returns the default runner configuration.
// It mirrors defaults/runner.yaml and is used if the embedded file is unusable.
func DefaultRunnerConfig() RunnerConfig {
	return RunnerConfig{
		Physics: RunnerPhysics{
			Gravity:     0.8,
			JumpImpulse: -18,
			BaseSpeed:   3,
		},
		Player: RunnerPlayer{
			X:            100,
			Width:        60,
			Height:       80,
			SpriteWidth:  120,
			SpriteHeight: 160,
			FrameEvery:   8,
			Frames:       4,
		},
		Obstacles: RunnerObstacles{
			Every:        180,
			GroundWidth:  35,
			GroundHeight: 50,
			GroundRise:   100,
			FlyingWidth:  40,
			FlyingHeight: 30,
			FlyingBands:  []float64{180, 140, 100},
		},
		Tokens: RunnerTokens{
			Every:     100,
			Size:      30,
			BandBase:  150,
			BandRange: 100,
		},
		Particles: RunnerParticles{
			Gravity:    0.3,
			Decay:      0.02,
			Spread:     8,
			Radius:     3,
			HitCount:   20,
			TokenCount: 15,
		},
		Shake: RunnerShake{
			HitIntensity: 15,
			Decay:        0.9,
			Cutoff:       0.5,
		},
		Scoring: RunnerScoring{
			ObstaclePoints: 10,
			TokenPoints:    50,
		},
		Surface: RunnerSurface{
			GroundHeight: 50,
		},
		Difficulty: DifficultyConfig{
			Enabled:   true,
			RampEvery: 800,
			Increment: 0.3,
			MaxSpeed:  8,
		},
		Loop: LoopConfig{
			FixedTimestep: false,
			StepHz:        60,
			MaxCatchUp:    5,
		},
	}
}
