package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/hopper.yaml
var defaultHopperYAML []byte

// DefaultHopperConfig returns the built-in configuration.
// It matches defaults/hopper.yaml and is used when the embedded file cannot be parsed.
func DefaultHopperConfig() HopperConfig {
	return HopperConfig{
		Physics: HopperPhysics{
			Gravity:      -0.01,
			JumpStrength: 0.2,
			MoveStep:     0.1,
			GroundY:      0,
		},
		Player: HopperPlayer{
			HalfExtent: 0.5,
			SpinStep:   0.01,
		},
		Obstacles: HopperObstacles{
			HalfExtent:    0.5,
			SpawnX:        10,
			MaxSpawnY:     5,
			ScrollStep:    -0.1,
			Capacity:      4,
			SpawnInterval: 1500 * time.Millisecond,
		},
		Collision: HopperCollision{
			LandingUpper: 0.6,
			LandingLower: 0.3,
		},
		Input: HopperInput{
			HoldTicks: 32,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultHopperYAML
}
