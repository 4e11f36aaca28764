// Package config provides YAML-based game configuration loading for cubehop.
package config

import "time"

// HopperConfig contains all tunables for the cube-hopping game.
type HopperConfig struct {
	Physics   HopperPhysics   `yaml:"physics"`
	Player    HopperPlayer    `yaml:"player"`
	Obstacles HopperObstacles `yaml:"obstacles"`
	Collision HopperCollision `yaml:"collision"`
	Input     HopperInput     `yaml:"input"`
}

// HopperPhysics defines per-frame physics parameters.
type HopperPhysics struct {
	Gravity      float64 `yaml:"gravity"`       // Added to vertical velocity every tick (negative = down)
	JumpStrength float64 `yaml:"jump_strength"` // Vertical velocity set by a jump or a landing bounce
	MoveStep     float64 `yaml:"move_step"`     // Horizontal shift per tick while a direction is held
	GroundY      float64 `yaml:"ground_y"`      // Floor height for the player center
}

// HopperPlayer defines the player cube.
type HopperPlayer struct {
	HalfExtent float64 `yaml:"half_extent"`
	SpinStep   float64 `yaml:"spin_step"` // Visual rotation per tick on x and y, radians
}

// HopperObstacles defines spawning and scrolling of obstacle cubes.
type HopperObstacles struct {
	HalfExtent    float64       `yaml:"half_extent"`
	SpawnX        float64       `yaml:"spawn_x"`
	MaxSpawnY     float64       `yaml:"max_spawn_y"` // Spawn height is uniform in [0, max_spawn_y)
	ScrollStep    float64       `yaml:"scroll_step"` // Added to obstacle x every tick
	Capacity      int           `yaml:"capacity"`    // Max live obstacles, oldest evicted first
	SpawnInterval time.Duration `yaml:"spawn_interval"`
}

// HopperCollision defines the landing band relative to the player's bottom face.
// A landing fires when obstacle.y+LandingLower <= bottom <= obstacle.y+LandingUpper.
type HopperCollision struct {
	LandingUpper float64 `yaml:"landing_upper"`
	LandingLower float64 `yaml:"landing_lower"`
}

// HopperInput defines how terminal key repeats are turned into held keys.
type HopperInput struct {
	HoldTicks int `yaml:"hold_ticks"` // Ticks a movement key stays held after its last repeat
}
