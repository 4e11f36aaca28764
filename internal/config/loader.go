package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is returned when a loaded configuration cannot drive the game.
var ErrInvalidConfig = errors.New("invalid config")

const configFile = "hopper.yaml"

// LoadHopper loads the game configuration.
// Search order: customPath -> ~/.cubehop/configs/hopper.yaml -> ./configs/hopper.yaml -> embedded default
//
// Files are decoded over the defaults, so a file only needs the keys it changes.
func LoadHopper(customPath string) (HopperConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return HopperConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parse(data)
		if err != nil {
			return HopperConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(configFile); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", configFile)); err == nil {
		if cfg, err := parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parse(defaultHopperYAML)
	if err != nil {
		return DefaultHopperConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// parse decodes YAML over the hardcoded defaults and validates the result.
func parse(data []byte) (HopperConfig, error) {
	cfg := DefaultHopperConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return HopperConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return HopperConfig{}, err
	}
	return cfg, nil
}

// Validate checks the values the simulation divides by, indexes with, or times on.
func (c HopperConfig) Validate() error {
	switch {
	case c.Obstacles.Capacity <= 0:
		return fmt.Errorf("%w: obstacles.capacity must be positive, got %d", ErrInvalidConfig, c.Obstacles.Capacity)
	case c.Obstacles.SpawnInterval <= 0:
		return fmt.Errorf("%w: obstacles.spawn_interval must be positive, got %s", ErrInvalidConfig, c.Obstacles.SpawnInterval)
	case c.Obstacles.MaxSpawnY < 0:
		return fmt.Errorf("%w: obstacles.max_spawn_y must not be negative, got %v", ErrInvalidConfig, c.Obstacles.MaxSpawnY)
	case c.Player.HalfExtent <= 0 || c.Obstacles.HalfExtent <= 0:
		return fmt.Errorf("%w: half extents must be positive", ErrInvalidConfig)
	case c.Collision.LandingLower > c.Collision.LandingUpper:
		return fmt.Errorf("%w: collision.landing_lower %v exceeds landing_upper %v",
			ErrInvalidConfig, c.Collision.LandingLower, c.Collision.LandingUpper)
	case c.Input.HoldTicks <= 0:
		return fmt.Errorf("%w: input.hold_ticks must be positive, got %d", ErrInvalidConfig, c.Input.HoldTicks)
	}
	return nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".cubehop", "configs", filename)
}
