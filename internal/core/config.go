package core

// RuntimeConfig contains configuration passed to the game at initialization.
// The game uses it to size the scene and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score  int  // Current score
	Paused bool // Whether the game is paused
	Live   int  // Number of live obstacles
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and the collision outcomes of the tick.
type StepResult struct {
	State    GameState
	Outcomes []Outcome
}
