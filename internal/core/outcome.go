package core

// OutcomeKind classifies a collision between the player and an obstacle.
type OutcomeKind int

const (
	// OutcomeLanding means the player touched down on top of an obstacle.
	OutcomeLanding OutcomeKind = iota + 1
	// OutcomeHit means an obstacle struck the player's body.
	OutcomeHit
)

// String returns a human-readable name for the outcome kind.
func (k OutcomeKind) String() string {
	switch k {
	case OutcomeLanding:
		return "landing"
	case OutcomeHit:
		return "hit"
	default:
		return "none"
	}
}

// Outcome records a single classified collision.
type Outcome struct {
	Kind     OutcomeKind
	Tick     uint64
	Player   Vec3 // Player position at classification time
	Obstacle Vec3 // Obstacle position at classification time
	Score    int  // Score right after the outcome was applied
}
