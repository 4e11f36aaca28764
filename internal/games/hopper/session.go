package hopper

import "github.com/vovakirdan/cubehop/internal/core"

// Player is the player-controlled cube.
type Player struct {
	Pos       core.Vec3
	VelocityY float64
	Half      float64

	visual core.Handle
}

// Box returns the player's bounding box.
func (p Player) Box() core.Box {
	return core.NewBox(p.Pos, p.Half)
}

// Obstacle is a scrolling cube. Obstacles are compared by pointer identity.
type Obstacle struct {
	Pos  core.Vec3
	Half float64

	visual core.Handle
}

// Visual returns the scene handle displaying this obstacle.
func (o *Obstacle) Visual() core.Handle {
	return o.visual
}

// InputState holds the key-driven intents between ticks.
type InputState struct {
	Left          bool // Move-left held
	Right         bool // Move-right held
	JumpRequested bool // Jump edge not yet consumed
	TogglePending bool // Play/pause edge not yet consumed
}

// Apply folds one frame of input edges into the state.
// Presses are applied before releases, so a press and release of the same
// key within one frame leaves it released.
func (s *InputState) Apply(in core.InputFrame) {
	if in.Has(core.ActionLeft) {
		s.Left = true
	}
	if in.Has(core.ActionRight) {
		s.Right = true
	}
	if in.Has(core.ActionJump) {
		s.JumpRequested = true
	}
	if in.Has(core.ActionPause) {
		// Two toggles in one frame cancel out
		s.TogglePending = !s.TogglePending
	}

	if in.HasRelease(core.ActionLeft) {
		s.Left = false
	}
	if in.HasRelease(core.ActionRight) {
		s.Right = false
	}
}

// Score is a non-negative point counter.
type Score struct {
	value int
}

// Value returns the current score.
func (s Score) Value() int { return s.value }

// Increment adds one point.
func (s *Score) Increment() { s.value++ }

// Reset sets the score back to zero.
func (s *Score) Reset() { s.value = 0 }

// Session holds every piece of mutable game state. Components receive it
// explicitly instead of sharing globals.
type Session struct {
	Score     Score
	Playing   bool
	Input     InputState
	Player    Player
	Obstacles ObstacleSet
}
