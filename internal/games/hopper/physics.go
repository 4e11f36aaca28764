package hopper

import "github.com/vovakirdan/cubehop/internal/config"

// Physics integrates the player's motion. It holds only tuning values;
// all state lives on the Session.
type Physics struct {
	cfg config.HopperPhysics
}

// NewPhysics creates a physics integrator.
func NewPhysics(cfg config.HopperPhysics) Physics {
	return Physics{cfg: cfg}
}

// Tick applies gravity and the ground clamp for one frame.
// Landing on the ground is inelastic: velocity is zeroed, not inverted.
func (p Physics) Tick(s *Session) {
	pl := &s.Player
	pl.VelocityY += p.cfg.Gravity
	pl.Pos.Y += pl.VelocityY

	if pl.Pos.Y < p.cfg.GroundY {
		pl.Pos.Y = p.cfg.GroundY
		pl.VelocityY = 0
	}
}

// Jump sets the vertical velocity to the jump strength, overriding any fall.
func (p Physics) Jump(s *Session) {
	s.Player.VelocityY = p.cfg.JumpStrength
}

// Move shifts the player horizontally for every held direction.
// Left and right held together both apply and cancel out.
func (p Physics) Move(s *Session) {
	if s.Input.Right {
		s.Player.Pos.X += p.cfg.MoveStep
	}
	if s.Input.Left {
		s.Player.Pos.X -= p.cfg.MoveStep
	}
}
