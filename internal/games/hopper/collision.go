package hopper

import (
	"github.com/vovakirdan/cubehop/internal/config"
	"github.com/vovakirdan/cubehop/internal/core"
)

// Classifier sorts player/obstacle overlaps into landings and hits.
type Classifier struct {
	jumpStrength float64
	landingUpper float64
	landingLower float64
}

// NewClassifier creates a classifier. The bounce after a landing reuses the jump strength.
func NewClassifier(phys config.HopperPhysics, col config.HopperCollision) Classifier {
	return Classifier{
		jumpStrength: phys.JumpStrength,
		landingUpper: col.LandingUpper,
		landingLower: col.LandingLower,
	}
}

// Evaluate tests the player against every live obstacle and applies the outcomes.
//
// Obstacles are checked in spawn order against the player box taken at the start
// of the pass. For each horizontally overlapping obstacle the landing band is
// tested first; the hit test only runs when no landing fired, so an obstacle
// yields at most one outcome per pass. Resolved obstacles are removed after the scan.
func (c Classifier) Evaluate(s *Session, scene Scene, tick uint64) []core.Outcome {
	box := s.Player.Box()
	bottom := box.Bottom()

	var (
		outcomes []core.Outcome
		resolved map[*Obstacle]bool
	)

	for _, o := range s.Obstacles.All() {
		if !box.SpansX(o.Pos.X) {
			continue
		}

		kind := core.OutcomeKind(0)
		switch {
		case o.Pos.Y+c.landingUpper >= bottom && o.Pos.Y+c.landingLower <= bottom:
			s.Player.VelocityY = c.jumpStrength
			s.Score.Increment()
			kind = core.OutcomeLanding
		case box.SpansY(o.Pos.Y):
			s.Playing = false
			s.Score.Reset()
			kind = core.OutcomeHit
		}

		if kind != 0 {
			if resolved == nil {
				resolved = make(map[*Obstacle]bool)
			}
			resolved[o] = true
			outcomes = append(outcomes, core.Outcome{
				Kind:     kind,
				Tick:     tick,
				Player:   s.Player.Pos,
				Obstacle: o.Pos,
				Score:    s.Score.Value(),
			})
		}

		scene.WriteScore(s.Score.Value())
	}

	for _, o := range s.Obstacles.compact(resolved) {
		scene.RemoveVisual(o.visual)
	}

	return outcomes
}
