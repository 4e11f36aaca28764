// Package hopper implements the cube-hopping arcade game.
// The player cube jumps onto obstacle cubes scrolling in from the right:
// landing on top scores and bounces, getting hit pauses the game and
// clears the score.
package hopper

import (
	"github.com/vovakirdan/cubehop/internal/config"
	"github.com/vovakirdan/cubehop/internal/core"
)

// Game composes the session state and the components that advance it.
// Step is driven by the frame clock and Spawn by a separate spawn timer;
// both must be called from the same goroutine.
type Game struct {
	cfg        config.HopperConfig
	runtime    core.RuntimeConfig
	scene      Scene
	session    Session
	physics    Physics
	spawner    *Spawner
	classifier Classifier
	tick       uint64  // Playing ticks since the last reset
	spin       float64 // Player visual rotation on x and y
}

// New creates a game that reports to the given scene. A nil scene discards output.
func New(cfg config.HopperConfig, scene Scene) *Game {
	if scene == nil {
		scene = NopScene{}
	}
	return &Game{
		cfg:        cfg,
		scene:      scene,
		physics:    NewPhysics(cfg.Physics),
		spawner:    NewSpawner(cfg.Obstacles, 0),
		classifier: NewClassifier(cfg.Physics, cfg.Collision),
	}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "hopper"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Cube Hopper"
}

// Reset initializes or restarts the game: score 0, paused, no obstacles,
// player resting on the ground.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	for _, o := range g.session.Obstacles.clear() {
		g.scene.RemoveVisual(o.visual)
	}
	if g.session.Player.visual != 0 {
		g.scene.RemoveVisual(g.session.Player.visual)
	}

	g.session = Session{
		Player: Player{
			Pos:  core.Vec3{Y: g.cfg.Physics.GroundY},
			Half: g.cfg.Player.HalfExtent,
		},
	}
	g.session.Player.visual = g.scene.CreateVisual(core.VisualPlayer, g.session.Player.Pos)

	g.spawner.Reset(runtime.Seed)
	g.tick = 0
	g.spin = 0
	g.scene.WriteScore(0)
}

// Step advances the game by one frame.
//
// While paused only the input state changes; a pending jump is dropped.
// While playing the frame runs: jump, scroll obstacles, classify collisions,
// integrate gravity, apply horizontal movement.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	s := &g.session
	s.Input.Apply(in)

	if s.Input.TogglePending {
		s.Input.TogglePending = false
		s.Playing = !s.Playing
	}

	if !s.Playing {
		s.Input.JumpRequested = false
		return core.StepResult{State: g.State()}
	}

	g.tick++

	if s.Input.JumpRequested {
		s.Input.JumpRequested = false
		g.physics.Jump(s)
	}

	g.spawner.Scroll(s, g.scene)
	outcomes := g.classifier.Evaluate(s, g.scene, g.tick)
	g.physics.Tick(s)
	g.physics.Move(s)

	g.spin += g.cfg.Player.SpinStep
	g.scene.SetPosition(s.Player.visual, s.Player.Pos)
	g.scene.SetRotation(s.Player.visual, g.spin, g.spin)

	return core.StepResult{State: g.State(), Outcomes: outcomes}
}

// Spawn adds one obstacle. It is driven by the spawn timer and runs whether
// or not the game is playing.
func (g *Game) Spawn() {
	g.spawner.Spawn(&g.session, g.scene)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:  g.session.Score.Value(),
		Paused: !g.session.Playing,
		Live:   g.session.Obstacles.Len(),
	}
}

// Tick returns the number of playing ticks since the last reset.
func (g *Game) Tick() uint64 {
	return g.tick
}

// Config returns the configuration the game was built with.
func (g *Game) Config() config.HopperConfig {
	return g.cfg
}
