package hopper

import (
	"testing"

	"github.com/vovakirdan/cubehop/internal/config"
	"github.com/vovakirdan/cubehop/internal/core"
)

func TestSpawnPosition(t *testing.T) {
	cfg := config.DefaultHopperConfig()
	sp := NewSpawner(cfg.Obstacles, 7)
	s := &Session{}

	for i := 0; i < 100; i++ {
		o := sp.Spawn(s, NopScene{})
		if o.Pos.X != 10 {
			t.Fatalf("spawn X = %v, expected 10", o.Pos.X)
		}
		if o.Pos.Y < 0 || o.Pos.Y >= 5 {
			t.Fatalf("spawn Y = %v, expected within [0, 5)", o.Pos.Y)
		}
		if o.Pos.Z != 0 {
			t.Fatalf("spawn Z = %v, expected 0", o.Pos.Z)
		}
	}
}

func TestSpawnCapacityAndEviction(t *testing.T) {
	cfg := config.DefaultHopperConfig()
	sp := NewSpawner(cfg.Obstacles, 1)
	scene := newRecordingScene()
	s := &Session{}

	var spawned []*Obstacle
	for i := 0; i < 10; i++ {
		spawned = append(spawned, sp.Spawn(s, scene))

		if s.Obstacles.Len() > 4 {
			t.Fatalf("after spawn %d: Len() = %d, expected at most 4", i+1, s.Obstacles.Len())
		}
		if scene.count(core.VisualObstacle) != s.Obstacles.Len() {
			t.Fatalf("after spawn %d: scene shows %d obstacles, set holds %d",
				i+1, scene.count(core.VisualObstacle), s.Obstacles.Len())
		}

		if i == 3 && !isLive(s, spawned[0]) {
			t.Error("first obstacle should still be live after 4 spawns")
		}
		if i == 4 && isLive(s, spawned[0]) {
			t.Error("first obstacle should be evicted after the 5th spawn")
		}
	}

	// Oldest-first: the live set is exactly the last four, in spawn order
	all := s.Obstacles.All()
	for i, o := range all {
		if o != spawned[6+i] {
			t.Errorf("All()[%d] is not the obstacle from spawn %d", i, 7+i)
		}
	}
}

func TestScrollMovesAllObstacles(t *testing.T) {
	cfg := config.DefaultHopperConfig()
	sp := NewSpawner(cfg.Obstacles, 1)
	scene := newRecordingScene()
	s := &Session{}

	a := sp.Spawn(s, scene)
	b := sp.Spawn(s, scene)
	sp.Scroll(s, scene)

	for _, o := range []*Obstacle{a, b} {
		if o.Pos.X != 9.9 {
			t.Errorf("X after scroll = %v, expected 9.9", o.Pos.X)
		}
		if scene.positions[o.Visual()] != o.Pos {
			t.Errorf("scene position %+v out of sync with %+v", scene.positions[o.Visual()], o.Pos)
		}
	}
}

func TestObstacleSetCompactKeepsOrder(t *testing.T) {
	var set ObstacleSet
	obs := make([]*Obstacle, 5)
	for i := range obs {
		obs[i] = &Obstacle{Pos: core.Vec3{X: float64(i)}}
		set.push(obs[i])
	}

	removed := set.compact(map[*Obstacle]bool{obs[1]: true, obs[3]: true})

	if len(removed) != 2 || removed[0] != obs[1] || removed[1] != obs[3] {
		t.Errorf("compact() removed %v, expected obstacles 1 and 3", removed)
	}
	expected := []*Obstacle{obs[0], obs[2], obs[4]}
	if set.Len() != len(expected) {
		t.Fatalf("Len() = %d, expected %d", set.Len(), len(expected))
	}
	for i, o := range set.All() {
		if o != expected[i] {
			t.Errorf("All()[%d] = %v, expected %v", i, o.Pos, expected[i].Pos)
		}
	}

	if set.compact(nil) != nil {
		t.Error("compact(nil) should remove nothing")
	}
}

// isLive reports whether o is still in the session's obstacle set.
func isLive(s *Session, o *Obstacle) bool {
	for _, item := range s.Obstacles.All() {
		if item == o {
			return true
		}
	}
	return false
}

func TestSpawnWithoutCapacity(t *testing.T) {
	tests := []int{0, -1}

	for _, capacity := range tests {
		cfg := config.DefaultHopperConfig()
		cfg.Obstacles.Capacity = capacity
		sp := NewSpawner(cfg.Obstacles, 1)
		s := &Session{}
		scene := newRecordingScene()

		if o := sp.Spawn(s, scene); o != nil {
			t.Errorf("Spawn with capacity %d = %+v, expected nil", capacity, o)
		}
		if s.Obstacles.Len() != 0 || scene.count(core.VisualObstacle) != 0 {
			t.Errorf("capacity %d: %d live obstacles, expected 0", capacity, s.Obstacles.Len())
		}
	}
}

func TestGameZeroConfigDoesNotPanic(t *testing.T) {
	g := New(config.HopperConfig{}, nil)
	g.Reset(core.RuntimeConfig{Seed: 3})

	g.Spawn()
	g.Step(press(core.ActionPause, core.ActionJump))
	g.Spawn()

	if got := g.State().Live; got != 0 {
		t.Errorf("Live = %d, expected 0 with zero capacity", got)
	}
}
