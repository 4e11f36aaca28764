package hopper

import (
	"math/rand"

	"github.com/vovakirdan/cubehop/internal/config"
	"github.com/vovakirdan/cubehop/internal/core"
)

// ObstacleSet is the ordered collection of live obstacles, oldest first.
type ObstacleSet struct {
	items []*Obstacle
}

// Len returns the number of live obstacles.
func (s *ObstacleSet) Len() int {
	return len(s.items)
}

// All returns the live obstacles in spawn order. Callers must not modify the slice.
func (s *ObstacleSet) All() []*Obstacle {
	return s.items
}

func (s *ObstacleSet) push(o *Obstacle) {
	s.items = append(s.items, o)
}

// evictOldest removes and returns the oldest obstacle, or nil when empty.
func (s *ObstacleSet) evictOldest() *Obstacle {
	if len(s.items) == 0 {
		return nil
	}
	oldest := s.items[0]
	s.items[0] = nil
	s.items = s.items[1:]
	return oldest
}

// compact drops every marked obstacle, keeping order, and returns the dropped ones.
func (s *ObstacleSet) compact(marked map[*Obstacle]bool) []*Obstacle {
	if len(marked) == 0 {
		return nil
	}

	removed := make([]*Obstacle, 0, len(marked))
	kept := s.items[:0]
	for _, o := range s.items {
		if marked[o] {
			removed = append(removed, o)
			continue
		}
		kept = append(kept, o)
	}
	for i := len(kept); i < len(s.items); i++ {
		s.items[i] = nil
	}
	s.items = kept
	return removed
}

// clear drops every obstacle and returns them.
func (s *ObstacleSet) clear() []*Obstacle {
	all := s.items
	s.items = nil
	return all
}

// Spawner creates obstacles on the spawn timer and scrolls them every tick.
type Spawner struct {
	cfg config.HopperObstacles
	rng *rand.Rand
}

// NewSpawner creates a spawner with the given RNG seed.
func NewSpawner(cfg config.HopperObstacles, seed int64) *Spawner {
	return &Spawner{
		cfg: cfg,
		rng: rand.New(rand.NewSource(seed)),
	}
}

// Reset reseeds the RNG.
func (sp *Spawner) Reset(seed int64) {
	sp.rng = rand.New(rand.NewSource(seed))
}

// Spawn adds one obstacle at the spawn column with a random height.
// When the set is full the oldest obstacle is evicted first, so the set
// never holds more than the configured capacity.
//
// A non-positive capacity admits no obstacles and Spawn returns nil.
func (sp *Spawner) Spawn(s *Session, scene Scene) *Obstacle {
	if sp.cfg.Capacity <= 0 {
		return nil
	}

	o := &Obstacle{
		Pos:  core.Vec3{X: sp.cfg.SpawnX, Y: sp.rng.Float64() * sp.cfg.MaxSpawnY},
		Half: sp.cfg.HalfExtent,
	}

	for s.Obstacles.Len() >= sp.cfg.Capacity {
		evicted := s.Obstacles.evictOldest()
		scene.RemoveVisual(evicted.visual)
	}

	o.visual = scene.CreateVisual(core.VisualObstacle, o.Pos)
	s.Obstacles.push(o)
	return o
}

// Scroll moves every live obstacle toward the player by one step.
func (sp *Spawner) Scroll(s *Session, scene Scene) {
	for _, o := range s.Obstacles.All() {
		o.Pos.X += sp.cfg.ScrollStep
		scene.SetPosition(o.visual, o.Pos)
	}
}
