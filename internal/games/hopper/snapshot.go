package hopper

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"
)

// ObstacleSnapshot is the position of one live obstacle.
type ObstacleSnapshot struct {
	X, Y float64
}

// Snapshot captures the complete simulation state for determinism testing and the journal.
type Snapshot struct {
	Tick      uint64
	Score     int
	Playing   bool
	PlayerX   float64
	PlayerY   float64
	VelocityY float64
	Obstacles []ObstacleSnapshot // Spawn order, oldest first
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	s := &g.session
	obstacles := make([]ObstacleSnapshot, 0, s.Obstacles.Len())
	for _, o := range s.Obstacles.All() {
		obstacles = append(obstacles, ObstacleSnapshot{X: o.Pos.X, Y: o.Pos.Y})
	}

	return Snapshot{
		Tick:      g.tick,
		Score:     s.Score.Value(),
		Playing:   s.Playing,
		PlayerX:   s.Player.Pos.X,
		PlayerY:   s.Player.Pos.Y,
		VelocityY: s.Player.VelocityY,
		Obstacles: obstacles,
	}
}

// Digest returns a 64-bit hash of every field, bit-exact on floats.
func (s Snapshot) Digest() uint64 {
	d := xxhash.New()
	var buf [8]byte

	put := func(v uint64) {
		binary.LittleEndian.PutUint64(buf[:], v)
		//nolint:errcheck // xxhash.Digest.Write never fails
		d.Write(buf[:])
	}

	put(s.Tick)
	put(uint64(s.Score))
	if s.Playing {
		put(1)
	} else {
		put(0)
	}
	put(math.Float64bits(s.PlayerX))
	put(math.Float64bits(s.PlayerY))
	put(math.Float64bits(s.VelocityY))
	put(uint64(len(s.Obstacles)))
	for _, o := range s.Obstacles {
		put(math.Float64bits(o.X))
		put(math.Float64bits(o.Y))
	}

	return d.Sum64()
}
