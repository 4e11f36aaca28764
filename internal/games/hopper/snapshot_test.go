package hopper

import "testing"

func TestSnapshotDigestSensitivity(t *testing.T) {
	base := Snapshot{
		Tick:      10,
		Score:     2,
		Playing:   true,
		PlayerX:   1.5,
		PlayerY:   0.25,
		VelocityY: -0.03,
		Obstacles: []ObstacleSnapshot{{X: 4, Y: 1}, {X: 8, Y: 3.5}},
	}

	variants := map[string]func(s *Snapshot){
		"tick":           func(s *Snapshot) { s.Tick++ },
		"score":          func(s *Snapshot) { s.Score++ },
		"playing":        func(s *Snapshot) { s.Playing = false },
		"player x":       func(s *Snapshot) { s.PlayerX += 1e-12 },
		"velocity":       func(s *Snapshot) { s.VelocityY = 0 },
		"obstacle order": func(s *Snapshot) { s.Obstacles = []ObstacleSnapshot{s.Obstacles[1], s.Obstacles[0]} },
		"obstacle count": func(s *Snapshot) { s.Obstacles = s.Obstacles[:1] },
	}

	for name, mutate := range variants {
		t.Run(name, func(t *testing.T) {
			v := base
			v.Obstacles = append([]ObstacleSnapshot(nil), base.Obstacles...)
			mutate(&v)
			if v.Digest() == base.Digest() {
				t.Errorf("changing %s should change the digest", name)
			}
		})
	}

	if base.Digest() != base.Digest() {
		t.Error("Digest should be stable")
	}
}
