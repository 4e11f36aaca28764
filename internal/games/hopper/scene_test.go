package hopper

import "github.com/vovakirdan/cubehop/internal/core"

// recordingScene is a Scene that remembers what the game told it.
type recordingScene struct {
	next      core.Handle
	live      map[core.Handle]core.VisualKind
	positions map[core.Handle]core.Vec3
	removed   []core.Handle
	scores    []int
}

func newRecordingScene() *recordingScene {
	return &recordingScene{
		live:      make(map[core.Handle]core.VisualKind),
		positions: make(map[core.Handle]core.Vec3),
	}
}

func (r *recordingScene) CreateVisual(kind core.VisualKind, pos core.Vec3) core.Handle {
	r.next++
	r.live[r.next] = kind
	r.positions[r.next] = pos
	return r.next
}

func (r *recordingScene) RemoveVisual(h core.Handle) {
	delete(r.live, h)
	delete(r.positions, h)
	r.removed = append(r.removed, h)
}

func (r *recordingScene) SetPosition(h core.Handle, pos core.Vec3) {
	if _, ok := r.live[h]; ok {
		r.positions[h] = pos
	}
}

func (r *recordingScene) SetRotation(core.Handle, float64, float64) {}

func (r *recordingScene) WriteScore(score int) {
	r.scores = append(r.scores, score)
}

func (r *recordingScene) count(kind core.VisualKind) int {
	n := 0
	for _, k := range r.live {
		if k == kind {
			n++
		}
	}
	return n
}
