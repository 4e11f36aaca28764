package hopper

import "github.com/vovakirdan/cubehop/internal/core"

// Scene is the display collaborator. The game tells it what exists and where;
// it never reads anything back except the handles it hands out. Every method
// may be a no-op without affecting game state.
type Scene interface {
	CreateVisual(kind core.VisualKind, pos core.Vec3) core.Handle
	RemoveVisual(h core.Handle)
	SetPosition(h core.Handle, pos core.Vec3)
	SetRotation(h core.Handle, rx, ry float64)
	WriteScore(score int)
}

// NopScene discards every call.
type NopScene struct{}

func (NopScene) CreateVisual(core.VisualKind, core.Vec3) core.Handle { return 0 }
func (NopScene) RemoveVisual(core.Handle)                            {}
func (NopScene) SetPosition(core.Handle, core.Vec3)                  {}
func (NopScene) SetRotation(core.Handle, float64, float64)           {}
func (NopScene) WriteScore(int)                                      {}
